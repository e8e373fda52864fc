package router

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rushrr/courier/internal/domain/model"
	"github.com/rushrr/courier/internal/metrics"
	"github.com/rushrr/courier/internal/server/http/handlers"
	testhelpers "github.com/rushrr/courier/internal/test"
)

func newEngine(facade testhelpers.CourierFacadeStub) *gin.Engine {
	return Setup(Params{
		Facade:   facade,
		Verifier: testhelpers.KeyVerifierStub{Key: "admin-key"},
		Metrics:  metrics.New(),
		Logger:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	})
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func TestSetupRoutes(t *testing.T) {
	var listedShop string
	facade := testhelpers.CourierFacadeStub{
		OrderFacadeStub: testhelpers.OrderFacadeStub{
			ListFn: func(_ context.Context, shop, _ string) ([]model.BookableOrder, error) {
				listedShop = shop
				return nil, nil
			},
		},
	}
	engine := newEngine(facade)

	if resp := serve(engine, httptest.NewRequest(http.MethodGet, "/api/health", nil)); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for health, got %d", resp.Code)
	}
	if resp := serve(engine, httptest.NewRequest(http.MethodGet, "/api/cities", nil)); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for cities, got %d", resp.Code)
	}

	if resp := serve(engine, httptest.NewRequest(http.MethodGet, "/api/orders", nil)); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for orders without token, got %d", resp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer token:demo.myshopify.com")
	if resp := serve(engine, req); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for orders, got %d", resp.Code)
	}
	if listedShop != "demo.myshopify.com" {
		t.Fatalf("expected shop from token, got %q", listedShop)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/process-orders", strings.NewReader(`{"orderIds":["1"]}`))
	req.Header.Set("Authorization", "Bearer token:demo.myshopify.com")
	req.Header.Set("Content-Type", "application/json")
	if resp := serve(engine, req); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for process-orders, got %d", resp.Code)
	}
}

func TestAdminRoutesRequireKey(t *testing.T) {
	engine := newEngine(testhelpers.CourierFacadeStub{})
	body := []byte(`{"shop":"demo.myshopify.com","accessToken":"shpat_x"}`)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if resp := serve(engine, req); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without admin key, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/admin/sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Admin-Key", "admin-key")
	if resp := serve(engine, req); resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 with admin key, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/admin/sessions/demo.myshopify.com", nil)
	req.Header.Set("X-Admin-Key", "admin-key")
	if resp := serve(engine, req); resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for session removal, got %d", resp.Code)
	}
}

func TestPreflightAndMetrics(t *testing.T) {
	engine := newEngine(testhelpers.CourierFacadeStub{})

	resp := serve(engine, httptest.NewRequest(http.MethodOptions, "/api/process-orders", nil))
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", resp.Code)
	}
	if resp.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("expected CORS header on preflight")
	}

	resp = serve(engine, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), "go_goroutines") {
		t.Fatalf("expected prometheus exposition, got %d", resp.Code)
	}
}

var _ handlers.CourierFacade = testhelpers.CourierFacadeStub{}
