package logistics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	domainErrors "github.com/rushrr/courier/internal/domain/errors"
	"github.com/rushrr/courier/internal/domain/model"
	"github.com/rushrr/courier/internal/domain/order"
)

const (
	defaultTimeout   = 15 * time.Second
	duplicateMessage = "Order already exists"
)

// RejectedError is a non-success response from the logistics backend.
type RejectedError struct {
	Status     int
	StatusText string
	Message    string
	Body       []byte
	URL        string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("logistics error: %d %s", e.Status, e.StatusText)
	}
	return fmt.Sprintf("logistics error: %d %s: %s", e.Status, e.StatusText, e.Message)
}

// Unwrap reports ErrDownstreamRejected, plus ErrAuthRequired for credential failures.
func (e *RejectedError) Unwrap() []error {
	if e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden {
		return []error{domainErrors.ErrDownstreamRejected, domainErrors.ErrAuthRequired}
	}
	return []error{domainErrors.ErrDownstreamRejected}
}

// FriendlyMessage rewrites known rejection messages for display.
func FriendlyMessage(err error, reference string) string {
	var rejected *RejectedError
	if errors.As(err, &rejected) && strings.Contains(rejected.Message, duplicateMessage) {
		return fmt.Sprintf("Order %s was already sent to Rushrr", reference)
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// Client exposes the logistics backend operations.
type Client interface {
	CreateOrder(ctx context.Context, token, shop string, payload *model.CanonicalOrder) (json.RawMessage, error)
	UpdateOrder(ctx context.Context, token, id string, patch model.EditPatch) (json.RawMessage, error)
	BookOrders(ctx context.Context, token string, ids []string) (json.RawMessage, error)
	ListOrders(ctx context.Context, token string) ([]model.LogisticsRecord, error)
	VerifyStore(ctx context.Context, shop string) (string, error)
	VerifyAPIKey(ctx context.Context, token, apiKey, shop, shopName string) (json.RawMessage, error)
}

// HTTPClient implements Client via the backend REST API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type createOrderRequest struct {
	ShopifyStoreURL string                  `json:"shopifyStoreUrl"`
	Orders          []*model.CanonicalOrder `json:"orders"`
}

type bookRequest struct {
	OrderID []string `json:"orderId"`
}

type verifyStoreRequest struct {
	ShopifyStoreURL string `json:"shopifyStoreUrl"`
}

type verifyStoreResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type verifyAPIKeyRequest struct {
	APIKey           string `json:"apiKey"`
	ShopifyStoreURL  string `json:"shopifyStoreUrl"`
	ShopifyStoreName string `json:"shopifyStoreName"`
}

type listResponse struct {
	Orders []struct {
		ID               order.FlexString `json:"id"`
		ShopifyOrderID   order.FlexString `json:"shopifyOrderId"`
		Status           string           `json:"status"`
		ShopifyOrderData json.RawMessage  `json:"shopifyOrderData"`
	} `json:"orders"`
}

// NewHTTPClient creates logistics client with the given request timeout.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse logistics url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("logistics url must be absolute")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{
		baseURL:    parsed,
		logger:     logger,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// CreateOrder posts a single order to /api/orders/create-order.
func (c *HTTPClient) CreateOrder(ctx context.Context, token, shop string, payload *model.CanonicalOrder) (json.RawMessage, error) {
	req := createOrderRequest{
		ShopifyStoreURL: model.StoreURL(shop),
		Orders:          []*model.CanonicalOrder{payload},
	}
	return c.do(ctx, http.MethodPost, "/api/orders/create-order", nil, token, req)
}

// UpdateOrder sends only the patch body to /api/orders/update?id={id}.
func (c *HTTPClient) UpdateOrder(ctx context.Context, token, id string, patch model.EditPatch) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, "/api/orders/update", url.Values{"id": {id}}, token, patch)
}

// BookOrders books couriers for the given logistics order ids.
func (c *HTTPClient) BookOrders(ctx context.Context, token string, ids []string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/api/orders/book", nil, token, bookRequest{OrderID: ids})
}

// ListOrders returns orders known to the backend for the token's store.
func (c *HTTPClient) ListOrders(ctx context.Context, token string) ([]model.LogisticsRecord, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/orders", nil, token, nil)
	if err != nil {
		return nil, err
	}

	var data listResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	records := make([]model.LogisticsRecord, 0, len(data.Orders))
	for _, o := range data.Orders {
		records = append(records, model.LogisticsRecord{
			ID:             o.ID.String(),
			ShopifyOrderID: o.ShopifyOrderID.String(),
			Status:         o.Status,
			OrderData:      o.ShopifyOrderData,
		})
	}
	return records, nil
}

// VerifyStore exchanges a store URL for a logistics API token.
func (c *HTTPClient) VerifyStore(ctx context.Context, shop string) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/auth/verify-shopify-store", nil, "", verifyStoreRequest{ShopifyStoreURL: model.StoreURL(shop)})
	if err != nil {
		return "", err
	}

	var data verifyStoreResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return "", fmt.Errorf("decode verify store response: %w", err)
	}
	if !data.Success || data.Token == "" {
		return "", fmt.Errorf("%w: store verification returned no token", domainErrors.ErrDownstreamRejected)
	}
	return data.Token, nil
}

// VerifyAPIKey registers the merchant API key with the backend.
func (c *HTTPClient) VerifyAPIKey(ctx context.Context, token, apiKey, shop, shopName string) (json.RawMessage, error) {
	req := verifyAPIKeyRequest{
		APIKey:           apiKey,
		ShopifyStoreURL:  model.StoreURL(shop),
		ShopifyStoreName: shopName,
	}
	return c.do(ctx, http.MethodPost, "/api/auth/verify-api-key", nil, token, req)
}

func (c *HTTPClient) do(ctx context.Context, method, p string, query url.Values, token string, payload any) (json.RawMessage, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, p)
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("logistics request failed",
			slog.String("method", method),
			slog.String("path", endpoint.Path),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return nil, &RejectedError{
			Status:     resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Message:    extractMessage(body),
			Body:       body,
			URL:        endpoint.String(),
		}
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	if !json.Valid(body) {
		encoded, _ := json.Marshal(string(body))
		return encoded, nil
	}
	return body, nil
}

func extractMessage(body []byte) string {
	var data struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &data); err == nil {
		if data.Message != "" {
			return data.Message
		}
		if data.Error != "" {
			return data.Error
		}
	}
	return strings.TrimSpace(string(body))
}
