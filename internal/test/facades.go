package test

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rushrr/courier/internal/airwaybill"
	"github.com/rushrr/courier/internal/domain/model"
)

// SetupFacadeStub provides controllable behaviour for setup and session endpoints.
type SetupFacadeStub struct {
	ProvisionFn  func(context.Context, model.ShopSession) (*model.ShopSession, string, error)
	RemoveFn     func(context.Context, string) error
	SaveTokenFn  func(context.Context, string, string) error
	StatusFn     func(context.Context, string) (model.SetupStatus, error)
	ConnectFn    func(context.Context, string, string, string) (json.RawMessage, error)
	DisconnectFn func(context.Context, string) error
}

// ProvisionSession echoes the session with fixed timestamps unless overridden.
func (s SetupFacadeStub) ProvisionSession(ctx context.Context, session model.ShopSession) (*model.ShopSession, string, error) {
	if s.ProvisionFn != nil {
		return s.ProvisionFn(ctx, session)
	}
	session.CreatedAt = time.Unix(0, 0).UTC()
	session.UpdatedAt = session.CreatedAt
	return &session, "token:" + session.Shop, nil
}

// RemoveShop delegates to RemoveFn when set.
func (s SetupFacadeStub) RemoveShop(ctx context.Context, shop string) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, shop)
	}
	return nil
}

// SaveToken delegates to SaveTokenFn when set.
func (s SetupFacadeStub) SaveToken(ctx context.Context, shop, token string) error {
	if s.SaveTokenFn != nil {
		return s.SaveTokenFn(ctx, shop, token)
	}
	return nil
}

// SetupStatus reports a configured token by default.
func (s SetupFacadeStub) SetupStatus(ctx context.Context, shop string) (model.SetupStatus, error) {
	if s.StatusFn != nil {
		return s.StatusFn(ctx, shop)
	}
	return model.SetupStatus{Shop: shop, HasToken: true}, nil
}

// Connect returns a canned logistics response.
func (s SetupFacadeStub) Connect(ctx context.Context, shop, shopName, apiKey string) (json.RawMessage, error) {
	if s.ConnectFn != nil {
		return s.ConnectFn(ctx, shop, shopName, apiKey)
	}
	return json.RawMessage(`{"success":true}`), nil
}

// Disconnect delegates to DisconnectFn when set.
func (s SetupFacadeStub) Disconnect(ctx context.Context, shop string) error {
	if s.DisconnectFn != nil {
		return s.DisconnectFn(ctx, shop)
	}
	return nil
}

// OrderFacadeStub simulates order operations.
type OrderFacadeStub struct {
	ProcessFn    func(context.Context, string, []string) (*model.BatchResult, error)
	ListFn       func(context.Context, string, string) ([]model.BookableOrder, error)
	UpdateFn     func(context.Context, string, string, *model.CanonicalOrder, *model.CanonicalOrder) (json.RawMessage, error)
	BookFn       func(context.Context, string, []string) (json.RawMessage, error)
	AirwayBillFn func(context.Context, string, string, string) (*airwaybill.Document, error)
}

// ProcessOrders marks every id as successful unless overridden.
func (s OrderFacadeStub) ProcessOrders(ctx context.Context, shop string, ids []string) (*model.BatchResult, error) {
	if s.ProcessFn != nil {
		return s.ProcessFn(ctx, shop, ids)
	}
	result := &model.BatchResult{Summary: model.BatchSummary{Total: len(ids), Successful: len(ids)}}
	for _, id := range ids {
		result.Successful = append(result.Successful, model.OrderSuccess{OrderID: id, OrderNumber: "#" + id})
	}
	return result, nil
}

// ListOrders returns no orders unless overridden.
func (s OrderFacadeStub) ListOrders(ctx context.Context, shop, status string) ([]model.BookableOrder, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, shop, status)
	}
	return nil, nil
}

// UpdateOrder returns a canned logistics response.
func (s OrderFacadeStub) UpdateOrder(ctx context.Context, shop, id string, baseline, edited *model.CanonicalOrder) (json.RawMessage, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, shop, id, baseline, edited)
	}
	return json.RawMessage(`{"updated":true}`), nil
}

// BookOrders returns a canned logistics response.
func (s OrderFacadeStub) BookOrders(ctx context.Context, shop string, ids []string) (json.RawMessage, error) {
	if s.BookFn != nil {
		return s.BookFn(ctx, shop, ids)
	}
	return json.RawMessage(`{"booked":true}`), nil
}

// AirwayBill returns a tiny fake document unless overridden.
func (s OrderFacadeStub) AirwayBill(ctx context.Context, shop, id, cod string) (*airwaybill.Document, error) {
	if s.AirwayBillFn != nil {
		return s.AirwayBillFn(ctx, shop, id, cod)
	}
	return &airwaybill.Document{FileName: "airway-bill-" + id + ".pdf", Content: []byte("%PDF-1.3")}, nil
}

// DetailsFacadeStub simulates order lookups.
type DetailsFacadeStub struct {
	DetailsFn func(context.Context, string, string) (*model.OrderDetails, error)
	BulkFn    func(context.Context, string, []string) (*model.BulkDetails, error)
	TestFn    func(context.Context, string, []string) (*model.DiagnosticsReport, error)
}

// OrderDetails returns a minimal order unless overridden.
func (s DetailsFacadeStub) OrderDetails(ctx context.Context, shop, id string) (*model.OrderDetails, error) {
	if s.DetailsFn != nil {
		return s.DetailsFn(ctx, shop, id)
	}
	return &model.OrderDetails{Order: &model.CanonicalOrder{ID: id}, OrderID: id}, nil
}

// BulkOrderDetails returns an empty listing unless overridden.
func (s DetailsFacadeStub) BulkOrderDetails(ctx context.Context, shop string, ids []string) (*model.BulkDetails, error) {
	if s.BulkFn != nil {
		return s.BulkFn(ctx, shop, ids)
	}
	return &model.BulkDetails{ShopifyStoreURL: shop, Orders: []model.DetailedOrder{}}, nil
}

// TestOrder reports a healthy setup unless overridden.
func (s DetailsFacadeStub) TestOrder(ctx context.Context, shop string, ids []string) (*model.DiagnosticsReport, error) {
	if s.TestFn != nil {
		return s.TestFn(ctx, shop, ids)
	}
	return &model.DiagnosticsReport{Success: true, Message: "All systems working correctly!"}, nil
}

// HealthFacadeStub reports dependency health.
type HealthFacadeStub struct {
	Err error
}

// Health returns the configured error.
func (s HealthFacadeStub) Health(context.Context) error {
	return s.Err
}

// CourierFacadeStub aggregates every facade stub together with token parsing.
type CourierFacadeStub struct {
	SetupFacadeStub
	OrderFacadeStub
	DetailsFacadeStub
	HealthFacadeStub
	Strategy StrategyStub
}

// ParseToken delegates to the embedded strategy stub.
func (s CourierFacadeStub) ParseToken(token string) (string, error) {
	return s.Strategy.ParseToken(token)
}
