package app

import (
	"context"
	"encoding/json"

	"go.uber.org/fx"

	"github.com/rushrr/courier/internal/airwaybill"
	"github.com/rushrr/courier/internal/domain/model"
	"github.com/rushrr/courier/internal/pkg/auth"
	"github.com/rushrr/courier/internal/usecase"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// CourierFacade exposes the use cases to the HTTP layer.
type CourierFacade struct {
	setup       *usecase.SetupUseCase
	process     *usecase.ProcessOrdersUseCase
	orders      *usecase.OrdersUseCase
	details     *usecase.DetailsUseCase
	diagnostics *usecase.DiagnosticsUseCase
	strategy    auth.Strategy
	health      HealthChecker
}

// FacadeParams lists the collaborators of CourierFacade.
type FacadeParams struct {
	fx.In

	Setup       *usecase.SetupUseCase
	Process     *usecase.ProcessOrdersUseCase
	Orders      *usecase.OrdersUseCase
	Details     *usecase.DetailsUseCase
	Diagnostics *usecase.DiagnosticsUseCase
	Strategy    auth.Strategy
	Health      HealthChecker
}

func NewCourierFacade(p FacadeParams) *CourierFacade {
	return &CourierFacade{
		setup:       p.Setup,
		process:     p.Process,
		orders:      p.Orders,
		details:     p.Details,
		diagnostics: p.Diagnostics,
		strategy:    p.Strategy,
		health:      p.Health,
	}
}

func (f *CourierFacade) ParseToken(token string) (string, error) {
	return f.strategy.ParseToken(token)
}

func (f *CourierFacade) ProvisionSession(ctx context.Context, session model.ShopSession) (*model.ShopSession, string, error) {
	return f.setup.ProvisionSession(ctx, session)
}

func (f *CourierFacade) RemoveShop(ctx context.Context, shop string) error {
	return f.setup.RemoveShop(ctx, shop)
}

func (f *CourierFacade) SaveToken(ctx context.Context, shop, token string) error {
	return f.setup.SaveToken(ctx, shop, token)
}

func (f *CourierFacade) SetupStatus(ctx context.Context, shop string) (model.SetupStatus, error) {
	return f.setup.Status(ctx, shop)
}

func (f *CourierFacade) Connect(ctx context.Context, shop, shopName, apiKey string) (json.RawMessage, error) {
	return f.setup.Connect(ctx, shop, shopName, apiKey)
}

func (f *CourierFacade) Disconnect(ctx context.Context, shop string) error {
	return f.setup.Disconnect(ctx, shop)
}

func (f *CourierFacade) ProcessOrders(ctx context.Context, shop string, ids []string) (*model.BatchResult, error) {
	return f.process.Process(ctx, shop, ids)
}

func (f *CourierFacade) ListOrders(ctx context.Context, shop, status string) ([]model.BookableOrder, error) {
	return f.orders.List(ctx, shop, status)
}

func (f *CourierFacade) UpdateOrder(ctx context.Context, shop, id string, baseline, edited *model.CanonicalOrder) (json.RawMessage, error) {
	return f.orders.Update(ctx, shop, id, baseline, edited)
}

func (f *CourierFacade) BookOrders(ctx context.Context, shop string, ids []string) (json.RawMessage, error) {
	return f.orders.Book(ctx, shop, ids)
}

func (f *CourierFacade) AirwayBill(ctx context.Context, shop, id, cod string) (*airwaybill.Document, error) {
	return f.orders.AirwayBill(ctx, shop, id, cod)
}

func (f *CourierFacade) OrderDetails(ctx context.Context, shop, id string) (*model.OrderDetails, error) {
	return f.details.OrderDetails(ctx, shop, id)
}

func (f *CourierFacade) BulkOrderDetails(ctx context.Context, shop string, ids []string) (*model.BulkDetails, error) {
	return f.details.BulkDetails(ctx, shop, ids)
}

func (f *CourierFacade) TestOrder(ctx context.Context, shop string, ids []string) (*model.DiagnosticsReport, error) {
	return f.diagnostics.TestOrder(ctx, shop, ids)
}

func (f *CourierFacade) Health(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
