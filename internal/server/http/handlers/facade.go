package handlers

import (
	"context"
	"encoding/json"

	"github.com/rushrr/courier/internal/airwaybill"
	"github.com/rushrr/courier/internal/domain/model"
)

// SetupFacade manages shop sessions and logistics credentials.
type SetupFacade interface {
	ProvisionSession(ctx context.Context, session model.ShopSession) (*model.ShopSession, string, error)
	RemoveShop(ctx context.Context, shop string) error
	SaveToken(ctx context.Context, shop, token string) error
	SetupStatus(ctx context.Context, shop string) (model.SetupStatus, error)
	Connect(ctx context.Context, shop, shopName, apiKey string) (json.RawMessage, error)
	Disconnect(ctx context.Context, shop string) error
}

// OrderFacade covers sending orders to the logistics backend and managing them there.
type OrderFacade interface {
	ProcessOrders(ctx context.Context, shop string, ids []string) (*model.BatchResult, error)
	ListOrders(ctx context.Context, shop, status string) ([]model.BookableOrder, error)
	UpdateOrder(ctx context.Context, shop, id string, baseline, edited *model.CanonicalOrder) (json.RawMessage, error)
	BookOrders(ctx context.Context, shop string, ids []string) (json.RawMessage, error)
	AirwayBill(ctx context.Context, shop, id, cod string) (*airwaybill.Document, error)
}

// DetailsFacade looks up Shopify orders for display and diagnostics.
type DetailsFacade interface {
	OrderDetails(ctx context.Context, shop, id string) (*model.OrderDetails, error)
	BulkOrderDetails(ctx context.Context, shop string, ids []string) (*model.BulkDetails, error)
	TestOrder(ctx context.Context, shop string, ids []string) (*model.DiagnosticsReport, error)
}

// HealthFacade reports dependency health.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// CourierFacade aggregates the full set of operations used across handlers.
type CourierFacade interface {
	SetupFacade
	OrderFacade
	DetailsFacade
	HealthFacade
	ParseToken(token string) (string, error)
}
