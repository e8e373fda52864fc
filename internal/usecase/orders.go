package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rushrr/courier/internal/adapter/logistics"
	"github.com/rushrr/courier/internal/airwaybill"
	domainErrors "github.com/rushrr/courier/internal/domain/errors"
	"github.com/rushrr/courier/internal/domain/model"
	"github.com/rushrr/courier/internal/domain/order"
	"github.com/rushrr/courier/internal/domain/repository"
)

// StatusAll disables status filtering of the order list.
const StatusAll = "all"

// OrdersUseCase manages orders already handed to the logistics backend.
type OrdersUseCase struct {
	credentials repository.CredentialStore
	logistics   logistics.Client
	bills       *airwaybill.Generator
	opts        order.Options
	metrics     Metrics
	logger      *slog.Logger
}

// NewOrdersUseCase constructs OrdersUseCase.
func NewOrdersUseCase(
	credentials repository.CredentialStore,
	client logistics.Client,
	bills *airwaybill.Generator,
	fetcher *OrderFetcher,
	metrics Metrics,
	logger *slog.Logger,
) *OrdersUseCase {
	return &OrdersUseCase{
		credentials: credentials,
		logistics:   client,
		bills:       bills,
		opts:        fetcher.Options(),
		metrics:     metrics,
		logger:      logger,
	}
}

// List returns the shop's logistics orders with the given status, unbooked by default.
func (u *OrdersUseCase) List(ctx context.Context, shop, status string) ([]model.BookableOrder, error) {
	token, err := requireToken(ctx, u.credentials, shop)
	if err != nil {
		return nil, err
	}

	records, err := u.logistics.ListOrders(ctx, token)
	u.metrics.Downstream("list_orders", err)
	if err != nil {
		return nil, err
	}

	status = strings.TrimSpace(status)
	if status == "" {
		status = model.LogisticsStatusUnbooked
	}

	orders := make([]model.BookableOrder, 0, len(records))
	for _, record := range records {
		if status != StatusAll && !strings.EqualFold(record.Status, status) {
			continue
		}
		orders = append(orders, u.bookable(record))
	}
	return orders, nil
}

// Get returns one logistics order by its logistics id.
func (u *OrdersUseCase) Get(ctx context.Context, shop, id string) (*model.BookableOrder, error) {
	orders, err := u.List(ctx, shop, StatusAll)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Update sends the fields changed between baseline and edited. Nothing is sent
// when no field changed.
func (u *OrdersUseCase) Update(ctx context.Context, shop, id string, baseline, edited *model.CanonicalOrder) (json.RawMessage, error) {
	if strings.TrimSpace(id) == "" || baseline == nil || edited == nil {
		return nil, domainErrors.ErrInvalidRequest
	}

	patch := order.BuildPatch(baseline, edited)
	if patch.IsEmpty() {
		return nil, domainErrors.ErrNoChangesToSave
	}

	token, err := requireToken(ctx, u.credentials, shop)
	if err != nil {
		return nil, err
	}

	response, err := u.logistics.UpdateOrder(ctx, token, id, patch)
	u.metrics.Downstream("update_order", err)
	if err != nil {
		return nil, err
	}
	u.logger.Info("logistics order updated", slog.String("shop", shop), slog.String("order_id", id))
	return response, nil
}

// Book books the given logistics orders with the courier.
func (u *OrdersUseCase) Book(ctx context.Context, shop string, ids []string) (json.RawMessage, error) {
	if len(ids) == 0 {
		return nil, domainErrors.ErrInvalidRequest
	}
	token, err := requireToken(ctx, u.credentials, shop)
	if err != nil {
		return nil, err
	}

	response, err := u.logistics.BookOrders(ctx, token, ids)
	u.metrics.Downstream("book_orders", err)
	if err != nil {
		return nil, err
	}
	u.logger.Info("logistics orders booked", slog.String("shop", shop), slog.Int("count", len(ids)))
	return response, nil
}

// AirwayBill renders the airway bill of a logistics order.
func (u *OrdersUseCase) AirwayBill(ctx context.Context, shop, id, cod string) (*airwaybill.Document, error) {
	bookable, err := u.Get(ctx, shop, id)
	if err != nil {
		return nil, err
	}
	if bookable.Order == nil {
		return nil, fmt.Errorf("%w: logistics order %s carries no order data", domainErrors.ErrMalformedOrder, id)
	}
	return u.bills.Generate(bookable.Order, cod)
}

func (u *OrdersUseCase) bookable(record model.LogisticsRecord) model.BookableOrder {
	out := model.BookableOrder{
		ID:             record.ID,
		ShopifyOrderID: record.ShopifyOrderID,
		Status:         record.Status,
	}
	data := bytes.TrimSpace(record.OrderData)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return out
	}

	canonical, err := order.NormalizeRaw(data, record.ShopifyOrderID, u.opts)
	if err != nil {
		u.logger.Warn("logistics order data not normalized",
			slog.String("order_id", record.ID),
			slog.String("error", err.Error()),
		)
		return out
	}
	out.Order = canonical
	return out
}
