package test

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rushrr/courier/internal/adapter/logistics"
	"github.com/rushrr/courier/internal/adapter/shopify"
	domainErrors "github.com/rushrr/courier/internal/domain/errors"
	"github.com/rushrr/courier/internal/domain/model"
	"github.com/rushrr/courier/internal/domain/order"
)

// ShopifyClientStub serves orders and products from maps or overrides.
type ShopifyClientStub struct {
	FetchRESTFn    func(context.Context, model.ShopSession, string) (*order.FlatOrder, error)
	FetchGraphQLFn func(context.Context, model.ShopSession, string) (*order.GraphOrder, error)
	FetchProductFn func(context.Context, model.ShopSession, string) (*shopify.Product, error)

	Flat     map[string]*order.FlatOrder
	Graph    map[string]*order.GraphOrder
	Products map[string]*shopify.Product

	mu           sync.Mutex
	ProductCalls []string
}

// FetchREST returns the configured flat order or not found.
func (s *ShopifyClientStub) FetchREST(ctx context.Context, session model.ShopSession, id string) (*order.FlatOrder, error) {
	if s.FetchRESTFn != nil {
		return s.FetchRESTFn(ctx, session, id)
	}
	if o, ok := s.Flat[id]; ok {
		return o, nil
	}
	return nil, domainErrors.ErrNotFound
}

// FetchGraphQL returns the configured graph order or not found.
func (s *ShopifyClientStub) FetchGraphQL(ctx context.Context, session model.ShopSession, id string) (*order.GraphOrder, error) {
	if s.FetchGraphQLFn != nil {
		return s.FetchGraphQLFn(ctx, session, id)
	}
	if o, ok := s.Graph[id]; ok {
		return o, nil
	}
	return nil, domainErrors.ErrNotFound
}

// FetchProduct records the call and returns the configured product.
func (s *ShopifyClientStub) FetchProduct(ctx context.Context, session model.ShopSession, id string) (*shopify.Product, error) {
	s.mu.Lock()
	s.ProductCalls = append(s.ProductCalls, id)
	s.mu.Unlock()
	if s.FetchProductFn != nil {
		return s.FetchProductFn(ctx, session, id)
	}
	if p, ok := s.Products[id]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrNotFound
}

// CreateOrderCall stores a CreateOrder invocation.
type CreateOrderCall struct {
	Token   string
	Shop    string
	Payload *model.CanonicalOrder
}

// UpdateOrderCall stores an UpdateOrder invocation.
type UpdateOrderCall struct {
	Token string
	ID    string
	Patch model.EditPatch
}

// LogisticsClientStub records calls and answers with overrides or defaults.
type LogisticsClientStub struct {
	CreateOrderFn  func(context.Context, string, string, *model.CanonicalOrder) (json.RawMessage, error)
	UpdateOrderFn  func(context.Context, string, string, model.EditPatch) (json.RawMessage, error)
	BookOrdersFn   func(context.Context, string, []string) (json.RawMessage, error)
	ListOrdersFn   func(context.Context, string) ([]model.LogisticsRecord, error)
	VerifyStoreFn  func(context.Context, string) (string, error)
	VerifyAPIKeyFn func(context.Context, string, string, string, string) (json.RawMessage, error)

	mu      sync.Mutex
	Created []CreateOrderCall
	Updated []UpdateOrderCall
	Booked  [][]string
}

// CreateOrder records the payload and acknowledges it.
func (s *LogisticsClientStub) CreateOrder(ctx context.Context, token, shop string, payload *model.CanonicalOrder) (json.RawMessage, error) {
	s.mu.Lock()
	s.Created = append(s.Created, CreateOrderCall{Token: token, Shop: shop, Payload: payload})
	s.mu.Unlock()
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, token, shop, payload)
	}
	return json.RawMessage(`{"success":true}`), nil
}

// UpdateOrder records the patch and acknowledges it.
func (s *LogisticsClientStub) UpdateOrder(ctx context.Context, token, id string, patch model.EditPatch) (json.RawMessage, error) {
	s.mu.Lock()
	s.Updated = append(s.Updated, UpdateOrderCall{Token: token, ID: id, Patch: patch})
	s.mu.Unlock()
	if s.UpdateOrderFn != nil {
		return s.UpdateOrderFn(ctx, token, id, patch)
	}
	return json.RawMessage(`{"success":true}`), nil
}

// BookOrders records the ids and acknowledges them.
func (s *LogisticsClientStub) BookOrders(ctx context.Context, token string, ids []string) (json.RawMessage, error) {
	s.mu.Lock()
	s.Booked = append(s.Booked, ids)
	s.mu.Unlock()
	if s.BookOrdersFn != nil {
		return s.BookOrdersFn(ctx, token, ids)
	}
	return json.RawMessage(`{"success":true}`), nil
}

// ListOrders returns the override result or nothing.
func (s *LogisticsClientStub) ListOrders(ctx context.Context, token string) ([]model.LogisticsRecord, error) {
	if s.ListOrdersFn != nil {
		return s.ListOrdersFn(ctx, token)
	}
	return nil, nil
}

// VerifyStore returns the override result or a fixed token.
func (s *LogisticsClientStub) VerifyStore(ctx context.Context, shop string) (string, error) {
	if s.VerifyStoreFn != nil {
		return s.VerifyStoreFn(ctx, shop)
	}
	return "verified-token", nil
}

// VerifyAPIKey returns the override result or a success body.
func (s *LogisticsClientStub) VerifyAPIKey(ctx context.Context, token, apiKey, shop, shopName string) (json.RawMessage, error) {
	if s.VerifyAPIKeyFn != nil {
		return s.VerifyAPIKeyFn(ctx, token, apiKey, shop, shopName)
	}
	return json.RawMessage(`{"success":true}`), nil
}

var _ shopify.Client = (*ShopifyClientStub)(nil)
var _ logistics.Client = (*LogisticsClientStub)(nil)
