package dto

import (
	"encoding/json"
	"time"

	"github.com/rushrr/courier/internal/domain/model"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse acknowledges a request with a message.
type MessageResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Shop    string          `json:"shop,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// HealthResponse describes service liveness.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Message   string            `json:"message"`
	Database  string            `json:"database"`
	Endpoints map[string]string `json:"endpoints"`
}

// SessionResponse returns the session token issued for a provisioned shop.
type SessionResponse struct {
	Success   bool      `json:"success"`
	Shop      string    `json:"shop"`
	Token     string    `json:"token"`
	Scope     string    `json:"scope,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderSuccess is an order accepted by the logistics backend.
type OrderSuccess struct {
	OrderID          string          `json:"orderId"`
	Success          bool            `json:"success"`
	OrderNumber      string          `json:"orderNumber"`
	CustomerName     string          `json:"customerName"`
	NameSource       string          `json:"nameSource"`
	FetchSource      string          `json:"fetchSource"`
	ExternalResponse json.RawMessage `json:"externalResponse,omitempty"`
}

// FailureDetails is the collaborator response behind a failed order.
type FailureDetails struct {
	Status     int             `json:"status"`
	StatusText string          `json:"statusText"`
	Data       json.RawMessage `json:"data,omitempty"`
	URL        string          `json:"url,omitempty"`
}

// OrderFailure is an order that could not be processed.
type OrderFailure struct {
	OrderID string          `json:"orderId"`
	Error   string          `json:"error"`
	Details *FailureDetails `json:"details,omitempty"`
}

// BatchSummary counts batch outcomes.
type BatchSummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// BatchResults groups per-order outcomes.
type BatchResults struct {
	Successful []OrderSuccess `json:"successful"`
	Failed     []OrderFailure `json:"failed"`
	Summary    BatchSummary   `json:"summary"`
}

// ProcessOrdersResponse is the body of a processed batch.
type ProcessOrdersResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Results BatchResults `json:"results"`
}

// BookableOrder is a logistics order with its normalized Shopify data.
type BookableOrder struct {
	ID             string                `json:"id"`
	ShopifyOrderID string                `json:"shopifyOrderId"`
	Status         string                `json:"status"`
	Order          *model.CanonicalOrder `json:"order"`
}

// OrdersResponse lists logistics orders.
type OrdersResponse struct {
	Success bool            `json:"success"`
	Status  string          `json:"status"`
	Orders  []BookableOrder `json:"orders"`
}

// NewProcessOrdersResponse maps a batch result to its wire form.
func NewProcessOrdersResponse(r *model.BatchResult) ProcessOrdersResponse {
	results := BatchResults{
		Successful: make([]OrderSuccess, 0, len(r.Successful)),
		Failed:     make([]OrderFailure, 0, len(r.Failed)),
		Summary: BatchSummary{
			Total:      r.Summary.Total,
			Successful: r.Summary.Successful,
			Failed:     r.Summary.Failed,
		},
	}
	for _, s := range r.Successful {
		results.Successful = append(results.Successful, OrderSuccess{
			OrderID:          s.OrderID,
			Success:          true,
			OrderNumber:      s.OrderNumber,
			CustomerName:     s.CustomerName,
			NameSource:       string(s.NameSource),
			FetchSource:      string(s.FetchSource),
			ExternalResponse: s.ExternalResponse,
		})
	}
	for _, f := range r.Failed {
		failure := OrderFailure{OrderID: f.OrderID, Error: f.Error}
		if d := f.Details; d != nil {
			failure.Details = &FailureDetails{Status: d.Status, StatusText: d.StatusText, Data: d.Data, URL: d.URL}
		}
		results.Failed = append(results.Failed, failure)
	}
	return ProcessOrdersResponse{
		Success: r.AnySucceeded(),
		Message: r.Message(),
		Results: results,
	}
}

// NewBookableOrders maps logistics orders to their wire form.
func NewBookableOrders(in []model.BookableOrder) []BookableOrder {
	out := make([]BookableOrder, 0, len(in))
	for _, o := range in {
		out = append(out, BookableOrder{ID: o.ID, ShopifyOrderID: o.ShopifyOrderID, Status: o.Status, Order: o.Order})
	}
	return out
}
