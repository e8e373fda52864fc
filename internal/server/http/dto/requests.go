package dto

import (
	"github.com/rushrr/courier/internal/domain/model"
	"github.com/rushrr/courier/internal/domain/order"
)

// ProvisionSessionRequest carries Shopify admin credentials of an installed shop.
type ProvisionSessionRequest struct {
	Shop        string `json:"shop" validate:"required"`
	AccessToken string `json:"accessToken" validate:"required"`
	Scope       string `json:"scope"`
}

// SaveTokenRequest carries a logistics API token.
type SaveTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// ConnectRequest carries the merchant API key used to link the store.
type ConnectRequest struct {
	APIKey   string `json:"apiKey" validate:"required"`
	ShopName string `json:"shopName"`
}

// ProcessOrdersRequest lists the Shopify order ids to send.
type ProcessOrdersRequest struct {
	OrderIDs []order.FlexString `json:"orderIds" validate:"required,min=1,dive,required"`
}

// BulkDetailsRequest lists the Shopify order ids to look up. The list may be empty.
type BulkDetailsRequest struct {
	OrderIDs []order.FlexString `json:"orderIds" validate:"required,dive,required"`
}

// TestOrderRequest lists candidate order ids for the diagnostic run.
type TestOrderRequest struct {
	OrderIDs []order.FlexString `json:"orderIds"`
}

// OrderDetailsRequest names a single Shopify order.
type OrderDetailsRequest struct {
	OrderID order.FlexString `json:"orderId" validate:"required"`
}

// UpdateOrderRequest carries the snapshots an edit form started and ended with.
type UpdateOrderRequest struct {
	Baseline *model.CanonicalOrder `json:"baseline" validate:"required"`
	Edited   *model.CanonicalOrder `json:"edited" validate:"required"`
}

// BookOrdersRequest lists logistics order ids to book.
type BookOrdersRequest struct {
	OrderIDs []order.FlexString `json:"orderIds" validate:"required,min=1,dive,required"`
}

// IDs converts flexible ids to plain strings.
func IDs(in []order.FlexString) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, id := range in {
		out[i] = id.String()
	}
	return out
}
