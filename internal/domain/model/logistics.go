package model

import "encoding/json"

// LogisticsStatusUnbooked marks orders created but not yet booked with a courier.
const LogisticsStatusUnbooked = "unbooked"

// LogisticsRecord is an order as stored by the logistics backend.
type LogisticsRecord struct {
	ID             string
	ShopifyOrderID string
	Status         string
	OrderData      json.RawMessage
}

// BookableOrder pairs a logistics record with its normalized order data.
type BookableOrder struct {
	ID             string
	ShopifyOrderID string
	Status         string
	Order          *CanonicalOrder
}

// ProductDetails is the product summary attached to line items of bulk lookups.
type ProductDetails struct {
	Title  string  `json:"title"`
	Vendor string  `json:"vendor"`
	Image  *string `json:"image"`
	Handle string  `json:"handle"`
	Tags   string  `json:"tags"`
}
