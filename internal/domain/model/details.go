package model

// OrderDetails is a single normalized order together with its display name.
type OrderDetails struct {
	Order        *CanonicalOrder `json:"order"`
	OrderID      string          `json:"orderId"`
	CustomerName string          `json:"customerName"`
}

// DetailedLineItem is a line item enriched with its product summary.
type DetailedLineItem struct {
	LineItem
	ProductDetails *ProductDetails `json:"product_details"`
}

// DetailedOrder is a normalized order whose line items carry product details.
type DetailedOrder struct {
	*CanonicalOrder
	LineItems []DetailedLineItem `json:"line_items"`
}

// BulkDetails is the answer to a bulk order details lookup.
type BulkDetails struct {
	ShopifyStoreURL string          `json:"shopifyStoreUrl"`
	Orders          []DetailedOrder `json:"orders"`
}
