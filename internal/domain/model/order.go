package model

// NameSource tells which record supplied the display customer name.
type NameSource string

const (
	NameSourceCustomer NameSource = "CUSTOMER"
	NameSourceBilling  NameSource = "BILLING"
	NameSourceShipping NameSource = "SHIPPING"
	NameSourceFallback NameSource = "FALLBACK"
)

// GuestCustomerName is used when no record carries a usable name.
const GuestCustomerName = "Guest Customer"

// FetchSource tells which upstream API produced an order.
type FetchSource string

const (
	FetchSourceREST    FetchSource = "rest"
	FetchSourceGraphQL FetchSource = "graphql"
)

// Customer is the buyer record attached to an order.
type Customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Address is a postal address. Absent upstream fields stay empty strings.
type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address1"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Zip       string `json:"zip"`
	Phone     string `json:"phone"`
}

// LineItem is a flattened order line.
type LineItem struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Quantity     int    `json:"quantity"`
	VariantID    string `json:"variant_id,omitempty"`
	VariantTitle string `json:"variant_title,omitempty"`
	SKU          string `json:"sku,omitempty"`
	Price        string `json:"price,omitempty"`
	ProductID    string `json:"product_id,omitempty"`
	ProductTitle string `json:"product_title,omitempty"`
	Vendor       string `json:"vendor,omitempty"`
}

// CanonicalOrder is the normalized order. Its JSON form is the payload
// accepted by the logistics backend create-order endpoint.
//
// TotalPrice keeps the upstream string formatting; parse it explicitly
// before doing arithmetic.
type CanonicalOrder struct {
	ID                   string     `json:"id"`
	OrderNumber          string     `json:"order_number,omitempty"`
	Name                 string     `json:"name,omitempty"`
	Email                string     `json:"email"`
	Phone                string     `json:"phone"`
	TotalPrice           string     `json:"total_price"`
	Currency             string     `json:"currency"`
	Customer             *Customer  `json:"customer,omitempty"`
	BillingAddress       Address    `json:"billing_address"`
	ShippingAddress      Address    `json:"shipping_address"`
	LineItems            []LineItem `json:"line_items"`
	OrderReferenceNumber string     `json:"orderReferenceNumber"`
	CustomerName         string     `json:"customerName"`
	NameSource           NameSource `json:"-"`
}
