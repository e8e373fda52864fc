package order

import (
	"bytes"
	"encoding/json"
	"fmt"

	domainErrors "github.com/rushrr/courier/internal/domain/errors"
)

// Source is an upstream order record. It is either *FlatOrder or *GraphOrder.
type Source interface {
	isSource()
}

// FlexString decodes a JSON string, number or null into its string form.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*s = FlexString(n.String())
	return nil
}

func (s FlexString) String() string { return string(s) }

// FlatOrder is the REST admin API order shape.
type FlatOrder struct {
	ID              FlexString     `json:"id"`
	OrderNumber     FlexString     `json:"order_number"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	ContactEmail    string         `json:"contact_email"`
	Phone           string         `json:"phone"`
	TotalPrice      FlexString     `json:"total_price"`
	Currency        string         `json:"currency"`
	Customer        *FlatCustomer  `json:"customer"`
	BillingAddress  *FlatAddress   `json:"billing_address"`
	ShippingAddress *FlatAddress   `json:"shipping_address"`
	LineItems       []FlatLineItem `json:"line_items"`
}

// FlatCustomer is the REST customer shape.
type FlatCustomer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// FlatAddress is the REST address shape.
type FlatAddress struct {
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Address1  string     `json:"address1"`
	City      string     `json:"city"`
	Country   string     `json:"country"`
	Zip       FlexString `json:"zip"`
	Phone     string     `json:"phone"`
}

// FlatLineItem is the REST line item shape.
type FlatLineItem struct {
	ID           FlexString `json:"id"`
	Title        string     `json:"title"`
	Quantity     int        `json:"quantity"`
	VariantID    FlexString `json:"variant_id"`
	VariantTitle string     `json:"variant_title"`
	SKU          string     `json:"sku"`
	Price        FlexString `json:"price"`
	ProductID    FlexString `json:"product_id"`
	ProductTitle string     `json:"product_title"`
	Vendor       string     `json:"vendor"`
}

func (*FlatOrder) isSource() {}

// GraphOrder is the GraphQL admin API order shape.
type GraphOrder struct {
	ID              FlexString     `json:"id"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	TotalPriceSet   *GraphMoneyBag `json:"totalPriceSet"`
	Customer        *GraphCustomer `json:"customer"`
	BillingAddress  *GraphAddress  `json:"billingAddress"`
	ShippingAddress *GraphAddress  `json:"shippingAddress"`
	LineItems       GraphLineItems `json:"lineItems"`
}

// GraphMoneyBag wraps amounts in shop currency.
type GraphMoneyBag struct {
	ShopMoney GraphMoney `json:"shopMoney"`
}

// GraphMoney is an amount with its currency code.
type GraphMoney struct {
	Amount       FlexString `json:"amount"`
	CurrencyCode string     `json:"currencyCode"`
}

// GraphCustomer is the GraphQL customer shape.
type GraphCustomer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// GraphAddress is the GraphQL mailing address shape.
type GraphAddress struct {
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Address1  string     `json:"address1"`
	City      string     `json:"city"`
	Country   string     `json:"country"`
	Zip       FlexString `json:"zip"`
	Phone     string     `json:"phone"`
}

// GraphLineItems is the connection of line item edges.
type GraphLineItems struct {
	Edges []GraphLineItemEdge `json:"edges"`
}

// GraphLineItemEdge wraps a single line item node.
type GraphLineItemEdge struct {
	Node GraphLineItem `json:"node"`
}

// GraphLineItem is the GraphQL line item node.
type GraphLineItem struct {
	ID       FlexString    `json:"id"`
	Title    string        `json:"title"`
	Quantity int           `json:"quantity"`
	Variant  *GraphVariant `json:"variant"`
	Product  *GraphProduct `json:"product"`
}

// GraphVariant is the variant attached to a GraphQL line item.
type GraphVariant struct {
	ID    FlexString `json:"id"`
	Title string     `json:"title"`
	SKU   string     `json:"sku"`
	Price FlexString `json:"price"`
}

// GraphProduct is the product attached to a GraphQL line item.
type GraphProduct struct {
	ID     FlexString `json:"id"`
	Title  string     `json:"title"`
	Vendor string     `json:"vendor"`
}

func (*GraphOrder) isSource() {}

// DecodeSource decodes a raw order object, detecting the variant structurally:
// a totalPriceSet key means the GraphQL shape.
func DecodeSource(raw []byte) (Source, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrMalformedOrder, err)
	}
	if probe == nil {
		return nil, fmt.Errorf("%w: empty order", domainErrors.ErrMalformedOrder)
	}

	if _, ok := probe["totalPriceSet"]; ok {
		var g GraphOrder
		if err := json.Unmarshal(raw, &g); err != nil {
			return nil, fmt.Errorf("%w: %v", domainErrors.ErrMalformedOrder, err)
		}
		return &g, nil
	}

	var f FlatOrder
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrMalformedOrder, err)
	}
	return &f, nil
}
