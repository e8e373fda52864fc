package order

import (
	"errors"
	"testing"

	domainErrors "github.com/rushrr/courier/internal/domain/errors"
	"github.com/rushrr/courier/internal/domain/model"
)

const flatFixture = `{
	"id": 5920323403859,
	"order_number": 1001,
	"name": "#1001",
	"email": "",
	"contact_email": "buyer@example.com",
	"phone": "+923000000000",
	"total_price": "2500.00",
	"currency": "PKR",
	"customer": {"first_name": "Ali", "last_name": "Raza", "email": "buyer@example.com", "phone": null},
	"billing_address": {"first_name": "Ali", "last_name": "Raza", "address1": "12 Mall Rd", "city": "Lahore", "country": "Pakistan", "zip": 54000, "phone": "111"},
	"shipping_address": null,
	"line_items": [
		{"id": 1, "title": "Shirt", "quantity": 2, "variant_id": 11, "variant_title": "M", "sku": "SH-M", "price": "1250.00", "product_id": 101, "vendor": "Acme"}
	]
}`

const graphFixture = `{
	"id": "gid://shopify/Order/5920323403859",
	"name": "#1001",
	"email": "buyer@example.com",
	"phone": "+923000000000",
	"totalPriceSet": {"shopMoney": {"amount": "2500.00", "currencyCode": "PKR"}},
	"customer": {"firstName": "Ali", "lastName": "Raza", "email": "buyer@example.com", "phone": null},
	"billingAddress": {"firstName": "Ali", "lastName": "Raza", "address1": "12 Mall Rd", "city": "Lahore", "country": "Pakistan", "zip": "54000", "phone": "111"},
	"shippingAddress": null,
	"lineItems": {"edges": [
		{"node": {"id": "gid://shopify/LineItem/1", "title": "Shirt", "quantity": 2,
			"variant": {"id": "gid://shopify/ProductVariant/11", "title": "M", "sku": "SH-M", "price": "1250.00"},
			"product": {"id": "gid://shopify/Product/101", "title": "Shirt", "vendor": "Acme"}}},
		{"node": {"id": "gid://shopify/LineItem/2", "title": "Gift card", "quantity": 1, "variant": null, "product": null}}
	]}
}`

func TestDecodeSourceDetectsVariant(t *testing.T) {
	flat, err := DecodeSource([]byte(flatFixture))
	if err != nil {
		t.Fatalf("decode flat: %v", err)
	}
	if _, ok := flat.(*FlatOrder); !ok {
		t.Fatalf("expected *FlatOrder, got %T", flat)
	}

	graph, err := DecodeSource([]byte(graphFixture))
	if err != nil {
		t.Fatalf("decode graph: %v", err)
	}
	if _, ok := graph.(*GraphOrder); !ok {
		t.Fatalf("expected *GraphOrder, got %T", graph)
	}
}

func TestDecodeSourceRejectsInvalidJSON(t *testing.T) {
	for _, raw := range []string{`not json`, `null`, `[1,2]`, `{"id": true}`} {
		if _, err := DecodeSource([]byte(raw)); !errors.Is(err, domainErrors.ErrMalformedOrder) {
			t.Fatalf("%s: expected malformed order, got %v", raw, err)
		}
	}
}

func TestNormalizeFlat(t *testing.T) {
	got, err := NormalizeRaw([]byte(flatFixture), "5920323403859", DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "5920323403859" || got.OrderNumber != "1001" || got.OrderReferenceNumber != "1001" {
		t.Fatalf("unexpected identity fields: %+v", got)
	}
	if got.Email != "buyer@example.com" {
		t.Fatalf("expected contact email fallback, got %q", got.Email)
	}
	if got.TotalPrice != "2500.00" || got.Currency != "PKR" {
		t.Fatalf("unexpected money fields %q %q", got.TotalPrice, got.Currency)
	}
	if got.BillingAddress.Zip != "54000" || got.BillingAddress.City != "Lahore" {
		t.Fatalf("unexpected billing address %+v", got.BillingAddress)
	}
	if got.ShippingAddress != (model.Address{}) {
		t.Fatalf("null shipping address must become empty address, got %+v", got.ShippingAddress)
	}
	if len(got.LineItems) != 1 || got.LineItems[0].ProductID != "101" || got.LineItems[0].Price != "1250.00" {
		t.Fatalf("unexpected line items %+v", got.LineItems)
	}
	if got.CustomerName != "Ali Raza" || got.NameSource != model.NameSourceCustomer {
		t.Fatalf("unexpected customer name %q (%s)", got.CustomerName, got.NameSource)
	}
}

func TestNormalizeGraph(t *testing.T) {
	got, err := NormalizeRaw([]byte(graphFixture), "5920323403859", DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "5920323403859" {
		t.Fatalf("expected lookup id, got %q", got.ID)
	}
	if got.OrderNumber != "1001" || got.OrderReferenceNumber != "1001" {
		t.Fatalf("unexpected order number %q / %q", got.OrderNumber, got.OrderReferenceNumber)
	}
	if got.BillingAddress.FirstName != "Ali" || got.BillingAddress.Address1 != "12 Mall Rd" || got.BillingAddress.Zip != "54000" {
		t.Fatalf("unexpected billing address %+v", got.BillingAddress)
	}
	if len(got.LineItems) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(got.LineItems))
	}
	first := got.LineItems[0]
	if first.VariantID != "gid://shopify/ProductVariant/11" || first.SKU != "SH-M" || first.ProductTitle != "Shirt" || first.Vendor != "Acme" {
		t.Fatalf("unexpected first item %+v", first)
	}
	second := got.LineItems[1]
	if second.VariantID != "" || second.ProductID != "" || second.Title != "Gift card" {
		t.Fatalf("missing variant/product must stay empty, got %+v", second)
	}
}

func TestNormalizeGraphDefaults(t *testing.T) {
	raw := `{"id": "gid://shopify/Order/7", "totalPriceSet": null, "lineItems": {"edges": []}}`
	got, err := NormalizeRaw([]byte(raw), "", DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "7" || got.OrderReferenceNumber != "7" {
		t.Fatalf("expected id from gid, got %+v", got)
	}
	if got.TotalPrice != "0.00" || got.Currency != "USD" {
		t.Fatalf("unexpected defaults %q %q", got.TotalPrice, got.Currency)
	}
}

func TestNormalizeFlatDefaults(t *testing.T) {
	got, err := NormalizeRaw([]byte(`{"id": "42"}`), "", DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalPrice != "0.00" || got.Currency != "PKR" {
		t.Fatalf("unexpected defaults %q %q", got.TotalPrice, got.Currency)
	}
	if got.OrderReferenceNumber != "42" {
		t.Fatalf("expected lookup fallback, got %q", got.OrderReferenceNumber)
	}
	if got.LineItems == nil {
		t.Fatal("line items must be an empty slice, not nil")
	}
}

func TestNormalizeCurrencyDefaultsAreConfigurable(t *testing.T) {
	opts := Options{FlatCurrency: "AED", GraphCurrency: "EUR"}

	flat, err := NormalizeRaw([]byte(`{"id": 1}`), "1", opts)
	if err != nil || flat.Currency != "AED" {
		t.Fatalf("expected AED, got %v %v", flat, err)
	}
	graph, err := NormalizeRaw([]byte(`{"id": "gid://shopify/Order/1", "totalPriceSet": {"shopMoney": {"amount": "1.00"}}}`), "1", opts)
	if err != nil || graph.Currency != "EUR" {
		t.Fatalf("expected EUR, got %v %v", graph, err)
	}
}

func TestNormalizeGraphWithoutCustomerUsesFallbackChain(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantName   string
		wantSource model.NameSource
	}{
		{
			name:       "billing",
			raw:        `{"id": "gid://shopify/Order/1", "totalPriceSet": {}, "billingAddress": {"firstName": "Bilal"}}`,
			wantName:   "Bilal",
			wantSource: model.NameSourceBilling,
		},
		{
			name:       "shipping",
			raw:        `{"id": "gid://shopify/Order/1", "totalPriceSet": {}, "shippingAddress": {"lastName": "Shah"}}`,
			wantName:   "Shah",
			wantSource: model.NameSourceShipping,
		},
		{
			name:       "guest",
			raw:        `{"id": "gid://shopify/Order/1", "totalPriceSet": {}}`,
			wantName:   "Guest Customer",
			wantSource: model.NameSourceFallback,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeRaw([]byte(tt.raw), "1", DefaultOptions())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.CustomerName != tt.wantName || got.NameSource != tt.wantSource {
				t.Fatalf("expected %q (%s), got %q (%s)", tt.wantName, tt.wantSource, got.CustomerName, got.NameSource)
			}
		})
	}
}

func TestNormalizeMissingIDIsMalformed(t *testing.T) {
	cases := []string{
		`{"order_number": 1001, "name": "#1001"}`,
		`{"id": null, "total_price": "1.00"}`,
		`{"id": "  "}`,
		`{"name": "#1001", "totalPriceSet": {"shopMoney": {"amount": "1.00"}}}`,
	}
	for _, raw := range cases {
		if _, err := NormalizeRaw([]byte(raw), "1001", DefaultOptions()); !errors.Is(err, domainErrors.ErrMalformedOrder) {
			t.Fatalf("%s: expected malformed order, got %v", raw, err)
		}
	}
	if _, err := Normalize(nil, "1", DefaultOptions()); !errors.Is(err, domainErrors.ErrMalformedOrder) {
		t.Fatalf("nil source: expected malformed order, got %v", err)
	}
}

func TestNormalizeCrossVariantEquivalence(t *testing.T) {
	flat, err := NormalizeRaw([]byte(flatFixture), "5920323403859", DefaultOptions())
	if err != nil {
		t.Fatalf("flat: %v", err)
	}
	graph, err := NormalizeRaw([]byte(graphFixture), "5920323403859", DefaultOptions())
	if err != nil {
		t.Fatalf("graph: %v", err)
	}
	if flat.TotalPrice != graph.TotalPrice || flat.Currency != graph.Currency || flat.CustomerName != graph.CustomerName {
		t.Fatalf("variants disagree: flat=%+v graph=%+v", flat, graph)
	}
	if flat.ID != graph.ID || flat.OrderReferenceNumber != graph.OrderReferenceNumber || flat.BillingAddress != graph.BillingAddress {
		t.Fatalf("variants disagree on identity or address: flat=%+v graph=%+v", flat, graph)
	}
}

func TestReferenceNumber(t *testing.T) {
	tests := []struct {
		orderNumber, name, lookup, want string
	}{
		{"1001", "#1001", "9", "1001"},
		{"", "#1002", "9", "1002"},
		{"", "1003", "9", "1003"},
		{"", "", "9", "9"},
		{"  ", "#", "9", "9"},
	}
	for _, tt := range tests {
		if got := ReferenceNumber(tt.orderNumber, tt.name, tt.lookup); got != tt.want {
			t.Fatalf("ReferenceNumber(%q, %q, %q) = %q, want %q", tt.orderNumber, tt.name, tt.lookup, got, tt.want)
		}
	}
}

func TestFlexString(t *testing.T) {
	var o FlatOrder
	if err := o.ID.UnmarshalJSON([]byte(`123`)); err != nil || o.ID != "123" {
		t.Fatalf("number: %q %v", o.ID, err)
	}
	if err := o.ID.UnmarshalJSON([]byte(`"abc"`)); err != nil || o.ID != "abc" {
		t.Fatalf("string: %q %v", o.ID, err)
	}
	if err := o.ID.UnmarshalJSON([]byte(`null`)); err != nil || o.ID != "" {
		t.Fatalf("null: %q %v", o.ID, err)
	}
	if err := o.ID.UnmarshalJSON([]byte(`{}`)); err == nil {
		t.Fatal("expected error for object")
	}
}
