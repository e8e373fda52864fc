package order

import (
	"testing"

	"github.com/rushrr/courier/internal/domain/model"
)

func TestResolveCustomerName(t *testing.T) {
	tests := []struct {
		name       string
		order      *model.CanonicalOrder
		wantName   string
		wantSource model.NameSource
	}{
		{
			name:       "customer first name only",
			order:      &model.CanonicalOrder{Customer: &model.Customer{FirstName: "Ali"}},
			wantName:   "Ali",
			wantSource: model.NameSourceCustomer,
		},
		{
			name:       "empty order",
			order:      &model.CanonicalOrder{},
			wantName:   "Guest Customer",
			wantSource: model.NameSourceFallback,
		},
		{
			name:       "nil order",
			order:      nil,
			wantName:   "Guest Customer",
			wantSource: model.NameSourceFallback,
		},
		{
			name: "customer wins over addresses",
			order: &model.CanonicalOrder{
				Customer:        &model.Customer{FirstName: " Sara ", LastName: " Khan "},
				BillingAddress:  model.Address{FirstName: "Bill"},
				ShippingAddress: model.Address{FirstName: "Ship"},
			},
			wantName:   "Sara Khan",
			wantSource: model.NameSourceCustomer,
		},
		{
			name: "whitespace customer falls through to billing",
			order: &model.CanonicalOrder{
				Customer:       &model.Customer{FirstName: "  ", LastName: "\t"},
				BillingAddress: model.Address{LastName: "Ahmed"},
			},
			wantName:   "Ahmed",
			wantSource: model.NameSourceBilling,
		},
		{
			name: "shipping when customer and billing are empty",
			order: &model.CanonicalOrder{
				ShippingAddress: model.Address{FirstName: "Zara", LastName: "Malik"},
			},
			wantName:   "Zara Malik",
			wantSource: model.NameSourceShipping,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotName, gotSource := ResolveCustomerName(tt.order)
			if gotName != tt.wantName || gotSource != tt.wantSource {
				t.Fatalf("expected (%q, %s), got (%q, %s)", tt.wantName, tt.wantSource, gotName, gotSource)
			}
		})
	}
}

func TestResolveCustomerNamePrecedenceOverAllCombinations(t *testing.T) {
	values := []string{"", "  ", "Ali"}
	for _, customer := range values {
		for _, billing := range values {
			for _, shipping := range values {
				for _, withCustomer := range []bool{false, true} {
					o := &model.CanonicalOrder{
						BillingAddress:  model.Address{LastName: billing},
						ShippingAddress: model.Address{FirstName: shipping},
					}
					if withCustomer {
						o.Customer = &model.Customer{FirstName: customer}
					}

					name, source := ResolveCustomerName(o)
					if name == "" {
						t.Fatalf("empty name for customer=%q billing=%q shipping=%q", customer, billing, shipping)
					}

					var want model.NameSource
					switch {
					case withCustomer && customer == "Ali":
						want = model.NameSourceCustomer
					case billing == "Ali":
						want = model.NameSourceBilling
					case shipping == "Ali":
						want = model.NameSourceShipping
					default:
						want = model.NameSourceFallback
					}
					if source != want {
						t.Fatalf("customer=%v/%q billing=%q shipping=%q: expected %s, got %s", withCustomer, customer, billing, shipping, want, source)
					}
				}
			}
		}
	}
}
