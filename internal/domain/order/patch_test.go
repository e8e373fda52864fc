package order

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/rushrr/courier/internal/domain/model"
)

func baselineOrder() *model.CanonicalOrder {
	return &model.CanonicalOrder{
		ID:         "1",
		Email:      "a@example.com",
		Currency:   "PKR",
		TotalPrice: "100.00",
		BillingAddress: model.Address{
			City: "Lahore", Address1: "1 Mall Rd", Phone: "111", Zip: "54000", Country: "PK",
		},
		ShippingAddress: model.Address{
			City: "Lahore", Address1: "1 Mall Rd", Phone: "111",
		},
	}
}

func TestBuildPatchSelfDiffIsEmpty(t *testing.T) {
	base := baselineOrder()
	patch := BuildPatch(base, base)
	if !patch.IsEmpty() {
		t.Fatalf("expected empty patch, got %+v", patch)
	}
	body, _ := json.Marshal(patch)
	if string(body) != "{}" {
		t.Fatalf("expected {} body, got %s", body)
	}
}

func TestBuildPatchOnlyShippingCity(t *testing.T) {
	base := baselineOrder()
	edited := *base
	edited.ShippingAddress.City = "Karachi"

	body, err := json.Marshal(BuildPatch(base, &edited))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(body) != `{"shipping_address":{"city":"Karachi"}}` {
		t.Fatalf("unexpected patch %s", body)
	}
}

func TestBuildPatchFields(t *testing.T) {
	tests := []struct {
		name string
		edit func(o *model.CanonicalOrder)
		want string
	}{
		{"email", func(o *model.CanonicalOrder) { o.Email = "b@example.com" }, `{"email":"b@example.com"}`},
		{"currency", func(o *model.CanonicalOrder) { o.Currency = "USD" }, `{"currency":"USD"}`},
		{"total price", func(o *model.CanonicalOrder) { o.TotalPrice = "90.00" }, `{"total_price":"90.00"}`},
		{"cleared email", func(o *model.CanonicalOrder) { o.Email = "" }, `{"email":""}`},
		{"shipping phone and address", func(o *model.CanonicalOrder) {
			o.ShippingAddress.Phone = "222"
			o.ShippingAddress.Address1 = "2 Canal Rd"
		}, `{"shipping_address":{"phone":"222","address1":"2 Canal Rd"}}`},
		{"billing city and address", func(o *model.CanonicalOrder) {
			o.BillingAddress.City = "Multan"
			o.BillingAddress.Address1 = "3 Fort Rd"
		}, `{"billing_address":{"city":"Multan","address1":"3 Fort Rd"}}`},
		{"billing phone zip country ignored", func(o *model.CanonicalOrder) {
			o.BillingAddress.Phone = "999"
			o.BillingAddress.Zip = "00000"
			o.BillingAddress.Country = "AE"
		}, `{}`},
		{"shipping zip ignored", func(o *model.CanonicalOrder) { o.ShippingAddress.Zip = "1" }, `{}`},
		{"name fields ignored", func(o *model.CanonicalOrder) { o.CustomerName = "X"; o.Phone = "5" }, `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := baselineOrder()
			edited := *base
			tt.edit(&edited)
			body, err := json.Marshal(BuildPatch(base, &edited))
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(body) != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, body)
			}
		})
	}
}

func TestBuildPatchDoesNotMutateInputs(t *testing.T) {
	base := baselineOrder()
	edited := *base
	edited.ShippingAddress.City = "Quetta"
	snapshotBase := *base
	snapshotEdited := edited

	_ = BuildPatch(base, &edited)

	if !reflect.DeepEqual(*base, snapshotBase) || !reflect.DeepEqual(edited, snapshotEdited) {
		t.Fatal("inputs were modified")
	}
}

func TestBuildPatchNilSnapshots(t *testing.T) {
	if !BuildPatch(nil, nil).IsEmpty() {
		t.Fatal("nil snapshots must produce an empty patch")
	}
	patch := BuildPatch(nil, &model.CanonicalOrder{Email: "x@example.com"})
	if patch.Email == nil || *patch.Email != "x@example.com" {
		t.Fatalf("expected email change, got %+v", patch)
	}
}
