package airwaybill

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rushrr/courier/internal/domain/model"
)

func sampleOrder() *model.CanonicalOrder {
	return &model.CanonicalOrder{
		ID:          "5920323403859",
		OrderNumber: "1001",
		Email:       "order@example.com",
		TotalPrice:  "1500",
		Currency:    "PKR",
		Customer:    &model.Customer{FirstName: "Ali", LastName: "Khan", Email: "ali@example.com"},
		BillingAddress: model.Address{
			City: "Lahore",
		},
		ShippingAddress: model.Address{
			Address1: "House 12, Street 4",
			City:     "Karachi",
			Country:  "Pakistan",
			Zip:      "75500",
			Phone:    "+923001234567",
		},
		OrderReferenceNumber: "1001",
		CustomerName:         "Ali Khan",
	}
}

func fixedGenerator() *Generator {
	return NewGenerator(Options{
		Now:                func() time.Time { return time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC) },
		DisableCompression: true,
	})
}

func TestGenerateRendersBill(t *testing.T) {
	doc, err := fixedGenerator().Generate(sampleOrder(), "1500")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if doc.FileName != "Airway-Bill-1001.pdf" {
		t.Fatalf("unexpected file name %q", doc.FileName)
	}
	if !bytes.HasPrefix(doc.Content, []byte("%PDF-")) {
		t.Fatalf("expected pdf header, got %q", doc.Content[:8])
	}
	for _, text := range []string{
		"RUSHRR COURIER",
		"Express Delivery Service",
		"AIRWAY BILL",
		"Order #: 1001",
		"Date: 2025-03-14",
		"CUSTOMER DETAILS",
		"Name: Ali Khan",
		"Email: ali@example.com",
		"Phone: +923001234567",
		"City: Lahore",
		"SHIPPING ADDRESS",
		"Karachi, Pakistan",
		"Postal Code: 75500",
		"ORDER SUMMARY",
		"Total Amount: 1500.00 PKR",
		"COD: 1500.00",
		"Scan for Details",
	} {
		if !bytes.Contains(doc.Content, []byte(text)) {
			t.Fatalf("expected %q in rendered bill", text)
		}
	}
}

func TestGenerateQRPayload(t *testing.T) {
	doc, err := fixedGenerator().Generate(sampleOrder(), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	var payload QRPayload
	if err := json.Unmarshal(doc.QRPayload, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	want := QRPayload{
		OrderNumber: "1001",
		Customer:    "Ali Khan",
		City:        "Lahore",
		Amount:      "1500",
		Currency:    "PKR",
		Phone:       "+923001234567",
		Address:     "House 12, Street 4",
	}
	if payload != want {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if !bytes.Contains(doc.Content, []byte("COD: N/A")) {
		t.Fatal("expected COD placeholder when nothing is collected")
	}
}

func TestGenerateDefaults(t *testing.T) {
	o := &model.CanonicalOrder{ID: "77", CustomerName: "Guest Customer"}
	doc, err := fixedGenerator().Generate(o, "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if doc.FileName != "Airway-Bill-77.pdf" {
		t.Fatalf("unexpected file name %q", doc.FileName)
	}
	for _, text := range []string{"Order #: N/A", "Name: Guest Customer", "Total Amount: 0.00 PKR", "Postal Code: N/A"} {
		if !bytes.Contains(doc.Content, []byte(text)) {
			t.Fatalf("expected %q in rendered bill", text)
		}
	}
}

func TestGenerateNilOrder(t *testing.T) {
	if _, err := fixedGenerator().Generate(nil, ""); !errors.Is(err, ErrNoOrder) {
		t.Fatalf("expected ErrNoOrder, got %v", err)
	}
}

func TestGenerateCompressedByDefault(t *testing.T) {
	doc, err := NewGenerator(Options{}).Generate(sampleOrder(), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.HasPrefix(doc.Content, []byte("%PDF-")) {
		t.Fatal("expected pdf header")
	}
	if bytes.Contains(doc.Content, []byte("AIRWAY BILL")) {
		t.Fatal("expected compressed content stream")
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		raw, fallback, want string
	}{
		{"", "N/A", "N/A"},
		{"  ", "0.00", "0.00"},
		{"12", "", "12.00"},
		{"12.345", "", "12.35"},
		{"abc", "", "abc"},
	}
	for _, tc := range cases {
		if got := formatAmount(tc.raw, tc.fallback); got != tc.want {
			t.Fatalf("formatAmount(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}
