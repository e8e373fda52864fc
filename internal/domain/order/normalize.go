package order

import (
	"fmt"
	"strings"

	domainErrors "github.com/rushrr/courier/internal/domain/errors"
	"github.com/rushrr/courier/internal/domain/model"
)

const (
	defaultTotalPrice    = "0.00"
	defaultFlatCurrency  = "PKR"
	defaultGraphCurrency = "USD"
	graphOrderIDPrefix   = "gid://shopify/Order/"
)

// Options configures per-variant defaults.
type Options struct {
	FlatCurrency  string
	GraphCurrency string
}

// DefaultOptions returns the defaults observed at the REST and GraphQL call sites.
func DefaultOptions() Options {
	return Options{FlatCurrency: defaultFlatCurrency, GraphCurrency: defaultGraphCurrency}
}

func (o Options) withDefaults() Options {
	if o.FlatCurrency == "" {
		o.FlatCurrency = defaultFlatCurrency
	}
	if o.GraphCurrency == "" {
		o.GraphCurrency = defaultGraphCurrency
	}
	return o
}

// Normalize converts an upstream record into a CanonicalOrder.
// lookupID is the id the order was requested by; it is the last fallback
// for the reference number and may be empty.
func Normalize(src Source, lookupID string, opts Options) (*model.CanonicalOrder, error) {
	opts = opts.withDefaults()
	lookupID = strings.TrimSpace(lookupID)

	var (
		out *model.CanonicalOrder
		err error
	)
	switch s := src.(type) {
	case *FlatOrder:
		out, err = normalizeFlat(s, lookupID, opts)
	case *GraphOrder:
		out, err = normalizeGraph(s, lookupID, opts)
	default:
		return nil, fmt.Errorf("%w: unsupported source %T", domainErrors.ErrMalformedOrder, src)
	}
	if err != nil {
		return nil, err
	}

	out.CustomerName, out.NameSource = ResolveCustomerName(out)
	return out, nil
}

// NormalizeRaw decodes and normalizes a raw order object.
func NormalizeRaw(raw []byte, lookupID string, opts Options) (*model.CanonicalOrder, error) {
	src, err := DecodeSource(raw)
	if err != nil {
		return nil, err
	}
	return Normalize(src, lookupID, opts)
}

func normalizeFlat(s *FlatOrder, lookupID string, opts Options) (*model.CanonicalOrder, error) {
	if s == nil || strings.TrimSpace(string(s.ID)) == "" {
		return nil, fmt.Errorf("%w: missing id", domainErrors.ErrMalformedOrder)
	}
	id := strings.TrimSpace(string(s.ID))
	if lookupID == "" {
		lookupID = id
	}

	out := &model.CanonicalOrder{
		ID:          id,
		OrderNumber: string(s.OrderNumber),
		Name:        s.Name,
		Email:       firstNonEmpty(s.Email, s.ContactEmail),
		Phone:       s.Phone,
		TotalPrice:  firstNonEmpty(string(s.TotalPrice), defaultTotalPrice),
		Currency:    firstNonEmpty(s.Currency, opts.FlatCurrency),
		LineItems:   make([]model.LineItem, 0, len(s.LineItems)),
	}
	if c := s.Customer; c != nil {
		out.Customer = &model.Customer{FirstName: c.FirstName, LastName: c.LastName, Email: c.Email, Phone: c.Phone}
	}
	out.BillingAddress = flatAddress(s.BillingAddress)
	out.ShippingAddress = flatAddress(s.ShippingAddress)
	for _, li := range s.LineItems {
		out.LineItems = append(out.LineItems, model.LineItem{
			ID:           string(li.ID),
			Title:        li.Title,
			Quantity:     li.Quantity,
			VariantID:    string(li.VariantID),
			VariantTitle: li.VariantTitle,
			SKU:          li.SKU,
			Price:        string(li.Price),
			ProductID:    string(li.ProductID),
			ProductTitle: li.ProductTitle,
			Vendor:       li.Vendor,
		})
	}
	out.OrderReferenceNumber = ReferenceNumber(out.OrderNumber, out.Name, lookupID)
	return out, nil
}

func normalizeGraph(s *GraphOrder, lookupID string, opts Options) (*model.CanonicalOrder, error) {
	if s == nil || strings.TrimSpace(string(s.ID)) == "" {
		return nil, fmt.Errorf("%w: missing id", domainErrors.ErrMalformedOrder)
	}
	if lookupID == "" {
		lookupID = strings.TrimPrefix(strings.TrimSpace(string(s.ID)), graphOrderIDPrefix)
	}

	out := &model.CanonicalOrder{
		ID:          lookupID,
		OrderNumber: firstNonEmpty(stripHash(s.Name), lookupID),
		Name:        s.Name,
		Email:       s.Email,
		Phone:       s.Phone,
		TotalPrice:  defaultTotalPrice,
		Currency:    opts.GraphCurrency,
		LineItems:   make([]model.LineItem, 0, len(s.LineItems.Edges)),
	}
	if s.TotalPriceSet != nil {
		out.TotalPrice = firstNonEmpty(string(s.TotalPriceSet.ShopMoney.Amount), defaultTotalPrice)
		out.Currency = firstNonEmpty(s.TotalPriceSet.ShopMoney.CurrencyCode, opts.GraphCurrency)
	}
	if c := s.Customer; c != nil {
		out.Customer = &model.Customer{FirstName: c.FirstName, LastName: c.LastName, Email: c.Email, Phone: c.Phone}
	}
	out.BillingAddress = graphAddress(s.BillingAddress)
	out.ShippingAddress = graphAddress(s.ShippingAddress)
	for _, edge := range s.LineItems.Edges {
		node := edge.Node
		li := model.LineItem{ID: string(node.ID), Title: node.Title, Quantity: node.Quantity}
		if v := node.Variant; v != nil {
			li.VariantID = string(v.ID)
			li.VariantTitle = v.Title
			li.SKU = v.SKU
			li.Price = string(v.Price)
		}
		if p := node.Product; p != nil {
			li.ProductID = string(p.ID)
			li.ProductTitle = p.Title
			li.Vendor = p.Vendor
		}
		out.LineItems = append(out.LineItems, li)
	}
	out.OrderReferenceNumber = ReferenceNumber(out.OrderNumber, out.Name, lookupID)
	return out, nil
}

// ReferenceNumber returns the first non-empty of orderNumber, name without its
// leading '#', and lookupID.
func ReferenceNumber(orderNumber, name, lookupID string) string {
	return firstNonEmpty(strings.TrimSpace(orderNumber), stripHash(name), strings.TrimSpace(lookupID))
}

func flatAddress(a *FlatAddress) model.Address {
	if a == nil {
		return model.Address{}
	}
	return model.Address{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Address1:  a.Address1,
		City:      a.City,
		Country:   a.Country,
		Zip:       string(a.Zip),
		Phone:     a.Phone,
	}
}

func graphAddress(a *GraphAddress) model.Address {
	if a == nil {
		return model.Address{}
	}
	return model.Address{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Address1:  a.Address1,
		City:      a.City,
		Country:   a.Country,
		Zip:       string(a.Zip),
		Phone:     a.Phone,
	}
}

func stripHash(name string) string {
	return strings.TrimPrefix(strings.TrimSpace(name), "#")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
