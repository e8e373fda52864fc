package order

import (
	"strings"

	"github.com/rushrr/courier/internal/domain/model"
)

// ResolveCustomerName picks the display name by precedence
// customer > billing address > shipping address > "Guest Customer".
// A record wins when its trimmed first and last name join to a non-empty string.
func ResolveCustomerName(o *model.CanonicalOrder) (string, model.NameSource) {
	if o == nil {
		return model.GuestCustomerName, model.NameSourceFallback
	}
	if c := o.Customer; c != nil {
		if name := fullName(c.FirstName, c.LastName); name != "" {
			return name, model.NameSourceCustomer
		}
	}
	if name := fullName(o.BillingAddress.FirstName, o.BillingAddress.LastName); name != "" {
		return name, model.NameSourceBilling
	}
	if name := fullName(o.ShippingAddress.FirstName, o.ShippingAddress.LastName); name != "" {
		return name, model.NameSourceShipping
	}
	return model.GuestCustomerName, model.NameSourceFallback
}

func fullName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
