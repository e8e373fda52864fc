package model

// EditPatch carries only the fields that changed between two order snapshots.
// Nil pointers are omitted from the wire body.
type EditPatch struct {
	Email           *string        `json:"email,omitempty"`
	Currency        *string        `json:"currency,omitempty"`
	TotalPrice      *string        `json:"total_price,omitempty"`
	ShippingAddress *ShippingPatch `json:"shipping_address,omitempty"`
	BillingAddress  *BillingPatch  `json:"billing_address,omitempty"`
}

// ShippingPatch lists the patchable shipping address fields.
type ShippingPatch struct {
	City     *string `json:"city,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address1 *string `json:"address1,omitempty"`
}

// BillingPatch lists the patchable billing address fields.
type BillingPatch struct {
	City     *string `json:"city,omitempty"`
	Address1 *string `json:"address1,omitempty"`
}

// IsEmpty reports whether the patch carries no changes.
func (p EditPatch) IsEmpty() bool {
	return p.Email == nil &&
		p.Currency == nil &&
		p.TotalPrice == nil &&
		p.ShippingAddress == nil &&
		p.BillingAddress == nil
}
