package order

import "github.com/rushrr/courier/internal/domain/model"

// BuildPatch diffs the edited snapshot against the baseline and returns only
// the changed patchable fields. Billing phone, zip and country are not patchable.
// Neither snapshot is modified.
func BuildPatch(baseline, edited *model.CanonicalOrder) model.EditPatch {
	var base, next model.CanonicalOrder
	if baseline != nil {
		base = *baseline
	}
	if edited != nil {
		next = *edited
	}

	var patch model.EditPatch
	patch.Email = changed(base.Email, next.Email)
	patch.Currency = changed(base.Currency, next.Currency)
	patch.TotalPrice = changed(base.TotalPrice, next.TotalPrice)

	shipping := model.ShippingPatch{
		City:     changed(base.ShippingAddress.City, next.ShippingAddress.City),
		Phone:    changed(base.ShippingAddress.Phone, next.ShippingAddress.Phone),
		Address1: changed(base.ShippingAddress.Address1, next.ShippingAddress.Address1),
	}
	if shipping.City != nil || shipping.Phone != nil || shipping.Address1 != nil {
		patch.ShippingAddress = &shipping
	}

	billing := model.BillingPatch{
		City:     changed(base.BillingAddress.City, next.BillingAddress.City),
		Address1: changed(base.BillingAddress.Address1, next.BillingAddress.Address1),
	}
	if billing.City != nil || billing.Address1 != nil {
		patch.BillingAddress = &billing
	}

	return patch
}

func changed(before, after string) *string {
	if before == after {
		return nil
	}
	v := after
	return &v
}
