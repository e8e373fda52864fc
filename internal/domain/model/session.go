package model

import "time"

// ShopSession holds the Shopify admin credentials of an installed shop.
type ShopSession struct {
	Shop        string
	AccessToken string
	Scope       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StoreURL returns the https URL of the shop.
func (s ShopSession) StoreURL() string {
	return StoreURL(s.Shop)
}

// StoreURL formats a shop domain as the URL the logistics backend keys stores by.
func StoreURL(shop string) string {
	return "https://" + shop
}

// SetupStatus tells whether a shop has a logistics token.
type SetupStatus struct {
	Shop     string `json:"shop"`
	HasToken bool   `json:"hasToken"`
}
