package domain

import "time"

// Store carries the store-level shipping defaults the cart engine falls back
// to when a product has no shipping linkage of its own.
type Store struct {
	ID                   string                 `json:"id"`
	Slug                 string                 `json:"slug"`
	Name                 string                 `json:"name"`
	LogoURL              *string                `json:"logoUrl,omitempty"`
	OndarkLogoURL        *string                `json:"ondarkLogoUrl,omitempty"`
	Description          *string                `json:"description,omitempty"`
	UserID               string                 `json:"userId"`
	DefaultShippingRates ShippingRates          `json:"defaultShippingRates,omitempty"`
	ShippingPriceID      *string                `json:"shippingPriceId,omitempty"`
	Configs              *StoreConfigs          `json:"configs,omitempty"`
	Metadata             map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt            time.Time              `json:"createdAt"`
	UpdatedAt            time.Time              `json:"updatedAt"`
}

// StoreConfigs holds the operator-selected defaults that affect pricing.
type StoreConfigs struct {
	SelectedCountry string `json:"selectedCountry,omitempty"`
}
