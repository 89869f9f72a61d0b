package domain

import "time"

type ShippingMethodStatus string

const (
	ShippingMethodStatusDraft     ShippingMethodStatus = "draft"
	ShippingMethodStatusPublished ShippingMethodStatus = "published"
	ShippingMethodStatusArchived  ShippingMethodStatus = "archived"
)

type ShippingMethodPolicy string

const (
	ShippingMethodPolicyPrivate ShippingMethodPolicy = "private"
	ShippingMethodPolicyPublic  ShippingMethodPolicy = "public"
)

// ShippingRates is the legacy per-state rate table: one row per 1-based
// state index, columns [pickup, home, store]. A 0 cell means free shipping
// for that type; a nil cell means the type is unavailable in that state.
type ShippingRates [][]*float64

// ShippingMethod is the legacy shipping configuration. Price is the flat
// fallback applied when no per-state row can be resolved.
type ShippingMethod struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Description   *string              `json:"description,omitempty"`
	LogoURL       *string              `json:"logoUrl,omitempty"`
	OndarkLogoURL *string              `json:"ondarkLogoUrl,omitempty"`
	Price         float64              `json:"price"`
	Forks         int                  `json:"forks"`
	SourceID      string               `json:"sourceId,omitempty"`
	StoreID       string               `json:"storeId"`
	Rates         ShippingRates        `json:"rates,omitempty"`
	Status        ShippingMethodStatus `json:"status"`
	Policy        ShippingMethodPolicy `json:"policy"`
	VerifiedAt    *time.Time           `json:"verifiedAt,omitempty"`
	CreatedAt     *time.Time           `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time           `json:"updatedAt,omitempty"`
}
