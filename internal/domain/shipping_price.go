package domain

import "time"

// ShippingStateRates holds the per-state prices of the geo pricing format.
// A nil field means that shipping type is unavailable for the state.
type ShippingStateRates struct {
	Home   *float64 `json:"home"`
	Desk   *float64 `json:"desk"`
	Pickup *float64 `json:"pickup"`
}

// ShippingPriceRates maps ISO country code -> state code -> rates. It is the
// successor of the index-based ShippingRates table: states are addressed by
// code, not by position.
type ShippingPriceRates map[string]map[string]ShippingStateRates

// ShippingPriceType names a field of ShippingStateRates.
type ShippingPriceType string

const (
	ShippingPriceTypeHome   ShippingPriceType = "home"
	ShippingPriceTypeDesk   ShippingPriceType = "desk"
	ShippingPriceTypePickup ShippingPriceType = "pickup"
)

type ShippingPriceStatus string

const (
	ShippingPriceStatusDraft     ShippingPriceStatus = "draft"
	ShippingPriceStatusPublished ShippingPriceStatus = "published"
)

// ShippingPrice is a geo-keyed shipping pricing configuration for a store.
type ShippingPrice struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	LogoURL   *string             `json:"logoUrl,omitempty"`
	StoreID   string              `json:"storeId"`
	Prices    ShippingPriceRates  `json:"prices"`
	Status    ShippingPriceStatus `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// LookupShippingPrice resolves a price by exact country and state code.
// Returns nil when the country, state, or type is not priced.
func LookupShippingPrice(prices ShippingPriceRates, countryCode, stateCode string, t ShippingPriceType) *float64 {
	countryRates, ok := prices[countryCode]
	if !ok {
		return nil
	}
	stateRates, ok := countryRates[stateCode]
	if !ok {
		return nil
	}
	switch t {
	case ShippingPriceTypeHome:
		return stateRates.Home
	case ShippingPriceTypeDesk:
		return stateRates.Desk
	case ShippingPriceTypePickup:
		return stateRates.Pickup
	}
	return nil
}

// IsShippingAvailable reports whether any shipping type is priced for the
// given location.
func IsShippingAvailable(prices ShippingPriceRates, countryCode, stateCode string) bool {
	countryRates, ok := prices[countryCode]
	if !ok {
		return false
	}
	stateRates, ok := countryRates[stateCode]
	if !ok {
		return false
	}
	return stateRates.Home != nil || stateRates.Desk != nil || stateRates.Pickup != nil
}

// AvailableShippingPrice pairs a shipping type with its resolved price.
type AvailableShippingPrice struct {
	Type  ShippingPriceType `json:"type"`
	Price float64           `json:"price"`
}

// AvailableShippingPriceTypes lists every priced shipping type for the given
// location, in home, desk, pickup order.
func AvailableShippingPriceTypes(prices ShippingPriceRates, countryCode, stateCode string) []AvailableShippingPrice {
	countryRates, ok := prices[countryCode]
	if !ok {
		return nil
	}
	stateRates, ok := countryRates[stateCode]
	if !ok {
		return nil
	}

	var available []AvailableShippingPrice
	if stateRates.Home != nil {
		available = append(available, AvailableShippingPrice{Type: ShippingPriceTypeHome, Price: *stateRates.Home})
	}
	if stateRates.Desk != nil {
		available = append(available, AvailableShippingPrice{Type: ShippingPriceTypeDesk, Price: *stateRates.Desk})
	}
	if stateRates.Pickup != nil {
		available = append(available, AvailableShippingPrice{Type: ShippingPriceTypePickup, Price: *stateRates.Pickup})
	}
	return available
}
