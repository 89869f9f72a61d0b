package cart

// ShippingType enumerates how an order reaches the customer.
type ShippingType string

const (
	// ShippingTypePickup is pickup from the closest delivery desk.
	ShippingTypePickup ShippingType = "pickup"
	// ShippingTypeHome is delivery to the customer's home.
	ShippingTypeHome ShippingType = "home"
	// ShippingTypeStore is pickup from the store itself.
	ShippingTypeStore ShippingType = "store"
)

// DefaultCountry is assumed whenever neither the store configuration nor the
// address selects a country.
const DefaultCountry = "dz"

// Address is the delivery address the shipping resolver prices against.
// State is a code string; the legacy rate format parses it as a 1-based
// numeric index, the geo format uses it as a map key verbatim.
type Address struct {
	Name    string       `json:"name,omitempty"`
	Phone   string       `json:"phone,omitempty"`
	City    string       `json:"city,omitempty"`
	State   string       `json:"state,omitempty"`
	Street  string       `json:"street,omitempty"`
	Country string       `json:"country,omitempty"`
	Type    ShippingType `json:"type"`
}

// AddressUpdate is a partial address edit; nil fields stay unchanged.
type AddressUpdate struct {
	Name    *string
	Phone   *string
	City    *string
	State   *string
	Street  *string
	Country *string
	Type    *ShippingType
}

func (a Address) applied(u AddressUpdate) Address {
	if u.Name != nil {
		a.Name = *u.Name
	}
	if u.Phone != nil {
		a.Phone = *u.Phone
	}
	if u.City != nil {
		a.City = *u.City
	}
	if u.State != nil {
		a.State = *u.State
	}
	if u.Street != nil {
		a.Street = *u.Street
	}
	if u.Country != nil {
		a.Country = *u.Country
	}
	if u.Type != nil {
		a.Type = *u.Type
	}
	return a
}

func defaultAddress() Address {
	return Address{Country: DefaultCountry, Type: ShippingTypePickup}
}
