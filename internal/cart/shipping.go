package cart

import (
	"strconv"
	"strings"

	"github.com/feeefapp/feeef-go/internal/domain"
)

// SetShippingMethod installs the legacy rate source. It accepts either a
// domain.ShippingMethod (with a rate table) or a domain.Store, whose
// DefaultShippingRates become the rates of a synthesized published, public,
// zero-price method. Anything else returns ErrInvalidShippingMethod with
// the shipping state left unchanged.
func (s *Service) SetShippingMethod(src interface{}, notify ...bool) error {
	var method *domain.ShippingMethod
	switch v := src.(type) {
	case *domain.ShippingMethod:
		if v != nil && v.Rates != nil {
			m := *v
			method = &m
		}
	case domain.ShippingMethod:
		if v.Rates != nil {
			method = &v
		}
	case *domain.Store:
		if v != nil {
			method = methodFromStore(*v)
		}
	case domain.Store:
		method = methodFromStore(v)
	}
	if method == nil {
		return domain.ErrInvalidShippingMethod
	}
	s.shippingMethod = method
	if shouldNotify(notify) {
		s.Notify()
	}
	return nil
}

func methodFromStore(st domain.Store) *domain.ShippingMethod {
	if st.DefaultShippingRates == nil {
		return nil
	}
	return &domain.ShippingMethod{
		ID:            st.ID,
		Name:          st.Name,
		Description:   st.Description,
		LogoURL:       st.LogoURL,
		OndarkLogoURL: st.OndarkLogoURL,
		Price:         0,
		SourceID:      st.ID,
		StoreID:       st.ID,
		Rates:         st.DefaultShippingRates,
		Status:        domain.ShippingMethodStatusPublished,
		Policy:        domain.ShippingMethodPolicyPublic,
	}
}

// ShippingMethod returns the installed legacy method, if any.
func (s *Service) ShippingMethod() *domain.ShippingMethod {
	return s.shippingMethod
}

// SetShippingPrice installs (or clears, with nil) the geo price source.
func (s *Service) SetShippingPrice(p *domain.ShippingPrice, notify ...bool) {
	if p != nil {
		cp := *p
		s.shippingPrice = &cp
	} else {
		s.shippingPrice = nil
	}
	if shouldNotify(notify) {
		s.Notify()
	}
}

// ShippingPriceSource returns the installed geo price source, if any.
func (s *Service) ShippingPriceSource() *domain.ShippingPrice {
	return s.shippingPrice
}

// SetStore records the store whose configuration backs resolution
// fallbacks, notably the selected country for geo lookups.
func (s *Service) SetStore(st *domain.Store, notify ...bool) {
	if st != nil {
		cp := *st
		s.store = &cp
	} else {
		s.store = nil
	}
	if shouldNotify(notify) {
		s.Notify()
	}
}

// Store returns the recorded store, if any.
func (s *Service) Store() *domain.Store {
	return s.store
}

// SetShippingAddress replaces the address. Listeners fire only when the
// city, state, or shipping type actually changed.
func (s *Service) SetShippingAddress(addr Address, notify ...bool) {
	if s.shippingAddress.City == addr.City &&
		s.shippingAddress.State == addr.State &&
		s.shippingAddress.Type == addr.Type {
		return
	}
	s.shippingAddress = addr
	s.invalidate()
	if shouldNotify(notify) {
		s.Notify()
	}
}

// UpdateShippingAddress merges a partial edit into the address.
func (s *Service) UpdateShippingAddress(update AddressUpdate, notify ...bool) {
	s.shippingAddress = s.shippingAddress.applied(update)
	s.invalidate()
	if shouldNotify(notify) {
		s.Notify()
	}
}

// ShippingAddress returns the current delivery address.
func (s *Service) ShippingAddress() Address {
	return s.shippingAddress
}

// stateRates returns the legacy rate row for the current address, or nil
// when the state is not a usable 1-based index into the table.
func (s *Service) stateRates() []*float64 {
	if s.shippingMethod == nil || s.shippingMethod.Rates == nil {
		return nil
	}
	idx, err := strconv.Atoi(strings.TrimSpace(s.shippingAddress.State))
	if err != nil || idx < 1 || idx > len(s.shippingMethod.Rates) {
		return nil
	}
	return s.shippingMethod.Rates[idx-1]
}

func rateAt(row []*float64, i int) *float64 {
	if i >= 0 && i < len(row) {
		return row[i]
	}
	return nil
}

// legacy rate columns are [pickup, home, store]
func legacyColumn(t ShippingType) int {
	switch t {
	case ShippingTypePickup:
		return 0
	case ShippingTypeHome:
		return 1
	case ShippingTypeStore:
		return 2
	}
	return -1
}

// geoType maps a cart shipping type onto the geo table's field names. The
// legacy "store" type is the geo format's desk pickup.
func geoType(t ShippingType) domain.ShippingPriceType {
	switch t {
	case ShippingTypeStore:
		return domain.ShippingPriceTypeDesk
	case ShippingTypeHome:
		return domain.ShippingPriceTypeHome
	default:
		return domain.ShippingPriceTypePickup
	}
}

// shippingCountryCode resolves the country for geo lookups: the store's
// selected country wins, then the address country, then DefaultCountry.
func (s *Service) shippingCountryCode() string {
	if s.store != nil && s.store.Configs != nil && s.store.Configs.SelectedCountry != "" {
		return s.store.Configs.SelectedCountry
	}
	if s.shippingAddress.Country != "" {
		return s.shippingAddress.Country
	}
	return DefaultCountry
}

// AvailableShippingTypes lists the types the legacy rate row offers for the
// current state: a 0 cell is free and available, only a nil cell means
// unavailable. Empty when the state is unset or the row is missing.
func (s *Service) AvailableShippingTypes() []ShippingType {
	row := s.stateRates()
	if row == nil {
		return nil
	}
	var types []ShippingType
	if rateAt(row, 0) != nil {
		types = append(types, ShippingTypePickup)
	}
	if rateAt(row, 1) != nil {
		types = append(types, ShippingTypeHome)
	}
	if rateAt(row, 2) != nil {
		types = append(types, ShippingTypeStore)
	}
	return types
}

// ShippingPriceForType resolves the price for one shipping type through the
// fixed priority chain: the exact geo (country, state) entry first, then
// the legacy rate row. ok is false when neither source prices the type.
func (s *Service) ShippingPriceForType(t ShippingType) (float64, bool) {
	if s.shippingPrice != nil {
		state := strings.TrimSpace(s.shippingAddress.State)
		if v := domain.LookupShippingPrice(s.shippingPrice.Prices, s.shippingCountryCode(), state, geoType(t)); v != nil {
			return *v, true
		}
	}
	if row := s.stateRates(); row != nil {
		if cell := rateAt(row, legacyColumn(t)); cell != nil {
			return *cell, true
		}
	}
	return 0, false
}

// ShippingPrice resolves the shipping cost of the whole cart.
//
// A committed line with a free-shipping offer short-circuits to 0 before
// any other logic. With no source configured the cart ships for 0; with no
// state set the legacy method's flat price applies. Otherwise the address's
// own type is tried first, then the available types in order.
func (s *Service) ShippingPrice() float64 {
	for i := range s.lines {
		if s.lines[i].Offer != nil && s.lines[i].Offer.FreeShipping {
			return 0
		}
	}
	if s.shippingMethod == nil && s.shippingPrice == nil {
		return 0
	}
	if strings.TrimSpace(s.shippingAddress.State) == "" {
		if s.shippingMethod != nil {
			return s.shippingMethod.Price
		}
		return 0
	}
	if v, ok := s.ShippingPriceForType(s.shippingAddress.Type); ok {
		return v
	}
	for _, t := range s.AvailableShippingTypes() {
		if v, ok := s.ShippingPriceForType(t); ok {
			return v
		}
	}
	return 0
}

// Total is the subtotal plus shipping. A free-shipping offer on the draft
// line suppresses shipping immediately for preview, before the line is
// committed.
func (s *Service) Total(withCurrentItem ...bool) float64 {
	shipping := s.ShippingPrice()
	if s.current != nil && s.current.Offer != nil && s.current.Offer.FreeShipping {
		shipping = 0
	}
	return s.Subtotal(withCurrentItem...) + shipping
}
