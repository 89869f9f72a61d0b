package cart

import (
	"sort"
	"strings"

	"github.com/feeefapp/feeef-go/internal/domain"
)

// Line is one entry in the cart: a product snapshot plus the shopper's
// variant, offer, and addon selections.
type Line struct {
	Product  domain.Product       `json:"product"`
	Offer    *domain.ProductOffer `json:"offer,omitempty"`
	Quantity int                  `json:"quantity"`
	Variant  string               `json:"variant,omitempty"`
	Addons   map[string]int       `json:"addons,omitempty"`
}

// Key is the line identity. Two lines with equal keys are the same line:
// adding both merges quantities instead of occupying two entries.
func (l Line) Key() string {
	var offerCode string
	if l.Offer != nil {
		offerCode = l.Offer.Code
	}
	addonKeys := make([]string, 0, len(l.Addons))
	for title := range l.Addons {
		addonKeys = append(addonKeys, title)
	}
	sort.Strings(addonKeys)
	return strings.Join([]string{l.Product.ID, l.Variant, offerCode, strings.Join(addonKeys, ",")}, "|")
}

// clone returns a copy that shares no mutable state with the receiver.
func (l Line) clone() Line {
	if l.Offer != nil {
		offer := *l.Offer
		l.Offer = &offer
	}
	if l.Addons != nil {
		addons := make(map[string]int, len(l.Addons))
		for title, count := range l.Addons {
			addons[title] = count
		}
		l.Addons = addons
	}
	return l
}

// LineUpdate is a partial line edit. Nil fields are left unchanged;
// ClearOffer detaches the offer regardless of Offer.
type LineUpdate struct {
	Quantity   *int
	Variant    *string
	Offer      *domain.ProductOffer
	ClearOffer bool
	Addons     map[string]int
}

func (l Line) applied(u LineUpdate) Line {
	out := l.clone()
	if u.Quantity != nil {
		out.Quantity = *u.Quantity
	}
	if u.Variant != nil {
		out.Variant = *u.Variant
	}
	switch {
	case u.ClearOffer:
		out.Offer = nil
	case u.Offer != nil:
		offer := *u.Offer
		out.Offer = &offer
	}
	if u.Addons != nil {
		addons := make(map[string]int, len(u.Addons))
		for title, count := range u.Addons {
			addons[title] = count
		}
		out.Addons = addons
	}
	return out
}

// clampQuantityForOffer forces the quantity into the attached offer's
// bounds. A missing bound is unbounded on that side.
func clampQuantityForOffer(l *Line) {
	if l.Offer == nil {
		return
	}
	if l.Offer.MinQuantity != nil && l.Quantity < *l.Offer.MinQuantity {
		l.Quantity = *l.Offer.MinQuantity
	}
	if l.Offer.MaxQuantity != nil && l.Quantity > *l.Offer.MaxQuantity {
		l.Quantity = *l.Offer.MaxQuantity
	}
}

// OfferValidForQuantity reports whether quantity falls inside the offer's
// bounds. A nil offer or a missing bound never rejects.
func OfferValidForQuantity(offer *domain.ProductOffer, quantity int) bool {
	if offer == nil {
		return true
	}
	if offer.MinQuantity != nil && quantity < *offer.MinQuantity {
		return false
	}
	if offer.MaxQuantity != nil && quantity > *offer.MaxQuantity {
		return false
	}
	return true
}
