package cart

import (
	"strings"

	"github.com/feeefapp/feeef-go/internal/domain"
)

// ItemTotal prices one line: the variant-resolved unit price and discount,
// an offer fixed-price override, then addons on top.
func (s *Service) ItemTotal(line Line) float64 {
	price := line.Product.Price
	var discount float64
	if line.Product.Discount != nil {
		discount = *line.Product.Discount
	}

	if line.Variant != "" {
		variant := line.Product.Variant
		for _, part := range strings.Split(line.Variant, "/") {
			if variant == nil {
				break
			}
			option := findOption(variant.Options, part)
			if option == nil {
				// A stale path keeps the last resolved price instead of failing
				// the whole line; the cart must stay renderable.
				s.logf("cart: variant option %q not found on product %s (path %q)", part, line.Product.ID, line.Variant)
				break
			}
			if option.Price != nil {
				price = *option.Price
			}
			if option.Discount != nil {
				discount = *option.Discount
			}
			variant = option.Child
		}
	}

	if line.Offer != nil && line.Offer.Price != nil {
		// Offers are price overrides, not additional discounts.
		price = *line.Offer.Price
		discount = 0
	}

	total := (price - discount) * float64(line.Quantity)

	for title, count := range line.Addons {
		addon := findAddon(line.Product.Addons, title)
		if addon == nil || addon.Price == nil {
			// Stale addon selections are ignored.
			continue
		}
		total += *addon.Price * float64(count)
	}

	return total
}

func findOption(options []domain.ProductVariantOption, name string) *domain.ProductVariantOption {
	for i := range options {
		if options[i].Name == name {
			return &options[i]
		}
	}
	return nil
}

func findAddon(addons []domain.ProductAddon, title string) *domain.ProductAddon {
	for i := range addons {
		if addons[i].Title == title {
			return &addons[i]
		}
	}
	return nil
}

// Subtotal sums the committed line totals, memoized until the next
// mutation. By default the draft line is added on top when it is not
// already committed; pass false to exclude it.
func (s *Service) Subtotal(withCurrentItem ...bool) float64 {
	if s.cachedSubtotal == nil {
		var sum float64
		for i := range s.lines {
			sum += s.ItemTotal(s.lines[i])
		}
		s.cachedSubtotal = &sum
	}

	withCurrent := len(withCurrentItem) == 0 || withCurrentItem[0]
	if withCurrent && s.current != nil && s.find(s.current.Key()) < 0 {
		return *s.cachedSubtotal + s.ItemTotal(*s.current)
	}
	return *s.cachedSubtotal
}
