package cart

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/feeefapp/feeef-go/internal/domain"
	"github.com/feeefapp/feeef-go/internal/phone"
)

// Service holds the cart lines, the draft line under edit, and the shipping
// state, and computes totals from them. It is a single-session, in-memory
// calculator: callers inject already-resolved product/store/shipping
// snapshots and submit the finalized cart elsewhere. Not safe for
// concurrent use; there is exactly one mutator context.
type Service struct {
	logger *log.Logger

	lines   []Line
	current *Line

	shippingMethod  *domain.ShippingMethod
	shippingPrice   *domain.ShippingPrice
	store           *domain.Store
	shippingAddress Address

	// nil means dirty; recomputed lazily on the next Subtotal read.
	cachedSubtotal *float64

	listeners map[*Listener]struct{}
}

// New returns an empty cart. logger may be nil to silence diagnostics.
func New(logger *log.Logger) *Service {
	return &Service{
		logger:          logger,
		shippingAddress: defaultAddress(),
		listeners:       make(map[*Listener]struct{}),
	}
}

func (s *Service) logf(format string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

func (s *Service) invalidate() {
	s.cachedSubtotal = nil
}

func (s *Service) find(key string) int {
	for i := range s.lines {
		if s.lines[i].Key() == key {
			return i
		}
	}
	return -1
}

// Add puts line into the cart, merging quantities into an existing line of
// the same identity.
func (s *Service) Add(line Line, notify ...bool) {
	line = line.clone()
	if i := s.find(line.Key()); i >= 0 {
		s.lines[i].Quantity += line.Quantity
		clampQuantityForOffer(&s.lines[i])
	} else {
		clampQuantityForOffer(&line)
		s.lines = append(s.lines, line)
	}
	s.invalidate()
	if shouldNotify(notify) {
		s.Notify()
	}
}

// Has reports whether a line with the same identity is already committed.
func (s *Service) Has(line Line) bool {
	return s.find(line.Key()) >= 0
}

// Remove drops the committed line with the same identity. Removing an
// absent line is a no-op and fires no notification.
func (s *Service) Remove(line Line, notify ...bool) {
	s.removeKey(line.Key(), notify)
}

func (s *Service) removeKey(key string, notify []bool) {
	i := s.find(key)
	if i < 0 {
		return
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	s.invalidate()
	if shouldNotify(notify) {
		s.Notify()
	}
}

// RemoveByProduct drops every committed line for the product; a non-empty
// variantPath narrows the removal to that variant. No-op when nothing
// matches.
func (s *Service) RemoveByProduct(productID, variantPath string, notify ...bool) {
	kept := s.lines[:0]
	removed := false
	for _, l := range s.lines {
		if l.Product.ID == productID && (variantPath == "" || l.Variant == variantPath) {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	if !removed {
		return
	}
	s.lines = kept
	s.invalidate()
	if shouldNotify(notify) {
		s.Notify()
	}
}

// UpdateItem merges update into the committed line matching line's
// identity. When the edit rewrites identity fields onto another committed
// line, the two merge; the collection never holds two lines with one
// identity. The quantity is clamped to the resulting offer's bounds.
func (s *Service) UpdateItem(line Line, update LineUpdate, notify ...bool) {
	i := s.find(line.Key())
	if i < 0 {
		return
	}
	merged := s.lines[i].applied(update)
	clampQuantityForOffer(&merged)
	if j := s.find(merged.Key()); j >= 0 && j != i {
		merged.Quantity += s.lines[j].Quantity
		clampQuantityForOffer(&merged)
		s.lines[i] = merged
		s.lines = append(s.lines[:j], s.lines[j+1:]...)
	} else {
		s.lines[i] = merged
	}
	s.invalidate()
	if shouldNotify(notify) {
		s.Notify()
	}
}

// SetCurrentItem replaces the draft line. When a committed line shares the
// draft's identity, the committed copy is overwritten too, so draft edits
// stay live against the cart.
func (s *Service) SetCurrentItem(line Line, notify ...bool) {
	line = line.clone()
	clampQuantityForOffer(&line)
	s.current = &line
	if i := s.find(line.Key()); i >= 0 {
		s.lines[i] = line.clone()
	}
	s.invalidate()
	if shouldNotify(notify) {
		s.Notify()
	}
}

// UpdateCurrentItem merges update into the draft line; a committed line
// matching the resulting identity is updated alongside. No-op without a
// draft.
func (s *Service) UpdateCurrentItem(update LineUpdate, notify ...bool) {
	if s.current == nil {
		return
	}
	merged := s.current.applied(update)
	clampQuantityForOffer(&merged)
	s.current = &merged
	if i := s.find(merged.Key()); i >= 0 {
		s.lines[i] = merged.clone()
	}
	s.invalidate()
	if shouldNotify(notify) {
		s.Notify()
	}
}

// CurrentItem returns a copy of the draft line, or nil when none is set.
func (s *Service) CurrentItem() *Line {
	if s.current == nil {
		return nil
	}
	line := s.current.clone()
	return &line
}

// IsCurrentItemInCart reports whether the draft's identity is committed.
func (s *Service) IsCurrentItemInCart() bool {
	return s.current != nil && s.find(s.current.Key()) >= 0
}

// AddCurrentItemToCart commits the draft line unless it is already present.
func (s *Service) AddCurrentItemToCart(notify ...bool) {
	if s.current == nil || s.IsCurrentItemInCart() {
		return
	}
	s.Add(*s.current, notify...)
}

// RemoveCurrentItemFromCart removes the committed line matching the draft.
func (s *Service) RemoveCurrentItemFromCart(notify ...bool) {
	if s.current == nil {
		return
	}
	s.removeKey(s.current.Key(), notify)
}

// ToggleCurrentItemInCart adds or removes the draft line depending on
// whether it is already committed.
func (s *Service) ToggleCurrentItemInCart(notify ...bool) {
	if s.IsCurrentItemInCart() {
		s.RemoveCurrentItemFromCart(notify...)
	} else {
		s.AddCurrentItemToCart(notify...)
	}
}

// Clear empties the committed lines; the draft is untouched. Clearing an
// already empty cart is a no-op.
func (s *Service) Clear(notify ...bool) {
	if len(s.lines) == 0 {
		return
	}
	s.lines = nil
	s.invalidate()
	if shouldNotify(notify) {
		s.Notify()
	}
}

// All returns a snapshot copy of the committed lines; mutating the result
// cannot bypass the engine's cache invalidation.
func (s *Service) All() []Line {
	out := make([]Line, len(s.lines))
	for i := range s.lines {
		out[i] = s.lines[i].clone()
	}
	return out
}

// IsEmpty reports whether no line is committed.
func (s *Service) IsEmpty() bool {
	return len(s.lines) == 0
}

// ValidateShippingAddress reports whether the current address is complete
// enough to submit an order: a valid local phone number and a state.
func (s *Service) ValidateShippingAddress() error {
	if err := phone.Validate(phone.Normalize(s.shippingAddress.Phone)); err != nil {
		return fmt.Errorf("phone: %w", err)
	}
	if strings.TrimSpace(s.shippingAddress.State) == "" {
		return errors.New("state required")
	}
	return nil
}
