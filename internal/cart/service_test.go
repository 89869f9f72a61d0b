package cart

import (
	"testing"

	"github.com/feeefapp/feeef-go/internal/domain"
)

func TestAddMergesSameIdentity(t *testing.T) {
	svc := New(nil)
	svc.Add(Line{Product: testProduct(), Quantity: 2}, false)
	svc.Add(Line{Product: testProduct(), Quantity: 3}, false)

	all := svc.All()
	if len(all) != 1 {
		t.Fatalf("expected one merged line, got %d", len(all))
	}
	if all[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", all[0].Quantity)
	}
}

func TestAddMergesWithVariantAndAddonIdentity(t *testing.T) {
	svc := New(nil)
	addons := map[string]int{"Extra Cheese": 1, "Extra Sauce": 2}
	svc.Add(Line{Product: testProduct(), Quantity: 1, Variant: "red/large", Addons: addons}, false)
	svc.Add(Line{Product: testProduct(), Quantity: 1, Variant: "red/large", Addons: map[string]int{"Extra Sauce": 1, "Extra Cheese": 4}}, false)

	if got := len(svc.All()); got != 1 {
		t.Fatalf("expected addon key order not to split identity, got %d lines", got)
	}
}

func TestAddKeepsDistinctIdentitiesSeparate(t *testing.T) {
	svc := New(nil)
	svc.Add(Line{Product: testProduct(), Quantity: 1}, false)
	svc.Add(Line{Product: testProduct(), Quantity: 1, Variant: "red/large"}, false)
	svc.Add(Line{Product: testProduct(), Quantity: 1, Offer: &domain.ProductOffer{Code: "BULK"}}, false)

	if got := len(svc.All()); got != 3 {
		t.Fatalf("expected 3 distinct lines, got %d", got)
	}
}

func TestAddClampsQuantityToOfferBounds(t *testing.T) {
	svc := New(nil)
	offer := &domain.ProductOffer{Code: "BULK", MinQuantity: iptr(2), MaxQuantity: iptr(5)}

	svc.Add(Line{Product: testProduct(), Quantity: 1, Offer: offer}, false)
	if got := svc.All()[0].Quantity; got != 2 {
		t.Fatalf("expected quantity clamped up to 2, got %d", got)
	}

	svc.Add(Line{Product: testProduct(), Quantity: 9, Offer: offer}, false)
	if got := svc.All()[0].Quantity; got != 5 {
		t.Fatalf("expected quantity clamped down to 5, got %d", got)
	}
}

func TestRemoveByIdentity(t *testing.T) {
	svc := New(nil)
	svc.Add(Line{Product: testProduct(), Quantity: 1}, false)
	svc.Add(Line{Product: testProduct(), Quantity: 1, Variant: "red/large"}, false)

	svc.Remove(Line{Product: testProduct()}, false)

	all := svc.All()
	if len(all) != 1 || all[0].Variant != "red/large" {
		t.Fatalf("expected only the variant line to remain, got %+v", all)
	}
}

func TestRemoveAbsentLineDoesNotNotify(t *testing.T) {
	svc := New(nil)
	notified := 0
	svc.AddListener(func(*Service) { notified++ })

	svc.Remove(Line{Product: testProduct()})
	if notified != 0 {
		t.Fatalf("expected no notification for no-op remove, got %d", notified)
	}
}

func TestRemoveByProduct(t *testing.T) {
	svc := New(nil)
	p2 := testProduct()
	p2.ID = "p2"
	svc.Add(Line{Product: testProduct(), Quantity: 1}, false)
	svc.Add(Line{Product: testProduct(), Quantity: 1, Variant: "red/large"}, false)
	svc.Add(Line{Product: p2, Quantity: 1}, false)

	svc.RemoveByProduct("p1", "", false)

	all := svc.All()
	if len(all) != 1 || all[0].Product.ID != "p2" {
		t.Fatalf("expected only p2 to remain, got %+v", all)
	}
}

func TestRemoveByProductWithVariant(t *testing.T) {
	svc := New(nil)
	svc.Add(Line{Product: testProduct(), Quantity: 1}, false)
	svc.Add(Line{Product: testProduct(), Quantity: 1, Variant: "red/large"}, false)

	svc.RemoveByProduct("p1", "red/large", false)

	all := svc.All()
	if len(all) != 1 || all[0].Variant != "" {
		t.Fatalf("expected the plain line to remain, got %+v", all)
	}
}

func TestUpdateItemMergesPartialFields(t *testing.T) {
	svc := New(nil)
	svc.Add(Line{Product: testProduct(), Quantity: 2}, false)

	svc.UpdateItem(Line{Product: testProduct(), Quantity: 2}, LineUpdate{Quantity: iptr(4)}, false)

	if got := svc.All()[0].Quantity; got != 4 {
		t.Fatalf("expected quantity 4, got %d", got)
	}
}

func TestUpdateItemClampsToAttachedOffer(t *testing.T) {
	svc := New(nil)
	svc.Add(Line{Product: testProduct(), Quantity: 1}, false)

	offer := &domain.ProductOffer{Code: "BULK", MinQuantity: iptr(2), MaxQuantity: iptr(5)}
	svc.UpdateItem(Line{Product: testProduct(), Quantity: 1}, LineUpdate{Offer: offer}, false)

	line := svc.All()[0]
	if line.Offer == nil || line.Offer.Code != "BULK" {
		t.Fatalf("expected offer attached, got %+v", line)
	}
	if line.Quantity != 2 {
		t.Fatalf("expected quantity clamped to 2, got %d", line.Quantity)
	}

	svc.UpdateItem(line, LineUpdate{Quantity: iptr(9)}, false)
	if got := svc.All()[0].Quantity; got != 5 {
		t.Fatalf("expected quantity clamped to 5, got %d", got)
	}
}

func TestUpdateItemCollapsesRewrittenIdentity(t *testing.T) {
	svc := New(nil)
	svc.Add(Line{Product: testProduct(), Quantity: 2}, false)
	svc.Add(Line{Product: testProduct(), Quantity: 3, Variant: "red/large"}, false)

	// Rewriting the plain line onto the variant identity must merge, not
	// leave two lines with one key.
	svc.UpdateItem(Line{Product: testProduct(), Quantity: 2}, LineUpdate{Variant: sptr("red/large")}, false)

	all := svc.All()
	if len(all) != 1 {
		t.Fatalf("expected one line after identity collision, got %d", len(all))
	}
	if all[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", all[0].Quantity)
	}
}

func TestUpdateItemMissingIsNoOp(t *testing.T) {
	svc := New(nil)
	notified := 0
	svc.AddListener(func(*Service) { notified++ })

	svc.UpdateItem(Line{Product: testProduct()}, LineUpdate{Quantity: iptr(3)})
	if notified != 0 {
		t.Fatalf("expected no notification, got %d", notified)
	}
}

func TestSetCurrentItemUpdatesCommittedCopy(t *testing.T) {
	svc := New(nil)
	svc.Add(Line{Product: testProduct(), Quantity: 2}, false)

	svc.SetCurrentItem(Line{Product: testProduct(), Quantity: 7}, false)

	if got := svc.All()[0].Quantity; got != 7 {
		t.Fatalf("expected committed copy updated to 7, got %d", got)
	}
}

func TestUpdateCurrentItemWithoutDraftIsNoOp(t *testing.T) {
	svc := New(nil)
	notified := 0
	svc.AddListener(func(*Service) { notified++ })

	svc.UpdateCurrentItem(LineUpdate{Quantity: iptr(2)})
	if notified != 0 {
		t.Fatalf("expected no notification without a draft, got %d", notified)
	}
}

func TestUpdateCurrentItemFollowsIdentity(t *testing.T) {
	svc := New(nil)
	svc.Add(Line{Product: testProduct(), Quantity: 1, Variant: "red/large"}, false)
	svc.SetCurrentItem(Line{Product: testProduct(), Quantity: 1}, false)

	svc.UpdateCurrentItem(LineUpdate{Variant: sptr("red/large"), Quantity: iptr(4)}, false)

	if got := svc.All()[0].Quantity; got != 4 {
		t.Fatalf("expected committed variant line updated to 4, got %d", got)
	}
	current := svc.CurrentItem()
	if current == nil || current.Variant != "red/large" {
		t.Fatalf("expected draft to carry the new variant, got %+v", current)
	}
}

func TestAddRemoveToggleCurrentItem(t *testing.T) {
	svc := New(nil)
	svc.SetCurrentItem(Line{Product: testProduct(), Quantity: 2}, false)

	if svc.IsCurrentItemInCart() {
		t.Fatalf("expected draft not committed yet")
	}

	svc.AddCurrentItemToCart(false)
	if !svc.IsCurrentItemInCart() || len(svc.All()) != 1 {
		t.Fatalf("expected draft committed")
	}

	// Adding again must not duplicate.
	svc.AddCurrentItemToCart(false)
	if got := len(svc.All()); got != 1 {
		t.Fatalf("expected one line, got %d", got)
	}

	svc.ToggleCurrentItemInCart(false)
	if !svc.IsEmpty() {
		t.Fatalf("expected toggle to remove the committed draft")
	}

	svc.ToggleCurrentItemInCart(false)
	if svc.IsEmpty() {
		t.Fatalf("expected toggle to re-add the draft")
	}

	svc.RemoveCurrentItemFromCart(false)
	if !svc.IsEmpty() {
		t.Fatalf("expected draft removed from cart")
	}
}

func TestClear(t *testing.T) {
	svc := New(nil)
	svc.Add(Line{Product: testProduct(), Quantity: 1}, false)
	svc.SetCurrentItem(Line{Product: testProduct(), Quantity: 1, Variant: "red/large"}, false)

	svc.Clear(false)

	if !svc.IsEmpty() {
		t.Fatalf("expected empty cart")
	}
	if svc.CurrentItem() == nil {
		t.Fatalf("expected draft to survive clear")
	}

	notified := 0
	svc.AddListener(func(*Service) { notified++ })
	svc.Clear()
	if notified != 0 {
		t.Fatalf("expected clearing an empty cart to be a no-op, got %d notifications", notified)
	}
}

func TestAllReturnsSnapshotCopies(t *testing.T) {
	svc := New(nil)
	svc.Add(Line{Product: testProduct(), Quantity: 2, Addons: map[string]int{"Extra Cheese": 1}}, false)

	all := svc.All()
	all[0].Quantity = 99
	all[0].Addons["Extra Cheese"] = 99

	fresh := svc.All()[0]
	if fresh.Quantity != 2 || fresh.Addons["Extra Cheese"] != 1 {
		t.Fatalf("expected engine state untouched by snapshot mutation, got %+v", fresh)
	}
	if got := svc.Subtotal(); got != 210 {
		t.Fatalf("expected subtotal 210 from engine state, got %v", got)
	}
}

func TestValidateShippingAddress(t *testing.T) {
	svc := New(nil)
	if err := svc.ValidateShippingAddress(); err == nil {
		t.Fatalf("expected empty address to be invalid")
	}

	svc.UpdateShippingAddress(AddressUpdate{Phone: sptr("0551 23 45 67"), State: sptr("16")}, false)
	if err := svc.ValidateShippingAddress(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svc.UpdateShippingAddress(AddressUpdate{State: sptr("  ")}, false)
	if err := svc.ValidateShippingAddress(); err == nil {
		t.Fatalf("expected blank state to be invalid")
	}
}
