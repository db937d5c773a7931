package commodity

import (
	"fmt"
	"math/big"
)

// Equal reports whether l and r are equal in display mode: each side is
// rounded to its applicable display precision before comparing. Equality
// never fails; values that cannot match (different commodities, different
// entry sets) are simply not equal.
func Equal(l, r Value) bool { return equal(l, r, Amount.displayRat) }

// EqualExact compares the underlying rational quantities with no rounding.
// EqualExact implies Equal, not conversely: two values may round together
// at display precision while differing exactly.
func EqualExact(l, r Value) bool { return equal(l, r, Amount.rat) }

func equal(l, r Value, quantity func(Amount) *big.Rat) bool {
	la, lok := asScalar(l)
	ra, rok := asScalar(r)
	switch {
	case lok && rok:
		return equalAmount(la, ra, quantity)
	case lok != rok:
		// a multi-entry balance never equals a single-slot value
		return false
	}

	lb := l.(*Balance)
	rb := r.(*Balance)
	if len(lb.amounts) != len(rb.amounts) {
		return false
	}
	for c, a := range lb.amounts {
		o, ok := rb.amounts[c]
		if !ok || !equalAmount(a, o, quantity) {
			return false
		}
	}
	return true
}

// equalAmount compares two single amounts: same commodity slot and same
// quantity under the requested mode.
func equalAmount(l, r Amount, quantity func(Amount) *big.Rat) bool {
	return l.commodity == r.commodity && quantity(l).Cmp(quantity(r)) == 0
}

// Cmp orders l and r in display mode, rounding each side to its applicable
// display precision first. It returns -1, 0 or +1.
//
// Ordering is defined only between values that resolve to a single
// commodity slot: a multi-entry balance on either side fails with
// ErrIncomparableValue. Two different non-bare commodities fail with
// ErrCommodityMismatch; a bare side is compatible with anything.
func Cmp(l, r Value) (int, error) { return compare(l, r, Amount.displayRat) }

// CmpExact orders by the underlying rational quantities with no rounding,
// under the same compatibility rules as Cmp.
func CmpExact(l, r Value) (int, error) { return compare(l, r, Amount.rat) }

func compare(l, r Value, quantity func(Amount) *big.Rat) (int, error) {
	la, lok := asScalar(l)
	ra, rok := asScalar(r)
	if !lok || !rok {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", l, r, ErrIncomparableValue)
	}
	if la.commodity != nil && ra.commodity != nil && la.commodity != ra.commodity {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", l, r, ErrCommodityMismatch)
	}
	return quantity(la).Cmp(quantity(ra)), nil
}
