package commodity

import (
	"slices"
	"strings"
)

// Balance is a collection of amounts, at most one per commodity, with a
// distinguished slot (nil) for bare numbers. Balances arise when amounts
// of different commodities are added or subtracted; they are immutable,
// and an operation result never keeps an entry whose quantity is exactly
// zero. The zero Balance has no entries and behaves as the bare number 0.
type Balance struct {
	amounts map[*Commodity]Amount
}

// Len returns the number of entries.
func (b *Balance) Len() int { return len(b.amounts) }

// Amount returns the entry for the given commodity (nil for the bare
// slot).
func (b *Balance) Amount(c *Commodity) (Amount, bool) {
	a, ok := b.amounts[c]
	return a, ok
}

// Amounts returns the entries, named commodities first in name order, the
// bare entry last. Display uses the same order.
func (b *Balance) Amounts() []Amount {
	list := make([]Amount, 0, len(b.amounts))
	for _, a := range b.amounts {
		list = append(list, a)
	}
	slices.SortFunc(list, func(x, y Amount) int {
		switch {
		case x.commodity == y.commodity:
			return 0
		case x.commodity == nil:
			return 1
		case y.commodity == nil:
			return -1
		default:
			return strings.Compare(x.commodity.Name(), y.commodity.Name())
		}
	})
	return list
}

// single resolves the balance to one amount when it has at most one entry:
// its sole entry, or the bare zero when empty.
func (b *Balance) single() (Amount, bool) {
	switch len(b.amounts) {
	case 0:
		return Amount{}, true
	case 1:
		for _, a := range b.amounts {
			return a, true
		}
	}
	return Amount{}, false
}

// clone returns a copy of the entry map ready for merging.
func (b *Balance) clone() map[*Commodity]Amount {
	m := make(map[*Commodity]Amount, len(b.amounts))
	for c, a := range b.amounts {
		m[c] = a
	}
	return m
}

// sealBalance wraps a merged entry map into a Value: entries holding an
// exactly-zero quantity are dropped, and a balance left with no entries
// collapses to the bare zero amount.
func sealBalance(m map[*Commodity]Amount) Value {
	for c, a := range m {
		if a.IsZeroExact() {
			delete(m, c)
		}
	}
	if len(m) == 0 {
		return Amount{}
	}
	return &Balance{amounts: m}
}

// Neg returns the balance with every entry negated.
func (b *Balance) Neg() *Balance {
	m := make(map[*Commodity]Amount, len(b.amounts))
	for c, a := range b.amounts {
		m[c] = a.Neg()
	}
	return &Balance{amounts: m}
}

// IsZero reports whether every entry displays as zero. True for the empty
// balance.
func (b *Balance) IsZero() bool {
	for _, a := range b.amounts {
		if !a.IsZero() {
			return false
		}
	}
	return true
}

// IsNeg reports whether the balance is nonzero and every entry that does
// not display as zero is negative.
func (b *Balance) IsNeg() bool {
	any := false
	for _, a := range b.amounts {
		if a.IsZero() {
			continue
		}
		if !a.IsNeg() {
			return false
		}
		any = true
	}
	return any
}

// IsPos reports whether the balance is nonzero and every entry that does
// not display as zero is positive.
func (b *Balance) IsPos() bool {
	any := false
	for _, a := range b.amounts {
		if a.IsZero() {
			continue
		}
		if !a.IsPos() {
			return false
		}
		any = true
	}
	return any
}

// IsZeroExact, IsNegExact and IsPosExact are the exact-quantity variants of
// the display tests above.

func (b *Balance) IsZeroExact() bool {
	for _, a := range b.amounts {
		if !a.IsZeroExact() {
			return false
		}
	}
	return true
}

func (b *Balance) IsNegExact() bool {
	any := false
	for _, a := range b.amounts {
		if a.IsZeroExact() {
			continue
		}
		if !a.IsNegExact() {
			return false
		}
		any = true
	}
	return any
}

func (b *Balance) IsPosExact() bool {
	any := false
	for _, a := range b.amounts {
		if a.IsZeroExact() {
			continue
		}
		if !a.IsPosExact() {
			return false
		}
		any = true
	}
	return any
}

func (*Balance) value() {}
