package commodity

import (
	"errors"
	"fmt"
	"math/big"
)

// Value is a number, an amount of one commodity, or a balance of several.
// The union is closed: only Amount and *Balance implement it, and bare
// numbers are amounts without a commodity, so the dispatch below is
// exhaustive.
type Value interface {
	// String renders the value in display mode, FullString at each
	// amount's own internal precision.
	String() string
	FullString() string

	// Display-mode and exact sign tests. Balances test entry-wise: zero
	// iff every entry is, negative or positive iff nonzero and uniform.
	IsZero() bool
	IsNeg() bool
	IsPos() bool
	IsZeroExact() bool
	IsNegExact() bool
	IsPosExact() bool

	value()
}

// Arithmetic and comparison failure modes. Callers test with errors.Is;
// the message at the failure site carries both operands.
var (
	ErrDivisionByZero    = errors.New("division by zero")
	ErrCommodityMismatch = errors.New("commodity mismatch")
	ErrIncomparableValue = errors.New("incomparable value")
)

// Neg returns v with every quantity negated.
func Neg(v Value) Value {
	switch v := v.(type) {
	case Amount:
		return v.Neg()
	case *Balance:
		return v.Neg()
	}
	panic(fmt.Sprintf("invalid Value operand %T", v))
}

// cappedPrecision is the precision an operand contributes to add and
// subtract: bare operands are capped at ExtraPrecision so that an
// over-precise plain number cannot inflate a result's precision without
// bound.
func (a Amount) cappedPrecision() int {
	if a.commodity == nil {
		return min(a.precision, ExtraPrecision())
	}
	return a.precision
}

// addAmount adds two amounts sharing one commodity slot.
func addAmount(l, r Amount) Amount {
	return Amount{
		quantity:  new(big.Rat).Add(l.rat(), r.rat()),
		commodity: l.commodity,
		precision: max(l.cappedPrecision(), r.cappedPrecision()),
		exact:     l.exact || r.exact,
	}
}

// mulAmount multiplies l by the scalar r. The result stays in l's slot;
// r's commodity is ignored.
func mulAmount(l, r Amount) Amount {
	return Amount{
		quantity:  new(big.Rat).Mul(l.rat(), r.rat()),
		commodity: l.commodity,
		precision: l.precision + r.precision,
		exact:     l.exact || r.exact,
	}
}

// divAmount divides l by the scalar r, which callers have checked against
// zero. The ExtraPrecision overshoot keeps chained divisions from eroding
// the full-precision display; the quantity itself stays exact regardless.
func divAmount(l, r Amount) Amount {
	return Amount{
		quantity:  new(big.Rat).Quo(l.rat(), r.rat()),
		commodity: l.commodity,
		precision: max(l.precision, r.precision) + ExtraPrecision(),
		exact:     l.exact || r.exact,
	}
}

// addAmounts adds two amounts: same slot stays an amount, different slots
// promote to a balance carrying both.
func addAmounts(l, r Amount) Value {
	if l.commodity == r.commodity {
		return addAmount(l, r)
	}
	m := make(map[*Commodity]Amount, 2)
	m[l.commodity] = l
	m[r.commodity] = r
	return sealBalance(m)
}

// mergeBalance adds the amount a into b's matching slot.
func mergeBalance(b *Balance, a Amount) Value {
	m := b.clone()
	if cur, ok := m[a.commodity]; ok {
		m[a.commodity] = addAmount(cur, a)
	} else {
		m[a.commodity] = a
	}
	return sealBalance(m)
}

// mergeBalances adds every entry of r into l.
func mergeBalances(l, r *Balance) Value {
	m := l.clone()
	for c, a := range r.amounts {
		if cur, ok := m[c]; ok {
			m[c] = addAmount(cur, a)
		} else {
			m[c] = a
		}
	}
	return sealBalance(m)
}

// Add returns l + r. It never fails: amounts in different commodity slots
// promote to a balance instead of erroring, and a balance whose entries
// all cancel collapses to the bare zero.
func Add(l, r Value) Value {
	switch l := l.(type) {
	case Amount:
		switch r := r.(type) {
		case Amount:
			return addAmounts(l, r)
		case *Balance:
			return mergeBalance(r, l)
		}
	case *Balance:
		switch r := r.(type) {
		case Amount:
			return mergeBalance(l, r)
		case *Balance:
			return mergeBalances(l, r)
		}
	}
	panic(fmt.Sprintf("invalid Value operands %T, %T", l, r))
}

// Sub returns l - r. Like Add, it never fails.
func Sub(l, r Value) Value { return Add(l, Neg(r)) }

// asScalar resolves a value for the scalar position of multiply and
// divide: an amount as itself, a balance only when it has at most one
// entry.
func asScalar(v Value) (Amount, bool) {
	switch v := v.(type) {
	case Amount:
		return v, true
	case *Balance:
		return v.single()
	}
	panic(fmt.Sprintf("invalid Value operand %T", v))
}

// Mul returns l * r. The right operand must resolve to a single amount; a
// multi-entry balance cannot scale anything and fails with
// ErrIncomparableValue. Each resulting amount keeps its left-side
// commodity, and r's commodity is ignored rather than rejected.
func Mul(l, r Value) (Value, error) {
	scalar, ok := asScalar(r)
	if !ok {
		return nil, fmt.Errorf("computing [%v * %v]: %w", l, r, ErrIncomparableValue)
	}
	switch l := l.(type) {
	case Amount:
		return mulAmount(l, scalar), nil
	case *Balance:
		m := make(map[*Commodity]Amount, len(l.amounts))
		for c, a := range l.amounts {
			m[c] = mulAmount(a, scalar)
		}
		return sealBalance(m), nil
	}
	panic(fmt.Sprintf("invalid Value operand %T", l))
}

// Div returns l / r under the same scalar rules as Mul. A divisor whose
// quantity is exactly zero fails with ErrDivisionByZero; the check is on
// the exact quantity, never on a rounded form.
func Div(l, r Value) (Value, error) {
	scalar, ok := asScalar(r)
	if !ok {
		return nil, fmt.Errorf("computing [%v / %v]: %w", l, r, ErrIncomparableValue)
	}
	if scalar.IsZeroExact() {
		return nil, fmt.Errorf("computing [%v / %v]: %w", l, r, ErrDivisionByZero)
	}
	switch l := l.(type) {
	case Amount:
		return divAmount(l, scalar), nil
	case *Balance:
		m := make(map[*Commodity]Amount, len(l.amounts))
		for c, a := range l.amounts {
			m[c] = divAmount(a, scalar)
		}
		return sealBalance(m), nil
	}
	panic(fmt.Sprintf("invalid Value operand %T", l))
}
