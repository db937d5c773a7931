package commodity

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Amount is an exact rational quantity optionally bound to a commodity.
//
// The precision field is the number of fractional digits this particular
// value considers significant. It governs full-precision display and the
// precision of derived results; it is not the mathematical value, and two
// amounts may hold equal quantities at different precisions.
//
// Amounts are immutable. The zero Amount is valid and is the bare number 0.
type Amount struct {
	quantity  *big.Rat   // nil is zero
	commodity *Commodity // nil: just a number
	precision int
	exact     bool // display at own precision; propagates through arithmetic
}

var ratZero = new(big.Rat)

// rat returns the quantity for reading. Callers never mutate the result.
func (a Amount) rat() *big.Rat {
	if a.quantity == nil {
		return ratZero
	}
	return a.quantity
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// A returns an amount of the named commodity, interned in the default
// registry. The empty symbol gives a bare number.
func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, symbol string) Amount {
	return DefaultRegistry.Amount(newDecimal(value), symbol)
}

// Q returns a bare amount: a plain number without commodity.
func Q[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return DefaultRegistry.Amount(newDecimal(value), "")
}

// Amount constructs an amount from an exact decimal value and an optional
// commodity symbol. The amount's precision is the decimal's count of
// fractional digits (trailing zeros included: 100.00 has precision 2), and
// the commodity's display precision is raised to it. Never fails.
func (r *Registry) Amount(value decimal.Decimal, symbol string) Amount {
	return r.build(value, r.Intern(symbol), false)
}

// AmountExact is Amount with the keep-precision flag set: the result and
// everything derived from it display at their own precision instead of the
// commodity's. The registry is still informed.
func (r *Registry) AmountExact(value decimal.Decimal, symbol string) Amount {
	return r.build(value, r.Intern(symbol), true)
}

// build is the one construction path: every amount that enters the system
// through it observes its precision on its commodity.
func (r *Registry) build(value decimal.Decimal, c *Commodity, exact bool) Amount {
	prec := int(max(-value.Exponent(), 0))
	r.observe(c, prec)
	return Amount{quantity: value.Rat(), commodity: c, precision: prec, exact: exact}
}

// Commodity returns the amount's commodity, nil for a bare number.
func (a Amount) Commodity() *Commodity { return a.commodity }

// Precision returns the amount's own internal precision.
func (a Amount) Precision() int { return a.precision }

// IsExact reports whether the keep-precision flag is set.
func (a Amount) IsExact() bool { return a.exact }

// Exact returns a copy with the keep-precision flag set.
func (a Amount) Exact() Amount {
	a.exact = true
	return a
}

// Rat returns a copy of the exact quantity.
func (a Amount) Rat() *big.Rat { return new(big.Rat).Set(a.rat()) }

// DisplayPrecision returns the precision used to display this amount: its
// own precision when the keep-precision flag is set, the commodity's
// tracked precision for commodity amounts, and the default display
// precision capped at the amount's own precision for bare numbers (a bare
// 200 displays as "200", never "200.000").
func (a Amount) DisplayPrecision() int {
	if a.exact {
		return a.precision
	}
	if a.commodity == nil {
		return min(DefaultDisplayPrecision(), a.precision)
	}
	return a.commodity.DisplayPrecision()
}

// displayRat returns the quantity rounded the way display would show it.
func (a Amount) displayRat() *big.Rat { return roundRat(a.rat(), a.DisplayPrecision()) }

// Sign returns -1, 0 or +1 for the exact quantity.
func (a Amount) Sign() int { return a.rat().Sign() }

func (a Amount) IsZero() bool      { return a.displayRat().Sign() == 0 }
func (a Amount) IsNeg() bool       { return a.displayRat().Sign() < 0 }
func (a Amount) IsPos() bool       { return a.displayRat().Sign() > 0 }
func (a Amount) IsZeroExact() bool { return a.Sign() == 0 }
func (a Amount) IsNegExact() bool  { return a.Sign() < 0 }
func (a Amount) IsPosExact() bool  { return a.Sign() > 0 }

// Neg returns the amount with its quantity negated. Precision, commodity
// and exactness are unchanged.
func (a Amount) Neg() Amount {
	a.quantity = new(big.Rat).Neg(a.rat())
	return a
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	a.quantity = new(big.Rat).Abs(a.rat())
	return a
}

func (Amount) value() {}
