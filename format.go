package commodity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// String renders the amount in display mode: rounded half-to-even at the
// applicable display precision. That is its own precision for
// keep-precision amounts, the commodity's tracked precision otherwise,
// and the default display precision for bare numbers.
func (a Amount) String() string { return a.format(a.DisplayPrecision()) }

// FullString renders the amount at its own internal precision.
func (a Amount) FullString() string { return a.format(a.precision) }

// numeral returns the quantity rounded half-to-even at prec fractional
// digits, as a decimal with exactly that many of them.
func (a Amount) numeral(prec int) decimal.Decimal {
	return decimal.NewFromBigInt(roundScaled(a.rat(), prec), int32(-prec))
}

// format renders the quantity rounded at prec fractional digits, grouped
// and decorated per the commodity's writing conventions. The numeral
// carries the sign: "$-100.00", "-100.00 EUR".
func (a Amount) format(prec int) string {
	num := a.numeral(prec).StringFixed(int32(prec))
	if a.commodity.ThousandMarks() {
		num = groupDigits(num)
	}

	c := a.commodity
	if c == nil {
		return num
	}
	name := c.Name()
	if c.symbol.NeedsQuoting {
		name = `"` + name + `"`
	}
	switch {
	case c.symbol.Prefixed && c.symbol.Connected:
		return name + num
	case c.symbol.Prefixed:
		return name + " " + num
	case c.symbol.Connected:
		return num + name
	default:
		return num + " " + name
	}
}

// groupDigits inserts a grouping mark every three digits of the integer
// part.
func groupDigits(num string) string {
	sign := ""
	if strings.HasPrefix(num, "-") {
		sign, num = "-", num[1:]
	}
	intpart, frac, found := strings.Cut(num, ".")
	var b strings.Builder
	b.WriteString(sign)
	n := len(intpart)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intpart[i])
	}
	if found {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// String renders the balance one entry per line, named commodities first
// in name order, the bare entry last. The empty balance renders as "0".
func (b *Balance) String() string { return b.render(Amount.String) }

// FullString renders every entry at its own internal precision.
func (b *Balance) FullString() string { return b.render(Amount.FullString) }

func (b *Balance) render(f func(Amount) string) string {
	entries := b.Amounts()
	if len(entries) == 0 {
		return "0"
	}
	lines := make([]string, len(entries))
	for i, a := range entries {
		lines[i] = f(a)
	}
	return strings.Join(lines, "\n")
}
