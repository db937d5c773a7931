package commodity

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ParseAmount parses an amount literal: "$100.00", "100.00 USD", "-5",
// "1,000.50 EUR", `"green apples" 3`. A commodity is interned on first
// sight with the writing conventions the literal shows (symbol before or
// after the numeral, attached or spaced, quoted when the name needs it),
// and grouping marks in the numeral switch its thousand-marks on. The
// amount's precision is the count of fractional digits in the literal,
// trailing zeros included.
func (r *Registry) ParseAmount(s string) (Amount, error) { return r.parseAmount(s, false) }

// ParseAmountExact parses like ParseAmount and sets the keep-precision
// flag on the result.
func (r *Registry) ParseAmountExact(s string) (Amount, error) { return r.parseAmount(s, true) }

// ParseAmount parses an amount literal against the default registry.
func ParseAmount(s string) (Amount, error) { return DefaultRegistry.ParseAmount(s) }

// ParseAmountExact parses an exact amount literal against the default
// registry.
func ParseAmountExact(s string) (Amount, error) { return DefaultRegistry.ParseAmountExact(s) }

func (r *Registry) parseAmount(s string, exact bool) (Amount, error) {
	rest := strings.TrimSpace(s)
	if rest == "" {
		return Amount{}, fmt.Errorf("parsing %q: empty input", s)
	}

	neg := false
	if strings.HasPrefix(rest, "-") {
		neg = true
		rest = strings.TrimSpace(rest[1:])
	}

	var sym Symbol
	havesym := false
	var numstr string

	if startsNumber(rest) {
		num, tail := scanNumber(rest)
		numstr = num
		trimmed := strings.TrimLeft(tail, " \t")
		if trimmed != "" {
			name, after, err := scanSymbol(trimmed)
			if err != nil {
				return Amount{}, fmt.Errorf("parsing %q: %w", s, err)
			}
			if strings.TrimSpace(after) != "" {
				return Amount{}, fmt.Errorf("parsing %q: unexpected trailing %q", s, after)
			}
			sym = Symbol{Name: name, Connected: trimmed == tail}
			havesym = true
		}
	} else {
		name, tail, err := scanSymbol(rest)
		if err != nil {
			return Amount{}, fmt.Errorf("parsing %q: %w", s, err)
		}
		trimmed := strings.TrimLeft(tail, " \t")
		sym = Symbol{Name: name, Prefixed: true, Connected: trimmed == tail}
		havesym = true
		if strings.HasPrefix(trimmed, "-") {
			if neg {
				return Amount{}, fmt.Errorf("parsing %q: duplicate sign", s)
			}
			neg = true
			trimmed = trimmed[1:]
		}
		numstr = trimmed
	}

	clean, marks, err := cleanNumber(numstr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	if neg {
		d = d.Neg()
	}

	var c *Commodity
	if havesym {
		sym.NeedsQuoting = symbolNeedsQuoting(sym.Name)
		c = r.intern(sym)
		if marks {
			c.SetThousandMarks(true)
		}
	}
	return r.build(d, c, exact), nil
}

// startsNumber reports whether s opens with a numeral.
func startsNumber(s string) bool {
	return s != "" && (s[0] >= '0' && s[0] <= '9' || s[0] == '.')
}

// scanNumber splits s into its leading numeral run (digits, grouping
// marks, decimal point) and the remainder.
func scanNumber(s string) (num, rest string) {
	for i, r := range s {
		if r >= '0' && r <= '9' || r == ',' || r == '.' {
			continue
		}
		return s[:i], s[i:]
	}
	return s, ""
}

// scanSymbol reads a commodity symbol from the start of s: a quoted name,
// or a run of symbol runes.
func scanSymbol(s string) (name, rest string, err error) {
	if strings.HasPrefix(s, `"`) {
		end := strings.Index(s[1:], `"`)
		if end < 0 {
			return "", "", errors.New("unterminated quoted symbol")
		}
		if end == 0 {
			return "", "", errors.New("empty quoted symbol")
		}
		return s[1 : 1+end], s[end+2:], nil
	}
	for i, r := range s {
		if !isSymbolRune(r) {
			if i == 0 {
				return "", "", fmt.Errorf("unexpected character %q", r)
			}
			return s[:i], s[i:], nil
		}
	}
	if s == "" {
		return "", "", errors.New("missing symbol")
	}
	return s, "", nil
}

// cleanNumber strips grouping marks from a numeral and reports whether any
// were present. Grouping is lenient: marks must sit between digits of the
// integer part, but group width is not enforced.
func cleanNumber(s string) (clean string, marks bool, err error) {
	var b strings.Builder
	dot := false
	prevDigit := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			prevDigit = true
			b.WriteRune(r)
		case r == '.':
			if dot {
				return "", false, fmt.Errorf("invalid numeral %q", s)
			}
			dot = true
			prevDigit = false
			b.WriteRune(r)
		case r == ',':
			if dot || !prevDigit {
				return "", false, fmt.Errorf("invalid numeral %q", s)
			}
			marks = true
			prevDigit = false
		default:
			return "", false, fmt.Errorf("invalid numeral %q", s)
		}
	}
	clean = b.String()
	if !strings.ContainsAny(clean, "0123456789") {
		return "", false, fmt.Errorf("invalid numeral %q", s)
	}
	// numerals end on a digit: "100." and "1,000," are malformed
	if last := s[len(s)-1]; last < '0' || last > '9' {
		return "", false, fmt.Errorf("invalid numeral %q", s)
	}
	return clean, marks, nil
}

// isSymbolRune reports whether r may appear in an unquoted commodity
// symbol. Digits, spaces and the punctuation that delimits amounts are
// excluded; anything else (letters, currency signs) is allowed.
func isSymbolRune(r rune) bool {
	if unicode.IsDigit(r) || unicode.IsSpace(r) || unicode.IsControl(r) {
		return false
	}
	switch r {
	case '-', '+', '.', ',', ';', ':', '?', '!', '/', '@', '*', '^', '&', '|',
		'(', ')', '[', ']', '{', '}', '<', '>', '=', '\'', '"', '`', '~':
		return false
	}
	return true
}

// symbolNeedsQuoting reports whether name cannot be written unquoted.
func symbolNeedsQuoting(name string) bool {
	for _, r := range name {
		if !isSymbolRune(r) {
			return true
		}
	}
	return false
}
