package commodity

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
)

// The package-level constructors observe precision in DefaultRegistry,
// whose state is process-wide. Tests that depend on display precision
// build their amounts in a throwaway registry, or keep their symbols
// local to one test.

// dec is a helper for tests to build a decimal from a literal.
func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// amount is a helper for tests to create an amount in r.
func amount(r *Registry, value, symbol string) Amount { return r.Amount(dec(value), symbol) }

// bare is a helper for tests to create a plain number in r.
func bare(r *Registry, value string) Amount { return r.Amount(dec(value), "") }

// parse is a helper for tests to parse a literal in r, failing the test on
// error.
func parse(t *testing.T, r *Registry, s string) Amount {
	t.Helper()
	a, err := r.ParseAmount(s)
	if err != nil {
		t.Fatalf("ParseAmount(%q) error = %v", s, err)
	}
	return a
}

// ratOf is a helper for tests to build a rational from a literal.
func ratOf(t *testing.T, s string) *big.Rat {
	t.Helper()
	q, ok := new(big.Rat).SetString(s)
	if !ok {
		t.Fatalf("invalid rational literal %q", s)
	}
	return q
}
