package commodity

import (
	"github.com/Rhymond/go-money"
)

// InternCurrency interns code as a commodity and seeds it with ISO-4217
// writing conventions from the go-money currency table: the display
// precision starts at the currency's minor-unit count (USD tracks 2,
// JPY tracks 0) and grouping marks are switched on. Codes unknown to the
// table intern like any other symbol. Never fails; safe for concurrent
// use.
func (r *Registry) InternCurrency(code string) *Commodity {
	c := r.Intern(code)
	cur := money.GetCurrency(code)
	if cur == nil {
		return c
	}
	r.observe(c, cur.Fraction)
	c.SetThousandMarks(true)
	return c
}

// InternCurrency interns an ISO-4217 code in the default registry.
func InternCurrency(code string) *Commodity {
	return DefaultRegistry.InternCurrency(code)
}
