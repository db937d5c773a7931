package commodity

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// This file persists amounts and balances as JSON, in the display form a
// reader of the surrounding files would expect. The numeral is the
// display-rounded value, so exactness beyond display digits survives
// round-tripping only for keep-precision amounts, which persist all their
// digits. Decoding goes through the standard constructors and therefore
// observes precision like any other construction.

// MarshalJSON encodes the amount as an ordered object:
//
//	{"commodity":"EUR","amount":"123.46"}
//
// The commodity field is omitted for bare numbers.
func (a Amount) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("commodity", a.commodity.Name())
	prec := a.DisplayPrecision()
	w.Append("amount", a.numeral(prec))
	return w.MarshalJSON()
}

// UnmarshalJSON decodes an amount encoded by MarshalJSON. The commodity is
// interned in the default registry.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var js struct {
		Commodity string          `json:"commodity"`
		Amount    decimal.Decimal `json:"amount"`
	}
	if err := json.Unmarshal(data, &js); err != nil {
		return fmt.Errorf("format error in %q: %w", string(data), err)
	}
	*a = DefaultRegistry.Amount(js.Amount, js.Commodity)
	return nil
}

// MarshalJSON encodes the balance as an object keyed by commodity name,
// entries in name order with the bare entry under "" last:
//
//	{"EUR":"20.00","USD":"100.00","":"3.5"}
func (b *Balance) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, a := range b.Amounts() {
		w.Append(a.commodity.Name(), a.numeral(a.DisplayPrecision()))
	}
	return w.MarshalJSON()
}

// UnmarshalJSON decodes a balance encoded by MarshalJSON. Zero entries are
// dropped, so the decoded balance is in the same sealed form operations
// produce; commodities are interned in the default registry.
func (b *Balance) UnmarshalJSON(data []byte) error {
	var js map[string]decimal.Decimal
	if err := json.Unmarshal(data, &js); err != nil {
		return fmt.Errorf("format error in %q: %w", string(data), err)
	}
	m := make(map[*Commodity]Amount, len(js))
	for name, value := range js {
		a := DefaultRegistry.Amount(value, name)
		if a.IsZeroExact() {
			continue
		}
		m[a.commodity] = a
	}
	*b = Balance{amounts: m}
	return nil
}
