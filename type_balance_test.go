package commodity

import (
	"slices"
	"testing"
)

func TestBalance_Entries(t *testing.T) {
	r := NewRegistry()
	v := Add(Add(parse(t, r, "$100.00"), parse(t, r, "20.00 EUR")), bare(r, "3.5"))
	b, ok := v.(*Balance)
	if !ok {
		t.Fatalf("Add() = %T, want *Balance", v)
	}
	if got := b.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}

	var names []string
	for _, a := range b.Amounts() {
		names = append(names, a.Commodity().Name())
	}
	want := []string{"$", "EUR", ""}
	if !slices.Equal(names, want) {
		t.Errorf("Amounts() order = %q, want %q", names, want)
	}

	dollar, ok := b.Amount(r.Intern("$"))
	if !ok {
		t.Fatal("Amount($) reported no entry")
	}
	if got := dollar.String(); got != "$100.00" {
		t.Errorf("dollar entry = %q, want %q", got, "$100.00")
	}
	if _, ok := b.Amount(nil); !ok {
		t.Error("Amount(nil) reported no bare entry")
	}
	if _, ok := b.Amount(r.Intern("JPY")); ok {
		t.Error("Amount(JPY) reported an entry that was never added")
	}
}

func TestBalance_ZeroValue(t *testing.T) {
	var b Balance
	if got := b.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
	if !b.IsZero() || !b.IsZeroExact() {
		t.Error("the empty balance is zero in both modes")
	}
	if b.IsPos() || b.IsNeg() || b.IsPosExact() || b.IsNegExact() {
		t.Error("the empty balance has no sign")
	}
	if got := b.String(); got != "0" {
		t.Errorf("String() = %q, want %q", got, "0")
	}
}

func TestBalance_Predicates(t *testing.T) {
	r := NewRegistry()
	pos := Add(parse(t, r, "$1.00"), parse(t, r, "2.00 EUR")).(*Balance)
	if !pos.IsPos() || !pos.IsPosExact() {
		t.Error("IsPos() = false on a balance of positive entries")
	}
	if pos.IsNeg() || pos.IsZero() {
		t.Error("a positive balance is neither negative nor zero")
	}

	neg := pos.Neg()
	if !neg.IsNeg() || !neg.IsNegExact() {
		t.Error("IsNeg() = false on the negated balance")
	}

	mixed := Add(parse(t, r, "$1.00"), parse(t, r, "-2.00 EUR")).(*Balance)
	if mixed.IsPos() || mixed.IsNeg() || mixed.IsZero() {
		t.Error("a mixed-sign balance has no sign and is not zero")
	}
}

func TestBalance_DisplayVsExactPredicates(t *testing.T) {
	r := NewRegistry()
	v, err := Div(parse(t, r, "$0.01"), bare(r, "-7"))
	if err != nil {
		t.Fatalf("Div() error = %v", err)
	}
	tiny := v.(Amount) // negative, displays as $0.00

	b := Add(tiny, parse(t, r, "1.00 EUR")).(*Balance)
	if !b.IsPos() {
		t.Error("IsPos() = false: entries that display as zero do not block the display-mode test")
	}
	if b.IsPosExact() {
		t.Error("IsPosExact() = true: the exact mode sees the negative remainder")
	}
	if b.IsZeroExact() {
		t.Error("IsZeroExact() = true on a balance with nonzero entries")
	}
}
