package commodity

import (
	"math/big"
	"testing"
)

func TestAmount_Construction(t *testing.T) {
	r := NewRegistry()

	a := amount(r, "100.00", "USD")
	if got := a.Precision(); got != 2 {
		t.Errorf("Precision() = %d, want 2: trailing zeros count", got)
	}
	if c := a.Commodity(); c == nil || c.Name() != "USD" {
		t.Fatalf("Commodity() = %v, want USD", c)
	}
	if got := a.Commodity().DisplayPrecision(); got != 2 {
		t.Errorf("construction must raise the tracked precision, got %d, want 2", got)
	}

	// a later coarse amount still displays at the tracked precision
	b := amount(r, "5", "USD")
	if got := b.Precision(); got != 0 {
		t.Errorf("Precision() = %d, want 0", got)
	}
	if got := b.DisplayPrecision(); got != 2 {
		t.Errorf("DisplayPrecision() = %d, want the tracked 2", got)
	}
}

func TestAmount_ZeroValue(t *testing.T) {
	var a Amount
	if !a.IsZero() || !a.IsZeroExact() {
		t.Error("the zero Amount is the number zero")
	}
	if a.Commodity() != nil {
		t.Error("the zero Amount has no commodity")
	}
	if got := a.Sign(); got != 0 {
		t.Errorf("Sign() = %d, want 0", got)
	}
	if got := a.String(); got != "0" {
		t.Errorf("String() = %q, want %q", got, "0")
	}
}

func TestAmount_DisplayPrecisionSelection(t *testing.T) {
	r := NewRegistry()

	if got := bare(r, "2.5").DisplayPrecision(); got != 1 {
		t.Errorf("bare 2.5 displays at its own precision, got %d, want 1", got)
	}
	if got := bare(r, "0.123456").DisplayPrecision(); got != DefaultDisplayPrecision() {
		t.Errorf("over-precise bare numbers cap at the default, got %d, want %d",
			got, DefaultDisplayPrecision())
	}

	a := amount(r, "7.00", "kWh")
	amount(r, "0.1234", "kWh") // raises the tracked precision to 4
	if got := a.DisplayPrecision(); got != 4 {
		t.Errorf("commodity amounts display at the tracked precision, got %d, want 4", got)
	}

	e := r.AmountExact(dec("7.00"), "kWh")
	if got := e.DisplayPrecision(); got != 2 {
		t.Errorf("keep-precision amounts display at their own precision, got %d, want 2", got)
	}
}

func TestAmount_Exact(t *testing.T) {
	r := NewRegistry()
	a := amount(r, "1.50", "EUR")
	if a.IsExact() {
		t.Fatal("IsExact() = true on a standard amount")
	}
	e := a.Exact()
	if !e.IsExact() {
		t.Error("IsExact() = false after Exact()")
	}
	if a.IsExact() {
		t.Error("Exact() must copy, not mutate")
	}
}

func TestAmount_Predicates(t *testing.T) {
	r := NewRegistry()
	cent := amount(r, "0.01", "USD")

	v, err := Div(cent, bare(r, "7"))
	if err != nil {
		t.Fatalf("Div() error = %v", err)
	}
	a := v.(Amount)
	if !a.IsZero() {
		t.Error("IsZero() = false: a seventh of a cent displays as zero at 2 digits")
	}
	if a.IsZeroExact() {
		t.Error("IsZeroExact() = true: the exact quantity is not zero")
	}
	if a.IsPos() {
		t.Error("IsPos() = true: the displayed value is zero")
	}
	if !a.IsPosExact() {
		t.Error("IsPosExact() = false: the exact quantity is positive")
	}
}

func TestAmount_NegAbs(t *testing.T) {
	r := NewRegistry()
	a := amount(r, "3.25", "USD")

	n := a.Neg()
	if got := n.Sign(); got != -1 {
		t.Errorf("Neg().Sign() = %d, want -1", got)
	}
	if got := n.Precision(); got != 2 {
		t.Errorf("Neg().Precision() = %d, want 2", got)
	}
	if got := a.Sign(); got != 1 {
		t.Error("Neg() must not mutate the receiver")
	}
	if got := n.Abs().Sign(); got != 1 {
		t.Errorf("Abs().Sign() = %d, want 1", got)
	}
}

func TestAmount_RatCopy(t *testing.T) {
	a := Q(42)
	a.Rat().SetInt64(7)
	if got := a.Rat(); got.Cmp(big.NewRat(42, 1)) != 0 {
		t.Errorf("Rat() = %v after mutating a previous copy, want 42", got)
	}
}

func TestPackageConstructors(t *testing.T) {
	a := A(1.25, "XPT")
	if got := a.Commodity().Name(); got != "XPT" {
		t.Errorf("Commodity().Name() = %q, want XPT", got)
	}
	if got := a.Precision(); got != 2 {
		t.Errorf("Precision() = %d, want 2", got)
	}
	if !EqualExact(a, A(dec("1.25"), "XPT")) {
		t.Error("float and decimal construction of 1.25 XPT differ")
	}

	q := Q(int64(10))
	if q.Commodity() != nil {
		t.Error("Q() must build a bare number")
	}
	if !EqualExact(q, Q(10)) {
		t.Error("Q(int64(10)) and Q(10) differ")
	}
}
