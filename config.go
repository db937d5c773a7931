package commodity

import "sync/atomic"

// Process-wide display settings. Meant to be set once at startup; every
// accessor is safe for concurrent use.
var (
	defaultDisplayPrecision atomic.Int32
	extraPrecision          atomic.Int32
)

func init() {
	defaultDisplayPrecision.Store(3)
	extraPrecision.Store(6)
}

// DefaultDisplayPrecision returns the display precision used for amounts
// that have no commodity. The default is 3.
func DefaultDisplayPrecision() int { return int(defaultDisplayPrecision.Load()) }

// SetDefaultDisplayPrecision changes the display precision for amounts
// without a commodity. Negative values are clipped to zero.
func SetDefaultDisplayPrecision(p int) { defaultDisplayPrecision.Store(int32(max(p, 0))) }

// ExtraPrecision returns the precision margin added by division and used to
// cap the precision contributed by bare operands in add and subtract. The
// default is 6.
func ExtraPrecision() int { return int(extraPrecision.Load()) }

// SetExtraPrecision changes the division precision margin. Negative values
// are clipped to zero.
func SetExtraPrecision(p int) { extraPrecision.Store(int32(max(p, 0))) }
