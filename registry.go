package commodity

import (
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Symbol describes how a commodity name is written next to a numeral.
// It is fixed when the commodity is first seen and never changes.
type Symbol struct {
	Name         string
	NeedsQuoting bool // the name must be quoted when printed
	Prefixed     bool // the symbol precedes the numeral
	Connected    bool // no space between symbol and numeral
}

// Commodity is a named unit interned in a Registry. Identity is pointer
// identity: two amounts share a commodity iff they hold the same pointer.
//
// A commodity owns the only mutable state in the package: the display
// precision learned from constructed amounts, and the thousand-marks flag.
// Both are safe for concurrent use.
type Commodity struct {
	symbol Symbol

	precision     atomic.Int32 // display precision, only ever raised
	thousandMarks atomic.Bool
}

// Name returns the commodity's symbol text, "" on a nil commodity.
func (c *Commodity) Name() string {
	if c == nil {
		return ""
	}
	return c.symbol.Name
}

// Symbol returns the commodity's immutable writing conventions.
func (c *Commodity) Symbol() Symbol { return c.symbol }

// DisplayPrecision returns the number of fractional digits tracked for this
// commodity: the largest internal precision ever observed on a constructed
// amount using it. On a nil commodity it returns the process-wide default
// display precision for bare numbers.
func (c *Commodity) DisplayPrecision() int {
	if c == nil {
		return DefaultDisplayPrecision()
	}
	return int(c.precision.Load())
}

// ThousandMarks reports whether grouping separators are used when
// displaying amounts of this commodity. False on a nil commodity.
func (c *Commodity) ThousandMarks() bool {
	if c == nil {
		return false
	}
	return c.thousandMarks.Load()
}

// SetThousandMarks switches grouping separators on or off for this
// commodity. It is the only symbol-related state that may change after
// creation: explicit configuration, or the parse layer seeing a literal
// written with grouping marks.
func (c *Commodity) SetThousandMarks(on bool) { c.thousandMarks.Store(on) }

// observe raises the display precision to at least precision and reports
// whether it changed anything. The CAS loop keeps the update an atomic
// monotonic maximum: concurrent observers never lose the max and readers
// never block.
func (c *Commodity) observe(precision int) bool {
	p := int32(precision)
	for {
		cur := c.precision.Load()
		if cur >= p {
			return false
		}
		if c.precision.CompareAndSwap(cur, p) {
			return true
		}
	}
}

// Registry is a table of commodities keyed by symbol name. Commodities are
// created lazily on first reference and live as long as the registry.
//
// The zero value is not usable; call NewRegistry. Most programs use the
// package-level DefaultRegistry through the package-level constructors;
// tests and embedders that need isolated precision state create their own.
type Registry struct {
	mu    sync.RWMutex
	table map[string]*Commodity

	log atomic.Pointer[zap.Logger]
}

// NewRegistry returns an empty registry with a no-op logger.
func NewRegistry() *Registry {
	r := &Registry{table: make(map[string]*Commodity)}
	r.log.Store(zap.NewNop())
	return r
}

// DefaultRegistry backs the package-level constructors and parsers.
var DefaultRegistry = NewRegistry()

// SetLogger installs a logger for commodity creation and precision-raise
// events, logged at debug level. A nil logger restores the no-op default.
func (r *Registry) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	r.log.Store(l)
}

func (r *Registry) logger() *zap.Logger { return r.log.Load() }

// Intern returns the commodity for name, creating it on first reference
// with display precision 0 and no thousand marks. The empty name is not a
// commodity: Intern("") returns nil. Intern never fails.
func (r *Registry) Intern(name string) *Commodity {
	if name == "" {
		return nil
	}
	return r.intern(Symbol{Name: name, NeedsQuoting: symbolNeedsQuoting(name)})
}

// intern returns the commodity for sym.Name, creating it with sym's flags.
// Flags are first-wins: a later reference with different flags returns the
// existing commodity unchanged.
func (r *Registry) intern(sym Symbol) *Commodity {
	r.mu.RLock()
	c, ok := r.table[sym.Name]
	r.mu.RUnlock()
	if ok {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.table[sym.Name]; ok {
		return c
	}
	c = &Commodity{symbol: sym}
	r.table[sym.Name] = c
	r.logger().Debug("new commodity",
		zap.String("name", sym.Name),
		zap.Bool("prefixed", sym.Prefixed),
		zap.Bool("connected", sym.Connected))
	return c
}

// Lookup returns the commodity for name without creating it.
func (r *Registry) Lookup(name string) (*Commodity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.table[name]
	return c, ok
}

// Commodities returns a snapshot of all interned commodities, sorted by
// name.
func (r *Registry) Commodities() []*Commodity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*Commodity, 0, len(r.table))
	for _, c := range r.table {
		list = append(list, c)
	}
	slices.SortFunc(list, func(a, b *Commodity) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return list
}

// observe records that an amount with the given internal precision was
// constructed for c. Nil commodities (bare numbers) track nothing.
func (r *Registry) observe(c *Commodity, precision int) {
	if c == nil {
		return
	}
	if c.observe(precision) {
		r.logger().Debug("raise display precision",
			zap.String("commodity", c.Name()),
			zap.Int("precision", precision))
	}
}

// Intern returns the commodity for name from the default registry.
func Intern(name string) *Commodity { return DefaultRegistry.Intern(name) }
