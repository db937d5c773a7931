// Package commodity provides commodity-aware arbitrary-precision arithmetic
// for financial-style values: plain numbers, single-commodity amounts such
// as "$100.00", and multi-commodity balances produced when incompatible
// units are combined. Quantities are exact rationals end to end; rounding
// only ever happens when a value is displayed.
//
// The core functionalities include:
//   - Commodity Registry: A concurrency-safe table of commodity descriptors
//     that learns each commodity's display precision from the amounts it
//     sees, monotonically and independently of observation order.
//   - Amounts: A rational quantity optionally bound to a commodity, carrying
//     its own internal precision and a keep-precision flag that forces
//     display at full internal precision.
//   - Balances: A collection of amounts, at most one per commodity
//     (including a slot for bare numbers), produced when amounts of
//     different commodities are added or subtracted.
//   - Arithmetic: Add, Sub, Mul and Div over any mix of the above, with
//     fixed type-promotion and precision-propagation rules and exact
//     detection of division by zero.
//   - Predicates: Equality, ordering and sign tests in two modes, "as
//     displayed" (rounded like the formatting layer would) and "exact"
//     (on the underlying rationals).
//   - Text and JSON: Parsing of amount literals with commodity format
//     inference, canonical display and full-precision rendering, and a
//     stable JSON encoding.
//
// This package serves as the foundational logic for the `cval` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package commodity
