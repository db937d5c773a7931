package commodity

import "math/big"

// pow10 returns 10^n for n >= 0.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// roundScaled returns q*10^prec rounded half-to-even to an integer. Ties
// going to the even neighbour keep long chains of display roundings from
// drifting in one direction. The computation stays on integers: no float
// is involved at any point.
func roundScaled(q *big.Rat, prec int) *big.Int {
	num := new(big.Int).Mul(q.Num(), pow10(prec))
	den := q.Denom() // always > 0
	quo, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() == 0 {
		return quo
	}

	neg := rem.Sign() < 0
	twice := rem.Abs(rem)
	twice.Lsh(twice, 1)

	away := false
	switch twice.Cmp(den) {
	case 1:
		away = true
	case 0:
		away = quo.Bit(0) == 1 // tie: only odd quotients move
	}
	if away {
		one := big.NewInt(1)
		if neg {
			quo.Sub(quo, one)
		} else {
			quo.Add(quo, one)
		}
	}
	return quo
}

// roundRat returns q rounded half-to-even at prec fractional digits.
func roundRat(q *big.Rat, prec int) *big.Rat {
	return new(big.Rat).SetFrac(roundScaled(q, prec), pow10(prec))
}
