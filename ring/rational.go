package ring

import (
	"math/big"
)

// RatRing is the euclidean ring over exact rationals. Operands are never
// mutated; every operation allocates its result.
//
// Gcd floors at exactly 1 using rational comparison, following the same
// co-prime convention as the decimal ring.
type RatRing struct{}

func (RatRing) Zero() *big.Rat { return new(big.Rat) }

func (RatRing) One() *big.Rat { return big.NewRat(1, 1) }

func (RatRing) Add(x, y *big.Rat) *big.Rat { return new(big.Rat).Add(x, y) }

func (RatRing) Mul(x, y *big.Rat) *big.Rat { return new(big.Rat).Mul(x, y) }

func (RatRing) Eq(x, y *big.Rat) bool { return x.Cmp(y) == 0 }

func (RatRing) FromInt64(v int64) *big.Rat { return new(big.Rat).SetInt64(v) }

func (RatRing) FromFloat64(v float64) *big.Rat { return new(big.Rat).SetFloat64(v) }

// Quot returns the rational truncating quotient: the integer part of x / y
// as an integer-valued rational.
func (RatRing) Quot(x, y *big.Rat) *big.Rat {
	q := new(big.Rat).Quo(x, y)

	return new(big.Rat).SetInt(new(big.Int).Quo(q.Num(), q.Denom()))
}

func (r RatRing) Mod(x, y *big.Rat) *big.Rat {
	return new(big.Rat).Sub(x, r.Mul(r.Quot(x, y), y))
}

func (r RatRing) QuotMod(x, y *big.Rat) (*big.Rat, *big.Rat) {
	q := r.Quot(x, y)

	return q, new(big.Rat).Sub(x, r.Mul(q, y))
}

func (r RatRing) Gcd(x, y *big.Rat) *big.Rat {
	one := r.One()
	x, y = new(big.Rat).Abs(x), new(big.Rat).Abs(y)
	for {
		if x.Cmp(one) < 0 {
			return one
		}
		if y.Sign() == 0 {
			return x
		}
		if y.Cmp(one) < 0 {
			return one
		}
		x, y = y, r.Mod(x, y)
	}
}

func (r RatRing) Lcm(x, y *big.Rat) *big.Rat { return EuclideanLcm[*big.Rat](r, x, y) }

func init() {
	Register[*big.Rat](RatRing{})
}
