package ring

import (
	"math/big"
)

// BigIntRing is the euclidean ring over arbitrary-precision integers.
// Operands are never mutated; every operation allocates its result.
type BigIntRing struct{}

func (BigIntRing) Zero() *big.Int { return new(big.Int) }

func (BigIntRing) One() *big.Int { return big.NewInt(1) }

func (BigIntRing) Add(x, y *big.Int) *big.Int { return new(big.Int).Add(x, y) }

func (BigIntRing) Mul(x, y *big.Int) *big.Int { return new(big.Int).Mul(x, y) }

func (BigIntRing) Eq(x, y *big.Int) bool { return x.Cmp(y) == 0 }

func (BigIntRing) FromInt64(v int64) *big.Int { return big.NewInt(v) }

func (BigIntRing) Quot(x, y *big.Int) *big.Int { return new(big.Int).Quo(x, y) }

func (BigIntRing) Mod(x, y *big.Int) *big.Int { return new(big.Int).Rem(x, y) }

// QuotMod computes both values in a single division.
func (BigIntRing) QuotMod(x, y *big.Int) (*big.Int, *big.Int) {
	return new(big.Int).QuoRem(x, y, new(big.Int))
}

// Gcd delegates to the exact built-in gcd on absolute values.
func (BigIntRing) Gcd(x, y *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, new(big.Int).Abs(x), new(big.Int).Abs(y))
}

func (r BigIntRing) Lcm(x, y *big.Int) *big.Int { return EuclideanLcm[*big.Int](r, x, y) }

func init() {
	Register[*big.Int](BigIntRing{})
}
