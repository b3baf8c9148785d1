package ring

import (
	"github.com/iotaledger/ring.go/number"
)

// NumberRing is the euclidean ring over the tagged numeric union. Quot and
// Mod delegate to whichever internal representation the operands promote to;
// Gcd inherits the generic Euclidean algorithm, which dispatches across
// mixed representations step by step.
type NumberRing struct{}

func (NumberRing) Zero() number.Number { return number.FromInt64(0) }

func (NumberRing) One() number.Number { return number.FromInt64(1) }

func (NumberRing) Add(x, y number.Number) number.Number { return x.Add(y) }

func (NumberRing) Mul(x, y number.Number) number.Number { return x.Mul(y) }

func (NumberRing) Eq(x, y number.Number) bool { return x.Eq(y) }

func (NumberRing) FromInt64(v int64) number.Number { return number.FromInt64(v) }

func (NumberRing) FromFloat64(v float64) number.Number { return number.FromFloat64(v) }

func (NumberRing) Quot(x, y number.Number) number.Number { return x.Quot(y) }

func (NumberRing) Mod(x, y number.Number) number.Number { return x.Mod(y) }

func (NumberRing) QuotMod(x, y number.Number) (number.Number, number.Number) {
	return x.QuotMod(y)
}

func (r NumberRing) Gcd(x, y number.Number) number.Number {
	return EuclideanGcd[number.Number](r, x, y)
}

func (r NumberRing) Lcm(x, y number.Number) number.Number {
	return EuclideanLcm[number.Number](r, x, y)
}

func init() {
	Register[number.Number](NumberRing{})
}
