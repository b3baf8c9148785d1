package ring

import (
	"github.com/shopspring/decimal"
)

// DecimalRing is the euclidean ring over arbitrary-precision decimals.
//
// Like the float ring, Gcd has no exact meaning on a fixed-point kind; the
// loop floors at exactly the ring's one: operands whose absolute value drops
// below one are treated as co-prime.
type DecimalRing struct{}

func (DecimalRing) Zero() decimal.Decimal { return decimal.Zero }

func (DecimalRing) One() decimal.Decimal { return decimal.New(1, 0) }

func (DecimalRing) Add(x, y decimal.Decimal) decimal.Decimal { return x.Add(y) }

func (DecimalRing) Mul(x, y decimal.Decimal) decimal.Decimal { return x.Mul(y) }

func (DecimalRing) Eq(x, y decimal.Decimal) bool { return x.Equal(y) }

func (DecimalRing) FromInt64(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func (DecimalRing) FromFloat64(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func (DecimalRing) Quot(x, y decimal.Decimal) decimal.Decimal {
	q, _ := x.QuoRem(y, 0)

	return q
}

func (DecimalRing) Mod(x, y decimal.Decimal) decimal.Decimal {
	_, m := x.QuoRem(y, 0)

	return m
}

// QuotMod computes both values in a single division.
func (DecimalRing) QuotMod(x, y decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	return x.QuoRem(y, 0)
}

func (r DecimalRing) Gcd(x, y decimal.Decimal) decimal.Decimal {
	one := r.One()
	x, y = x.Abs(), y.Abs()
	for {
		if x.LessThan(one) {
			return one
		}
		if y.IsZero() {
			return x
		}
		if y.LessThan(one) {
			return one
		}
		x, y = y, r.Mod(x, y)
	}
}

func (r DecimalRing) Lcm(x, y decimal.Decimal) decimal.Decimal {
	return EuclideanLcm[decimal.Decimal](r, x, y)
}

func init() {
	Register[decimal.Decimal](DecimalRing{})
}
