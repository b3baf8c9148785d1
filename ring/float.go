package ring

import (
	"math"

	"github.com/iotaledger/hive.go/constraints"
)

// FloatRing is the euclidean ring over machine floats. Division by zero
// follows IEEE semantics.
//
// Floats lack an exact gcd, so Gcd follows the convention that magnitudes
// below 1.0 carry no common factor: once either operand's absolute value
// drops below 1.0 the loop terminates with exactly 1.0.
type FloatRing[T constraints.Float] struct{}

func (FloatRing[T]) Zero() T { return 0 }

func (FloatRing[T]) One() T { return 1 }

func (FloatRing[T]) Add(x, y T) T { return x + y }

func (FloatRing[T]) Mul(x, y T) T { return x * y }

func (FloatRing[T]) Eq(x, y T) bool { return x == y }

func (FloatRing[T]) FromInt64(v int64) T { return T(v) }

func (FloatRing[T]) FromFloat64(v float64) T { return T(v) }

// Quot returns the integral quotient (x - mod(x, y)) / y, which is exact
// because x - mod(x, y) is an exact multiple of y.
func (r FloatRing[T]) Quot(x, y T) T { return (x - r.Mod(x, y)) / y }

func (FloatRing[T]) Mod(x, y T) T {
	return T(math.Mod(float64(x), float64(y)))
}

func (r FloatRing[T]) QuotMod(x, y T) (T, T) { return EuclideanQuotMod[T](r, x, y) }

func (r FloatRing[T]) Gcd(x, y T) T {
	x, y = floatAbs(x), floatAbs(y)
	for {
		if x < 1 {
			return 1
		}
		if y == 0 {
			return x
		}
		if y < 1 {
			return 1
		}
		x, y = y, r.Mod(x, y)
	}
}

func (r FloatRing[T]) Lcm(x, y T) T { return EuclideanLcm[T](r, x, y) }

func floatAbs[T constraints.Float](v T) T {
	return T(math.Abs(float64(v)))
}

func init() {
	Register[float32](FloatRing[float32]{})
	Register[float64](FloatRing[float64]{})
}
