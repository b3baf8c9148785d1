package ring

import (
	"github.com/iotaledger/hive.go/constraints"
)

// IntRing is the euclidean ring over machine signed integers. Quot and Mod
// are the native truncating division and remainder; division by zero panics
// natively and overflow wraps, both per the machine semantics.
type IntRing[T constraints.Signed] struct{}

func (IntRing[T]) Zero() T { return 0 }

func (IntRing[T]) One() T { return 1 }

func (IntRing[T]) Add(x, y T) T { return x + y }

func (IntRing[T]) Mul(x, y T) T { return x * y }

func (IntRing[T]) Eq(x, y T) bool { return x == y }

func (IntRing[T]) FromInt64(v int64) T { return T(v) }

func (IntRing[T]) Quot(x, y T) T { return x / y }

func (IntRing[T]) Mod(x, y T) T { return x % y }

func (IntRing[T]) QuotMod(x, y T) (T, T) { return x / y, x % y }

// Gcd overrides the generic algorithm with a remainder loop on absolute
// values, so the result is non-negative. Gcd(0, 0) == 0.
func (IntRing[T]) Gcd(x, y T) T {
	x, y = intAbs(x), intAbs(y)
	for y != 0 {
		x, y = y, x%y
	}

	return x
}

func (r IntRing[T]) Lcm(x, y T) T { return EuclideanLcm[T](r, x, y) }

func intAbs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

func init() {
	Register[int](IntRing[int]{})
	Register[int32](IntRing[int32]{})
	Register[int64](IntRing[int64]{})
}
