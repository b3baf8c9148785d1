package ring

import (
	"math"
	"math/cmplx"

	"github.com/iotaledger/hive.go/constraints"
)

// ComplexRing is the euclidean ring over machine complex numbers. It extends
// the float convention into the complex plane: the gcd loop terminates with
// One once either operand's magnitude drops below 1.
type ComplexRing[T constraints.Complex] struct{}

func (ComplexRing[T]) Zero() T { return 0 }

func (ComplexRing[T]) One() T { return 1 }

func (ComplexRing[T]) Add(x, y T) T { return x + y }

func (ComplexRing[T]) Mul(x, y T) T { return x * y }

func (ComplexRing[T]) Eq(x, y T) bool { return x == y }

func (ComplexRing[T]) FromInt64(v int64) T { return T(complex(float64(v), 0)) }

func (ComplexRing[T]) FromFloat64(v float64) T { return T(complex(v, 0)) }

// Quot divides and truncates both components toward zero.
func (ComplexRing[T]) Quot(x, y T) T {
	q := complex128(x) / complex128(y)

	return T(complex(math.Trunc(real(q)), math.Trunc(imag(q))))
}

func (r ComplexRing[T]) Mod(x, y T) T { return x - r.Quot(x, y)*y }

func (r ComplexRing[T]) QuotMod(x, y T) (T, T) {
	q := r.Quot(x, y)

	return q, x - q*y
}

func (r ComplexRing[T]) Gcd(x, y T) T {
	for {
		if cmplx.Abs(complex128(x)) < 1 {
			return 1
		}
		if y == 0 {
			return x
		}
		if cmplx.Abs(complex128(y)) < 1 {
			return 1
		}
		x, y = y, r.Mod(x, y)
	}
}

func (r ComplexRing[T]) Lcm(x, y T) T { return EuclideanLcm[T](r, x, y) }

func init() {
	Register[complex64](ComplexRing[complex64]{})
	Register[complex128](ComplexRing[complex128]{})
}
