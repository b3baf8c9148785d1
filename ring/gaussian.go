package ring

import (
	"github.com/iotaledger/hive.go/constraints"

	"github.com/iotaledger/ring.go/gaussian"
)

// GaussianRing is the euclidean ring over Gaussian integers. No faster gcd
// special case is known, so Gcd falls back to the generic Euclidean
// algorithm; rounded division keeps the remainder's norm shrinking, so the
// loop terminates.
type GaussianRing[T constraints.Signed] struct{}

func (GaussianRing[T]) Zero() gaussian.Int[T] { return gaussian.Int[T]{} }

func (GaussianRing[T]) One() gaussian.Int[T] { return gaussian.New[T](1, 0) }

func (GaussianRing[T]) Add(x, y gaussian.Int[T]) gaussian.Int[T] { return x.Add(y) }

func (GaussianRing[T]) Mul(x, y gaussian.Int[T]) gaussian.Int[T] { return x.Mul(y) }

func (GaussianRing[T]) Eq(x, y gaussian.Int[T]) bool { return x.Eq(y) }

func (GaussianRing[T]) FromInt64(v int64) gaussian.Int[T] { return gaussian.New(T(v), 0) }

func (GaussianRing[T]) Quot(x, y gaussian.Int[T]) gaussian.Int[T] { return x.Quot(y) }

func (GaussianRing[T]) Mod(x, y gaussian.Int[T]) gaussian.Int[T] { return x.Mod(y) }

func (GaussianRing[T]) QuotMod(x, y gaussian.Int[T]) (gaussian.Int[T], gaussian.Int[T]) {
	return x.QuotMod(y)
}

func (r GaussianRing[T]) Gcd(x, y gaussian.Int[T]) gaussian.Int[T] {
	return EuclideanGcd[gaussian.Int[T]](r, x, y)
}

func (r GaussianRing[T]) Lcm(x, y gaussian.Int[T]) gaussian.Int[T] {
	return EuclideanLcm[gaussian.Int[T]](r, x, y)
}

func init() {
	Register[gaussian.Int[int]](GaussianRing[int]{})
	Register[gaussian.Int[int32]](GaussianRing[int32]{})
	Register[gaussian.Int[int64]](GaussianRing[int64]{})
}
