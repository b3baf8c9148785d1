// Package gaussian provides Gaussian integers, complex numbers whose real
// and imaginary parts are machine integers.
package gaussian

import (
	"fmt"

	"github.com/iotaledger/hive.go/constraints"
)

// Int is a Gaussian integer over the signed machine base T. Values are
// immutable; operations never mutate their operands. Component arithmetic
// follows native machine semantics, including wrap-around on overflow.
type Int[T constraints.Signed] struct {
	Re T
	Im T
}

// New returns the Gaussian integer re + im*i.
func New[T constraints.Signed](re, im T) Int[T] {
	return Int[T]{Re: re, Im: im}
}

// Add returns a + b.
func (a Int[T]) Add(b Int[T]) Int[T] {
	return Int[T]{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

// Sub returns a - b.
func (a Int[T]) Sub(b Int[T]) Int[T] {
	return Int[T]{Re: a.Re - b.Re, Im: a.Im - b.Im}
}

// Neg returns -a.
func (a Int[T]) Neg() Int[T] {
	return Int[T]{Re: -a.Re, Im: -a.Im}
}

// Mul returns a * b.
func (a Int[T]) Mul(b Int[T]) Int[T] {
	return Int[T]{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// Conj returns the complex conjugate of a.
func (a Int[T]) Conj() Int[T] {
	return Int[T]{Re: a.Re, Im: -a.Im}
}

// Norm returns the field norm re² + im², the squared magnitude of a.
func (a Int[T]) Norm() T {
	return a.Re*a.Re + a.Im*a.Im
}

// Quot returns the Gaussian quotient of a and b: a * conj(b) / norm(b) with
// both components rounded to the nearest integer. Rounding to nearest keeps
// the remainder's norm strictly smaller than the divisor's, which makes the
// Euclidean gcd loop terminate. Division by zero panics natively.
func (a Int[T]) Quot(b Int[T]) Int[T] {
	n := b.Norm()
	p := a.Mul(b.Conj())

	return Int[T]{Re: roundDiv(p.Re, n), Im: roundDiv(p.Im, n)}
}

// Mod returns the Gaussian remainder a - quot(a, b) * b.
func (a Int[T]) Mod(b Int[T]) Int[T] {
	return a.Sub(a.Quot(b).Mul(b))
}

// QuotMod returns both the Gaussian quotient and the remainder.
func (a Int[T]) QuotMod(b Int[T]) (Int[T], Int[T]) {
	q := a.Quot(b)

	return q, a.Sub(q.Mul(b))
}

// IsZero reports whether a is 0.
func (a Int[T]) IsZero() bool {
	return a.Re == 0 && a.Im == 0
}

// Eq reports whether a and b are the same Gaussian integer.
func (a Int[T]) Eq(b Int[T]) bool {
	return a == b
}

func (a Int[T]) String() string {
	if a.Im < 0 {
		return fmt.Sprintf("%d%di", a.Re, a.Im)
	}

	return fmt.Sprintf("%d+%di", a.Re, a.Im)
}

// roundDiv divides p by q rounding to the nearest integer, ties away from
// zero.
func roundDiv[T constraints.Signed](p, q T) T {
	quot := p / q
	rem := p % q
	if rem == 0 {
		return quot
	}

	rem2 := rem + rem
	if rem2 < 0 {
		rem2 = -rem2
	}
	qAbs := q
	if qAbs < 0 {
		qAbs = -qAbs
	}
	if rem2 >= qAbs {
		if (p < 0) == (q < 0) {
			return quot + 1
		}

		return quot - 1
	}

	return quot
}
