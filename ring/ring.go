// Package ring implements an algebraic typeclass hierarchy for euclidean rings:
// number-like types supporting truncating division, remainder and gcd/lcm.
//
// Every supported numeric kind (machine integers, floats, big integers, big
// decimals, rationals, complex numbers, Gaussian integers and the tagged
// Number union) is represented by a stateless singleton implementing
// EuclideanRing. Instances are registered at init time and can be resolved
// generically via For or MustFor.
package ring

// Ring associates a numeric kind with its additive and multiplicative
// structure. Implementations are stateless and safe for unrestricted
// concurrent use.
type Ring[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	// Add returns x + y.
	Add(x, y T) T
	// Mul returns x * y.
	Mul(x, y T) T
	// Eq reports whether x and y represent the same ring element.
	Eq(x, y T) bool
	// FromInt64 embeds a machine integer into the ring.
	FromInt64(v int64) T
}

// EuclideanRing extends Ring with truncating division and remainder, which
// together enable the Euclidean gcd algorithm.
//
// Mod satisfies x == Add(Mul(Quot(x, y), y), Mod(x, y)) for all y != Zero
// within representable range. Division by zero follows the numeric kind's
// native semantics and is not redefined here.
type EuclideanRing[T any] interface {
	Ring[T]

	// Quot returns the truncating quotient of x and y.
	Quot(x, y T) T
	// Mod returns the remainder of x and y.
	Mod(x, y T) T
	// QuotMod returns both the truncating quotient and the remainder.
	QuotMod(x, y T) (T, T)
	// Gcd returns the greatest common divisor of x and y.
	Gcd(x, y T) T
	// Lcm returns the least common multiple of x and y.
	Lcm(x, y T) T
}

// EuclideanGcd is the generic Euclidean algorithm: it repeatedly replaces
// (x, y) with (y, mod(x, y)) until y == zero and returns the last nonzero x.
// Kinds with a faster or better-behaved gcd override it on their instance.
func EuclideanGcd[T any](r EuclideanRing[T], x, y T) T {
	zero := r.Zero()
	for !r.Eq(y, zero) {
		x, y = y, r.Mod(x, y)
	}

	return x
}

// EuclideanLcm derives the least common multiple as quot(x, gcd(x, y)) * y.
func EuclideanLcm[T any](r EuclideanRing[T], x, y T) T {
	return r.Mul(r.Quot(x, r.Gcd(x, y)), y)
}

// EuclideanQuotMod is the default pairing of Quot and Mod. Kinds where
// computing both at once is cheaper than two separate calls override it.
func EuclideanQuotMod[T any](r EuclideanRing[T], x, y T) (T, T) {
	return r.Quot(x, y), r.Mod(x, y)
}
