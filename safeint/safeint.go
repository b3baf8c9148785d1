// Package safeint provides SafeInt, an immutable integer that is backed by a
// machine int64 while the value fits and transparently promotes to an
// arbitrary-precision integer when an operation would under- or overflow.
// Results that shrink back below the word size demote to the machine
// representation again.
package safeint

import (
	"math"
	"math/big"
)

// SafeInt is an arbitrary-precision integer optimized for word-sized values.
// The zero value is 0. Values are immutable; operations never mutate their
// operands.
type SafeInt struct {
	small int64
	big   *big.Int // nil while the value fits in an int64
}

// New returns the SafeInt representing v.
func New(v int64) SafeInt {
	return SafeInt{small: v}
}

// FromBigInt returns the SafeInt representing v. The argument is copied and
// may be reused by the caller.
func FromBigInt(v *big.Int) SafeInt {
	if v.IsInt64() {
		return SafeInt{small: v.Int64()}
	}

	return SafeInt{big: new(big.Int).Set(v)}
}

// fromOwnedBig normalizes an internally allocated big.Int that no one else
// references.
func fromOwnedBig(v *big.Int) SafeInt {
	if v.IsInt64() {
		return SafeInt{small: v.Int64()}
	}

	return SafeInt{big: v}
}

// bigValue returns the value as a big.Int operand. The result must not be
// mutated.
func (a SafeInt) bigValue() *big.Int {
	if a.big != nil {
		return a.big
	}

	return big.NewInt(a.small)
}

// IsInt64 reports whether the value currently fits in an int64.
func (a SafeInt) IsInt64() bool { return a.big == nil }

// Int64 returns the value as an int64, and whether it fits.
func (a SafeInt) Int64() (int64, bool) {
	if a.big != nil {
		return 0, false
	}

	return a.small, true
}

// BigInt returns the value as a freshly allocated big.Int.
func (a SafeInt) BigInt() *big.Int {
	return new(big.Int).Set(a.bigValue())
}

// Float64 returns the nearest float64 to the value.
func (a SafeInt) Float64() float64 {
	if a.big == nil {
		return float64(a.small)
	}
	f, _ := new(big.Float).SetInt(a.big).Float64()

	return f
}

// Add returns a + b, promoting on overflow.
func (a SafeInt) Add(b SafeInt) SafeInt {
	if a.big == nil && b.big == nil {
		result := a.small + b.small
		if b.small > 0 {
			if result >= a.small {
				return SafeInt{small: result}
			}
		} else if result <= a.small {
			return SafeInt{small: result}
		}
	}

	return fromOwnedBig(new(big.Int).Add(a.bigValue(), b.bigValue()))
}

// Sub returns a - b, promoting on overflow.
func (a SafeInt) Sub(b SafeInt) SafeInt {
	if a.big == nil && b.big == nil {
		result := a.small - b.small
		if b.small > 0 {
			if result <= a.small {
				return SafeInt{small: result}
			}
		} else if result >= a.small {
			return SafeInt{small: result}
		}
	}

	return fromOwnedBig(new(big.Int).Sub(a.bigValue(), b.bigValue()))
}

// Neg returns -a.
func (a SafeInt) Neg() SafeInt {
	if a.big == nil && a.small != math.MinInt64 {
		return SafeInt{small: -a.small}
	}

	return fromOwnedBig(new(big.Int).Neg(a.bigValue()))
}

// Abs returns the absolute value of a.
func (a SafeInt) Abs() SafeInt {
	if a.Sign() < 0 {
		return a.Neg()
	}

	return a
}

// Mul returns a * b, promoting on overflow.
func (a SafeInt) Mul(b SafeInt) SafeInt {
	// a == -1 slips through the division check below when b is the most
	// negative value, so it is excluded upfront.
	if a.big == nil && b.big == nil && !(a.small == -1 && b.small == math.MinInt64) {
		result := a.small * b.small
		if a.small == 0 || result/a.small == b.small {
			return SafeInt{small: result}
		}
	}

	return fromOwnedBig(new(big.Int).Mul(a.bigValue(), b.bigValue()))
}

// Quot returns the truncating quotient a / b. Division by zero panics with
// the native semantics of the underlying representation.
func (a SafeInt) Quot(b SafeInt) SafeInt {
	if a.big == nil && b.big == nil && !(a.small == math.MinInt64 && b.small == -1) {
		return SafeInt{small: a.small / b.small}
	}

	return fromOwnedBig(new(big.Int).Quo(a.bigValue(), b.bigValue()))
}

// Mod returns the remainder of a / b, with the sign of a.
func (a SafeInt) Mod(b SafeInt) SafeInt {
	if a.big == nil && b.big == nil {
		return SafeInt{small: a.small % b.small}
	}

	return fromOwnedBig(new(big.Int).Rem(a.bigValue(), b.bigValue()))
}

// QuotMod returns both the truncating quotient and the remainder of a / b.
func (a SafeInt) QuotMod(b SafeInt) (SafeInt, SafeInt) {
	if a.big == nil && b.big == nil && !(a.small == math.MinInt64 && b.small == -1) {
		return SafeInt{small: a.small / b.small}, SafeInt{small: a.small % b.small}
	}
	q, m := new(big.Int).QuoRem(a.bigValue(), b.bigValue(), new(big.Int))

	return fromOwnedBig(q), fromOwnedBig(m)
}

// Gcd returns the greatest common divisor of a and b. Both operands are
// widened to arbitrary precision and the exact built-in gcd is used; the
// result is never larger than the operands, so it usually demotes back to
// the machine representation.
func (a SafeInt) Gcd(b SafeInt) SafeInt {
	x := new(big.Int).Abs(a.bigValue())
	y := new(big.Int).Abs(b.bigValue())

	return fromOwnedBig(x.GCD(nil, nil, x, y))
}

// Cmp compares a and b and returns -1, 0 or +1.
func (a SafeInt) Cmp(b SafeInt) int {
	if a.big == nil && b.big == nil {
		switch {
		case a.small < b.small:
			return -1
		case a.small > b.small:
			return 1
		default:
			return 0
		}
	}

	return a.bigValue().Cmp(b.bigValue())
}

// Sign returns -1, 0 or +1 depending on the sign of a.
func (a SafeInt) Sign() int {
	if a.big != nil {
		return a.big.Sign()
	}
	switch {
	case a.small < 0:
		return -1
	case a.small > 0:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether a is 0.
func (a SafeInt) IsZero() bool { return a.big == nil && a.small == 0 }

// Eq reports whether a and b represent the same integer.
func (a SafeInt) Eq(b SafeInt) bool { return a.Cmp(b) == 0 }

func (a SafeInt) String() string {
	if a.big != nil {
		return a.big.String()
	}

	return big.NewInt(a.small).String()
}
