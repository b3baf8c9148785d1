// Package number provides Number, a tagged union over the exact integer,
// exact rational, arbitrary-precision decimal and machine float kinds.
// Operations on operands of different kinds promote the lower-ranked operand
// before delegating to that kind's arithmetic.
package number

import (
	"math"
	"math/big"
	"strconv"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/iotaledger/ring.go/safeint"
)

// ErrUnsupportedKind gets returned when a dynamic value cannot be converted
// into any of the supported numeric kinds.
var ErrUnsupportedKind = ierrors.New("unsupported numeric kind")

// Kind identifies the internal representation of a Number. Kinds form a
// promotion lattice: mixed-kind operands are widened to the higher kind.
type Kind uint8

const (
	// KindInt is an exact integer backed by safeint.SafeInt.
	KindInt Kind = iota
	// KindRational is an exact rational backed by big.Rat.
	KindRational
	// KindDecimal is an arbitrary-precision decimal.
	KindDecimal
	// KindFloat is a 64-bit machine float.
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindRational:
		return "Rational"
	case KindDecimal:
		return "Decimal"
	case KindFloat:
		return "Float"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Number is an immutable tagged numeric value. The zero value is the
// integer 0.
type Number struct {
	kind Kind
	i    safeint.SafeInt
	r    *big.Rat
	d    decimal.Decimal
	f    float64
}

// FromInt64 returns the Number representing the integer v.
func FromInt64(v int64) Number {
	return Number{kind: KindInt, i: safeint.New(v)}
}

// FromSafeInt returns the Number representing the integer v.
func FromSafeInt(v safeint.SafeInt) Number {
	return Number{kind: KindInt, i: v}
}

// FromBigInt returns the Number representing the integer v. The argument is
// copied and may be reused by the caller.
func FromBigInt(v *big.Int) Number {
	return Number{kind: KindInt, i: safeint.FromBigInt(v)}
}

// FromRat returns the Number representing the rational v. The argument is
// copied and may be reused by the caller.
func FromRat(v *big.Rat) Number {
	return Number{kind: KindRational, r: new(big.Rat).Set(v)}
}

// FromDecimal returns the Number representing the decimal v.
func FromDecimal(v decimal.Decimal) Number {
	return Number{kind: KindDecimal, d: v}
}

// FromFloat64 returns the Number representing the float v.
func FromFloat64(v float64) Number {
	return Number{kind: KindFloat, f: v}
}

// FromAny converts an arbitrary Go value into a Number. Strings are parsed
// as decimals, machine integers map to the Int kind and machine floats to
// the Float kind.
func FromAny(value any) (Number, error) {
	switch v := value.(type) {
	case Number:
		return v, nil
	case safeint.SafeInt:
		return FromSafeInt(v), nil
	case *big.Int:
		return FromBigInt(v), nil
	case *big.Rat:
		return FromRat(v), nil
	case decimal.Decimal:
		return FromDecimal(v), nil
	case float32:
		return FromFloat64(float64(v)), nil
	case float64:
		return FromFloat64(v), nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return Number{}, ierrors.Wrapf(ErrUnsupportedKind, "cannot parse %q", v)
		}

		return FromDecimal(d), nil
	case bool:
		return Number{}, ierrors.Wrapf(ErrUnsupportedKind, "%T", value)
	default:
		if i, err := cast.ToInt64E(value); err == nil {
			return FromInt64(i), nil
		}
		if f, err := cast.ToFloat64E(value); err == nil {
			return FromFloat64(f), nil
		}

		return Number{}, ierrors.Wrapf(ErrUnsupportedKind, "%T", value)
	}
}

// Kind returns the internal representation of n.
func (n Number) Kind() Kind { return n.kind }

// to widens n to the given kind. Widening to Rational is exact; widening to
// Decimal or Float may round.
func (n Number) to(kind Kind) Number {
	if n.kind == kind {
		return n
	}
	switch kind {
	case KindRational:
		return Number{kind: KindRational, r: n.Rat()}
	case KindDecimal:
		return Number{kind: KindDecimal, d: n.Decimal()}
	case KindFloat:
		return Number{kind: KindFloat, f: n.Float64()}
	default:
		return n
	}
}

// align widens the lower-ranked operand so both share a kind.
func align(a, b Number) (Number, Number, Kind) {
	kind := a.kind
	if b.kind > kind {
		kind = b.kind
	}

	return a.to(kind), b.to(kind), kind
}

// Add returns a + b.
func (n Number) Add(other Number) Number {
	a, b, kind := align(n, other)
	switch kind {
	case KindInt:
		return Number{kind: KindInt, i: a.i.Add(b.i)}
	case KindRational:
		return Number{kind: KindRational, r: new(big.Rat).Add(a.r, b.r)}
	case KindDecimal:
		return Number{kind: KindDecimal, d: a.d.Add(b.d)}
	default:
		return Number{kind: KindFloat, f: a.f + b.f}
	}
}

// Sub returns a - b.
func (n Number) Sub(other Number) Number {
	a, b, kind := align(n, other)
	switch kind {
	case KindInt:
		return Number{kind: KindInt, i: a.i.Sub(b.i)}
	case KindRational:
		return Number{kind: KindRational, r: new(big.Rat).Sub(a.r, b.r)}
	case KindDecimal:
		return Number{kind: KindDecimal, d: a.d.Sub(b.d)}
	default:
		return Number{kind: KindFloat, f: a.f - b.f}
	}
}

// Mul returns a * b.
func (n Number) Mul(other Number) Number {
	a, b, kind := align(n, other)
	switch kind {
	case KindInt:
		return Number{kind: KindInt, i: a.i.Mul(b.i)}
	case KindRational:
		return Number{kind: KindRational, r: new(big.Rat).Mul(a.r, b.r)}
	case KindDecimal:
		return Number{kind: KindDecimal, d: a.d.Mul(b.d)}
	default:
		return Number{kind: KindFloat, f: a.f * b.f}
	}
}

// Quot returns the truncating quotient of a and b. Division by zero follows
// the aligned kind's native semantics.
func (n Number) Quot(other Number) Number {
	a, b, kind := align(n, other)
	switch kind {
	case KindInt:
		return Number{kind: KindInt, i: a.i.Quot(b.i)}
	case KindRational:
		return Number{kind: KindRational, r: ratQuot(a.r, b.r)}
	case KindDecimal:
		q, _ := a.d.QuoRem(b.d, 0)

		return Number{kind: KindDecimal, d: q}
	default:
		m := math.Mod(a.f, b.f)

		return Number{kind: KindFloat, f: (a.f - m) / b.f}
	}
}

// Mod returns the remainder of a and b.
func (n Number) Mod(other Number) Number {
	a, b, kind := align(n, other)
	switch kind {
	case KindInt:
		return Number{kind: KindInt, i: a.i.Mod(b.i)}
	case KindRational:
		return Number{kind: KindRational, r: ratMod(a.r, b.r)}
	case KindDecimal:
		_, m := a.d.QuoRem(b.d, 0)

		return Number{kind: KindDecimal, d: m}
	default:
		return Number{kind: KindFloat, f: math.Mod(a.f, b.f)}
	}
}

// QuotMod returns both the truncating quotient and the remainder.
func (n Number) QuotMod(other Number) (Number, Number) {
	a, b, kind := align(n, other)
	switch kind {
	case KindInt:
		q, m := a.i.QuotMod(b.i)

		return Number{kind: KindInt, i: q}, Number{kind: KindInt, i: m}
	case KindDecimal:
		q, m := a.d.QuoRem(b.d, 0)

		return Number{kind: KindDecimal, d: q}, Number{kind: KindDecimal, d: m}
	default:
		return a.Quot(b), a.Mod(b)
	}
}

// Cmp compares a and b after alignment and returns -1, 0 or +1.
func (n Number) Cmp(other Number) int {
	a, b, kind := align(n, other)
	switch kind {
	case KindInt:
		return a.i.Cmp(b.i)
	case KindRational:
		return a.r.Cmp(b.r)
	case KindDecimal:
		return a.d.Cmp(b.d)
	default:
		switch {
		case a.f < b.f:
			return -1
		case a.f > b.f:
			return 1
		default:
			return 0
		}
	}
}

// Sign returns -1, 0 or +1 depending on the sign of n.
func (n Number) Sign() int {
	switch n.kind {
	case KindInt:
		return n.i.Sign()
	case KindRational:
		return n.r.Sign()
	case KindDecimal:
		return n.d.Sign()
	default:
		switch {
		case n.f < 0:
			return -1
		case n.f > 0:
			return 1
		default:
			return 0
		}
	}
}

// IsZero reports whether n is 0.
func (n Number) IsZero() bool { return n.Sign() == 0 }

// Eq reports whether a and b represent the same value after alignment.
func (n Number) Eq(other Number) bool { return n.Cmp(other) == 0 }

// Int64 returns the value as an int64 and whether the value is an integer
// that fits.
func (n Number) Int64() (int64, bool) {
	if n.kind != KindInt {
		return 0, false
	}

	return n.i.Int64()
}

// Float64 returns the nearest float64 to the value.
func (n Number) Float64() float64 {
	switch n.kind {
	case KindInt:
		return n.i.Float64()
	case KindRational:
		f, _ := n.r.Float64()

		return f
	case KindDecimal:
		f, _ := n.d.Float64()

		return f
	default:
		return n.f
	}
}

// Rat returns the value as a freshly allocated big.Rat. The conversion is
// exact for every kind except Float, which uses the float's exact binary
// expansion.
func (n Number) Rat() *big.Rat {
	switch n.kind {
	case KindInt:
		return new(big.Rat).SetInt(n.i.BigInt())
	case KindRational:
		return new(big.Rat).Set(n.r)
	case KindDecimal:
		return n.d.Rat()
	default:
		return new(big.Rat).SetFloat64(n.f)
	}
}

// Decimal returns the value as a decimal. Rational values that have no
// finite decimal expansion are rounded to the package's division precision.
func (n Number) Decimal() decimal.Decimal {
	switch n.kind {
	case KindInt:
		return decimal.NewFromBigInt(n.i.BigInt(), 0)
	case KindRational:
		return decimal.NewFromBigInt(n.r.Num(), 0).Div(decimal.NewFromBigInt(n.r.Denom(), 0))
	case KindDecimal:
		return n.d
	default:
		return decimal.NewFromFloat(n.f)
	}
}

func (n Number) String() string {
	switch n.kind {
	case KindInt:
		return n.i.String()
	case KindRational:
		return n.r.RatString()
	case KindDecimal:
		return n.d.String()
	default:
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
}

func ratQuot(x, y *big.Rat) *big.Rat {
	q := new(big.Rat).Quo(x, y)

	return new(big.Rat).SetInt(new(big.Int).Quo(q.Num(), q.Denom()))
}

func ratMod(x, y *big.Rat) *big.Rat {
	return new(big.Rat).Sub(x, new(big.Rat).Mul(ratQuot(x, y), y))
}
