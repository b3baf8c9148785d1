package ring

import (
	"github.com/iotaledger/ring.go/safeint"
)

// SafeIntRing is the euclidean ring over overflow-safe integers. Gcd widens
// both operands to arbitrary precision and reuses the exact integer gcd,
// since operands only rarely exceed the machine word size.
type SafeIntRing struct{}

func (SafeIntRing) Zero() safeint.SafeInt { return safeint.New(0) }

func (SafeIntRing) One() safeint.SafeInt { return safeint.New(1) }

func (SafeIntRing) Add(x, y safeint.SafeInt) safeint.SafeInt { return x.Add(y) }

func (SafeIntRing) Mul(x, y safeint.SafeInt) safeint.SafeInt { return x.Mul(y) }

func (SafeIntRing) Eq(x, y safeint.SafeInt) bool { return x.Eq(y) }

func (SafeIntRing) FromInt64(v int64) safeint.SafeInt { return safeint.New(v) }

func (SafeIntRing) Quot(x, y safeint.SafeInt) safeint.SafeInt { return x.Quot(y) }

func (SafeIntRing) Mod(x, y safeint.SafeInt) safeint.SafeInt { return x.Mod(y) }

func (SafeIntRing) QuotMod(x, y safeint.SafeInt) (safeint.SafeInt, safeint.SafeInt) {
	return x.QuotMod(y)
}

func (SafeIntRing) Gcd(x, y safeint.SafeInt) safeint.SafeInt { return x.Gcd(y) }

func (r SafeIntRing) Lcm(x, y safeint.SafeInt) safeint.SafeInt {
	return EuclideanLcm[safeint.SafeInt](r, x, y)
}

func init() {
	Register[safeint.SafeInt](SafeIntRing{})
}
