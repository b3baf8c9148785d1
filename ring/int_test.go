package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntRingGcdLcm(t *testing.T) {
	r := IntRing[int64]{}

	require.EqualValues(t, 6, r.Gcd(48, 18))
	require.EqualValues(t, 6, r.Gcd(18, 48))
	require.EqualValues(t, 144, r.Lcm(48, 18))

	// negative operands normalize to a non-negative gcd
	require.EqualValues(t, 6, r.Gcd(-48, 18))
	require.EqualValues(t, 6, r.Gcd(48, -18))
	require.EqualValues(t, 6, r.Gcd(-48, -18))

	require.EqualValues(t, 7, r.Gcd(7, 0))
	require.EqualValues(t, 7, r.Gcd(0, 7))
	require.EqualValues(t, 0, r.Gcd(0, 0))
}

func TestIntRingDivisionIdentity(t *testing.T) {
	r := IntRing[int]{}

	for a := -20; a <= 20; a++ {
		for b := -20; b <= 20; b++ {
			if b == 0 {
				continue
			}

			q, m := r.QuotMod(a, b)
			require.Equal(t, r.Quot(a, b), q)
			require.Equal(t, r.Mod(a, b), m)
			require.Equal(t, a, q*b+m)

			g := r.Gcd(a, b)
			require.Equal(t, g, r.Gcd(b, a))
			if g != 0 {
				require.Zero(t, a%g)
				require.Zero(t, b%g)
			}
		}
	}
}

func TestIntRingLcmGcdProduct(t *testing.T) {
	r := IntRing[int64]{}

	for a := int64(1); a <= 24; a++ {
		for b := int64(1); b <= 24; b++ {
			require.Equal(t, a*b, r.Gcd(a, b)*r.Lcm(a, b))
		}
	}
}

func TestIntRingStructure(t *testing.T) {
	r := IntRing[int32]{}

	require.EqualValues(t, 0, r.Zero())
	require.EqualValues(t, 1, r.One())
	require.EqualValues(t, 5, r.Add(2, 3))
	require.EqualValues(t, 6, r.Mul(2, 3))
	require.EqualValues(t, -9, r.FromInt64(-9))
	require.True(t, r.Eq(4, 4))
	require.False(t, r.Eq(4, 5))
}

func TestIntRegistrySugar(t *testing.T) {
	require.Equal(t, int64(6), Gcd(int64(48), int64(18)))
	require.Equal(t, int64(144), Lcm(int64(48), int64(18)))
	require.Equal(t, 3, Quot(17, 5))
	require.Equal(t, 2, Mod(17, 5))

	q, m := QuotMod(int32(17), int32(5))
	require.EqualValues(t, 3, q)
	require.EqualValues(t, 2, m)
}
