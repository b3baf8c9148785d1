package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComplexRingQuotMod(t *testing.T) {
	r := ComplexRing[complex128]{}

	// (7+3i) / 2 = 3.5+1.5i, truncated component-wise
	require.Equal(t, complex(3, 1), r.Quot(7+3i, 2))
	require.Equal(t, complex(1, 1), r.Mod(7+3i, 2))

	q, m := r.QuotMod(7+3i, 2)
	require.Equal(t, complex(3, 1), q)
	require.Equal(t, complex(1, 1), m)

	// identity a == q*b + m
	for _, pair := range [][2]complex128{{7 + 3i, 2}, {-5 + 4i, 1 + 2i}, {9 - 2i, 3 - 1i}} {
		a, b := pair[0], pair[1]
		q, m := r.QuotMod(a, b)
		require.Equal(t, a, q*b+m)
	}
}

func TestComplexRingGcd(t *testing.T) {
	r := ComplexRing[complex128]{}

	// magnitude below 1 on either side terminates with one
	require.Equal(t, complex128(1), r.Gcd(0.5+0.25i, 4+2i))
	require.Equal(t, complex128(1), r.Gcd(4+2i, 0.5+0.25i))

	require.Equal(t, complex128(2), r.Gcd(4, 2))
	require.Equal(t, 3+4i, r.Gcd(3+4i, 0))
}

func TestComplexRingStructure(t *testing.T) {
	r := ComplexRing[complex64]{}

	require.Equal(t, complex64(0), r.Zero())
	require.Equal(t, complex64(1), r.One())
	require.Equal(t, complex64(3+3i), r.Add(1+2i, 2+1i))
	require.Equal(t, complex64(5i), r.Mul(1+2i, 2+1i))
	require.Equal(t, complex64(-9), r.FromInt64(-9))
	require.Equal(t, complex64(2.5), r.FromFloat64(2.5))
	require.True(t, r.Eq(1+1i, 1+1i))
	require.False(t, r.Eq(1+1i, 1-1i))
}
