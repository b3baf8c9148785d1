package ring

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRatRingQuotMod(t *testing.T) {
	r := RatRing{}

	// (7/2) / (1/3) = 21/2, truncated to 10
	q := r.Quot(big.NewRat(7, 2), big.NewRat(1, 3))
	require.Zero(t, big.NewRat(10, 1).Cmp(q))

	// 7/2 - 10 * 1/3 = 1/6
	m := r.Mod(big.NewRat(7, 2), big.NewRat(1, 3))
	require.Zero(t, big.NewRat(1, 6).Cmp(m))

	q, m = r.QuotMod(big.NewRat(7, 2), big.NewRat(1, 3))
	require.Zero(t, big.NewRat(10, 1).Cmp(q))
	require.Zero(t, big.NewRat(1, 6).Cmp(m))

	// identity a == q*b + m
	a, b := big.NewRat(-22, 7), big.NewRat(3, 5)
	q, m = r.QuotMod(a, b)
	require.Zero(t, a.Cmp(r.Add(r.Mul(q, b), m)))

	// operands stay untouched
	require.Zero(t, big.NewRat(-22, 7).Cmp(a))
	require.Zero(t, big.NewRat(3, 5).Cmp(b))
}

func TestRatRingGcd(t *testing.T) {
	r := RatRing{}
	one := r.One()

	// values below exact 1 are treated as co-prime
	require.Zero(t, one.Cmp(r.Gcd(big.NewRat(1, 2), big.NewRat(16, 5))))
	require.Zero(t, one.Cmp(r.Gcd(big.NewRat(5, 2), big.NewRat(3, 2))))

	require.Zero(t, big.NewRat(6, 1).Cmp(r.Gcd(big.NewRat(48, 1), big.NewRat(18, 1))))
	require.Zero(t, big.NewRat(6, 1).Cmp(r.Gcd(big.NewRat(-48, 1), big.NewRat(18, 1))))
	require.Zero(t, big.NewRat(3, 1).Cmp(r.Gcd(big.NewRat(3, 1), new(big.Rat))))
}

func TestRatRingStructure(t *testing.T) {
	r := RatRing{}

	require.Zero(t, r.Zero().Cmp(new(big.Rat)))
	require.Zero(t, r.One().Cmp(big.NewRat(1, 1)))
	require.Zero(t, big.NewRat(5, 6).Cmp(r.Add(big.NewRat(1, 2), big.NewRat(1, 3))))
	require.Zero(t, big.NewRat(1, 6).Cmp(r.Mul(big.NewRat(1, 2), big.NewRat(1, 3))))
	require.Zero(t, big.NewRat(-9, 1).Cmp(r.FromInt64(-9)))
	require.Zero(t, big.NewRat(1, 4).Cmp(r.FromFloat64(0.25)))
	require.True(t, r.Eq(big.NewRat(2, 4), big.NewRat(1, 2)))
}
