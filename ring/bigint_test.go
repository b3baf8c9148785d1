package ring

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBigIntRingQuotMod(t *testing.T) {
	r := BigIntRing{}

	a, b := big.NewInt(17), big.NewInt(5)
	require.Zero(t, big.NewInt(3).Cmp(r.Quot(a, b)))
	require.Zero(t, big.NewInt(2).Cmp(r.Mod(a, b)))

	q, m := r.QuotMod(a, b)
	require.Zero(t, big.NewInt(3).Cmp(q))
	require.Zero(t, big.NewInt(2).Cmp(m))

	// truncating division: remainder carries the dividend's sign
	q, m = r.QuotMod(big.NewInt(-17), b)
	require.Zero(t, big.NewInt(-3).Cmp(q))
	require.Zero(t, big.NewInt(-2).Cmp(m))

	// operands stay untouched
	require.Zero(t, big.NewInt(17).Cmp(a))
	require.Zero(t, big.NewInt(5).Cmp(b))
}

func TestBigIntRingGcdLcm(t *testing.T) {
	r := BigIntRing{}

	require.Zero(t, big.NewInt(6).Cmp(r.Gcd(big.NewInt(48), big.NewInt(18))))
	require.Zero(t, big.NewInt(6).Cmp(r.Gcd(big.NewInt(-48), big.NewInt(18))))
	require.Zero(t, big.NewInt(144).Cmp(r.Lcm(big.NewInt(48), big.NewInt(18))))

	require.Zero(t, big.NewInt(7).Cmp(r.Gcd(big.NewInt(7), big.NewInt(0))))
	require.Zero(t, big.NewInt(0).Cmp(r.Gcd(big.NewInt(0), big.NewInt(0))))

	// beyond the machine word size
	a, ok := new(big.Int).SetString("36893488147419103232", 10) // 2^65
	require.True(t, ok)
	b, ok := new(big.Int).SetString("110680464442257309696", 10) // 3 * 2^65
	require.True(t, ok)
	require.Zero(t, a.Cmp(r.Gcd(a, b)))
}

func TestBigIntRingStructure(t *testing.T) {
	r := BigIntRing{}

	require.True(t, r.Eq(r.Zero(), big.NewInt(0)))
	require.True(t, r.Eq(r.One(), big.NewInt(1)))
	require.True(t, r.Eq(r.Add(big.NewInt(2), big.NewInt(3)), big.NewInt(5)))
	require.True(t, r.Eq(r.Mul(big.NewInt(2), big.NewInt(3)), big.NewInt(6)))
	require.True(t, r.Eq(r.FromInt64(-9), big.NewInt(-9)))
}
