package ring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/ring.go/safeint"
)

func TestSafeIntRing(t *testing.T) {
	r := SafeIntRing{}

	require.True(t, r.Eq(safeint.New(6), r.Gcd(safeint.New(48), safeint.New(18))))
	require.True(t, r.Eq(safeint.New(144), r.Lcm(safeint.New(48), safeint.New(18))))

	q, m := r.QuotMod(safeint.New(17), safeint.New(5))
	require.True(t, r.Eq(safeint.New(3), q))
	require.True(t, r.Eq(safeint.New(2), m))

	// gcd stays exact across the promotion boundary
	a := safeint.New(math.MaxInt64).Add(safeint.New(1)) // 2^63
	g := r.Gcd(a, safeint.New(6))
	require.True(t, r.Eq(safeint.New(2), g))

	require.True(t, r.Eq(r.Zero(), safeint.New(0)))
	require.True(t, r.Eq(r.One(), safeint.New(1)))
	require.True(t, r.Eq(safeint.New(-9), r.FromInt64(-9)))
	require.True(t, r.Eq(safeint.New(5), r.Add(safeint.New(2), safeint.New(3))))
	require.True(t, r.Eq(safeint.New(6), r.Mul(safeint.New(2), safeint.New(3))))
}
