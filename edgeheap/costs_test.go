package edgeheap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cluedit/edgeheap"
)

// TestTripleIcf pins the per-triple icf contribution, including the
// saturating behavior of decided (±Inf) neighbors.
func TestTripleIcf(t *testing.T) {
	inf := math.Inf(1)

	require.Equal(t, 2.0, edgeheap.TripleIcf(2, 3))
	require.Equal(t, 0.0, edgeheap.TripleIcf(-1, 3))
	require.Equal(t, 0.0, edgeheap.TripleIcf(2, -3))
	require.Equal(t, 0.0, edgeheap.TripleIcf(-1, -3))
	require.Equal(t, 0.0, edgeheap.TripleIcf(0, 5))

	require.Equal(t, 2.0, edgeheap.TripleIcf(2, inf), "permanent neighbor caps at the finite side")
	require.Equal(t, 0.0, edgeheap.TripleIcf(2, -inf))
}

// TestTripleIcp pins the per-triple icp contribution for every sign
// combination.
func TestTripleIcp(t *testing.T) {
	inf := math.Inf(1)

	require.Equal(t, 2.0, edgeheap.TripleIcp(2, 3), "both present: the lighter one must go")
	require.Equal(t, 1.0, edgeheap.TripleIcp(-1, 3), "uv cut: pay min(-uv, vw)")
	require.Equal(t, 2.0, edgeheap.TripleIcp(2, -3), "vw cut: pay min(uv, -vw)")
	require.Equal(t, 0.0, edgeheap.TripleIcp(-1, -3))
	require.Equal(t, 0.0, edgeheap.TripleIcp(0, 5))
	require.Equal(t, 0.0, edgeheap.TripleIcp(2, 0))

	require.Equal(t, 3.0, edgeheap.TripleIcp(inf, 3))
	require.Equal(t, 2.0, edgeheap.TripleIcp(2, -inf))
}
