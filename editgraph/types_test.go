package editgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cluedit/editgraph"
)

// TestNewEdgeCanonical verifies that NewEdge orders endpoints ascending.
func TestNewEdgeCanonical(t *testing.T) {
	require.Equal(t, editgraph.Edge{U: 2, V: 7}, editgraph.NewEdge(7, 2))
	require.Equal(t, editgraph.Edge{U: 2, V: 7}, editgraph.NewEdge(2, 7))
	require.Equal(t, "(2,7)", editgraph.NewEdge(7, 2).String())
}

// TestWeightVariants checks the tagged weight model and its numeric reading.
func TestWeightVariants(t *testing.T) {
	require.Equal(t, 1.5, editgraph.Real(1.5).Float())
	require.Equal(t, -2.0, editgraph.Real(-2).Float())
	require.Equal(t, 0.0, editgraph.ZeroWeight.Float())
	require.True(t, math.IsInf(editgraph.PermanentWeight.Float(), 1))
	require.True(t, math.IsInf(editgraph.ForbiddenWeight.Float(), -1))

	require.True(t, editgraph.PermanentWeight.IsPermanent())
	require.True(t, editgraph.ForbiddenWeight.IsForbidden())
	require.True(t, editgraph.ZeroWeight.IsZero())
	require.False(t, editgraph.Real(0).IsZero(), "Real(0) is materialized, not implicit zero")

	require.True(t, editgraph.PermanentWeight.Decided())
	require.True(t, editgraph.ForbiddenWeight.Decided())
	require.False(t, editgraph.Real(3).Decided())

	require.Equal(t, "permanent", editgraph.PermanentWeight.String())
	require.Equal(t, "forbidden", editgraph.ForbiddenWeight.String())
	require.Equal(t, "zero", editgraph.ZeroWeight.String())
	require.Equal(t, "-2.5", editgraph.Real(-2.5).String())
}
