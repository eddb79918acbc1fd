package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cluedit/editgraph"
)

// TestParseGraph reads a full input with comments, finite weights and
// sentinel markers.
func TestParseGraph(t *testing.T) {
	input := `
# conflict triangle plus declarations
4
0 1 1.5
0 2 -2
1 2 p
0 3 f
`
	g, err := parseGraph(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 4, g.NumNodes())
	require.Equal(t, 4, g.NumEdges())
	require.Equal(t, 1.5, g.Weight(editgraph.NewEdge(0, 1)).Float())
	require.Equal(t, -2.0, g.Weight(editgraph.NewEdge(0, 2)).Float())
	require.True(t, g.IsPermanent(editgraph.NewEdge(1, 2)))
	require.True(t, g.IsForbidden(editgraph.NewEdge(0, 3)))
}

// TestParseGraphErrors covers the rejection paths with line attribution.
func TestParseGraphErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "missing vertex count"},
		{"bad count", "x\n", "invalid vertex count"},
		{"bad arity", "2\n0 1\n", "expected \"u v weight\""},
		{"bad vertex", "2\na 1 1\n", "invalid vertex"},
		{"bad weight", "2\n0 1 nope\n", "invalid weight"},
		{"nan weight", "2\n0 1 NaN\n", "invalid weight"},
		{"inf weight", "2\n0 1 +Inf\n", "invalid weight"},
		{"self loop", "2\n1 1 1\n", "self-loop"},
		{"out of range", "2\n0 2 1\n", "out of range"},
		{"duplicate", "2\n0 1 1\n1 0 2\n", "duplicate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseGraph(strings.NewReader(tc.input))
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

// TestParseWeightSentinels accepts both cases of the sentinel markers.
func TestParseWeightSentinels(t *testing.T) {
	for _, s := range []string{"p", "P"} {
		w, err := parseWeight(s)
		require.NoError(t, err)
		require.True(t, w.IsPermanent())
	}
	for _, s := range []string{"f", "F"} {
		w, err := parseWeight(s)
		require.NoError(t, err)
		require.True(t, w.IsForbidden())
	}
}
