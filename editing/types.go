package editing

import (
	"io"

	"github.com/katalvlaran/cluedit/editgraph"
)

// Options configures a Solver.
//
//   - BundleEdges: collapse parallel edges between a freshly merged clique
//     and each outside clique into one heap entry. Keeps later induced-cost
//     updates coherent with the merged clique acting as a single node and
//     shrinks the heap. Bundled entries carry summed scores, so the greedy
//     choices, and with them the final clustering, can differ from an
//     unbundled run on the same graph.
//   - Verbose: emit textual progress (phase starts, decisions summary) to
//     Out. Progress output never influences the computation.
//   - Out: sink for progress lines; nil silences them.
type Options struct {
	BundleEdges bool
	Verbose     bool
	Out         io.Writer
}

// DefaultOptions returns the canonical configuration: bundling on,
// progress silenced.
func DefaultOptions() Options {
	return Options{BundleEdges: true, Out: io.Discard}
}

// Solution is the outcome of a solve.
//
// Cost is the total absolute weight of edge modifications, +Inf when the
// instance is infeasible. Clusters lists each clique's vertices in
// ascending order; clusters appear in order of their smallest vertex.
// Clusters is empty iff the instance is infeasible or has no vertices.
type Solution struct {
	Cost     float64
	Clusters [][]editgraph.NodeID
}
