package editing_test

import (
	"testing"

	"github.com/katalvlaran/cluedit/editgraph"
	"github.com/katalvlaran/cluedit/editing"
)

// buildCliqueRing deterministically builds k planted cliques of size m:
// strong positive intra-clique edges, weak negative bridges between
// consecutive cliques. Sized so the heuristic has real propagation work.
func buildCliqueRing(b *testing.B, k, m int) *editgraph.Graph {
	b.Helper()
	g := editgraph.New(k * m)
	for c := 0; c < k; c++ {
		base := c * m
		for i := 0; i < m; i++ {
			for j := i + 1; j < m; j++ {
				if err := g.AddEdge(editgraph.NodeID(base+i), editgraph.NodeID(base+j), editgraph.Real(2)); err != nil {
					b.Fatalf("AddEdge failed: %v", err)
				}
			}
		}
		next := ((c + 1) % k) * m
		if next == base {
			continue
		}
		if err := g.AddEdge(editgraph.NodeID(base), editgraph.NodeID(next), editgraph.Real(-1)); err != nil {
			b.Fatalf("AddEdge failed: %v", err)
		}
	}
	return g
}

// benchmarkSolve runs one full solve per iteration; the graph is rebuilt
// each time because the solver consumes it.
func benchmarkSolve(b *testing.B, k, m int, bundle bool) {
	opts := editing.DefaultOptions()
	opts.BundleEdges = bundle

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := buildCliqueRing(b, k, m)
		b.StartTimer()

		sol := editing.NewSolver(g, opts).Solve()
		if len(sol.Clusters) == 0 {
			b.Fatal("unexpected infeasible solution")
		}
	}
}

// BenchmarkSolve_SmallBundled: 8 cliques of 6 vertices, bundling on.
func BenchmarkSolve_SmallBundled(b *testing.B) {
	benchmarkSolve(b, 8, 6, true)
}

// BenchmarkSolve_SmallUnbundled: same instance without bundling.
func BenchmarkSolve_SmallUnbundled(b *testing.B) {
	benchmarkSolve(b, 8, 6, false)
}

// BenchmarkSolve_MediumBundled: 16 cliques of 10 vertices.
func BenchmarkSolve_MediumBundled(b *testing.B) {
	benchmarkSolve(b, 16, 10, true)
}
