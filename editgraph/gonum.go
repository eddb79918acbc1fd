package editgraph

import (
	"slices"

	"gonum.org/v1/gonum/graph"
)

// FromGonum builds an editing graph from a gonum weighted undirected
// graph. Node ids must form the dense range 0..n-1; every edge weight is
// taken as a Real (finite) weight. Edges are materialized in ascending
// (u, v) order so rank assignment — and therefore the heuristic's
// tie-breaking — does not depend on gonum's iteration order.
//
// Errors: ErrNodeRange when node ids are not dense, plus any AddEdge
// validation error (ErrBadWeight on NaN).
//
// Complexity: O(V + E log E).
func FromGonum(src graph.WeightedUndirected) (*Graph, error) {
	nodes := graph.NodesOf(src.Nodes())
	n := len(nodes)

	seen := make([]bool, n)
	for _, node := range nodes {
		id := node.ID()
		if id < 0 || id >= int64(n) || seen[id] {
			return nil, ErrNodeRange
		}
		seen[id] = true
	}

	type weighted struct {
		e Edge
		w float64
	}
	var all []weighted
	for _, node := range nodes {
		uid := node.ID()
		it := src.From(uid)
		for it.Next() {
			vid := it.Node().ID()
			if uid >= vid {
				continue // each pair once, canonical orientation
			}
			w, _ := src.Weight(uid, vid)
			all = append(all, weighted{e: NewEdge(NodeID(uid), NodeID(vid)), w: w})
		}
	}
	slices.SortFunc(all, func(a, b weighted) int {
		if a.e.U != b.e.U {
			return int(a.e.U) - int(b.e.U)
		}
		return int(a.e.V) - int(b.e.V)
	})

	g := New(n)
	for _, we := range all {
		if err := g.AddEdge(we.e.U, we.e.V, Real(we.w)); err != nil {
			return nil, err
		}
	}
	return g, nil
}
