package editgraph

import (
	"fmt"
	"math"
	"slices"
)

// Graph is the dynamic sparse graph mutated by the cluster-editing
// heuristic. Construction: New, then AddEdge for every weighted pair.
// During a solve the graph changes only through SetPermanent and
// SetForbidden.
type Graph struct {
	n int

	rank    map[Edge]RankID
	edges   []Edge   // rank-indexed; edges[0] = InvalidEdge
	weights []Weight // rank-indexed; weights[0] = ZeroWeight

	uf        *unionFind
	forbidden []map[NodeID]struct{}
	unpruned  []map[NodeID]struct{}
}

// New creates a graph with n vertices (ids 0..n-1) and no edges.
// Complexity: O(n).
func New(n int) *Graph {
	g := &Graph{
		n:         n,
		rank:      make(map[Edge]RankID),
		edges:     []Edge{InvalidEdge},
		weights:   []Weight{ZeroWeight},
		uf:        newUnionFind(n),
		forbidden: make([]map[NodeID]struct{}, n),
		unpruned:  make([]map[NodeID]struct{}, n),
	}
	for i := 0; i < n; i++ {
		g.forbidden[i] = make(map[NodeID]struct{})
		g.unpruned[i] = make(map[NodeID]struct{})
	}
	return g
}

// AddEdge materializes the pair (u, v) with weight w and assigns it the
// next rank id. Permanent and Forbidden weights are committed immediately:
// the pair joins the union-find (respectively the forbidden sets) and is
// never a candidate for the heuristic. A Zero weight is stored as Real(0)
// so the pair stays an explicit candidate.
//
// Errors: ErrSelfLoop, ErrNodeRange, ErrDuplicateEdge, ErrBadWeight.
func (g *Graph) AddEdge(u, v NodeID, w Weight) error {
	if u == v {
		return ErrSelfLoop
	}
	if int(u) >= g.n || int(v) >= g.n {
		return ErrNodeRange
	}
	e := NewEdge(u, v)
	if _, dup := g.rank[e]; dup {
		return ErrDuplicateEdge
	}
	if math.IsNaN(w.Float()) {
		return ErrBadWeight
	}
	if w.IsZero() {
		w = Real(0)
	}

	id := RankID(len(g.edges))
	g.rank[e] = id
	g.edges = append(g.edges, e)
	g.weights = append(g.weights, w)

	switch {
	case w.IsPermanent():
		g.uf.union(e.U, e.V)
	case w.IsForbidden():
		g.forbidden[e.U][e.V] = struct{}{}
		g.forbidden[e.V][e.U] = struct{}{}
	default:
		g.unpruned[e.U][e.V] = struct{}{}
		g.unpruned[e.V][e.U] = struct{}{}
	}
	return nil
}

// NumNodes returns the vertex count.
func (g *Graph) NumNodes() int { return g.n }

// NumEdges returns the number of materialized edges.
func (g *Graph) NumEdges() int { return len(g.edges) - 1 }

// FindIndex returns the rank id of e, or RankNone if the pair was never
// materialized.
func (g *Graph) FindIndex(e Edge) RankID { return g.rank[e] }

// EdgeByRank returns the edge materialized under rank id.
func (g *Graph) EdgeByRank(id RankID) Edge { return g.edges[id] }

// WeightByRank returns the stored weight for rank id. Rank 0 reads as the
// implicit zero weight.
func (g *Graph) WeightByRank(id RankID) Weight { return g.weights[id] }

// Weight returns the logical weight of the pair e. Materialized edges read
// their stored weight; non-materialized pairs read Permanent when both
// endpoints share a clique class, Forbidden when they are mutually
// forbidden, and Zero otherwise.
func (g *Graph) Weight(e Edge) Weight {
	if id := g.rank[e]; id != RankNone {
		return g.weights[id]
	}
	if g.uf.find(e.U) == g.uf.find(e.V) {
		return PermanentWeight
	}
	if _, ok := g.forbidden[e.U][e.V]; ok {
		return ForbiddenWeight
	}
	return ZeroWeight
}

// IsPermanent reports whether the pair is logically permanent.
func (g *Graph) IsPermanent(e Edge) bool { return g.Weight(e).IsPermanent() }

// IsForbidden reports whether the pair is logically forbidden.
func (g *Graph) IsForbidden(e Edge) bool { return g.Weight(e).IsForbidden() }

// SetPermanent commits e to the permanent state: its clique classes merge,
// the stored weight (if any) becomes the Permanent sentinel and the edge
// is pruned from both endpoints' candidate adjacency. Non-materialized
// pairs are recorded through the union-find alone. Idempotent.
//
// Committing a pair that is already forbidden is a caller bug and panics.
func (g *Graph) SetPermanent(e Edge) {
	if _, ok := g.forbidden[e.U][e.V]; ok {
		panic(fmt.Sprintf("editgraph: pair %v is forbidden, cannot become permanent", e))
	}
	if id := g.rank[e]; id != RankNone {
		g.weights[id] = PermanentWeight
		g.prune(e)
	}
	g.uf.union(e.U, e.V)
}

// SetForbidden commits e to the forbidden state: each endpoint joins the
// other's forbidden-neighbor set, the stored weight (if any) becomes the
// Forbidden sentinel and the edge is pruned from the candidate adjacency.
// Non-materialized pairs are recorded through the forbidden sets alone.
// Idempotent.
//
// Committing a pair whose endpoints already share a clique is a caller
// bug and panics.
func (g *Graph) SetForbidden(e Edge) {
	if g.uf.find(e.U) == g.uf.find(e.V) {
		panic(fmt.Sprintf("editgraph: pair %v shares a clique, cannot become forbidden", e))
	}
	if id := g.rank[e]; id != RankNone {
		g.weights[id] = ForbiddenWeight
		g.prune(e)
	}
	g.forbidden[e.U][e.V] = struct{}{}
	g.forbidden[e.V][e.U] = struct{}{}
}

// prune drops e from both endpoints' unpruned adjacency.
func (g *Graph) prune(e Edge) {
	delete(g.unpruned[e.U], e.V)
	delete(g.unpruned[e.V], e.U)
}

// CliqueOf returns all vertices of v's permanent-closure class, including
// v itself, in ascending order. The slice is a copy and safe to mutate.
func (g *Graph) CliqueOf(v NodeID) []NodeID {
	members := g.uf.component(v)
	out := make([]NodeID, len(members))
	copy(out, members)
	slices.Sort(out)
	return out
}

// CliqueIDOf returns the opaque clique-class identifier of v: equal for
// vertices of one class, distinct across classes, stable between
// mutations.
func (g *Graph) CliqueIDOf(v NodeID) NodeID { return g.uf.find(v) }

// ForbiddenNeighbors returns the vertices w with (v, w) forbidden, in
// ascending order.
func (g *Graph) ForbiddenNeighbors(v NodeID) []NodeID {
	return sortedKeys(g.forbidden[v])
}

// UnprunedNeighbours returns the vertices w such that (v, w) is a
// materialized, still-undecided edge, in ascending order.
func (g *Graph) UnprunedNeighbours(v NodeID) []NodeID {
	return sortedKeys(g.unpruned[v])
}

func sortedKeys(set map[NodeID]struct{}) []NodeID {
	out := make([]NodeID, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
