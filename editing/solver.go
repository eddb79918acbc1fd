package editing

import (
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/katalvlaran/cluedit/edgeheap"
	"github.com/katalvlaran/cluedit/editgraph"
)

// Solver runs the induced-cost heuristic over one graph. It owns graph
// and heap exclusively between NewSolver and the end of Solve; neither
// may be mutated from outside in that window.
type Solver struct {
	opts Options
	out  io.Writer

	g    *editgraph.Graph
	heap *edgeheap.Heap

	totalCost  float64
	totalEdges int
}

// NewSolver wraps g and performs preprocessing: pre-declared permanent
// edges are closed into cliques (charging negative intra-clique weights),
// clique pairs joined by a forbidden edge are fully disconnected, and a
// derived contradiction marks the instance infeasible. The heap's induced
// costs are then initialized over the remaining candidate edges.
//
// Complexity: preprocessing is quadratic in the clique sizes plus one
// pair scan per clique pair; heap initialization is O(E·Δ) for maximum
// candidate degree Δ.
func NewSolver(g *editgraph.Graph, opts Options) *Solver {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	s := &Solver{opts: opts, out: opts.Out, g: g}
	if !s.resolvePermanentForbidden() {
		s.totalCost = math.Inf(1)
	}
	s.heap = edgeheap.New(g)
	s.heap.InitInducedCosts()
	s.totalEdges = s.heap.NumUnprocessed()
	return s
}

// Solve runs the greedy loop to completion and extracts the clustering.
// Infeasible instances return Cost = +Inf and no clusters. Deterministic:
// the same graph and options always produce the same Solution.
func (s *Solver) Solve() Solution {
	if math.IsInf(s.totalCost, 1) {
		s.progress("instance is infeasible")
		return Solution{Cost: s.totalCost}
	}

	s.progress("running heuristic on %d candidate edges", s.totalEdges)

	// Each iteration decides at least the extracted edge, so the heap
	// shrinks every round; the explicit bound mirrors that.
	for i := 0; i <= s.g.NumEdges(); i++ {
		eIcf := s.heap.MaxIcfEdge()
		eIcp := s.heap.MaxIcpEdge()
		if eIcf == editgraph.InvalidEdge || eIcp == editgraph.InvalidEdge {
			break
		}
		// Highest induced cost wins; ties commit to permanent.
		if s.heap.Icf(eIcf) >= s.heap.Icp(eIcp) {
			s.choosePermanent(eIcf)
		} else {
			s.chooseForbidden(eIcp)
		}
	}

	s.progress("heuristic done: %d of %d edges decided, cost %g",
		s.totalEdges-s.heap.NumUnprocessed(), s.totalEdges, s.totalCost)
	s.progress("constructing result")

	return Solution{Cost: s.totalCost, Clusters: s.extractClusters()}
}

// resolvePermanentForbidden closes the pre-declared permanent edges into
// cliques and disconnects clique pairs joined by a forbidden edge.
// Returns false when an intra-clique pair is forbidden, i.e. the instance
// is infeasible. Forbidden promotions here never charge: the triggering
// forbidden edge already encodes the intent.
func (s *Solver) resolvePermanentForbidden() bool {
	s.progress("resolving pre-declared permanent and forbidden edges")

	n := s.g.NumNodes()
	processed := make([]bool, n)
	var cliques [][]editgraph.NodeID
	var moreThanOne [][]editgraph.NodeID

	for u := 0; u < n; u++ {
		if processed[u] {
			continue
		}
		clique := s.g.CliqueOf(editgraph.NodeID(u))
		for _, v := range clique {
			processed[v] = true
		}
		cliques = append(cliques, clique)
		if len(clique) > 1 {
			moreThanOne = append(moreThanOne, clique)
		}

		// Every intra-clique pair must end up permanent; negative weights
		// charge their absolute value, a forbidden pair is a contradiction.
		for i, x := range clique {
			for _, y := range clique[i+1:] {
				e := editgraph.NewEdge(x, y)
				w := s.g.Weight(e)
				switch {
				case w.IsForbidden():
					return false
				case w.IsPermanent():
					// already closed
				default:
					if wf := w.Float(); wf < 0 {
						s.totalCost -= wf
					}
					s.g.SetPermanent(e)
				}
			}
		}
	}

	// If any edge between two clique classes is forbidden, every pair
	// between those classes becomes forbidden. Singleton-singleton pairs
	// need no promotion, hence the restriction to non-trivial cliques on
	// one side.
	for _, ck := range cliques {
		for _, cl := range moreThanOne {
			if s.g.CliqueIDOf(ck[0]) == s.g.CliqueIDOf(cl[0]) {
				continue
			}
			if !s.cliquePairForbidden(ck, cl) {
				continue
			}
			for _, u := range ck {
				for _, v := range cl {
					e := editgraph.NewEdge(u, v)
					if !s.g.IsForbidden(e) {
						s.g.SetForbidden(e)
					}
				}
			}
		}
	}
	return true
}

// cliquePairForbidden reports whether any pair between the two cliques is
// forbidden.
func (s *Solver) cliquePairForbidden(a, b []editgraph.NodeID) bool {
	for _, u := range a {
		for _, v := range b {
			if s.g.IsForbidden(editgraph.NewEdge(u, v)) {
				return true
			}
		}
	}
	return false
}

// choosePermanent commits e = (u, v) to permanent together with all
// implications of merging u's and v's cliques. Both implication sets are
// computed before any state changes: zero-weight pairs change their
// implicit reading the moment the cliques merge, so the view must be
// frozen first.
func (s *Solver) choosePermanent(e editgraph.Edge) {
	uClique := s.g.CliqueOf(e.U)
	vClique := s.g.CliqueOf(e.V)

	// Cross pairs of the merged clique become permanent. Non-materialized
	// pairs are skipped: the union-find merge covers them implicitly.
	var permImpl []editgraph.Edge
	for _, x := range uClique {
		for _, y := range vClique {
			if x == y {
				continue
			}
			impl := editgraph.NewEdge(x, y)
			if impl == e || s.g.FindIndex(impl) == editgraph.RankNone || s.g.Weight(impl).Decided() {
				continue
			}
			permImpl = append(permImpl, impl)
		}
	}

	// The merged clique inherits both forbidden neighborhoods.
	var forbImpl []editgraph.Edge
	for _, f := range s.g.ForbiddenNeighbors(e.U) {
		for _, x := range vClique {
			impl := editgraph.NewEdge(f, x)
			if s.g.FindIndex(impl) != editgraph.RankNone && !s.g.Weight(impl).Decided() {
				forbImpl = append(forbImpl, impl)
			}
		}
	}
	for _, f := range s.g.ForbiddenNeighbors(e.V) {
		for _, x := range uClique {
			impl := editgraph.NewEdge(f, x)
			if s.g.FindIndex(impl) != editgraph.RankNone && !s.g.Weight(impl).Decided() {
				forbImpl = append(forbImpl, impl)
			}
		}
	}

	s.setPermanent(e)
	s.heap.RemoveEdge(e)
	for _, impl := range permImpl {
		s.setPermanent(impl)
		s.heap.RemoveEdge(impl)
	}
	for _, impl := range forbImpl {
		s.setForbidden(impl)
		s.heap.RemoveEdge(impl)
	}

	if s.opts.BundleEdges {
		s.bundleClique(uClique, vClique)
	}
}

// chooseForbidden commits e = (u, v) to forbidden together with all cross
// pairs between the two cliques, computed before any state changes.
func (s *Solver) chooseForbidden(e editgraph.Edge) {
	uClique := s.g.CliqueOf(e.U)
	vClique := s.g.CliqueOf(e.V)

	var implications []editgraph.Edge
	for _, x := range uClique {
		for _, y := range vClique {
			if x == y {
				continue
			}
			impl := editgraph.NewEdge(x, y)
			if impl == e || s.g.FindIndex(impl) == editgraph.RankNone || s.g.Weight(impl).Decided() {
				continue
			}
			implications = append(implications, impl)
		}
	}

	s.setForbidden(e)
	s.heap.RemoveEdge(e)
	for _, impl := range implications {
		s.setForbidden(impl)
		s.heap.RemoveEdge(impl)
	}
}

// bundleClique makes the freshly merged clique act as a single node: all
// parallel edges from the clique to one outside clique collapse into one
// heap entry. uClique and vClique are the pre-merge cliques of the
// committed edge; their union is the merged clique.
func (s *Solver) bundleClique(uClique, vClique []editgraph.NodeID) {
	combined := make([]editgraph.NodeID, 0, len(uClique)+len(vClique))
	combined = append(combined, uClique...)
	combined = append(combined, vClique...)
	slices.Sort(combined)

	internal := make(map[editgraph.NodeID]struct{}, len(combined))
	for _, x := range combined {
		internal[x] = struct{}{}
	}

	// First outgoing edge to a clique becomes its representative; every
	// further edge to the same clique merges into it.
	representatives := make(map[editgraph.NodeID]editgraph.Edge)
	for _, x := range combined {
		for _, xn := range s.g.UnprunedNeighbours(x) {
			if _, inside := internal[xn]; inside {
				continue
			}
			ex := editgraph.NewEdge(x, xn)
			if s.g.FindIndex(ex) == editgraph.RankNone {
				continue
			}
			cxn := s.g.CliqueIDOf(xn)
			if rep, seen := representatives[cxn]; seen {
				s.heap.MergeEdges(ex, rep)
			} else {
				representatives[cxn] = ex
			}
		}
	}
}

// setPermanent replays the triple updates for every undecided edge
// adjacent to e, charges a negative weight, and commits the permanent
// state. The weight is read before the commit; a never-materialized pair
// reads as zero and is not committed to the graph.
func (s *Solver) setPermanent(e editgraph.Edge) {
	id := s.g.FindIndex(e)
	uv := s.g.WeightByRank(id).Float()

	for _, w := range s.g.UnprunedNeighbours(e.U) {
		if w == e.V {
			continue
		}
		rvw := s.g.FindIndex(editgraph.NewEdge(e.V, w))
		if rvw != editgraph.RankNone {
			s.updateTriplePermanent(uv, editgraph.NewEdge(e.U, w), s.g.WeightByRank(rvw).Float())
		}
	}
	for _, w := range s.g.UnprunedNeighbours(e.V) {
		if w == e.U {
			continue
		}
		ruw := s.g.FindIndex(editgraph.NewEdge(e.U, w))
		if ruw != editgraph.RankNone {
			s.updateTriplePermanent(uv, editgraph.NewEdge(e.V, w), s.g.WeightByRank(ruw).Float())
		}
	}

	if uv < 0 {
		s.totalCost -= uv
	}
	if id != editgraph.RankNone {
		s.g.SetPermanent(e)
	}
}

// setForbidden is the forbidden-side counterpart of setPermanent: triple
// updates first, then the charge for a positive weight, then the commit.
func (s *Solver) setForbidden(e editgraph.Edge) {
	id := s.g.FindIndex(e)
	uv := s.g.WeightByRank(id).Float()

	for _, w := range s.g.UnprunedNeighbours(e.U) {
		if w == e.V {
			continue
		}
		rvw := s.g.FindIndex(editgraph.NewEdge(e.V, w))
		if rvw != editgraph.RankNone {
			s.updateTripleForbidden(uv, editgraph.NewEdge(e.U, w), s.g.WeightByRank(rvw).Float())
		}
	}
	for _, w := range s.g.UnprunedNeighbours(e.V) {
		if w == e.U {
			continue
		}
		ruw := s.g.FindIndex(editgraph.NewEdge(e.U, w))
		if ruw != editgraph.RankNone {
			s.updateTripleForbidden(uv, editgraph.NewEdge(e.V, w), s.g.WeightByRank(ruw).Float())
		}
	}

	if uv > 0 {
		s.totalCost += uv
	}
	if id != editgraph.RankNone {
		s.g.SetForbidden(e)
	}
}

// updateTriplePermanent swaps the contribution of the triple through the
// now-permanent uv on the undecided edge uw: the old (uv, vw) term is
// replaced by the terms of a hard-wired neighbor.
func (s *Solver) updateTriplePermanent(uv float64, uw editgraph.Edge, vw float64) {
	icfOld := edgeheap.TripleIcf(uv, vw)
	icfNew := math.Max(0, vw)
	icpOld := edgeheap.TripleIcp(uv, vw)
	icpNew := math.Max(0, -vw)
	if icfNew != icfOld {
		s.heap.IncreaseIcf(uw, icfNew-icfOld)
	}
	if icpNew != icpOld {
		s.heap.IncreaseIcp(uw, icpNew-icpOld)
	}
}

// updateTripleForbidden swaps the contribution of the triple through the
// now-forbidden uv on the undecided edge uw: the triple's icf term drops
// to zero and its icp term becomes max(0, vw).
func (s *Solver) updateTripleForbidden(uv float64, uw editgraph.Edge, vw float64) {
	icfOld := edgeheap.TripleIcf(uv, vw)
	icpOld := edgeheap.TripleIcp(uv, vw)
	icpNew := math.Max(0, vw)
	if icfOld != 0 {
		s.heap.IncreaseIcf(uw, -icfOld)
	}
	if icpNew != icpOld {
		s.heap.IncreaseIcp(uw, icpNew-icpOld)
	}
}

// extractClusters walks vertices in ascending order and emits each
// permanent-closure class once; classes are internally sorted, so the
// output is fully deterministic.
func (s *Solver) extractClusters() [][]editgraph.NodeID {
	n := s.g.NumNodes()
	clusters := make([][]editgraph.NodeID, 0)
	assigned := make([]bool, n)
	for u := 0; u < n; u++ {
		if assigned[u] {
			continue
		}
		clique := s.g.CliqueOf(editgraph.NodeID(u))
		for _, v := range clique {
			assigned[v] = true
		}
		clusters = append(clusters, clique)
	}
	return clusters
}

// progress writes one line to the configured sink when Verbose is set.
// Reporting is side-effect free with respect to the computation.
func (s *Solver) progress(format string, args ...any) {
	if !s.opts.Verbose {
		return
	}
	fmt.Fprintf(s.out, format+"\n", args...)
}
