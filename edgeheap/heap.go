package edgeheap

import (
	"math"

	"github.com/katalvlaran/cluedit/editgraph"
)

// Heap holds the (icf, icp) scores of every undecided edge and serves max
// queries over both. Construct with New, then call InitInducedCosts once
// the graph's preprocessing is finished; decided edges never enter the
// heap.
type Heap struct {
	g *editgraph.Graph

	icf []float64 // by rank
	icp []float64 // by rank

	// forward chains bundled ranks to their representative; forward[r]==r
	// for unbundled ranks. alive[r] holds while rank r backs a live entry.
	forward []editgraph.RankID
	alive   []bool

	byIcf *indexedHeap
	byIcp *indexedHeap

	unprocessed int
}

// New allocates the heap structure for g without computing any scores.
// Complexity: O(E).
func New(g *editgraph.Graph) *Heap {
	m := g.NumEdges() + 1
	h := &Heap{
		g:       g,
		icf:     make([]float64, m),
		icp:     make([]float64, m),
		forward: make([]editgraph.RankID, m),
		alive:   make([]bool, m),
	}
	for id := range h.forward {
		h.forward[id] = editgraph.RankID(id)
	}
	h.byIcf = newIndexedHeap(h.icf, m)
	h.byIcp = newIndexedHeap(h.icp, m)
	return h
}

// InitInducedCosts computes (icf, icp) for every undecided edge from
// scratch and heapifies. Worst case O(E·Δ) triple lookups where Δ is the
// maximum candidate degree.
func (h *Heap) InitInducedCosts() {
	for id := editgraph.RankID(1); int(id) <= h.g.NumEdges(); id++ {
		w := h.g.WeightByRank(id)
		if w.Decided() {
			continue
		}
		e := h.g.EdgeByRank(id)
		wf := w.Float()
		icf := math.Max(0, wf)
		icp := math.Max(0, -wf)

		// Triples through common neighbors: x ranges over u's candidate
		// adjacency; only materialized (v,x) pairs contribute.
		for _, x := range h.g.UnprunedNeighbours(e.U) {
			if x == e.V {
				continue
			}
			rvw := h.g.FindIndex(editgraph.NewEdge(e.V, x))
			if rvw == editgraph.RankNone {
				continue
			}
			wuw := h.g.WeightByRank(h.g.FindIndex(editgraph.NewEdge(e.U, x))).Float()
			wvw := h.g.WeightByRank(rvw).Float()
			icf += TripleIcf(wuw, wvw)
			icp += TripleIcp(wuw, wvw)
		}

		h.icf[id] = icf
		h.icp[id] = icp
		h.alive[id] = true
		h.byIcf.append(id)
		h.byIcp.append(id)
		h.unprocessed++
	}
	h.byIcf.init()
	h.byIcp.init()
}

// resolve follows bundle forwarding to the representative rank,
// compressing the chain.
func (h *Heap) resolve(id editgraph.RankID) editgraph.RankID {
	root := id
	for h.forward[root] != root {
		root = h.forward[root]
	}
	for h.forward[id] != root {
		h.forward[id], id = root, h.forward[id]
	}
	return root
}

// liveRank maps an edge to the rank of its live heap entry, or RankNone
// if the edge was never in the heap or its entry is already processed.
func (h *Heap) liveRank(e editgraph.Edge) editgraph.RankID {
	id := h.g.FindIndex(e)
	if id == editgraph.RankNone {
		return editgraph.RankNone
	}
	id = h.resolve(id)
	if !h.alive[id] {
		return editgraph.RankNone
	}
	return id
}

// MaxIcfEdge returns the edge with the highest icf, breaking score ties
// by lowest rank. Returns editgraph.InvalidEdge when the heap is empty.
func (h *Heap) MaxIcfEdge() editgraph.Edge {
	id := h.byIcf.peek()
	if id == editgraph.RankNone {
		return editgraph.InvalidEdge
	}
	return h.g.EdgeByRank(id)
}

// MaxIcpEdge returns the edge with the highest icp; InvalidEdge when empty.
func (h *Heap) MaxIcpEdge() editgraph.Edge {
	id := h.byIcp.peek()
	if id == editgraph.RankNone {
		return editgraph.InvalidEdge
	}
	return h.g.EdgeByRank(id)
}

// Icf returns the current icf score of e (0 if e has no live entry).
func (h *Heap) Icf(e editgraph.Edge) float64 {
	id := h.liveRank(e)
	if id == editgraph.RankNone {
		return 0
	}
	return h.icf[id]
}

// Icp returns the current icp score of e (0 if e has no live entry).
func (h *Heap) Icp(e editgraph.Edge) float64 {
	id := h.liveRank(e)
	if id == editgraph.RankNone {
		return 0
	}
	return h.icp[id]
}

// IncreaseIcf adds delta (possibly negative) to icf(e) and re-heapifies.
// No-op when e has no live entry.
func (h *Heap) IncreaseIcf(e editgraph.Edge, delta float64) {
	id := h.liveRank(e)
	if id == editgraph.RankNone {
		return
	}
	h.icf[id] += delta
	h.byIcf.fix(id)
}

// IncreaseIcp adds delta (possibly negative) to icp(e) and re-heapifies.
// No-op when e has no live entry.
func (h *Heap) IncreaseIcp(e editgraph.Edge, delta float64) {
	id := h.liveRank(e)
	if id == editgraph.RankNone {
		return
	}
	h.icp[id] += delta
	h.byIcp.fix(id)
}

// RemoveEdge marks e processed and drops its entry from both heaps.
// Removing a bundled member removes the whole bundle: the entry stands
// for the clique-pair relation, which is decided exactly once. No-op when
// the entry is already gone.
func (h *Heap) RemoveEdge(e editgraph.Edge) {
	id := h.liveRank(e)
	if id == editgraph.RankNone {
		return
	}
	h.alive[id] = false
	h.byIcf.remove(id)
	h.byIcp.remove(id)
	h.unprocessed--
}

// MergeEdges bundles e into representative: both scores are summed onto
// the representative's entry and e's entry leaves the heap. Later updates
// addressed to e forward to the representative. No-op when either entry
// is gone or both resolve to the same entry already.
func (h *Heap) MergeEdges(e, representative editgraph.Edge) {
	src := h.liveRank(e)
	dst := h.liveRank(representative)
	if src == editgraph.RankNone || dst == editgraph.RankNone || src == dst {
		return
	}
	h.icf[dst] += h.icf[src]
	h.icp[dst] += h.icp[src]
	h.alive[src] = false
	h.byIcf.remove(src)
	h.byIcp.remove(src)
	h.forward[src] = dst
	h.byIcf.fix(dst)
	h.byIcp.fix(dst)
	h.unprocessed--
}

// NumUnprocessed returns the number of live heap entries; it decreases
// monotonically as edges are decided or bundled.
func (h *Heap) NumUnprocessed() int { return h.unprocessed }

// indexedHeap is a binary max-heap over rank ids ordered by an external
// score slice, with a rank-indexed position table for O(log n) updates at
// arbitrary positions. Equal scores order by ascending rank.
type indexedHeap struct {
	scores []float64
	items  []editgraph.RankID
	pos    []int // by rank; -1 when absent
}

func newIndexedHeap(scores []float64, m int) *indexedHeap {
	ih := &indexedHeap{
		scores: scores,
		pos:    make([]int, m),
	}
	for i := range ih.pos {
		ih.pos[i] = -1
	}
	return ih
}

// append places id at the end without restoring heap order; call init
// afterwards.
func (ih *indexedHeap) append(id editgraph.RankID) {
	ih.pos[id] = len(ih.items)
	ih.items = append(ih.items, id)
}

// init heapifies in O(n).
func (ih *indexedHeap) init() {
	for i := len(ih.items)/2 - 1; i >= 0; i-- {
		ih.down(i)
	}
}

// better reports whether the entry at slot i outranks the one at slot j.
func (ih *indexedHeap) better(i, j int) bool {
	a, b := ih.items[i], ih.items[j]
	if ih.scores[a] != ih.scores[b] {
		return ih.scores[a] > ih.scores[b]
	}
	return a < b
}

func (ih *indexedHeap) swap(i, j int) {
	ih.items[i], ih.items[j] = ih.items[j], ih.items[i]
	ih.pos[ih.items[i]] = i
	ih.pos[ih.items[j]] = j
}

func (ih *indexedHeap) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !ih.better(i, parent) {
			break
		}
		ih.swap(i, parent)
		i = parent
	}
}

func (ih *indexedHeap) down(i int) {
	n := len(ih.items)
	for {
		best := i
		if l := 2*i + 1; l < n && ih.better(l, best) {
			best = l
		}
		if r := 2*i + 2; r < n && ih.better(r, best) {
			best = r
		}
		if best == i {
			return
		}
		ih.swap(i, best)
		i = best
	}
}

// fix restores heap order after the score of id changed in place.
func (ih *indexedHeap) fix(id editgraph.RankID) {
	i := ih.pos[id]
	if i < 0 {
		return
	}
	ih.up(i)
	ih.down(ih.pos[id])
}

// remove drops id from the heap.
func (ih *indexedHeap) remove(id editgraph.RankID) {
	i := ih.pos[id]
	if i < 0 {
		return
	}
	last := len(ih.items) - 1
	ih.swap(i, last)
	ih.items = ih.items[:last]
	ih.pos[id] = -1
	if i < last {
		ih.up(i)
		ih.down(i)
	}
}

// peek returns the top rank id, or RankNone when empty.
func (ih *indexedHeap) peek() editgraph.RankID {
	if len(ih.items) == 0 {
		return editgraph.RankNone
	}
	return ih.items[0]
}
