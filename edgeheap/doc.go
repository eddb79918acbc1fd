// Package edgeheap maintains the induced-cost priority structure of the
// cluster-editing heuristic.
//
// For every candidate edge uv the heap tracks two non-negative scores:
//
//	icf — lower-bound cost of forcing uv permanent (every common neighbor
//	      with asymmetric evidence must be dragged in or cut)
//	icp — lower-bound cost of forcing uv forbidden
//
// Both scores are the edge's own share max(0, ±w) plus one triple
// contribution per common neighbor; TripleIcf and TripleIcp give the
// per-triple terms so the solver can subtract an old contribution and add
// a new one when an adjacent edge is decided.
//
// The backing store is a pair of indexed binary max-heaps (one per score)
// with rank-indexed position tables, so MaxIcfEdge/MaxIcpEdge peek in
// O(1) and IncreaseIcf/IncreaseIcp/RemoveEdge re-heapify in O(log n).
// Ties between equal scores resolve to the lowest rank id, which makes
// every extraction deterministic.
//
// MergeEdges implements bundling: when two cliques merge, the parallel
// edges running to one outside clique collapse into a single entry whose
// scores are the sums of the members'. Member ranks forward to the
// representative, so later updates addressed to a bundled edge land on
// the live entry.
package edgeheap
