// Package cluedit solves weighted cluster editing: partition the vertices
// of an edge-weighted graph into disjoint cliques so that the total
// absolute weight of edge modifications (inserting missing intra-clique
// edges, deleting present inter-clique edges) stays small.
//
// The repository is organized into three subpackages plus a CLI:
//
//	editgraph/  — edge identity, tagged weight model (Real / Zero /
//	              Permanent / Forbidden), and the dynamic sparse graph with
//	              union-find clique classes and forbidden-neighbor sets
//	edgeheap/   — the induced-cost priority structure: per-edge (icf, icp)
//	              scores in a pair of indexed max-heaps with incremental
//	              updates, removal and bundling
//	editing/    — the greedy induced-cost heuristic: preprocessing,
//	              implication propagation, optional edge bundling, and
//	              cluster extraction
//	cmd/cluedit — command-line front end: edge-list input, YAML/env
//	              configuration, textual or JSON cluster output
//
// Determinism is a hard guarantee: the same input and options always yield
// the same clustering, byte for byte. Ties between equally scored edges
// resolve to the lowest edge rank; all neighbor enumerations are in
// ascending vertex order.
//
//	go get github.com/katalvlaran/cluedit
package cluedit
