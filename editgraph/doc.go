// Package editgraph provides the dynamic sparse graph underlying weighted
// cluster editing.
//
// A graph holds N vertices (dense ids 0..N-1) and a sparse set of weighted
// edges. Every edge is in one of four states:
//
//   - Real      — finite weight w; positive weights are evidence for the
//     edge, negative weights evidence against it.
//   - Zero      — not materialized; implicit weight 0.
//   - Permanent — the endpoints must share a clique (acts as +Inf).
//   - Forbidden — the endpoints must not share a clique (acts as -Inf).
//
// Materialized edges carry a stable RankID > 0 assigned in insertion
// order; RankNone (0) reports a non-materialized pair. Permanent closure
// is tracked by a union-find over vertices with per-component member
// lists, so CliqueOf enumerates a whole clique class from its member list
// (sorted on each call) without scanning every vertex. Forbidden pairs are
// tracked by per-vertex
// neighbor sets; transitive closure across clique classes is a solver
// responsibility, not a graph one.
//
// All enumerations (CliqueOf, ForbiddenNeighbors, UnprunedNeighbours)
// return vertices in ascending order so that downstream decisions are
// deterministic across runs.
//
// The graph is not safe for concurrent mutation; the solver owns it for
// the duration of a solve.
package editgraph
