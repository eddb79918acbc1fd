// Package editing implements the induced-cost heuristic for weighted
// cluster editing.
//
// Given an editgraph.Graph whose edges carry Real, Permanent or Forbidden
// weights, the solver produces a partition of the vertices into disjoint
// cliques together with the total modification cost: every negative-weight
// edge forced inside a clique and every positive-weight edge cut between
// cliques charges its absolute weight.
//
// The heuristic proceeds in three stages:
//
//  1. Preprocessing — pre-declared permanent edges are closed
//     transitively; a pair derived both permanent and forbidden makes the
//     instance infeasible (cost +Inf, no clusters). Cliques with a
//     forbidden edge between them are disconnected entirely.
//  2. Greedy loop — repeatedly take the edge whose decision is most
//     constrained: compare the best icf against the best icp score from
//     the edge heap and commit that edge to permanent (icf ≥ icp, ties to
//     permanent) or forbidden. Each commit propagates its implications —
//     cross pairs of merged cliques become permanent, pairs conflicting
//     with a forbidden neighbor become forbidden — and replays the triple
//     updates on every adjacent undecided edge. With Options.BundleEdges
//     the parallel edges from a merged clique to one outside clique
//     collapse into a single heap entry.
//  3. Extraction — the permanent-closure classes, walked in ascending
//     vertex order, become the output clusters.
//
// The solver is deterministic: identical graph and options yield an
// identical Solution. It is single-threaded and owns both graph and heap
// for the duration of Solve.
package editing
