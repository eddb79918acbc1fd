// Package editgraph — core identifiers, the tagged weight model and
// sentinel errors.
package editgraph

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for graph construction.
var (
	// ErrNodeRange indicates a vertex id outside [0, NumNodes).
	ErrNodeRange = errors.New("editgraph: node id out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("editgraph: self-loop not allowed")

	// ErrDuplicateEdge indicates a pair that was already materialized.
	ErrDuplicateEdge = errors.New("editgraph: duplicate edge")

	// ErrBadWeight indicates a NaN edge weight.
	ErrBadWeight = errors.New("editgraph: weight must not be NaN")
)

// NodeID is a dense vertex identifier in [0, NumNodes).
type NodeID uint32

// RankID indexes a materialized edge into the graph's dense storage.
// Rank ids are assigned in insertion order starting at 1.
type RankID int

// RankNone reports a non-materialized (implicit zero) pair.
const RankNone RankID = 0

// Edge is an unordered pair of distinct vertices in canonical form (U < V).
type Edge struct {
	U, V NodeID
}

// InvalidEdge is the zero Edge; no valid edge compares equal to it.
var InvalidEdge = Edge{}

// NewEdge canonicalizes the pair (u, v) so that U < V.
func NewEdge(u, v NodeID) Edge {
	if u > v {
		u, v = v, u
	}
	return Edge{U: u, V: v}
}

// String renders the edge as "(u,v)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d)", e.U, e.V)
}

// weightClass discriminates the four weight variants.
type weightClass uint8

const (
	classZero weightClass = iota
	classReal
	classPermanent
	classForbidden
)

// Weight is the tagged edge weight: Real(w), Zero, Permanent or Forbidden.
// The zero value is Zero. Sentinel states are explicit variants rather
// than ±Inf floats so that stored weights stay total under comparison and
// NaN can never leak in; Float exposes the uniform numeric reading used
// by induced-cost arithmetic.
type Weight struct {
	class weightClass
	value float64
}

// Weight variant singletons.
var (
	// ZeroWeight is the implicit weight of a non-materialized pair.
	ZeroWeight = Weight{}

	// PermanentWeight marks an edge whose endpoints must share a clique.
	PermanentWeight = Weight{class: classPermanent}

	// ForbiddenWeight marks an edge whose endpoints must not share a clique.
	ForbiddenWeight = Weight{class: classForbidden}
)

// Real constructs a finite weight. The caller must not pass NaN; graph
// construction rejects it with ErrBadWeight.
func Real(w float64) Weight {
	return Weight{class: classReal, value: w}
}

// Float returns the numeric reading of the weight: the finite value for
// Real, 0 for Zero, +Inf for Permanent and -Inf for Forbidden.
func (w Weight) Float() float64 {
	switch w.class {
	case classPermanent:
		return math.Inf(1)
	case classForbidden:
		return math.Inf(-1)
	default:
		return w.value
	}
}

// IsPermanent reports whether the weight is the Permanent sentinel.
func (w Weight) IsPermanent() bool { return w.class == classPermanent }

// IsForbidden reports whether the weight is the Forbidden sentinel.
func (w Weight) IsForbidden() bool { return w.class == classForbidden }

// IsZero reports whether the weight is the implicit zero.
func (w Weight) IsZero() bool { return w.class == classZero }

// Decided reports whether the weight is one of the terminal sentinels.
func (w Weight) Decided() bool {
	return w.class == classPermanent || w.class == classForbidden
}

// String renders the weight variant for diagnostics.
func (w Weight) String() string {
	switch w.class {
	case classPermanent:
		return "permanent"
	case classForbidden:
		return "forbidden"
	case classZero:
		return "zero"
	default:
		return fmt.Sprintf("%g", w.value)
	}
}
