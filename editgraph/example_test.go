// File: editgraph/example_test.go
package editgraph_test

import (
	"fmt"

	"github.com/katalvlaran/cluedit/editgraph"
)

// ExampleGraph demonstrates the logical edge states: committing an edge
// permanent merges clique classes, so never-materialized pairs inside the
// class read as permanent.
func ExampleGraph() {
	g := editgraph.New(4)
	_ = g.AddEdge(0, 1, editgraph.Real(2))
	_ = g.AddEdge(1, 2, editgraph.Real(1))

	g.SetPermanent(editgraph.NewEdge(0, 1))
	g.SetPermanent(editgraph.NewEdge(1, 2))
	g.SetForbidden(editgraph.NewEdge(0, 3))

	fmt.Println("clique of 2:", g.CliqueOf(2))
	fmt.Println("(0,2) weight:", g.Weight(editgraph.NewEdge(0, 2)))
	fmt.Println("forbidden neighbors of 0:", g.ForbiddenNeighbors(0))

	// Output:
	// clique of 2: [0 1 2]
	// (0,2) weight: permanent
	// forbidden neighbors of 0: [3]
}
