// Command cluedit runs the induced-cost cluster-editing heuristic over an
// edge-list file and prints the resulting clustering.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cluedit",
	Short: "Weighted cluster editing via the induced-cost heuristic",
	Long: `cluedit partitions the vertices of an edge-weighted graph into disjoint
cliques. Positive weights are evidence for keeping an edge, negative
weights for cutting it; "p" and "f" declare a pair permanent or
forbidden. The reported cost is the total absolute weight of the edge
modifications the partition implies.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
