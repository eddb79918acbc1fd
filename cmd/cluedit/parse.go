package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/cluedit/editgraph"
)

// parseGraph reads the edge-list format:
//
//	# comment
//	<number of vertices>
//	<u> <v> <weight>
//
// where weight is a finite float, "p" (permanent) or "f" (forbidden).
// Blank lines and "#" comments are ignored. Vertices are 0-based.
func parseGraph(r io.Reader) (*editgraph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		g      *editgraph.Graph
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if g == nil {
			if len(fields) != 1 {
				return nil, fmt.Errorf("line %d: expected vertex count, got %q", lineNo, line)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("line %d: invalid vertex count %q", lineNo, fields[0])
			}
			g = editgraph.New(n)
			continue
		}

		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected \"u v weight\", got %q", lineNo, line)
		}
		u, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid vertex %q", lineNo, fields[0])
		}
		v, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid vertex %q", lineNo, fields[1])
		}
		w, err := parseWeight(fields[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := g.AddEdge(editgraph.NodeID(u), editgraph.NodeID(v), w); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("input is empty: missing vertex count")
	}
	return g, nil
}

// parseWeight maps the weight column onto the tagged weight model.
func parseWeight(s string) (editgraph.Weight, error) {
	switch s {
	case "p", "P":
		return editgraph.PermanentWeight, nil
	case "f", "F":
		return editgraph.ForbiddenWeight, nil
	}
	w, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
		return editgraph.Weight{}, fmt.Errorf("invalid weight %q", s)
	}
	return editgraph.Real(w), nil
}
