package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cluedit/editgraph"
	"github.com/katalvlaran/cluedit/editing"
)

// TestLoadConfigDefaults verifies the built-in defaults with no sources.
func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	require.True(t, cfg.Bundle)
	require.False(t, cfg.Verbose)
	require.False(t, cfg.JSON)
}

// TestLoadConfigFile verifies that a YAML file overrides the defaults.
func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cluedit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bundle: false\njson: true\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.False(t, cfg.Bundle)
	require.False(t, cfg.Verbose)
	require.True(t, cfg.JSON)
}

// TestLoadConfigEnvOverridesFile verifies the env layer wins over the file.
func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cluedit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verbose: false\n"), 0o644))
	t.Setenv("CLUEDIT_VERBOSE", "true")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.True(t, cfg.Verbose)
}

// TestLoadConfigMissingFile reports unreadable config files.
func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

// TestWriteSolutionText pins the plain-text output format.
func TestWriteSolutionText(t *testing.T) {
	sol := editing.Solution{
		Cost:     1.5,
		Clusters: [][]editgraph.NodeID{{0, 1}, {2}},
	}
	var buf bytes.Buffer
	require.NoError(t, writeSolution(&buf, sol, false))
	require.Equal(t, "cost: 1.5\n0 1\n2\n", buf.String())
}

// TestWriteSolutionJSON pins the JSON shape, including the infeasible
// case where cost is omitted.
func TestWriteSolutionJSON(t *testing.T) {
	sol := editing.Solution{
		Cost:     2,
		Clusters: [][]editgraph.NodeID{{0, 1}},
	}
	var buf bytes.Buffer
	require.NoError(t, writeSolution(&buf, sol, true))
	require.JSONEq(t, `{"infeasible": false, "cost": 2, "clusters": [[0, 1]]}`, buf.String())

	buf.Reset()
	require.NoError(t, writeSolution(&buf, editing.Solution{Cost: math.Inf(1)}, true))
	require.JSONEq(t, `{"infeasible": true, "clusters": []}`, buf.String())
}

// TestWriteSolutionInfeasibleText pins the infeasible text output.
func TestWriteSolutionInfeasibleText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSolution(&buf, editing.Solution{Cost: math.Inf(1)}, false))
	require.Equal(t, "instance is infeasible\n", buf.String())
}
