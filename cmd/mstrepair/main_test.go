package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	registerFlags(fs)
	require.NoError(t, fs.Parse(args))

	return fs
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "kruskal", cfg.MST.Method)
	assert.Equal(t, "dfs", cfg.MST.Traversal)
	assert.Equal(t, "sample", cfg.Graph.Kind)
	assert.Equal(t, int64(20), cfg.Graph.MaxWeight)
	assert.Equal(t, -1, cfg.Remove.Index)
	assert.Equal(t, int64(3), cfg.Remove.Weight)
	assert.False(t, cfg.Metrics)
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "mstrepair.yaml")
	require.NoError(t, os.WriteFile(file, []byte("log:\n  level: debug\nmst:\n  method: prim\nremove:\n  weight: 5\n"), 0o600))
	t.Setenv("MSTREPAIR_REMOVE_WEIGHT", "6")

	cfg, err := loadConfig(newFlags(t, "--config", file, "--log-level", "warn"))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level, "flag beats file")
	assert.Equal(t, "prim", cfg.MST.Method, "file beats default")
	assert.Equal(t, int64(6), cfg.Remove.Weight, "env beats file")
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := loadConfig(newFlags(t, "--method", "boruvka"))
	assert.ErrorContains(t, err, "invalid config")

	_, err = loadConfig(newFlags(t, "--log-format", "xml"))
	assert.ErrorContains(t, err, "invalid config")

	_, err = loadConfig(newFlags(t, "--graph", "random", "--vertices", "1"))
	assert.ErrorContains(t, err, "invalid config")

	_, err = loadConfig(newFlags(t, "--traversal", "random"))
	assert.ErrorContains(t, err, "invalid config")

	_, err = loadConfig(newFlags(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	assert.ErrorContains(t, err, "read config")
}

func TestRootCommand_Default(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--metrics"})

	require.NoError(t, cmd.Execute())
	out := stdout.String()

	assert.Contains(t, out, "INITIAL MST:\n  (0-1: 2)\n  (1-2: 3)\n  (1-4: 5)\n  (0-3: 6)\n  Total weight: 16\n  Number of edges: 4\n")
	assert.Contains(t, out, "Removed edge: (1-2: 3)")
	assert.Contains(t, out, "Component 1: {0, 1, 3, 4}")
	assert.Contains(t, out, "Component 2: {2}")
	assert.Contains(t, out, "Added replacement edge: (2-4: 7)")
	assert.Contains(t, out, "Total weight: 20")
	assert.Contains(t, out, "mstrepair_tree_weight 20")
	assert.Contains(t, out, `mstrepair_candidates_rejected_total{reason="removed"} 1`)

	assert.Contains(t, stderr.String(), "best replacement edge")
}

func TestRootCommand_ByIndexAndPrim(t *testing.T) {
	var stdout bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--method", "prim", "--remove-index", "3", "--log-format", "json", "--traversal", "bfs"})

	require.NoError(t, cmd.Execute())
	// Prim from 0 discovers (0-3: 6) last; its replacement is (1-3: 8).
	assert.Contains(t, stdout.String(), "Removed edge: (0-3: 6)")
	assert.Contains(t, stdout.String(), "Added replacement edge: (1-3: 8)")
	assert.Contains(t, stdout.String(), "Total weight: 18")
}

func TestRootCommand_RandomGraph(t *testing.T) {
	var stdout bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--graph", "random", "--vertices", "12", "--extra", "10", "--seed", "5", "--remove-index", "0"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "INITIAL MST:")
	assert.Contains(t, stdout.String(), "Number of edges: 11")
	assert.Contains(t, stdout.String(), "Removed edge:")
}

func TestRootCommand_Errors(t *testing.T) {
	for _, args := range [][]string{
		{"--remove-weight", "4"},
		{"--remove-index", "9"},
		{"--root", "7", "--method", "prim"},
	} {
		cmd := newRootCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		assert.Error(t, cmd.Execute(), "args %v", args)
	}
}
