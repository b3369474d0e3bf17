package main

import (
	"context"
	"strings"
	"testing"

	"github.com/fine-structures/fliptubes/gotubes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSearch(t *testing.T) {
	source := writeFile(t, "graphs.txt", `[(1, 2), (2, 3)]

[(1, 2), (3, 4)]
[(1, 2)]
[(3, 2), (2, 1)]
`)

	cfg := DefaultRunConfig()
	require.NoError(t, cfg.ApplyArgs([]string{source, "p", "3", "y"}))
	cfg.Seed = 7
	cfg.DropDupes = true
	require.NoError(t, cfg.Validate())

	out := strings.Builder{}
	allFound, err := runSearch(context.Background(), &cfg, &out)
	require.NoError(t, err)
	require.True(t, allFound)

	text := out.String()
	assert.Contains(t, text, "Trying graph: 1/4")
	assert.Contains(t, text, "[[1, 2], [2, 3]]")
	assert.Contains(t, text, "Skipping graph 2/4")
	assert.Contains(t, text, "Trying graph: 3/4")
	assert.NotContains(t, text, "Trying graph: 4/4") // duplicate of graph 1
	assert.Equal(t, 2, strings.Count(text, "Found one!:"))
	assert.Contains(t, text, "All these graphs have facet hamiltonian paths/cycles")

	// talk prints each tubing of the single edge's walk
	assert.True(t, strings.Contains(text, "[[1]]\n[[2]]\n") || strings.Contains(text, "[[2]]\n[[1]]\n"))
}

func TestRunSearchBadSource(t *testing.T) {
	cfg := DefaultRunConfig()
	cfg.Tries = 1

	cfg.Source = writeFile(t, "graphs.txt", "[(1, 2)]\n[(1, x)]\n")
	_, err := runSearch(context.Background(), &cfg, &strings.Builder{})
	require.ErrorIs(t, err, gotubes.ErrBadEncoding)
	require.Contains(t, err.Error(), "line 2")

	cfg.Source = cfg.Source + ".missing"
	_, err = runSearch(context.Background(), &cfg, &strings.Builder{})
	require.Error(t, err)
}

func TestSearchCmdNotAllFound(t *testing.T) {
	// A lone vertex (self-loop) is connected but has no tubings, so every trial gets stuck.
	source := writeFile(t, "graphs.txt", `[(1, 2)]
[(1, 1)]
`)

	out := strings.Builder{}
	cmd := newSearchCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{source, "c", "1", "--seed", "3"})
	err := cmd.ExecuteContext(context.Background())
	require.ErrorIs(t, err, errNotAllFound)

	text := out.String()
	assert.Contains(t, text, "Trying graph: 1/2")
	assert.Equal(t, 1, strings.Count(text, "Found one!:"))
	assert.Contains(t, text, "Trying graph: 2/2")
	assert.Contains(t, text, "None found in 1 attempts.")
	assert.Contains(t, text, "Facet hamiltonian paths/cycles not found for all graphs")
	assert.NotContains(t, text, "All these graphs have")
}
