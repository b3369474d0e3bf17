package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fine-structures/fliptubes/gotubes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	pathname := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(pathname, []byte(body), 0644))
	return pathname
}

func TestLoadRunConfig(t *testing.T) {
	pathname := writeFile(t, "run.yaml", `
source: graphs.txt
mode: cycles
tries: 500
talk: true
workers: 3
seed: 42
drop_dupes: true
`)

	cfg := DefaultRunConfig()
	require.NoError(t, cfg.LoadFile(pathname))
	require.NoError(t, cfg.Validate())

	assert.Equal(t, RunConfig{
		Source:    "graphs.txt",
		Mode:      "cycles",
		Tries:     500,
		Talk:      true,
		Workers:   3,
		Seed:      42,
		DropDupes: true,
	}, cfg)

	opts, err := cfg.SearchOpts()
	require.NoError(t, err)
	assert.Equal(t, gotubes.Mode_Cycles, opts.Mode)
	assert.Equal(t, uint64(42), opts.Seed)
}

func TestLoadRunConfigUnknownKey(t *testing.T) {
	pathname := writeFile(t, "run.yaml", "sorce: graphs.txt\n")

	cfg := DefaultRunConfig()
	err := cfg.LoadFile(pathname)
	require.ErrorIs(t, err, gotubes.ErrBadConfig)
}

func TestRunConfigPrecedence(t *testing.T) {
	pathname := writeFile(t, "run.yaml", `
source: a.txt
mode: cycles
tries: 10
workers: 2
`)

	cmd := newSearchCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--workers", "7"}))

	cfg := DefaultRunConfig()
	require.NoError(t, cfg.LoadFile(pathname))
	require.NoError(t, cfg.ApplyArgs([]string{"b.txt", "p", "20"}))

	flags := RunConfig{Workers: 7, Seed: 99}
	applyFlags(&cfg, &flags, cmd)

	assert.Equal(t, "b.txt", cfg.Source)
	assert.Equal(t, "p", cfg.Mode)
	assert.Equal(t, 20, cfg.Tries)
	assert.Equal(t, 7, cfg.Workers)
	assert.Equal(t, uint64(0), cfg.Seed) // --seed not given
	assert.False(t, cfg.Talk)
}

func TestRunConfigValidate(t *testing.T) {
	cfg := DefaultRunConfig()
	require.ErrorIs(t, cfg.Validate(), gotubes.ErrBadConfig)

	require.NoError(t, cfg.ApplyArgs([]string{"g.txt", "q", "5"}))
	require.ErrorIs(t, cfg.Validate(), gotubes.ErrBadMode)

	require.ErrorIs(t, cfg.ApplyArgs([]string{"g.txt", "c", "many"}), gotubes.ErrBadTries)

	require.NoError(t, cfg.ApplyArgs([]string{"g.txt", "c", "0", "y"}))
	require.ErrorIs(t, cfg.Validate(), gotubes.ErrBadTries)
	require.True(t, cfg.Talk)
}
