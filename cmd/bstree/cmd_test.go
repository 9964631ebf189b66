package bstree

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seipan/bstree/internal/bench"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	log.SetOutput(io.Discard)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestPrintCommand(t *testing.T) {
	out, err := run(t, "print", "5", "8", "3", "6", "7", "9", "4", "2", "1", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "keys: [1 2 3 4 5 6 7 8 9]")
	assert.Contains(t, out, "size: 9")
	assert.Contains(t, out, "external path length: 10")
	assert.Contains(t, out, "[R]  8: 8")
}

func TestPrintCommandRejectsBadKey(t *testing.T) {
	_, err := run(t, "print", "1", "two")
	assert.Error(t, err)
}

func TestBenchCommand(t *testing.T) {
	out, err := run(t, "bench", "-N", "64", "--seed", "3", "--rounds", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "keys: 64")
	assert.Contains(t, out, "visited/op")
	assert.Contains(t, out, "clone")
}

func TestBenchConfigFileAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.ini")
	require.NoError(t, os.WriteFile(path, []byte("[bench]\nkeys = 40\nsorted = true\nrounds = 2\n"), 0o644))

	cmd := &cobra.Command{}
	addBenchFlags(cmd)
	require.NoError(t, cmd.Flags().Set("config", path))
	require.NoError(t, cmd.Flags().Set("rounds", "3"))

	cfg, err := benchConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Keys)
	assert.True(t, cfg.Sorted)
	assert.Equal(t, 3, cfg.Rounds)
	assert.Equal(t, bench.DefaultConfig().Max, cfg.Max)
}

func TestBenchConfigMissingFile(t *testing.T) {
	cmd := &cobra.Command{}
	addBenchFlags(cmd)
	require.NoError(t, cmd.Flags().Set("config", filepath.Join(t.TempDir(), "missing.ini")))

	_, err := benchConfig(cmd)
	assert.Error(t, err)
}
