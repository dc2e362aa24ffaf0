package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/tslocum/bgboard/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "bgboard.yaml")
	require.NoError(t, os.WriteFile(configPath, nil, 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"--config", configPath}, args...))
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestRenderCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.png")
	out := execute(t, "render", "--out", path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	assert.Contains(t, out, "phase: roll-or-double\n")
	assert.Contains(t, out, "controls: roll double resign\n")
	assert.Contains(t, out, "pips: 167 167\n")
}

func TestAffordancesCommand(t *testing.T) {
	snapshot := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(snapshot, []byte("turn: player\ncube:\n  value: 2\n  doubled_by: opponent\n"), 0o644))

	out := execute(t, "affordances", snapshot)
	assert.Contains(t, out, "phase: double-offered\n")
	assert.Contains(t, out, "instruction: Accept or reject the double\n")
	assert.Contains(t, out, "controls: accept reject beaver\n")
}

func TestPrintReportIdle(t *testing.T) {
	var out bytes.Buffer
	printReport(&out, board.Report{Info: "Score: 0-0"})
	assert.Equal(t, "phase: idle\ncontrols: \ninfo: Score: 0-0\npips: 0 0\n", out.String())
}
