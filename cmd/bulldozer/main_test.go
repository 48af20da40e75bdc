package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Version(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "1.0.0")
}

func TestRootCmd_RejectsContradictoryFlags(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--json", "--markdown", t.TempDir()})

	err := cmd.Execute()

	require.Error(t, err)
	var reported reportedError
	assert.NotErrorAs(t, err, &reported)
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"-c", filepath.Join(t.TempDir(), "none.yaml"), t.TempDir()})

	assert.ErrorIs(t, cmd.Execute(), os.ErrNotExist)
}

func TestRootCmd_ReportOnlyRun(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("dup"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), []byte("dup"), 0o644))
	report := filepath.Join(t.TempDir(), "report.md")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--no-delete", "-q", "--markdown", "-o", report, root})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), filepath.Join(root, "a.txt")+" (keep)")
	assert.FileExists(t, filepath.Join(root, "b.txt"))
}
