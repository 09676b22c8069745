package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempTrace(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunAnalyze(t *testing.T) {
	path := writeTempTrace(t, "# format: v1.0.0\nW,0,4096\nR,0,4096\nR,0,4096\n")

	var buf bytes.Buffer
	require.NoError(t, runAnalyze(path, false, false, &buf))

	out := buf.String()
	assert.Contains(t, out, "[Read BD]\tIndependent\tDep_Short\tDep_Long")
	assert.Contains(t, out, "[Write BD]\tIndependent\tDep_Short\tDep_Long")
	assert.Contains(t, out, "[HotWrite]")
	assert.Contains(t, out, "Total: 3 requests (2 reads, 1 writes)")
}

func TestRunAnalyzeWithCheck(t *testing.T) {
	path := writeTempTrace(t, "W,0,8\nR,0,8\n")

	var buf bytes.Buffer
	require.NoError(t, runAnalyze(path, true, false, &buf))
	assert.Contains(t, buf.String(), "Total: 2 requests")
}

func TestRunAnalyzeMissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := runAnalyze(filepath.Join(t.TempDir(), "nope.csv"), false, false, &buf)
	require.Error(t, err)
	assert.Zero(t, buf.Len(), "no report output on failure")
}

func TestRunAnalyzeMalformedTrace(t *testing.T) {
	path := writeTempTrace(t, "W,0,4096\nbogus line\n")

	var buf bytes.Buffer
	err := runAnalyze(path, false, false, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ":2:")
}
