package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSample(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte("日本語のテスト、ABC123。\n"), 0o644))
	return path
}

func TestCommandReportsCounts(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{writeSample(t)})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "--- raw")
	assert.Contains(t, out.String(), "CommonKanji")
}

func TestCommandWithFuriganaFlagAddsSecondPass(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--furigana", writeSample(t)})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "furigana-stripped")
}

func TestCommandRequiresAtLeastOnePath(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	require.Error(t, cmd.Execute())
}
