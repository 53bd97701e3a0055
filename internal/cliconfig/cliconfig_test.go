package cliconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDataDirPrefersExplicitFlag(t *testing.T) {
	f := &Flags{Data: "/explicit/path"}
	dir, err := f.ResolveDataDir()
	require.NoError(t, err)
	assert.Equal(t, "/explicit/path", dir)
}

func TestResolveDataDirWalksUpwardFromCwd(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "data"), 0o755))
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	dir, ok := findUpward(nested)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "data"), dir)
}

func TestResolveDataDirFailsWhenNotFound(t *testing.T) {
	_, ok := findUpward(t.TempDir())
	assert.False(t, ok)
}

func TestLoggerLevelSelection(t *testing.T) {
	debug := (&Flags{Debug: true}).Logger()
	assert.Equal(t, zerolog.DebugLevel, debug.GetLevel())

	info := (&Flags{Info: true}).Logger()
	assert.Equal(t, zerolog.InfoLevel, info.GetLevel())

	quiet := (&Flags{}).Logger()
	assert.Equal(t, zerolog.WarnLevel, quiet.GetLevel())
}
