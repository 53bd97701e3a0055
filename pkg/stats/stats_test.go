package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFileCountsCategories(t *testing.T) {
	c := NewCount(nil)
	require.NoError(t, c.AddPath("testdata/sample.txt", false))
	assert.Equal(t, 1, c.Files)
	assert.Greater(t, c.CharCount(CommonKanji), 0)
	assert.Greater(t, c.CharCount(Hiragana), 0)
	assert.Greater(t, c.CharCount(Letter), 0)
}

func TestFuriganaStripWithRegex(t *testing.T) {
	withStrip := NewCount(FuriganaPattern)
	require.NoError(t, withStrip.AddPath("testdata/sample.txt", false))
	assert.Equal(t, 1, withStrip.Replacements)

	withoutStrip := NewCount(nil)
	require.NoError(t, withoutStrip.AddPath("testdata/sample.txt", false))

	assert.Less(t, withStrip.CharCount(Hiragana), withoutStrip.CharCount(Hiragana))
}

func TestDirectoryRecursion(t *testing.T) {
	shallow := NewCount(nil)
	require.NoError(t, shallow.AddPath("testdata", false))

	deep := NewCount(nil)
	require.NoError(t, deep.AddPath("testdata", true))
	assert.Greater(t, deep.Files, shallow.Files)
}

func TestFuriganaSpanningLines(t *testing.T) {
	c := NewCount(FuriganaPattern)
	require.NoError(t, c.AddPath("testdata/spanning.txt", false))
	assert.Equal(t, 1, c.Replacements)
}

func TestTagCounts(t *testing.T) {
	c := NewCount(nil)
	c.Tag = "sample"
	require.NoError(t, c.AddPath("testdata/sample.txt", false))
	assert.Equal(t, c.CharCount(CommonKanji), c.TagCount("sample", CommonKanji))
}
