package ucd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAndFind(t *testing.T) {
	d, err := Load("testdata/ucd.txt")
	require.NoError(t, err)
	assert.Equal(t, 3, d.Len())

	e, ok := d.Find("京")
	require.True(t, ok)
	assert.Equal(t, rune(0x4eac), e.Code)
	assert.True(t, e.Joyo)
	assert.Equal(t, 8, e.Radical)

	compat, ok := d.Find("侮")
	require.True(t, ok)
	assert.Equal(t, rune(0xfa30), compat.Code)
	assert.True(t, compat.HasLinks())
	assert.Equal(t, Compatibility, compat.LinkType)
}

func TestCodeAndName(t *testing.T) {
	d, err := Load("testdata/ucd.txt")
	require.NoError(t, err)
	e, _ := d.Find("京")
	assert.Equal(t, "[4EAC] 京", e.CodeAndName())
}

func TestGetReadingsAsKana(t *testing.T) {
	d, err := Load("testdata/ucd.txt")
	require.NoError(t, err)
	e, _ := d.Find("京")
	got := GetReadingsAsKana(e)
	assert.Equal(t, "キョウ,ケイ,みやこ", got)
}

func TestLinkTypeReadingOrder(t *testing.T) {
	assert.True(t, CompatibilityR.IsReadingLink())
	assert.False(t, Compatibility.IsReadingLink())
	assert.Less(t, int(TraditionalR), int(Compatibility))
}
