package columnfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameNameSameNumber(t *testing.T) {
	a := NewColumn("strokes")
	b := NewColumn("strokes")
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Number(), b.Number())
	c := NewColumn("jouyou")
	assert.False(t, a.Equal(c))
}

func TestReadRows(t *testing.T) {
	name := NewColumn("name")
	strokes := NewColumn("strokes")
	jouyou := NewColumn("jouyou")
	code := NewColumn("code")

	cf, err := Open("testdata/sample.txt", []Column{name, strokes, jouyou, code}, 0)
	require.NoError(t, err)

	ok, err := cf.NextRow()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, cf.CurrentRow())
	assert.Equal(t, "Kyō", cf.Get(name))
	n, err := cf.GetU64(strokes, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), n)
	b, err := cf.GetBool(jouyou)
	require.NoError(t, err)
	assert.True(t, b)
	r, err := cf.GetChar32(code)
	require.NoError(t, err)
	assert.Equal(t, '京', r)

	ok, err = cf.NextRow()
	require.NoError(t, err)
	require.True(t, ok)
	b, err = cf.GetBool(jouyou)
	require.NoError(t, err)
	assert.False(t, b)

	ok, err = cf.NextRow()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMissingHeaderColumnErrors(t *testing.T) {
	_, err := Open("testdata/sample.txt", []Column{NewColumn("not-there")}, 0)
	assert.Error(t, err)
}

func TestU64MaxValueErrors(t *testing.T) {
	strokes := NewColumn("strokes")
	cf, err := Open("testdata/sample.txt", []Column{NewColumn("name"), strokes, NewColumn("jouyou"), NewColumn("code")}, 0)
	require.NoError(t, err)
	ok, err := cf.NextRow()
	require.NoError(t, err)
	require.True(t, ok)
	_, err = cf.GetU64(strokes, 3)
	assert.Error(t, err)
}
