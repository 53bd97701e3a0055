package listfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	l, err := Load("N5", "testdata/n5.txt")
	require.NoError(t, err)
	assert.Equal(t, 4, l.Len())
	assert.True(t, l.Contains("人"))
	assert.Equal(t, 0, l.Position("一"))
	assert.Equal(t, -1, l.Position("木"))
}

func TestSetsRejectsCrossFileDuplicate(t *testing.T) {
	n5, err := Load("N5", "testdata/n5.txt")
	require.NoError(t, err)
	n4, err := Load("N4", "testdata/n4.txt")
	require.NoError(t, err)

	s := NewSets()
	require.NoError(t, s.Add(n5))
	require.NoError(t, s.Add(n4))

	dup, err := Load("N3", "testdata/n5.txt")
	require.NoError(t, err)
	dup.Name = "N3"
	assert.Error(t, s.Add(dup))
}
