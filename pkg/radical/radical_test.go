package radical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := Load("testdata/radicals.txt")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	water, ok := c.ByNumber(85)
	require.True(t, ok)
	assert.Equal(t, "水", water.Name())
	assert.Equal(t, []string{"海", "湖"}, water.Examples())

	byName, ok := c.ByName("人")
	require.True(t, ok)
	assert.Equal(t, 9, byName.Number())
	assert.True(t, byName.Equal(byName))
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.txt")
	assert.Error(t, err)
}
