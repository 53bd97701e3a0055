package kanji

import (
	"bytes"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestData(t *testing.T) *Data {
	t.Helper()
	d, err := Load(Paths{Dir: "testdata"})
	require.NoError(t, err)
	return d
}

func TestLoadBuildsJouyouAndDerivedTypes(t *testing.T) {
	d := loadTestData(t)

	k, ok := d.FindByName("一")
	require.True(t, ok)
	assert.Equal(t, Jouyou, k.Type)
	assert.Equal(t, G1, k.Grade())
	assert.Equal(t, "one", k.Meaning())

	jinmei, ok := d.FindByName("蔋")
	require.True(t, ok)
	assert.Equal(t, Jinmei, jinmei.Type)
	assert.Equal(t, Names, jinmei.Reason())

	extra, ok := d.FindByName("麻")
	require.True(t, ok)
	assert.Equal(t, Extra, extra.Type)
}

func TestUcdSweepAddsUnclaimedEntries(t *testing.T) {
	d := loadTestData(t)
	// every UCD entry must have a Kanji after load: 5 entries loaded above,
	// all 5 names from ucd.txt appear somewhere in the catalog.
	for _, name := range []string{"一", "人", "水", "蔋", "麻"} {
		_, ok := d.FindByName(name)
		assert.True(t, ok, "missing %s", name)
	}
}

func TestTypeListAndOrdering(t *testing.T) {
	d := loadTestData(t)
	jouyou := d.TypeList(Jouyou)
	assert.Len(t, jouyou, 3)

	sort.Slice(jouyou, func(i, j int) bool { return OrderByStrokes(jouyou[i], jouyou[j]) })
	assert.Equal(t, "一", jouyou[0].Name)
	assert.Equal(t, "水", jouyou[2].Name)

	names := make([]string, len(jouyou))
	for i, k := range jouyou {
		names[i] = k.Name
	}
	if diff := cmp.Diff([]string{"一", "人", "水"}, names); diff != "" {
		t.Errorf("stroke order mismatch (-want +got):\n%s", diff)
	}
}

func TestQualifiedName(t *testing.T) {
	d := loadTestData(t)
	k, _ := d.FindByName("一")
	assert.Equal(t, "一.", k.QualifiedName())

	extra, _ := d.FindByName("麻")
	assert.Equal(t, "麻+", extra.QualifiedName())
}

func TestCheckStrokesFindsNoMismatchesInConsistentData(t *testing.T) {
	d := loadTestData(t)
	var buf bytes.Buffer
	n := d.CheckStrokes(&buf)
	assert.Equal(t, 0, n)
	assert.Empty(t, buf.String())
}

func TestLoadFailsWhenDataDirMissing(t *testing.T) {
	_, err := Load(Paths{Dir: "testdata-does-not-exist"})
	assert.Error(t, err)
}
