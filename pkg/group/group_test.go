package group

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anzumura/kanjitools-go/pkg/kanji"
)

func loadTestKanji(t *testing.T) *kanji.Data {
	t.Helper()
	k, err := kanji.Load(kanji.Paths{Dir: "../kanji/testdata"})
	require.NoError(t, err)
	return k
}

func TestLoadMeaningAndPatternGroups(t *testing.T) {
	k := loadTestKanji(t)
	d, err := Load("testdata/meaning-groups.txt", "testdata/pattern-groups.txt", k)
	require.NoError(t, err)

	assert.Len(t, d.MeaningGroups(), 1)
	assert.Len(t, d.PatternGroups(), 3)

	people := d.MeaningGroupsFor("人")
	require.Len(t, people, 1)
	assert.Equal(t, "people", people[0].Name)
}

func TestFamilyPrependsPrefix(t *testing.T) {
	k := loadTestKanji(t)
	d, err := Load("testdata/meaning-groups.txt", "testdata/pattern-groups.txt", k)
	require.NoError(t, err)

	family := d.PatternGroups()[0]
	assert.Equal(t, Family, family.PatternType)
	require.Len(t, family.Members, 2)
	assert.Equal(t, "一", family.Members[0].Name)
}

func TestPeerClassification(t *testing.T) {
	k := loadTestKanji(t)
	d, err := Load("testdata/meaning-groups.txt", "testdata/pattern-groups.txt", k)
	require.NoError(t, err)
	assert.Equal(t, Peer, d.PatternGroups()[1].PatternType)
}

func TestDuplicatePatternMembershipReportsFirstWins(t *testing.T) {
	k := loadTestKanji(t)
	d, err := Load("testdata/meaning-groups.txt", "testdata/pattern-groups.txt", k)
	require.NoError(t, err)

	g, ok := d.PatternGroupFor("水")
	require.True(t, ok)
	assert.Equal(t, "一：人", g.Name)
	assert.NotEmpty(t, d.Warnings)
}
