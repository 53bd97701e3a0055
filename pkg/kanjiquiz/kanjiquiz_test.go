package kanjiquiz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anzumura/kanjitools-go/pkg/group"
	"github.com/anzumura/kanjitools-go/pkg/kanji"
)

func loadTestData(t *testing.T) (*kanji.Data, *group.Data) {
	t.Helper()
	k, err := kanji.Load(kanji.Paths{Dir: "../kanji/testdata"})
	require.NoError(t, err)
	g, err := group.Load("../group/testdata/meaning-groups.txt",
		"../group/testdata/pattern-groups.txt", k)
	require.NoError(t, err)
	return k, g
}

func TestNewConfigValidatesChoiceCount(t *testing.T) {
	_, err := NewConfig(Jouyou, FromBeginning, 1, false, true, KanjiToReading)
	require.Error(t, err)

	_, err = NewConfig(Jouyou, FromBeginning, 10, false, true, KanjiToReading)
	require.Error(t, err)

	cfg, err := NewConfig(Jouyou, FromBeginning, 4, false, true, KanjiToReading)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.ChoiceCount)
}

func TestIncludeMemberRespectsLevel(t *testing.T) {
	k, _ := loadTestData(t)
	jouyou, ok := k.FindByName("一")
	require.True(t, ok)
	assert.True(t, IncludeMember(jouyou, Jouyou))

	jinmei, ok := k.FindByName("蔋")
	require.True(t, ok)
	assert.False(t, IncludeMember(jinmei, Jouyou))
}

func TestOrderKanjiFromEnd(t *testing.T) {
	k, _ := loadTestData(t)
	a, _ := k.FindByName("一")
	b, _ := k.FindByName("人")
	list := []*kanji.Kanji{a, b}
	orderKanji(list, FromEnd, nil)
	assert.Equal(t, b, list[0])
	assert.Equal(t, a, list[1])
}

func TestSelectGroupMembersFiltersByMemberType(t *testing.T) {
	_, g := loadTestData(t)
	groups := g.MeaningGroups()
	require.NotEmpty(t, groups)
	cfg, err := NewConfig(Jouyou, FromBeginning, 4, false, false, KanjiToReading)
	require.NoError(t, err)
	members := SelectGroupMembers(&groups[0], cfg, rand.New(rand.NewSource(1)))
	for _, m := range members {
		assert.True(t, IncludeMember(m, Jouyou))
	}
}

func TestBuildListQuestionPlacesCorrectAnswer(t *testing.T) {
	k, _ := loadTestData(t)
	one, _ := k.FindByName("一")
	person, _ := k.FindByName("人")
	water, _ := k.FindByName("水")
	pool := []*kanji.Kanji{one, person, water}

	cfg, err := NewConfig(Jouyou, FromBeginning, 2, false, false, KanjiToReading)
	require.NoError(t, err)
	q, err := BuildListQuestion(one, pool, cfg, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, one, q.Choices[q.CorrectIndex])
	assert.Len(t, q.Choices, 2)
}

func TestBuildListQuestionErrorsWhenPoolTooSmall(t *testing.T) {
	k, _ := loadTestData(t)
	one, _ := k.FindByName("一")
	pool := []*kanji.Kanji{one}

	cfg, err := NewConfig(Jouyou, FromBeginning, 4, false, false, KanjiToReading)
	require.NoError(t, err)
	_, err = BuildListQuestion(one, pool, cfg, rand.New(rand.NewSource(1)))
	require.Error(t, err)
}
