// Package kanjiquiz picks which Kanji to ask about for a list-based or
// group-based quiz and builds the multiple-choice questions. It is pure
// catalog logic: the interactive prompting itself belongs to cmd/kanjiquiz
// and pkg/term.Choice.
package kanjiquiz

import (
	"math/rand"

	"github.com/anzumura/kanjitools-go/internal/errs"
	"github.com/anzumura/kanjitools-go/pkg/group"
	"github.com/anzumura/kanjitools-go/pkg/kanji"
)

// MemberType sets how far down the "well known" spectrum a quiz reaches:
// each level also includes everything the previous level includes.
type MemberType int

const (
	Jouyou MemberType = iota
	JLPT
	Frequency
	All
)

func (t MemberType) String() string {
	switch t {
	case Jouyou:
		return "Jouyou"
	case JLPT:
		return "JLPT"
	case Frequency:
		return "Frequency"
	case All:
		return "All"
	default:
		return "Unknown"
	}
}

// QuestionOrder controls the order questions are presented in.
type QuestionOrder int

const (
	FromBeginning QuestionOrder = iota
	FromEnd
	Random
	NotAssigned
)

// Style picks which side of a list-quiz question is shown versus guessed.
type Style int

const (
	KanjiToReading Style = iota
	ReadingToKanji
)

const (
	minChoiceCount = 2
	maxChoiceCount = 9
)

// Config holds the knobs a quiz launcher exposes: how deep into the
// less-common Kanji to reach, what order to ask questions in, how many
// choices each question offers, and whether to show English meanings.
type Config struct {
	Member       MemberType
	Order        QuestionOrder
	ChoiceCount  int
	ShowMeanings bool
	Randomize    bool
	Style        Style
}

// NewConfig validates choiceCount is between 2 and 9 inclusive before
// returning a Config; every other field has no invalid values.
func NewConfig(member MemberType, order QuestionOrder, choiceCount int,
	showMeanings, randomize bool, style Style,
) (*Config, error) {
	if choiceCount < minChoiceCount || choiceCount > maxChoiceCount {
		return nil, errs.NewDomain(
			"quiz: choice count %d must be between %d and %d", choiceCount,
			minChoiceCount, maxChoiceCount)
	}
	return &Config{
		Member: member, Order: order, ChoiceCount: choiceCount,
		ShowMeanings: showMeanings, Randomize: randomize, Style: style,
	}, nil
}

// IncludeMember reports whether k belongs in a quiz configured at the given
// MemberType level: Jouyou level only includes Jouyou Kanji with a reading;
// JLPT additionally includes anything with an assigned JLPT level; Frequency
// additionally includes anything in the top frequency ranks; All includes
// every Kanji that has a reading.
func IncludeMember(k *kanji.Kanji, member MemberType) bool {
	if !k.HasReading() {
		return false
	}
	if k.Type == kanji.Jouyou {
		return true
	}
	if member > Jouyou && k.HasLevel() {
		return true
	}
	if member > JLPT && k.Frequency() > 0 {
		return true
	}
	return member > Frequency
}

// filterMembers returns the subset of members that IncludeMember accepts.
func filterMembers(members []*kanji.Kanji, cfg *Config) []*kanji.Kanji {
	result := make([]*kanji.Kanji, 0, len(members))
	for _, k := range members {
		if IncludeMember(k, cfg.Member) {
			result = append(result, k)
		}
	}
	return result
}

// orderKanji reorders list in place per order, using rnd for Random order.
func orderKanji(list []*kanji.Kanji, order QuestionOrder, rnd *rand.Rand) {
	switch order {
	case FromEnd:
		for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
			list[i], list[j] = list[j], list[i]
		}
	case Random:
		rnd.Shuffle(len(list), func(i, j int) { list[i], list[j] = list[j], list[i] })
	}
}

// SelectGroupMembers returns g's members filtered by cfg.Member and ordered
// per cfg.Order. Groups with fewer than 2 surviving members are not useful
// quiz questions; callers should skip them.
func SelectGroupMembers(g *group.Group, cfg *Config, rnd *rand.Rand) []*kanji.Kanji {
	members := filterMembers(g.Members, cfg)
	orderKanji(members, cfg.Order, rnd)
	return members
}

// SelectList filters and orders an arbitrary Kanji list (e.g. from a
// listfile.List resolved against a kanji.Data) the same way a group's
// members are selected.
func SelectList(list []*kanji.Kanji, cfg *Config, rnd *rand.Rand) []*kanji.Kanji {
	members := filterMembers(list, cfg)
	orderKanji(members, cfg.Order, rnd)
	return members
}

// ListQuestion is one multiple-choice question: Kanji is the Kanji asked
// about (shown or read out depending on cfg.Style), Choices holds ChoiceCount
// candidate answers in presentation order, and CorrectIndex is the index of
// the right one within Choices.
type ListQuestion struct {
	Kanji        *kanji.Kanji
	Choices      []*kanji.Kanji
	CorrectIndex int
}

// BuildListQuestion builds one ListQuestion for k, drawing its distractors
// from pool (which must contain k and at least cfg.ChoiceCount-1 others with
// a reading). The correct answer's position within Choices is randomized
// when cfg.Randomize is set, otherwise k is placed first.
func BuildListQuestion(k *kanji.Kanji, pool []*kanji.Kanji, cfg *Config, rnd *rand.Rand) (*ListQuestion, error) {
	candidates := make([]*kanji.Kanji, 0, len(pool))
	for _, o := range pool {
		if o != k && o.HasReading() {
			candidates = append(candidates, o)
		}
	}
	need := cfg.ChoiceCount - 1
	if len(candidates) < need {
		return nil, errs.NewDomain(
			"quiz: not enough distinct readings to build a %d-choice question for %s",
			cfg.ChoiceCount, k.Name)
	}
	if cfg.Randomize {
		rnd.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
	}
	choices := make([]*kanji.Kanji, cfg.ChoiceCount)
	copy(choices, candidates[:need])
	correct := 0
	if cfg.Randomize {
		correct = rnd.Intn(cfg.ChoiceCount)
	}
	for i := len(choices) - 1; i > correct; i-- {
		choices[i] = choices[i-1]
	}
	choices[correct] = k
	return &ListQuestion{Kanji: k, Choices: choices, CorrectIndex: correct}, nil
}
