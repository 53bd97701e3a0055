package term

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplaySizeWideChars(t *testing.T) {
	assert.Equal(t, 1, DisplaySize("a"))
	assert.Equal(t, 4, DisplaySize("日本"))
}

func TestPadAndPadLeft(t *testing.T) {
	assert.Equal(t, "ab   ", Pad("ab", 5))
	assert.Equal(t, "   ab", PadLeft("ab", 5))
	assert.Equal(t, "abcde", Pad("abcde", 3))
}

func TestTableFprint(t *testing.T) {
	tbl := NewTable("Kanji", "Meaning")
	tbl.AddRow("一", "one")
	tbl.AddRow("人", "person")
	var buf bytes.Buffer
	tbl.Fprint(&buf)
	out := buf.String()
	assert.Contains(t, out, "Kanji")
	assert.Contains(t, out, "one")
	assert.Contains(t, out, "person")
}

func TestTableHeaderColor(t *testing.T) {
	tbl := NewTable("A", "B")
	tbl.HeaderColor = color.New(color.Bold)
	tbl.AddRow("1", "2")
	var buf bytes.Buffer
	tbl.Fprint(&buf)
	assert.Contains(t, buf.String(), "1")
}

func TestNewChoiceRejectsDuplicateQuit(t *testing.T) {
	_, err := NewChoice(map[rune]string{'y': "yes", 'q': "no"}, 'q', 0, &bytes.Buffer{})
	require.Error(t, err)
}

func TestNewChoiceRejectsBadDefault(t *testing.T) {
	_, err := NewChoice(map[rune]string{'y': "yes", 'n': "no"}, 'q', 'z', &bytes.Buffer{})
	require.Error(t, err)
}

func TestNewChoiceRejectsNonPrintable(t *testing.T) {
	_, err := NewChoice(map[rune]string{'\n': "newline"}, 0, 0, &bytes.Buffer{})
	require.Error(t, err)
}

func TestNewChoiceAllowsDefaultEqualToQuit(t *testing.T) {
	c, err := NewChoice(map[rune]string{'y': "yes"}, 'q', 'q', &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 'q', c.def)
}

func TestNewRangeChoiceRejectsInvertedRange(t *testing.T) {
	_, err := NewRangeChoice('9', '0', "digit", 0, 0, &bytes.Buffer{})
	require.Error(t, err)
}

func TestNewRangeChoiceBuildsEveryOption(t *testing.T) {
	c, err := NewRangeChoice('1', '3', "pick", 'q', 0, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Len(t, c.choices, 3)
	assert.Contains(t, c.choices, rune('2'))
}

func TestChoicePromptListsOptionsAndDefault(t *testing.T) {
	c, err := NewChoice(map[rune]string{'y': "yes", 'n': "no"}, 'q', 'y', &bytes.Buffer{})
	require.NoError(t, err)
	p := c.prompt()
	assert.Contains(t, p, "y=yes")
	assert.Contains(t, p, "n=no")
	assert.Contains(t, p, "q=quit")
	assert.Contains(t, p, "default y")
}
