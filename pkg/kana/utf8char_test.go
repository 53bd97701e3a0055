package kana

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUtf8CharNextSkipsAscii(t *testing.T) {
	c := NewUtf8Char("大blue空")
	first, ok := c.Next(true)
	assert.True(t, ok)
	assert.Equal(t, "大", first)
	second, ok := c.Next(true)
	assert.True(t, ok)
	assert.Equal(t, "空", second)
	_, ok = c.Next(true)
	assert.False(t, ok)
}

func TestUtf8CharNextIncludesAsciiWhenRequested(t *testing.T) {
	assert.Equal(t, 6, Size("大blue空", false))
	assert.Equal(t, 2, Size("大blue空", true))
}

func TestUtf8CharCombiningMarkDakuten(t *testing.T) {
	// は (U+306F) + combining voiced mark (U+3099) folds to ば (U+3070).
	base := string(rune(0x306f)) + string(rune(0x3099))
	c := NewUtf8Char(base)
	got, ok := c.Next(true)
	assert.True(t, ok)
	assert.Equal(t, string(rune(0x3070)), got)
	assert.Equal(t, 1, c.CombiningMarks())
}

func TestUtf8CharCombiningMarkHanDakuten(t *testing.T) {
	// は (U+306F) + combining semi-voiced mark (U+309A) folds to ぱ (U+3071).
	base := string(rune(0x306f)) + string(rune(0x309a))
	c := NewUtf8Char(base)
	got, ok := c.Next(true)
	assert.True(t, ok)
	assert.Equal(t, string(rune(0x3071)), got)
}

func TestUtf8CharStrayCombiningMarkIsError(t *testing.T) {
	stray := string(rune(0x3099)) + "あ"
	c := NewUtf8Char(stray)
	got, ok := c.Next(true)
	assert.True(t, ok)
	assert.Equal(t, "あ", got)
	assert.Equal(t, 1, c.Errors())
}

func TestUtf8CharVariationSelector(t *testing.T) {
	withVS := "辻" + string(rune(0xfe00))
	c := NewUtf8Char(withVS)
	got, ok := c.Next(true)
	assert.True(t, ok)
	assert.Equal(t, withVS, got)
	assert.Equal(t, 1, c.Variants())
}

func TestIsCharWithVariationSelector(t *testing.T) {
	withVS := "辻" + string(rune(0xfe00))
	assert.True(t, IsCharWithVariationSelector(withVS))
	assert.False(t, IsCharWithVariationSelector("辻"))
}

func TestNoVariationSelector(t *testing.T) {
	withVS := "辻" + string(rune(0xfe00))
	assert.Equal(t, "辻", NoVariationSelector(withVS))
	assert.Equal(t, "辻", NoVariationSelector("辻"))
}

func TestReset(t *testing.T) {
	c := NewUtf8Char("大空")
	c.Next(true)
	c.Reset()
	got, ok := c.Next(true)
	assert.True(t, ok)
	assert.Equal(t, "大", got)
}
