package kana

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertSameSourceAndTarget(t *testing.T) {
	c := NewConverter(Hiragana, None)
	assert.Equal(t, "あいうえお", c.ConvertFrom(Hiragana, "あいうえお"))
}

func TestConvertRomajiToHiragana(t *testing.T) {
	c := NewConverter(Hiragana, None)
	assert.Equal(t, "あかちゃん", c.Convert("akaチャン"))
}

func TestConvertHiraganaToKatakana(t *testing.T) {
	c := NewConverter(Katakana, None)
	assert.Equal(t, "アカチャン", c.Convert("あかちゃん"))
}

func TestConvertKatakanaToRomaji(t *testing.T) {
	c := NewConverter(Romaji, None)
	assert.Equal(t, "tokyo", c.Convert("トキョ"))
}

func TestConvertCaseInsensitive(t *testing.T) {
	c := NewConverter(Hiragana, None)
	assert.Equal(t, c.Convert("dare"), c.Convert("dARe"))
}

func TestConvertSokuon(t *testing.T) {
	c := NewConverter(Hiragana, None)
	assert.Equal(t, "がっこう", c.Convert("gakkou"))
}

func TestConvertSokuonToRomaji(t *testing.T) {
	c := NewConverter(Romaji, None)
	assert.Equal(t, "gakkou", c.Convert("がっこう"))
}

func TestConvertNApostrophe(t *testing.T) {
	c := NewConverter(Hiragana, None)
	// gin'iro must not merge the 'n' with following 'i' into "に"
	got := c.Convert("gin'iro")
	assert.Contains(t, got, "ん")
}

func TestConvertMacron(t *testing.T) {
	c := NewConverter(Hiragana, None)
	assert.Equal(t, "とーきょー", c.Convert("tōkyō"))
}

func TestConvertMacronNoProlongMark(t *testing.T) {
	// NoProlongMark spells the macron as a literal doubled vowel (とお)
	// rather than the prolong mark (とー).
	c := NewConverter(Hiragana, NoProlongMark)
	assert.Equal(t, "とおきょお", c.Convert("tōkyō"))
}

func TestConvertRomajiPassthroughWhenTargetIsRomaji(t *testing.T) {
	c := NewConverter(Romaji, None)
	assert.Equal(t, "hello", c.Convert("hello"))
}

func TestConvertFromRestrictsSource(t *testing.T) {
	c := NewConverter(Hiragana, None)
	// Only convert Katakana; Rōmaji letters pass through untouched.
	got := c.ConvertFrom(Katakana, "akaチャン")
	assert.Equal(t, "akaちゃん", got)
}
