package mbutf8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUTF8RoundTrip(t *testing.T) {
	s := "袖珍記念日本語"
	codes := FromUTF8(s, 0)
	require.Len(t, codes, 7)
	assert.Equal(t, s, ToUTF8String(codes))
}

func TestFromUTF8MaxChars(t *testing.T) {
	codes := FromUTF8("日本語", 2)
	assert.Len(t, codes, 2)
}

func TestFromUTF8InvalidSequence(t *testing.T) {
	// lone continuation byte 0x80 is invalid and becomes U+FFFD, consuming
	// exactly one byte before resuming.
	s := "\x80A"
	codes := FromUTF8(s, 0)
	require.Len(t, codes, 2)
	assert.Equal(t, rune(0xfffd), codes[0])
	assert.Equal(t, 'A', codes[1])
}

func TestToUTF8SurrogateBecomesReplacement(t *testing.T) {
	assert.Equal(t, "\xef\xbf\xbd", ToUTF8(0xd800))
}

func TestToUTF8BeyondMaxUnicode(t *testing.T) {
	assert.Equal(t, "\xef\xbf\xbd", ToUTF8(0x110000))
}

func TestValidateMBUtf8NotMultiByte(t *testing.T) {
	r, _ := ValidateMBUtf8("A", false)
	assert.Equal(t, NotMultiByte, r)
}

func TestValidateMBUtf8ContinuationByte(t *testing.T) {
	r, e := ValidateMBUtf8("\x80", false)
	assert.Equal(t, NotValid, r)
	assert.Equal(t, ContinuationByte, e)
}

func TestValidateMBUtf8Valid(t *testing.T) {
	r, _ := ValidateMBUtf8("あ", true)
	assert.Equal(t, MBValid, r)
}

func TestValidateMBUtf8StringTooLong(t *testing.T) {
	r, e := ValidateMBUtf8("あい", true)
	assert.Equal(t, NotValid, r)
	assert.Equal(t, StringTooLong, e)
}

func TestValidateMBUtf8Overlong(t *testing.T) {
	// 0xc0 0x80 is an overlong encoding of NUL.
	r, e := ValidateMBUtf8("\xc0\x80", false)
	assert.Equal(t, NotValid, r)
	assert.Equal(t, Overlong, e)
}

func TestIsHiraganaKatakana(t *testing.T) {
	assert.True(t, IsHiragana("あ", true))
	assert.False(t, IsKatakana("あ", true))
	assert.True(t, IsKatakana("ア", true))
	assert.True(t, IsAllHiragana("ひらがな"))
	assert.False(t, IsAllHiragana("ひらがなア"))
}

func TestHalfwidthKatakanaIsLetterNotKatakana(t *testing.T) {
	assert.True(t, IsMBLetter("ｶ", true))
	assert.False(t, IsKatakana("ｶ", true))
}

func TestIsKanji(t *testing.T) {
	assert.True(t, IsCommonKanji("漢", true))
	assert.True(t, IsKanji("漢", true))
	assert.False(t, IsRareKanji("漢", true))
}

func TestIsMBPunctuationIncludeSpace(t *testing.T) {
	assert.False(t, IsMBPunctuation("　", false, true))
	assert.True(t, IsMBPunctuation("　", true, true))
	assert.True(t, IsMBPunctuation("、", false, true))
}

func TestIsNonSpacing(t *testing.T) {
	assert.True(t, IsNonSpacing("゙", true))
	assert.True(t, IsNonSpacing("゚", true))
	assert.False(t, IsNonSpacing("へ", true))
}

func TestSizeOneRejectsMultiCharacterStrings(t *testing.T) {
	assert.True(t, IsHiragana("あ", true))
	assert.False(t, IsHiragana("あい", true))
	assert.True(t, IsHiragana("あい", false))
}

func TestIsRecognizedUTF8(t *testing.T) {
	assert.True(t, IsRecognizedUTF8("漢", true))
	assert.False(t, IsRecognizedUTF8("A", true))
}
