package mbutf8

// Version names the Unicode version a Block was introduced in, kept purely
// for documentation/debug output (see original_source UnicodeBlock.h).
type Version string

// Common Unicode versions referenced by the block tables below.
const (
	v1_1  Version = "1.1"
	v2_0  Version = "2.0"
	v3_0  Version = "3.0"
	v3_2  Version = "3.2"
	v4_1  Version = "4.1"
)

// Block is a compile-time (start, end, version) range of code points.
type Block struct {
	Start, End rune
	Version    Version
}

// Contains reports whether c falls within this Block (inclusive).
func (b Block) Contains(c rune) bool { return c >= b.Start && c <= b.End }

// Range returns the number of code points covered by this Block.
func (b Block) Range() int { return int(b.End-b.Start) + 1 }

// Hiragana block excludes U+3099/U+309A (combining voiced/semi-voiced marks,
// classified under NonSpacing instead) so block tables never overlap.
var hiraganaBlocks = []Block{
	{0x3041, 0x3096, v1_1}, // small ぁ through ゖ
	{0x309B, 0x309C, v1_1}, // non-combining dakuten/han-dakuten marks
	{0x309D, 0x309F, v1_1}, // repeat marks ゝゞ and more
}

// Katakana excludes halfwidth katakana (U+FF66-FF9D), which is classified as
// Letter per original_source (isMBLetter("ｶ") true, isKatakana("ｶ") false).
var katakanaBlocks = []Block{
	{0x30A1, 0x30FF, v1_1}, // full katakana block (after prolong mark 30FC)
	{0x31F0, 0x31FF, v3_2}, // katakana phonetic extensions
}

var commonKanjiBlocks = []Block{
	{0x3400, 0x4DBF, v3_0},   // CJK Unified Ideographs Extension A
	{0x4E00, 0x9FFF, v1_1},   // CJK Unified Ideographs
	{0xF900, 0xFAFF, v1_1},   // CJK Compatibility Ideographs
	{0x20000, 0x2A6DF, v3_0}, // CJK Unified Ideographs Extension B
}

var rareKanjiBlocks = []Block{
	{0x2E80, 0x2EFF, v1_1},   // CJK Radicals Supplement
	{0x2A700, 0x2EBEF, v3_0}, // CJK Unified Ideographs Extensions C-F
	{0x2F800, 0x2FA1F, v3_0}, // CJK Compatibility Ideographs Supplement
	{0x30000, 0x3134F, v4_1}, // CJK Unified Ideographs Extension G
}

var punctuationBlocks = []Block{
	{0x3001, 0x3002, v1_1}, // 、 。 (U+3000 ideographic space handled by IncludeSpace)
	{0x3003, 0x303F, v1_1}, // remainder of CJK Symbols and Punctuation
	{0xFE30, 0xFE4F, v1_1}, // CJK Compatibility Forms
	{0xFF01, 0xFF0F, v1_1}, // fullwidth ASCII punctuation
	{0xFF1A, 0xFF20, v1_1},
	{0xFF3B, 0xFF40, v1_1},
	{0xFF5B, 0xFF65, v1_1},
}

var symbolBlocks = []Block{
	{0x2600, 0x26FF, v1_1}, // Miscellaneous Symbols
	{0x2700, 0x27BF, v1_1}, // Dingbats
	{0x3200, 0x32FF, v1_1}, // Enclosed CJK Letters and Months
	{0x3300, 0x33FF, v1_1}, // CJK Compatibility (square symbols)
}

var letterBlocks = []Block{
	{0x00C0, 0x024F, v1_1}, // Latin Extended-A/B
	{0x2160, 0x2188, v1_1}, // Roman numerals
	{0x2460, 0x24FF, v1_1}, // Enclosed Alphanumerics
	{0xFF10, 0xFF19, v1_1}, // fullwidth digits
	{0xFF21, 0xFF3A, v1_1}, // fullwidth uppercase
	{0xFF41, 0xFF5A, v1_1}, // fullwidth lowercase
	{0xFF66, 0xFF9D, v1_1}, // halfwidth katakana (classified as letter, not Katakana)
}

var nonSpacingBlocks = []Block{
	{0x3099, 0x309A, v1_1}, // combining voiced/semi-voiced sound marks
}

func inAny(blocks []Block, c rune) bool {
	for _, b := range blocks {
		if b.Contains(c) {
			return true
		}
	}
	return false
}
