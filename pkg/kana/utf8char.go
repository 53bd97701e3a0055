package kana

import "github.com/anzumura/kanjitools-go/pkg/mbutf8"

// isVariationSelector reports whether s begins with a variation selector
// (U+FE00..U+FE0F), always 3 bytes in UTF-8.
func isVariationSelector(s string) bool {
	if len(s) < 3 {
		return false
	}
	r := mbutf8.GetCode(s)
	return r >= 0xfe00 && r <= 0xfe0f
}

const (
	combiningDakuten    = 0x3099
	combiningHanDakuten = 0x309a
)

// isCombiningMark reports whether s begins with a Kana combining voiced or
// semi-voiced sound mark.
func isCombiningMark(s string) bool {
	r := mbutf8.GetCode(s)
	return r == combiningDakuten || r == combiningHanDakuten
}

// IsCharWithVariationSelector reports whether s is exactly one multi-byte
// character (2-4 bytes) followed by a variation selector (3 bytes), so its
// total byte length is 5 to 7.
func IsCharWithVariationSelector(s string) bool {
	if len(s) < 5 || len(s) > 7 {
		return false
	}
	return isVariationSelector(s[len(s)-3:])
}

// NoVariationSelector returns s with a trailing variation selector removed,
// if present.
func NoVariationSelector(s string) string {
	if IsCharWithVariationSelector(s) {
		return s[:len(s)-3]
	}
	return s
}

// GetFirst returns the first multi-byte character of s, skipping any leading
// single-byte characters, or "" if s has no multi-byte character.
func GetFirst(s string) string {
	c := Utf8Char{data: s}
	if r, ok := c.Peek(true); ok {
		return r
	}
	return ""
}

// Utf8Char iterates logical characters of a UTF-8 string, folding
// variation selectors and Kana combining marks into the preceding base
// character the way a text editor displays them.
type Utf8Char struct {
	data           string
	pos            int
	errors         int
	variants       int
	combiningMarks int
}

// NewUtf8Char creates an iterator over s.
func NewUtf8Char(s string) *Utf8Char { return &Utf8Char{data: s} }

// Reset returns the iterator to the start of its string and zeroes counters.
func (c *Utf8Char) Reset() {
	c.pos = 0
	c.errors = 0
	c.variants = 0
	c.combiningMarks = 0
}

// Errors returns the count of invalid UTF-8 sequences seen by Next so far.
func (c *Utf8Char) Errors() int { return c.errors }

// Variants returns the count of variation selectors folded in by Next.
func (c *Utf8Char) Variants() int { return c.variants }

// CombiningMarks returns the count of Kana combining marks folded in by Next.
func (c *Utf8Char) CombiningMarks() int { return c.combiningMarks }

// Valid validates the string this iterator was created from.
func (c *Utf8Char) Valid(sizeOne bool) mbutf8.MBUtf8Result {
	r, _ := mbutf8.ValidateMBUtf8(c.data, sizeOne)
	return r
}

// IsValid reports whether the string this iterator was created from is
// valid UTF-8.
func (c *Utf8Char) IsValid(sizeOne bool) bool { return c.Valid(sizeOne) == mbutf8.MBValid }

// Next advances to and returns the next logical character, or ("", false) at
// end of input. When onlyMB is true (the default), single-byte ASCII
// characters are skipped.
func (c *Utf8Char) Next(onlyMB bool) (string, bool) {
	for c.pos < len(c.data) {
		ch, n := decodeAt(c.data, c.pos)
		if ch[0] >= 0x80 && !mbutf8.IsValidMBUtf8(ch, true) {
			// invalid UTF-8: count it and resume one byte further on
			c.errors++
			c.pos++
			continue
		}
		if n == 1 && onlyMB {
			c.pos++
			continue
		}
		c.pos += n
		if isVariationSelector(ch) || isCombiningMark(ch) {
			// stray modifier with no preceding base character
			c.errors++
			continue
		}
		return c.resolve(ch)
	}
	return "", false
}

// Peek works like Next but does not advance the iterator or update counters.
func (c *Utf8Char) Peek(onlyMB bool) (string, bool) {
	pos := c.pos
	for pos < len(c.data) {
		ch, n := decodeAt(c.data, pos)
		if ch[0] >= 0x80 && !mbutf8.IsValidMBUtf8(ch, true) {
			pos++
			continue
		}
		if n == 1 && onlyMB {
			pos++
			continue
		}
		if isVariationSelector(ch) || isCombiningMark(ch) {
			pos += n
			continue
		}
		return c.peekResolve(ch, pos+n)
	}
	return "", false
}

// decodeAt returns the raw character bytes starting at pos in s and its
// byte length, without error folding (used internally to find boundaries).
func decodeAt(s string, pos int) (string, int) {
	b := []byte(s[pos:])
	lead := b[0]
	n := 1
	switch {
	case lead&0x80 == 0:
		n = 1
	case lead&0xe0 == 0xc0:
		n = 2
	case lead&0xf0 == 0xe0:
		n = 3
	case lead&0xf8 == 0xf0:
		n = 4
	default:
		n = 1
	}
	if pos+n > len(s) {
		n = len(s) - pos
	}
	return s[pos : pos+n], n
}

// resolve implements the shared logic behind Next: given the just-consumed
// character ch (which must be multi-byte to trigger variant/combining-mark
// folding), inspect what follows and fold it in, mutating counters.
func (c *Utf8Char) resolve(ch string) (string, bool) {
	if len(ch) == 1 {
		return ch, true
	}
	if c.pos >= len(c.data) {
		return ch, true
	}
	next, n := decodeAt(c.data, c.pos)
	if len(next) == 0 {
		return ch, true
	}
	if isVariationSelector(next) {
		c.pos += n
		c.variants++
		return ch + next, true
	}
	if isCombiningMark(next) {
		c.pos += n
		if accented, ok := applyCombiningMark(ch, mbutf8.GetCode(next)); ok {
			c.combiningMarks++
			return accented, true
		}
		c.errors++
		return ch, true
	}
	return ch, true
}

func (c *Utf8Char) peekResolve(ch string, afterPos int) (string, bool) {
	if len(ch) == 1 {
		return ch, true
	}
	if afterPos >= len(c.data) {
		return ch, true
	}
	next, _ := decodeAt(c.data, afterPos)
	if len(next) == 0 {
		return ch, true
	}
	if isVariationSelector(next) {
		return ch + next, true
	}
	if isCombiningMark(next) {
		if accented, ok := applyCombiningMark(ch, mbutf8.GetCode(next)); ok {
			return accented, true
		}
		return ch, true
	}
	return ch, true
}

// applyCombiningMark looks up the precomposed Kana formed by base (a single
// Hiragana or Katakana character) plus a combining voiced/semi-voiced mark.
func applyCombiningMark(base string, mark rune) (string, bool) {
	if k, ok := hiraganaMap[base]; ok {
		return resolveAccent(k, mark, func(a *Kana) string { return a.Hiragana })
	}
	if k, ok := katakanaMap[base]; ok {
		return resolveAccent(k, mark, func(a *Kana) string { return a.Katakana })
	}
	return "", false
}

func resolveAccent(k *Kana, mark rune, spelling func(*Kana) string) (string, bool) {
	switch mark {
	case combiningDakuten:
		if k.Dakuten != nil {
			return spelling(k.Dakuten), true
		}
	case combiningHanDakuten:
		if k.HanDakuten != nil {
			return spelling(k.HanDakuten), true
		}
	}
	return "", false
}

// Size counts the logical characters in s, applying the same variation
// selector / combining mark folding rules as Next.
func Size(s string, onlyMB bool) int {
	c := NewUtf8Char(s)
	n := 0
	for {
		if _, ok := c.Next(onlyMB); !ok {
			break
		}
		n++
	}
	return n
}
