// Package term provides the small set of terminal-facing helpers the
// interactive drivers need: wide-character-aware display width, aligned
// tabular output, and a raw single-keystroke choice prompt.
package term

import "github.com/mattn/go-runewidth"

// DisplaySize returns the number of terminal columns s occupies, treating
// full-width characters (most Kanji, Hiragana, and Katakana) as 2 columns
// and combining marks as 0.
func DisplaySize(s string) int { return runewidth.StringWidth(s) }

// Pad returns s right-padded with spaces to width display columns. If s is
// already at or past width, it is returned unchanged.
func Pad(s string, width int) string {
	if n := DisplaySize(s); n < width {
		return s + spaces(width-n)
	}
	return s
}

// PadLeft returns s left-padded with spaces to width display columns.
func PadLeft(s string, width int) string {
	if n := DisplaySize(s); n < width {
		return spaces(width-n) + s
	}
	return s
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
