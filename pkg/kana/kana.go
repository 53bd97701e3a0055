// Package kana implements the Kana table, Rōmaji/Hiragana/Katakana maps, and
// the bidirectional Converter between them, ported from kanji_tools'
// src/kana/Kana.cpp and libs/kana/include/kanji_tools/kana/Converter.h.
package kana

import "fmt"

// CharType identifies one of the three character systems a Converter moves
// between.
type CharType int

const (
	Hiragana CharType = iota
	Katakana
	Romaji
)

func (t CharType) String() string {
	switch t {
	case Hiragana:
		return "Hiragana"
	case Katakana:
		return "Katakana"
	case Romaji:
		return "Romaji"
	}
	return "Unknown"
}

// ConvertFlags is a bitmask controlling Rōmaji output and conversion
// behavior. Multiple flags may be combined.
type ConvertFlags int

const (
	None ConvertFlags = 0
	// Hepburn prefers the Modern Hepburn Rōmaji spelling where a Kana
	// stores one (e.g. "zu" instead of "du" for づ).
	Hepburn ConvertFlags = 1 << iota
	// Kunrei prefers the Kunrei Shiki spelling where one exists.
	Kunrei
	// NoProlongMark, when converting Rōmaji to Kana, spells a macron vowel
	// (e.g. ā) as a repeated vowel Kana instead of the prolong mark ー; a ー
	// already present in Kana input is not affected.
	NoProlongMark
	// RemoveSpaces removes every space from Rōmaji output.
	RemoveSpaces
)

func (f ConvertFlags) Has(flag ConvertFlags) bool { return f&flag != 0 }

// ProlongMark is the Katakana long vowel mark ー. It appears in the
// Katakana Unicode block but is occasionally used in Hiragana text too.
const ProlongMark = "ー"

// Kana represents a single Kana monograph or digraph: its canonical Rōmaji,
// Hiragana, and Katakana spellings, any extra Rōmaji variants, and its
// accented (dakuten / han-dakuten) relationships. Go favors composition over
// the original's virtual-dispatch subclasses: a plain Kana simply leaves
// Dakuten and HanDakuten nil.
type Kana struct {
	Romaji   string
	Hiragana string
	Katakana string
	// Variants holds extra Rōmaji spellings that also resolve to this Kana
	// (e.g. "kwa" alongside "qa"). Each must be unique across the Rōmaji map.
	Variants []string
	// Hepburn, when non-empty, is the Modern Hepburn Rōmaji output used
	// when ConvertFlags.Hepburn is set; it always duplicates another Kana's
	// canonical Romaji.
	Hepburn string
	// Kunrei, when non-empty, is the Kunrei Shiki Rōmaji output used when
	// ConvertFlags.Kunrei is set.
	Kunrei string
	// KunreiVariant, when true, means Variants[0] is the Kunrei Shiki form
	// instead of Kunrei holding one.
	KunreiVariant bool
	// Dakuten is the accented (゛) form of this Kana, if it has one.
	Dakuten *Kana
	// HanDakuten is the semi-voiced (゜) form of this Kana, if it has one
	// (only the 'h' row does).
	HanDakuten *Kana
	// unaccented points back to the plain Kana this one is an accented
	// form of; set while building Dakuten/HanDakuten relationships.
	unaccented *Kana
}

// PlainKana returns the unaccented version of this Kana, or nil if this
// instance is already unaccented or has no standard unaccented counterpart
// (e.g. ヴォ can only be reached via 'u' + small 'o', two separate Kana).
func (k *Kana) PlainKana() *Kana { return k.unaccented }

// GetRomaji returns the Rōmaji spelling honoring flags' Hepburn/Kunrei bits.
func (k *Kana) GetRomaji(flags ConvertFlags) string {
	switch {
	case flags.Has(Hepburn) && k.Hepburn != "":
		return k.Hepburn
	case flags.Has(Kunrei) && k.KunreiVariant:
		return k.Variants[0]
	case flags.Has(Kunrei) && k.Kunrei != "":
		return k.Kunrei
	default:
		return k.Romaji
	}
}

// GetSokuonRomaji repeats the leading consonant of the Rōmaji spelling, for
// sokuon (促音、small っ/ッ) output. 'ch' repeats as 't' rather than 'c'.
func (k *Kana) GetSokuonRomaji(flags ConvertFlags) string {
	r := k.GetRomaji(flags)
	lead := r[0]
	if lead == 'c' {
		lead = 't'
	}
	return string(lead) + r
}

// Get returns this Kana's spelling in the requested character system.
func (k *Kana) Get(t CharType, flags ConvertFlags) string {
	switch t {
	case Romaji:
		return k.GetRomaji(flags)
	case Hiragana:
		return k.Hiragana
	case Katakana:
		return k.Katakana
	}
	return ""
}

// ContainsKana reports whether s is this Kana's Hiragana or Katakana form.
func (k *Kana) ContainsKana(s string) bool { return s == k.Hiragana || s == k.Katakana }

func (k *Kana) String() string {
	return fmt.Sprintf("Kana{%s,%s,%s}", k.Romaji, k.Hiragana, k.Katakana)
}

// RepeatMark represents a kana repeat character: ゝ/ゞ for Hiragana and
// ヽ/ヾ for Katakana. The accented (dakuten) form repeats the previous Kana
// voiced instead of plain.
type RepeatMark struct {
	hiragana, katakana string
	dakuten            bool
}

// Matches reports whether s (in character system t) is this repeat mark.
func (r RepeatMark) Matches(t CharType, s string) bool {
	return t == Hiragana && s == r.hiragana || t == Katakana && s == r.katakana
}

// Get resolves this repeat mark to its Hiragana/Katakana/Rōmaji spelling.
// For Rōmaji, prevKana supplies the character being repeated: the dakuten
// mark repeats prevKana's accented form (or itself if already accented),
// the plain mark repeats prevKana's unaccented form (or itself if already
// plain).
func (r RepeatMark) Get(target CharType, flags ConvertFlags, prevKana *Kana) string {
	switch target {
	case Hiragana:
		return r.hiragana
	case Katakana:
		return r.katakana
	}
	if prevKana == nil {
		return ""
	}
	k := prevKana
	if r.dakuten {
		if accented := prevKana.Dakuten; accented != nil {
			k = accented
		}
	} else if plain := prevKana.PlainKana(); plain != nil {
		k = plain
	}
	return k.GetRomaji(flags)
}

// RepeatPlain and RepeatAccented are the two repeat-mark instances: ゝゞ for
// Hiragana, ヽヾ for Katakana, with the voiced (accented) version applying
// dakuten to the previous Kana when converting to Rōmaji.
var (
	RepeatPlain    = RepeatMark{hiragana: "ゝ", katakana: "ヽ", dakuten: false}
	RepeatAccented = RepeatMark{hiragana: "ゞ", katakana: "ヾ", dakuten: true}
)
