package kana

import (
	"strings"
	"unicode"

	"github.com/anzumura/kanjitools-go/pkg/mbutf8"
)

// Any is a pseudo CharType passed as the source to Convert/ConvertFrom to
// mean "detect the source type of each run of input automatically" instead
// of restricting conversion to a single source character type.
const Any CharType = -1

// Converter converts text between Rōmaji, Hiragana and Katakana. For Rōmaji
// output, each Kana's default spelling is used (mostly Hepburn, but e.g. "du"
// for づ), and the Hepburn and Kunrei flags select alternative spellings
// where a Kana stores one; Rōmaji input additionally accepts
// Kunrei-shiki, Nihon-shiki, and common wāpuro spellings, matched
// case-insensitively.
type Converter struct {
	target CharType
	flags  ConvertFlags
}

// NewConverter creates a Converter with the given default target and flags;
// the convert methods below may override both per call.
func NewConverter(target CharType, flags ConvertFlags) *Converter {
	return &Converter{target: target, flags: flags}
}

func (c *Converter) Target() CharType       { return c.target }
func (c *Converter) SetTarget(t CharType)   { c.target = t }
func (c *Converter) Flags() ConvertFlags    { return c.flags }
func (c *Converter) SetFlags(f ConvertFlags) { c.flags = f }

// Convert converts every recognized run of input (Hiragana, Katakana, or
// Rōmaji letters) to the current target, auto-detecting each run's source.
func (c *Converter) Convert(input string) string { return c.ConvertFrom(Any, input) }

// ConvertTo updates the target and flags, then converts input.
func (c *Converter) ConvertTo(input string, target CharType, flags ConvertFlags) string {
	c.target, c.flags = target, flags
	return c.Convert(input)
}

// ConvertFrom converts only runs of the given source type in input, leaving
// everything else (other scripts, numbers, punctuation) unchanged. Passing
// Any auto-detects each run's source the way Convert does.
func (c *Converter) ConvertFrom(source CharType, input string) string {
	if source != Any && source == c.target {
		return input
	}
	var sb strings.Builder
	for _, r := range splitRuns(input) {
		switch r.kind {
		case runHiragana:
			if source == Any || source == Hiragana {
				sb.WriteString(c.fromKana(r.text, Hiragana))
			} else {
				sb.WriteString(r.text)
			}
		case runKatakana:
			if source == Any || source == Katakana {
				sb.WriteString(c.fromKana(r.text, Katakana))
			} else {
				sb.WriteString(r.text)
			}
		case runLetters:
			if (source == Any || source == Romaji) && c.target != Romaji {
				sb.WriteString(c.toKana(r.text))
			} else {
				sb.WriteString(r.text)
			}
		default:
			sb.WriteString(r.text)
		}
	}
	result := sb.String()
	if c.target == Romaji && c.flags.Has(RemoveSpaces) {
		result = strings.ReplaceAll(result, " ", "")
	}
	return result
}

// ConvertFromTo updates the target and flags, then converts only runs of
// source in input.
func (c *Converter) ConvertFromTo(source CharType, input string, target CharType, flags ConvertFlags) string {
	c.target, c.flags = target, flags
	return c.ConvertFrom(source, input)
}

// --- run splitting -------------------------------------------------------

type runKind int

const (
	runOther runKind = iota
	runHiragana
	runKatakana
	runLetters
)

type run struct {
	kind runKind
	text string
}

func splitRuns(s string) []run {
	var runs []run
	runes := []rune(s)
	for _, r := range runes {
		k := classifyRune(r)
		if n := len(runs); n > 0 && (runs[n-1].kind == k ||
			(r == prolongMarkRune && (runs[n-1].kind == runHiragana || runs[n-1].kind == runKatakana))) {
			runs[n-1].text += string(r)
			continue
		}
		runs = append(runs, run{kind: k, text: string(r)})
	}
	return runs
}

const prolongMarkRune = 'ー'

func classifyRune(r rune) runKind {
	s := string(r)
	switch {
	case mbutf8.IsHiragana(s, true):
		return runHiragana
	case mbutf8.IsKatakana(s, true) || r == prolongMarkRune:
		return runKatakana
	case r < unicode.MaxASCII && (unicode.IsLetter(r) || r == '\'' || r == '-' || isMacronVowel(r)):
		return runLetters
	case isMacronVowel(r):
		return runLetters
	default:
		return runOther
	}
}

// --- Kana -> Kana/Rōmaji ---------------------------------------------------

func (c *Converter) fromKana(s string, source CharType) string {
	sourceMap := Map(source)
	runes := []rune(s)
	var sb strings.Builder
	var prevKana *Kana
	i := 0
	for i < len(runes) {
		if _, k, ok := lookup2(runes, i, sourceMap); ok {
			sb.WriteString(k.Get(c.target, c.flags))
			prevKana = k
			i += 2
			continue
		}
		one := string(runes[i])

		if one == smallTsuKana(source) {
			if c.target == Romaji {
				if _, nk, ok := lookup2(runes, i+1, sourceMap); ok {
					sb.WriteString(nk.GetSokuonRomaji(c.flags))
					prevKana = nk
					i += 3
					continue
				}
				if i+1 < len(runes) {
					if nk, ok := sourceMap[string(runes[i+1])]; ok {
						sb.WriteString(nk.GetSokuonRomaji(c.flags))
						prevKana = nk
						i += 2
						continue
					}
				}
			}
			sb.WriteString(SmallTsu.Get(c.target, c.flags))
			prevKana = SmallTsu
			i++
			continue
		}

		if RepeatPlain.Matches(source, one) {
			sb.WriteString(RepeatPlain.Get(c.target, c.flags, prevKana))
			i++
			continue
		}
		if RepeatAccented.Matches(source, one) {
			sb.WriteString(RepeatAccented.Get(c.target, c.flags, prevKana))
			i++
			continue
		}

		if one == ProlongMark {
			if c.target == Romaji && prevKana != nil {
				r := prevKana.GetRomaji(c.flags)
				sb.WriteByte(r[len(r)-1])
			} else {
				sb.WriteString(ProlongMark)
			}
			i++
			continue
		}

		if k, ok := sourceMap[one]; ok {
			sb.WriteString(k.Get(c.target, c.flags))
			prevKana = k
			i++
			continue
		}

		sb.WriteString(one)
		prevKana = nil
		i++
	}
	return sb.String()
}

func smallTsuKana(source CharType) string {
	if source == Hiragana {
		return SmallTsu.Hiragana
	}
	return SmallTsu.Katakana
}

// lookup2 attempts a 2-rune digraph match in m starting at index i.
func lookup2(runes []rune, i int, m map[string]*Kana) (string, *Kana, bool) {
	if i < 0 || i+2 > len(runes) {
		return "", nil, false
	}
	two := string(runes[i : i+2])
	if k, ok := m[two]; ok {
		return two, k, true
	}
	return "", nil, false
}

// --- Rōmaji -> Kana --------------------------------------------------------

var macronVowels = map[rune]rune{
	'ā': 'a', 'ī': 'i', 'ū': 'u', 'ē': 'e', 'ō': 'o',
}

func isMacronVowel(r rune) bool {
	_, ok := macronVowels[r]
	return ok
}

func isConsonant(r rune) bool {
	switch r {
	case 'a', 'i', 'u', 'e', 'o', 'n':
		return false
	}
	return r >= 'a' && r <= 'z'
}

// toKana converts a run of lowercased Rōmaji letters to the current target.
// Macron vowels (ā, ī, ū, ē, ō) are first expanded to their plain ascii
// vowel so the rest of the matching logic is uniform; macronAt records
// which expanded positions came from a macron so the Kana/Katakana output
// can append a prolong mark (or double the vowel, with NoProlongMark) where
// a macron stood.
func (c *Converter) toKana(s string) string {
	runes, macronAt := expandMacrons([]rune(strings.ToLower(s)))
	var sb strings.Builder
	var prevKana *Kana
	i := 0
	for i < len(runes) {
		r := runes[i]

		if r == 'n' && i+1 < len(runes) && (runes[i+1] == '\'' || runes[i+1] == '-') {
			sb.WriteString(N.Get(c.target, c.flags))
			prevKana = N
			i += 2
			continue
		}

		matched := false
		for length := 3; length >= 1; length-- {
			if i+length > len(runes) {
				continue
			}
			candidate := string(runes[i : i+length])
			if k, ok := romajiMap[candidate]; ok {
				sb.WriteString(k.Get(c.target, c.flags))
				if base := macronAt[i+length-1]; base != 0 {
					c.appendMacronTail(&sb, base)
				}
				prevKana = k
				i += length
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		// "tch"/"cch" is a non-standard but accepted spelling of sokuon+ch.
		if i+2 < len(runes) && runes[i+1] == 'c' && runes[i+2] == 'h' && (runes[i] == 't' || runes[i] == 'c') {
			sb.WriteString(SmallTsu.Get(c.target, c.flags))
			prevKana = SmallTsu
			i++
			continue
		}

		if i+1 < len(runes) && runes[i] == runes[i+1] && isConsonant(runes[i]) {
			sb.WriteString(SmallTsu.Get(c.target, c.flags))
			prevKana = SmallTsu
			i++
			continue
		}

		sb.WriteRune(r)
		prevKana = nil
		i++
	}
	return sb.String()
}

// appendMacronTail appends the prolong mark (or, with NoProlongMark, the
// bare vowel kana) following a Kana whose vowel carried a macron. base is
// the plain ascii vowel (a/i/u/e/o) the macron expanded from.
func (c *Converter) appendMacronTail(sb *strings.Builder, base rune) {
	if c.target == Romaji {
		sb.WriteRune(base)
		return
	}
	if c.flags.Has(NoProlongMark) {
		if vowel, ok := romajiMap[string(base)]; ok {
			sb.WriteString(vowel.Get(c.target, c.flags))
			return
		}
	}
	sb.WriteString(ProlongMark)
}

// expandMacrons replaces each macron vowel with its plain ascii vowel and
// returns a parallel slice holding the base vowel for macron positions (0
// elsewhere), keyed by the position in the returned rune slice.
func expandMacrons(runes []rune) ([]rune, []rune) {
	out := make([]rune, len(runes))
	at := make([]rune, len(runes))
	for i, r := range runes {
		if base, ok := macronVowels[r]; ok {
			out[i] = base
			at[i] = base
		} else {
			out[i] = r
		}
	}
	return out, at
}
