package kanji

import (
	"strings"

	"github.com/anzumura/kanjitools-go/pkg/kana"
)

// Kanji is a single character record. Rather than a class hierarchy (the
// approach the original C++ implementation used), the Go type is one struct
// tagged by Type, with the fields a given Type doesn't use left at their
// zero value. This keeps every Kanji a plain value usable in a map or slice
// without an interface/pointer indirection for the common case, while the
// handful of Type-specific accessors below present the same behavior the
// original virtual methods provided (zero value standing in for "no
// grade"/"no year"/etc).
type Kanji struct {
	Name               string
	CompatibilityName  string // empty unless Name carries a variation selector
	Radical            int
	Strokes            int
	Pinyin             string
	MorohashiID        string
	NelsonIDs          []int
	Type               Type

	// populated for Jouyou/Jinmei/Extra (loaded from a "CustomFileKanji" style
	// source file with a Number column)
	Number  int
	OldNames []string

	meaning string
	reading string

	grade  Grade
	year   int // 0 means unknown

	reason JinmeiReason

	level JlptLevel
	kyu   KenteiKyu

	frequency int // 0 means not in the frequency list

	// LinkedJinmei/LinkedOld point back to the Kanji they're a variant of;
	// their readings/meaning are proxied through that link.
	link *Kanji

	// Extra's optional forward link to the Kanji that replaced it, read
	// from extra.txt's NewName column; the UCD entry's links are not used.
	newName string
}

// Meaning returns the English meaning, proxied through a link for linked
// Kanji types.
func (k *Kanji) Meaning() string {
	if k.link != nil {
		return k.link.Meaning()
	}
	return k.meaning
}

// Reading returns the on/kun readings, proxied through a link for linked
// Kanji types.
func (k *Kanji) Reading() string {
	if k.link != nil {
		return k.link.Reading()
	}
	return k.reading
}

// LinkedReadings reports whether Reading() is proxied from a linked Kanji.
func (k *Kanji) LinkedReadings() bool { return k.link != nil }

// Grade returns the Jōyō grade, or NoGrade if the Kanji isn't Jōyō.
func (k *Kanji) Grade() Grade { return k.grade }

// HasGrade reports whether Grade() is meaningful.
func (k *Kanji) HasGrade() bool { return k.grade != NoGrade }

// Year returns the year a Jōyō/Jinmei Kanji was added to its list, or 0.
func (k *Kanji) Year() int { return k.year }

// Reason returns the reason a Jinmei Kanji is on its list.
func (k *Kanji) Reason() JinmeiReason { return k.reason }

// Level returns the JLPT level, or NoLevel.
func (k *Kanji) Level() JlptLevel { return k.level }

// HasLevel reports whether Level() is meaningful.
func (k *Kanji) HasLevel() bool { return k.level != NoLevel }

// Kyu returns the Kentei kyū, or NoKyu.
func (k *Kanji) Kyu() KenteiKyu { return k.kyu }

// HasKyu reports whether Kyu() is meaningful.
func (k *Kanji) HasKyu() bool { return k.kyu != NoKyu }

// Frequency returns the 1-based frequency rank, or 0 if not ranked.
func (k *Kanji) Frequency() int { return k.frequency }

// FrequencyOrDefault returns Frequency(), or def if there is none.
func (k *Kanji) FrequencyOrDefault(def int) int {
	if k.frequency == 0 {
		return def
	}
	return k.frequency
}

// Link returns the Kanji a LinkedJinmei/LinkedOld Kanji is a variant of.
func (k *Kanji) Link() *Kanji { return k.link }

// NewName returns an Extra Kanji's forward link name from extra.txt's
// NewName column, or "".
func (k *Kanji) NewName() string { return k.newName }

// HasMeaning reports whether Meaning() is non-empty.
func (k *Kanji) HasMeaning() bool { return k.Meaning() != "" }

// HasReading reports whether Reading() is non-empty.
func (k *Kanji) HasReading() bool { return k.Reading() != "" }

// IsVariant reports whether Name carries a Unicode variation selector.
func (k *Kanji) IsVariant() bool { return kana.IsCharWithVariationSelector(k.Name) }

// NonVariantName returns Name with any variation selector stripped.
func (k *Kanji) NonVariantName() string { return kana.NoVariationSelector(k.Name) }

// QualifiedCompatibilityName returns CompatibilityName if set, else Name.
func (k *Kanji) QualifiedCompatibilityName() string {
	if k.CompatibilityName != "" {
		return k.CompatibilityName
	}
	return k.Name
}

// qualifiedNameRank orders Kanji the way qualifiedName's suffix legend does:
// Jouyou, then has-JLPT, then has-frequency, then Jinmei, LinkedJinmei,
// LinkedOld, Extra, non-K1 Kentei, K1 Kentei, Ucd.
func (k *Kanji) qualifiedNameRank() int {
	switch {
	case k.Type == Jouyou:
		return 0
	case k.HasLevel():
		return 1
	case k.frequency > 0:
		return 2
	case k.Type == Jinmei:
		return 3
	case k.Type == LinkedJinmei:
		return 4
	case k.Type == LinkedOld:
		return 5
	case k.Type == Extra:
		return 6
	case k.Type == Kentei && k.kyu != K1:
		return 7
	case k.Type == Kentei:
		return 8
	default:
		return 9
	}
}

var qualifiedNameSuffix = [...]byte{'.', '\'', '"', '^', '~', '%', '+', '@', '#', '*'}

// QualifiedName returns Name with a suffix indicating its qualifiedNameRank
// (see Legend).
func (k *Kanji) QualifiedName() string {
	rank := k.qualifiedNameRank()
	if rank >= len(qualifiedNameSuffix) {
		return k.Name
	}
	return k.Name + string(qualifiedNameSuffix[rank])
}

// Legend briefly describes the suffix QualifiedName adds.
const Legend = ".=Jouyou '=JLPT \"=Freq ^=Jinmei ~=LinkJinmei %=LinkOld " +
	"+=Extra @=Kentei #=K1 *=Ucd"

// OrderByQualifiedName reports whether k sorts before o the way
// QualifiedName output is grouped: by rank, then strokes, then frequency,
// then compatibility name in Unicode order.
func OrderByQualifiedName(k, o *Kanji) bool {
	if ra, rb := k.qualifiedNameRank(), o.qualifiedNameRank(); ra != rb {
		return ra < rb
	}
	return OrderByStrokes(k, o)
}

// OrderByStrokes reports whether k sorts before o: by strokes, then
// frequency (unranked sorts last), then compatibility name in Unicode order.
func OrderByStrokes(k, o *Kanji) bool {
	if k.Strokes != o.Strokes {
		return k.Strokes < o.Strokes
	}
	fk, fo := k.FrequencyOrDefault(1<<30), o.FrequencyOrDefault(1<<30)
	if fk != fo {
		return fk < fo
	}
	return strings.Compare(k.QualifiedCompatibilityName(), o.QualifiedCompatibilityName()) < 0
}
