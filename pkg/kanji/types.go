package kanji

// Type identifies which source catalog a Kanji was loaded from, used both
// as a taxonomy tag and as the qualified-name rank's coarse grouping.
type Type int

const (
	Jouyou Type = iota
	Jinmei
	LinkedJinmei
	LinkedOld
	Extra
	Frequency
	Kentei
	Ucd
)

var typeNames = [...]string{
	"Jouyou", "Jinmei", "LinkedJinmei", "LinkedOld", "Extra", "Frequency",
	"Kentei", "Ucd",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Unknown"
	}
	return typeNames[t]
}

// Grade is a Jōyō school grade.
type Grade int

const (
	NoGrade Grade = iota
	G1
	G2
	G3
	G4
	G5
	G6
	S // secondary school, taught in junior high
)

var gradeNames = [...]string{"None", "G1", "G2", "G3", "G4", "G5", "G6", "S"}

func (g Grade) String() string {
	if g < 0 || int(g) >= len(gradeNames) {
		return "None"
	}
	return gradeNames[g]
}

// JlptLevel is a Japanese Language Proficiency Test level, N5 (easiest) to
// N1 (hardest), or NoLevel if the Kanji isn't on any JLPT list.
type JlptLevel int

const (
	NoLevel JlptLevel = iota
	N5
	N4
	N3
	N2
	N1
)

var jlptLevelNames = [...]string{"None", "N5", "N4", "N3", "N2", "N1"}

func (l JlptLevel) String() string {
	if l < 0 || int(l) >= len(jlptLevelNames) {
		return "None"
	}
	return jlptLevelNames[l]
}

// KenteiKyu is a Kanji Kentei (漢字検定) level.
type KenteiKyu int

const (
	NoKyu KenteiKyu = iota
	K10
	K9
	K8
	K7
	K6
	K5
	K4
	K3
	KJ2
	K2
	KJ1
	K1
)

var kenteiKyuNames = [...]string{
	"None", "K10", "K9", "K8", "K7", "K6", "K5", "K4", "K3", "KJ2", "K2",
	"KJ1", "K1",
}

func (k KenteiKyu) String() string {
	if k < 0 || int(k) >= len(kenteiKyuNames) {
		return "None"
	}
	return kenteiKyuNames[k]
}

// JinmeiReason is the reason a Jinmei Kanji is on the list (see
// jinmei.txt's Reason column).
type JinmeiReason int

const (
	NoReason JinmeiReason = iota
	Names   // allowed for use in names
	Print   // allowed due to being in common print use
	Variant // a variant of a Jōyō Kanji
	Moved   // moved from Jōyō to Jinmei in a prior revision
	Other
)

var jinmeiReasonNames = [...]string{
	"None", "Names", "Print", "Variant", "Moved", "Other",
}

func (r JinmeiReason) String() string {
	if r < 0 || int(r) >= len(jinmeiReasonNames) {
		return "None"
	}
	return jinmeiReasonNames[r]
}
