// Package ucd loads and serves character metadata extracted from Unicode's
// UCD (Unihan-derived) data: block, version, radical, stroke count, Pinyin,
// Morohashi/Nelson ids, source sets, Jōyō/Jinmei flags, variant links, and
// readings.
package ucd

import (
	"sort"
	"strconv"
	"strings"

	"github.com/anzumura/kanjitools-go/internal/errs"
	"github.com/anzumura/kanjitools-go/pkg/columnfile"
	"github.com/anzumura/kanjitools-go/pkg/kana"
	"github.com/anzumura/kanjitools-go/pkg/mbutf8"
	"github.com/mozillazg/go-pinyin"
)

// LinkType identifies the XML property a Ucd link came from. The "_R"
// variants additionally mean the link was used to pull in readings; they
// sort before their non-"_R" counterpart so a '<' comparison finds every
// reading-link in one range. Semantic only exists in its "_R" form.
type LinkType int

const (
	CompatibilityR LinkType = iota
	DefinitionR
	JinmeiR
	SemanticR
	SimplifiedR
	TraditionalR
	Compatibility
	Definition
	Jinmei
	Simplified
	Traditional
	NoLink
)

var linkTypeNames = [...]string{
	"Compatibility*", "Definition*", "Jinmei*", "Semantic*", "Simplified*",
	"Traditional*", "Compatibility", "Definition", "Jinmei", "Simplified",
	"Traditional", "None",
}

func (t LinkType) String() string {
	if t < 0 || int(t) >= len(linkTypeNames) {
		return "None"
	}
	return linkTypeNames[t]
}

// IsReadingLink reports whether t is one of the "_R" variants.
func (t LinkType) IsReadingLink() bool { return t <= TraditionalR }

func parseLinkType(s string) (LinkType, error) {
	for i, n := range linkTypeNames {
		if n == s {
			return LinkType(i), nil
		}
	}
	return NoLink, errs.NewDomain("ucd: unrecognized link type %q", s)
}

// Link is one entry in a Ucd record's link list: the code and name of
// another Ucd entry this one links to.
type Link struct {
	Code rune
	Name string
}

// Entry is a single row loaded from ucd.txt.
type Entry struct {
	Code          rune
	Name          string
	Block         string
	Version       string
	Radical       int
	Strokes       int
	VariantStrokes int
	Pinyin        string
	MorohashiID   string
	NelsonIDs     string
	Sources       string
	JSource       string
	Joyo          bool
	Jinmei        bool
	Links         []Link
	LinkType      LinkType
	Meaning       string
	OnReading     string
	KunReading    string
}

// CodeAndName formats the entry as "[XXXX] 名", the code zero-padded to at
// least 4 hex digits.
func (e Entry) CodeAndName() string {
	return "[" + strings.ToUpper(hex4(e.Code)) + "] " + e.Name
}

func hex4(r rune) string {
	s := strconv.FormatInt(int64(r), 16)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}

// HasLinks reports whether the entry links to any other entries.
func (e Entry) HasLinks() bool { return len(e.Links) > 0 }

// LinkedReadings reports whether the entry's link is a reading-pulling link.
func (e Entry) LinkedReadings() bool { return e.HasLinks() && e.LinkType.IsReadingLink() }

// GetReadingsAsKana concatenates the on-reading (converted Rōmaji->Katakana)
// with the kun-reading (converted Rōmaji->Hiragana), comma-separated within
// and between the two lists.
func GetReadingsAsKana(e Entry) string {
	conv := kana.NewConverter(kana.Katakana, kana.None)
	on := convertList(conv, e.OnReading)
	conv.SetTarget(kana.Hiragana)
	kun := convertList(conv, e.KunReading)
	switch {
	case on == "" && kun == "":
		return ""
	case on == "":
		return kun
	case kun == "":
		return on
	default:
		return on + "," + kun
	}
}

func convertList(conv *kana.Converter, readings string) string {
	if readings == "" {
		return ""
	}
	parts := strings.Split(readings, ",")
	for i, p := range parts {
		parts[i] = conv.Convert(strings.TrimSpace(p))
	}
	return strings.Join(parts, ",")
}

var columns = []columnfile.Column{
	columnfile.NewColumn("Code"), columnfile.NewColumn("Name"),
	columnfile.NewColumn("Block"), columnfile.NewColumn("Version"),
	columnfile.NewColumn("Radical"), columnfile.NewColumn("Strokes"),
	columnfile.NewColumn("VStrokes"), columnfile.NewColumn("Pinyin"),
	columnfile.NewColumn("Morohashi"), columnfile.NewColumn("NelsonIds"),
	columnfile.NewColumn("Sources"), columnfile.NewColumn("JSource"),
	columnfile.NewColumn("Joyo"), columnfile.NewColumn("Jinmei"),
	columnfile.NewColumn("LinkCodes"), columnfile.NewColumn("LinkNames"),
	columnfile.NewColumn("LinkType"), columnfile.NewColumn("Meaning"),
	columnfile.NewColumn("On"), columnfile.NewColumn("Kun"),
}

var (
	cCode, cName, cBlock, cVersion, cRadical, cStrokes, cVStrokes, cPinyin,
	cMorohashi, cNelson, cSources, cJSource, cJoyo, cJinmei, cLinkCodes,
	cLinkNames, cLinkType, cMeaning, cOn, cKun = columns[0], columns[1],
	columns[2], columns[3], columns[4], columns[5], columns[6], columns[7],
	columns[8], columns[9], columns[10], columns[11], columns[12], columns[13],
	columns[14], columns[15], columns[16], columns[17], columns[18], columns[19]
)

// Data is the loaded UCD catalog: the primary name->Entry map plus the two
// auxiliary link maps used by Find.
type Data struct {
	byName       map[string]Entry
	linkedJinmei map[string]string   // jinmei link target name -> linking name
	linkedOther  map[string][]string // non-jinmei link target name -> linking names
}

// Load reads ucd.txt at path.
func Load(path string) (*Data, error) {
	cf, err := columnfile.Open(path, columns, 0)
	if err != nil {
		return nil, err
	}
	d := &Data{
		byName:       make(map[string]Entry),
		linkedJinmei: make(map[string]string),
		linkedOther:  make(map[string][]string),
	}
	for {
		ok, err := cf.NextRow()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		e, err := d.parseRow(cf)
		if err != nil {
			return nil, err
		}
		if _, dup := d.byName[e.Name]; dup {
			return nil, cf.Error("duplicate UCD name " + e.Name)
		}
		d.byName[e.Name] = e
		for _, l := range e.Links {
			if e.LinkType == Jinmei || e.LinkType == JinmeiR {
				d.linkedJinmei[l.Name] = e.Name
			} else {
				d.linkedOther[l.Name] = append(d.linkedOther[l.Name], e.Name)
			}
		}
	}
	return d, nil
}

func (d *Data) parseRow(cf *columnfile.ColumnFile) (Entry, error) {
	code, err := cf.GetChar32(cCode)
	if err != nil {
		return Entry{}, err
	}
	name := cf.Get(cName)
	if mbutf8.GetCode(name) != code {
		return Entry{}, cf.Error("code does not match name " + name)
	}
	radical, err := cf.GetU64(cRadical, 214)
	if err != nil {
		return Entry{}, err
	}
	strokes, err := cf.GetU64(cStrokes, 53)
	if err != nil {
		return Entry{}, err
	}
	var vstrokes uint64
	if !cf.IsEmpty(cVStrokes) {
		vstrokes, err = cf.GetU64(cVStrokes, 33)
		if err != nil {
			return Entry{}, err
		}
	}
	joyo, err := cf.GetBool(cJoyo)
	if err != nil {
		return Entry{}, err
	}
	jinmei, err := cf.GetBool(cJinmei)
	if err != nil {
		return Entry{}, err
	}
	linkType := NoLink
	if s := cf.Get(cLinkType); s != "" {
		linkType, err = parseLinkType(s)
		if err != nil {
			return Entry{}, err
		}
	}
	links, err := parseLinks(cf, cLinkCodes, cLinkNames)
	if err != nil {
		return Entry{}, err
	}
	if len(links) > 0 && linkType == NoLink {
		return Entry{}, cf.Error("entry has links but no link type")
	}
	e := Entry{
		Code: code, Name: name, Block: cf.Get(cBlock), Version: cf.Get(cVersion),
		Radical: int(radical), Strokes: int(strokes), VariantStrokes: int(vstrokes),
		Pinyin: cf.Get(cPinyin), MorohashiID: cf.Get(cMorohashi), NelsonIDs: cf.Get(cNelson),
		Sources: cf.Get(cSources), JSource: cf.Get(cJSource), Joyo: joyo, Jinmei: jinmei,
		Links: links, LinkType: linkType, Meaning: cf.Get(cMeaning), OnReading: cf.Get(cOn),
		KunReading: cf.Get(cKun),
	}
	if e.OnReading == "" && e.KunReading == "" && e.MorohashiID == "" && e.JSource == "" {
		return Entry{}, cf.Error("entry needs at least one reading, Morohashi id, or JSource")
	}
	return e, nil
}

func parseLinks(cf *columnfile.ColumnFile, codesCol, namesCol columnfile.Column) ([]Link, error) {
	codes := splitNonEmpty(cf.Get(codesCol))
	names := splitNonEmpty(cf.Get(namesCol))
	if len(codes) != len(names) {
		return nil, cf.Error("link codes and names count mismatch")
	}
	links := make([]Link, len(codes))
	for i := range codes {
		r, err := cf.GetChar32Value(codesCol, codes[i])
		if err != nil {
			return nil, err
		}
		links[i] = Link{Code: r, Name: names[i]}
	}
	return links, nil
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// Find looks up a Ucd entry by name. If name carries a variation selector it
// is stripped, and the resulting base name is first looked up in the
// jinmei-link map (compatibility form -> variant-selector form), then in the
// primary map.
func (d *Data) Find(name string) (Entry, bool) {
	base := kana.NoVariationSelector(name)
	if base != name {
		if linked, ok := d.linkedJinmei[base]; ok {
			if e, ok := d.byName[linked]; ok {
				return e, true
			}
		}
		if e, ok := d.byName[base]; ok {
			return e, true
		}
	}
	e, ok := d.byName[name]
	return e, ok
}

// Len returns the number of loaded entries.
func (d *Data) Len() int { return len(d.byName) }

// ForEachName calls fn once for every loaded entry's name, in unspecified
// order.
func (d *Data) ForEachName(fn func(name string)) {
	for name := range d.byName {
		fn(name)
	}
}

// LinkedJinmeiSource returns the name that links to target via a Jinmei
// link, if any.
func (d *Data) LinkedJinmeiSource(target string) (string, bool) {
	n, ok := d.linkedJinmei[target]
	return n, ok
}

// LinkedOtherSources returns the names that link to target via a
// non-Jinmei link, sorted for deterministic iteration.
func (d *Data) LinkedOtherSources(target string) []string {
	names := append([]string(nil), d.linkedOther[target]...)
	sort.Strings(names)
	return names
}

// pinyinFallback derives a Pinyin reading for Kanji that lack one in the
// UCD data, using the go-pinyin conversion of the (Chinese-reused) Unicode
// character when the data table doesn't already supply one.
func pinyinFallback(name string) string {
	args := pinyin.NewArgs()
	args.Style = pinyin.Tone
	result := pinyin.Pinyin(name, args)
	if len(result) == 0 || len(result[0]) == 0 {
		return ""
	}
	return result[0][0]
}

// PinyinOrDerived returns e's Pinyin reading, falling back to a derived
// Mandarin reading via go-pinyin when the UCD data didn't supply one.
func (e Entry) PinyinOrDerived() string {
	if e.Pinyin != "" {
		return e.Pinyin
	}
	return pinyinFallback(e.Name)
}
