package kanji

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/anzumura/kanjitools-go/internal/errs"
	"github.com/anzumura/kanjitools-go/pkg/columnfile"
	"github.com/anzumura/kanjitools-go/pkg/listfile"
	"github.com/anzumura/kanjitools-go/pkg/radical"
	"github.com/anzumura/kanjitools-go/pkg/ucd"
)

const maxFrequencyRank = 2501

// frequencyBucketSize splits the 2501-entry frequency list into 10 buckets
// (250 each, the last holding 251) the way frequency_list(bucket) indexes it.
const frequencyBucketSize = 250

// Data is the fully loaded, cross-indexed Kanji catalog.
type Data struct {
	Ucd      *ucd.Data
	Radicals *radical.Catalog

	byName           map[string]*Kanji
	compatibilityMap map[string]string // compatibility name -> variant-selector name
	typesMap         map[Type][]*Kanji
	gradesMap        map[Grade][]*Kanji
	levelsMap        map[JlptLevel][]*Kanji
	kyusMap          map[KenteiKyu][]*Kanji
	frequencies      [][]*Kanji // 10 buckets
	morohashiMap     map[string][]*Kanji
	nelsonMap        map[int][]*Kanji

	maxFrequency int

	// insertion sanity-check failures, collected rather than aborting load
	Warnings []string
}

// Paths names every input file Load needs, relative to a data directory.
type Paths struct {
	Dir string
}

func (p Paths) path(name string) string { return filepath.Join(p.Dir, name) }

// Load reads the full Kanji catalog from the data directory in the strict
// order spec.md requires: UCD, Radicals, frequency readings, Jouyou, Linked
// Jinmei, Jinmei, Extra, JLPT lists, Frequency list, Kentei lists, then a
// UCD sweep for everything left over.
func Load(p Paths) (*Data, error) {
	u, err := ucd.Load(p.path("ucd.txt"))
	if err != nil {
		return nil, err
	}
	r, err := radical.Load(p.path("radicals.txt"))
	if err != nil {
		return nil, err
	}
	d := &Data{
		Ucd: u, Radicals: r,
		byName:           make(map[string]*Kanji),
		compatibilityMap: make(map[string]string),
		typesMap:         make(map[Type][]*Kanji),
		gradesMap:        make(map[Grade][]*Kanji),
		levelsMap:        make(map[JlptLevel][]*Kanji),
		kyusMap:          make(map[KenteiKyu][]*Kanji),
		frequencies:      make([][]*Kanji, 10),
		morohashiMap:     make(map[string][]*Kanji),
		nelsonMap:        make(map[int][]*Kanji),
	}

	freqReadings, err := loadFrequencyReadings(p.path("frequency-readings.txt"))
	if err != nil {
		return nil, err
	}

	jouyouOldNames := make(map[string][]string) // jouyou name -> its old names
	if err := d.loadJouyou(p.path("jouyou.txt"), jouyouOldNames); err != nil {
		return nil, err
	}
	linkedJinmeiTargets, err := d.loadLinkedJinmei(p.path("linked-jinmei.txt"))
	if err != nil {
		return nil, err
	}
	d.loadLinkedOld(jouyouOldNames, linkedJinmeiTargets)

	if err := d.loadJinmei(p.path("jinmei.txt"), linkedJinmeiTargets); err != nil {
		return nil, err
	}
	if err := d.loadExtra(p.path("extra.txt")); err != nil {
		return nil, err
	}

	for i, level := range []JlptLevel{N5, N4, N3, N2, N1} {
		path := p.path(jlptFile(i))
		if _, err := os.Stat(path); err != nil {
			continue
		}
		l, err := listfile.Load(level.String(), path)
		if err != nil {
			return nil, err
		}
		d.applyLevel(l, level)
	}

	if err := d.loadFrequencyList(p.path("frequency.txt"), freqReadings); err != nil {
		return nil, err
	}

	for _, kyu := range kenteiOrder {
		path := p.path(kenteiFile(kyu))
		if _, err := os.Stat(path); err != nil {
			continue
		}
		l, err := listfile.Load(kyu.String(), path)
		if err != nil {
			return nil, err
		}
		d.applyKyu(l, kyu)
	}

	d.sweepUcd()
	d.buildFrequencyBuckets()
	d.maxFrequency = 1
	for _, k := range d.byName {
		if k.frequency >= d.maxFrequency {
			d.maxFrequency = k.frequency + 1
		}
	}
	return d, nil
}

func jlptFile(i int) string {
	return filepath.Join("jlpt", "n"+[]string{"5", "4", "3", "2", "1"}[i]+".txt")
}

var kenteiOrder = []KenteiKyu{K10, K9, K8, K7, K6, K5, K4, K3, KJ2, K2, KJ1, K1}

func kenteiFile(k KenteiKyu) string {
	name := strings.ToLower(k.String())
	return filepath.Join("kentei", "k"+strings.TrimPrefix(name, "k")+".txt")
}

// insert adds k, recording warnings rather than failing the whole load on
// a sanity-check violation.
func (d *Data) insert(k *Kanji) {
	if _, dup := d.byName[k.Name]; dup {
		d.Warnings = append(d.Warnings, "duplicate Kanji name "+k.Name)
		return
	}
	d.checkAgainstUcd(k)
	d.byName[k.Name] = k
	if k.CompatibilityName != "" {
		if _, dup := d.compatibilityMap[k.CompatibilityName]; dup {
			d.Warnings = append(d.Warnings, "duplicate compatibility name "+k.CompatibilityName)
		} else {
			d.compatibilityMap[k.CompatibilityName] = k.Name
		}
	}
	d.typesMap[k.Type] = append(d.typesMap[k.Type], k)
	if k.HasGrade() {
		d.gradesMap[k.grade] = append(d.gradesMap[k.grade], k)
	}
	if k.HasLevel() {
		d.levelsMap[k.level] = append(d.levelsMap[k.level], k)
	}
	if k.HasKyu() {
		d.kyusMap[k.kyu] = append(d.kyusMap[k.kyu], k)
	}
	if k.MorohashiID != "" {
		d.morohashiMap[k.MorohashiID] = append(d.morohashiMap[k.MorohashiID], k)
	}
	for _, id := range k.NelsonIDs {
		d.nelsonMap[id] = append(d.nelsonMap[id], k)
	}
}

func (d *Data) checkAgainstUcd(k *Kanji) {
	name := k.Name
	if k.IsVariant() {
		name = k.CompatibilityName
	}
	e, ok := d.Ucd.Find(name)
	if !ok {
		d.Warnings = append(d.Warnings, "no UCD entry for "+k.Name)
		return
	}
	switch k.Type {
	case Jouyou:
		if !e.Joyo {
			d.Warnings = append(d.Warnings, k.Name+" is Jouyou but UCD entry isn't marked joyo")
		}
	case Jinmei:
		if !e.Jinmei {
			d.Warnings = append(d.Warnings, k.Name+" is Jinmei but UCD entry isn't marked jinmei")
		}
	case LinkedJinmei:
		if !e.Jinmei {
			d.Warnings = append(d.Warnings, k.Name+" is LinkedJinmei but UCD entry isn't marked jinmei")
		} else if !e.HasLinks() {
			d.Warnings = append(d.Warnings, k.Name+" is LinkedJinmei but UCD entry has no link")
		}
	}
}

// --- column file loaders ----------------------------------------------------

var (
	colNumber  = columnfile.NewColumn("Number")
	colName    = columnfile.NewColumn("Name")
	colRadical = columnfile.NewColumn("Radical")
	colOld     = columnfile.NewColumn("OldNames")
	colYear    = columnfile.NewColumn("Year")
	colStrokes = columnfile.NewColumn("Strokes")
	colGrade   = columnfile.NewColumn("Grade")
	colMeaning = columnfile.NewColumn("Meaning")
	colReading = columnfile.NewColumn("Reading")
	colReason  = columnfile.NewColumn("Reason")
	colNewName = columnfile.NewColumn("NewName")
)

func gradeFromString(s string) Grade {
	for g := G1; g <= S; g++ {
		if g.String() == s {
			return g
		}
	}
	return NoGrade
}

func reasonFromString(s string) JinmeiReason {
	for r := Names; r <= Other; r++ {
		if r.String() == s {
			return r
		}
	}
	return NoReason
}

func (d *Data) loadJouyou(path string, oldNames map[string][]string) error {
	cf, err := columnfile.Open(path, []columnfile.Column{
		colNumber, colName, colRadical, colOld, colYear, colStrokes, colGrade, colMeaning, colReading,
	}, 0)
	if err != nil {
		return err
	}
	for {
		ok, err := cf.NextRow()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		number, err := cf.GetU64(colNumber, 0)
		if err != nil {
			return err
		}
		radicalNum, err := cf.GetU64(colRadical, 214)
		if err != nil {
			return err
		}
		strokes, err := cf.GetU64(colStrokes, 53)
		if err != nil {
			return err
		}
		year, _, err := cf.GetOptU64(colYear, 0)
		if err != nil {
			return err
		}
		grade := gradeFromString(cf.Get(colGrade))
		if grade == NoGrade {
			return cf.Error("every Jouyou Kanji must have a grade")
		}
		names := splitCSV(cf.Get(colOld))
		k := &Kanji{
			Name: cf.Get(colName), Number: int(number), Radical: int(radicalNum),
			Strokes: int(strokes), Type: Jouyou, grade: grade, year: int(year),
			meaning: cf.Get(colMeaning), reading: cf.Get(colReading), OldNames: names,
		}
		oldNames[k.Name] = names
		d.insert(k)
	}
	return nil
}

func (d *Data) loadLinkedJinmei(path string) (map[string]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return map[string]bool{}, nil // file is optional in minimal fixtures
	}
	defer f.Close()
	targets := make(map[string]bool)
	scanner := bufio.NewScanner(f)
	row := 0
	for scanner.Scan() {
		row++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) != 2 {
			return nil, errs.NewDomainAt("linked-jinmei.txt", row, "expected 2 tab-separated names")
		}
		jouyouName, jinmeiName := parts[0], parts[1]
		if _, dup := d.byName[jinmeiName]; dup {
			return nil, errs.NewDomainAt("linked-jinmei.txt", row, "%q already exists as Jouyou", jinmeiName)
		}
		src, ok := d.byName[jouyouName]
		if !ok {
			return nil, errs.NewDomainAt("linked-jinmei.txt", row, "unknown Jouyou target %q", jouyouName)
		}
		d.insert(&Kanji{
			Name: jinmeiName, Radical: src.Radical, Strokes: src.Strokes,
			Type: LinkedJinmei, link: src,
		})
		targets[jouyouName] = true
	}
	return targets, scanner.Err()
}

func (d *Data) loadLinkedOld(jouyouOldNames map[string][]string, linkedJinmeiTargets map[string]bool) {
	for name, olds := range jouyouOldNames {
		if linkedJinmeiTargets[name] {
			continue
		}
		src := d.byName[name]
		for _, old := range olds {
			if _, exists := d.byName[old]; exists {
				continue
			}
			d.insert(&Kanji{Name: old, Radical: src.Radical, Strokes: src.Strokes, Type: LinkedOld, link: src})
		}
	}
}

func (d *Data) loadJinmei(path string, linkedJinmeiTargets map[string]bool) error {
	cf, err := columnfile.Open(path, []columnfile.Column{
		colNumber, colName, colRadical, colOld, colYear, colStrokes, colReason, colMeaning, colReading,
	}, 0)
	if err != nil {
		return err
	}
	for {
		ok, err := cf.NextRow()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		number, err := cf.GetU64(colNumber, 0)
		if err != nil {
			return err
		}
		radicalNum, err := cf.GetU64(colRadical, 214)
		if err != nil {
			return err
		}
		strokes, err := cf.GetU64(colStrokes, 53)
		if err != nil {
			return err
		}
		year, _, err := cf.GetOptU64(colYear, 0)
		if err != nil {
			return err
		}
		names := splitCSV(cf.Get(colOld))
		k := &Kanji{
			Name: cf.Get(colName), Number: int(number), Radical: int(radicalNum),
			Strokes: int(strokes), Type: Jinmei, year: int(year),
			reason: reasonFromString(cf.Get(colReason)),
			meaning: cf.Get(colMeaning), reading: cf.Get(colReading), OldNames: names,
		}
		d.insert(k)
		for _, old := range names {
			if _, exists := d.byName[old]; !exists {
				d.insert(&Kanji{Name: old, Radical: k.Radical, Strokes: k.Strokes, Type: LinkedJinmei, link: k})
			}
		}
	}
	return nil
}

func (d *Data) loadExtra(path string) error {
	cf, err := columnfile.Open(path, []columnfile.Column{
		colNumber, colName, colRadical, colStrokes, colMeaning, colReading, colNewName,
	}, 0)
	if err != nil {
		return err
	}
	for {
		ok, err := cf.NextRow()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		number, err := cf.GetU64(colNumber, 0)
		if err != nil {
			return err
		}
		radicalNum, err := cf.GetU64(colRadical, 214)
		if err != nil {
			return err
		}
		strokes, err := cf.GetU64(colStrokes, 53)
		if err != nil {
			return err
		}
		k := &Kanji{
			Name: cf.Get(colName), Number: int(number), Radical: int(radicalNum),
			Strokes: int(strokes), Type: Extra, meaning: cf.Get(colMeaning),
			reading: cf.Get(colReading), newName: cf.Get(colNewName),
		}
		d.insert(k)
	}
	return nil
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func (d *Data) applyLevel(l *listfile.List, level JlptLevel) {
	for _, name := range l.Entries() {
		if k, ok := d.byName[name]; ok {
			k.level = level
			d.levelsMap[level] = append(d.levelsMap[level], k)
		}
	}
}

func (d *Data) applyKyu(l *listfile.List, kyu KenteiKyu) {
	for _, name := range l.Entries() {
		if k, ok := d.byName[name]; ok {
			if !k.HasKyu() {
				k.kyu = kyu
				d.kyusMap[kyu] = append(d.kyusMap[kyu], k)
			}
			continue
		}
		k := &Kanji{Name: name, Type: Kentei, kyu: kyu}
		d.insert(k)
	}
}

func loadFrequencyReadings(path string) (map[string]string, error) {
	cf, err := columnfile.Open(path, []columnfile.Column{colName, colReading}, 0)
	if err != nil {
		return map[string]string{}, nil
	}
	m := make(map[string]string)
	for {
		ok, err := cf.NextRow()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		m[cf.Get(colName)] = cf.Get(colReading)
	}
	return m, nil
}

func (d *Data) loadFrequencyList(path string, readings map[string]string) error {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	rank := 0
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		rank++
		if rank > maxFrequencyRank {
			return errs.NewDomainAt("frequency.txt", rank, "more than %d entries", maxFrequencyRank)
		}
		if k, ok := d.byName[name]; ok {
			k.frequency = rank
			continue
		}
		d.insert(&Kanji{Name: name, Type: Frequency, frequency: rank, reading: readings[name]})
	}
	return scanner.Err()
}

func (d *Data) sweepUcd() {
	names := make([]string, 0)
	for name := range d.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	var ucdNames []string
	d.Ucd.ForEachName(func(name string) { ucdNames = append(ucdNames, name) })
	sort.Strings(ucdNames)
	for _, name := range ucdNames {
		if seen[name] {
			continue
		}
		e, _ := d.Ucd.Find(name)
		d.insert(&Kanji{
			Name: name, Radical: e.Radical, Strokes: e.Strokes, Type: Ucd,
			meaning: e.Meaning, reading: e.OnReading,
		})
	}
}

func (d *Data) buildFrequencyBuckets() {
	ranked := make([]*Kanji, 0, maxFrequencyRank)
	for _, k := range d.byName {
		if k.frequency > 0 {
			ranked = append(ranked, k)
		}
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].frequency < ranked[j].frequency })
	for _, k := range ranked {
		bucket := (k.frequency - 1) / frequencyBucketSize
		if bucket > 9 {
			bucket = 9
		}
		d.frequencies[bucket] = append(d.frequencies[bucket], k)
	}
}

// --- query API ---------------------------------------------------------------

// FindByName looks up a Kanji by name.
func (d *Data) FindByName(name string) (*Kanji, bool) {
	k, ok := d.byName[name]
	return k, ok
}

// FindByFrequency returns the Kanji at the given 1-based frequency rank.
func (d *Data) FindByFrequency(rank int) (*Kanji, bool) {
	for _, k := range d.byName {
		if k.frequency == rank {
			return k, true
		}
	}
	return nil, false
}

// FindByMorohashiID looks up every Kanji sharing a Morohashi id. A trailing
// "P" (used for "Primed" supplement ids) is accepted as part of the id.
func (d *Data) FindByMorohashiID(id string) []*Kanji { return d.morohashiMap[id] }

// FindByNelsonID looks up every Kanji sharing a Nelson id.
func (d *Data) FindByNelsonID(id int) []*Kanji { return d.nelsonMap[id] }

// GetType returns the Type of the Kanji named name, or Ucd if it is
// unknown (callers should check FindByName first if that distinction
// matters).
func (d *Data) GetType(name string) Type {
	if k, ok := d.byName[name]; ok {
		return k.Type
	}
	return Ucd
}

// GetCompatibilityName returns the variation-selector name that maps to the
// given compatibility name, if any.
func (d *Data) GetCompatibilityName(name string) (string, bool) {
	n, ok := d.compatibilityMap[name]
	return n, ok
}

// FrequencyList returns the Kanji in the given 0-based bucket (0..9), each
// holding 250 Kanji except the last, which holds 251.
func (d *Data) FrequencyList(bucket int) []*Kanji {
	if bucket < 0 || bucket >= len(d.frequencies) {
		return nil
	}
	return d.frequencies[bucket]
}

// MaxFrequency returns 1 + the highest frequency rank observed.
func (d *Data) MaxFrequency() int { return d.maxFrequency }

// UcdRadical returns the radical number for name, preferring an already
// loaded Kanji's radical, falling back to the given UCD entry.
func (d *Data) UcdRadical(name string, e *ucd.Entry) int {
	if k, ok := d.byName[name]; ok {
		return k.Radical
	}
	if e != nil {
		return e.Radical
	}
	return 0
}

// UcdStrokes returns the stroke count for name the same way UcdRadical does.
func (d *Data) UcdStrokes(name string, e *ucd.Entry) int {
	if k, ok := d.byName[name]; ok {
		return k.Strokes
	}
	if e != nil {
		return e.Strokes
	}
	return 0
}

// Len returns the number of loaded Kanji.
func (d *Data) Len() int { return len(d.byName) }

// TypeList returns every loaded Kanji of the given Type.
func (d *Data) TypeList(t Type) []*Kanji { return d.typesMap[t] }

// GradeList returns every loaded Kanji of the given Grade.
func (d *Data) GradeList(g Grade) []*Kanji { return d.gradesMap[g] }

// LevelList returns every loaded Kanji of the given JlptLevel.
func (d *Data) LevelList(l JlptLevel) []*Kanji { return d.levelsMap[l] }

// KyuList returns every loaded Kanji of the given KenteiKyu.
func (d *Data) KyuList(k KenteiKyu) []*Kanji { return d.kyusMap[k] }
