// Package group loads and indexes the meaning-group and pattern-group
// catalogs: sets of Kanji related either by meaning or by a shared
// phonetic/visual pattern.
package group

import (
	"strings"

	"github.com/anzumura/kanjitools-go/internal/errs"
	"github.com/anzumura/kanjitools-go/pkg/columnfile"
	"github.com/anzumura/kanjitools-go/pkg/kanji"
)

// Type distinguishes the two group catalogs.
type Type int

const (
	Meaning Type = iota
	Pattern
)

func (t Type) String() string {
	if t == Pattern {
		return "Pattern"
	}
	return "Meaning"
}

// PatternType classifies a Pattern group by how its Name is structured.
// Meaning groups are always PatternNone.
type PatternType int

const (
	PatternNone PatternType = iota
	Family
	Peer
	Reading
)

func (p PatternType) String() string {
	switch p {
	case Family:
		return "Family"
	case Peer:
		return "Peer"
	case Reading:
		return "Reading"
	default:
		return "None"
	}
}

// Group is one row of a group catalog: a number, a name, its Type, its
// PatternType (PatternNone for meaning groups), and its ordered, deduplicated
// member Kanji.
type Group struct {
	Number      int
	Name        string
	Type        Type
	PatternType PatternType
	Members     []*kanji.Kanji
}

// classify determines a pattern group's PatternType from its Name: a name
// starting with "：" is a Peer group; a name containing "：" elsewhere is a
// Family group (everything up to the colon is prepended as the first
// member); otherwise it's a Reading group.
func classify(name string) (PatternType, string) {
	const colon = "："
	idx := strings.Index(name, colon)
	switch {
	case idx == 0:
		return Peer, ""
	case idx > 0:
		return Family, name[:idx]
	default:
		return Reading, ""
	}
}

var (
	colNumber  = columnfile.NewColumn("Number")
	colName    = columnfile.NewColumn("Name")
	colMembers = columnfile.NewColumn("Members")
)

// Data is the fully loaded, cross-indexed group catalog.
type Data struct {
	meaning []Group
	pattern []Group

	byKanjiMeaning map[string][]*Group
	byKanjiPattern map[string]*Group // duplicates: first wins

	// Warnings records non-fatal issues: missing members looked up against
	// the Kanji catalog, and duplicate pattern-group membership.
	Warnings []string
}

// Load reads both the meaning-groups and pattern-groups files.
func Load(meaningPath, patternPath string, k *kanji.Data) (*Data, error) {
	d := &Data{
		byKanjiMeaning: make(map[string][]*Group),
		byKanjiPattern: make(map[string]*Group),
	}
	if err := d.loadFile(meaningPath, Meaning, k); err != nil {
		return nil, err
	}
	if err := d.loadFile(patternPath, Pattern, k); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Data) loadFile(path string, t Type, k *kanji.Data) error {
	cf, err := columnfile.Open(path, []columnfile.Column{colNumber, colName, colMembers}, 0)
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
		name := cf.Get(colName)
		memberNames := strings.Split(cf.Get(colMembers), ",")
		for i := range memberNames {
			memberNames[i] = strings.TrimSpace(memberNames[i])
		}

		patternType := PatternNone
		if t == Pattern {
			var prefix string
			patternType, prefix = classify(name)
			if prefix != "" {
				memberNames = append([]string{prefix}, memberNames...)
			}
		}

		g := &Group{Number: int(number), Name: name, Type: t, PatternType: patternType}
		seen := make(map[string]bool, len(memberNames))
		for _, mn := range memberNames {
			if mn == "" || seen[mn] {
				continue
			}
			seen[mn] = true
			kj, ok := k.FindByName(mn)
			if !ok {
				d.Warnings = append(d.Warnings, "group "+name+": unknown member "+mn)
				continue
			}
			g.Members = append(g.Members, kj)
		}
		if len(g.Members) < 2 {
			return errs.NewDomainAt(cf.FileName(), cf.CurrentRow(),
				"group %q has fewer than 2 resolvable members", name)
		}

		d.index(g, t)
	}
	return nil
}

func (d *Data) index(g *Group, t Type) {
	if t == Meaning {
		d.meaning = append(d.meaning, *g)
		stored := &d.meaning[len(d.meaning)-1]
		for _, m := range stored.Members {
			d.byKanjiMeaning[m.Name] = append(d.byKanjiMeaning[m.Name], stored)
		}
		return
	}
	d.pattern = append(d.pattern, *g)
	stored := &d.pattern[len(d.pattern)-1]
	for _, m := range stored.Members {
		if _, dup := d.byKanjiPattern[m.Name]; dup {
			d.Warnings = append(d.Warnings, m.Name+" already belongs to a pattern group")
			continue
		}
		d.byKanjiPattern[m.Name] = stored
	}
}

// MeaningGroups returns every loaded meaning group.
func (d *Data) MeaningGroups() []Group { return d.meaning }

// PatternGroups returns every loaded pattern group.
func (d *Data) PatternGroups() []Group { return d.pattern }

// MeaningGroupsFor returns every meaning group a Kanji belongs to.
func (d *Data) MeaningGroupsFor(name string) []*Group { return d.byKanjiMeaning[name] }

// PatternGroupFor returns the (single) pattern group a Kanji belongs to.
func (d *Data) PatternGroupFor(name string) (*Group, bool) {
	g, ok := d.byKanjiPattern[name]
	return g, ok
}
