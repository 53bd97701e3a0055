// Package radical loads and serves the 214 traditional Kangxi radicals used
// to classify Kanji.
package radical

import (
	"strconv"
	"strings"

	"github.com/anzumura/kanjitools-go/internal/errs"
	"github.com/anzumura/kanjitools-go/pkg/columnfile"
)

// Radical is a traditional radical: a number in 1..=214, its UTF-8 name (one
// character, possibly with variants), a long (English) name, an on/kun
// reading string, and example Kanji that use it. Two Radicals are equal when
// their numbers are equal.
type Radical struct {
	number   int
	name     string
	longName string
	reading  string
	examples []string
}

// Number returns the radical's number, 1..=214.
func (r Radical) Number() int { return r.number }

// Name returns the radical's UTF-8 character.
func (r Radical) Name() string { return r.name }

// LongName returns the radical's English name.
func (r Radical) LongName() string { return r.longName }

// Reading returns the radical's reading.
func (r Radical) Reading() string { return r.reading }

// Examples returns example Kanji that use this radical.
func (r Radical) Examples() []string { return r.examples }

// Equal reports whether two Radicals have the same number.
func (r Radical) Equal(o Radical) bool { return r.number == o.number }

func (r Radical) String() string { return r.longName }

const (
	minNumber = 1
	maxNumber = 214
)

var (
	colNumber   = columnfile.NewColumn("Number")
	colName     = columnfile.NewColumn("Name")
	colLongName = columnfile.NewColumn("LongName")
	colReading  = columnfile.NewColumn("Reading")
	colExamples = columnfile.NewColumn("Examples")
)

// Catalog holds all loaded Radicals, indexed by number and by name.
type Catalog struct {
	byNumber map[int]Radical
	byName   map[string]Radical
}

// Load reads the radicals.txt file at path, a column file with columns
// Number, Name, LongName, Reading, Examples (comma-separated).
func Load(path string) (*Catalog, error) {
	cf, err := columnfile.Open(path, []columnfile.Column{
		colNumber, colName, colLongName, colReading, colExamples,
	}, 0)
	if err != nil {
		return nil, err
	}
	c := &Catalog{byNumber: make(map[int]Radical), byName: make(map[string]Radical)}
	for {
		ok, err := cf.NextRow()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		n, err := cf.GetU64(colNumber, maxNumber)
		if err != nil {
			return nil, err
		}
		if n < minNumber {
			return nil, cf.Error("radical number must be in 1..=214")
		}
		r := Radical{
			number:   int(n),
			name:     cf.Get(colName),
			longName: cf.Get(colLongName),
			reading:  cf.Get(colReading),
			examples: splitNonEmpty(cf.Get(colExamples), ","),
		}
		if _, dup := c.byNumber[r.number]; dup {
			return nil, cf.Error("duplicate radical number " + strconv.Itoa(r.number))
		}
		if _, dup := c.byName[r.name]; dup {
			return nil, cf.Error("duplicate radical name " + r.name)
		}
		c.byNumber[r.number] = r
		c.byName[r.name] = r
	}
	if len(c.byNumber) == 0 {
		return nil, errs.NewDomainAt(cf.FileName(), 0, "no radicals loaded")
	}
	return c, nil
}

func splitNonEmpty(s, sep string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ByNumber looks up a Radical by its 1..=214 number.
func (c *Catalog) ByNumber(n int) (Radical, bool) {
	r, ok := c.byNumber[n]
	return r, ok
}

// ByName looks up a Radical by its UTF-8 character name.
func (c *Catalog) ByName(name string) (Radical, bool) {
	r, ok := c.byName[name]
	return r, ok
}

// Len returns the number of loaded Radicals.
func (c *Catalog) Len() int { return len(c.byNumber) }
