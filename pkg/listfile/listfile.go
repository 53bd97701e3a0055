// Package listfile loads simple one-or-multi-Kanji-per-line list files, such
// as the JLPT level lists (n1.txt..n5.txt) and Kentei kyū lists (k10.txt..
// k1.txt, kj2.txt, kj1.txt).
package listfile

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/anzumura/kanjitools-go/internal/errs"
)

// List holds the ordered, deduplicated Kanji names loaded from one file,
// plus a name->position index (position is 0-based, in file order).
type List struct {
	Name     string
	FileName string
	entries  []string
	position map[string]int
}

// Load reads a list file: one or more whitespace-separated Kanji names per
// line, blank lines ignored. name identifies the list (e.g. "N5", "K10")
// for error messages and for cross-file uniqueness checks via a Sets.
func Load(name, path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.NewDomain("listfile: cannot open %s: %v", path, err)
	}
	defer f.Close()

	l := &List{Name: name, FileName: filepath.Base(path), position: make(map[string]int)}
	scanner := bufio.NewScanner(f)
	row := 0
	for scanner.Scan() {
		row++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		for _, tok := range strings.Fields(line) {
			if _, dup := l.position[tok]; dup {
				return nil, errs.NewDomainAt(l.FileName, row, "duplicate entry %q in list %s", tok, name)
			}
			l.position[tok] = len(l.entries)
			l.entries = append(l.entries, tok)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return l, nil
}

// Entries returns the Kanji names in file order.
func (l *List) Entries() []string { return l.entries }

// Len returns the number of entries.
func (l *List) Len() int { return len(l.entries) }

// Contains reports whether name is in this list.
func (l *List) Contains(name string) bool {
	_, ok := l.position[name]
	return ok
}

// Position returns name's 0-based position in the file, or -1 if absent.
func (l *List) Position(name string) int {
	if p, ok := l.position[name]; ok {
		return p
	}
	return -1
}

// Sets tracks which list each Kanji name appeared in across multiple Lists,
// used to enforce that a Kanji belongs to at most one list within a related
// group (e.g. a single JLPT level, a single Kentei kyū).
type Sets struct {
	owner map[string]string // kanji name -> list name that first claimed it
}

// NewSets creates an empty cross-file uniqueness tracker.
func NewSets() *Sets { return &Sets{owner: make(map[string]string)} }

// Add claims every entry of l for l.Name, erroring if any entry was already
// claimed by a different list.
func (s *Sets) Add(l *List) error {
	for _, name := range l.entries {
		if owner, dup := s.owner[name]; dup && owner != l.Name {
			return errs.NewDomainAt(l.FileName, l.Position(name)+1,
				"%q already present in list %s", name, owner)
		}
		s.owner[name] = l.Name
	}
	return nil
}

// Owner returns the list name that claimed a Kanji name, if any.
func (s *Sets) Owner(name string) (string, bool) {
	o, ok := s.owner[name]
	return o, ok
}
