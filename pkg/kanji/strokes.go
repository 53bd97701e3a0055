package kanji

import (
	"fmt"
	"io"
	"sort"
)

// CheckStrokes writes one line per loaded Kanji whose stroke count
// disagrees with its UCD entry's strokes/variant_strokes, a diagnostic
// against data-entry mistakes across the two sources.
func (d *Data) CheckStrokes(w io.Writer) int {
	names := make([]string, 0, len(d.byName))
	for name := range d.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	mismatches := 0
	for _, name := range names {
		k := d.byName[name]
		lookup := name
		if k.IsVariant() {
			lookup = k.CompatibilityName
		}
		e, ok := d.Ucd.Find(lookup)
		if !ok {
			continue
		}
		if k.Strokes != e.Strokes && k.Strokes != e.VariantStrokes {
			fmt.Fprintf(w, "%s: Kanji strokes %d, UCD strokes %d (variant %d)\n",
				name, k.Strokes, e.Strokes, e.VariantStrokes)
			mismatches++
		}
	}
	return mismatches
}
