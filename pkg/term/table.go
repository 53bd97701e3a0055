package term

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// Table formats rows of cells into aligned, space-padded columns using
// DisplaySize so wide (Kanji/Kana) cells line up with narrow (ASCII) ones.
type Table struct {
	Header []string
	Rows   [][]string

	// HeaderColor, when non-nil, colors the header row (e.g. color.New(color.Bold)).
	HeaderColor *color.Color
}

// NewTable creates a Table with the given header row.
func NewTable(header ...string) *Table { return &Table{Header: header} }

// AddRow appends a row; it must have the same number of cells as Header.
func (t *Table) AddRow(cells ...string) { t.Rows = append(t.Rows, cells) }

func (t *Table) widths() []int {
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = DisplaySize(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i >= len(widths) {
				continue
			}
			if w := DisplaySize(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// Fprint writes the table to w, columns separated by two spaces.
func (t *Table) Fprint(w io.Writer) {
	widths := t.widths()
	headerLine := formatRow(t.Header, widths)
	if t.HeaderColor != nil {
		t.HeaderColor.Fprintln(w, headerLine)
	} else {
		io.WriteString(w, headerLine+"\n")
	}
	for _, row := range t.Rows {
		io.WriteString(w, formatRow(row, widths)+"\n")
	}
}

func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		w := 0
		if i < len(widths) {
			w = widths[i]
		}
		if i == len(cells)-1 {
			parts[i] = cell
		} else {
			parts[i] = Pad(cell, w)
		}
	}
	return strings.Join(parts, "  ")
}
