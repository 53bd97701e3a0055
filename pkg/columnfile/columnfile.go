// Package columnfile reads delimiter-separated text files with a header row
// naming each column, the way the Kanji, Radical and UCD catalogs are
// distributed. Rows are read sequentially with NextRow; values for
// the current row are fetched by Column rather than by position, so callers
// don't depend on the column order used in any particular file.
package columnfile

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/anzumura/kanjitools-go/internal/errs"
)

// ColumnFile reads one delimiter-separated file. It is not safe for
// concurrent use by multiple goroutines.
type ColumnFile struct {
	file      *os.File
	scanner   *bufio.Scanner
	delimiter byte
	fileName  string

	currentRow int
	rowValues  []string

	// columnToPosition maps a Column's global number to its position in
	// rowValues for this file; -1 means the column isn't present here.
	columnToPosition map[int]int
}

// Open creates a ColumnFile for path, processing its header row and
// resolving each of columns to its position. delim defaults to tab when 0.
func Open(path string, columns []Column, delim byte) (*ColumnFile, error) {
	if delim == 0 {
		delim = '\t'
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.NewDomain("columnfile: cannot open %s: %v", path, err)
	}
	cf := &ColumnFile{
		file:      f,
		scanner:   bufio.NewScanner(f),
		delimiter: delim,
		fileName:  filepath.Base(path),
	}
	cf.scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !cf.scanner.Scan() {
		f.Close()
		return nil, errs.NewDomainAt(cf.fileName, 0, "missing header row")
	}
	if err := cf.processHeaderRow(cf.scanner.Text(), columns); err != nil {
		f.Close()
		return nil, err
	}
	return cf, nil
}

func (cf *ColumnFile) processHeaderRow(line string, columns []Column) error {
	fields := strings.Split(line, string(cf.delimiter))
	byName := make(map[string]int, len(columns))
	for _, c := range columns {
		if _, dup := byName[c.name]; dup {
			return errs.NewDomainAt(cf.fileName, 0, "duplicate column %q", c.name)
		}
		byName[c.name] = c.number
	}
	cf.columnToPosition = make(map[int]int, len(columns))
	for _, c := range columns {
		cf.columnToPosition[c.number] = -1
	}
	for pos, name := range fields {
		number, ok := byName[name]
		if !ok {
			return errs.NewDomainAt(cf.fileName, 0, "unrecognized header column %q", name)
		}
		cf.columnToPosition[number] = pos
	}
	for _, c := range columns {
		if cf.columnToPosition[c.number] == -1 {
			return errs.NewDomainAt(cf.fileName, 0, "column %q not found in header", c.name)
		}
	}
	cf.rowValues = make([]string, len(fields))
	return nil
}

// Columns returns the number of columns in this file.
func (cf *ColumnFile) Columns() int { return len(cf.rowValues) }

// CurrentRow returns the current row number; 0 means NextRow hasn't been
// called yet.
func (cf *ColumnFile) CurrentRow() int { return cf.currentRow }

// FileName returns the base name of the file being processed.
func (cf *ColumnFile) FileName() string { return cf.fileName }

// NextRow reads the next row. It returns false (with a nil error) at EOF.
func (cf *ColumnFile) NextRow() (bool, error) {
	if !cf.scanner.Scan() {
		if err := cf.scanner.Err(); err != nil {
			return false, err
		}
		cf.file.Close()
		return false, nil
	}
	cf.currentRow++
	fields := strings.Split(cf.scanner.Text(), string(cf.delimiter))
	if len(fields) != len(cf.rowValues) {
		return false, cf.errorf("row has %d columns, expected %d", len(fields), len(cf.rowValues))
	}
	cf.rowValues = fields
	return true, nil
}

func (cf *ColumnFile) position(c Column) int {
	pos, ok := cf.columnToPosition[c.number]
	if !ok || pos < 0 {
		panic("columnfile: column " + c.name + " not part of this file")
	}
	return pos
}

// Get returns the value for c in the current row.
func (cf *ColumnFile) Get(c Column) string {
	return cf.rowValues[cf.position(c)]
}

// IsEmpty reports whether the value for c in the current row is empty.
func (cf *ColumnFile) IsEmpty(c Column) bool { return cf.Get(c) == "" }

// GetU64 parses the value for c as an unsigned integer, erroring if it
// doesn't parse or (when maxValue is non-zero) exceeds maxValue.
func (cf *ColumnFile) GetU64(c Column, maxValue uint64) (uint64, error) {
	return cf.parseU64(c, cf.Get(c), maxValue)
}

func (cf *ColumnFile) parseU64(c Column, s string, maxValue uint64) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, cf.columnError("invalid number", c, s)
	}
	if maxValue != 0 && v > maxValue {
		return 0, cf.columnError("value exceeds max", c, s)
	}
	return v, nil
}

// GetOptU64 is like GetU64 but returns (0, false, nil) when the cell is
// empty; the bool reports whether the cell had a value.
func (cf *ColumnFile) GetOptU64(c Column, maxValue uint64) (uint64, bool, error) {
	if cf.IsEmpty(c) {
		return 0, false, nil
	}
	v, err := cf.GetU64(c, maxValue)
	return v, true, err
}

// GetU8/GetU16 are convenience wrappers around GetU64 for narrower types.
func (cf *ColumnFile) GetU8(c Column) (uint8, error) {
	v, err := cf.GetU64(c, 255)
	return uint8(v), err
}

func (cf *ColumnFile) GetU16(c Column) (uint16, error) {
	v, err := cf.GetU64(c, 65535)
	return uint16(v), err
}

// GetBool converts 'Y'/'T' to true, 'N'/'F'/empty to false.
func (cf *ColumnFile) GetBool(c Column) (bool, error) {
	switch s := cf.Get(c); s {
	case "Y", "T":
		return true, nil
	case "N", "F", "":
		return false, nil
	default:
		return false, cf.columnError("invalid boolean", c, cf.Get(c))
	}
}

// GetChar32 parses the value for c as a 4 or 5 hex digit Unicode code point.
func (cf *ColumnFile) GetChar32(c Column) (rune, error) {
	return cf.parseChar32(c, cf.Get(c))
}

// GetChar32Value is like GetChar32 but parses s instead of the Column's cell
// value; c is only used to attribute an error to a column name, which is
// helpful when parsing a cell containing comma-separated code points.
func (cf *ColumnFile) GetChar32Value(c Column, s string) (rune, error) {
	return cf.parseChar32(c, s)
}

func (cf *ColumnFile) parseChar32(c Column, s string) (rune, error) {
	if len(s) != 4 && len(s) != 5 {
		return 0, cf.columnError("expected 4 or 5 hex digits", c, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, cf.columnError("invalid hex value", c, s)
	}
	return rune(v), nil
}

// Error reports msg with file and row context.
func (cf *ColumnFile) Error(msg string) error { return cf.errorf("%s", msg) }

func (cf *ColumnFile) errorf(format string, a ...any) error {
	return errs.NewDomainAt(cf.fileName, cf.currentRow, format, a...)
}

func (cf *ColumnFile) columnError(msg string, c Column, value string) error {
	return cf.errorf("%s: column %q, value %q", msg, c.name, value)
}
