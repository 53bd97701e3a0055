// Package cliconfig resolves the "-data"/"-debug"/"-info" flag family shared
// by every cmd/ driver and configures zerolog to match.
package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/anzumura/kanjitools-go/pkg/kanji"
)

const dataDirName = "data"

// Flags holds the common flag values every driver exposes.
type Flags struct {
	Data  string
	Debug bool
	Info  bool
}

// Register adds -data, -debug and -info to fs.
func Register(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Data, "data", "", "data directory (default: search upward from cwd and the executable's directory)")
	fs.BoolVar(&f.Debug, "debug", false, "full debug output")
	fs.BoolVar(&f.Info, "info", false, "summary debug output")
	return f
}

// Logger builds a zerolog.Logger at the level implied by Debug/Info: Debug
// wins over Info, Info wins over the default (warn-and-above only).
func (f *Flags) Logger() zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case f.Debug:
		level = zerolog.DebugLevel
	case f.Info:
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()
}

// ResolveDataDir returns f.Data if set, otherwise walks upward from cwd and
// from the running executable's directory looking for a directory named
// "data".
func (f *Flags) ResolveDataDir() (string, error) {
	if f.Data != "" {
		return f.Data, nil
	}
	if cwd, err := os.Getwd(); err == nil {
		if dir, ok := findUpward(cwd); ok {
			return dir, nil
		}
	}
	if exe, err := os.Executable(); err == nil {
		if dir, ok := findUpward(filepath.Dir(exe)); ok {
			return dir, nil
		}
	}
	return "", fmt.Errorf("could not locate a %q directory from cwd or executable path; pass -data explicitly", dataDirName)
}

func findUpward(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, dataDirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// LoadKanjiData resolves the data directory and loads the full Kanji
// catalog, logging load Warnings at debug level.
func (f *Flags) LoadKanjiData(log zerolog.Logger) (*kanji.Data, error) {
	dir, err := f.ResolveDataDir()
	if err != nil {
		return nil, err
	}
	log.Debug().Str("dir", dir).Msg("loading kanji data")
	d, err := kanji.Load(kanji.Paths{Dir: dir})
	if err != nil {
		return nil, fmt.Errorf("loading kanji data from %s: %w", dir, err)
	}
	for _, w := range d.Warnings {
		log.Debug().Msg(w)
	}
	log.Info().Int("count", d.Len()).Msg("kanji data loaded")
	return d, nil
}
