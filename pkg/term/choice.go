package term

import (
	"fmt"
	"io"
	"sort"

	"github.com/eiannone/keyboard"

	"github.com/anzumura/kanjitools-go/internal/errs"
)

// Choice prompts for a single keystroke out of a fixed set of options,
// reading raw (canonical mode off, echo off) so the user doesn't have to
// press Enter. Pathological construction input (a duplicate quit option, a
// default not among the choices, a non-printable control character, or an
// inverted range) is a Domain error raised immediately; a user mistyping at
// run time is not an error, the prompt just asks again.
type Choice struct {
	choices map[rune]string
	quit    rune // 0 means no quit option
	def     rune // 0 means no default
	out     io.Writer
}

func isPrintable(r rune) bool { return r >= 0x20 && r != 0x7f }

// NewChoice creates a Choice over the given rune->description options. quit
// (0 for none) is an extra exit option not listed in choices; def (0 for
// none) must already be a key of choices or equal to quit.
func NewChoice(choices map[rune]string, quit, def rune, out io.Writer) (*Choice, error) {
	for r := range choices {
		if !isPrintable(r) {
			return nil, errs.NewDomain("choice: non-printable option %q", r)
		}
	}
	if quit != 0 {
		if !isPrintable(quit) {
			return nil, errs.NewDomain("choice: non-printable quit option %q", quit)
		}
		if _, dup := choices[quit]; dup {
			return nil, errs.NewDomain("choice: quit option %q duplicates a choice", quit)
		}
	}
	if def != 0 {
		if _, ok := choices[def]; !ok && def != quit {
			return nil, errs.NewDomain("choice: default option %q is not among the choices", def)
		}
	}
	return &Choice{choices: choices, quit: quit, def: def, out: out}, nil
}

// NewRangeChoice builds a Choice whose options are every rune in [lo, hi]
// inclusive, each sharing description.
func NewRangeChoice(lo, hi rune, description string, quit, def rune, out io.Writer) (*Choice, error) {
	if lo > hi {
		return nil, errs.NewDomain("choice: inverted range %q..%q", lo, hi)
	}
	choices := make(map[rune]string, hi-lo+1)
	for r := lo; r <= hi; r++ {
		choices[r] = description
	}
	return NewChoice(choices, quit, def, out)
}

func (c *Choice) prompt() string {
	keys := make([]rune, 0, len(c.choices))
	for r := range c.choices {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	s := ""
	for _, r := range keys {
		if s != "" {
			s += ", "
		}
		s += fmt.Sprintf("%c=%s", r, c.choices[r])
	}
	if c.quit != 0 {
		if s != "" {
			s += ", "
		}
		s += fmt.Sprintf("%c=quit", c.quit)
	}
	if c.def != 0 {
		s += fmt.Sprintf(" (default %c)", c.def)
	}
	return s
}

// Get opens the keyboard in raw mode and reads single characters until the
// user presses a recognized choice, Enter (selecting the default, if any),
// or the quit key. Terminal raw-mode is always restored before returning.
func (c *Choice) Get() (rune, error) {
	if err := keyboard.Open(); err != nil {
		return 0, err
	}
	defer keyboard.Close()

	fmt.Fprintf(c.out, "%s: ", c.prompt())
	for {
		r, key, err := keyboard.GetKey()
		if err != nil {
			return 0, err
		}
		if key == keyboard.KeyEnter && c.def != 0 {
			fmt.Fprintln(c.out, string(c.def))
			return c.def, nil
		}
		if r == c.quit {
			fmt.Fprintln(c.out, string(r))
			return r, nil
		}
		if _, ok := c.choices[r]; ok {
			fmt.Fprintln(c.out, string(r))
			return r, nil
		}
		// unrecognized keystroke: re-prompt silently, no error
	}
}
