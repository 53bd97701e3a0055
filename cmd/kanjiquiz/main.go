// Command kanjiquiz runs an interactive multiple-choice quiz over a Kanji
// list or group file, prompting one raw keystroke per answer.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/anzumura/kanjitools-go/internal/cliconfig"
	"github.com/anzumura/kanjitools-go/pkg/group"
	"github.com/anzumura/kanjitools-go/pkg/kanji"
	"github.com/anzumura/kanjitools-go/pkg/kanjiquiz"
	"github.com/anzumura/kanjitools-go/pkg/listfile"
	"github.com/anzumura/kanjitools-go/pkg/term"
)

func memberFromFlag(s string) (kanjiquiz.MemberType, error) {
	switch strings.ToLower(s) {
	case "jouyou":
		return kanjiquiz.Jouyou, nil
	case "jlpt":
		return kanjiquiz.JLPT, nil
	case "frequency":
		return kanjiquiz.Frequency, nil
	case "all":
		return kanjiquiz.All, nil
	default:
		return 0, fmt.Errorf("unrecognized -member %q (want jouyou, jlpt, frequency or all)", s)
	}
}

func orderFromFlag(s string) (kanjiquiz.QuestionOrder, error) {
	switch strings.ToLower(s) {
	case "forward":
		return kanjiquiz.FromBeginning, nil
	case "end":
		return kanjiquiz.FromEnd, nil
	case "random":
		return kanjiquiz.Random, nil
	default:
		return 0, fmt.Errorf("unrecognized -order %q (want forward, end or random)", s)
	}
}

func styleFromFlag(s string) (kanjiquiz.Style, error) {
	switch strings.ToLower(s) {
	case "k2r":
		return kanjiquiz.KanjiToReading, nil
	case "r2k":
		return kanjiquiz.ReadingToKanji, nil
	default:
		return 0, fmt.Errorf("unrecognized -style %q (want k2r or r2k)", s)
	}
}

// resolveList loads a plain Kanji list file and resolves each entry against
// the loaded catalog, skipping names the catalog doesn't recognize.
func resolveList(path string, data *kanji.Data) ([]*kanji.Kanji, error) {
	l, err := listfile.Load(filepath.Base(path), path)
	if err != nil {
		return nil, err
	}
	result := make([]*kanji.Kanji, 0, l.Len())
	for _, name := range l.Entries() {
		if k, ok := data.FindByName(name); ok {
			result = append(result, k)
		}
	}
	return result, nil
}

// askListQuestion runs one ListQuestion interactively: it prints the prompt
// side (Kanji or reading, per cfg.Style) and the answer choices, reads one
// keystroke via term.Choice, and reports whether it matched CorrectIndex.
func askListQuestion(q *kanjiquiz.ListQuestion, cfg *kanjiquiz.Config, out *os.File) (bool, error) {
	if cfg.Style == kanjiquiz.KanjiToReading {
		fmt.Fprintf(out, "\n%s\n", q.Kanji.Name)
	} else {
		fmt.Fprintf(out, "\n%s\n", q.Kanji.Reading())
	}

	choices := make(map[rune]string, len(q.Choices))
	for i, c := range q.Choices {
		label := c.Reading()
		if cfg.Style == kanjiquiz.ReadingToKanji {
			label = c.Name
		}
		r := rune('1' + i)
		choices[r] = label
		fmt.Fprintf(out, "  %c: %s\n", r, label)
	}

	choice, err := term.NewChoice(choices, '/', 0, out)
	if err != nil {
		return false, err
	}
	answer, err := choice.Get()
	if err != nil {
		return false, err
	}
	return int(answer-'1') == q.CorrectIndex, nil
}

func runListQuiz(data *kanji.Data, path string, cfg *kanjiquiz.Config, rnd *rand.Rand, out *os.File) error {
	all, err := resolveList(path, data)
	if err != nil {
		return err
	}
	selected := kanjiquiz.SelectList(all, cfg, rnd)
	correct := 0
	for _, k := range selected {
		q, err := kanjiquiz.BuildListQuestion(k, selected, cfg, rnd)
		if err != nil {
			return err
		}
		if cfg.ShowMeanings && k.HasMeaning() {
			fmt.Fprintf(out, "(%s)\n", k.Meaning())
		}
		ok, err := askListQuestion(q, cfg, out)
		if err != nil {
			return err
		}
		if ok {
			correct++
		}
	}
	fmt.Fprintf(out, "\nScore: %d/%d\n", correct, len(selected))
	return nil
}

func runGroupQuiz(data *kanji.Data, meaningPath, patternPath string, cfg *kanjiquiz.Config, rnd *rand.Rand, out *os.File) error {
	groups, err := group.Load(meaningPath, patternPath, data)
	if err != nil {
		return err
	}
	correct, total := 0, 0
	for _, g := range append(append([]group.Group{}, groups.MeaningGroups()...), groups.PatternGroups()...) {
		members := kanjiquiz.SelectGroupMembers(&g, cfg, rnd)
		if len(members) < 2 {
			continue
		}
		fmt.Fprintf(out, "\n=== %s (%s) ===\n", g.Name, g.Type)
		for _, k := range members {
			q, err := kanjiquiz.BuildListQuestion(k, members, cfg, rnd)
			if err != nil {
				continue
			}
			total++
			ok, err := askListQuestion(q, cfg, out)
			if err != nil {
				return err
			}
			if ok {
				correct++
			}
		}
	}
	fmt.Fprintf(out, "\nScore: %d/%d\n", correct, total)
	return nil
}

func newRootCmd() *cobra.Command {
	var listPath, meaningPath, patternPath string
	var memberFlag, orderFlag, styleFlag string
	var choiceCount int
	var showMeanings, noRandomize bool

	root := &cobra.Command{
		Use:   "kanjiquiz",
		Short: "Run an interactive Kanji reading quiz over a list or group file",
	}
	common := cliconfig.Register(root.PersistentFlags())
	root.Flags().StringVar(&listPath, "list", "", "path to a one-Kanji-per-line list file")
	root.Flags().StringVar(&meaningPath, "meaning-groups", "", "path to a meaning-groups file (used with --pattern-groups)")
	root.Flags().StringVar(&patternPath, "pattern-groups", "", "path to a pattern-groups file (used with --meaning-groups)")
	root.Flags().StringVar(&memberFlag, "member", "jouyou", "how far to reach: jouyou, jlpt, frequency or all")
	root.Flags().StringVar(&orderFlag, "order", "random", "question order: forward, end or random")
	root.Flags().StringVar(&styleFlag, "style", "k2r", "k2r (Kanji to reading) or r2k (reading to Kanji)")
	root.Flags().IntVar(&choiceCount, "choices", 4, "number of choices per question (2-9)")
	root.Flags().BoolVar(&showMeanings, "show-meanings", false, "show English meanings alongside questions")
	root.Flags().BoolVar(&noRandomize, "no-randomize", false, "don't shuffle answer choices (question order is set by --order)")

	root.RunE = func(cmd *cobra.Command, args []string) error {
		log := common.Logger()
		data, err := common.LoadKanjiData(log)
		if err != nil {
			return err
		}

		member, err := memberFromFlag(memberFlag)
		if err != nil {
			return err
		}
		order, err := orderFromFlag(orderFlag)
		if err != nil {
			return err
		}
		style, err := styleFromFlag(styleFlag)
		if err != nil {
			return err
		}
		cfg, err := kanjiquiz.NewConfig(member, order, choiceCount, showMeanings, !noRandomize, style)
		if err != nil {
			return err
		}

		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		out := os.Stdout

		switch {
		case listPath != "":
			return runListQuiz(data, listPath, cfg, rnd, out)
		case meaningPath != "" && patternPath != "":
			return runGroupQuiz(data, meaningPath, patternPath, cfg, rnd, out)
		default:
			return fmt.Errorf("pass either --list or both --meaning-groups and --pattern-groups")
		}
	}
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
