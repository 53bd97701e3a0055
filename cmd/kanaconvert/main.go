// Command kanaconvert converts text between Rōmaji, Hiragana and Katakana.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anzumura/kanjitools-go/internal/cliconfig"
	"github.com/anzumura/kanjitools-go/pkg/kana"
)

func targetFromFlag(s string) (kana.CharType, error) {
	switch strings.ToLower(s) {
	case "r", "romaji":
		return kana.Romaji, nil
	case "h", "hiragana":
		return kana.Hiragana, nil
	case "k", "katakana":
		return kana.Katakana, nil
	default:
		return 0, fmt.Errorf("unrecognized target %q (want romaji, hiragana or katakana)", s)
	}
}

func run(cmd *cobra.Command, args []string, common *cliconfig.Flags, target string,
	hepburn, kunrei, noProlong, removeSpaces bool,
) error {
	log := common.Logger()

	t, err := targetFromFlag(target)
	if err != nil {
		return err
	}

	var flags kana.ConvertFlags
	if hepburn {
		flags |= kana.Hepburn
	}
	if kunrei {
		flags |= kana.Kunrei
	}
	if noProlong {
		flags |= kana.NoProlongMark
	}
	if removeSpaces {
		flags |= kana.RemoveSpaces
	}

	converter := kana.NewConverter(t, flags)
	log.Debug().Str("target", t.String()).Msg("converter configured")

	var in io.Reader = cmd.InOrStdin()
	if len(args) > 0 {
		in = strings.NewReader(strings.Join(args, " "))
	}

	scanner := bufio.NewScanner(in)
	out := cmd.OutOrStdout()
	for scanner.Scan() {
		fmt.Fprintln(out, converter.Convert(scanner.Text()))
	}
	return scanner.Err()
}

func newRootCmd() *cobra.Command {
	var target string
	var hepburn, kunrei, noProlong, removeSpaces bool

	root := &cobra.Command{
		Use:   "kanaconvert [text...]",
		Short: "Convert text between Rōmaji, Hiragana and Katakana",
		Args:  cobra.ArbitraryArgs,
	}
	common := cliconfig.Register(root.PersistentFlags())
	root.Flags().StringVarP(&target, "target", "t", "hiragana", "conversion target: romaji, hiragana or katakana")
	root.Flags().BoolVar(&hepburn, "hepburn", false, "prefer Modern Hepburn Rōmaji spellings")
	root.Flags().BoolVar(&kunrei, "kunrei", false, "prefer Kunrei Shiki Rōmaji spellings")
	root.Flags().BoolVar(&noProlong, "no-prolong-mark", false, "spell Rōmaji macron vowels as repeated vowels instead of the prolong mark ー")
	root.Flags().BoolVar(&removeSpaces, "remove-spaces", false, "remove every space from Rōmaji output")

	root.RunE = func(cmd *cobra.Command, args []string) error {
		return run(cmd, args, common, target, hepburn, kunrei, noProlong, removeSpaces)
	}
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
