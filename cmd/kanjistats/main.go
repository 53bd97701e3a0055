// Command kanjistats reports per-character-class counts (Hiragana, Katakana,
// common/rare Kanji, multi-byte letters, punctuation, symbols, combining marks)
// over a set of files or directories.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anzumura/kanjitools-go/internal/cliconfig"
	"github.com/anzumura/kanjitools-go/internal/workpool"
	"github.com/anzumura/kanjitools-go/pkg/stats"
)

// categoryJob pairs a stats.Category family with the Count instance tallying
// it; each runs over its own Count and output line, so no shared mutable
// state is touched across goroutines (spec's category-per-task concurrency
// note).
type categoryJob struct {
	name  string
	count *stats.Count
}

// runStats fans independent passes over paths out across a workpool.Pool,
// one stats.Count per category family (plain vs furigana-stripped). Each job
// only ever touches its own Count, so the pool needs no locking beyond what
// it already provides for submission/shutdown.
func runStats(paths []string, recurse bool, stripFurigana bool, tag string, out *cobra.Command) error {
	jobs := []*categoryJob{{name: "raw", count: stats.NewCount(nil)}}
	if stripFurigana {
		jobs = append(jobs, &categoryJob{name: "furigana-stripped", count: stats.NewCount(stats.FuriganaPattern)})
	}
	for _, j := range jobs {
		j.count.Tag = tag
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool := workpool.New(len(jobs), len(jobs))
	pool.Start(ctx)

	errCh := make(chan error, len(jobs))
	for _, j := range jobs {
		j := j
		if err := pool.Submit(func(ctx context.Context) error {
			for _, p := range paths {
				select {
				case <-ctx.Done():
					return nil
				default:
				}
				if err := j.count.AddPath(p, recurse); err != nil {
					errCh <- fmt.Errorf("%s: %w", j.name, err)
					return err
				}
			}
			return nil
		}); err != nil {
			return err
		}
	}
	pool.Close()
	close(errCh)
	for err := range errCh {
		return err
	}

	w := out.OutOrStdout()
	for _, j := range jobs {
		fmt.Fprintf(w, "--- %s (%d files, %d directories) ---\n", j.name, j.count.Files, j.count.Directories)
		for c := stats.Hiragana; c <= stats.NonSpacing; c++ {
			if n := j.count.CharCount(c); n > 0 {
				fmt.Fprintf(w, "%-12s %d\n", c, n)
			}
		}
		if j.count.Replacements > 0 {
			fmt.Fprintf(w, "%-12s %d\n", "Replacements", j.count.Replacements)
		}
		if j.count.Errors > 0 || j.count.Variants > 0 || j.count.CombiningMarks > 0 {
			fmt.Fprintf(w, "errors=%d variants=%d combining=%d\n",
				j.count.Errors, j.count.Variants, j.count.CombiningMarks)
		}
	}
	return nil
}

func newRootCmd() *cobra.Command {
	var recurse bool
	var stripFurigana bool
	var tag string

	root := &cobra.Command{
		Use:   "kanjistats <path...>",
		Short: "Count Hiragana/Katakana/Kanji/Letter/Punctuation/Symbol characters in files",
		Args:  cobra.MinimumNArgs(1),
	}
	common := cliconfig.Register(root.PersistentFlags())
	root.Flags().BoolVarP(&recurse, "recurse", "r", false, "recurse into directories")
	root.Flags().BoolVar(&stripFurigana, "furigana", false, "also report counts with furigana parentheticals stripped")
	root.Flags().StringVar(&tag, "tag", "", "tag applied to every counted character, for per-file breakdowns")

	root.RunE = func(cmd *cobra.Command, args []string) error {
		log := common.Logger()
		log.Debug().Strs("paths", args).Bool("recurse", recurse).Msg("starting stats run")
		return runStats(args, recurse, stripFurigana, tag, cmd)
	}
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
