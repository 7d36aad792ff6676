package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/nwalign/internal/config"
	"github.com/katalvlaran/nwalign/nw"
)

// scoringFlags mirrors the config keys that can be overridden per command.
type scoringFlags struct {
	match, mismatch, gap  int
	placeholder, wildcard string
	maxCells, workers     int
}

// bindEngineFlags binds the flags every aligning command understands.
func bindEngineFlags(cmd *cobra.Command, f *scoringFlags) {
	d := config.Default()
	fs := cmd.Flags()
	fs.IntVar(&f.gap, "gap", d.Scoring.Gap, "gap penalty, must be negative")
	fs.IntVar(&f.maxCells, "max-cells", d.Limits.MaxCells, "refuse inputs whose score matrix exceeds this many cells")
}

func bindScoringFlags(cmd *cobra.Command, f *scoringFlags) {
	bindEngineFlags(cmd, f)
	d := config.Default()
	fs := cmd.Flags()
	fs.IntVar(&f.match, "match", d.Scoring.Match, "score of a matching position")
	fs.IntVar(&f.mismatch, "mismatch", d.Scoring.Mismatch, "score of a mismatching position")
	fs.StringVar(&f.placeholder, "placeholder", d.Scoring.Placeholder, "character written where no source element aligns")
	fs.IntVarP(&f.workers, "workers", "w", d.Limits.Workers, "number of concurrent aligners")
}

// resolve applies the flags the user actually set on top of the loaded
// config and validates the result. Flags a command does not define never
// count as changed.
func (c *CLI) resolve(cmd *cobra.Command, f *scoringFlags) (config.Config, error) {
	cfg := c.cfg
	fs := cmd.Flags()
	if fs.Changed("match") {
		cfg.Scoring.Match = f.match
	}
	if fs.Changed("mismatch") {
		cfg.Scoring.Mismatch = f.mismatch
	}
	if fs.Changed("gap") {
		cfg.Scoring.Gap = f.gap
	}
	if fs.Changed("placeholder") {
		cfg.Scoring.Placeholder = f.placeholder
	}
	if fs.Changed("max-cells") {
		cfg.Limits.MaxCells = f.maxCells
	}
	if fs.Changed("workers") {
		cfg.Limits.Workers = f.workers
	}
	if fs.Changed("wildcard") {
		cfg.Merge.Wildcard = f.wildcard
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func (c *CLI) alignCommand() *cobra.Command {
	var f scoringFlags
	cmd := &cobra.Command{
		Use:   "align <reference> <source>...",
		Short: "Fit each source onto the shape of the reference",
		Long: `Align every source string against the reference and print one line per
source, in input order. Each line has exactly as many characters as the
reference; positions with no aligned source character hold the placeholder.`,
		Example: `  nwalign align aaabbbccd aabcd
  *aa**b*cd`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.resolve(cmd, &f)
			if err != nil {
				return err
			}
			score := nw.Equal[rune](cfg.Scoring.Match, cfg.Scoring.Mismatch)

			return c.runAlign(cmd.Context(), cmd.OutOrStdout(), cfg, []rune(args[0]), args[1:], score)
		},
	}
	bindScoringFlags(cmd, &f)

	return cmd
}

// runAlign aligns sources against reference and writes the results to w.
func (c *CLI) runAlign(ctx context.Context, w io.Writer, cfg config.Config, reference []rune, sources []string, score nw.ScoreFunc[rune, rune]) error {
	prog := newProgress(c.Logger)
	out, err := alignAll(ctx, cfg, toRunes(sources), reference, score)
	if err != nil {
		return err
	}
	prog.done("aligned", "sources", len(sources), "reference", len(reference), "workers", cfg.Limits.Workers)

	return writeLines(w, out)
}

// alignAll aligns every source against reference on up to
// cfg.Limits.Workers goroutines. Each worker owns one Aligner and one
// output buffer. Results keep the input order.
func alignAll[B any](ctx context.Context, cfg config.Config, sources [][]rune, reference []B, score nw.ScoreFunc[rune, B]) ([]string, error) {
	out := make([]string, len(sources))
	jobs := make(chan int)
	placeholder := cfg.PlaceholderRune()

	g, ctx := errgroup.WithContext(ctx)
	workers := min(cfg.Limits.Workers, len(sources))
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			al := nw.NewAligner[rune, B](cfg.AlignerOptions()...)
			dst := make([]rune, len(reference))
			for i := range jobs {
				if err := al.AlignInto(dst, sources[i], reference, score, placeholder); err != nil {
					return fmt.Errorf("source %d: %w", i+1, err)
				}
				out[i] = string(dst)
			}

			return nil
		})
	}
	g.Go(func() error {
		defer close(jobs)
		for i := range sources {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func toRunes(ss []string) [][]rune {
	out := make([][]rune, len(ss))
	for i, s := range ss {
		out[i] = []rune(s)
	}

	return out
}

func writeLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}

	return nil
}
