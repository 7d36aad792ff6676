package cli

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nwalign/nw"
)

// ErrBadMask indicates a mask character outside 'd', 'a' and '.'.
var ErrBadMask = errors.New("cli: mask characters must be 'd', 'a' or '.'")

// class is one position of a mask.
type class byte

const (
	classDigit    class = 'd' // a digit is expected
	classNonDigit class = 'a' // anything but a digit is expected
	classAny      class = '.' // every character fits
)

func parseMask(s string) ([]class, error) {
	out := make([]class, 0, len(s))
	for i, r := range s {
		switch r {
		case rune(classDigit), rune(classNonDigit), rune(classAny):
			out = append(out, class(r))
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrBadMask, r, i)
		}
	}

	return out, nil
}

// classScore scores a character against a mask class.
func classScore(match, mismatch int) nw.ScoreFunc[rune, class] {
	return func(ch rune, cl class) int {
		if cl == classAny || unicode.IsDigit(ch) == (cl == classDigit) {
			return match
		}

		return mismatch
	}
}

func (c *CLI) maskCommand() *cobra.Command {
	var f scoringFlags
	cmd := &cobra.Command{
		Use:   "mask <mask> <source>...",
		Short: "Fit each source onto a digit/non-digit class mask",
		Long: `Align every source against a class mask and print one line per source.
Mask characters: 'd' expects a digit, 'a' expects a non-digit, '.' accepts
anything. The output has the length of the mask.`,
		Example: `  nwalign mask daadda aa12bcd
  *aa12d`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.resolve(cmd, &f)
			if err != nil {
				return err
			}
			mask, err := parseMask(args[0])
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			out, err := alignAll(cmd.Context(), cfg, toRunes(args[1:]), mask, classScore(cfg.Scoring.Match, cfg.Scoring.Mismatch))
			if err != nil {
				return err
			}
			prog.done("masked", "sources", len(args)-1, "mask", len(mask))

			return writeLines(cmd.OutOrStdout(), out)
		},
	}
	bindScoringFlags(cmd, &f)

	return cmd
}
