package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nwalign/internal/config"
	"github.com/katalvlaran/nwalign/merge"
)

func (c *CLI) mergeCommand() *cobra.Command {
	var f scoringFlags
	cmd := &cobra.Command{
		Use:   "merge <read>...",
		Short: "Merge wildcard-bearing reads into one consensus",
		Long: `Merge several reads of the same sequence. The first read fixes the
length; every further read fills positions still holding the wildcard.
Known positions are never overwritten.`,
		Example: `  nwalign merge '*12*bc777*' 'a1***b771*' 'a2**bc77*7' '*3**c*77**'
  a123bc7771`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.resolve(cmd, &f)
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			out, err := merge.Merge(cfg.WildcardRune(), toRunes(args),
				merge.WithLogger(logrFor(c.Logger)),
				merge.WithAlignerOptions(cfg.AlignerOptions()...))
			if err != nil {
				return err
			}
			prog.done("merged", "reads", len(args))

			unresolved := 0
			for _, r := range out {
				if r == cfg.WildcardRune() {
					unresolved++
				}
			}
			if unresolved > 0 {
				c.Logger.Warn("consensus has unresolved positions", "count", unresolved)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))

			return err
		},
	}
	bindEngineFlags(cmd, &f)
	cmd.Flags().StringVar(&f.wildcard, "wildcard", config.DefaultWildcard, "character marking an unknown position")

	return cmd
}
