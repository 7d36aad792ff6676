// Package cli implements the nwalign command-line interface.
//
// Commands:
//   - align: fit one or more sources onto a reference string
//   - mask:  fit sources onto a digit/non-digit class mask
//   - merge: build a consensus from wildcard-bearing reads
//   - version
//
// All commands accept --config (TOML, see internal/config) and --verbose.
// Flags given on the command line override the file.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/nwalign/internal/buildinfo"
	"github.com/katalvlaran/nwalign/internal/config"
)

const appName = "nwalign"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
	cfg        config.Config
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "nwalign fits noisy sequences onto a fixed-length reference",
		Long:          `nwalign aligns variable-length sequences against a fixed-length reference with a constrained Needleman-Wunsch algorithm. The output always has the reference length; unmatched positions hold a placeholder.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			if c.configPath != "" {
				c.Logger.Debug("loaded config", "path", c.configPath)
			}

			return nil
		},
	}
	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a TOML config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.alignCommand())
	root.AddCommand(c.maskCommand())
	root.AddCommand(c.mergeCommand())
	root.AddCommand(c.versionCommand())

	return root
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), appName, buildinfo.String())
		},
	}
}
