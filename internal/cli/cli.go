// Package cli implements the lvwalk command-line interface.
//
// Each subcommand runs one engine of the module on inputs given as flags:
//   - traverse: level-order and depth-first orders of a tree literal
//   - combos:   combination sum over a candidate list
//   - water:    container with most water over a height list
//   - demo:     every case from a TOML file, or the built-in reference cases
//
// All commands support --verbose (-v) for debug-level logging. The logger
// travels through context.Context; results go to the command's stdout.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// version is reported by --version; overridden with -ldflags at build time.
var version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance writing logs to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "lvwalk",
		Short:        "lvwalk runs tree traversals and search algorithms",
		Long:         `lvwalk runs level-order and depth-first tree traversals, combination-sum backtracking and the two-pointer container-with-most-water scan on inputs given as flags or a TOML case file.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.AddCommand(c.traverseCommand())
	root.AddCommand(c.combosCommand())
	root.AddCommand(c.waterCommand())
	root.AddCommand(c.demoCommand())

	return root
}
