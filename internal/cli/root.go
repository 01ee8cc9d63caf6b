// Package cli implements the hamlet command-line interface.
//
// The CLI is a thin proof runner over the library packages: it adds no
// semantics of its own. Every answer a command prints comes from claims,
// hampath or hamcycle.
//
// # Commands
//
//   - prove: verify the built-in Price of Diversity claim suite
//   - verify: verify a TOML claim file
//   - paths: one-off existence query for edge-disjoint Hamiltonian paths
//   - cycles: one-off existence query for edge-disjoint Hamiltonian cycles
//     (bounded queries are restricted to odd-depth tours)
//
// # Logging
//
// All commands log to stderr and support --verbose (-v) for debug-level
// output; stdout carries only query answers. Loggers travel through
// context.Context so subcommands and helpers share one configured logger.
package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Options configures one CLI run. main fills it from the process
// environment; the --verbose flag can still lower the level to debug per
// invocation.
type Options struct {
	Level   log.Level
	NoColor bool
}

// Execute runs the hamlet CLI with the given options and returns the first
// command error, if any.
func Execute(ctx context.Context, opts Options) error {
	return newRootCmd(opts).ExecuteContext(ctx)
}

// newRootCmd assembles the root command and its subcommands. The persistent
// pre-run hook attaches a configured logger to the command context, writing
// to the command's error stream so tests can capture it.
func newRootCmd(opts Options) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "hamlet",
		Short: "Verify claims about edge-disjoint Hamiltonian paths and cycles",
		Long: `Hamlet verifies combinatorial claims about edge-disjoint Hamiltonian
paths and cycles on n uniformly spaced points by exhaustive search. Every
canonical tour is enumerated, so point counts beyond eleven are a matter of
patience rather than flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := opts.Level
			if verbose {
				level = log.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level, opts.NoColor))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newProveCmd())
	root.AddCommand(newVerifyCmd())
	root.AddCommand(newPathsCmd())
	root.AddCommand(newCyclesCmd())

	return root
}
