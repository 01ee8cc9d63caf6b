package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hamlet/claims"
	"github.com/katalvlaran/hamlet/hamcycle"
	"github.com/katalvlaran/hamlet/hampath"
)

// newPathsCmd creates the paths command, a one-off existence query for an
// edge-disjoint pair of Hamiltonian paths on n points.
func newPathsCmd() *cobra.Command {
	var bound string

	cmd := &cobra.Command{
		Use:   "paths <n>",
		Short: "Check whether n points admit an edge-disjoint pair of Hamiltonian paths",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExistenceQuery(cmd, args[0], bound, "paths",
				hampath.DisjointPairExists, hampath.DisjointPairExistsWithinBound)
		},
	}

	cmd.Flags().StringVar(&bound, "bound", "", `strict combined-cost bound, e.g. "16*(n-1)/5"`)

	return cmd
}

// newCyclesCmd creates the cycles command, a one-off existence query for an
// edge-disjoint pair of Hamiltonian cycles on n points. With --bound the
// search is restricted to odd-depth tours, matching the bounded claim form.
func newCyclesCmd() *cobra.Command {
	var bound string

	cmd := &cobra.Command{
		Use:   "cycles <n>",
		Short: "Check whether n points admit an edge-disjoint pair of Hamiltonian cycles",
		Long: `Check whether n points on a circle admit an edge-disjoint pair of
Hamiltonian cycles. Unbounded queries consider every canonical tour; with
--bound only odd-depth tours compete, and the pair's combined circular cost
must stay strictly under the bound evaluated at n.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExistenceQuery(cmd, args[0], bound, "cycles",
				hamcycle.DisjointPairExists, hamcycle.DisjointPairExistsWithinBound)
		},
	}

	cmd.Flags().StringVar(&bound, "bound", "", `strict combined-cost bound, e.g. "16*n/5"`)

	return cmd
}

// runExistenceQuery parses the point count, runs the unbounded or bounded
// search, and prints the bare answer on stdout. Logging stays on stderr so
// the output remains script-friendly.
func runExistenceQuery(cmd *cobra.Command, arg, bound, kind string,
	unbounded func(int) (bool, error), bounded func(int, float64) (bool, error)) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("cli: point count %q is not an integer", arg)
	}

	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	var ok bool
	if bound == "" {
		ok, err = unbounded(n)
	} else {
		var b *claims.Bound
		if b, err = claims.ParseBound(bound); err != nil {
			return err
		}
		logger.Debugf("bound %s evaluates to %v at n=%d", b, b.Eval(n), n)
		ok, err = bounded(n, b.Eval(n))
	}
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("searched %s on %d points", kind, n))
	fmt.Fprintln(cmd.OutOrStdout(), ok)

	return nil
}
