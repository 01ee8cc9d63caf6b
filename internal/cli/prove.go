package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hamlet/claims"
)

// newProveCmd creates the prove command, which verifies the built-in Price
// of Diversity suite.
func newProveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prove",
		Short: "Verify the built-in Price of Diversity claim suite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroups(cmd, claims.PriceOfDiversity())
		},
	}
}

// runGroups verifies every group in order, narrating each claim as it
// settles. Verification errors abort immediately; claims that settle against
// their expectation are tallied and reported once the whole run is through,
// so a broken suite shows every failure, not just the first.
func runGroups(cmd *cobra.Command, groups []claims.Group) error {
	logger := loggerFromContext(cmd.Context())

	var failed int
	for _, g := range groups {
		logger.Infof("Proof of %s:", g.Name)
		prog := newProgress(logger)

		held := 0
		for _, c := range g.Claims {
			res, err := claims.Verify(c)
			if err != nil {
				return err
			}
			if !res.Holds {
				failed++
				logger.Errorf("%s: expected %v, exhaustive search says %v", c.Name, c.Want, res.Got)
				continue
			}
			held++
			logger.Infof("%s: %s (%s)", c.Name, c.Statement, res.Elapsed.Round(time.Millisecond))
		}

		prog.done(fmt.Sprintf("%s: %d/%d claims hold", g.Name, held, len(g.Claims)))
	}

	if failed > 0 {
		return fmt.Errorf("cli: %d claim(s) failed verification", failed)
	}

	return nil
}
