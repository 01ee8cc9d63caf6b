package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hamlet/claims"
)

// newVerifyCmd creates the verify command, which loads a TOML claim file
// and verifies every claim in it.
func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file>",
		Short: "Verify the claims of a TOML suite file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := claims.LoadFile(args[0])
			if err != nil {
				return err
			}

			return runGroups(cmd, groups)
		},
	}
}
