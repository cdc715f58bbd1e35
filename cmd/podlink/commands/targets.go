package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets [labels...]",
		Short: "List the user project targets each aggregate target is integrated into",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolutions, err := c.app.Targets(cmd.Context(), args, options(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range resolutions {
				for _, native := range r.UserTargets {
					if _, err := fmt.Fprintf(out, "%s\t%s\t%s\n", r.Target.Label(), native.UUID(), native.Name()); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}
