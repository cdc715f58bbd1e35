package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

func (c *CLI) newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [labels...]",
		Short: "Print the integration report of aggregate targets",
		Long: "Print one YAML document per aggregate target describing its product, support file paths\n" +
			"relative to the client root and the pods linked in each build configuration.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options(cmd)
			opts.DryRun, _ = cmd.Flags().GetBool("dry-run")

			reports, err := c.app.Report(cmd.Context(), args, opts)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			for _, r := range reports {
				if err := enc.Encode(r); err != nil {
					return zerr.With(zerr.Wrap(err, "failed to encode report"), "target", r.Label)
				}
			}
			return enc.Close()
		},
	}
	cmd.Flags().Bool("dry-run", false, "Do not record the new fingerprints")
	return cmd
}
