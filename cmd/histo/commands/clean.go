package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/histo/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove cached fixtures and abandoned lock files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			_, err := c.app.Clean(cmd.Context(), app.CleanOptions{
				GlobalOptions: globals(cmd),
				DryRun:        dryRun,
			})
			return err
		},
	}

	cmd.Flags().BoolP("dry-run", "n", false, "List what would be removed without deleting anything")
	return cmd
}
