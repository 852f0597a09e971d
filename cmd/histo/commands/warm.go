package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/histo/internal/app"
)

func (c *CLI) newWarmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "warm <N:B>...",
		Short: "Pre-build cached datasets and reference histograms",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.WarmOptions{
				GlobalOptions: globals(cmd),
				Pairs:         args,
			}

			if cmd.Flags().Changed("jobs") {
				jobs, _ := cmd.Flags().GetInt("jobs")
				opts.Overrides.Jobs = &jobs
			}
			if cmd.Flags().Changed("seed") {
				seed, _ := cmd.Flags().GetUint64("seed")
				opts.Seed = &seed
			}

			_, err := c.app.Warm(cmd.Context(), opts)
			return err
		},
	}

	cmd.Flags().IntP("jobs", "j", 0, "Number of pairs built concurrently (0 means one per CPU)")
	cmd.Flags().Uint64("seed", 0, "Seed for every generated dataset")
	return cmd
}
