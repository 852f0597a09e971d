package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/histo/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <N> <B> [seed]",
		Short: "Grade the solution on N values over B bins",
		Long: "Prepares or reuses the cached dataset and reference histogram for (N, B), runs the\n" +
			"solution as <solution...> <input> <N> <B>, and verifies the histogram it reports.\n" +
			"Use --solution @reference to run the built-in reference solution.",
		// Positional arguments are validated by the application so that malformed
		// invocations are reported with the grader sentinel.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fresh, _ := cmd.Flags().GetBool("fresh")
			keepOutput, _ := cmd.Flags().GetBool("keep-output")
			report, _ := cmd.Flags().GetString("report")
			metricsFile, _ := cmd.Flags().GetString("metrics-file")
			traceFile, _ := cmd.Flags().GetString("trace-file")

			opts := app.RunOptions{
				GlobalOptions: globals(cmd),
				Args:          args,
				Fresh:         fresh,
				KeepOutput:    keepOutput,
				ReportPath:    report,
				MetricsPath:   metricsFile,
				TracePath:     traceFile,
			}

			if solution, _ := cmd.Flags().GetString("solution"); strings.TrimSpace(solution) != "" {
				opts.Overrides.Solution = strings.Fields(solution)
			}
			if cmd.Flags().Changed("timeout") {
				timeout, _ := cmd.Flags().GetDuration("timeout")
				opts.Overrides.Timeout = durationPtr(timeout)
			}

			_, err := c.app.Run(cmd.Context(), opts)
			return err
		},
	}

	cmd.Flags().StringP("solution", "s", "", "Solution command, invoked as <solution...> <input> <N> <B>")
	cmd.Flags().DurationP("timeout", "t", 0, "Bound on the solution run time (0 disables the bound)")
	cmd.Flags().BoolP("fresh", "f", false, "Regenerate the dataset and reference even when cached")
	cmd.Flags().Bool("keep-output", false, "Keep the solution's output file after a successful verification")
	cmd.Flags().String("report", "", "Write the run result as JSON to this file")
	cmd.Flags().String("metrics-file", "", "Write Prometheus metrics in text format to this file")
	cmd.Flags().String("trace-file", "", "Write OpenTelemetry spans as JSON to this file")
	return cmd
}
