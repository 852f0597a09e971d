// Package commands implements the CLI commands for the histo grading harness.
package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/histo/internal/app"
	"go.trai.ch/histo/internal/build"
	"go.trai.ch/histo/internal/core/domain"
	"go.trai.ch/histo/internal/engine/harness"
)

// CLI represents the command line interface for histo.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	// dispatched is set once a command's arguments and flags were accepted.
	dispatched bool
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) (*domain.Result, error)
	Warm(ctx context.Context, opts app.WarmOptions) ([]harness.Warmed, error)
	Clean(ctx context.Context, opts app.CleanOptions) ([]domain.CacheEntry, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "histo",
		Short:         "A grading harness for histogram solutions",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.String("config", domain.ConfigFileName, "Path to the optional configuration file")
	flags.String("cache-dir", "", "Directory holding cached datasets and reference histograms")
	flags.Duration("lock-wait", domain.DefaultLockWait, "How long to wait for another process building the same fixture")
	flags.String("log-format", "", "Log format: pretty or json")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(*cobra.Command, []string) {
		c.dispatched = true
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newWarmCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context. Errors raised before a command
// starts, such as unknown commands or malformed flags, are reported as usage errors.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	if err != nil && !c.dispatched {
		return domain.Wrap(domain.ErrInvalidArguments, err)
	}
	return err
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// globals collects the persistent flags shared by every command.
func globals(cmd *cobra.Command) app.GlobalOptions {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	cacheDir, _ := flags.GetString("cache-dir")
	logFormat, _ := flags.GetString("log-format")

	opts := app.GlobalOptions{
		ConfigPath: configPath,
		Overrides: domain.Overrides{
			CacheDir:  cacheDir,
			LogFormat: logFormat,
		},
	}

	if flags.Changed("lock-wait") {
		wait, _ := flags.GetDuration("lock-wait")
		opts.Overrides.LockWait = durationPtr(wait)
	}
	return opts
}

func durationPtr(d time.Duration) *time.Duration {
	return &d
}
