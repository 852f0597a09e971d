// Package main is the entry point for the histo grading harness.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/histo/cmd/histo/commands"
	"go.trai.ch/histo/internal/app"
	"go.trai.ch/histo/internal/core/domain"
	_ "go.trai.ch/histo/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

// run executes the CLI and returns the process exit code. Every failure prints the grader
// sentinel on stdout and the diagnostic on stderr.
func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stdout, domain.FailureSentinel)
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return domain.ExitInternal
	}
	defer cleanup()

	components.App.WithStdout(stdout)
	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		_, _ = fmt.Fprintln(stdout, domain.FailureSentinel)
		components.Logger.Error(err)
		return domain.KindOf(err).ExitCode()
	}
	return domain.ExitOK
}
