// Package app implements the application layer for histo.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/histo/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"go.trai.ch/histo/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/histo/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/histo/internal/core/domain"
	"go.trai.ch/histo/internal/core/ports"
	"go.trai.ch/histo/internal/engine/harness"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	store        ports.FixtureStore
	solutions    ports.SolutionFactory
	harness      *harness.Harness
	validate     *validator.Validate
	stdout       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	store ports.FixtureStore,
	solutions ports.SolutionFactory,
	h *harness.Harness,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		store:        store,
		solutions:    solutions,
		harness:      h,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		stdout:       os.Stdout,
	}
}

// WithStdout redirects the grader-facing progress stream.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// GlobalOptions are shared by every command.
type GlobalOptions struct {
	ConfigPath string
	Overrides  domain.Overrides
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	GlobalOptions

	// Args are the positional arguments <N> <B> [seed].
	Args        []string
	Fresh       bool
	KeepOutput  bool
	ReportPath  string
	MetricsPath string
	TracePath   string
}

// Run grades one solution. The result is nil only when the invocation was rejected before
// any fixture was touched.
func (a *App) Run(ctx context.Context, opts RunOptions) (*domain.Result, error) {
	// 1. Validate the invocation before anything touches the cache.
	params, err := domain.ParseParams(opts.Args)
	if err != nil {
		return nil, err
	}
	if err := a.validateParams(params); err != nil {
		return nil, err
	}

	// 2. Load configuration
	cfg, err := a.loadConfig(opts.GlobalOptions)
	if err != nil {
		return nil, err
	}

	// 3. Resolve the solution under test
	solution, err := a.solution(cfg)
	if err != nil {
		return nil, err
	}

	// 4. Initialize Telemetry
	tracer, err := telemetry.NewFileTracer(opts.TracePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := tracer.Shutdown(context.WithoutCancel(ctx)); err != nil {
			a.logger.Warn(fmt.Sprintf("failed to flush traces: %v", err))
		}
	}()

	// 5. Run the harness
	result, runErr := a.harness.Run(ctx, params, harness.RunOptions{
		CacheDir:   cfg.CacheDir,
		LockWait:   cfg.LockWait,
		Timeout:    cfg.Timeout,
		Fresh:      opts.Fresh,
		KeepOutput: opts.KeepOutput,
		Solution:   solution,
		Tracer:     tracer,
		Progress:   linear.NewProgress(a.stdout),
	})

	// 6. Persist run artifacts
	if err := a.writeArtifacts(result, opts); err != nil {
		if runErr == nil {
			return result, err
		}
		a.logger.Warn(err.Error())
	}
	return result, runErr
}

// WarmOptions configuration for the Warm method.
type WarmOptions struct {
	GlobalOptions

	// Pairs are the N:B targets to pre-build.
	Pairs []string
	Seed  *uint64
}

// Warm pre-builds the fixtures of every pair.
func (a *App) Warm(ctx context.Context, opts WarmOptions) ([]harness.Warmed, error) {
	if len(opts.Pairs) == 0 {
		return nil, zerr.With(domain.Wrap(domain.ErrInvalidPair, nil), "pair", "")
	}
	pairs := make([]domain.Params, 0, len(opts.Pairs))
	for _, raw := range opts.Pairs {
		p, err := domain.ParsePair(raw)
		if err != nil {
			return nil, err
		}
		if err := a.validateParams(p); err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}

	cfg, err := a.loadConfig(opts.GlobalOptions)
	if err != nil {
		return nil, err
	}

	return a.harness.Warm(ctx, pairs, harness.WarmOptions{
		CacheDir: cfg.CacheDir,
		LockWait: cfg.LockWait,
		Jobs:     cfg.Jobs,
		Seed:     opts.Seed,
		Tracer:   telemetry.NewNoopTracer(),
	})
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	GlobalOptions

	DryRun bool
}

// Clean removes cached fixtures and abandoned lock and temporary files.
func (a *App) Clean(ctx context.Context, opts CleanOptions) ([]domain.CacheEntry, error) {
	cfg, err := a.loadConfig(opts.GlobalOptions)
	if err != nil {
		return nil, err
	}

	removed, err := a.harness.Clean(ctx, harness.CleanOptions{
		CacheDir: cfg.CacheDir,
		LockWait: cfg.LockWait,
		DryRun:   opts.DryRun,
	})

	verb := "removed"
	if opts.DryRun {
		verb = "would remove"
	}
	for _, entry := range removed {
		a.logger.Info(fmt.Sprintf("%s %s %s", verb, entry.Kind, entry.Path))
	}
	return removed, err
}

func (a *App) loadConfig(opts GlobalOptions) (*domain.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = domain.ConfigFileName
	}

	cfg, err := a.configLoader.Load(path, opts.Overrides)
	if err != nil {
		return nil, err
	}

	if f, ok := a.logger.(interface{ SetFormat(format string) }); ok {
		f.SetFormat(cfg.LogFormat)
	}
	return cfg, nil
}

func (a *App) validateParams(params domain.Params) error {
	err := a.validate.Struct(params)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		wrapped := zerr.With(domain.Wrap(domain.ErrInvalidParams, nil), "field", first.Field())
		wrapped = zerr.With(wrapped, "rule", first.Tag()+"="+first.Param())
		return zerr.With(wrapped, "value", fmt.Sprint(first.Value()))
	}
	return domain.Wrap(domain.ErrInvalidParams, err)
}

func (a *App) solution(cfg *domain.Config) (ports.Solution, error) {
	if harness.IsReferenceCommand(cfg.Solution) {
		return harness.NewReferenceSolution(a.store, cfg.CacheDir), nil
	}
	return a.solutions.NewSolution(cfg.Solution)
}

func (a *App) writeArtifacts(result *domain.Result, opts RunOptions) error {
	var errs error

	if opts.ReportPath != "" {
		errs = errors.Join(errs, WriteReport(opts.ReportPath, result))
	}

	if opts.MetricsPath != "" {
		recorder := metrics.NewRecorder()
		recorder.Observe(result)
		errs = errors.Join(errs, recorder.WriteTextfile(opts.MetricsPath))
	}

	return errs
}
