// Package harness implements the grading pipeline: fixture preparation, the timed solution
// call and bin-by-bin verification.
package harness

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/histo/internal/core/domain"
	"go.trai.ch/histo/internal/core/ports"
)

// totalSteps is the number of progress steps announced for a run.
const totalSteps = 4

// Harness runs grading scenarios against a shared fixture cache.
type Harness struct {
	store      ports.FixtureStore
	locker     ports.FixtureLocker
	hasher     ports.Hasher
	randomizer ports.Randomizer
	logger     ports.Logger
	now        func() time.Time
}

// New creates a new Harness.
func New(
	store ports.FixtureStore,
	locker ports.FixtureLocker,
	hasher ports.Hasher,
	randomizer ports.Randomizer,
	logger ports.Logger,
) *Harness {
	return &Harness{
		store:      store,
		locker:     locker,
		hasher:     hasher,
		randomizer: randomizer,
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock replaces the clock used for timing the solution.
func (h *Harness) WithClock(now func() time.Time) *Harness {
	h.now = now
	return h
}

// RunOptions configures a single run.
type RunOptions struct {
	CacheDir   string
	LockWait   time.Duration
	Timeout    time.Duration
	Fresh      bool
	KeepOutput bool

	Solution ports.Solution
	Tracer   ports.Tracer
	Progress ports.Progress
}

// Run grades one (N, B) scenario. The returned result is never nil and records the stage
// reached; err is the failure that ended the run, if any.
func (h *Harness) Run(ctx context.Context, params domain.Params, opts RunOptions) (*domain.Result, error) {
	result := &domain.Result{
		RunID:     uuid.NewString(),
		StartedAt: h.now().UTC(),
		Params:    params,
		Stage:     domain.StageInit,
	}

	ctx, span := opts.Tracer.Start(ctx, "run")
	defer span.End()
	span.SetAttribute("histo.run_id", result.RunID)
	span.SetAttribute("histo.n", params.N)
	span.SetAttribute("histo.b", params.B)
	span.SetAttribute("histo.fresh", opts.Fresh)

	if err := h.run(ctx, params, opts, result); err != nil {
		result.Fail(err)
		span.RecordError(err)
		span.SetAttribute("histo.stage", result.FailedAfter.String())
		return result, err
	}

	result.Pass()
	span.SetAttribute("histo.elapsed_ms", result.ElapsedMS)
	return result, nil
}

func (h *Harness) run(ctx context.Context, params domain.Params, opts RunOptions, result *domain.Result) error {
	reference, err := h.prepare(ctx, params, opts, result)
	if err != nil {
		return err
	}

	// Solution under test.
	opts.Progress.Step(4, totalSteps, "Running student solution")
	outputPath, err := stage(ctx, opts.Tracer, "solution_ran", func(ctx context.Context) (string, error) {
		path, elapsed, err := h.invoke(ctx, opts.Solution, result.InputPath, params, opts.Timeout)
		result.ElapsedMS = elapsed
		return path, err
	})
	if err != nil {
		return err
	}
	result.Advance(domain.StageSolutionRan)

	// Verification.
	_, err = stage(ctx, opts.Tracer, "verified", func(context.Context) (struct{}, error) {
		return struct{}{}, h.verify(reference.hist, outputPath, params.B, opts.KeepOutput)
	})
	if err != nil {
		return err
	}

	opts.Progress.Passed(result.ElapsedMS)
	return nil
}

// prepare readies the dataset and the reference histogram. The dataset does not outlive it.
func (h *Harness) prepare(
	ctx context.Context,
	params domain.Params,
	opts RunOptions,
	result *domain.Result,
) (referenceFixture, error) {
	cache := fixtureOptions{dir: opts.CacheDir, lockWait: opts.LockWait, fresh: opts.Fresh}

	// Input dataset.
	opts.Progress.Step(1, totalSteps, "Looking for input file")
	result.InputPath = h.store.DatasetPath(opts.CacheDir, params.N)
	dataset, err := stage(ctx, opts.Tracer, "input_ready", func(ctx context.Context) (datasetFixture, error) {
		return h.ensureDataset(ctx, params, cache, func(hit bool) {
			if hit {
				opts.Progress.Detail(fmt.Sprintf("Input file: %s found, using existing input file", result.InputPath))
				return
			}
			opts.Progress.Detail("Input file not found. Creating new test data: " + result.InputPath)
		})
	})
	if err != nil {
		return referenceFixture{}, err
	}
	result.Cache.Dataset = dataset.hit
	result.GeneratedSeed = dataset.seed
	result.DatasetDigest = h.hasher.HashDataset(dataset.data)
	result.Advance(domain.StageInputReady)

	// Reference histogram.
	result.ReferencePath = h.store.ReferencePath(opts.CacheDir, params.N, params.B)
	opts.Progress.Step(2, totalSteps, "Looking for verification file "+result.ReferencePath)
	reference, err := stage(ctx, opts.Tracer, "reference_ready", func(ctx context.Context) (referenceFixture, error) {
		return h.ensureReference(ctx, params, dataset, cache, func(hit bool) {
			if hit {
				opts.Progress.Step(3, totalSteps, "Verification file found, using existing verification data")
				return
			}
			opts.Progress.Step(3, totalSteps, "Verification file not found. Creating new verification data")
		})
	})
	if err != nil {
		return referenceFixture{}, err
	}
	result.Cache.Reference = reference.hit
	result.Advance(domain.StageReferenceReady)
	return reference, nil
}

// stage runs fn inside a span named after the stage it completes.
func stage[T any](ctx context.Context, tracer ports.Tracer, name string, fn func(context.Context) (T, error)) (T, error) {
	ctx, span := tracer.Start(ctx, name)
	defer span.End()

	out, err := fn(ctx)
	if err != nil {
		span.RecordError(err)
	}
	return out, err
}
