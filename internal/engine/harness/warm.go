package harness

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strconv"
	"sync"
	"time"

	"go.trai.ch/histo/internal/core/domain"
	"go.trai.ch/histo/internal/core/ports"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// WarmOptions configures a cache warming pass.
type WarmOptions struct {
	CacheDir string
	LockWait time.Duration
	// Jobs bounds concurrent pairs. Zero means one per CPU.
	Jobs int
	// Seed fixes the source of every generated dataset.
	Seed   *uint64
	Tracer ports.Tracer
}

// Warmed reports how one pair was served.
type Warmed struct {
	Params       domain.Params
	DatasetHit   bool
	ReferenceHit bool
}

// Warm builds the dataset and reference histogram of every pair. Pairs sharing N share one
// dataset, generated once for the smallest B among them so that it is valid for all of them.
func (h *Harness) Warm(ctx context.Context, pairs []domain.Params, opts WarmOptions) ([]Warmed, error) {
	ctx, span := opts.Tracer.Start(ctx, "warm")
	defer span.End()
	span.SetAttribute("histo.pairs", len(pairs))

	minB := make(map[int32]int32, len(pairs))
	for _, p := range pairs {
		if b, ok := minB[p.N]; !ok || p.B < b {
			minB[p.N] = p.B
		}
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	var (
		datasets singleflight.Group
		// built keeps each dataset for later pairs, so they see the same hit state.
		built  sync.Map
		mu     sync.Mutex
		warmed = make([]Warmed, 0, len(pairs))
	)
	cache := fixtureOptions{dir: opts.CacheDir, lockWait: opts.LockWait}

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for _, pair := range pairs {
		g.Go(func() error {
			res, err, _ := datasets.Do(strconv.FormatInt(int64(pair.N), 10), func() (any, error) {
				if fx, ok := built.Load(pair.N); ok {
					return fx, nil
				}
				params := domain.Params{N: pair.N, B: minB[pair.N], Seed: opts.Seed}
				fx, err := h.ensureDataset(groupCtx, params, cache, func(bool) {})
				if err != nil {
					return nil, err
				}
				built.Store(pair.N, fx)
				return fx, nil
			})
			if err != nil {
				return err
			}
			dataset := res.(datasetFixture)

			params := domain.Params{N: pair.N, B: pair.B}
			reference, err := h.ensureReference(groupCtx, params, dataset, cache, func(bool) {})
			if err != nil {
				return err
			}

			h.logger.Info(fmt.Sprintf("warmed %s (dataset %s, reference %s)",
				params, hitLabel(dataset.hit), hitLabel(reference.hit)))

			mu.Lock()
			warmed = append(warmed, Warmed{Params: params, DatasetHit: dataset.hit, ReferenceHit: reference.hit})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	sort.Slice(warmed, func(i, j int) bool {
		if warmed[i].Params.N != warmed[j].Params.N {
			return warmed[i].Params.N < warmed[j].Params.N
		}
		return warmed[i].Params.B < warmed[j].Params.B
	})
	return warmed, nil
}

func hitLabel(hit bool) string {
	if hit {
		return "cached"
	}
	return "built"
}
