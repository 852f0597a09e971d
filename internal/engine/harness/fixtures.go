package harness

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/histo/internal/core/domain"
	"go.trai.ch/histo/internal/core/ports"
	"go.trai.ch/zerr"
)

type fixtureOptions struct {
	dir      string
	lockWait time.Duration
	fresh    bool
}

type datasetFixture struct {
	data domain.Dataset
	hit  bool
	// seed is set only when the dataset was generated by this call.
	seed *uint64
}

type referenceFixture struct {
	hist domain.Histogram
	hit  bool
}

// ensureDataset returns the dataset of params.N, generating and persisting it on a miss.
// announce is called once with the hit state before any generation starts.
func (h *Harness) ensureDataset(
	ctx context.Context,
	params domain.Params,
	opts fixtureOptions,
	announce func(hit bool),
) (datasetFixture, error) {
	if !opts.fresh {
		if fx, ok, err := h.cachedDataset(params, opts.dir); err != nil || ok {
			if ok {
				announce(true)
			}
			return fx, err
		}
	}

	path := h.store.DatasetPath(opts.dir, params.N)
	release, err := h.locker.Lock(ctx, path, opts.lockWait)
	if err != nil {
		return datasetFixture{}, err
	}
	defer h.release(release, path)

	// Another builder may have finished while we waited for the lock.
	if !opts.fresh {
		if fx, ok, err := h.cachedDataset(params, opts.dir); err != nil || ok {
			if ok {
				announce(true)
			}
			return fx, err
		}
	}

	announce(false)
	src, err := h.randomizer.NewSource(params.Seed)
	if err != nil {
		return datasetFixture{}, err
	}
	data := generate(src, params.N, params.B)
	if err := h.store.SaveDataset(opts.dir, params.N, data); err != nil {
		return datasetFixture{}, err
	}

	seed := src.Seed()
	return datasetFixture{data: data, seed: &seed}, nil
}

func (h *Harness) cachedDataset(params domain.Params, dir string) (datasetFixture, bool, error) {
	data, err := h.store.LoadDataset(dir, params.N)
	if err != nil {
		return datasetFixture{}, false, err
	}
	if data == nil {
		return datasetFixture{}, false, nil
	}
	if i, v := data.OutOfRange(params.B); i >= 0 {
		err := zerr.With(domain.Wrap(domain.ErrStaleDataset, nil), "path", h.store.DatasetPath(dir, params.N))
		err = zerr.With(err, "index", i)
		err = zerr.With(err, "value", v)
		return datasetFixture{}, false, zerr.With(err, "b", params.B)
	}
	return datasetFixture{data: data, hit: true}, true, nil
}

// ensureReference returns the reference histogram of (params.N, params.B), computing it from
// the dataset on a miss. A cached reference is only trusted when the dataset itself was a hit.
func (h *Harness) ensureReference(
	ctx context.Context,
	params domain.Params,
	dataset datasetFixture,
	opts fixtureOptions,
	announce func(hit bool),
) (referenceFixture, error) {
	if !dataset.hit {
		opts.fresh = true
	}

	if !opts.fresh {
		if fx, ok, err := h.cachedReference(params, opts.dir); err != nil || ok {
			if ok {
				announce(true)
			}
			return fx, err
		}
	}

	path := h.store.ReferencePath(opts.dir, params.N, params.B)
	release, err := h.locker.Lock(ctx, path, opts.lockWait)
	if err != nil {
		return referenceFixture{}, err
	}
	defer h.release(release, path)

	if !opts.fresh {
		if fx, ok, err := h.cachedReference(params, opts.dir); err != nil || ok {
			if ok {
				announce(true)
			}
			return fx, err
		}
	}

	announce(false)
	hist := Reference(dataset.data, params.B)
	if err := h.store.SaveReference(opts.dir, params.N, params.B, hist); err != nil {
		return referenceFixture{}, err
	}
	return referenceFixture{hist: hist}, nil
}

func (h *Harness) cachedReference(params domain.Params, dir string) (referenceFixture, bool, error) {
	hist, err := h.store.LoadReference(dir, params.N, params.B)
	if err != nil || hist == nil {
		return referenceFixture{}, false, err
	}
	if sum := hist.Sum(); sum != int64(params.N) {
		h.logger.Warn(fmt.Sprintf("discarding %s: bins sum to %d, expected %d",
			h.store.ReferencePath(dir, params.N, params.B), sum, params.N))
		return referenceFixture{}, false, nil
	}
	return referenceFixture{hist: hist, hit: true}, true, nil
}

func (h *Harness) release(release func() error, path string) {
	if err := release(); err != nil {
		h.logger.Warn(fmt.Sprintf("failed to release lock for %s: %v", path, err))
	}
}

// generate draws n values in [0, b) from src.
func generate(src ports.RandomSource, n, b int32) domain.Dataset {
	data := make(domain.Dataset, n)
	for i := range data {
		data[i] = src.Int32N(b)
	}
	return data
}
