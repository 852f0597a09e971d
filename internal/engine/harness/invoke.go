package harness

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/histo/internal/core/domain"
	"go.trai.ch/histo/internal/core/ports"
	"go.trai.ch/zerr"
)

// invoke calls the solution and measures the wall-clock time of exactly that call in whole
// milliseconds. A zero timeout leaves the call unbounded.
func (h *Harness) invoke(
	ctx context.Context,
	solution ports.Solution,
	inputPath string,
	params domain.Params,
	timeout time.Duration,
) (string, int64, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := h.now()
	path, err := solution.Compute(ctx, inputPath, params.N, params.B)
	elapsed := h.now().Sub(start).Milliseconds()

	if err != nil {
		if timeout > 0 && errors.Is(ctx.Err(), context.DeadlineExceeded) && !errors.Is(err, domain.ErrSolutionTimeout) {
			err = zerr.With(domain.Wrap(domain.ErrSolutionTimeout, err), "timeout", timeout.String())
		}
		return "", elapsed, err
	}
	return path, elapsed, nil
}
