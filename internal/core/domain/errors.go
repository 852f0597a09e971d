package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidArguments is returned when the positional arguments cannot be parsed.
	ErrInvalidArguments = zerr.New("usage: histo run <N> <B> [seed]")

	// ErrInvalidParams is returned when N or B are outside their accepted range.
	ErrInvalidParams = zerr.New("invalid run parameters")

	// ErrInvalidPair is returned when a warm target is not of the form N:B.
	ErrInvalidPair = zerr.New("invalid pair, expected format: N:B")

	// ErrNoSolution is returned when no solution command is configured.
	ErrNoSolution = zerr.New("no solution configured, use --solution or HISTO_SOLUTION")

	// ErrCacheDirUnavailable is returned when the cache directory cannot be created or used.
	ErrCacheDirUnavailable = zerr.New("cache directory unavailable")

	// ErrStaleDataset is returned when a cached dataset holds values outside [0, B).
	ErrStaleDataset = zerr.New("cached dataset has values outside the bucket range")

	// ErrLockTimeout is returned when a cache entry lock could not be acquired in time.
	ErrLockTimeout = zerr.New("timed out waiting for cache entry lock")

	// ErrLockLost is returned when a released lock had been broken and taken by another builder.
	ErrLockLost = zerr.New("cache entry lock was taken over by another builder")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigEnvFailed is returned when environment overrides cannot be applied.
	ErrConfigEnvFailed = zerr.New("failed to read environment configuration")

	// ErrInvalidConfig is returned when the resolved configuration fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrDatasetReadFailed is returned when a cached dataset cannot be read.
	ErrDatasetReadFailed = zerr.New("failed to read dataset")

	// ErrDatasetWriteFailed is returned when a dataset cannot be persisted.
	ErrDatasetWriteFailed = zerr.New("failed to write dataset")

	// ErrReferenceReadFailed is returned when a reference histogram cannot be read.
	ErrReferenceReadFailed = zerr.New("failed to read reference histogram")

	// ErrReferenceWriteFailed is returned when a reference histogram cannot be persisted.
	ErrReferenceWriteFailed = zerr.New("failed to write reference histogram")

	// ErrReportWriteFailed is returned when the run report cannot be written.
	ErrReportWriteFailed = zerr.New("failed to write run report")

	// ErrMetricsWriteFailed is returned when the metrics textfile cannot be written.
	ErrMetricsWriteFailed = zerr.New("failed to write metrics textfile")

	// ErrTraceSetupFailed is returned when the trace exporter cannot be created.
	ErrTraceSetupFailed = zerr.New("failed to set up trace exporter")

	// ErrCleanFailed is returned when a cache entry cannot be removed.
	ErrCleanFailed = zerr.New("failed to remove cache entry")

	// ErrSolutionFailed is returned when the solution under test exits with an error.
	ErrSolutionFailed = zerr.New("solution failed")

	// ErrSolutionTimeout is returned when the solution exceeds the configured timeout.
	ErrSolutionTimeout = zerr.New("solution timed out")

	// ErrSolutionNoOutput is returned when the solution does not report an output path.
	ErrSolutionNoOutput = zerr.New("solution did not report an output path")

	// ErrCandidateMissing is returned when the reported output file does not exist.
	ErrCandidateMissing = zerr.New("solution output file not found")

	// ErrCandidateReadFailed is returned when the solution output file cannot be read.
	ErrCandidateReadFailed = zerr.New("failed to read solution output")

	// ErrHistogramMismatch is the sentinel wrapped by every MismatchError.
	ErrHistogramMismatch = zerr.New("histogram mismatch")

	// ErrTruncatedOutput is the sentinel wrapped by every TruncatedError.
	ErrTruncatedOutput = zerr.New("output size mismatch")
)

// Wrap ties a sentinel to its underlying cause so that errors.Is matches both.
// A nil cause yields the sentinel alone, still ready for zerr.With metadata.
func Wrap(sentinel, cause error) error {
	if cause == nil {
		return zerr.Wrap(sentinel, "")
	}
	return fmt.Errorf("%w: %w", sentinel, cause)
}
