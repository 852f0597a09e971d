package domain

import "errors"

// Kind classifies a failure for reporting and exit code selection.
type Kind int

const (
	// KindNone means no failure.
	KindNone Kind = iota
	// KindUsage covers malformed invocations.
	KindUsage
	// KindEnvironment covers missing capabilities, configuration and cache state problems.
	KindEnvironment
	// KindIO covers unreadable or unwritable harness files.
	KindIO
	// KindSolution covers a solution that crashed, hung or reported no usable output.
	KindSolution
	// KindMismatch covers a candidate histogram that differs from the reference.
	KindMismatch
	// KindTruncated covers a candidate histogram file of the wrong size.
	KindTruncated
	// KindInternal covers everything else.
	KindInternal
)

// Exit codes for harness health. Verdicts (pass or a judged failure) exit 0.
const (
	ExitOK          = 0
	ExitInternal    = 1
	ExitUsage       = 2
	ExitEnvironment = 3
	ExitIO          = 4
)

var kindNames = map[Kind]string{
	KindNone:        "none",
	KindUsage:       "usage",
	KindEnvironment: "environment",
	KindIO:          "io",
	KindSolution:    "solution",
	KindMismatch:    "mismatch",
	KindTruncated:   "truncated",
	KindInternal:    "internal",
}

// kindTable is checked in order; the first sentinel found in the chain wins.
var kindTable = []struct {
	sentinel error
	kind     Kind
}{
	{ErrHistogramMismatch, KindMismatch},
	{ErrTruncatedOutput, KindTruncated},
	{ErrSolutionFailed, KindSolution},
	{ErrSolutionTimeout, KindSolution},
	{ErrSolutionNoOutput, KindSolution},
	{ErrCandidateMissing, KindSolution},
	{ErrCandidateReadFailed, KindSolution},
	{ErrInvalidArguments, KindUsage},
	{ErrInvalidParams, KindUsage},
	{ErrInvalidPair, KindUsage},
	{ErrNoSolution, KindUsage},
	{ErrCacheDirUnavailable, KindEnvironment},
	{ErrStaleDataset, KindEnvironment},
	{ErrLockTimeout, KindEnvironment},
	{ErrLockLost, KindEnvironment},
	{ErrConfigReadFailed, KindEnvironment},
	{ErrConfigParseFailed, KindEnvironment},
	{ErrConfigEnvFailed, KindEnvironment},
	{ErrInvalidConfig, KindEnvironment},
	{ErrTraceSetupFailed, KindEnvironment},
	{ErrDatasetReadFailed, KindIO},
	{ErrDatasetWriteFailed, KindIO},
	{ErrReferenceReadFailed, KindIO},
	{ErrReferenceWriteFailed, KindIO},
	{ErrReportWriteFailed, KindIO},
	{ErrMetricsWriteFailed, KindIO},
	{ErrCleanFailed, KindIO},
}

// KindOf classifies err. A nil error is KindNone.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	for _, entry := range kindTable {
		if errors.Is(err, entry.sentinel) {
			return entry.kind
		}
	}
	return KindInternal
}

// String returns the lowercase name used in reports.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsVerdict reports whether the kind is a judgement on the solution rather than a harness failure.
func (k Kind) IsVerdict() bool {
	switch k {
	case KindNone, KindSolution, KindMismatch, KindTruncated:
		return true
	default:
		return false
	}
}

// ExitCode maps the kind to the process exit code.
func (k Kind) ExitCode() int {
	switch k {
	case KindNone, KindSolution, KindMismatch, KindTruncated:
		return ExitOK
	case KindUsage:
		return ExitUsage
	case KindEnvironment:
		return ExitEnvironment
	case KindIO:
		return ExitIO
	default:
		return ExitInternal
	}
}
