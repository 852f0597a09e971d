package domain

import "fmt"

// MismatchError reports the first bin where the candidate diverges from the reference.
type MismatchError struct {
	Bin      int   `json:"bin"`
	Expected int32 `json:"expected"`
	Actual   int32 `json:"actual"`
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("histogram mismatch at bin %d: expected %d, got %d", e.Bin, e.Expected, e.Actual)
}

// Unwrap returns ErrHistogramMismatch so callers can match with errors.Is.
func (e *MismatchError) Unwrap() error {
	return ErrHistogramMismatch
}

// TruncatedError reports a histogram file whose size does not hold exactly B integers.
// Files longer than expected are rejected too.
type TruncatedError struct {
	Path      string `json:"path"`
	WantBytes int64  `json:"want_bytes"`
	GotBytes  int64  `json:"got_bytes"`
}

func (e *TruncatedError) Error() string {
	what := "truncated output"
	if e.GotBytes > e.WantBytes {
		what = "oversized output"
	}
	return fmt.Sprintf("%s %s: expected %d bytes, got %d", what, e.Path, e.WantBytes, e.GotBytes)
}

// Unwrap returns ErrTruncatedOutput so callers can match with errors.Is.
func (e *TruncatedError) Unwrap() error {
	return ErrTruncatedOutput
}
