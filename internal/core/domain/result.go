package domain

import (
	"errors"
	"time"
)

// Status is the outcome of a run as seen by graders.
type Status string

const (
	StatusPassed Status = "passed"
	StatusFailed Status = "failed"
)

// FailureSentinel is printed on stdout for any failed run.
const FailureSentinel = "-1"

// CacheHits records which fixtures were served from the cache.
type CacheHits struct {
	Dataset   bool `json:"dataset"`
	Reference bool `json:"reference"`
}

// Result is the structured outcome of a single run.
type Result struct {
	RunID         string          `json:"run_id"`
	StartedAt     time.Time       `json:"started_at"`
	Params        Params          `json:"params"`
	GeneratedSeed *uint64         `json:"generated_seed,omitempty"`
	Status        Status          `json:"status"`
	Stage         Stage           `json:"stage"`
	FailedAfter   *Stage          `json:"failed_after,omitempty"`
	Kind          Kind            `json:"kind,omitempty"`
	Message       string          `json:"message,omitempty"`
	ElapsedMS     int64           `json:"elapsed_ms"`
	InputPath     string          `json:"input_path,omitempty"`
	ReferencePath string          `json:"reference_path,omitempty"`
	DatasetDigest string          `json:"dataset_digest,omitempty"`
	Cache         CacheHits       `json:"cache"`
	Mismatch      *MismatchError  `json:"mismatch,omitempty"`
	Truncated     *TruncatedError `json:"truncated,omitempty"`
}

// Advance moves the result to the next stage.
func (r *Result) Advance(s Stage) {
	if r.Stage.Terminal() || s < r.Stage {
		return
	}
	r.Stage = s
}

// Pass marks the run as verified.
func (r *Result) Pass() {
	r.Advance(StageVerified)
	r.Status = StatusPassed
	r.Kind = KindNone
	r.Message = ""
}

// Fail marks the run as failed with err's classification and detail.
func (r *Result) Fail(err error) {
	if !r.Stage.Terminal() {
		reached := r.Stage
		r.FailedAfter = &reached
		r.Stage = StageFailed
	}
	r.Status = StatusFailed
	r.Kind = KindOf(err)
	r.Message = err.Error()

	var mismatch *MismatchError
	if errors.As(err, &mismatch) {
		r.Mismatch = mismatch
	}
	var truncated *TruncatedError
	if errors.As(err, &truncated) {
		r.Truncated = truncated
	}
}

// Passed reports whether the run was verified.
func (r *Result) Passed() bool {
	return r.Status == StatusPassed
}
