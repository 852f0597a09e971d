package domain

// Stage is a step of the grading pipeline. Stages only move forward.
type Stage int

const (
	StageInit Stage = iota
	StageInputReady
	StageReferenceReady
	StageSolutionRan
	StageVerified
	StageFailed
)

var stageNames = [...]string{
	StageInit:           "init",
	StageInputReady:     "input_ready",
	StageReferenceReady: "reference_ready",
	StageSolutionRan:    "solution_ran",
	StageVerified:       "verified",
	StageFailed:         "failed",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// MarshalText encodes the stage by name.
func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Terminal reports whether no further transition is possible.
func (s Stage) Terminal() bool {
	return s == StageVerified || s == StageFailed
}
