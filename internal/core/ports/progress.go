package ports

//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks

// Progress reports pipeline steps to the operator on the grader-facing stream.
type Progress interface {
	// Step announces step k of total.
	Step(k, total int, msg string)
	// Detail adds an indented note to the current step.
	Detail(msg string)
	// Passed reports a verified run and its solution time.
	Passed(elapsedMS int64)
}
