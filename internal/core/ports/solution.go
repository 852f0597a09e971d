package ports

import "context"

// Solution is the histogram routine under test.
//
//go:generate mockgen -source=solution.go -destination=mocks/mock_solution.go -package=mocks
type Solution interface {
	// Compute builds the histogram of the dataset at inputPath and returns the path of
	// a file holding b native-endian int32 counts.
	Compute(ctx context.Context, inputPath string, n, b int32) (string, error)
}

// SolutionFactory builds a Solution from a configured command.
type SolutionFactory interface {
	NewSolution(command []string) (Solution, error)
}
