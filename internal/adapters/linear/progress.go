// Package linear writes the grader-facing progress protocol as plain, line-oriented output.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/histo/internal/core/ports"
	"go.trai.ch/histo/internal/ui/output"
	"go.trai.ch/histo/internal/ui/style"
)

var _ ports.Progress = (*Progress)(nil)

// Progress implements ports.Progress. Lines are colored only when out is a terminal.
type Progress struct {
	out    io.Writer
	output *termenv.Output

	mu sync.Mutex
}

// NewProgress creates a Progress writing to out, or stdout when out is nil.
func NewProgress(out io.Writer) *Progress {
	if out == nil {
		out = os.Stdout
	}
	return &Progress{
		out:    out,
		output: output.New(out),
	}
}

// Step prints "[k/total] msg".
func (p *Progress) Step(k, total int, msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	prefix := p.output.String(fmt.Sprintf("[%d/%d]", k, total)).
		Foreground(p.output.Color(string(style.Iris))).
		Bold().
		String()
	_, _ = fmt.Fprintf(p.out, "%s %s\n", prefix, msg)
}

// Detail prints a tab-indented note under the current step.
func (p *Progress) Detail(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, _ = fmt.Fprintf(p.out, "\t- %s\n", msg)
}

// Passed prints the solution time of a verified run.
func (p *Progress) Passed(elapsedMS int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	line := p.output.String(fmt.Sprintf("Execution time: %d ms", elapsedMS)).
		Foreground(p.output.Color(string(style.Green))).
		String()
	_, _ = fmt.Fprintln(p.out, line)
}
