// Package shell runs the solution under test as an external command.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/histo/internal/core/domain"
	"go.trai.ch/histo/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Solution        = (*Solution)(nil)
	_ ports.SolutionFactory = (*Factory)(nil)
)

// waitDelay bounds how long Wait blocks on output pipes after the process is killed.
const waitDelay = 2 * time.Second

// Factory builds shell solutions that share a logger.
type Factory struct {
	logger ports.Logger
}

// NewFactory creates a new Factory.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// NewSolution returns a Solution running command.
func (f *Factory) NewSolution(command []string) (ports.Solution, error) {
	if len(command) == 0 || command[0] == "" {
		return nil, domain.ErrNoSolution
	}
	return NewSolution(command, f.logger), nil
}

// Solution invokes <command...> <input> <N> <B> and reads the output path from the last
// non-empty line of its stdout. Earlier stdout lines are logged as info, stderr as warnings.
type Solution struct {
	command []string
	dir     string
	logger  ports.Logger
}

// NewSolution creates a Solution that runs in the current working directory.
func NewSolution(command []string, logger ports.Logger) *Solution {
	return &Solution{
		command: append([]string(nil), command...),
		logger:  logger,
	}
}

// WithDir sets the working directory of the command. Relative output paths resolve against it.
func (s *Solution) WithDir(dir string) *Solution {
	s.dir = dir
	return s
}

// Compute runs the command and returns the absolute path it reported.
func (s *Solution) Compute(ctx context.Context, inputPath string, n, b int32) (string, error) {
	args := append(append([]string(nil), s.command[1:]...),
		inputPath,
		strconv.FormatInt(int64(n), 10),
		strconv.FormatInt(int64(b), 10),
	)

	//nolint:gosec // The solution command is supplied by the operator.
	cmd := exec.CommandContext(ctx, s.command[0], args...)
	cmd.Dir = s.dir
	cmd.Env = os.Environ()
	cmd.WaitDelay = waitDelay

	var stdout bytes.Buffer
	stderrLog := &logWriter{logger: s.logger, level: levelWarn}
	cmd.Stdout = &stdout
	cmd.Stderr = stderrLog

	runErr := cmd.Run()
	_ = stderrLog.Close()

	if runErr != nil {
		return "", s.classify(ctx, runErr)
	}

	path, chatter := lastLine(stdout.String())
	for _, line := range chatter {
		s.logger.Info(line)
	}
	if path == "" {
		return "", zerr.With(domain.Wrap(domain.ErrSolutionNoOutput, nil), "command", strings.Join(s.command, " "))
	}

	if !filepath.IsAbs(path) {
		base := s.dir
		if base == "" {
			wd, err := os.Getwd()
			if err != nil {
				return "", zerr.Wrap(err, "failed to resolve working directory")
			}
			base = wd
		} else if abs, err := filepath.Abs(base); err == nil {
			base = abs
		}
		path = filepath.Join(base, path)
	}
	return path, nil
}

func (s *Solution) classify(ctx context.Context, err error) error {
	command := strings.Join(s.command, " ")

	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return zerr.With(domain.Wrap(domain.ErrSolutionTimeout, ctxErr), "command", command)
		}
		return ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		wrapped := zerr.With(domain.Wrap(domain.ErrSolutionFailed, err), "command", command)
		return zerr.With(wrapped, "exit_code", exitErr.ExitCode())
	}
	return zerr.With(domain.Wrap(domain.ErrSolutionFailed, err), "command", command)
}

// lastLine returns the last non-empty line of out and the non-empty lines before it.
func lastLine(out string) (string, []string) {
	var lines []string
	for line := range strings.Lines(out) {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return "", nil
	}
	return lines[len(lines)-1], lines[:len(lines)-1]
}
