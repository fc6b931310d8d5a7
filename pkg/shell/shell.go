// Package shell runs menu commands under the configured command interpreter.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
)

// Executor runs a command string and reports its exit status.
type Executor interface {
	Execute(ctx context.Context, command string) (int, error)
}

// Shell runs commands as `<Path> -c <command>` with the given stdio.
type Shell struct {
	Path   string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Env    []string
}

// New returns a Shell that inherits the process's stdio and environment.
// An empty path means "sh".
func New(path string) *Shell {
	if path == "" {
		path = "sh"
	}
	return &Shell{
		Path:   path,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// ExitInterrupted is reported for a command stopped because ctx was done.
const ExitInterrupted = 130

// Execute waits for the command and returns its exit status. A command killed
// by a signal reports 128+signal, like a POSIX shell, and one stopped by ctx
// reports ExitInterrupted. The error is non-nil only when the shell could not
// be run at all.
func (s *Shell) Execute(ctx context.Context, command string) (int, error) {
	cmd := exec.CommandContext(ctx, s.Path, "-c", command)
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	if s.Env != nil {
		cmd.Env = s.Env
	}

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	if ctx.Err() != nil {
		return ExitInterrupted, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			return 128 + int(status.Signal()), nil
		}
		return exitErr.ExitCode(), nil
	}

	return -1, fmt.Errorf("failed to run %s: %w", s.Path, err)
}
