// Package launcher provides an abstraction layer for different selector programs.
// It supports dmenu, rofi, fzf, bemenu and fuzzel behind one interface: the
// options are written to the program's stdin, one per line, and the first
// line it prints is the selection.
package launcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/lvim-tech/qmenu/internal/logfields"
)

// Options are passed to a selector for one invocation.
type Options struct {
	Prompt string
	// Settings is the selector's [config.<name>] table, passed through as is.
	Settings map[string]any
}

// Selector presents options and returns the one the user picked, or
// ErrCancelled.
type Selector interface {
	Name() string
	Select(ctx context.Context, options []string, opts Options) (string, error)
}

// CommonOptions are understood by every selector: `command` replaces the
// program and `args` are appended to its command line.
type CommonOptions struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

func decodeOptions(settings map[string]any, out any) error {
	if len(settings) == 0 {
		return nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(settings)
}

// baseLauncher runs a selector program.
type baseLauncher struct {
	name    string
	program string
	logger  *slog.Logger
}

func (b *baseLauncher) Name() string {
	return b.name
}

// run starts the selector with args and interprets its result. command
// overrides the program when set.
func (b *baseLauncher) run(ctx context.Context, command string, args []string, options []string) (string, error) {
	program := b.program
	if command != "" {
		program = command
	}

	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Stdin = strings.NewReader(strings.Join(options, "\n") + "\n")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	b.logger.Debug("starting selector",
		logfields.Selector(b.name),
		slog.String("program", program),
		slog.Any("args", args),
		slog.Int("options", len(options)))

	err := cmd.Run()
	choice := firstLine(stdout.String())

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && choice == "" {
			switch exitErr.ExitCode() {
			case 1, 130:
				return "", ErrCancelled
			}
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s failed: %w: %s", b.name, err, msg)
		}
		return "", fmt.Errorf("%s failed: %w", b.name, err)
	}

	if choice == "" {
		return "", ErrCancelled
	}

	b.logger.Debug("selector returned", logfields.Selector(b.name), logfields.Label(choice))
	return choice, nil
}

func firstLine(output string) string {
	line, _, _ := strings.Cut(output, "\n")
	return strings.TrimSuffix(line, "\r")
}

func withPrompt(args []string, flag, prompt string) []string {
	if prompt == "" {
		return args
	}
	return append(args, flag, prompt)
}
