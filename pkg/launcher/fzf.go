package launcher

import (
	"context"
	"fmt"
	"log/slog"
)

type Fzf struct {
	baseLauncher
}

func NewFzf(logger *slog.Logger) *Fzf {
	return &Fzf{baseLauncher{name: "fzf", program: "fzf", logger: logger}}
}

func (f *Fzf) Select(ctx context.Context, options []string, opts Options) (string, error) {
	var o CommonOptions
	if err := decodeOptions(opts.Settings, &o); err != nil {
		return "", fmt.Errorf("invalid fzf settings: %w", err)
	}

	// fzf has no prompt separator of its own
	prompt := opts.Prompt
	if prompt != "" {
		prompt += "> "
	}
	args := withPrompt(nil, "--prompt", prompt)
	return f.run(ctx, o.Command, append(args, o.Args...), options)
}
