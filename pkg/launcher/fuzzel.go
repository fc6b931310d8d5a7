package launcher

import (
	"context"
	"fmt"
	"log/slog"
)

type Fuzzel struct {
	baseLauncher
}

func NewFuzzel(logger *slog.Logger) *Fuzzel {
	return &Fuzzel{baseLauncher{name: "fuzzel", program: "fuzzel", logger: logger}}
}

func (f *Fuzzel) Select(ctx context.Context, options []string, opts Options) (string, error) {
	var o CommonOptions
	if err := decodeOptions(opts.Settings, &o); err != nil {
		return "", fmt.Errorf("invalid fuzzel settings: %w", err)
	}

	args := withPrompt([]string{"--dmenu"}, "--prompt", opts.Prompt)
	return f.run(ctx, o.Command, append(args, o.Args...), options)
}
