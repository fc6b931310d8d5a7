package launcher

import (
	"context"
	"fmt"
	"log/slog"
)

type Rofi struct {
	baseLauncher
}

func NewRofi(logger *slog.Logger) *Rofi {
	return &Rofi{baseLauncher{name: "rofi", program: "rofi", logger: logger}}
}

func (r *Rofi) Select(ctx context.Context, options []string, opts Options) (string, error) {
	var o CommonOptions
	if err := decodeOptions(opts.Settings, &o); err != nil {
		return "", fmt.Errorf("invalid rofi settings: %w", err)
	}

	args := withPrompt([]string{"-dmenu"}, "-p", opts.Prompt)
	return r.run(ctx, o.Command, append(args, o.Args...), options)
}
