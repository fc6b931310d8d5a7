package launcher

import (
	"context"
	"fmt"
	"log/slog"
)

type Bemenu struct {
	baseLauncher
}

func NewBemenu(logger *slog.Logger) *Bemenu {
	return &Bemenu{baseLauncher{name: "bemenu", program: "bemenu", logger: logger}}
}

func (b *Bemenu) Select(ctx context.Context, options []string, opts Options) (string, error) {
	var o CommonOptions
	if err := decodeOptions(opts.Settings, &o); err != nil {
		return "", fmt.Errorf("invalid bemenu settings: %w", err)
	}

	args := withPrompt(nil, "-p", opts.Prompt)
	return b.run(ctx, o.Command, append(args, o.Args...), options)
}
