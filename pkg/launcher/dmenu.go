package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
)

// DmenuOptions are the [config.dmenu] keys translated into dmenu flags.
type DmenuOptions struct {
	CommonOptions `mapstructure:",squash"`

	Bottom             bool   `mapstructure:"bottom"`
	CaseInsensitive    bool   `mapstructure:"case-insensitive"`
	Lines              int    `mapstructure:"lines"`
	Monitor            *int   `mapstructure:"monitor"`
	Font               string `mapstructure:"font"`
	NormalBackground   string `mapstructure:"normal-background"`
	NormalForeground   string `mapstructure:"normal-foreground"`
	SelectedBackground string `mapstructure:"selected-background"`
	SelectedForeground string `mapstructure:"selected-foreground"`
	WindowID           string `mapstructure:"window-id"`
}

// Flags builds dmenu's argument list. prompt is used as given; the caller
// has already applied the prompt precedence rules.
func (o DmenuOptions) Flags(prompt string) []string {
	var args []string
	if o.Bottom {
		args = append(args, "-b")
	}
	if o.CaseInsensitive {
		args = append(args, "-i")
	}
	if o.Lines > 0 {
		args = append(args, "-l", strconv.Itoa(o.Lines))
	}
	if o.Monitor != nil {
		args = append(args, "-m", strconv.Itoa(*o.Monitor))
	}
	args = withPrompt(args, "-p", prompt)

	for _, flag := range []struct{ name, value string }{
		{"-fn", o.Font},
		{"-nb", o.NormalBackground},
		{"-nf", o.NormalForeground},
		{"-sb", o.SelectedBackground},
		{"-sf", o.SelectedForeground},
		{"-w", o.WindowID},
	} {
		if flag.value != "" {
			args = append(args, flag.name, flag.value)
		}
	}

	return append(args, o.Args...)
}

type Dmenu struct {
	baseLauncher
}

func NewDmenu(logger *slog.Logger) *Dmenu {
	return &Dmenu{baseLauncher{name: "dmenu", program: "dmenu", logger: logger}}
}

func (d *Dmenu) Select(ctx context.Context, options []string, opts Options) (string, error) {
	var o DmenuOptions
	if err := decodeOptions(opts.Settings, &o); err != nil {
		return "", fmt.Errorf("invalid dmenu settings: %w", err)
	}
	return d.run(ctx, o.Command, o.Flags(opts.Prompt), options)
}
