package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lvim-tech/qmenu/pkg/config"
	"github.com/lvim-tech/qmenu/pkg/menu"
	"github.com/lvim-tech/qmenu/pkg/runner"
)

func newCheckCmd(opts *options, status *runner.ExitStatus) *cobra.Command {
	return &cobra.Command{
		Use:   "check [CONFIG]",
		Short: "Validate a config and print the menu it would show",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := configSource(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			r := &runner.Runner{Stdin: cmd.InOrStdin(), Selector: opts.selector}
			model, err := r.Load(source)
			if err != nil {
				*status = runner.StatusFor(err)
				return err
			}

			selector := r.SelectorFor(model.Settings())
			if err := runner.ValidateSelector(model, selector); err != nil {
				*status = runner.StatusFor(err)
				return err
			}

			describe(cmd.OutOrStdout(), model, selector)
			return nil
		},
	}
}

// describe prints the display list, the hidden group alternatives and the
// effective selector settings of model.
func describe(w io.Writer, model *config.Model, selector string) {
	resolver := menu.New(model)
	settings := model.Settings()

	fmt.Fprintf(w, "source:   %s\n", model.Source())
	fmt.Fprintf(w, "selector: %s\n", selector)
	fmt.Fprintf(w, "prompt:   %s\n", settings.PromptFor(selector))
	fmt.Fprintf(w, "shell:    %s\n", settings.Shell)

	fmt.Fprintln(w, "\nmenu:")
	if resolver.Empty() {
		fmt.Fprintln(w, "  (empty)")
	}
	presenter := menu.NewPresenter(settings.Numbered, settings.Separator)
	for _, label := range presenter.Present(resolver.DisplayLabels()) {
		fmt.Fprintf(w, "  %s\n", label)
	}

	if hidden := resolver.Hidden(); len(hidden) > 0 {
		labels := make([]string, 0, len(hidden))
		for _, e := range hidden {
			labels = append(labels, e.Label)
		}
		fmt.Fprintf(w, "\nhidden alternatives: %s\n", strings.Join(labels, ", "))
	}
}
