package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lvim-tech/qmenu/internal/cli"
	"github.com/lvim-tech/qmenu/pkg/config"
	"github.com/lvim-tech/qmenu/pkg/runner"
	"github.com/lvim-tech/qmenu/pkg/utils"
)

var version = "0.1.0"

type options struct {
	selector string
	verbose  bool
	dryRun   bool
}

// execute builds the command tree, runs it with args and returns the exit code.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	status := runner.ExitOK
	opts := &options{}

	root := newRootCmd(opts, &status)
	root.AddCommand(newInitCmd(), newCheckCmd(opts, &status), newVersionCmd())
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		reporter := cli.NewErrorReporter(nil)
		reporter.Out = stderr
		reporter.Report(err, nil)

		if status == runner.ExitOK {
			status = runner.StatusFor(err)
			if status == runner.ExitFailure {
				status = runner.ExitUsage
			}
		}
	}
	return int(status)
}

func newRootCmd(opts *options, status *runner.ExitStatus) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qmenu [CONFIG]",
		Short: "Run shell commands picked from a dmenu menu",
		Long: `qmenu reads a TOML (or YAML) menu, shows its labels in dmenu or another
selector, and runs the shell command mapped to the chosen label.

The config may be piped in instead of specifying a file path, or passed as "-".
Without either, ` + config.GetUserConfigPath() + ` is used.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), opts.verbose)

			var flags []string
			cmd.Flags().Visit(func(f *pflag.Flag) {
				flags = append(flags, "--"+f.Name+"="+f.Value.String())
			})
			slog.Debug("command", slog.String("name", cmd.CommandPath()), slog.Any("flags", flags), slog.Any("args", args))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := configSource(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			logger := slog.Default()
			reporter := cli.NewErrorReporter(logger)
			reporter.Out = cmd.ErrOrStderr()

			r := &runner.Runner{
				Stdin:    cmd.InOrStdin(),
				Stdout:   cmd.OutOrStdout(),
				Logger:   logger,
				Reporter: reporter,
				Selector: opts.selector,
				DryRun:   opts.dryRun,
			}
			*status = r.Run(cmd.Context(), source)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug information to stderr")
	cmd.PersistentFlags().StringVarP(&opts.selector, "selector", "s", "", "Selector to use (dmenu, rofi, fzf, bemenu, fuzzel)")
	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "Print the chosen command instead of running it")

	return cmd
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// configSource picks the configuration: an explicit argument, piped stdin,
// or the user config file, in that order.
func configSource(args []string, stdin io.Reader) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if f, ok := stdin.(*os.File); !ok || !utils.IsTerminal(f) {
		return runner.StdinSource, nil
	}

	path := config.GetUserConfigPath()
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return "", fmt.Errorf("%w: no config file given and %s does not exist (run `qmenu init`)", runner.ErrUsage, path)
}
