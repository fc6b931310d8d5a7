// Package runner sequences one qmenu invocation: load the configuration,
// show the menu, resolve the selection and run its command.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lvim-tech/qmenu/internal/logfields"
	"github.com/lvim-tech/qmenu/pkg/config"
	"github.com/lvim-tech/qmenu/pkg/launcher"
	"github.com/lvim-tech/qmenu/pkg/menu"
	"github.com/lvim-tech/qmenu/pkg/shell"
	"github.com/lvim-tech/qmenu/pkg/utils"
)

// StdinSource is the config source name that reads the configuration from stdin.
const StdinSource = "-"

// Reporter shows a fatal error to the user. notify is nil when the
// configuration could not be loaded.
type Reporter interface {
	Report(err error, notify *config.NotificationConfig)
}

// Runner holds the collaborators of a run. The zero value runs the real
// selector and shell with the default logger.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Logger *slog.Logger

	Reporter Reporter

	// Selector overrides the selector named in the configuration.
	Selector string
	// DryRun prints the resolved command instead of executing it.
	DryRun bool

	NewSelector func(name string, logger *slog.Logger) (launcher.Selector, error)
	NewExecutor func(shellPath string) shell.Executor
	// LookPath reports whether a selector program is installed. Nil
	// searches PATH.
	LookPath func(program string) bool
}

// Run performs one invocation and returns the status the process should
// exit with. Fatal errors are handed to the Reporter; a cancelled selection
// is silent.
func (r *Runner) Run(ctx context.Context, source string) ExitStatus {
	model, err := r.Load(source)
	if err != nil {
		return r.fail(err, nil)
	}

	status, err := r.Launch(ctx, model)
	if err != nil {
		notify := model.Settings().Notify
		return r.fail(err, &notify)
	}
	return status
}

// Load reads the configuration from a path, or from Stdin for StdinSource.
func (r *Runner) Load(source string) (*config.Model, error) {
	var (
		model *config.Model
		err   error
	)
	if source == StdinSource {
		model, err = config.LoadReader("<stdin>", r.stdin(), config.FormatTOML)
	} else {
		model, err = config.Load(source)
	}
	if err != nil {
		return nil, err
	}

	r.logger().Debug("configuration loaded",
		logfields.Source(model.Source()),
		logfields.Entries(model.Len()))
	return model, nil
}

// Launch shows the menu for model and runs the chosen command. The returned
// error is nil for a completed or cancelled run; the command's own exit
// status is returned unchanged.
func (r *Runner) Launch(ctx context.Context, model *config.Model) (ExitStatus, error) {
	logger := r.logger()
	settings := model.Settings()

	resolver := menu.New(model)
	if resolver.Empty() {
		logger.Info("menu is empty, nothing to select", logfields.Source(model.Source()))
		return ExitOK, nil
	}

	name := r.SelectorFor(settings)
	selector, err := r.newSelector(name, logger)
	if err != nil {
		return ExitUsage, err
	}
	if err := ValidateSelector(model, name); err != nil {
		return ExitConfig, err
	}

	presenter := menu.NewPresenter(settings.Numbered, settings.Separator)
	choice, err := selector.Select(ctx, presenter.Present(resolver.DisplayLabels()), launcher.Options{
		Prompt:   settings.PromptFor(name),
		Settings: settings.SelectorOptions(name),
	})
	if launcher.IsCancelled(err) {
		logger.Debug("selection cancelled", logfields.Selector(name))
		return ExitCancelled, nil
	}
	if err != nil {
		return ExitUnavailable, &UnavailableError{Err: err}
	}

	command, err := r.commandFor(resolver, presenter, choice, settings.AdHoc)
	if err != nil {
		return ExitResolve, err
	}

	if r.DryRun {
		fmt.Fprintln(r.stdout(), command)
		return ExitOK, nil
	}

	logger.Debug("running command", logfields.Command(command), logfields.Shell(settings.Shell))
	code, err := r.newExecutor(settings.Shell).Execute(ctx, command)
	if err != nil {
		return ExitUnavailable, &UnavailableError{Err: err}
	}
	if code != 0 {
		logger.Debug("command exited", logfields.Command(command), logfields.ExitCode(code))
	}
	return ExitStatus(code), nil
}

// SelectorFor picks the selector to run. The override and an explicit
// `selector` setting are used as is. Otherwise the default is used when it
// is installed or has its own `command`, and the first installed supported
// selector when it is not.
func (r *Runner) SelectorFor(settings config.Settings) string {
	if r.Selector != "" {
		return r.Selector
	}
	if settings.SelectorConfigured() {
		return settings.Selector
	}
	if command, _ := settings.SelectorOptions(settings.Selector)["command"].(string); command != "" {
		return settings.Selector
	}

	lookPath := r.LookPath
	if lookPath == nil {
		lookPath = utils.CommandExists
	}
	if lookPath(settings.Selector) {
		return settings.Selector
	}
	if detected := launcher.DetectAvailable(lookPath); detected != "" {
		r.logger().Debug("default selector not installed, using fallback",
			logfields.Selector(detected))
		return detected
	}
	return settings.Selector
}

// ValidateSelector checks the [config.<name>] table of model against the
// options the selector understands.
func ValidateSelector(model *config.Model, name string) error {
	if err := launcher.ValidateSettings(name, model.Settings().SelectorOptions(name)); err != nil {
		return &config.Error{
			Source: model.Source(),
			Kind:   config.KindInvalid,
			Key:    "config." + name,
			Err:    err,
		}
	}
	return nil
}

func (r *Runner) commandFor(resolver *menu.Resolver, presenter menu.Presenter, choice string, adHoc bool) (string, error) {
	label := presenter.Recover(choice)
	entry, err := resolver.Resolve(label)
	if err == nil {
		r.logger().Debug("selection resolved", logfields.Label(entry.Label))
		return entry.Command, nil
	}
	if adHoc {
		r.logger().Debug("running ad-hoc command", logfields.Command(choice))
		return choice, nil
	}
	return "", fmt.Errorf("%w; choose a menu option or set `config.ad-hoc = true`", err)
}

func (r *Runner) fail(err error, notify *config.NotificationConfig) ExitStatus {
	status := StatusFor(err)
	if status == ExitCancelled {
		return status
	}
	if r.Reporter != nil {
		r.Reporter.Report(err, notify)
	} else {
		r.logger().Error("run failed", logfields.Error(err))
	}
	return status
}

func (r *Runner) newSelector(name string, logger *slog.Logger) (launcher.Selector, error) {
	if r.NewSelector != nil {
		return r.NewSelector(name, logger)
	}
	return launcher.New(name, logger)
}

func (r *Runner) newExecutor(shellPath string) shell.Executor {
	if r.NewExecutor != nil {
		return r.NewExecutor(shellPath)
	}
	return shell.New(shellPath)
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

func (r *Runner) stdin() io.Reader {
	if r.Stdin != nil {
		return r.Stdin
	}
	return os.Stdin
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}
