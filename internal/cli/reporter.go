// Package cli presents fatal errors to the user: a colored message on stderr
// and, when configured, a desktop notification.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/lvim-tech/qmenu/internal/logfields"
	"github.com/lvim-tech/qmenu/pkg/config"
	"github.com/lvim-tech/qmenu/pkg/utils"
)

// ErrorReporter implements runner.Reporter.
type ErrorReporter struct {
	Out    io.Writer
	Logger *slog.Logger
	// Notify sends the desktop notification; nil uses the dunstify/notify-send helper.
	Notify func(cfg *config.NotificationConfig, title, message string)
}

// NewErrorReporter creates a reporter writing to stderr.
func NewErrorReporter(logger *slog.Logger) *ErrorReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ErrorReporter{Out: os.Stderr, Logger: logger}
}

// Report prints err and, when notify is enabled, raises a notification.
func (r *ErrorReporter) Report(err error, notify *config.NotificationConfig) {
	if err == nil {
		return
	}

	r.Logger.Debug("fatal error", logfields.Error(err))
	fmt.Fprintln(r.Out, FormatError(err))

	if notify != nil && notify.Enabled {
		send := r.Notify
		if send == nil {
			send = func(cfg *config.NotificationConfig, title, message string) {
				utils.ShowErrorNotificationWithConfig(cfg, title, message)
			}
		}
		send(notify, "qmenu", err.Error())
	}
}

// FormatError renders err as "Error: <message>." with a red bold header.
// Color is dropped automatically when output is not a terminal.
func FormatError(err error) string {
	header := color.New(color.FgRed, color.Bold).Sprint("Error")
	msg := strings.TrimRight(err.Error(), ".")
	return fmt.Sprintf("%s: %s.", header, msg)
}
