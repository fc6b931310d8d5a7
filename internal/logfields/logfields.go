// Package logfields holds the canonical slog attribute keys used across qmenu.
package logfields

import "log/slog"

const (
	KeySelector = "selector"
	KeyLabel    = "label"
	KeyCommand  = "command"
	KeySource   = "source"
	KeyShell    = "shell"
	KeyExitCode = "exit_code"
	KeyEntries  = "entries"
	KeyError    = "error"
)

func Selector(name string) slog.Attr { return slog.String(KeySelector, name) }
func Label(l string) slog.Attr       { return slog.String(KeyLabel, l) }
func Command(c string) slog.Attr     { return slog.String(KeyCommand, c) }
func Source(s string) slog.Attr      { return slog.String(KeySource, s) }
func Shell(s string) slog.Attr       { return slog.String(KeyShell, s) }
func ExitCode(code int) slog.Attr    { return slog.Int(KeyExitCode, code) }
func Entries(n int) slog.Attr        { return slog.Int(KeyEntries, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
