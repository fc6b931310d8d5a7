package runner

import (
	"errors"

	"github.com/lvim-tech/qmenu/pkg/config"
	"github.com/lvim-tech/qmenu/pkg/launcher"
	"github.com/lvim-tech/qmenu/pkg/menu"
)

// ExitStatus is the process exit code of a run. Statuses of executed
// commands are passed through unchanged; the constants below are reserved
// for qmenu's own outcomes and follow sysexits(3) where one fits.
type ExitStatus int

const (
	ExitOK          ExitStatus = 0
	ExitFailure     ExitStatus = 1
	ExitUsage       ExitStatus = 64
	ExitUnavailable ExitStatus = 69
	ExitResolve     ExitStatus = 70
	ExitConfig      ExitStatus = 78
	ExitCancelled   ExitStatus = 130
)

// ErrUsage marks command-line usage errors.
var ErrUsage = errors.New("usage error")

// UnavailableError wraps a failure to start the selector or the shell.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string { return e.Err.Error() }
func (e *UnavailableError) Unwrap() error { return e.Err }

// StatusFor maps an error to the exit status reported for it.
func StatusFor(err error) ExitStatus {
	if err == nil {
		return ExitOK
	}

	var (
		unknown     *menu.UnknownSelectionError
		unavailable *UnavailableError
	)
	switch {
	case launcher.IsCancelled(err):
		return ExitCancelled
	case config.IsConfigError(err):
		return ExitConfig
	case errors.As(err, &unknown):
		return ExitResolve
	case errors.As(err, &unavailable):
		return ExitUnavailable
	case errors.Is(err, ErrUsage), errors.Is(err, launcher.ErrUnknownSelector):
		return ExitUsage
	default:
		return ExitFailure
	}
}
