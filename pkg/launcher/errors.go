package launcher

import "errors"

var (
	// ErrCancelled is returned when the user dismisses the selector (ESC).
	ErrCancelled = errors.New("cancelled by user")

	// ErrUnknownSelector is returned by New for an unsupported selector name.
	ErrUnknownSelector = errors.New("unknown selector")
)

// IsCancelled reports whether err is a cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
