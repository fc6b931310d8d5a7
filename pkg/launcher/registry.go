package launcher

import (
	"fmt"
	"log/slog"

	"github.com/lvim-tech/qmenu/pkg/utils"
)

var registry = map[string]func(*slog.Logger) Selector{
	"dmenu":  func(l *slog.Logger) Selector { return NewDmenu(l) },
	"rofi":   func(l *slog.Logger) Selector { return NewRofi(l) },
	"fzf":    func(l *slog.Logger) Selector { return NewFzf(l) },
	"bemenu": func(l *slog.Logger) Selector { return NewBemenu(l) },
	"fuzzel": func(l *slog.Logger) Selector { return NewFuzzel(l) },
}

// Names lists the supported selectors in detection priority order.
func Names() []string {
	return []string{"dmenu", "rofi", "fzf", "bemenu", "fuzzel"}
}

// New returns the selector called name. A nil logger means slog.Default().
func New(name string, logger *slog.Logger) (Selector, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownSelector, name, Names())
	}
	if logger == nil {
		logger = slog.Default()
	}
	return factory(logger), nil
}

// ValidateSettings decodes the [config.<name>] table the way Select will,
// so malformed values surface before the selector is started.
func ValidateSettings(name string, settings map[string]any) error {
	var err error
	if name == "dmenu" {
		var o DmenuOptions
		err = decodeOptions(settings, &o)
	} else {
		var o CommonOptions
		err = decodeOptions(settings, &o)
	}
	if err != nil {
		return fmt.Errorf("invalid %s settings: %w", name, err)
	}
	return nil
}

// DetectAvailable returns the first supported selector for which exists
// reports true, or "". A nil exists looks the program up in PATH.
func DetectAvailable(exists func(string) bool) string {
	if exists == nil {
		exists = utils.CommandExists
	}
	for _, name := range Names() {
		if exists(name) {
			return name
		}
	}
	return ""
}
