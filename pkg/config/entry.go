package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// MenuEntry is one label/command pair from the [menu] table.
type MenuEntry struct {
	Label   string
	Command string
	// Group is nil for ungrouped entries.
	Group *int
}

// GroupID returns the entry's group and whether it has one.
func (e MenuEntry) GroupID() (int, bool) {
	if e.Group == nil {
		return 0, false
	}
	return *e.Group, true
}

// detailedEntry is the table form of a menu value: { run = "...", group = N }.
type detailedEntry struct {
	Run   string `mapstructure:"run"`
	Group any    `mapstructure:"group"`
}

// entryFromValue normalizes a decoded menu value, either a plain command
// string or a detailed table, into a MenuEntry.
func entryFromValue(label string, value any) (MenuEntry, error) {
	if strings.TrimSpace(label) == "" {
		return MenuEntry{}, errors.New("menu label must not be empty")
	}
	// selectors read one option per line
	if strings.ContainsAny(label, "\r\n") {
		return MenuEntry{}, errors.New("menu label must not contain line breaks")
	}

	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return MenuEntry{}, errors.New("command must not be empty")
		}
		return MenuEntry{Label: label, Command: v}, nil

	case map[string]any:
		var detailed detailedEntry
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			ErrorUnused: true,
			Result:      &detailed,
		})
		if err != nil {
			return MenuEntry{}, err
		}
		if err := decoder.Decode(v); err != nil {
			return MenuEntry{}, err
		}

		if _, ok := v["run"]; !ok {
			return MenuEntry{}, errors.New("missing `run` command")
		}
		if strings.TrimSpace(detailed.Run) == "" {
			return MenuEntry{}, errors.New("command must not be empty")
		}

		entry := MenuEntry{Label: label, Command: detailed.Run}
		if detailed.Group != nil {
			group, ok := intValue(detailed.Group)
			if !ok {
				return MenuEntry{}, fmt.Errorf("group must be an integer, got %v", detailed.Group)
			}
			if group < 0 {
				return MenuEntry{}, fmt.Errorf("group must not be negative, got %d", group)
			}
			entry.Group = &group
		}
		return entry, nil

	default:
		return MenuEntry{}, fmt.Errorf("expected a command string or a table with `run`, got %T", value)
	}
}

// intValue accepts the integer representations produced by the TOML and YAML
// decoders. Floats are rejected even when integral.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		if n > math.MaxInt || n < math.MinInt {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
