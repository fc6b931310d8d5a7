package config

import (
	"fmt"
	"sort"

	"github.com/mitchellh/mapstructure"
)

const (
	DefaultSelector  = "dmenu"
	DefaultShell     = "sh"
	DefaultSeparator = ": "
)

// NotificationConfig controls desktop notifications for fatal errors.
type NotificationConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Tool    string `mapstructure:"tool"`    // "auto", "dunstify" or "notify-send"
	Timeout int    `mapstructure:"timeout"` // milliseconds
	Urgency string `mapstructure:"urgency"`
}

// Settings holds the [config] table. Selector tables ([config.dmenu],
// [config.rofi], ...) are kept verbatim and interpreted by the selector.
type Settings struct {
	Selector  string
	Prompt    string
	Shell     string
	AdHoc     bool
	Numbered  bool
	Separator string
	Notify    NotificationConfig

	selectorSet bool
	selectors   map[string]map[string]any
}

// SelectorConfigured reports whether `selector` was set explicitly rather
// than defaulted.
func (s Settings) SelectorConfigured() bool {
	return s.selectorSet
}

// SelectorOptions returns the pass-through table for the named selector.
// The returned map must not be modified.
func (s Settings) SelectorOptions(name string) map[string]any {
	return s.selectors[name]
}

// SelectorNames lists the selectors that have a settings table, sorted.
func (s Settings) SelectorNames() []string {
	names := make([]string, 0, len(s.selectors))
	for name := range s.selectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PromptFor returns the prompt for the named selector: its own `prompt` key
// wins over the top-level one.
func (s Settings) PromptFor(name string) string {
	if opts := s.selectors[name]; opts != nil {
		if prompt, ok := opts["prompt"].(string); ok && prompt != "" {
			return prompt
		}
	}
	return s.Prompt
}

// settingsFile mirrors the [config] table as decoded from the source.
type settingsFile struct {
	Selector  string             `mapstructure:"selector"`
	Prompt    string             `mapstructure:"prompt"`
	Shell     string             `mapstructure:"shell"`
	AdHoc     bool               `mapstructure:"ad-hoc"`
	Numbered  bool               `mapstructure:"numbered"`
	Separator *string            `mapstructure:"separator"`
	Notify    NotificationConfig `mapstructure:"notify"`
	Rest      map[string]any     `mapstructure:",remain"`
}

func defaultSettings() Settings {
	return Settings{
		Selector:  DefaultSelector,
		Shell:     DefaultShell,
		Separator: DefaultSeparator,
		Notify: NotificationConfig{
			Tool:    "auto",
			Timeout: 5000,
			Urgency: "critical",
		},
		selectors: map[string]map[string]any{},
	}
}

// settingsFromMap decodes the raw [config] table on top of the defaults.
func settingsFromMap(raw map[string]any) (Settings, error) {
	settings := defaultSettings()
	if len(raw) == 0 {
		return settings, nil
	}

	file := settingsFile{Notify: settings.Notify}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &file,
	})
	if err != nil {
		return settings, err
	}
	if err := decoder.Decode(raw); err != nil {
		return settings, err
	}

	if file.Selector != "" {
		settings.Selector = file.Selector
		settings.selectorSet = true
	}
	if file.Shell != "" {
		settings.Shell = file.Shell
	}
	if file.Separator != nil {
		settings.Separator = *file.Separator
	}
	settings.Prompt = file.Prompt
	settings.AdHoc = file.AdHoc
	settings.Numbered = file.Numbered
	settings.Notify = file.Notify

	for key, value := range file.Rest {
		table, ok := value.(map[string]any)
		if !ok {
			return settings, fmt.Errorf("unknown setting `%s`", key)
		}
		settings.selectors[key] = table
	}

	return settings, nil
}
