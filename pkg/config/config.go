// Package config provides configuration loading for qmenu.
// It decodes the [menu] and [config] tables of a TOML or YAML file into an
// immutable Model whose entries keep the file's declaration order.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

//go:embed default.toml
var defaultConfigData string

// Format is the encoding of a configuration source.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// FormatFromPath picks the format by file extension. Anything that is not
// .yaml or .yml is treated as TOML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Model is the loaded configuration. It is never modified after Parse returns.
type Model struct {
	source   string
	entries  []MenuEntry
	settings Settings
}

// Source names where the model was loaded from.
func (m *Model) Source() string {
	return m.source
}

// Entries returns the menu entries in declaration order.
func (m *Model) Entries() []MenuEntry {
	entries := make([]MenuEntry, len(m.entries))
	for i, e := range m.entries {
		if e.Group != nil {
			group := *e.Group
			e.Group = &group
		}
		entries[i] = e
	}
	return entries
}

// Len returns the number of menu entries.
func (m *Model) Len() int {
	return len(m.entries)
}

// Settings returns the [config] table.
func (m *Model) Settings() Settings {
	return m.settings
}

// rawDocument is the format-independent result of decoding a source.
type rawDocument struct {
	labels []string
	values map[string]any
	config map[string]any
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newError(path, KindRead, "", err)
	}
	return Parse(path, data, FormatFromPath(path))
}

// LoadReader parses a configuration read from r, e.g. a piped stdin.
func LoadReader(source string, r io.Reader, format Format) (*Model, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, newError(source, KindRead, "", err)
	}
	return Parse(source, buf.Bytes(), format)
}

// Parse decodes data and validates it into a Model. Every failure is an *Error.
func Parse(source string, data []byte, format Format) (*Model, error) {
	var (
		doc *rawDocument
		err error
	)
	switch format {
	case FormatYAML:
		doc, err = decodeYAML(data)
	default:
		doc, err = decodeTOML(data)
	}
	if err != nil {
		return nil, newError(source, KindParse, "", err)
	}

	model := &Model{
		source:  source,
		entries: make([]MenuEntry, 0, len(doc.labels)),
	}

	seen := make(map[string]struct{}, len(doc.labels))
	for _, label := range doc.labels {
		if _, dup := seen[label]; dup {
			return nil, newError(source, KindDuplicate, "menu."+label, errors.New("duplicate menu label"))
		}
		seen[label] = struct{}{}

		entry, err := entryFromValue(label, doc.values[label])
		if err != nil {
			return nil, newError(source, KindInvalid, "menu."+label, err)
		}
		model.entries = append(model.entries, entry)
	}

	settings, err := settingsFromMap(doc.config)
	if err != nil {
		return nil, newError(source, KindInvalid, "config", err)
	}
	model.settings = settings

	return model, nil
}

// GetUserConfigPath returns the per-user configuration path.
func GetUserConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "qmenu", "config.toml")
}

// InitUserConfig writes the example configuration to path, creating parent
// directories. An existing file is never overwritten.
func InitUserConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(defaultConfigData), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetDefaultConfigContent returns the embedded example configuration.
func GetDefaultConfigContent() string {
	return defaultConfigData
}
