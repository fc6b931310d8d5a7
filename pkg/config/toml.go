package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type tomlDocument struct {
	Menu   map[string]toml.Primitive `toml:"menu"`
	Config map[string]any            `toml:"config"`
}

// decodeTOML decodes a TOML document. Menu values are decoded lazily so the
// label order can be taken from the metadata, which keeps document order.
func decodeTOML(data []byte) (*rawDocument, error) {
	var file tomlDocument
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, err
	}

	doc := &rawDocument{
		values: make(map[string]any, len(file.Menu)),
		config: file.Config,
	}

	for _, key := range md.Keys() {
		if len(key) != 2 || key[0] != "menu" {
			continue
		}
		label := key[1]
		if _, done := doc.values[label]; done {
			continue
		}

		var value any
		if err := md.PrimitiveDecode(file.Menu[label], &value); err != nil {
			return nil, fmt.Errorf("menu.%s: %w", label, err)
		}
		doc.labels = append(doc.labels, label)
		doc.values[label] = value
	}

	for _, key := range md.Undecoded() {
		if len(key) == 1 {
			return nil, fmt.Errorf("unknown top-level key `%s`", key)
		}
	}

	return doc, nil
}
