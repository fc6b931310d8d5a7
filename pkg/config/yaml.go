package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// decodeYAML decodes the YAML form of the configuration. Mapping nodes keep
// key order, so labels are read from the node tree rather than a Go map.
func decodeYAML(data []byte) (*rawDocument, error) {
	doc := &rawDocument{values: map[string]any{}}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 {
		// empty document
		return doc, nil
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) != 1 {
		return nil, errors.New("expected a single YAML document")
	}

	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping at the top level", top.Line)
	}

	for i := 0; i+1 < len(top.Content); i += 2 {
		key, value := top.Content[i], top.Content[i+1]
		switch key.Value {
		case "menu":
			if err := decodeYAMLMenu(doc, value); err != nil {
				return nil, err
			}
		case "config":
			if isYAMLNull(value) {
				continue
			}
			if err := value.Decode(&doc.config); err != nil {
				return nil, fmt.Errorf("config: %w", err)
			}
		default:
			return nil, fmt.Errorf("line %d: unknown top-level key `%s`", key.Line, key.Value)
		}
	}

	return doc, nil
}

func decodeYAMLMenu(doc *rawDocument, node *yaml.Node) error {
	if isYAMLNull(node) {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: menu must be a mapping", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var decoded any
		if err := value.Decode(&decoded); err != nil {
			return fmt.Errorf("menu.%s: %w", key.Value, err)
		}
		// Duplicates are appended and rejected by Parse.
		doc.labels = append(doc.labels, key.Value)
		if _, ok := doc.values[key.Value]; !ok {
			doc.values[key.Value] = decoded
		}
	}
	return nil
}

func isYAMLNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}
