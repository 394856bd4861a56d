package ui

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ShowYAML displays YAML output.
// Raw JSON documents are decoded first so they print as YAML instead of a byte list.
func (c *Console) ShowYAML(data any) error {
	if raw, ok := data.(json.RawMessage); ok {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		data = v
	}

	yamlData, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	fmt.Fprint(c.stdout, string(yamlData))
	return nil
}
