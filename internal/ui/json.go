package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ShowJSON displays indented JSON output.
// Raw JSON documents are indented as they are, anything else is marshaled first.
func (c *Console) ShowJSON(data any) error {
	var raw []byte
	switch d := data.(type) {
	case json.RawMessage:
		raw = d
	default:
		b, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		raw = b
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return fmt.Errorf("failed to format JSON: %w", err)
	}
	fmt.Fprintln(c.stdout, out.String())
	return nil
}
