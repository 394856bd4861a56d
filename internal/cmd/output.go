package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/dyapi/dyctl/internal/ui"
)

// outputHandler prints data in one format
type outputHandler func(ui.Provider, any) error

var outputHandlers = map[string]outputHandler{
	"json": func(ui ui.Provider, data any) error {
		return ui.ShowJSON(data)
	},
	"yaml": func(ui ui.Provider, data any) error {
		return ui.ShowYAML(data)
	},
}

// RenderOutput displays data in the given format, JSON when format is empty.
// An empty response body prints a note instead of a bare null.
func RenderOutput(uiProvider ui.Provider, data any, format string) error {
	if format == "" {
		format = "json"
	}

	handler, exists := outputHandlers[format]
	if !exists {
		supported := make([]string, 0, len(outputHandlers))
		for k := range outputHandlers {
			supported = append(supported, k)
		}
		slices.Sort(supported)
		return fmt.Errorf("unsupported output format: %s (supported: %s)", format, strings.Join(supported, ", "))
	}

	if raw, ok := data.(json.RawMessage); ok && (len(raw) == 0 || bytes.Equal(raw, []byte("null"))) {
		uiProvider.ShowInfo("The API returned no content.")
		return nil
	}

	return handler(uiProvider, data)
}
