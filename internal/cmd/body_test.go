package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dyapi/dyctl/api"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyFlags_Body(t *testing.T) {
	file := filepath.Join(t.TempDir(), "body.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
selector:
  names: [Hero]
context:
  page:
    type: HOMEPAGE
    location: https://example.com
`), 0o600))

	tests := []struct {
		name     string
		flags    BodyFlags
		fields   []map[string]any
		expected api.Envelope
	}{
		{
			name:     "empty",
			expected: api.Envelope{},
		},
		{
			name:  "file",
			flags: BodyFlags{File: file},
			expected: api.Envelope{
				"selector": map[string]any{"names": []any{"Hero"}},
				"context": map[string]any{"page": map[string]any{
					"type":     "HOMEPAGE",
					"location": "https://example.com",
				}},
			},
		},
		{
			name:   "fields over file, set over fields",
			flags:  BodyFlags{File: file, Set: []string{"context.page.type=PRODUCT", "options.isImplicitPageview=true"}},
			fields: []map[string]any{{"context": map[string]any{"page": map[string]any{"type": "CART", "locale": "en_US"}}}},
			expected: api.Envelope{
				"selector": map[string]any{"names": []any{"Hero"}},
				"context": map[string]any{"page": map[string]any{
					"type":     "PRODUCT",
					"location": "https://example.com",
					"locale":   "en_US",
				}},
				"options": map[string]any{"isImplicitPageview": true},
			},
		},
		{
			name:     "nil fields",
			flags:    BodyFlags{Set: []string{"query.text=shoes"}},
			fields:   []map[string]any{nil},
			expected: api.Envelope{"query": map[string]any{"text": "shoes"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := tt.flags.Body(tt.fields...)
			require.NoError(t, err)
			if d := cmp.Diff(tt.expected, body); d != "" {
				t.Error("body mismatch (-want +got):\n", d)
			}
		})
	}
}

func TestBodyFlags_BodyErrors(t *testing.T) {
	_, err := BodyFlags{File: filepath.Join(t.TempDir(), "missing.yaml")}.Body()
	assert.ErrorContains(t, err, "failed to read file")

	_, err = BodyFlags{Set: []string{"nope"}}.Body()
	assert.ErrorContains(t, err, "expected key=value")
}

func TestPageFlags_Fields(t *testing.T) {
	assert.Nil(t, PageFlags{}.fields())

	got := PageFlags{PageType: "PRODUCT", Location: "https://example.com/p/1", PageData: []string{"sku-1"}, Locale: "en_US"}.fields()
	expected := map[string]any{"context": map[string]any{"page": map[string]any{
		"type":     "PRODUCT",
		"location": "https://example.com/p/1",
		"data":     []any{"sku-1"},
		"locale":   "en_US",
	}}}
	assert.Equal(t, expected, got)
}
