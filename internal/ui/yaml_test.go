package ui

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole_ShowYAML(t *testing.T) {
	tests := []struct {
		name           string
		data           any
		expectedOutput string
		expectedError  string
	}{
		{
			name: "struct",
			data: struct {
				SessionID string `yaml:"sessionId"`
				UserID    string `yaml:"userId"`
			}{
				SessionID: "s1",
				UserID:    "123",
			},
			expectedOutput: `sessionId: s1
userId: "123"
`,
		},
		{
			name: "raw json",
			data: json.RawMessage(`{"choices":[{"id":"7","name":"Hero Banner"}],"cookies":[]}`),
			expectedOutput: `choices:
    - id: "7"
      name: Hero Banner
cookies: []
`,
		},
		{
			name:           "raw null",
			data:           json.RawMessage(`null`),
			expectedOutput: "null\n",
		},
		{
			name:          "invalid raw json",
			data:          json.RawMessage(`[`),
			expectedError: "failed to decode JSON",
		},
		{
			name: "multi-line string",
			data: struct {
				Description string `yaml:"description"`
			}{
				Description: "first\nsecond",
			},
			expectedOutput: `description: |-
    first
    second
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}
			c := NewWithOptions(stdout, stderr, nil)

			err := c.ShowYAML(tt.data)

			if tt.expectedError != "" {
				assert.ErrorContains(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedOutput, stdout.String())
			assert.Empty(t, stderr.String())
		})
	}
}
