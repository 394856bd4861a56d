package ui

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole_ShowJSON(t *testing.T) {
	tests := []struct {
		name           string
		data           any
		expectedOutput string
		expectedError  string
	}{
		{
			name: "struct",
			data: struct {
				SessionID string `json:"sessionId"`
				UserID    string `json:"userId"`
			}{
				SessionID: "s1",
				UserID:    "u1",
			},
			expectedOutput: `{
  "sessionId": "s1",
  "userId": "u1"
}
`,
		},
		{
			name: "map keys sorted",
			data: map[string]any{
				"warnings": []any{},
				"choices":  []any{map[string]any{"id": 123}},
			},
			expectedOutput: `{
  "choices": [
    {
      "id": 123
    }
  ],
  "warnings": []
}
`,
		},
		{
			name: "raw json",
			data: json.RawMessage(`{"transactionId":"t1","status":{"items":[1,2]}}`),
			expectedOutput: `{
  "transactionId": "t1",
  "status": {
    "items": [
      1,
      2
    ]
  }
}
`,
		},
		{
			name:           "raw null",
			data:           json.RawMessage(`null`),
			expectedOutput: "null\n",
		},
		{
			name:           "nil data",
			data:           nil,
			expectedOutput: "null\n",
		},
		{
			name:          "invalid raw json",
			data:          json.RawMessage(`{"a":`),
			expectedError: "failed to format JSON",
		},
		{
			name:          "unmarshalable type",
			data:          make(chan int),
			expectedError: "failed to marshal JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}
			c := NewWithOptions(stdout, stderr, nil)

			err := c.ShowJSON(tt.data)

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
