package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromCookies(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantSession *string
		wantUser    *string
	}{
		{
			name: "empty body",
			body: "",
		},
		{
			name: "no cookies",
			body: `{"choices": []}`,
		},
		{
			name:        "both cookies",
			body:        `{"choices": [], "cookies": [{"name": "_dyid_server", "value": "u9", "maxAge": "31540000"}, {"name": "_dyjsession", "value": "s9", "maxAge": "1800"}]}`,
			wantSession: ptr("s9"),
			wantUser:    ptr("u9"),
		},
		{
			name:     "numeric max age",
			body:     `{"cookies": [{"name": "_dyid_server", "value": "u9", "maxAge": 31540000}]}`,
			wantUser: ptr("u9"),
		},
		{
			name:        "unrelated cookies are ignored",
			body:        `{"cookies": [{"name": "_dy_other", "value": "x"}, {"name": "_dyjsession", "value": "s9"}]}`,
			wantSession: ptr("s9"),
		},
		{
			name:        "malformed entries are skipped",
			body:        `{"cookies": ["nope", null, {"name": "_dyid_server"}, {"name": "_dyid_server", "value": ""}, {"name": "_dyjsession", "value": "s9"}]}`,
			wantSession: ptr("s9"),
		},
		{
			name: "cookies is not an array",
			body: `{"cookies": {"name": "_dyid_server", "value": "u9"}}`,
		},
		{
			name: "cookies is null",
			body: `{"cookies": null}`,
		},
		{
			name: "array body",
			body: `[1, 2, 3]`,
		},
		{
			name: "invalid json",
			body: `{"cookies": [`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := FromCookies([]byte(tt.body))
			assert.Equal(t, tt.wantSession, u.SessionID)
			assert.Equal(t, tt.wantUser, u.UserID)
		})
	}
}
