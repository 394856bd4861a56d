package dyctl

import (
	"errors"
	"os"
	"testing"

	"github.com/dyapi/dyctl/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable EnvConfig reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DY_API_KEY",
		"DY_REGION",
		"DY_EXTRA_HEADERS",
		"DY_IDENTITY_POLICY",
		"DY_COOKIE_SYNC",
		"DYCTL_SENTRY_DSN",
		"DYCTL_ENVIRONMENT",
	} {
		// Setenv restores the original value after the test
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
}

func TestLoadEnvConfig(t *testing.T) {
	tests := []struct {
		name          string
		env           map[string]string
		expected      *EnvConfig
		expectedError string
	}{
		{
			name: "defaults",
			env:  map[string]string{"DY_API_KEY": "k"},
			expected: &EnvConfig{
				APIKey:         "k",
				Region:         api.RegionUS,
				IdentityPolicy: "strict",
				CookieSync:     true,
				Environment:    "prod",
			},
		},
		{
			name: "everything set",
			env: map[string]string{
				"DY_API_KEY":         "k",
				"DY_REGION":          "EU",
				"DY_EXTRA_HEADERS":   "X-Trace:t1,X-Team:web",
				"DY_IDENTITY_POLICY": "lenient",
				"DY_COOKIE_SYNC":     "false",
				"DYCTL_SENTRY_DSN":   "https://key@sentry.example.com/1",
				"DYCTL_ENVIRONMENT":  "dev",
			},
			expected: &EnvConfig{
				APIKey:         "k",
				Region:         api.RegionEU,
				ExtraHeaders:   map[string]string{"X-Trace": "t1", "X-Team": "web"},
				IdentityPolicy: "lenient",
				CookieSync:     false,
				SentryDSN:      "https://key@sentry.example.com/1",
				Environment:    "dev",
			},
		},
		{
			name:          "unknown region",
			env:           map[string]string{"DY_REGION": "ap"},
			expectedError: "unknown region",
		},
		{
			name:          "invalid cookie sync",
			env:           map[string]string{"DY_COOKIE_SYNC": "sometimes"},
			expectedError: "DY_COOKIE_SYNC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadEnvConfig()

			if tt.expectedError != "" {
				assert.ErrorContains(t, err, tt.expectedError)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestEnvConfig_ClientConfig(t *testing.T) {
	cfg := &EnvConfig{Region: api.RegionEU, ExtraHeaders: map[string]string{"a": "b"}}

	_, err := cfg.ClientConfig()
	assert.True(t, errors.Is(err, ErrAPIKey))

	cfg.APIKey = "k"
	clientCfg, err := cfg.ClientConfig()
	require.NoError(t, err)
	assert.Equal(t, api.Config{APIKey: "k", Region: api.RegionEU, ExtraHeaders: map[string]string{"a": "b"}}, clientCfg)
}

func TestEnvConfig_ClientOptions(t *testing.T) {
	opts, err := (&EnvConfig{IdentityPolicy: "lenient"}).ClientOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	_, err = (&EnvConfig{IdentityPolicy: "whatever"}).ClientOptions()
	assert.ErrorContains(t, err, "unknown identity policy")
}
