// Package dyctl wires the Experience API client to the environment the dyctl command runs in.
package dyctl

import (
	"errors"
	"fmt"

	"github.com/dyapi/dyctl/api"
	"github.com/kelseyhightower/envconfig"
)

// ErrAPIKey is returned when DY_API_KEY is not set.
var ErrAPIKey = errors.New("no api key configured")

// EnvConfig holds environment-based configuration
type EnvConfig struct {
	APIKey string     `envconfig:"DY_API_KEY"`
	Region api.Region `envconfig:"DY_REGION" default:"us"`
	// ExtraHeaders is read as "name:value,name2:value2".
	ExtraHeaders   map[string]string `envconfig:"DY_EXTRA_HEADERS"`
	IdentityPolicy string            `envconfig:"DY_IDENTITY_POLICY" default:"strict"`
	CookieSync     bool              `envconfig:"DY_COOKIE_SYNC" default:"true"`
	SentryDSN      string            `envconfig:"DYCTL_SENTRY_DSN"`
	Environment    string            `envconfig:"DYCTL_ENVIRONMENT" default:"prod"`
}

// LoadEnvConfig loads configuration from environment variables
func LoadEnvConfig() (*EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}
	return &cfg, nil
}

// ClientConfig returns the api.Config described by the environment.
func (c *EnvConfig) ClientConfig() (api.Config, error) {
	if c.APIKey == "" {
		return api.Config{}, ErrAPIKey
	}
	return api.Config{
		APIKey:       c.APIKey,
		Region:       c.Region,
		ExtraHeaders: c.ExtraHeaders,
	}, nil
}

// ClientOptions returns the api.Options described by the environment.
func (c *EnvConfig) ClientOptions() ([]api.Option, error) {
	policy, err := api.ParseIdentityPolicy(c.IdentityPolicy)
	if err != nil {
		return nil, err
	}
	return []api.Option{
		api.WithIdentityPolicy(policy),
		api.WithCookieSync(c.CookieSync),
	}, nil
}
