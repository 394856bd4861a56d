package dyctl

import (
	"fmt"

	"github.com/dyapi/dyctl/api"
	"github.com/dyapi/dyctl/internal/http"
	"github.com/dyapi/dyctl/session"
)

// ServiceFactory creates API services from the environment and the stored identity.
type ServiceFactory func(httpClient http.HTTPDoer, store session.Store) (api.Service, error)

var _ ServiceFactory = NewService

// NewService creates an API service configured from the environment.
//
// The stored identity is loaded into the client and every identity update is written back.
// A session id and a user id are generated when none is stored. They are stored by the
// first successful identity-bearing call, so feed commands leave the session file alone
// and consecutive tracking commands share one visitor.
func NewService(httpClient http.HTTPDoer, store session.Store) (api.Service, error) {
	cfg, err := LoadEnvConfig()
	if err != nil {
		return nil, err
	}
	return cfg.NewService(httpClient, store)
}

// NewService creates an API service configured from c.
func (c *EnvConfig) NewService(httpClient http.HTTPDoer, store session.Store) (api.Service, error) {
	clientCfg, err := c.ClientConfig()
	if err != nil {
		return nil, err
	}
	opts, err := c.ClientOptions()
	if err != nil {
		return nil, err
	}

	opts = append(opts, api.WithStore(store), api.WithGeneratedSession(), api.WithGeneratedUser())

	client, err := api.NewClient(clientCfg, httpClient, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create api client: %w", err)
	}
	return client, nil
}
