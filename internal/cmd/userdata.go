package cmd

import (
	"context"

	"github.com/dyapi/dyctl/api"
	"github.com/dyapi/dyctl/internal/dyctl"
	"github.com/dyapi/dyctl/internal/http"
	"github.com/dyapi/dyctl/internal/ui"
	"github.com/dyapi/dyctl/session"
)

// UserdataCmd groups the user data operations.
type UserdataCmd struct {
	Bulk   UserdataBulkCmd   `cmd:"" help:"Send a bulk update of user data."`
	Events UserdataEventsCmd `cmd:"" help:"Send events that happened outside the site."`
}

// UserdataBulkCmd sends a bulk update of user data.
type UserdataBulkCmd struct {
	FeedKey   string `arg:"" help:"Key of the user data feed."`
	BodyFlags `embed:""`
	Output    string `short:"o" enum:"json,yaml" default:"json" help:"Output format (json, yaml)."`
}

// Run executes the userdata bulk command.
func (c *UserdataBulkCmd) Run(ctx context.Context, httpClient http.HTTPDoer, store session.Store, factory dyctl.ServiceFactory, uiProvider ui.Provider) error {
	body, err := c.Body()
	if err != nil {
		return err
	}
	svc, err := factory(httpClient, store)
	if err != nil {
		return err
	}
	return send(uiProvider, "Sending user data", c.Output, func() (*api.Response, error) {
		resp, err := svc.UserDataAPI(ctx, c.FeedKey, body)
		if err != nil {
			return nil, err
		}
		return resp.Response, nil
	})
}

// UserdataEventsCmd sends external events for the stored visitor.
type UserdataEventsCmd struct {
	BodyFlags `embed:""`
	Output    string `short:"o" enum:"json,yaml" default:"json" help:"Output format (json, yaml)."`
}

// Run executes the userdata events command.
func (c *UserdataEventsCmd) Run(ctx context.Context, httpClient http.HTTPDoer, store session.Store, factory dyctl.ServiceFactory, uiProvider ui.Provider) error {
	body, err := c.Body()
	if err != nil {
		return err
	}
	svc, err := factory(httpClient, store)
	if err != nil {
		return err
	}
	return send(uiProvider, "Sending events", c.Output, func() (*api.Response, error) {
		resp, err := svc.ExternalEventsAPI(ctx, body)
		if err != nil {
			return nil, err
		}
		return resp.Response, nil
	})
}

// ProfileCmd looks up a customer profile.
type ProfileCmd struct {
	CUID     string `name:"cuid" required:"" help:"Customer id, e.g. a hashed email."`
	CUIDType string `name:"cuid-type" required:"" help:"Kind of customer id, e.g. he for a hashed email."`
	Affinity string `help:"Affinity data to include, e.g. categories."`
	Output   string `short:"o" enum:"json,yaml" default:"json" help:"Output format (json, yaml)."`
}

// Run executes the profile command.
func (c *ProfileCmd) Run(ctx context.Context, httpClient http.HTTPDoer, store session.Store, factory dyctl.ServiceFactory, uiProvider ui.Provider) error {
	svc, err := factory(httpClient, store)
	if err != nil {
		return err
	}
	q := api.ProfileQuery{CUID: c.CUID, CUIDType: c.CUIDType, Affinity: c.Affinity}
	return send(uiProvider, "Fetching profile", c.Output, func() (*api.Response, error) {
		resp, err := svc.ProfileAnywhere(ctx, q)
		if err != nil {
			return nil, err
		}
		return resp.Response, nil
	})
}
