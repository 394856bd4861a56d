package cmd

import (
	"context"

	"github.com/dyapi/dyctl/api"
	"github.com/dyapi/dyctl/internal/dyctl"
	"github.com/dyapi/dyctl/internal/http"
	"github.com/dyapi/dyctl/internal/maps"
	"github.com/dyapi/dyctl/internal/ui"
	"github.com/dyapi/dyctl/session"
)

// TrackCmd groups the collect operations.
type TrackCmd struct {
	Pageview   PageviewCmd   `cmd:"" help:"Report a pageview."`
	Engagement EngagementCmd `cmd:"" help:"Report an engagement with a served variation."`
	Event      EventCmd      `cmd:"" help:"Report a custom event."`
}

// PageviewCmd reports a pageview for the stored visitor.
type PageviewCmd struct {
	PageFlags `embed:""`
	BodyFlags `embed:""`
	Output    string `short:"o" enum:"json,yaml" default:"json" help:"Output format (json, yaml)."`
}

// Run executes the track pageview command.
func (c *PageviewCmd) Run(ctx context.Context, httpClient http.HTTPDoer, store session.Store, factory dyctl.ServiceFactory, uiProvider ui.Provider) error {
	body, err := c.Body(c.PageFlags.fields())
	if err != nil {
		return err
	}
	svc, err := factory(httpClient, store)
	if err != nil {
		return err
	}
	return send(uiProvider, "Reporting pageview", c.Output, func() (*api.Response, error) {
		resp, err := svc.TrackPageviews(ctx, body)
		if err != nil {
			return nil, err
		}
		return resp.Response, nil
	})
}

// EngagementCmd reports an engagement for the stored visitor.
type EngagementCmd struct {
	Type        string `enum:"CLICK,IMP,SLOT_CLICK,SLOT_IMP" default:"CLICK" help:"Engagement type (CLICK, IMP, SLOT_CLICK, SLOT_IMP)."`
	DecisionID  string `help:"Decision id of the choice that was engaged with."`
	VariationID int    `help:"Variation id, for IMP engagements."`
	SlotID      string `help:"Slot id, for SLOT_CLICK and SLOT_IMP engagements."`
	BodyFlags   `embed:""`
	Output      string `short:"o" enum:"json,yaml" default:"json" help:"Output format (json, yaml)."`
}

func (c *EngagementCmd) fields() map[string]any {
	if c.DecisionID == "" && c.SlotID == "" {
		return nil
	}
	engagement := map[string]any{"type": c.Type}
	if c.DecisionID != "" {
		engagement["decisionId"] = c.DecisionID
	}
	if c.VariationID != 0 {
		engagement["variations"] = []any{c.VariationID}
	}
	if c.SlotID != "" {
		engagement["slotId"] = c.SlotID
	}
	return map[string]any{"engagements": []any{engagement}}
}

// Run executes the track engagement command.
func (c *EngagementCmd) Run(ctx context.Context, httpClient http.HTTPDoer, store session.Store, factory dyctl.ServiceFactory, uiProvider ui.Provider) error {
	body, err := c.Body(c.fields())
	if err != nil {
		return err
	}
	svc, err := factory(httpClient, store)
	if err != nil {
		return err
	}
	return send(uiProvider, "Reporting engagement", c.Output, func() (*api.Response, error) {
		resp, err := svc.TrackEngagement(ctx, body)
		if err != nil {
			return nil, err
		}
		return resp.Response, nil
	})
}

// EventCmd reports a custom event for the stored visitor.
type EventCmd struct {
	Name       string   `arg:"" optional:"" help:"Event name, e.g. \"Add to Cart\"."`
	Properties []string `short:"p" name:"property" sep:"none" placeholder:"KEY=VALUE" help:"Event property, e.g. -p dyType=add-to-cart-v1. Repeatable."`
	BodyFlags  `embed:""`
	Output     string `short:"o" enum:"json,yaml" default:"json" help:"Output format (json, yaml)."`
}

func (c *EventCmd) fields() (map[string]any, error) {
	if c.Name == "" && len(c.Properties) == 0 {
		return nil, nil
	}
	event := map[string]any{}
	if c.Name != "" {
		event["name"] = c.Name
	}
	if len(c.Properties) > 0 {
		props, err := maps.FromSlice(c.Properties)
		if err != nil {
			return nil, err
		}
		event["properties"] = props
	}
	return map[string]any{"events": []any{event}}, nil
}

// Run executes the track event command.
func (c *EventCmd) Run(ctx context.Context, httpClient http.HTTPDoer, store session.Store, factory dyctl.ServiceFactory, uiProvider ui.Provider) error {
	fields, err := c.fields()
	if err != nil {
		return err
	}
	body, err := c.Body(fields)
	if err != nil {
		return err
	}
	svc, err := factory(httpClient, store)
	if err != nil {
		return err
	}
	return send(uiProvider, "Reporting event", c.Output, func() (*api.Response, error) {
		resp, err := svc.TrackEvents(ctx, body)
		if err != nil {
			return nil, err
		}
		return resp.Response, nil
	})
}
