package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/dyapi/dyctl/api"
	"github.com/dyapi/dyctl/internal/dyctl"
	"github.com/dyapi/dyctl/internal/http"
	"github.com/dyapi/dyctl/internal/ui"
	"github.com/dyapi/dyctl/session"
)

// ChooseCmd chooses campaign variations for the stored visitor.
type ChooseCmd struct {
	Selectors []string `short:"s" name:"selector" sep:"none" help:"Campaign selector name. Repeatable."`
	Groups    []string `name:"group" sep:"none" help:"Campaign selector group. Repeatable."`
	PageFlags `embed:""`
	BodyFlags `embed:""`
	Output    string `short:"o" enum:"json,yaml,text" default:"json" help:"Output format (json, yaml, text)."`
}

// Run executes the choose command.
func (c *ChooseCmd) Run(ctx context.Context, httpClient http.HTTPDoer, store session.Store, factory dyctl.ServiceFactory, uiProvider ui.Provider) error {
	selector := map[string]any{}
	if len(c.Selectors) > 0 {
		selector["names"] = anySlice(c.Selectors)
	}
	if len(c.Groups) > 0 {
		selector["groups"] = anySlice(c.Groups)
	}
	fields := map[string]any{}
	if len(selector) > 0 {
		fields["selector"] = selector
	}

	body, err := c.Body(c.PageFlags.fields(), fields)
	if err != nil {
		return err
	}

	svc, err := factory(httpClient, store)
	if err != nil {
		return err
	}

	var resp *api.ServeResponse
	err = uiProvider.RunWithSpinner("Choosing variations", func() error {
		var err error
		resp, err = svc.ChooseVariations(ctx, body)
		return err
	})
	if err != nil {
		return err
	}

	if c.Output == "text" {
		showChoices(uiProvider, resp.Choices)
		return nil
	}
	return RenderOutput(uiProvider, resp.Body, c.Output)
}

// showChoices prints one section per choice with the ids of its variations.
func showChoices(uiProvider ui.Provider, choices []api.Choice) {
	if len(choices) == 0 {
		uiProvider.ShowInfo("No campaigns were chosen.")
		return
	}
	for i, choice := range choices {
		if i > 0 {
			uiProvider.NewLine()
		}
		uiProvider.ShowHeading(choice.Name)
		uiProvider.ShowKeyValue("Type", choice.Type)
		uiProvider.ShowKeyValue("Decision", string(choice.DecisionID))
		ids := make([]string, 0, len(choice.Variations))
		for _, v := range choice.Variations {
			ids = append(ids, fmt.Sprintf("%s (%s)", v.ID, v.Payload.Type))
		}
		uiProvider.ShowKeyValue("Variations", strings.Join(ids, ", "))
	}
}

// SearchCmd runs a semantic search for the stored visitor.
type SearchCmd struct {
	Text      string `arg:"" optional:"" help:"Search text."`
	NumItems  int    `help:"Number of items to return."`
	Offset    int    `help:"Number of items to skip."`
	PageFlags `embed:""`
	BodyFlags `embed:""`
	Output    string `short:"o" enum:"json,yaml" default:"json" help:"Output format (json, yaml)."`
}

// Run executes the search command.
func (c *SearchCmd) Run(ctx context.Context, httpClient http.HTTPDoer, store session.Store, factory dyctl.ServiceFactory, uiProvider ui.Provider) error {
	query := map[string]any{}
	if c.Text != "" {
		query["text"] = c.Text
	}
	pagination := map[string]any{}
	if c.NumItems > 0 {
		pagination["numItems"] = c.NumItems
	}
	if c.Offset > 0 {
		pagination["offset"] = c.Offset
	}
	if len(pagination) > 0 {
		query["pagination"] = pagination
	}
	fields := map[string]any{}
	if len(query) > 0 {
		fields["query"] = query
	}

	body, err := c.Body(c.PageFlags.fields(), fields)
	if err != nil {
		return err
	}

	svc, err := factory(httpClient, store)
	if err != nil {
		return err
	}

	return send(uiProvider, "Searching", c.Output, func() (*api.Response, error) {
		resp, err := svc.Search(ctx, body)
		if err != nil {
			return nil, err
		}
		return resp.Response, nil
	})
}
