package cmd

import (
	"context"

	"github.com/dyapi/dyctl/api"
	"github.com/dyapi/dyctl/internal/dyctl"
	"github.com/dyapi/dyctl/internal/http"
	"github.com/dyapi/dyctl/internal/ui"
	"github.com/dyapi/dyctl/session"
)

// FeedCmd groups the product feed operations.
type FeedCmd struct {
	Update FeedUpdateCmd `cmd:"" help:"Send a bulk update to a product feed."`
	Status FeedStatusCmd `cmd:"" help:"Show the status of a feed transaction or one of its items."`
}

// FeedUpdateCmd sends a bulk update to a product feed.
type FeedUpdateCmd struct {
	FeedID    string `arg:"" help:"ID of the feed."`
	BodyFlags `embed:""`
	Output    string `short:"o" enum:"json,yaml" default:"json" help:"Output format (json, yaml)."`
}

// Run executes the feed update command.
func (c *FeedUpdateCmd) Run(ctx context.Context, httpClient http.HTTPDoer, store session.Store, factory dyctl.ServiceFactory, uiProvider ui.Provider) error {
	body, err := c.Body()
	if err != nil {
		return err
	}
	svc, err := factory(httpClient, store)
	if err != nil {
		return err
	}
	return send(uiProvider, "Updating feed "+c.FeedID, c.Output, func() (*api.Response, error) {
		resp, err := svc.UpdateProductFeed(ctx, c.FeedID, body)
		if err != nil {
			return nil, err
		}
		return resp.Response, nil
	})
}

// FeedStatusCmd shows the status of a feed transaction.
type FeedStatusCmd struct {
	FeedID        string `arg:"" help:"ID of the feed."`
	TransactionID string `arg:"" help:"ID of the transaction returned by feed update."`
	ItemID        string `arg:"" optional:"" help:"ID of a single item of the transaction."`
	Output        string `short:"o" enum:"json,yaml" default:"json" help:"Output format (json, yaml)."`
}

// Run executes the feed status command.
func (c *FeedStatusCmd) Run(ctx context.Context, httpClient http.HTTPDoer, store session.Store, factory dyctl.ServiceFactory, uiProvider ui.Provider) error {
	svc, err := factory(httpClient, store)
	if err != nil {
		return err
	}
	return send(uiProvider, "Fetching transaction "+c.TransactionID, c.Output, func() (*api.Response, error) {
		var (
			resp *api.TransactionStatusResponse
			err  error
		)
		if c.ItemID != "" {
			resp, err = svc.TrackTransactionStatusSpecificItem(ctx, c.FeedID, c.TransactionID, c.ItemID)
		} else {
			resp, err = svc.TrackTransactionStatusWholeTransaction(ctx, c.FeedID, c.TransactionID)
		}
		if err != nil {
			return nil, err
		}
		return resp.Response, nil
	})
}

// BranchCmd groups the branch feed operations.
type BranchCmd struct {
	Inventory BranchInventoryCmd `cmd:"" help:"Send a bulk inventory update for a branch."`
	Outage    BranchOutageCmd    `cmd:"" help:"Report branch outages."`
}

// BranchInventoryCmd sends a bulk inventory update for a branch.
type BranchInventoryCmd struct {
	BranchID  string `arg:"" help:"ID of the branch."`
	BodyFlags `embed:""`
	Output    string `short:"o" enum:"json,yaml" default:"json" help:"Output format (json, yaml)."`
}

// Run executes the branch inventory command.
func (c *BranchInventoryCmd) Run(ctx context.Context, httpClient http.HTTPDoer, store session.Store, factory dyctl.ServiceFactory, uiProvider ui.Provider) error {
	body, err := c.Body()
	if err != nil {
		return err
	}
	svc, err := factory(httpClient, store)
	if err != nil {
		return err
	}
	return send(uiProvider, "Updating branch "+c.BranchID, c.Output, func() (*api.Response, error) {
		resp, err := svc.UpdateBranchFeed(ctx, c.BranchID, body)
		if err != nil {
			return nil, err
		}
		return resp.Response, nil
	})
}

// BranchOutageCmd reports branch outages.
type BranchOutageCmd struct {
	BodyFlags `embed:""`
	Output    string `short:"o" enum:"json,yaml" default:"json" help:"Output format (json, yaml)."`
}

// Run executes the branch outage command.
func (c *BranchOutageCmd) Run(ctx context.Context, httpClient http.HTTPDoer, store session.Store, factory dyctl.ServiceFactory, uiProvider ui.Provider) error {
	body, err := c.Body()
	if err != nil {
		return err
	}
	svc, err := factory(httpClient, store)
	if err != nil {
		return err
	}
	return send(uiProvider, "Reporting outages", c.Output, func() (*api.Response, error) {
		resp, err := svc.ReportOutages(ctx, body)
		if err != nil {
			return nil, err
		}
		return resp.Response, nil
	})
}
