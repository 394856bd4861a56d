package api

import (
	"context"
	"net/url"

	"github.com/pterm/pterm"
)

// doInto runs op and decodes a successful response body into out.
// Decoding is best effort: the call already succeeded and may have updated the identity,
// so fields that do not fit out are left zero and the full body stays in the Response.
func (c *Client) doInto(ctx context.Context, op Operation, call Call, out any) (*Response, error) {
	resp, err := c.Do(ctx, op, call)
	if err != nil {
		return nil, err
	}
	if err := resp.Decode(out); err != nil {
		pterm.Debug.Printfln("unable to decode %s response into %T: %s", op, out, err)
	}
	return resp, nil
}

func (c *Client) serve(ctx context.Context, op Operation, body any) (*ServeResponse, error) {
	out := &ServeResponse{}
	resp, err := c.doInto(ctx, op, Call{Body: body}, out)
	if err != nil {
		return nil, err
	}
	out.Response = resp
	return out, nil
}

func (c *Client) collect(ctx context.Context, op Operation, body any) (*CollectResponse, error) {
	out := &CollectResponse{}
	resp, err := c.doInto(ctx, op, Call{Body: body}, out)
	if err != nil {
		return nil, err
	}
	out.Response = resp
	return out, nil
}

func (c *Client) feed(ctx context.Context, op Operation, call Call) (*FeedResponse, error) {
	out := &FeedResponse{}
	resp, err := c.doInto(ctx, op, call, out)
	if err != nil {
		return nil, err
	}
	out.Response = resp
	return out, nil
}

func (c *Client) transactionStatus(ctx context.Context, op Operation, params map[string]string) (*TransactionStatusResponse, error) {
	out := &TransactionStatusResponse{}
	resp, err := c.doInto(ctx, op, Call{PathParams: params}, out)
	if err != nil {
		return nil, err
	}
	out.Response = resp
	return out, nil
}

// ChooseVariations returns the variations chosen for the campaigns selected in body.
func (c *Client) ChooseVariations(ctx context.Context, body any) (*ServeResponse, error) {
	return c.serve(ctx, OpChooseVariations, body)
}

// Search runs a semantic or keyword product search.
func (c *Client) Search(ctx context.Context, body any) (*ServeResponse, error) {
	return c.serve(ctx, OpSearch, body)
}

// TrackPageviews reports pageviews.
func (c *Client) TrackPageviews(ctx context.Context, body any) (*CollectResponse, error) {
	return c.collect(ctx, OpTrackPageviews, body)
}

// TrackEngagement reports clicks and impressions of served variations.
func (c *Client) TrackEngagement(ctx context.Context, body any) (*CollectResponse, error) {
	return c.collect(ctx, OpTrackEngagement, body)
}

// TrackEvents reports custom events such as purchases or add to cart.
func (c *Client) TrackEvents(ctx context.Context, body any) (*CollectResponse, error) {
	return c.collect(ctx, OpTrackEvents, body)
}

// UpdateProductFeed sends a bulk update of the product feed feedID.
func (c *Client) UpdateProductFeed(ctx context.Context, feedID string, body any) (*FeedResponse, error) {
	return c.feed(ctx, OpUpdateProductFeed, Call{
		PathParams: map[string]string{"feedId": feedID},
		Body:       body,
	})
}

// TrackTransactionStatusSpecificItem returns the status of one item of a feed update.
func (c *Client) TrackTransactionStatusSpecificItem(ctx context.Context, feedID, transactionID, itemID string) (*TransactionStatusResponse, error) {
	return c.transactionStatus(ctx, OpTrackTransactionStatusSpecificItem, map[string]string{
		"feedId":        feedID,
		"transactionId": transactionID,
		"itemId":        itemID,
	})
}

// TrackTransactionStatusWholeTransaction returns the status of a feed update.
func (c *Client) TrackTransactionStatusWholeTransaction(ctx context.Context, feedID, transactionID string) (*TransactionStatusResponse, error) {
	return c.transactionStatus(ctx, OpTrackTransactionStatusWholeTransaction, map[string]string{
		"feedId":        feedID,
		"transactionId": transactionID,
	})
}

// UpdateBranchFeed updates the inventory of the branch branchID.
func (c *Client) UpdateBranchFeed(ctx context.Context, branchID string, body any) (*FeedResponse, error) {
	return c.feed(ctx, OpUpdateBranchFeed, Call{
		PathParams: map[string]string{"id": branchID},
		Body:       body,
	})
}

// ReportOutages reports branch outages in bulk.
func (c *Client) ReportOutages(ctx context.Context, body any) (*FeedResponse, error) {
	return c.feed(ctx, OpReportOutages, Call{Body: body})
}

// UserDataAPI sends a bulk update of the user data feed feedKey.
func (c *Client) UserDataAPI(ctx context.Context, feedKey string, body any) (*FeedResponse, error) {
	return c.feed(ctx, OpUserDataAPI, Call{
		PathParams: map[string]string{"feedKey": feedKey},
		Body:       body,
	})
}

// ExternalEventsAPI reports events that happened outside the site, e.g. in a store or call center.
func (c *Client) ExternalEventsAPI(ctx context.Context, body any) (*FeedResponse, error) {
	return c.feed(ctx, OpExternalEventsAPI, Call{Body: body})
}

// ProfileQuery selects the profile returned by ProfileAnywhere.
type ProfileQuery struct {
	// CUID is the customer id, e.g. a hashed email.
	CUID string
	// CUIDType is the kind of CUID, e.g. "he" for a hashed email.
	CUIDType string
	// Affinity optionally asks for affinity data, e.g. "categories".
	Affinity string
}

func (q ProfileQuery) values() url.Values {
	v := url.Values{}
	v.Set("cuid", q.CUID)
	v.Set("cuidType", q.CUIDType)
	if q.Affinity != "" {
		v.Set("affinity", q.Affinity)
	}
	return v
}

// ProfileAnywhere returns the profile of the customer selected by q.
func (c *Client) ProfileAnywhere(ctx context.Context, q ProfileQuery) (*ProfileResponse, error) {
	var missing []string
	if q.CUID == "" {
		missing = append(missing, "cuid")
	}
	if q.CUIDType == "" {
		missing = append(missing, "cuidType")
	}
	if len(missing) > 0 {
		return nil, &PreconditionError{Operation: OpProfileAnywhere, Missing: missing}
	}

	resp, err := c.Do(ctx, OpProfileAnywhere, Call{Query: q.values()})
	if err != nil {
		return nil, err
	}
	return &ProfileResponse{Response: resp}, nil
}
