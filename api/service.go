package api

import (
	"context"

	"github.com/dyapi/dyctl/session"
)

//go:generate go tool mockgen --source $GOFILE -destination ./mock/mock.go -package mock

var _ Service = (*Client)(nil)

// Service is the set of operations offered by Client.
type Service interface {
	Region() Region
	Identity() session.State
	SetSessionAndUser(sessionID, userID string)
	SetConsent(accepted bool)

	Do(ctx context.Context, op Operation, call Call) (*Response, error)

	ChooseVariations(ctx context.Context, body any) (*ServeResponse, error)
	Search(ctx context.Context, body any) (*ServeResponse, error)
	TrackPageviews(ctx context.Context, body any) (*CollectResponse, error)
	TrackEngagement(ctx context.Context, body any) (*CollectResponse, error)
	TrackEvents(ctx context.Context, body any) (*CollectResponse, error)
	UpdateProductFeed(ctx context.Context, feedID string, body any) (*FeedResponse, error)
	TrackTransactionStatusSpecificItem(ctx context.Context, feedID, transactionID, itemID string) (*TransactionStatusResponse, error)
	TrackTransactionStatusWholeTransaction(ctx context.Context, feedID, transactionID string) (*TransactionStatusResponse, error)
	UpdateBranchFeed(ctx context.Context, branchID string, body any) (*FeedResponse, error)
	ReportOutages(ctx context.Context, body any) (*FeedResponse, error)
	UserDataAPI(ctx context.Context, feedKey string, body any) (*FeedResponse, error)
	ExternalEventsAPI(ctx context.Context, body any) (*FeedResponse, error)
	ProfileAnywhere(ctx context.Context, q ProfileQuery) (*ProfileResponse, error)
}
