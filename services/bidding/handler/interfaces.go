//go:generate mockgen -package=handler -destination=mock_interfaces.go -source=interfaces.go

package handler

import (
	"context"

	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/lifecycle"
	"auction-engine/internal/models"
	"auction-engine/internal/query"
	"auction-engine/internal/reconcile"
)

type BiddingServiceInterface interface {
	PlaceBid(ctx context.Context, req models.BidRequest) (bidding.BidResult, error)
	BidHistory(ctx context.Context, listingID string) ([]models.Bid, error)
	WinningBid(ctx context.Context, listingID string) (models.Bid, error)
}

type ListingServiceInterface interface {
	CreateListing(ctx context.Context, draft models.ListingDraft) (models.Listing, error)
}

type QueryServiceInterface interface {
	Listings(ctx context.Context, f query.Filter) (query.Page, error)
	Listing(ctx context.Context, listingID string) (models.ListingDetail, error)
	Watchlist(ctx context.Context, userID string) ([]models.ListingSummary, error)
	SellerListings(ctx context.Context, sellerID string) ([]models.ListingSummary, error)
	BidderActivity(ctx context.Context, bidderID string) ([]models.BidderActivity, error)
}

type WatchlistServiceInterface interface {
	Add(ctx context.Context, userID, listingID string) (bool, error)
	Remove(ctx context.Context, userID, listingID string) (bool, error)
	Contains(ctx context.Context, userID, listingID string) (bool, error)
}

type SweepServiceInterface interface {
	Sweep(ctx context.Context) (lifecycle.SweepReport, error)
}

type ReconcileServiceInterface interface {
	Run(ctx context.Context) (reconcile.Report, error)
}
