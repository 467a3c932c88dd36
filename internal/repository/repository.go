//go:generate mockgen -package=repository -destination=mock_repository.go -source=repository.go

package repository

import (
	"context"
	"time"

	model "auction-engine/internal/models"
)

// ListingStore owns listing records. Mutations are compare-and-swap and bump Version.
type ListingStore interface {
	CreateListing(ctx context.Context, listing model.Listing) (model.Listing, error)
	GetListing(ctx context.Context, listingID string) (model.Listing, error)
	ListListings(ctx context.Context) ([]model.Listing, error)
	UpdateCurrentBid(ctx context.Context, listingID string, expectedVersion, amount int64, bidderID string, at time.Time) (model.Listing, error)
	TransitionState(ctx context.Context, listingID string, expectedVersion int64, from, to model.ListingState, at time.Time) (model.Listing, error)
}

// BidLedger is the append-only per-listing log of accepted bids
type BidLedger interface {
	AppendBid(ctx context.Context, bid model.Bid) (int64, error)
	BidHistory(ctx context.Context, listingID string) ([]model.Bid, error)
	BidsByBidder(ctx context.Context, bidderID string) ([]model.Bid, error)
}

// WatchlistStore keeps per-user sets of listing ids
type WatchlistStore interface {
	AddWatch(ctx context.Context, userID, listingID string, at time.Time) (bool, error)
	RemoveWatch(ctx context.Context, userID, listingID string) (bool, error)
	IsWatching(ctx context.Context, userID, listingID string) (bool, error)
	WatchedBy(ctx context.Context, userID string) ([]string, error)
}

// AuctionDB defines the storage interface for the auction engine
type AuctionDB interface {
	ListingStore
	BidLedger
	WatchlistStore

	// CommitBid advances the listing to bid.Amount and appends bid to the ledger
	// as one unit. It fails with ErrVersionConflict if the listing moved past
	// expectedVersion. The returned bid carries its assigned sequence number.
	CommitBid(ctx context.Context, expectedVersion int64, bid model.Bid) (model.Listing, model.Bid, error)

	Close() error
}
