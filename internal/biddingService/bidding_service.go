package bidding

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/clock"
	"auction-engine/internal/events"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
)

const (
	defaultMaxAttempts = 5
	defaultBackoff     = 2 * time.Millisecond
	// MaxBackoff caps a single retry wait, jitter included
	MaxBackoff = 100 * time.Millisecond
)

// Proposer accepts requests to re-evaluate a listing's lifecycle state
type Proposer interface {
	Propose(listingID string)
}

// Option configures a BiddingService
type Option func(*BiddingService)

// WithClock sets the time source used for expiry checks and bid timestamps
func WithClock(c clock.Clock) Option {
	return func(s *BiddingService) { s.clock = c }
}

// WithPublisher sets where accepted bids are announced
func WithPublisher(p events.Publisher) Option {
	return func(s *BiddingService) { s.publisher = p }
}

// WithProposer sets who is told about listings that are overdue for a transition
func WithProposer(p Proposer) Option {
	return func(s *BiddingService) { s.proposer = p }
}

// WithRetryPolicy bounds the optimistic retry loop. Non-positive values keep the defaults.
func WithRetryPolicy(maxAttempts int, backoff time.Duration) Option {
	return func(s *BiddingService) {
		if maxAttempts > 0 {
			s.maxAttempts = maxAttempts
		}
		if backoff > 0 {
			s.backoff = min(backoff, MaxBackoff)
		}
	}
}

// BiddingService arbitrates bids: it decides acceptance against a listing
// snapshot and commits with compare-and-swap, retrying on conflicts
type BiddingService struct {
	repo        repository.AuctionDB
	clock       clock.Clock
	publisher   events.Publisher
	proposer    Proposer
	maxAttempts int
	backoff     time.Duration
}

// BidResult is an accepted bid together with the listing it advanced
type BidResult struct {
	Bid     models.Bid
	Listing models.Listing
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB, opts ...Option) *BiddingService {
	s := &BiddingService{
		repo:        repo,
		clock:       clock.System{},
		publisher:   events.Nop{},
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultBackoff,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceBid validates and records a bid. Once started it runs to completion
// even if ctx is cancelled, so a caller never sees an ambiguous outcome.
// A bid refused by the acceptance rules still returns the listing snapshot
// it was judged against.
func (s *BiddingService) PlaceBid(ctx context.Context, req models.BidRequest) (BidResult, error) {
	if err := validateRequest(req); err != nil {
		return BidResult{}, err
	}
	ctx = context.WithoutCancel(ctx)

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		listing, err := s.repo.GetListing(ctx, req.ListingID)
		if err != nil {
			return BidResult{}, fmt.Errorf("service: failed to load listing %s: %w", req.ListingID, err)
		}

		now := s.clock.Now()
		if err := s.checkAcceptance(listing, req, now); err != nil {
			return BidResult{Listing: listing}, err
		}

		bid := models.Bid{
			BidID:     utils.GenerateID(),
			ListingID: req.ListingID,
			BidderID:  req.BidderID,
			Amount:    req.Amount,
			CreatedAt: now,
		}

		updated, stored, err := s.repo.CommitBid(ctx, listing.Version, bid)
		switch {
		case err == nil:
			s.announce(updated, stored)
			return BidResult{Bid: stored, Listing: updated}, nil
		case errors.Is(err, biddingerrors.ErrVersionConflict):
			utils.Debug("bid commit lost a race, retrying", map[string]any{
				"listing_id": req.ListingID,
				"attempt":    attempt,
			})
			if attempt < s.maxAttempts {
				time.Sleep(s.retryDelay(attempt))
			}
		case errors.Is(err, biddingerrors.ErrStorageFailure):
			utils.Error("bid commit failed in storage, listing may need reconciliation", map[string]any{
				"listing_id": req.ListingID,
				"bidder_id":  req.BidderID,
				"amount":     req.Amount,
				"version":    listing.Version,
				"error":      err.Error(),
			})
			return BidResult{}, fmt.Errorf("service: failed to record bid for listing %s: %w", req.ListingID, err)
		default:
			return BidResult{}, fmt.Errorf("service: failed to record bid for listing %s: %w", req.ListingID, err)
		}
	}

	utils.Warn("bid rejected after exhausting retries", map[string]any{
		"listing_id": req.ListingID,
		"attempts":   s.maxAttempts,
	})
	return BidResult{}, fmt.Errorf("service: %w - listing %s after %d attempts", biddingerrors.ErrContention, req.ListingID, s.maxAttempts)
}

// checkAcceptance applies the acceptance rules to a snapshot
func (s *BiddingService) checkAcceptance(listing models.Listing, req models.BidRequest, now time.Time) error {
	if listing.State != models.StateActive || !now.Before(listing.EndAt) {
		if overdue(listing, now) && s.proposer != nil {
			s.proposer.Propose(listing.ListingID)
		}
		return fmt.Errorf("service: %w - listing %s is %s", biddingerrors.ErrListingNotActive, listing.ListingID, listing.State)
	}
	if req.BidderID == listing.SellerID {
		return fmt.Errorf("service: %w", biddingerrors.ErrSelfBid)
	}
	if req.Amount <= listing.CurrentBid {
		return fmt.Errorf("service: %w - current highest bid is %s %s",
			biddingerrors.ErrBidTooLow, utils.FormatMinor(listing.CurrentBid, listing.Currency), listing.Currency)
	}
	return nil
}

// overdue reports whether the stored state lags behind what the clock implies
func overdue(listing models.Listing, now time.Time) bool {
	switch listing.State {
	case models.StateScheduled:
		return !now.Before(listing.StartAt)
	case models.StateActive:
		return !now.Before(listing.EndAt)
	}
	return false
}

// retryDelay grows exponentially with attempt and adds up to one base interval
// of jitter, never exceeding MaxBackoff
func (s *BiddingService) retryDelay(attempt int) time.Duration {
	d := s.backoff
	for i := 1; i < attempt && d < MaxBackoff; i++ {
		d <<= 1
	}
	return min(d+rand.N(s.backoff), MaxBackoff)
}

func (s *BiddingService) announce(listing models.Listing, bid models.Bid) {
	if err := s.publisher.Publish(events.BidPlaced(listing, bid)); err != nil {
		utils.Warn("failed to publish bid event", map[string]any{
			"listing_id": listing.ListingID,
			"sequence":   bid.Sequence,
			"error":      err.Error(),
		})
	}
}

// validateRequest checks input validity before any storage access
func validateRequest(req models.BidRequest) error {
	if req.ListingID == "" || req.BidderID == "" {
		return fmt.Errorf("service: %w - missing listingID or bidderID", biddingerrors.ErrInvalidBid)
	}
	if req.Amount <= 0 {
		return fmt.Errorf("service: %w - non-positive bid amount", biddingerrors.ErrInvalidBid)
	}
	return nil
}

// BidHistory returns all accepted bids for a listing, oldest first
func (s *BiddingService) BidHistory(ctx context.Context, listingID string) ([]models.Bid, error) {
	if listingID == "" {
		return nil, fmt.Errorf("service: %w - empty listing ID", biddingerrors.ErrInvalidBid)
	}

	bids, err := s.repo.BidHistory(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for listing %s: %w", listingID, err)
	}

	return bids, nil
}

// WinningBid returns the highest accepted bid for a listing
func (s *BiddingService) WinningBid(ctx context.Context, listingID string) (models.Bid, error) {
	bids, err := s.BidHistory(ctx, listingID)
	if err != nil {
		return models.Bid{}, err
	}
	if len(bids) == 0 {
		return models.Bid{}, fmt.Errorf("service: %w - listing %s", biddingerrors.ErrNoBids, listingID)
	}

	return bids[len(bids)-1], nil
}
