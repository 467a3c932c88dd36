package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"auction-engine/internal/biddingerrors"
	model "auction-engine/internal/models"
	"auction-engine/utils"
)

// listingRecord holds one listing and its ledger behind a per-listing lock,
// so bids on different listings never contend with each other
type listingRecord struct {
	mu      sync.Mutex
	listing model.Listing
	bids    []model.Bid
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu       sync.RWMutex
	listings map[string]*listingRecord // key: listingID -> value: record

	bidderMu  sync.RWMutex
	userItems map[string][]string // key: bidderID -> value: listingIDs the user has bid on

	watchMu    sync.RWMutex
	watchlists map[string]map[string]time.Time // key: userID -> listingID -> added at
}

var _ AuctionDB = (*MemoryRepo)(nil)

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		listings:   make(map[string]*listingRecord),
		userItems:  make(map[string][]string),
		watchlists: make(map[string]map[string]time.Time),
	}
}

func (r *MemoryRepo) record(listingID string) (*listingRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.listings[listingID]
	return rec, ok
}

// CreateListing stores a new listing at version 1 with no bids
func (r *MemoryRepo) CreateListing(_ context.Context, listing model.Listing) (model.Listing, error) {
	if listing.ListingID == "" {
		listing.ListingID = utils.GenerateID()
	}
	listing.Version = 1
	listing.BidCount = 0
	listing.CurrentBidderID = nil
	if listing.UpdatedAt.IsZero() {
		listing.UpdatedAt = listing.CreatedAt
	}
	listing.CreatedAt = listing.CreatedAt.UTC()
	listing.StartAt = listing.StartAt.UTC()
	listing.EndAt = listing.EndAt.UTC()
	listing.UpdatedAt = listing.UpdatedAt.UTC()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.listings[listing.ListingID]; exists {
		return model.Listing{}, fmt.Errorf("create listing %s: already exists: %w", listing.ListingID, biddingerrors.ErrVersionConflict)
	}
	r.listings[listing.ListingID] = &listingRecord{listing: listing}
	return listing, nil
}

// GetListing returns a snapshot of the listing
func (r *MemoryRepo) GetListing(_ context.Context, listingID string) (model.Listing, error) {
	rec, ok := r.record(listingID)
	if !ok {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, biddingerrors.ErrListingNotFound)
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.listing, nil
}

// ListListings returns snapshots of all listings in creation order
func (r *MemoryRepo) ListListings(_ context.Context) ([]model.Listing, error) {
	r.mu.RLock()
	records := make([]*listingRecord, 0, len(r.listings))
	for _, rec := range r.listings {
		records = append(records, rec)
	}
	r.mu.RUnlock()

	listings := make([]model.Listing, 0, len(records))
	for _, rec := range records {
		rec.mu.Lock()
		listings = append(listings, rec.listing)
		rec.mu.Unlock()
	}

	sort.Slice(listings, func(i, j int) bool {
		if listings[i].CreatedAt.Equal(listings[j].CreatedAt) {
			return listings[i].ListingID < listings[j].ListingID
		}
		return listings[i].CreatedAt.Before(listings[j].CreatedAt)
	})
	return listings, nil
}

// UpdateCurrentBid advances the current bid if the listing is still at expectedVersion
func (r *MemoryRepo) UpdateCurrentBid(_ context.Context, listingID string, expectedVersion, amount int64, bidderID string, at time.Time) (model.Listing, error) {
	rec, ok := r.record(listingID)
	if !ok {
		return model.Listing{}, fmt.Errorf("update current bid %s: %w", listingID, biddingerrors.ErrListingNotFound)
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()

	if err := rec.applyBid(expectedVersion, amount, bidderID, at); err != nil {
		return model.Listing{}, fmt.Errorf("update current bid %s: %w", listingID, err)
	}
	return rec.listing, nil
}

// TransitionState moves the listing from one lifecycle state to another if it is
// still in from at expectedVersion
func (r *MemoryRepo) TransitionState(_ context.Context, listingID string, expectedVersion int64, from, to model.ListingState, at time.Time) (model.Listing, error) {
	if !model.CanTransition(from, to) {
		return model.Listing{}, fmt.Errorf("transition %s %s->%s: %w", listingID, from, to, biddingerrors.ErrInvalidTransition)
	}
	rec, ok := r.record(listingID)
	if !ok {
		return model.Listing{}, fmt.Errorf("transition %s: %w", listingID, biddingerrors.ErrListingNotFound)
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.listing.State != from {
		return model.Listing{}, fmt.Errorf("transition %s: state is %s, expected %s: %w", listingID, rec.listing.State, from, biddingerrors.ErrVersionConflict)
	}
	if rec.listing.Version != expectedVersion {
		return model.Listing{}, fmt.Errorf("transition %s: version %d, expected %d: %w", listingID, rec.listing.Version, expectedVersion, biddingerrors.ErrVersionConflict)
	}
	rec.listing.State = to
	rec.listing.Version++
	rec.listing.UpdatedAt = at.UTC()
	return rec.listing, nil
}

// AppendBid appends bid to the listing's ledger and returns its sequence number
func (r *MemoryRepo) AppendBid(_ context.Context, bid model.Bid) (int64, error) {
	rec, ok := r.record(bid.ListingID)
	if !ok {
		return 0, fmt.Errorf("append bid for listing %s: %w", bid.ListingID, biddingerrors.ErrListingNotFound)
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()

	appended, err := r.appendLocked(rec, bid)
	if err != nil {
		return 0, fmt.Errorf("append bid for listing %s: %w", bid.ListingID, err)
	}
	return appended.Sequence, nil
}

// CommitBid applies the price update and the ledger append under one lock
func (r *MemoryRepo) CommitBid(_ context.Context, expectedVersion int64, bid model.Bid) (model.Listing, model.Bid, error) {
	rec, ok := r.record(bid.ListingID)
	if !ok {
		return model.Listing{}, model.Bid{}, fmt.Errorf("commit bid for listing %s: %w", bid.ListingID, biddingerrors.ErrListingNotFound)
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()

	before := rec.listing
	if err := rec.applyBid(expectedVersion, bid.Amount, bid.BidderID, bid.CreatedAt); err != nil {
		return model.Listing{}, model.Bid{}, fmt.Errorf("commit bid for listing %s: %w", bid.ListingID, err)
	}
	appended, err := r.appendLocked(rec, bid)
	if err != nil {
		rec.listing = before
		return model.Listing{}, model.Bid{}, fmt.Errorf("commit bid for listing %s: %w", bid.ListingID, err)
	}
	return rec.listing, appended, nil
}

// BidHistory returns the listing's accepted bids, oldest first
func (r *MemoryRepo) BidHistory(_ context.Context, listingID string) ([]model.Bid, error) {
	rec, ok := r.record(listingID)
	if !ok {
		return nil, fmt.Errorf("get bids for listing %s: %w", listingID, biddingerrors.ErrListingNotFound)
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return append([]model.Bid{}, rec.bids...), nil
}

// BidsByBidder returns every bid placed by bidderID, grouped per listing in sequence order
func (r *MemoryRepo) BidsByBidder(_ context.Context, bidderID string) ([]model.Bid, error) {
	r.bidderMu.RLock()
	listingIDs := append([]string(nil), r.userItems[bidderID]...)
	r.bidderMu.RUnlock()

	var bids []model.Bid
	for _, id := range listingIDs {
		rec, ok := r.record(id)
		if !ok {
			continue
		}
		rec.mu.Lock()
		for _, b := range rec.bids {
			if b.BidderID == bidderID {
				bids = append(bids, b)
			}
		}
		rec.mu.Unlock()
	}
	return bids, nil
}

// AddWatch adds listingID to the user's watchlist. It reports false if it was already there.
func (r *MemoryRepo) AddWatch(_ context.Context, userID, listingID string, at time.Time) (bool, error) {
	if _, ok := r.record(listingID); !ok {
		return false, fmt.Errorf("watch listing %s: %w", listingID, biddingerrors.ErrListingNotFound)
	}

	r.watchMu.Lock()
	defer r.watchMu.Unlock()

	set, ok := r.watchlists[userID]
	if !ok {
		set = make(map[string]time.Time)
		r.watchlists[userID] = set
	}
	if _, exists := set[listingID]; exists {
		return false, nil
	}
	set[listingID] = at.UTC()
	return true, nil
}

// RemoveWatch removes listingID from the user's watchlist. It reports false if it was absent.
func (r *MemoryRepo) RemoveWatch(_ context.Context, userID, listingID string) (bool, error) {
	r.watchMu.Lock()
	defer r.watchMu.Unlock()

	set, ok := r.watchlists[userID]
	if !ok {
		return false, nil
	}
	if _, exists := set[listingID]; !exists {
		return false, nil
	}
	delete(set, listingID)
	if len(set) == 0 {
		delete(r.watchlists, userID)
	}
	return true, nil
}

// IsWatching reports whether the user watches listingID
func (r *MemoryRepo) IsWatching(_ context.Context, userID, listingID string) (bool, error) {
	r.watchMu.RLock()
	defer r.watchMu.RUnlock()
	_, ok := r.watchlists[userID][listingID]
	return ok, nil
}

// WatchedBy returns the user's watched listing ids, oldest addition first
func (r *MemoryRepo) WatchedBy(_ context.Context, userID string) ([]string, error) {
	r.watchMu.RLock()
	defer r.watchMu.RUnlock()

	set := r.watchlists[userID]
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ti, tj := set[ids[i]], set[ids[j]]
		if ti.Equal(tj) {
			return ids[i] < ids[j]
		}
		return ti.Before(tj)
	})
	return ids, nil
}

// Close is a no-op for the in-memory store
func (r *MemoryRepo) Close() error {
	return nil
}

// AddListing inserts a listing exactly as given, bypassing creation rules.
// This method is intended for tests and benchmarks only.
func (r *MemoryRepo) AddListing(listing model.Listing) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listings[listing.ListingID] = &listingRecord{listing: listing}
}

// applyBid mutates the listing for an accepted bid. Caller holds rec.mu.
func (rec *listingRecord) applyBid(expectedVersion, amount int64, bidderID string, at time.Time) error {
	if rec.listing.State.IsTerminal() {
		return fmt.Errorf("state %s: %w", rec.listing.State, biddingerrors.ErrListingNotActive)
	}
	if rec.listing.Version != expectedVersion {
		return fmt.Errorf("version %d, expected %d: %w", rec.listing.Version, expectedVersion, biddingerrors.ErrVersionConflict)
	}
	if amount <= rec.listing.CurrentBid {
		return fmt.Errorf("amount %d not above %d: %w", amount, rec.listing.CurrentBid, biddingerrors.ErrBidTooLow)
	}

	bidder := bidderID
	rec.listing.CurrentBid = amount
	rec.listing.CurrentBidderID = &bidder
	rec.listing.BidCount++
	rec.listing.Version++
	rec.listing.UpdatedAt = at.UTC()
	return nil
}

// appendLocked appends to the ledger and indexes the bidder. Caller holds rec.mu.
func (r *MemoryRepo) appendLocked(rec *listingRecord, bid model.Bid) (model.Bid, error) {
	if n := len(rec.bids); n > 0 && bid.Amount <= rec.bids[n-1].Amount {
		return model.Bid{}, fmt.Errorf("amount %d after %d: %w", bid.Amount, rec.bids[n-1].Amount, biddingerrors.ErrLedgerOrder)
	}
	if bid.BidID == "" {
		bid.BidID = utils.GenerateID()
	}
	bid.Sequence = int64(len(rec.bids)) + 1
	bid.CreatedAt = bid.CreatedAt.UTC()
	rec.bids = append(rec.bids, bid)

	r.bidderMu.Lock()
	defer r.bidderMu.Unlock()
	for _, id := range r.userItems[bid.BidderID] {
		if id == bid.ListingID {
			return bid, nil
		}
	}
	r.userItems[bid.BidderID] = append(r.userItems[bid.BidderID], bid.ListingID)
	return bid, nil
}
