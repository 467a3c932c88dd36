package watchlist

import (
	"context"
	"fmt"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/clock"
	"auction-engine/internal/repository"
	"auction-engine/utils"
)

// Service maintains per-user sets of watched listings. Add and Remove are idempotent.
type Service struct {
	store repository.WatchlistStore
	clock clock.Clock
}

// NewService creates a watchlist service. A nil clock means the system clock.
func NewService(store repository.WatchlistStore, c clock.Clock) *Service {
	if c == nil {
		c = clock.System{}
	}
	return &Service{store: store, clock: c}
}

func validate(userID, listingID string) error {
	if userID == "" || listingID == "" {
		return fmt.Errorf("watchlist: %w - missing userID or listingID", biddingerrors.ErrInvalidBid)
	}
	return nil
}

// Add puts listingID on the user's watchlist. It reports whether the entry is new.
func (s *Service) Add(ctx context.Context, userID, listingID string) (bool, error) {
	if err := validate(userID, listingID); err != nil {
		return false, err
	}
	added, err := s.store.AddWatch(ctx, userID, listingID, s.clock.Now())
	if err != nil {
		return false, fmt.Errorf("watchlist: add %s for %s: %w", listingID, userID, err)
	}
	if added {
		utils.Debug("listing watched", map[string]any{"user_id": userID, "listing_id": listingID})
	}
	return added, nil
}

// Remove takes listingID off the user's watchlist. It reports whether an entry was removed.
func (s *Service) Remove(ctx context.Context, userID, listingID string) (bool, error) {
	if err := validate(userID, listingID); err != nil {
		return false, err
	}
	removed, err := s.store.RemoveWatch(ctx, userID, listingID)
	if err != nil {
		return false, fmt.Errorf("watchlist: remove %s for %s: %w", listingID, userID, err)
	}
	return removed, nil
}

// Contains reports whether the user watches listingID
func (s *Service) Contains(ctx context.Context, userID, listingID string) (bool, error) {
	if err := validate(userID, listingID); err != nil {
		return false, err
	}
	ok, err := s.store.IsWatching(ctx, userID, listingID)
	if err != nil {
		return false, fmt.Errorf("watchlist: lookup %s for %s: %w", listingID, userID, err)
	}
	return ok, nil
}

// ListFor returns the listing ids the user watches, oldest first
func (s *Service) ListFor(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, fmt.Errorf("watchlist: %w - empty user ID", biddingerrors.ErrInvalidBid)
	}
	ids, err := s.store.WatchedBy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("watchlist: list for %s: %w", userID, err)
	}
	return ids, nil
}
