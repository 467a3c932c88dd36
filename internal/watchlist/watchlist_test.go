package watchlist

import (
	"context"
	"errors"
	"testing"
	"time"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/clock"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func seededRepo(ids ...string) *repository.MemoryRepo {
	repo := repository.NewMemoryRepo()
	for _, id := range ids {
		repo.AddListing(model.Listing{ListingID: id, State: model.StateActive, CreatedAt: now, EndAt: now.Add(time.Hour)})
	}
	return repo
}

func TestService_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	fake := clock.NewFake(now)
	service := NewService(seededRepo("l1", "l2"), fake)
	ctx := context.Background()

	added, err := service.Add(ctx, "user1", "l1")
	require.NoError(t, err)
	require.True(t, added)

	fake.Advance(time.Minute)
	added, err = service.Add(ctx, "user1", "l1")
	require.NoError(t, err)
	require.False(t, added)

	fake.Advance(time.Minute)
	_, err = service.Add(ctx, "user1", "l2")
	require.NoError(t, err)

	ids, err := service.ListFor(ctx, "user1")
	require.NoError(t, err)
	require.Equal(t, []string{"l1", "l2"}, ids)
}

func TestService_RemoveIsIdempotent(t *testing.T) {
	t.Parallel()

	service := NewService(seededRepo("l1"), clock.NewFake(now))
	ctx := context.Background()

	_, err := service.Add(ctx, "user1", "l1")
	require.NoError(t, err)

	removed, err := service.Remove(ctx, "user1", "l1")
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = service.Remove(ctx, "user1", "l1")
	require.NoError(t, err)
	require.False(t, removed)

	watching, err := service.Contains(ctx, "user1", "l1")
	require.NoError(t, err)
	require.False(t, watching)

	ids, err := service.ListFor(ctx, "user1")
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestService_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		call    func(s *Service) error
		wantErr error
	}{
		{
			name: "unknown_listing",
			call: func(s *Service) error {
				_, err := s.Add(context.Background(), "user1", "missing")
				return err
			},
			wantErr: biddingerrors.ErrListingNotFound,
		},
		{
			name: "empty_user_on_add",
			call: func(s *Service) error {
				_, err := s.Add(context.Background(), "", "l1")
				return err
			},
			wantErr: biddingerrors.ErrInvalidBid,
		},
		{
			name: "empty_listing_on_contains",
			call: func(s *Service) error {
				_, err := s.Contains(context.Background(), "user1", "")
				return err
			},
			wantErr: biddingerrors.ErrInvalidBid,
		},
		{
			name: "empty_user_on_list",
			call: func(s *Service) error {
				_, err := s.ListFor(context.Background(), "")
				return err
			},
			wantErr: biddingerrors.ErrInvalidBid,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			service := NewService(seededRepo("l1"), nil)
			require.ErrorIs(t, tc.call(service), tc.wantErr)
		})
	}
}

func TestService_StoreError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := repository.NewMockWatchlistStore(ctrl)
	store.EXPECT().WatchedBy(gomock.Any(), "user1").Return(nil, errors.New("db failure"))

	_, err := NewService(store, clock.NewFake(now)).ListFor(context.Background(), "user1")
	require.Error(t, err)
}
