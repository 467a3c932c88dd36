package seed

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/clock"
	listing "auction-engine/internal/listingService"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"

	"github.com/stretchr/testify/require"
)

func init() {
	utils.SetLogOutput(io.Discard)
}

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestDemo_AppliesCleanly(t *testing.T) {
	t.Parallel()

	f, err := Demo()
	require.NoError(t, err)
	require.NotEmpty(t, f.Listings)

	repo := repository.NewMemoryRepo()
	svc := listing.NewListingService(repo, listing.WithClock(clock.NewFake(now)))

	created, err := Apply(context.Background(), svc, f, now)
	require.NoError(t, err)
	require.Len(t, created, len(f.Listings))

	stored, err := repo.ListListings(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, len(f.Listings))

	states := map[models.ListingState]int{}
	for _, l := range stored {
		states[l.State]++
	}
	require.Equal(t, 1, states[models.StateScheduled])
	require.Equal(t, len(f.Listings)-1, states[models.StateActive])
}

func TestListing_Draft(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		entry       Listing
		want        models.ListingDraft
		expectError bool
	}{
		{
			name:  "defaults_currency_and_start",
			entry: Listing{Title: "Lamp", StartingPrice: "12.50", SellerID: "s1", DurationDays: 3},
			want: models.ListingDraft{
				Title: "Lamp", StartingPrice: 1250, Currency: "USD", SellerID: "s1", StartAt: now, DurationDays: 3,
			},
		},
		{
			name:  "reserve_and_delayed_start",
			entry: Listing{Title: "Lamp", StartingPrice: "10", ReservePrice: "30", Currency: "JPY", StartsIn: "90m", DurationDays: 1},
			want: models.ListingDraft{
				Title: "Lamp", StartingPrice: 10, ReservePrice: func() *int64 { v := int64(30); return &v }(),
				Currency: "JPY", StartAt: now.Add(90 * time.Minute), DurationDays: 1,
			},
		},
		{name: "bad_price", entry: Listing{StartingPrice: "ten"}, expectError: true},
		{name: "bad_reserve", entry: Listing{StartingPrice: "10", ReservePrice: "1.001"}, expectError: true},
		{name: "bad_offset", entry: Listing{StartingPrice: "10", StartsIn: "soon"}, expectError: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.entry.Draft(now)
			if tc.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestApply_StopsOnInvalidEntry(t *testing.T) {
	t.Parallel()

	f, err := Parse([]byte(`
listings:
  - title: Good Lamp
    category: home
    condition: good
    starting_price: "10.00"
    seller_id: s1
    duration_days: 3
  - title: ""
    category: home
    condition: good
    starting_price: "10.00"
    seller_id: s1
    duration_days: 3
`))
	require.NoError(t, err)

	repo := repository.NewMemoryRepo()
	svc := listing.NewListingService(repo, listing.WithClock(clock.NewFake(now)))

	created, err := Apply(context.Background(), svc, f, now)
	require.ErrorIs(t, err, biddingerrors.ErrValidation)
	require.Len(t, created, 1)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listings:\n  - title: Lamp\n    starting_price: \"5\"\n"), 0o600))

	f, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, f.Listings, 1)
	require.Equal(t, "Lamp", f.Listings[0].Title)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Parse([]byte("listings: [unterminated"))
	require.Error(t, err)
}
