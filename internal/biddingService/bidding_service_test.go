package bidding

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/clock"
	"auction-engine/internal/events"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func init() {
	utils.SetLogOutput(io.Discard)
}

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type recordingProposer struct {
	mu  sync.Mutex
	ids []string
}

func (p *recordingProposer) Propose(listingID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ids = append(p.ids, listingID)
}

func (p *recordingProposer) proposed() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.ids...)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(ev events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

// Helper to create an active listing snapshot
func activeListing(listingID string, current, version int64) model.Listing {
	return model.Listing{
		ListingID:     listingID,
		Title:         "Vintage camera",
		StartingPrice: 5000,
		Currency:      "USD",
		SellerID:      "seller1",
		CreatedAt:     now.Add(-time.Hour),
		StartAt:       now.Add(-time.Hour),
		EndAt:         now.Add(time.Hour),
		State:         model.StateActive,
		CurrentBid:    current,
		Version:       version,
	}
}

func committed(listing model.Listing, bid model.Bid, seq int64) (model.Listing, model.Bid, error) {
	bidder := bid.BidderID
	listing.CurrentBid = bid.Amount
	listing.CurrentBidderID = &bidder
	listing.BidCount++
	listing.Version++
	bid.Sequence = seq
	return listing, bid, nil
}

// Tests PlaceBid
func TestBiddingService_PlaceBid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		req           model.BidRequest
		mockSetup     func(repo *repository.MockAuctionDB)
		expectedError error
		wantProposal  bool
	}{
		{
			name: "valid_first_bid",
			req:  model.BidRequest{ListingID: "l1", BidderID: "user1", Amount: 5500},
			mockSetup: func(repo *repository.MockAuctionDB) {
				snapshot := activeListing("l1", 5000, 1)
				repo.EXPECT().GetListing(gomock.Any(), "l1").Return(snapshot, nil)
				repo.EXPECT().CommitBid(gomock.Any(), int64(1), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int64, bid model.Bid) (model.Listing, model.Bid, error) {
						return committed(snapshot, bid, 1)
					})
			},
		},
		{
			name:          "empty_listingID",
			req:           model.BidRequest{ListingID: "", BidderID: "user1", Amount: 5500},
			mockSetup:     func(*repository.MockAuctionDB) {},
			expectedError: biddingerrors.ErrInvalidBid,
		},
		{
			name:          "empty_bidderID",
			req:           model.BidRequest{ListingID: "l1", BidderID: "", Amount: 5500},
			mockSetup:     func(*repository.MockAuctionDB) {},
			expectedError: biddingerrors.ErrInvalidBid,
		},
		{
			name:          "zero_amount",
			req:           model.BidRequest{ListingID: "l1", BidderID: "user1", Amount: 0},
			mockSetup:     func(*repository.MockAuctionDB) {},
			expectedError: biddingerrors.ErrInvalidBid,
		},
		{
			name: "listing_not_found",
			req:  model.BidRequest{ListingID: "missing", BidderID: "user1", Amount: 5500},
			mockSetup: func(repo *repository.MockAuctionDB) {
				repo.EXPECT().GetListing(gomock.Any(), "missing").Return(model.Listing{}, biddingerrors.ErrListingNotFound)
			},
			expectedError: biddingerrors.ErrListingNotFound,
		},
		{
			name: "listing_ended",
			req:  model.BidRequest{ListingID: "l1", BidderID: "user1", Amount: 9000},
			mockSetup: func(repo *repository.MockAuctionDB) {
				snapshot := activeListing("l1", 5000, 4)
				snapshot.State = model.StateEndedUnsold
				repo.EXPECT().GetListing(gomock.Any(), "l1").Return(snapshot, nil)
			},
			expectedError: biddingerrors.ErrListingNotActive,
		},
		{
			name: "active_but_past_end_proposes_evaluation",
			req:  model.BidRequest{ListingID: "l1", BidderID: "user1", Amount: 9000},
			mockSetup: func(repo *repository.MockAuctionDB) {
				snapshot := activeListing("l1", 5000, 4)
				snapshot.EndAt = now
				repo.EXPECT().GetListing(gomock.Any(), "l1").Return(snapshot, nil)
			},
			expectedError: biddingerrors.ErrListingNotActive,
			wantProposal:  true,
		},
		{
			name: "scheduled_listing",
			req:  model.BidRequest{ListingID: "l1", BidderID: "user1", Amount: 9000},
			mockSetup: func(repo *repository.MockAuctionDB) {
				snapshot := activeListing("l1", 5000, 1)
				snapshot.State = model.StateScheduled
				snapshot.StartAt = now.Add(time.Minute)
				repo.EXPECT().GetListing(gomock.Any(), "l1").Return(snapshot, nil)
			},
			expectedError: biddingerrors.ErrListingNotActive,
		},
		{
			name: "seller_bids_on_own_listing",
			req:  model.BidRequest{ListingID: "l1", BidderID: "seller1", Amount: 9000},
			mockSetup: func(repo *repository.MockAuctionDB) {
				repo.EXPECT().GetListing(gomock.Any(), "l1").Return(activeListing("l1", 5000, 1), nil)
			},
			expectedError: biddingerrors.ErrSelfBid,
		},
		{
			name: "equal_bid_rejected",
			req:  model.BidRequest{ListingID: "l1", BidderID: "user2", Amount: 7000},
			mockSetup: func(repo *repository.MockAuctionDB) {
				repo.EXPECT().GetListing(gomock.Any(), "l1").Return(activeListing("l1", 7000, 2), nil)
			},
			expectedError: biddingerrors.ErrBidTooLow,
		},
		{
			name: "lower_bid_rejected",
			req:  model.BidRequest{ListingID: "l1", BidderID: "user2", Amount: 6999},
			mockSetup: func(repo *repository.MockAuctionDB) {
				repo.EXPECT().GetListing(gomock.Any(), "l1").Return(activeListing("l1", 7000, 2), nil)
			},
			expectedError: biddingerrors.ErrBidTooLow,
		},
		{
			name: "conflict_then_success",
			req:  model.BidRequest{ListingID: "l1", BidderID: "user1", Amount: 8000},
			mockSetup: func(repo *repository.MockAuctionDB) {
				first := activeListing("l1", 6000, 2)
				second := activeListing("l1", 7000, 3)
				gomock.InOrder(
					repo.EXPECT().GetListing(gomock.Any(), "l1").Return(first, nil),
					repo.EXPECT().CommitBid(gomock.Any(), int64(2), gomock.Any()).Return(model.Listing{}, model.Bid{}, biddingerrors.ErrVersionConflict),
					repo.EXPECT().GetListing(gomock.Any(), "l1").Return(second, nil),
					repo.EXPECT().CommitBid(gomock.Any(), int64(3), gomock.Any()).
						DoAndReturn(func(_ context.Context, _ int64, bid model.Bid) (model.Listing, model.Bid, error) {
							return committed(second, bid, 2)
						}),
				)
			},
		},
		{
			name: "conflict_then_outbid",
			req:  model.BidRequest{ListingID: "l1", BidderID: "user1", Amount: 8000},
			mockSetup: func(repo *repository.MockAuctionDB) {
				gomock.InOrder(
					repo.EXPECT().GetListing(gomock.Any(), "l1").Return(activeListing("l1", 6000, 2), nil),
					repo.EXPECT().CommitBid(gomock.Any(), int64(2), gomock.Any()).Return(model.Listing{}, model.Bid{}, biddingerrors.ErrVersionConflict),
					repo.EXPECT().GetListing(gomock.Any(), "l1").Return(activeListing("l1", 9000, 3), nil),
				)
			},
			expectedError: biddingerrors.ErrBidTooLow,
		},
		{
			name: "contention_exhausts_retries",
			req:  model.BidRequest{ListingID: "l1", BidderID: "user1", Amount: 8000},
			mockSetup: func(repo *repository.MockAuctionDB) {
				repo.EXPECT().GetListing(gomock.Any(), "l1").Return(activeListing("l1", 6000, 2), nil).Times(3)
				repo.EXPECT().CommitBid(gomock.Any(), int64(2), gomock.Any()).
					Return(model.Listing{}, model.Bid{}, biddingerrors.ErrVersionConflict).Times(3)
			},
			expectedError: biddingerrors.ErrContention,
		},
		{
			name: "storage_failure",
			req:  model.BidRequest{ListingID: "l1", BidderID: "user1", Amount: 8000},
			mockSetup: func(repo *repository.MockAuctionDB) {
				repo.EXPECT().GetListing(gomock.Any(), "l1").Return(activeListing("l1", 6000, 2), nil)
				repo.EXPECT().CommitBid(gomock.Any(), int64(2), gomock.Any()).
					Return(model.Listing{}, model.Bid{}, fmt.Errorf("insert bid: %w: %w", biddingerrors.ErrStorageFailure, errors.New("disk full")))
			},
			expectedError: biddingerrors.ErrStorageFailure,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockRepo := repository.NewMockAuctionDB(ctrl)
			proposer := &recordingProposer{}
			publisher := &recordingPublisher{}
			service := NewBiddingService(mockRepo,
				WithClock(clock.NewFake(now)),
				WithProposer(proposer),
				WithPublisher(publisher),
				WithRetryPolicy(3, time.Microsecond),
			)

			tc.mockSetup(mockRepo)

			result, err := service.PlaceBid(context.Background(), tc.req)

			if tc.wantProposal {
				require.Equal(t, []string{tc.req.ListingID}, proposer.proposed())
			} else {
				require.Empty(t, proposer.proposed())
			}

			if tc.expectedError != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				require.Empty(t, publisher.events)
				if errors.Is(err, biddingerrors.ErrBidTooLow) {
					require.Equal(t, tc.req.ListingID, result.Listing.ListingID, "rejection carries the snapshot")
				}
				return
			}
			require.NoError(t, err)

			// Validate generated BidID
			_, parseErr := uuid.Parse(result.Bid.BidID)
			require.NoError(t, parseErr, "BidID should be a valid UUID")

			require.Equal(t, tc.req.ListingID, result.Bid.ListingID)
			require.Equal(t, tc.req.BidderID, result.Bid.BidderID)
			require.Equal(t, tc.req.Amount, result.Bid.Amount)
			require.Equal(t, tc.req.Amount, result.Listing.CurrentBid)
			require.Equal(t, now, result.Bid.CreatedAt)
			require.Len(t, publisher.events, 1)
			require.Equal(t, events.TypeBidPlaced, publisher.events[0].Type)
		})
	}
}

// A cancelled request still commits once arbitration has started
func TestBiddingService_PlaceBidIgnoresCancellation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewBiddingService(mockRepo, WithClock(clock.NewFake(now)))

	snapshot := activeListing("l1", 5000, 1)
	mockRepo.EXPECT().GetListing(gomock.Any(), "l1").Return(snapshot, nil)
	mockRepo.EXPECT().CommitBid(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ int64, bid model.Bid) (model.Listing, model.Bid, error) {
			require.NoError(t, ctx.Err())
			return committed(snapshot, bid, 1)
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.PlaceBid(ctx, model.BidRequest{ListingID: "l1", BidderID: "user1", Amount: 6000})
	require.NoError(t, err)
}

// Tests BidHistory
func TestBiddingService_BidHistory(t *testing.T) {
	t.Parallel()

	bidsExample := []model.Bid{
		{BidID: "bid1", ListingID: "l1", BidderID: "user1", Amount: 100, Sequence: 1, CreatedAt: now},
		{BidID: "bid2", ListingID: "l1", BidderID: "user2", Amount: 150, Sequence: 2, CreatedAt: now.Add(time.Second)},
	}

	tests := []struct {
		name          string
		listingID     string
		mockSetup     func(repo *repository.MockAuctionDB)
		expectedError error
		expectedBids  []model.Bid
	}{
		{
			name:      "listing_with_bids",
			listingID: "l1",
			mockSetup: func(repo *repository.MockAuctionDB) {
				repo.EXPECT().BidHistory(gomock.Any(), "l1").Return(bidsExample, nil)
			},
			expectedBids: bidsExample,
		},
		{
			name:      "listing_without_bids",
			listingID: "l2",
			mockSetup: func(repo *repository.MockAuctionDB) {
				repo.EXPECT().BidHistory(gomock.Any(), "l2").Return([]model.Bid{}, nil)
			},
			expectedBids: []model.Bid{},
		},
		{
			name:          "empty_listingID",
			listingID:     "",
			mockSetup:     func(*repository.MockAuctionDB) {},
			expectedError: biddingerrors.ErrInvalidBid,
		},
		{
			name:      "repo_error",
			listingID: "l3",
			mockSetup: func(repo *repository.MockAuctionDB) {
				repo.EXPECT().BidHistory(gomock.Any(), "l3").Return(nil, biddingerrors.ErrListingNotFound)
			},
			expectedError: biddingerrors.ErrListingNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockRepo := repository.NewMockAuctionDB(ctrl)
			service := NewBiddingService(mockRepo)
			tc.mockSetup(mockRepo)

			bids, err := service.BidHistory(context.Background(), tc.listingID)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedBids, bids)
		})
	}
}

// Test WinningBid
func TestBiddingService_WinningBid(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewBiddingService(mockRepo)

	mockRepo.EXPECT().BidHistory(gomock.Any(), "l1").Return([]model.Bid{
		{BidID: "bid1", ListingID: "l1", BidderID: "user1", Amount: 100, Sequence: 1},
		{BidID: "bid2", ListingID: "l1", BidderID: "user2", Amount: 150, Sequence: 2},
	}, nil)
	mockRepo.EXPECT().BidHistory(gomock.Any(), "l2").Return([]model.Bid{}, nil)

	winning, err := service.WinningBid(context.Background(), "l1")
	require.NoError(t, err)
	require.Equal(t, "user2", winning.BidderID)
	require.Equal(t, int64(150), winning.Amount)

	_, err = service.WinningBid(context.Background(), "l2")
	require.ErrorIs(t, err, biddingerrors.ErrNoBids)
}

// Two bidders racing 100 and 105 against a current price of 50 must end at
// 105 whichever commits first, with 100 either accepted earlier or rejected
func TestBiddingService_ConcurrentCompetingBids(t *testing.T) {
	t.Parallel()

	for i := 0; i < 50; i++ {
		repo := repository.NewMemoryRepo()
		listing := activeListing("l1", 50, 1)
		listing.StartingPrice = 50
		repo.AddListing(listing)
		service := NewBiddingService(repo, WithClock(clock.NewFake(now)), WithRetryPolicy(10, time.Microsecond))

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for j, amount := range []int64{100, 105} {
			wg.Add(1)
			j, amount := j, amount
			go func() {
				defer wg.Done()
				_, errs[j] = service.PlaceBid(context.Background(), model.BidRequest{
					ListingID: "l1",
					BidderID:  fmt.Sprintf("bidder-%d", amount),
					Amount:    amount,
				})
			}()
		}
		wg.Wait()

		require.NoError(t, errs[1], "105 must always be accepted")
		if errs[0] != nil {
			require.ErrorIs(t, errs[0], biddingerrors.ErrBidTooLow)
		}

		final, err := repo.GetListing(context.Background(), "l1")
		require.NoError(t, err)
		require.Equal(t, int64(105), final.CurrentBid)

		history, err := repo.BidHistory(context.Background(), "l1")
		require.NoError(t, err)
		require.Equal(t, int64(105), history[len(history)-1].Amount)
		if errs[0] == nil {
			require.Len(t, history, 2)
			require.Equal(t, int64(100), history[0].Amount)
		} else {
			require.Len(t, history, 1)
		}
	}
}

// Many bidders at once: the ledger stays strictly increasing and contiguous
func TestBiddingService_LedgerStaysOrderedUnderLoad(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	repo.AddListing(activeListing("l1", 1000, 1))
	service := NewBiddingService(repo, WithClock(clock.NewFake(now)), WithRetryPolicy(50, time.Microsecond))

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			_, err := service.PlaceBid(context.Background(), model.BidRequest{
				ListingID: "l1",
				BidderID:  fmt.Sprintf("bidder-%d", i%7),
				Amount:    int64(1001 + i*13%97),
			})
			if err != nil {
				require.True(t, errors.Is(err, biddingerrors.ErrBidTooLow) || errors.Is(err, biddingerrors.ErrContention), "unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	history, err := repo.BidHistory(context.Background(), "l1")
	require.NoError(t, err)
	require.NotEmpty(t, history)
	for i, bid := range history {
		require.Equal(t, int64(i+1), bid.Sequence)
		if i > 0 {
			require.Greater(t, bid.Amount, history[i-1].Amount)
		}
	}

	final, err := repo.GetListing(context.Background(), "l1")
	require.NoError(t, err)
	require.Equal(t, history[len(history)-1].Amount, final.CurrentBid)
	require.Equal(t, len(history), final.BidCount)
}

// Bids on an ended listing are rejected and leave the ledger untouched
func TestBiddingService_EndedListingRejectsBids(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	listing := activeListing("l1", 5000, 1)
	repo.AddListing(listing)
	fake := clock.NewFake(now)
	service := NewBiddingService(repo, WithClock(fake))

	_, err := service.PlaceBid(context.Background(), model.BidRequest{ListingID: "l1", BidderID: "user1", Amount: 6000})
	require.NoError(t, err)

	fake.Set(listing.EndAt)
	_, err = service.PlaceBid(context.Background(), model.BidRequest{ListingID: "l1", BidderID: "user2", Amount: 9000})
	require.ErrorIs(t, err, biddingerrors.ErrListingNotActive)

	history, err := repo.BidHistory(context.Background(), "l1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, int64(6000), history[0].Amount)
}

func TestBiddingService_RetryDelayIsCapped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		maxAttempts int
		backoff     time.Duration
	}{
		{name: "default_policy", maxAttempts: defaultMaxAttempts, backoff: defaultBackoff},
		{name: "many_attempts", maxAttempts: 40, backoff: 2 * time.Millisecond},
		{name: "backoff_above_cap", maxAttempts: 10, backoff: time.Second},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := NewBiddingService(nil, WithRetryPolicy(tt.maxAttempts, tt.backoff))
			require.LessOrEqual(t, svc.backoff, MaxBackoff)
			for attempt := 1; attempt <= tt.maxAttempts; attempt++ {
				d := svc.retryDelay(attempt)
				require.Positive(t, d, "attempt %d", attempt)
				require.LessOrEqual(t, d, MaxBackoff, "attempt %d", attempt)
			}
		})
	}
}
