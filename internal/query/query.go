package query

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/clock"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"

	"github.com/samber/lo"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// SortKey orders listing pages. Ties are always broken by listing id.
type SortKey string

const (
	SortFeatured   SortKey = "featured"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortEndingSoon SortKey = "ending-soon"
	SortMostBids   SortKey = "most-bids"
	SortNewest     SortKey = "newest"
)

var sortKeys = []SortKey{SortFeatured, SortPriceAsc, SortPriceDesc, SortEndingSoon, SortMostBids, SortNewest}

// Filter narrows a listing page. Zero values mean "no constraint".
type Filter struct {
	Category  string
	Condition string
	MinPrice  *int64
	MaxPrice  *int64
	Search    string
	SellerID  string
	States    []models.ListingState
	Sort      SortKey
	Limit     int
	Offset    int
}

// Page is one slice of a filtered, sorted listing set
type Page struct {
	Items  []models.ListingSummary `json:"items"`
	Total  int                     `json:"total"`
	Limit  int                     `json:"limit"`
	Offset int                     `json:"offset"`
}

const detailReadAttempts = 5

// Facade serves read-only projections over listings, bids and watchlists
type Facade struct {
	repo  repository.AuctionDB
	clock clock.Clock
}

// NewFacade creates a query facade. A nil clock means the system clock.
func NewFacade(repo repository.AuctionDB, c clock.Clock) *Facade {
	if c == nil {
		c = clock.System{}
	}
	return &Facade{repo: repo, clock: c}
}

// Summarize projects a listing into its list-view form at now
func Summarize(l models.Listing, now time.Time) models.ListingSummary {
	return models.ListingSummary{
		ListingID:            l.ListingID,
		Title:                l.Title,
		Category:             l.Category,
		Condition:            l.Condition,
		Currency:             l.Currency,
		CurrentBid:           l.CurrentBid,
		CurrentBidDisplay:    utils.FormatMinor(l.CurrentBid, l.Currency),
		BidCount:             l.BidCount,
		SellerID:             l.SellerID,
		State:                l.State,
		EndAt:                l.EndAt,
		TimeRemainingSeconds: int64(l.TimeRemaining(now) / time.Second),
	}
}

func (f Filter) validate() error {
	verr := biddingerrors.NewValidationError()
	if f.Sort != "" && !lo.Contains(sortKeys, f.Sort) {
		verr.Add("sort", fmt.Sprintf("unknown sort %q", f.Sort))
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		verr.Add("min_price", "must not exceed max_price")
	}
	if f.Limit < 0 {
		verr.Add("limit", "must not be negative")
	}
	if f.Offset < 0 {
		verr.Add("offset", "must not be negative")
	}
	for _, s := range f.States {
		if !s.Valid() {
			verr.Add("state", fmt.Sprintf("unknown state %q", s))
		}
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

func (f Filter) matches(l models.Listing) bool {
	if f.Category != "" && !strings.EqualFold(l.Category, f.Category) {
		return false
	}
	if f.Condition != "" && !strings.EqualFold(l.Condition, f.Condition) {
		return false
	}
	if f.MinPrice != nil && l.CurrentBid < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && l.CurrentBid > *f.MaxPrice {
		return false
	}
	if f.SellerID != "" && l.SellerID != f.SellerID {
		return false
	}
	if len(f.States) > 0 && !lo.Contains(f.States, l.State) {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		haystack := strings.ToLower(l.Title + "\n" + l.Description + "\n" + l.Category)
		if !strings.Contains(haystack, q) {
			return false
		}
	}
	return true
}

func sortListings(listings []models.Listing, key SortKey) {
	less := func(a, b models.Listing) (bool, bool) {
		switch key {
		case SortPriceAsc:
			return a.CurrentBid < b.CurrentBid, a.CurrentBid == b.CurrentBid
		case SortPriceDesc:
			return a.CurrentBid > b.CurrentBid, a.CurrentBid == b.CurrentBid
		case SortEndingSoon:
			return a.EndAt.Before(b.EndAt), a.EndAt.Equal(b.EndAt)
		case SortMostBids:
			return a.BidCount > b.BidCount, a.BidCount == b.BidCount
		case SortNewest:
			return a.CreatedAt.After(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
		default:
			return a.CreatedAt.Before(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
		}
	}
	sort.SliceStable(listings, func(i, j int) bool {
		lt, eq := less(listings[i], listings[j])
		if eq {
			return listings[i].ListingID < listings[j].ListingID
		}
		return lt
	})
}

// Listings returns one page of listings matching f
func (q *Facade) Listings(ctx context.Context, f Filter) (Page, error) {
	if err := f.validate(); err != nil {
		return Page{}, err
	}
	if f.Limit == 0 {
		f.Limit = DefaultLimit
	}
	f.Limit = min(f.Limit, MaxLimit)

	all, err := q.repo.ListListings(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("query: list listings: %w", err)
	}

	matched := lo.Filter(all, func(l models.Listing, _ int) bool { return f.matches(l) })
	sortListings(matched, f.Sort)

	now := q.clock.Now()
	window := lo.Subset(matched, f.Offset, uint(f.Limit))
	return Page{
		Items:  lo.Map(window, func(l models.Listing, _ int) models.ListingSummary { return Summarize(l, now) }),
		Total:  len(matched),
		Limit:  f.Limit,
		Offset: f.Offset,
	}, nil
}

// Listing returns a listing with its full bid history. The ledger is read
// first and the pair is re-read until the listing's bid count matches it.
func (q *Facade) Listing(ctx context.Context, listingID string) (models.ListingDetail, error) {
	var (
		listing models.Listing
		bids    []models.Bid
		err     error
	)
	for attempt := 1; attempt <= detailReadAttempts; attempt++ {
		bids, err = q.repo.BidHistory(ctx, listingID)
		if err != nil {
			return models.ListingDetail{}, fmt.Errorf("query: get bids for %s: %w", listingID, err)
		}
		listing, err = q.repo.GetListing(ctx, listingID)
		if err != nil {
			return models.ListingDetail{}, fmt.Errorf("query: get listing %s: %w", listingID, err)
		}
		if listing.BidCount == len(bids) {
			break
		}
	}
	return models.ListingDetail{
		Listing:              listing,
		Bids:                 bids,
		ReserveMet:           listing.ReserveMet(),
		TimeRemainingSeconds: int64(listing.TimeRemaining(q.clock.Now()) / time.Second),
	}, nil
}

// Watchlist returns summaries of the listings a user watches, oldest addition first
func (q *Facade) Watchlist(ctx context.Context, userID string) ([]models.ListingSummary, error) {
	ids, err := q.repo.WatchedBy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query: watchlist for %s: %w", userID, err)
	}

	now := q.clock.Now()
	summaries := make([]models.ListingSummary, 0, len(ids))
	for _, id := range ids {
		l, err := q.repo.GetListing(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("query: watchlist for %s: %w", userID, err)
		}
		summaries = append(summaries, Summarize(l, now))
	}
	return summaries, nil
}

// SellerListings returns every listing a seller created, newest first
func (q *Facade) SellerListings(ctx context.Context, sellerID string) ([]models.ListingSummary, error) {
	page, err := q.Listings(ctx, Filter{SellerID: sellerID, Sort: SortNewest, Limit: MaxLimit})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// BidderActivity summarises each listing a user has bid on, most recent activity first
func (q *Facade) BidderActivity(ctx context.Context, bidderID string) ([]models.BidderActivity, error) {
	bids, err := q.repo.BidsByBidder(ctx, bidderID)
	if err != nil {
		return nil, fmt.Errorf("query: bids by %s: %w", bidderID, err)
	}

	now := q.clock.Now()
	byListing := lo.GroupBy(bids, func(b models.Bid) string { return b.ListingID })
	activity := make([]models.BidderActivity, 0, len(byListing))
	for listingID, own := range byListing {
		l, err := q.repo.GetListing(ctx, listingID)
		if err != nil {
			return nil, fmt.Errorf("query: bids by %s: %w", bidderID, err)
		}
		top := lo.MaxBy(own, func(a, b models.Bid) bool { return a.Amount > b.Amount })
		last := lo.MaxBy(own, func(a, b models.Bid) bool { return a.CreatedAt.After(b.CreatedAt) })
		activity = append(activity, models.BidderActivity{
			Listing:   Summarize(l, now),
			TopBid:    top.Amount,
			BidCount:  len(own),
			LastBidAt: last.CreatedAt,
			Status:    bidderStatus(l, bidderID),
		})
	}

	sort.Slice(activity, func(i, j int) bool {
		a, b := activity[i], activity[j]
		if a.LastBidAt.Equal(b.LastBidAt) {
			return a.Listing.ListingID < b.Listing.ListingID
		}
		return a.LastBidAt.After(b.LastBidAt)
	})
	return activity, nil
}

func bidderStatus(l models.Listing, bidderID string) models.BidderStatus {
	leading := l.CurrentBidderID != nil && *l.CurrentBidderID == bidderID
	switch {
	case l.State == models.StateEndedSold && leading:
		return models.BidderWon
	case l.State.IsTerminal():
		return models.BidderLost
	case leading:
		return models.BidderLeading
	default:
		return models.BidderOutbid
	}
}
