package listing

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/clock"
	"auction-engine/internal/events"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"

	"github.com/microcosm-cc/bluemonday"
	"github.com/samber/lo"
)

const (
	maxTitleLength       = 120
	maxDescriptionLength = 5000
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Option configures a ListingService
type Option func(*ListingService)

// WithClock sets the time source used for creation time and window checks
func WithClock(c clock.Clock) Option {
	return func(s *ListingService) { s.clock = c }
}

// WithPublisher sets where new listings are announced
func WithPublisher(p events.Publisher) Option {
	return func(s *ListingService) { s.publisher = p }
}

// ListingService turns seller drafts into stored listings
type ListingService struct {
	repo        repository.ListingStore
	clock       clock.Clock
	publisher   events.Publisher
	titlePolicy *bluemonday.Policy
	textPolicy  *bluemonday.Policy
}

// NewListingService creates a new ListingService instance
func NewListingService(repo repository.ListingStore, opts ...Option) *ListingService {
	s := &ListingService{
		repo:        repo,
		clock:       clock.System{},
		publisher:   events.Nop{},
		titlePolicy: bluemonday.StrictPolicy(),
		textPolicy:  bluemonday.UGCPolicy(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateListing validates draft and stores it. The listing starts active
// when its start time has already arrived, scheduled otherwise.
func (s *ListingService) CreateListing(ctx context.Context, draft models.ListingDraft) (models.Listing, error) {
	now := s.clock.Now()

	// titles are plain text: strip markup but keep literal & and quotes
	draft.Title = strings.TrimSpace(html.UnescapeString(s.titlePolicy.Sanitize(draft.Title)))
	draft.Description = strings.TrimSpace(s.textPolicy.Sanitize(draft.Description))
	draft.Category = strings.ToLower(strings.TrimSpace(draft.Category))
	draft.Condition = strings.ToLower(strings.TrimSpace(draft.Condition))
	draft.Currency = strings.ToUpper(strings.TrimSpace(draft.Currency))
	if draft.Currency == "" {
		draft.Currency = models.DefaultCurrency
	}
	if draft.StartAt.IsZero() {
		draft.StartAt = now
	}
	if draft.EndAt.IsZero() && draft.DurationDays > 0 {
		draft.EndAt = draft.StartAt.Add(time.Duration(draft.DurationDays) * 24 * time.Hour)
	}

	if err := validateDraft(draft, now); err != nil {
		return models.Listing{}, err
	}

	state := models.StateActive
	if draft.StartAt.After(now) {
		state = models.StateScheduled
	}

	listing := models.Listing{
		ListingID:     utils.GenerateID(),
		Title:         draft.Title,
		Description:   draft.Description,
		Category:      draft.Category,
		Condition:     draft.Condition,
		StartingPrice: draft.StartingPrice,
		ReservePrice:  draft.ReservePrice,
		Currency:      draft.Currency,
		SellerID:      draft.SellerID,
		CreatedAt:     now,
		StartAt:       draft.StartAt.UTC(),
		EndAt:         draft.EndAt.UTC(),
		State:         state,
		CurrentBid:    draft.StartingPrice,
		UpdatedAt:     now,
	}

	stored, err := s.repo.CreateListing(ctx, listing)
	if err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to create listing: %w", err)
	}

	utils.Info("listing created", map[string]any{
		"listing_id":     stored.ListingID,
		"seller_id":      stored.SellerID,
		"state":          stored.State,
		"starting_price": utils.FormatMinor(stored.StartingPrice, stored.Currency),
		"end_at":         stored.EndAt,
	})
	if err := s.publisher.Publish(events.ListingCreated(stored)); err != nil {
		utils.Warn("failed to publish listing event", map[string]any{"listing_id": stored.ListingID, "error": err.Error()})
	}
	return stored, nil
}

// validateDraft collects every field problem instead of stopping at the first
func validateDraft(d models.ListingDraft, now time.Time) error {
	verr := biddingerrors.NewValidationError()

	switch {
	case d.Title == "":
		verr.Add("title", "is required")
	case utf8.RuneCountInString(d.Title) > maxTitleLength:
		verr.Add("title", fmt.Sprintf("must be at most %d characters", maxTitleLength))
	}
	if utf8.RuneCountInString(d.Description) > maxDescriptionLength {
		verr.Add("description", fmt.Sprintf("must be at most %d characters", maxDescriptionLength))
	}
	if d.SellerID == "" {
		verr.Add("seller_id", "is required")
	}
	if !lo.Contains(models.Categories, d.Category) {
		verr.Add("category", fmt.Sprintf("must be one of %s", strings.Join(models.Categories, ", ")))
	}
	if !lo.Contains(models.Conditions, d.Condition) {
		verr.Add("condition", fmt.Sprintf("must be one of %s", strings.Join(models.Conditions, ", ")))
	}
	if !currencyPattern.MatchString(d.Currency) {
		verr.Add("currency", "must be a three-letter ISO 4217 code")
	}

	if d.StartingPrice <= 0 {
		verr.Add("starting_price", "must be positive")
	}
	if d.ReservePrice != nil && *d.ReservePrice < d.StartingPrice {
		verr.Add("reserve_price", "must not be below the starting price")
	}

	if d.DurationDays != 0 && !lo.Contains(models.DurationPresets, d.DurationDays) {
		verr.Add("duration_days", fmt.Sprintf("must be one of %v", models.DurationPresets))
	}
	switch {
	case d.EndAt.IsZero():
		verr.Add("end_at", "is required unless duration_days is given")
	case !d.EndAt.After(d.StartAt):
		verr.Add("end_at", "must be after start_at")
	case !d.EndAt.After(now):
		verr.Add("end_at", "must be in the future")
	case d.EndAt.Sub(d.StartAt) > models.MaxAuctionDuration:
		verr.Add("end_at", "auction may not run longer than 30 days")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}
