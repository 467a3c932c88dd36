package models

import "time"

// ListingState is the lifecycle state of an auction listing
type ListingState string

const (
	StateScheduled          ListingState = "scheduled"
	StateActive             ListingState = "active"
	StateEndedSold          ListingState = "ended_sold"
	StateEndedUnsold        ListingState = "ended_unsold"
	StateEndedReserveNotMet ListingState = "ended_reserve_not_met"
)

// IsTerminal reports whether no further mutation is allowed in this state
func (s ListingState) IsTerminal() bool {
	switch s {
	case StateEndedSold, StateEndedUnsold, StateEndedReserveNotMet:
		return true
	}
	return false
}

// Valid reports whether s is a known state
func (s ListingState) Valid() bool {
	switch s {
	case StateScheduled, StateActive, StateEndedSold, StateEndedUnsold, StateEndedReserveNotMet:
		return true
	}
	return false
}

// CanTransition reports whether from -> to is a legal lifecycle edge
func CanTransition(from, to ListingState) bool {
	switch from {
	case StateScheduled:
		return to == StateActive
	case StateActive:
		return to.IsTerminal()
	}
	return false
}

// Listing represents an auction listing
type Listing struct {
	ListingID       string       `json:"listing_id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Category        string       `json:"category"`
	Condition       string       `json:"condition"`
	StartingPrice   int64        `json:"starting_price"`
	ReservePrice    *int64       `json:"reserve_price,omitempty"`
	Currency        string       `json:"currency"`
	SellerID        string       `json:"seller_id"`
	CreatedAt       time.Time    `json:"created_at"`
	StartAt         time.Time    `json:"start_at"`
	EndAt           time.Time    `json:"end_at"`
	State           ListingState `json:"state"`
	CurrentBid      int64        `json:"current_bid"`
	CurrentBidderID *string      `json:"current_bidder_id,omitempty"`
	BidCount        int          `json:"bid_count"`
	Version         int64        `json:"version"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// HasBids reports whether any bid has been accepted
func (l Listing) HasBids() bool {
	return l.CurrentBidderID != nil
}

// ReserveMet reports whether the current bid satisfies the reserve price
func (l Listing) ReserveMet() bool {
	return l.ReservePrice == nil || l.CurrentBid >= *l.ReservePrice
}

// TimeRemaining returns the time left until EndAt, never negative
func (l Listing) TimeRemaining(now time.Time) time.Duration {
	if !now.Before(l.EndAt) {
		return 0
	}
	return l.EndAt.Sub(now)
}

// ListingDraft is the caller-supplied input for a new listing
type ListingDraft struct {
	Title         string
	Description   string
	Category      string
	Condition     string
	StartingPrice int64
	ReservePrice  *int64
	Currency      string
	SellerID      string
	StartAt       time.Time
	EndAt         time.Time
	DurationDays  int
}

// Bid represents an accepted bid in a listing's ledger
type Bid struct {
	BidID     string    `json:"bid_id"`
	ListingID string    `json:"listing_id"`
	BidderID  string    `json:"bidder_id"`
	Amount    int64     `json:"amount"`
	Sequence  int64     `json:"sequence_number"`
	CreatedAt time.Time `json:"created_at"`
}

// BidRequest is an incoming bid before arbitration
type BidRequest struct {
	ListingID       string
	BidderID        string
	Amount          int64
	ClientTimestamp *time.Time
}

// WatchlistEntry pairs a user with a watched listing
type WatchlistEntry struct {
	UserID    string    `json:"user_id"`
	ListingID string    `json:"listing_id"`
	AddedAt   time.Time `json:"added_at"`
}
