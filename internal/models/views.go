package models

import "time"

// ListingSummary is the list-view projection of a listing
type ListingSummary struct {
	ListingID            string       `json:"listing_id"`
	Title                string       `json:"title"`
	Category             string       `json:"category"`
	Condition            string       `json:"condition"`
	Currency             string       `json:"currency"`
	CurrentBid           int64        `json:"current_bid"`
	CurrentBidDisplay    string       `json:"current_bid_display"`
	BidCount             int          `json:"bid_count"`
	SellerID             string       `json:"seller_id"`
	State                ListingState `json:"state"`
	EndAt                time.Time    `json:"end_at"`
	TimeRemainingSeconds int64        `json:"time_remaining_seconds"`
}

// ListingDetail is a full listing together with its bid history
type ListingDetail struct {
	Listing              Listing `json:"listing"`
	Bids                 []Bid   `json:"bids"`
	ReserveMet           bool    `json:"reserve_met"`
	TimeRemainingSeconds int64   `json:"time_remaining_seconds"`
}

// BidderStatus describes where a bidder stands on a listing
type BidderStatus string

const (
	BidderLeading BidderStatus = "leading"
	BidderOutbid  BidderStatus = "outbid"
	BidderWon     BidderStatus = "won"
	BidderLost    BidderStatus = "lost"
)

// BidderActivity summarises one user's participation in one listing
type BidderActivity struct {
	Listing   ListingSummary `json:"listing"`
	TopBid    int64          `json:"top_bid"`
	BidCount  int            `json:"bid_count"`
	LastBidAt time.Time      `json:"last_bid_at"`
	Status    BidderStatus   `json:"status"`
}
