package helpers

import (
	"strings"
	"time"

	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/models"
	"auction-engine/internal/query"
	"auction-engine/utils"
)

// Request/Response DTOs. Money is always integer minor units (cents for USD).

type PlaceBidRequest struct {
	ListingID       string     `json:"listing_id" binding:"required"`
	BidderID        string     `json:"bidder_id" binding:"required"`
	Amount          int64      `json:"amount" binding:"required,gt=0"`
	ClientTimestamp *time.Time `json:"client_timestamp,omitempty"`
}

func (r PlaceBidRequest) ToBidRequest() models.BidRequest {
	return models.BidRequest{
		ListingID:       strings.TrimSpace(r.ListingID),
		BidderID:        strings.TrimSpace(r.BidderID),
		Amount:          r.Amount,
		ClientTimestamp: r.ClientTimestamp,
	}
}

type BidResponse struct {
	Accepted             bool   `json:"accepted"`
	BidID                string `json:"bid_id"`
	ListingID            string `json:"listing_id"`
	BidderID             string `json:"bidder_id"`
	Amount               int64  `json:"amount"`
	SequenceNumber       int64  `json:"sequence_number"`
	NewCurrentBid        int64  `json:"new_current_bid"`
	NewCurrentBidDisplay string `json:"new_current_bid_display"`
	BidCount             int    `json:"bid_count"`
	CreatedAt            string `json:"created_at"`
}

func NewBidResponse(res bidding.BidResult) BidResponse {
	return BidResponse{
		Accepted:             true,
		BidID:                res.Bid.BidID,
		ListingID:            res.Bid.ListingID,
		BidderID:             res.Bid.BidderID,
		Amount:               res.Bid.Amount,
		SequenceNumber:       res.Bid.Sequence,
		NewCurrentBid:        res.Listing.CurrentBid,
		NewCurrentBidDisplay: utils.FormatMinor(res.Listing.CurrentBid, res.Listing.Currency),
		BidCount:             res.Listing.BidCount,
		CreatedAt:            res.Bid.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// BidRejection is the payload sent with a refused bid
type BidRejection struct {
	Accepted   bool   `json:"accepted"`
	Reason     string `json:"reason"`
	CurrentBid *int64 `json:"current_bid,omitempty"`
}

type CreateListingRequest struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Condition     string     `json:"condition"`
	StartingPrice int64      `json:"starting_price"`
	ReservePrice  *int64     `json:"reserve_price,omitempty"`
	Currency      string     `json:"currency"`
	SellerID      string     `json:"seller_id" binding:"required"`
	StartAt       *time.Time `json:"start_at,omitempty"`
	EndAt         *time.Time `json:"end_at,omitempty"`
	DurationDays  int        `json:"duration_days"`
}

func (r CreateListingRequest) ToDraft() models.ListingDraft {
	draft := models.ListingDraft{
		Title:         r.Title,
		Description:   r.Description,
		Category:      r.Category,
		Condition:     r.Condition,
		StartingPrice: r.StartingPrice,
		ReservePrice:  r.ReservePrice,
		Currency:      r.Currency,
		SellerID:      strings.TrimSpace(r.SellerID),
		DurationDays:  r.DurationDays,
	}
	if r.StartAt != nil {
		draft.StartAt = *r.StartAt
	}
	if r.EndAt != nil {
		draft.EndAt = *r.EndAt
	}
	return draft
}

// ListingsQuery binds the query string of GET /listings
type ListingsQuery struct {
	Category  string   `form:"category"`
	Condition string   `form:"condition"`
	MinPrice  *int64   `form:"min_price" binding:"omitempty,gte=0"`
	MaxPrice  *int64   `form:"max_price" binding:"omitempty,gte=0"`
	Search    string   `form:"q"`
	SellerID  string   `form:"seller_id"`
	States    []string `form:"state"`
	Sort      string   `form:"sort"`
	Limit     int      `form:"limit" binding:"omitempty,gte=0"`
	Offset    int      `form:"offset" binding:"omitempty,gte=0"`
}

// ToFilter accepts states both repeated (?state=a&state=b) and comma separated
func (q ListingsQuery) ToFilter() query.Filter {
	var states []models.ListingState
	for _, raw := range q.States {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				states = append(states, models.ListingState(strings.ToLower(s)))
			}
		}
	}
	return query.Filter{
		Category:  q.Category,
		Condition: q.Condition,
		MinPrice:  q.MinPrice,
		MaxPrice:  q.MaxPrice,
		Search:    q.Search,
		SellerID:  q.SellerID,
		States:    states,
		Sort:      query.SortKey(strings.ToLower(q.Sort)),
		Limit:     q.Limit,
		Offset:    q.Offset,
	}
}

type WatchResponse struct {
	UserID    string `json:"user_id"`
	ListingID string `json:"listing_id"`
	Watching  bool   `json:"watching"`
	Changed   bool   `json:"changed"`
}
