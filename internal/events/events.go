package events

import (
	"errors"
	"time"

	model "auction-engine/internal/models"
)

// Type names what happened to a listing
type Type string

const (
	TypeListingCreated Type = "listing.created"
	TypeBidPlaced      Type = "bid.placed"
	TypeStateChanged   Type = "listing.state_changed"
)

// ErrPublisherClosed is returned when publishing to a closed publisher
var ErrPublisherClosed = errors.New("publisher is closed")

// Event is a change notification for a single listing
type Event struct {
	Type       Type               `json:"type" msgpack:"type"`
	ListingID  string             `json:"listing_id" msgpack:"listing_id"`
	Sequence   int64              `json:"sequence_number,omitempty" msgpack:"sequence_number"`
	Amount     int64              `json:"amount,omitempty" msgpack:"amount"`
	BidderID   string             `json:"bidder_id,omitempty" msgpack:"bidder_id"`
	State      model.ListingState `json:"state" msgpack:"state"`
	Version    int64              `json:"version" msgpack:"version"`
	OccurredAt time.Time          `json:"occurred_at" msgpack:"occurred_at"`
}

// Publisher delivers events to interested parties. Implementations must be
// safe for concurrent use; a failed publish never undoes the change it reports.
type Publisher interface {
	Publish(ev Event) error
}

// ListingCreated builds the event for a newly stored listing
func ListingCreated(l model.Listing) Event {
	return Event{
		Type:       TypeListingCreated,
		ListingID:  l.ListingID,
		Amount:     l.CurrentBid,
		State:      l.State,
		Version:    l.Version,
		OccurredAt: l.CreatedAt,
	}
}

// BidPlaced builds the event for an accepted bid
func BidPlaced(l model.Listing, b model.Bid) Event {
	return Event{
		Type:       TypeBidPlaced,
		ListingID:  l.ListingID,
		Sequence:   b.Sequence,
		Amount:     b.Amount,
		BidderID:   b.BidderID,
		State:      l.State,
		Version:    l.Version,
		OccurredAt: b.CreatedAt,
	}
}

// StateChanged builds the event for a lifecycle transition
func StateChanged(l model.Listing) Event {
	ev := Event{
		Type:       TypeStateChanged,
		ListingID:  l.ListingID,
		Amount:     l.CurrentBid,
		State:      l.State,
		Version:    l.Version,
		OccurredAt: l.UpdatedAt,
	}
	if l.CurrentBidderID != nil {
		ev.BidderID = *l.CurrentBidderID
	}
	return ev
}

// Nop discards every event
type Nop struct{}

func (Nop) Publish(Event) error { return nil }

// Multi fans an event out to several publishers and joins their errors
type Multi []Publisher

func (m Multi) Publish(ev Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
