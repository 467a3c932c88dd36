package events

import (
	"context"
	"sync"

	"github.com/smallnest/chanx"
)

// Broker is an in-process Publisher that fans events out to per-listing subscribers.
// Subscriber buffers are unbounded so a slow reader never blocks a bid.
type Broker struct {
	mu     sync.RWMutex
	subs   map[string]map[*Subscription]struct{} // key: listingID ("" for all listings)
	closed bool
}

// Subscription receives events for one listing, or all listings when created with ""
type Subscription struct {
	listingID string
	ch        *chanx.UnboundedChan[Event]
	ctx       context.Context
	cancel    context.CancelFunc
	broker    *Broker
	once      sync.Once
}

var _ Publisher = (*Broker)(nil)

// NewBroker creates an empty broker
func NewBroker() *Broker {
	return &Broker{subs: make(map[string]map[*Subscription]struct{})}
}

// Subscribe registers a subscriber for listingID. The caller must Close it.
func (b *Broker) Subscribe(listingID string) (*Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrPublisherClosed
	}

	ctx, cancel := context.WithCancel(context.Background())
	sub := &Subscription{
		listingID: listingID,
		ch:        chanx.NewUnboundedChan[Event](ctx, 16),
		ctx:       ctx,
		cancel:    cancel,
		broker:    b,
	}
	set, ok := b.subs[listingID]
	if !ok {
		set = make(map[*Subscription]struct{})
		b.subs[listingID] = set
	}
	set[sub] = struct{}{}
	return sub, nil
}

// Publish delivers ev to the listing's subscribers and to catch-all subscribers
func (b *Broker) Publish(ev Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrPublisherClosed
	}
	for _, key := range []string{ev.ListingID, ""} {
		for sub := range b.subs[key] {
			select {
			case sub.ch.In <- ev:
			case <-sub.ctx.Done():
			}
		}
	}
	return nil
}

// Subscribers returns the number of live subscribers for listingID
func (b *Broker) Subscribers(listingID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[listingID])
}

// Close ends every subscription and rejects further publishes
func (b *Broker) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	var all []*Subscription
	for _, set := range b.subs {
		for sub := range set {
			all = append(all, sub)
		}
	}
	b.subs = make(map[string]map[*Subscription]struct{})
	b.mu.Unlock()

	for _, sub := range all {
		sub.once.Do(sub.cancel)
	}
}

func (b *Broker) remove(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if set, ok := b.subs[sub.listingID]; ok {
		delete(set, sub)
		if len(set) == 0 {
			delete(b.subs, sub.listingID)
		}
	}
}

// Events returns the delivery channel. It is closed once the subscription ends.
func (s *Subscription) Events() <-chan Event {
	return s.ch.Out
}

// Close unregisters the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.broker.remove(s)
		s.cancel()
	})
}
