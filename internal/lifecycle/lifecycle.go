package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/clock"
	"auction-engine/internal/events"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"

	"golang.org/x/sync/errgroup"
)

const (
	defaultSweepInterval = time.Second
	defaultWorkers       = 4
	defaultQueueSize     = 256

	// scheduled -> active -> ended is at most two steps; the rest absorbs CAS losses
	maxEvaluateSteps = 8
)

// NextState returns the state a listing should be in at now. It never moves
// a terminal listing and never skips straight from scheduled to ended.
func NextState(l model.Listing, now time.Time) model.ListingState {
	switch l.State {
	case model.StateScheduled:
		if !now.Before(l.StartAt) {
			return model.StateActive
		}
	case model.StateActive:
		if now.Before(l.EndAt) {
			return model.StateActive
		}
		switch {
		case !l.HasBids():
			return model.StateEndedUnsold
		case !l.ReserveMet():
			return model.StateEndedReserveNotMet
		default:
			return model.StateEndedSold
		}
	}
	return l.State
}

// SweepReport summarises one pass over the non-terminal listings
type SweepReport struct {
	Evaluated    int `json:"evaluated"`
	Transitioned int `json:"transitioned"`
	Failed       int `json:"failed"`
}

// Option configures a Manager
type Option func(*Manager)

// WithClock sets the time source
func WithClock(c clock.Clock) Option {
	return func(m *Manager) { m.clock = c }
}

// WithPublisher sets where transitions are announced
func WithPublisher(p events.Publisher) Option {
	return func(m *Manager) { m.publisher = p }
}

// WithSweepInterval sets how often Start sweeps all listings
func WithSweepInterval(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithWorkers bounds how many listings a sweep evaluates at once
func WithWorkers(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.workers = n
		}
	}
}

// WithQueueSize sets how many proposals may wait before new ones are dropped
func WithQueueSize(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.queueSize = n
		}
	}
}

// Manager is the only component that moves listings between lifecycle states
type Manager struct {
	repo      repository.ListingStore
	clock     clock.Clock
	publisher events.Publisher
	interval  time.Duration
	workers   int
	queueSize int

	proposals chan string

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

// NewManager creates a lifecycle manager over repo
func NewManager(repo repository.ListingStore, opts ...Option) *Manager {
	m := &Manager{
		repo:      repo,
		clock:     clock.System{},
		publisher: events.Nop{},
		interval:  defaultSweepInterval,
		workers:   defaultWorkers,
		queueSize: defaultQueueSize,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.proposals = make(chan string, m.queueSize)
	return m
}

// Evaluate brings one listing up to date, applying as many transitions as the
// clock implies. It returns the listing as last observed.
func (m *Manager) Evaluate(ctx context.Context, listingID string) (model.Listing, error) {
	var listing model.Listing
	for step := 0; step < maxEvaluateSteps; step++ {
		var err error
		listing, err = m.repo.GetListing(ctx, listingID)
		if err != nil {
			return model.Listing{}, fmt.Errorf("lifecycle: load listing %s: %w", listingID, err)
		}

		now := m.clock.Now()
		next := NextState(listing, now)
		if next == listing.State {
			return listing, nil
		}

		updated, err := m.repo.TransitionState(ctx, listingID, listing.Version, listing.State, next, now)
		if errors.Is(err, biddingerrors.ErrVersionConflict) {
			// a bid or another evaluator moved it; decide again on fresh data
			continue
		}
		if err != nil {
			return listing, fmt.Errorf("lifecycle: transition listing %s to %s: %w", listingID, next, err)
		}

		utils.Info("listing state changed", map[string]any{
			"listing_id":  listingID,
			"from":        listing.State,
			"to":          next,
			"current_bid": updated.CurrentBid,
			"bid_count":   updated.BidCount,
		})
		if err := m.publisher.Publish(events.StateChanged(updated)); err != nil {
			utils.Warn("failed to publish state change", map[string]any{"listing_id": listingID, "error": err.Error()})
		}
	}
	return listing, fmt.Errorf("lifecycle: listing %s still changing after %d steps: %w", listingID, maxEvaluateSteps, biddingerrors.ErrContention)
}

// Sweep evaluates every non-terminal listing. It is safe to run alongside
// bidding and alongside other sweeps.
func (m *Manager) Sweep(ctx context.Context) (SweepReport, error) {
	listings, err := m.repo.ListListings(ctx)
	if err != nil {
		return SweepReport{}, fmt.Errorf("lifecycle: list listings: %w", err)
	}

	var evaluated, transitioned, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)

	for _, l := range listings {
		if l.State.IsTerminal() {
			continue
		}
		l := l
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			evaluated.Add(1)
			after, err := m.Evaluate(gctx, l.ListingID)
			if err != nil {
				failed.Add(1)
				utils.Warn("lifecycle evaluation failed", map[string]any{"listing_id": l.ListingID, "error": err.Error()})
				return nil
			}
			if after.State != l.State {
				transitioned.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	report := SweepReport{
		Evaluated:    int(evaluated.Load()),
		Transitioned: int(transitioned.Load()),
		Failed:       int(failed.Load()),
	}
	if report.Transitioned > 0 || report.Failed > 0 {
		utils.Info("lifecycle sweep finished", map[string]any{
			"evaluated":    report.Evaluated,
			"transitioned": report.Transitioned,
			"failed":       report.Failed,
		})
	}
	return report, ctx.Err()
}

// Propose asks for listingID to be evaluated soon. It never blocks; when the
// queue is full the request is dropped and the next sweep picks the listing up.
func (m *Manager) Propose(listingID string) {
	select {
	case m.proposals <- listingID:
	default:
		utils.Debug("lifecycle proposal dropped, queue full", map[string]any{"listing_id": listingID})
	}
}

// Start runs the periodic sweeper and the proposal drain until Stop or ctx ends
func (m *Manager) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.running = true

	m.wg.Add(2)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := m.Sweep(ctx); err != nil && !errors.Is(err, context.Canceled) {
					utils.Error("lifecycle sweep failed", map[string]any{"error": err.Error()})
				}
			}
		}
	}()
	go func() {
		defer m.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case id := <-m.proposals:
				if _, err := m.Evaluate(ctx, id); err != nil && !errors.Is(err, context.Canceled) {
					utils.Warn("proposed evaluation failed", map[string]any{"listing_id": id, "error": err.Error()})
				}
			}
		}
	}()
	utils.Info("lifecycle manager started", map[string]any{"sweep_interval": m.interval.String(), "workers": m.workers})
}

// Stop halts background work and waits for it to finish
func (m *Manager) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	m.cancel()
	m.mu.Unlock()

	m.wg.Wait()
	utils.Info("lifecycle manager stopped", nil)
}
