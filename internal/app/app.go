package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/clock"
	"auction-engine/internal/config"
	"auction-engine/internal/events"
	"auction-engine/internal/lifecycle"
	listing "auction-engine/internal/listingService"
	"auction-engine/internal/query"
	"auction-engine/internal/reconcile"
	"auction-engine/internal/repository"
	"auction-engine/internal/seed"
	"auction-engine/internal/server"
	"auction-engine/internal/watchlist"
	handler "auction-engine/services/bidding/handler"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Option customizes how an App is assembled
type Option func(*options)

type options struct {
	clock clock.Clock
	repo  repository.AuctionDB
}

// WithClock replaces the system clock, for tests that need to move time
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithRepository uses repo instead of the store named in the config
func WithRepository(repo repository.AuctionDB) Option {
	return func(o *options) { o.repo = repo }
}

// App owns every long-lived component of the engine
type App struct {
	cfg   config.Config
	clock clock.Clock

	Repo       repository.AuctionDB
	Broker     *events.Broker
	Lifecycle  *lifecycle.Manager
	Bidding    *bidding.BiddingService
	Listings   *listing.ListingService
	Watchlist  *watchlist.Service
	Query      *query.Facade
	Reconciler *reconcile.Reconciler

	redisClient *redis.Client
	redisPub    *events.RedisPublisher
}

// New wires the engine described by cfg. The caller must Close the App.
func New(cfg config.Config, opts ...Option) (*App, error) {
	o := options{clock: clock.System{}}
	for _, opt := range opts {
		opt(&o)
	}

	repo := o.repo
	if repo == nil {
		var err error
		if repo, err = openRepository(cfg.Store); err != nil {
			return nil, err
		}
	}

	a := &App{cfg: cfg, clock: o.clock, Repo: repo, Broker: events.NewBroker()}

	var publisher events.Publisher = a.Broker
	if cfg.Redis.Addr != "" {
		a.redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pub, err := events.NewRedisPublisher(a.redisClient, cfg.Redis.Stream)
		if err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("app: redis publisher: %w", err)
		}
		pub.Start()
		a.redisPub = pub
		publisher = events.Multi{a.Broker, pub}
	}

	a.Lifecycle = lifecycle.NewManager(repo,
		lifecycle.WithClock(o.clock),
		lifecycle.WithPublisher(publisher),
		lifecycle.WithSweepInterval(cfg.Lifecycle.SweepInterval),
		lifecycle.WithWorkers(cfg.Lifecycle.Workers),
	)
	a.Bidding = bidding.NewBiddingService(repo,
		bidding.WithClock(o.clock),
		bidding.WithPublisher(publisher),
		bidding.WithProposer(a.Lifecycle),
		bidding.WithRetryPolicy(cfg.Bidding.MaxAttempts, cfg.Bidding.Backoff),
	)
	a.Listings = listing.NewListingService(repo,
		listing.WithClock(o.clock),
		listing.WithPublisher(publisher),
	)
	a.Watchlist = watchlist.NewService(repo, o.clock)
	a.Query = query.NewFacade(repo, o.clock)
	a.Reconciler = reconcile.New(repo)

	utils.Info("engine assembled", map[string]any{
		"store":        cfg.Store.Driver,
		"redis_stream": cfg.Redis.Addr != "",
	})
	return a, nil
}

func openRepository(cfg config.StoreConfig) (repository.AuctionDB, error) {
	switch cfg.Driver {
	case config.StoreMemory, "":
		return repository.NewMemoryRepo(), nil
	case config.StoreSQLite:
		repo, err := repository.NewSQLiteRepo(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("app: open sqlite store: %w", err)
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("app: unknown store driver %q", cfg.Driver)
	}
}

// Router builds the HTTP handler tree over the App's services
func (a *App) Router() *gin.Engine {
	return server.SetupRouter(server.Handlers{
		Bidding:   handler.NewBiddingHandler(a.Bidding),
		Listings:  handler.NewListingHandler(a.Listings, a.Query),
		Watchlist: handler.NewWatchlistHandler(a.Watchlist, a.Query),
		Events:    handler.NewEventsHandler(a.Broker, a.Query),
		Admin:     handler.NewAdminHandler(a.Lifecycle, a.Reconciler),
	})
}

// Seed loads the configured fixture file and, when enabled, the demo listings
func (a *App) Seed(ctx context.Context) error {
	var files []seed.File
	if a.cfg.Seed.File != "" {
		f, err := seed.LoadFile(a.cfg.Seed.File)
		if err != nil {
			return err
		}
		files = append(files, f)
	}
	if a.cfg.Seed.Demo {
		f, err := seed.Demo()
		if err != nil {
			return err
		}
		files = append(files, f)
	}

	for _, f := range files {
		if _, err := seed.Apply(ctx, a.Listings, f, a.clock.Now()); err != nil {
			return err
		}
	}
	return nil
}

// Start reconciles the store once and then starts the lifecycle manager
func (a *App) Start(ctx context.Context) error {
	if a.redisClient != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := a.redisClient.Ping(pingCtx).Err(); err != nil {
			utils.Warn("redis unreachable, events will be retried per message", map[string]any{
				"addr":  a.cfg.Redis.Addr,
				"error": err.Error(),
			})
		}
		cancel()
	}

	report, err := a.Reconciler.Run(ctx)
	if err != nil {
		return fmt.Errorf("app: startup reconciliation: %w", err)
	}
	if len(report.Unrecoverable) > 0 {
		utils.Warn("listings need manual repair", map[string]any{"count": len(report.Unrecoverable)})
	}

	if _, err := a.Lifecycle.Sweep(ctx); err != nil {
		return fmt.Errorf("app: startup sweep: %w", err)
	}
	a.Lifecycle.Start(ctx)
	return nil
}

// Close stops background work and releases the store
func (a *App) Close() error {
	if a.Lifecycle != nil {
		a.Lifecycle.Stop()
	}
	if a.redisPub != nil {
		a.redisPub.Close()
	}

	var errs []error
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	a.Broker.Close()
	if err := a.Repo.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close store: %w", err))
	}
	return errors.Join(errs...)
}
