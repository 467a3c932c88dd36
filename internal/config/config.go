package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. AUCTION_SERVER_ADDR
const EnvPrefix = "AUCTION"

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Bid requests are synchronous, so the retry budget stays small
const (
	maxBidAttempts = 20
	maxBidBackoff  = 100 * time.Millisecond
)

// Config is the full runtime configuration of the engine
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Store     StoreConfig
	Bidding   BiddingConfig
	Lifecycle LifecycleConfig
	Redis     RedisConfig
	Seed      SeedConfig
}

type ServerConfig struct {
	Addr            string
	GinMode         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type StoreConfig struct {
	Driver     string
	SQLitePath string
}

type BiddingConfig struct {
	MaxAttempts int
	Backoff     time.Duration
}

type LifecycleConfig struct {
	SweepInterval time.Duration
	Workers       int
}

// RedisConfig enables the bid event stream when Addr is set
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Stream   string
}

type SeedConfig struct {
	File string
	Demo bool
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("auction-engine", pflag.ContinueOnError)

	// server config
	fs.String("server-addr", ":8080", "HTTP listen address")
	fs.String("gin-mode", "release", "gin mode: debug, release or test")
	fs.Duration("read-timeout", 10*time.Second, "HTTP read timeout")
	fs.Duration("write-timeout", 0, "HTTP write timeout (0 keeps event streams open)")
	fs.Duration("shutdown-timeout", 10*time.Second, "graceful shutdown deadline")

	// log config
	fs.String("log-level", "info", "debug, info, warn or error")
	fs.String("log-file", "", "also write logs to this rotating file")
	fs.Int("log-max-size-mb", 100, "rotate the log file after this many megabytes")
	fs.Int("log-max-backups", 5, "rotated log files to keep")
	fs.Int("log-max-age-days", 28, "days to keep rotated log files")

	// store config
	fs.String("store-driver", StoreMemory, "memory or sqlite")
	fs.String("sqlite-path", "data/auction.db", "SQLite database file")

	// bidding config
	fs.Int("bid-max-attempts", 5, "optimistic retries per bid before reporting contention")
	fs.Duration("bid-backoff", 2*time.Millisecond, "base backoff between bid retries")

	// lifecycle config
	fs.Duration("sweep-interval", time.Second, "how often listings are checked for state changes")
	fs.Int("sweep-workers", 4, "listings evaluated in parallel per sweep")

	// redis config
	fs.String("redis-addr", "", "Redis address; empty disables the event stream")
	fs.String("redis-password", "", "")
	fs.Int("redis-db", 0, "")
	fs.String("redis-stream", "auction-events", "Redis stream that receives bid events")

	// seed config
	fs.String("seed-file", "", "YAML file of listings to load at startup")
	fs.Bool("seed-demo", false, "load the built-in demo listings at startup")

	return fs
}

// Load reads configuration from args, then AUCTION_* environment variables,
// then a .env file in the working directory if present
func Load(args []string) (Config, error) {
	_ = godotenv.Load()

	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}
	v.AutomaticEnv()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	cfg := Config{
		Server: ServerConfig{
			Addr:            v.GetString("server-addr"),
			GinMode:         v.GetString("gin-mode"),
			ReadTimeout:     v.GetDuration("read-timeout"),
			WriteTimeout:    v.GetDuration("write-timeout"),
			ShutdownTimeout: v.GetDuration("shutdown-timeout"),
		},
		Log: LogConfig{
			Level:      v.GetString("log-level"),
			File:       v.GetString("log-file"),
			MaxSizeMB:  v.GetInt("log-max-size-mb"),
			MaxBackups: v.GetInt("log-max-backups"),
			MaxAgeDays: v.GetInt("log-max-age-days"),
		},
		Store: StoreConfig{
			Driver:     strings.ToLower(v.GetString("store-driver")),
			SQLitePath: v.GetString("sqlite-path"),
		},
		Bidding: BiddingConfig{
			MaxAttempts: v.GetInt("bid-max-attempts"),
			Backoff:     v.GetDuration("bid-backoff"),
		},
		Lifecycle: LifecycleConfig{
			SweepInterval: v.GetDuration("sweep-interval"),
			Workers:       v.GetInt("sweep-workers"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis-addr"),
			Password: v.GetString("redis-password"),
			DB:       v.GetInt("redis-db"),
			Stream:   v.GetString("redis-stream"),
		},
		Seed: SeedConfig{
			File: v.GetString("seed-file"),
			Demo: v.GetBool("seed-demo"),
		},
	}
	return cfg, cfg.Validate()
}

// Validate reports every invalid setting at once
func (c Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server-addr must not be empty"))
	}
	switch c.Server.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("gin-mode %q is not one of debug, release, test", c.Server.GinMode))
	}
	switch c.Store.Driver {
	case StoreMemory:
	case StoreSQLite:
		if c.Store.SQLitePath == "" {
			errs = append(errs, errors.New("sqlite-path is required with store-driver=sqlite"))
		}
	default:
		errs = append(errs, fmt.Errorf("store-driver %q is not one of memory, sqlite", c.Store.Driver))
	}
	if c.Bidding.MaxAttempts < 1 || c.Bidding.MaxAttempts > maxBidAttempts {
		errs = append(errs, fmt.Errorf("bid-max-attempts must be between 1 and %d", maxBidAttempts))
	}
	if c.Bidding.Backoff <= 0 || c.Bidding.Backoff > maxBidBackoff {
		errs = append(errs, fmt.Errorf("bid-backoff must be positive and at most %s", maxBidBackoff))
	}
	if c.Lifecycle.SweepInterval <= 0 {
		errs = append(errs, errors.New("sweep-interval must be positive"))
	}
	if c.Lifecycle.Workers < 1 {
		errs = append(errs, errors.New("sweep-workers must be at least 1"))
	}
	if c.Redis.Addr != "" && c.Redis.Stream == "" {
		errs = append(errs, errors.New("redis-stream is required when redis-addr is set"))
	}
	return errors.Join(errs...)
}
