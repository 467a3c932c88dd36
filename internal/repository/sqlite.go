package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"auction-engine/internal/biddingerrors"
	model "auction-engine/internal/models"
	"auction-engine/utils"

	_ "modernc.org/sqlite"
)

// SQLiteRepo is a durable AuctionDB backed by a single SQLite file
type SQLiteRepo struct {
	db *sql.DB
}

var _ AuctionDB = (*SQLiteRepo)(nil)

const listingColumns = `listing_id, title, description, category, item_condition,
	starting_price, reserve_price, currency, seller_id, created_at, start_at, end_at,
	state, current_bid, current_bidder_id, bid_count, version, updated_at`

// NewSQLiteRepo opens (or creates) the database at path and applies the schema
func NewSQLiteRepo(path string) (*SQLiteRepo, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// single connection: transactions never interleave
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	r := &SQLiteRepo{db: db}
	if err := r.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return r, nil
}

func (r *SQLiteRepo) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS listings (
			listing_id        TEXT PRIMARY KEY,
			title             TEXT NOT NULL,
			description       TEXT NOT NULL,
			category          TEXT NOT NULL,
			item_condition    TEXT NOT NULL,
			starting_price    INTEGER NOT NULL,
			reserve_price     INTEGER,
			currency          TEXT NOT NULL,
			seller_id         TEXT NOT NULL,
			created_at        INTEGER NOT NULL,
			start_at          INTEGER NOT NULL,
			end_at            INTEGER NOT NULL,
			state             TEXT NOT NULL,
			current_bid       INTEGER NOT NULL,
			current_bidder_id TEXT,
			bid_count         INTEGER NOT NULL DEFAULT 0,
			version           INTEGER NOT NULL,
			updated_at        INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_listings_state_end ON listings(state, end_at)`,
		`CREATE TABLE IF NOT EXISTS bids (
			listing_id TEXT NOT NULL,
			seq        INTEGER NOT NULL,
			bid_id     TEXT NOT NULL UNIQUE,
			bidder_id  TEXT NOT NULL,
			amount     INTEGER NOT NULL,
			created_at INTEGER NOT NULL,
			PRIMARY KEY (listing_id, seq)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bids_bidder ON bids(bidder_id)`,
		`CREATE TABLE IF NOT EXISTS watchlist (
			user_id    TEXT NOT NULL,
			listing_id TEXT NOT NULL,
			added_at   INTEGER NOT NULL,
			PRIMARY KEY (user_id, listing_id)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Close releases the database handle
func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, biddingerrors.ErrStorageFailure, err)
}

func toNanos(t time.Time) int64 {
	return t.UnixNano()
}

func fromNanos(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

func scanListing(row rowScanner) (model.Listing, error) {
	var (
		l                                   model.Listing
		reserve                             sql.NullInt64
		bidder                              sql.NullString
		state                               string
		createdAt, startAt, endAt, updateAt int64
	)
	err := row.Scan(
		&l.ListingID, &l.Title, &l.Description, &l.Category, &l.Condition,
		&l.StartingPrice, &reserve, &l.Currency, &l.SellerID, &createdAt, &startAt, &endAt,
		&state, &l.CurrentBid, &bidder, &l.BidCount, &l.Version, &updateAt,
	)
	if err != nil {
		return model.Listing{}, err
	}
	if reserve.Valid {
		v := reserve.Int64
		l.ReservePrice = &v
	}
	if bidder.Valid {
		v := bidder.String
		l.CurrentBidderID = &v
	}
	l.State = model.ListingState(state)
	l.CreatedAt = fromNanos(createdAt)
	l.StartAt = fromNanos(startAt)
	l.EndAt = fromNanos(endAt)
	l.UpdatedAt = fromNanos(updateAt)
	return l, nil
}

func getListing(ctx context.Context, q queryer, listingID string) (model.Listing, error) {
	row := q.QueryRowContext(ctx, `SELECT `+listingColumns+` FROM listings WHERE listing_id = ?`, listingID)
	l, err := scanListing(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, biddingerrors.ErrListingNotFound)
	}
	if err != nil {
		return model.Listing{}, storageErr("get listing "+listingID, err)
	}
	return l, nil
}

func (r *SQLiteRepo) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin tx", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return storageErr("commit tx", err)
	}
	return nil
}

// CreateListing stores a new listing at version 1 with no bids
func (r *SQLiteRepo) CreateListing(ctx context.Context, listing model.Listing) (model.Listing, error) {
	if listing.ListingID == "" {
		listing.ListingID = utils.GenerateID()
	}
	listing.Version = 1
	listing.BidCount = 0
	listing.CurrentBidderID = nil
	if listing.UpdatedAt.IsZero() {
		listing.UpdatedAt = listing.CreatedAt
	}
	listing.CreatedAt = listing.CreatedAt.UTC()
	listing.StartAt = listing.StartAt.UTC()
	listing.EndAt = listing.EndAt.UTC()
	listing.UpdatedAt = listing.UpdatedAt.UTC()

	var reserve sql.NullInt64
	if listing.ReservePrice != nil {
		reserve = sql.NullInt64{Int64: *listing.ReservePrice, Valid: true}
	}

	res, err := r.db.ExecContext(ctx, `INSERT INTO listings (`+listingColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL, 0, 1, ?)
		ON CONFLICT(listing_id) DO NOTHING`,
		listing.ListingID, listing.Title, listing.Description, listing.Category, listing.Condition,
		listing.StartingPrice, reserve, listing.Currency, listing.SellerID,
		toNanos(listing.CreatedAt), toNanos(listing.StartAt), toNanos(listing.EndAt),
		string(listing.State), listing.CurrentBid, toNanos(listing.UpdatedAt),
	)
	if err != nil {
		return model.Listing{}, storageErr("create listing "+listing.ListingID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Listing{}, fmt.Errorf("create listing %s: already exists: %w", listing.ListingID, biddingerrors.ErrVersionConflict)
	}
	return listing, nil
}

// GetListing returns the stored listing
func (r *SQLiteRepo) GetListing(ctx context.Context, listingID string) (model.Listing, error) {
	return getListing(ctx, r.db, listingID)
}

// ListListings returns all listings in creation order
func (r *SQLiteRepo) ListListings(ctx context.Context) ([]model.Listing, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+listingColumns+` FROM listings ORDER BY created_at, listing_id`)
	if err != nil {
		return nil, storageErr("list listings", err)
	}
	defer rows.Close()

	listings := make([]model.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, storageErr("scan listing", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list listings", err)
	}
	return listings, nil
}

// UpdateCurrentBid advances the current bid if the listing is still at expectedVersion
func (r *SQLiteRepo) UpdateCurrentBid(ctx context.Context, listingID string, expectedVersion, amount int64, bidderID string, at time.Time) (model.Listing, error) {
	var updated model.Listing
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		updated, err = applyBidTx(ctx, tx, listingID, expectedVersion, amount, bidderID, at)
		return err
	})
	if err != nil {
		return model.Listing{}, fmt.Errorf("update current bid %s: %w", listingID, err)
	}
	return updated, nil
}

// TransitionState moves the listing from one lifecycle state to another if it is
// still in from at expectedVersion
func (r *SQLiteRepo) TransitionState(ctx context.Context, listingID string, expectedVersion int64, from, to model.ListingState, at time.Time) (model.Listing, error) {
	if !model.CanTransition(from, to) {
		return model.Listing{}, fmt.Errorf("transition %s %s->%s: %w", listingID, from, to, biddingerrors.ErrInvalidTransition)
	}

	var updated model.Listing
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		current, err := getListing(ctx, tx, listingID)
		if err != nil {
			return err
		}
		if current.State != from {
			return fmt.Errorf("state is %s, expected %s: %w", current.State, from, biddingerrors.ErrVersionConflict)
		}
		if current.Version != expectedVersion {
			return fmt.Errorf("version %d, expected %d: %w", current.Version, expectedVersion, biddingerrors.ErrVersionConflict)
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE listings SET state = ?, version = version + 1, updated_at = ? WHERE listing_id = ? AND version = ?`,
			string(to), toNanos(at), listingID, expectedVersion)
		if err != nil {
			return storageErr("update state", err)
		}
		current.State = to
		current.Version++
		current.UpdatedAt = at.UTC()
		updated = current
		return nil
	})
	if err != nil {
		return model.Listing{}, fmt.Errorf("transition %s: %w", listingID, err)
	}
	return updated, nil
}

// AppendBid appends bid to the listing's ledger and returns its sequence number
func (r *SQLiteRepo) AppendBid(ctx context.Context, bid model.Bid) (int64, error) {
	var appended model.Bid
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := getListing(ctx, tx, bid.ListingID); err != nil {
			return err
		}
		var err error
		appended, err = appendBidTx(ctx, tx, bid)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("append bid for listing %s: %w", bid.ListingID, err)
	}
	return appended.Sequence, nil
}

// CommitBid applies the price update and the ledger append in one transaction
func (r *SQLiteRepo) CommitBid(ctx context.Context, expectedVersion int64, bid model.Bid) (model.Listing, model.Bid, error) {
	var (
		listing  model.Listing
		appended model.Bid
	)
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		listing, err = applyBidTx(ctx, tx, bid.ListingID, expectedVersion, bid.Amount, bid.BidderID, bid.CreatedAt)
		if err != nil {
			return err
		}
		appended, err = appendBidTx(ctx, tx, bid)
		return err
	})
	if err != nil {
		return model.Listing{}, model.Bid{}, fmt.Errorf("commit bid for listing %s: %w", bid.ListingID, err)
	}
	return listing, appended, nil
}

// BidHistory returns the listing's accepted bids, oldest first
func (r *SQLiteRepo) BidHistory(ctx context.Context, listingID string) ([]model.Bid, error) {
	if _, err := getListing(ctx, r.db, listingID); err != nil {
		return nil, fmt.Errorf("get bids for listing %s: %w", listingID, err)
	}
	return r.queryBids(ctx, `SELECT bid_id, listing_id, bidder_id, amount, seq, created_at
		FROM bids WHERE listing_id = ? ORDER BY seq`, listingID)
}

// BidsByBidder returns every bid placed by bidderID, grouped per listing in sequence order
func (r *SQLiteRepo) BidsByBidder(ctx context.Context, bidderID string) ([]model.Bid, error) {
	return r.queryBids(ctx, `SELECT bid_id, listing_id, bidder_id, amount, seq, created_at
		FROM bids WHERE bidder_id = ? ORDER BY listing_id, seq`, bidderID)
}

func (r *SQLiteRepo) queryBids(ctx context.Context, query string, arg string) ([]model.Bid, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, storageErr("query bids", err)
	}
	defer rows.Close()

	bids := make([]model.Bid, 0)
	for rows.Next() {
		var (
			b         model.Bid
			createdAt int64
		)
		if err := rows.Scan(&b.BidID, &b.ListingID, &b.BidderID, &b.Amount, &b.Sequence, &createdAt); err != nil {
			return nil, storageErr("scan bid", err)
		}
		b.CreatedAt = fromNanos(createdAt)
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("query bids", err)
	}
	return bids, nil
}

// AddWatch adds listingID to the user's watchlist. It reports false if it was already there.
func (r *SQLiteRepo) AddWatch(ctx context.Context, userID, listingID string, at time.Time) (bool, error) {
	if _, err := getListing(ctx, r.db, listingID); err != nil {
		return false, fmt.Errorf("watch listing %s: %w", listingID, err)
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO watchlist (user_id, listing_id, added_at) VALUES (?, ?, ?) ON CONFLICT DO NOTHING`,
		userID, listingID, toNanos(at))
	if err != nil {
		return false, storageErr("watch listing "+listingID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, storageErr("watch listing "+listingID, err)
	}
	return n > 0, nil
}

// RemoveWatch removes listingID from the user's watchlist. It reports false if it was absent.
func (r *SQLiteRepo) RemoveWatch(ctx context.Context, userID, listingID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM watchlist WHERE user_id = ? AND listing_id = ?`, userID, listingID)
	if err != nil {
		return false, storageErr("unwatch listing "+listingID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, storageErr("unwatch listing "+listingID, err)
	}
	return n > 0, nil
}

// IsWatching reports whether the user watches listingID
func (r *SQLiteRepo) IsWatching(ctx context.Context, userID, listingID string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM watchlist WHERE user_id = ? AND listing_id = ?`, userID, listingID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, storageErr("is watching", err)
	}
	return true, nil
}

// WatchedBy returns the user's watched listing ids, oldest addition first
func (r *SQLiteRepo) WatchedBy(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT listing_id FROM watchlist WHERE user_id = ? ORDER BY added_at, listing_id`, userID)
	if err != nil {
		return nil, storageErr("watched by "+userID, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, storageErr("scan watchlist", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("watched by "+userID, err)
	}
	return ids, nil
}

func applyBidTx(ctx context.Context, tx *sql.Tx, listingID string, expectedVersion, amount int64, bidderID string, at time.Time) (model.Listing, error) {
	current, err := getListing(ctx, tx, listingID)
	if err != nil {
		return model.Listing{}, err
	}
	if current.State.IsTerminal() {
		return model.Listing{}, fmt.Errorf("state %s: %w", current.State, biddingerrors.ErrListingNotActive)
	}
	if current.Version != expectedVersion {
		return model.Listing{}, fmt.Errorf("version %d, expected %d: %w", current.Version, expectedVersion, biddingerrors.ErrVersionConflict)
	}
	if amount <= current.CurrentBid {
		return model.Listing{}, fmt.Errorf("amount %d not above %d: %w", amount, current.CurrentBid, biddingerrors.ErrBidTooLow)
	}

	_, err = tx.ExecContext(ctx, `UPDATE listings
		SET current_bid = ?, current_bidder_id = ?, bid_count = bid_count + 1, version = version + 1, updated_at = ?
		WHERE listing_id = ? AND version = ?`,
		amount, bidderID, toNanos(at), listingID, expectedVersion)
	if err != nil {
		return model.Listing{}, storageErr("update listing", err)
	}

	bidder := bidderID
	current.CurrentBid = amount
	current.CurrentBidderID = &bidder
	current.BidCount++
	current.Version++
	current.UpdatedAt = at.UTC()
	return current, nil
}

func appendBidTx(ctx context.Context, tx *sql.Tx, bid model.Bid) (model.Bid, error) {
	var lastSeq, lastAmount int64
	err := tx.QueryRowContext(ctx,
		`SELECT seq, amount FROM bids WHERE listing_id = ? ORDER BY seq DESC LIMIT 1`, bid.ListingID,
	).Scan(&lastSeq, &lastAmount)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return model.Bid{}, storageErr("read ledger tail", err)
	case bid.Amount <= lastAmount:
		return model.Bid{}, fmt.Errorf("amount %d after %d: %w", bid.Amount, lastAmount, biddingerrors.ErrLedgerOrder)
	}

	if bid.BidID == "" {
		bid.BidID = utils.GenerateID()
	}
	bid.Sequence = lastSeq + 1
	bid.CreatedAt = bid.CreatedAt.UTC()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO bids (listing_id, seq, bid_id, bidder_id, amount, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		bid.ListingID, bid.Sequence, bid.BidID, bid.BidderID, bid.Amount, toNanos(bid.CreatedAt))
	if err != nil {
		return model.Bid{}, storageErr("insert bid", err)
	}
	return bid, nil
}
