package reconcile

import (
	"context"
	"fmt"

	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
)

const maxRechecks = 3

// Finding describes a listing whose price and ledger disagree beyond repair
type Finding struct {
	ListingID string `json:"listing_id"`
	Detail    string `json:"detail"`
}

// Report is the outcome of one reconciliation pass
type Report struct {
	Checked       int       `json:"checked"`
	Repaired      []string  `json:"repaired"`
	Unrecoverable []Finding `json:"unrecoverable"`
}

// Reconciler cross-checks each listing's current bid against its ledger tail
type Reconciler struct {
	repo repository.AuctionDB
}

// New creates a Reconciler over repo
func New(repo repository.AuctionDB) *Reconciler {
	return &Reconciler{repo: repo}
}

// Run checks every listing. A listing that is exactly one ledger entry ahead
// of its ledger gets that entry rebuilt from the listing itself; any other
// mismatch is reported and left untouched.
func (r *Reconciler) Run(ctx context.Context) (Report, error) {
	listings, err := r.repo.ListListings(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("reconcile: list listings: %w", err)
	}

	report := Report{Repaired: []string{}, Unrecoverable: []Finding{}}
	for _, l := range listings {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Checked++

		l, bids, problem, err := r.settle(ctx, l)
		if err != nil {
			return report, err
		}
		if problem == "" {
			continue
		}

		if repairable(l, bids) {
			bid := model.Bid{
				BidID:     utils.GenerateID(),
				ListingID: l.ListingID,
				BidderID:  *l.CurrentBidderID,
				Amount:    l.CurrentBid,
				CreatedAt: l.UpdatedAt,
			}
			seq, err := r.repo.AppendBid(ctx, bid)
			if err == nil {
				utils.Warn("rebuilt missing ledger entry", map[string]any{
					"listing_id": l.ListingID,
					"sequence":   seq,
					"amount":     l.CurrentBid,
				})
				report.Repaired = append(report.Repaired, l.ListingID)
				continue
			}
			problem = fmt.Sprintf("%s; repair failed: %v", problem, err)
		}

		utils.Error("listing and ledger disagree", map[string]any{"listing_id": l.ListingID, "detail": problem})
		report.Unrecoverable = append(report.Unrecoverable, Finding{ListingID: l.ListingID, Detail: problem})
	}

	utils.Info("reconciliation finished", map[string]any{
		"checked":       report.Checked,
		"repaired":      len(report.Repaired),
		"unrecoverable": len(report.Unrecoverable),
	})
	return report, nil
}

// settle pairs l with its ledger. A mismatch only counts when the listing
// version is unchanged after the ledger read; a listing that keeps moving
// is left for the next pass.
func (r *Reconciler) settle(ctx context.Context, l model.Listing) (model.Listing, []model.Bid, string, error) {
	for attempt := 1; ; attempt++ {
		bids, err := r.repo.BidHistory(ctx, l.ListingID)
		if err != nil {
			return l, nil, "", fmt.Errorf("reconcile: bids for %s: %w", l.ListingID, err)
		}
		problem := mismatch(l, bids)
		if problem == "" {
			return l, bids, "", nil
		}

		fresh, err := r.repo.GetListing(ctx, l.ListingID)
		if err != nil {
			return l, nil, "", fmt.Errorf("reconcile: reread %s: %w", l.ListingID, err)
		}
		if fresh.Version == l.Version {
			return l, bids, problem, nil
		}
		if attempt == maxRechecks {
			utils.Warn("listing changed during reconciliation, skipped", map[string]any{"listing_id": l.ListingID})
			return fresh, bids, "", nil
		}
		l = fresh
	}
}

// mismatch returns a description of how l disagrees with its ledger, or ""
func mismatch(l model.Listing, bids []model.Bid) string {
	if len(bids) == 0 {
		if l.BidCount == 0 && l.CurrentBidderID == nil && l.CurrentBid == l.StartingPrice {
			return ""
		}
		return fmt.Sprintf("ledger empty but listing shows %d bids at %d", l.BidCount, l.CurrentBid)
	}

	tail := bids[len(bids)-1]
	switch {
	case l.BidCount != len(bids):
		return fmt.Sprintf("listing shows %d bids, ledger has %d", l.BidCount, len(bids))
	case l.CurrentBid != tail.Amount:
		return fmt.Sprintf("current bid %d, ledger tail %d", l.CurrentBid, tail.Amount)
	case l.CurrentBidderID == nil || *l.CurrentBidderID != tail.BidderID:
		return fmt.Sprintf("current bidder differs from ledger tail bidder %s", tail.BidderID)
	}
	return ""
}

// repairable reports whether the only damage is one missing tail entry
func repairable(l model.Listing, bids []model.Bid) bool {
	if l.CurrentBidderID == nil || l.BidCount != len(bids)+1 {
		return false
	}
	floor := l.StartingPrice
	if len(bids) > 0 {
		floor = bids[len(bids)-1].Amount
	}
	return l.CurrentBid > floor
}
