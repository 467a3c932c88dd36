package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"auction-engine/internal/models"
	"auction-engine/utils"

	"gopkg.in/yaml.v3"
)

//go:embed listings.yaml
var demoListings []byte

// Creator stores validated listings
type Creator interface {
	CreateListing(ctx context.Context, draft models.ListingDraft) (models.Listing, error)
}

// File is the on-disk shape of a fixture file
type File struct {
	Listings []Listing `yaml:"listings"`
}

// Listing is one fixture entry. Prices are major-unit strings such as "12.50".
type Listing struct {
	Title         string `yaml:"title"`
	Description   string `yaml:"description"`
	Category      string `yaml:"category"`
	Condition     string `yaml:"condition"`
	StartingPrice string `yaml:"starting_price"`
	ReservePrice  string `yaml:"reserve_price"`
	Currency      string `yaml:"currency"`
	SellerID      string `yaml:"seller_id"`
	DurationDays  int    `yaml:"duration_days"`
	StartsIn      string `yaml:"starts_in"`
}

// Parse decodes fixture YAML
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("seed: parse yaml: %w", err)
	}
	return f, nil
}

// Demo returns the built-in demo fixtures
func Demo() (File, error) {
	return Parse(demoListings)
}

// LoadFile reads fixtures from path
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("seed: read %s: %w", path, err)
	}
	return Parse(data)
}

// Draft converts the entry into a listing draft relative to now
func (l Listing) Draft(now time.Time) (models.ListingDraft, error) {
	currency := l.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}

	starting, err := utils.ParseMajor(l.StartingPrice, currency)
	if err != nil {
		return models.ListingDraft{}, fmt.Errorf("starting_price: %w", err)
	}

	var reserve *int64
	if l.ReservePrice != "" {
		r, err := utils.ParseMajor(l.ReservePrice, currency)
		if err != nil {
			return models.ListingDraft{}, fmt.Errorf("reserve_price: %w", err)
		}
		reserve = &r
	}

	startAt := now
	if l.StartsIn != "" {
		offset, err := time.ParseDuration(l.StartsIn)
		if err != nil {
			return models.ListingDraft{}, fmt.Errorf("starts_in: %w", err)
		}
		startAt = now.Add(offset)
	}

	return models.ListingDraft{
		Title:         l.Title,
		Description:   l.Description,
		Category:      l.Category,
		Condition:     l.Condition,
		StartingPrice: starting,
		ReservePrice:  reserve,
		Currency:      currency,
		SellerID:      l.SellerID,
		StartAt:       startAt,
		DurationDays:  l.DurationDays,
	}, nil
}

// Apply creates every fixture through c and returns the stored listings.
// It stops at the first entry that fails to convert or validate.
func Apply(ctx context.Context, c Creator, f File, now time.Time) ([]models.Listing, error) {
	created := make([]models.Listing, 0, len(f.Listings))
	for i, entry := range f.Listings {
		draft, err := entry.Draft(now)
		if err != nil {
			return created, fmt.Errorf("seed: listing %d (%q): %w", i, entry.Title, err)
		}
		listing, err := c.CreateListing(ctx, draft)
		if err != nil {
			return created, fmt.Errorf("seed: listing %d (%q): %w", i, entry.Title, err)
		}
		created = append(created, listing)
	}

	utils.Info("seed listings loaded", map[string]any{"count": len(created)})
	return created, nil
}
