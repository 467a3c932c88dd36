package models

import "time"

// Categories accepted on listing drafts
var Categories = []string{
	"electronics",
	"collectibles",
	"fashion",
	"home",
	"art",
	"jewelry",
	"sports",
	"toys",
	"books",
	"other",
}

// Conditions accepted on listing drafts
var Conditions = []string{
	"new",
	"like-new",
	"excellent",
	"good",
	"fair",
	"poor",
}

// DurationPresets are the auction lengths offered to sellers, in days
var DurationPresets = []int{1, 3, 5, 7, 10, 14}

// MaxAuctionDuration bounds how far in the future EndAt may be from StartAt
const MaxAuctionDuration = 30 * 24 * time.Hour

// DefaultCurrency is used when a draft omits the currency code
const DefaultCurrency = "USD"
