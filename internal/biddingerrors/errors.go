package biddingerrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Repository-level errors
var (
	ErrListingNotFound   = errors.New("listing not found")
	ErrNoBids            = errors.New("no bids found for listing")
	ErrVersionConflict   = errors.New("listing version conflict")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrLedgerOrder       = errors.New("ledger amount not strictly increasing")
	ErrStorageFailure    = errors.New("storage failure")
)

// business logic errors
var (
	ErrInvalidBid       = errors.New("invalid bid")
	ErrValidation       = errors.New("invalid listing draft")
	ErrListingNotActive = errors.New("listing not active")
	ErrSelfBid          = errors.New("seller cannot bid on own listing")
	ErrBidTooLow        = errors.New("bid amount too low")
	ErrContention       = errors.New("too much contention on listing")
)

// Reason codes returned to callers with a rejected request
const (
	ReasonNotFound         = "NOT_FOUND"
	ReasonListingNotActive = "LISTING_NOT_ACTIVE"
	ReasonSelfBid          = "SELF_BID"
	ReasonBidTooLow        = "BID_TOO_LOW"
	ReasonContention       = "CONTENTION"
	ReasonValidation       = "VALIDATION_ERROR"
	ReasonStorageFailure   = "STORAGE_FAILURE"
	ReasonInternal         = "INTERNAL"
)

// Reason maps an error chain to its reason code
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrListingNotFound):
		return ReasonNotFound
	case errors.Is(err, ErrListingNotActive):
		return ReasonListingNotActive
	case errors.Is(err, ErrSelfBid):
		return ReasonSelfBid
	case errors.Is(err, ErrBidTooLow):
		return ReasonBidTooLow
	case errors.Is(err, ErrContention):
		return ReasonContention
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidBid):
		return ReasonValidation
	case errors.Is(err, ErrStorageFailure):
		return ReasonStorageFailure
	default:
		return ReasonInternal
	}
}

// ValidationError lists every field problem found in a draft.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns an empty ValidationError ready for Add
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a problem with field
func (e *ValidationError) Add(field, problem string) {
	e.Fields[field] = problem
}

// HasErrors reports whether any field problem was recorded
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
