// Package currency converts monetary amounts between the platform's
// currency codes through the EUR reference currency, using a rate snapshot
// fetched from the ECB daily feed.
package currency

import (
	"context"
	"fmt"
	"time"
)

// Reference is the pivot currency all conversions are routed through. Rates
// in a snapshot are multipliers from the reference currency, i.e.
// 1 EUR = rate target-units.
const Reference = "EUR"

// Rate is one entry of a snapshot.
type Rate struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}

// Snapshot is an immutable set of reference rates. A single matching pass
// must use one snapshot for all of its conversions, so callers pass the
// value explicitly instead of re-fetching per conversion.
type Snapshot struct {
	Rates     []Rate    `json:"rates"`
	FetchedAt time.Time `json:"fetched_at"`
}

// RateSource supplies the current snapshot. Implemented by RateCache;
// tests substitute a fixture.
type RateSource interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// CurrencyNotFoundError reports a code with no entry in the snapshot.
type CurrencyNotFoundError struct {
	Code string
}

func (e *CurrencyNotFoundError) Error() string {
	return fmt.Sprintf("currency not found: %s", e.Code)
}

// NewSnapshot builds a snapshot stamped with the fetch time.
func NewSnapshot(rates []Rate, fetchedAt time.Time) *Snapshot {
	return &Snapshot{Rates: rates, FetchedAt: fetchedAt}
}

func (s *Snapshot) rate(code string) (float64, bool) {
	for _, r := range s.Rates {
		if r.Currency == code {
			return r.Rate, true
		}
	}
	return 0, false
}

// Convert converts amount from one currency code to another through the
// reference currency. No rounding is applied; display rounding belongs to
// callers. Returns *CurrencyNotFoundError when a non-reference code has no
// rate entry.
func (s *Snapshot) Convert(amount float64, from, to string) (float64, error) {
	amountInReference := amount
	if from != Reference {
		rate, ok := s.rate(from)
		if !ok {
			return 0, &CurrencyNotFoundError{Code: from}
		}
		amountInReference = amount / rate
	}

	if to == Reference {
		return amountInReference, nil
	}

	rate, ok := s.rate(to)
	if !ok {
		return 0, &CurrencyNotFoundError{Code: to}
	}
	return amountInReference * rate, nil
}
