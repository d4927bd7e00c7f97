// Package analyzer provides read-only ranking over an account's operation
// history. It holds no state of its own.
package analyzer

import (
	"fmt"
	"sort"

	"github.com/dvloznov/bank-system/internal/ledger"
)

// Sort keys accepted by Rank.
const (
	SortByAmount = "amount"
	SortByDate   = "date"
)

// ErrInvalidSortKey means sortBy was neither "amount" nor "date".
var ErrInvalidSortKey = fmt.Errorf("sort key must be %q or %q", SortByAmount, SortByDate)

// HistorySource is anything exposing a timestamp-ordered operation history.
// *account.Account satisfies it.
type HistorySource interface {
	History() []ledger.Record
}

// Rank returns up to n successful records from src's history, sorted by the
// given key: "amount" orders by amount descending with ties broken by latest
// timestamp first, "date" orders by latest timestamp first. Records whose
// status is not exactly "success" are excluded, so an empty or all-failed
// history yields an empty result.
func Rank(src HistorySource, n int, sortBy string) ([]ledger.Record, error) {
	var successes []ledger.Record
	for _, rec := range src.History() {
		if rec.Status == ledger.StatusSuccess {
			successes = append(successes, rec)
		}
	}

	switch sortBy {
	case SortByAmount:
		sort.SliceStable(successes, func(i, j int) bool {
			if !successes[i].Amount.Equal(successes[j].Amount) {
				return successes[i].Amount.GreaterThan(successes[j].Amount)
			}
			return successes[i].Timestamp.After(successes[j].Timestamp)
		})
	case SortByDate:
		sort.SliceStable(successes, func(i, j int) bool {
			return successes[i].Timestamp.After(successes[j].Timestamp)
		})
	default:
		return nil, fmt.Errorf("%w, got %q", ErrInvalidSortKey, sortBy)
	}

	if n < 0 {
		n = 0
	}
	if n > len(successes) {
		n = len(successes)
	}
	return successes[:n], nil
}
