// Package ledger keeps the per-account operation history. The ledger is the
// audit trail of record: every executed operation lands here, including failed
// attempts, and entries are never updated or removed.
package ledger

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Operation kinds recorded in the ledger.
const (
	OpDeposit  = "deposit"
	OpWithdraw = "withdraw"
	OpInterest = "interest"
)

// Operation statuses. Imported records may carry other literal status strings;
// those are stored verbatim.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

// Record is a single immutable ledger entry.
type Record struct {
	RecordID     string
	OpType       string
	Amount       decimal.Decimal
	Timestamp    time.Time
	BalanceAfter decimal.Decimal
	Status       string
}

// Ledger is an append-only collection of records owned by one account.
// Storage order is insertion order; read access is always a timestamp-sorted
// copy. Not safe for concurrent use.
type Ledger struct {
	records []Record
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Append adds a record. The caller guarantees field correctness; no validation
// happens here so that failed attempts can be recorded as faithfully as
// successful ones.
func (l *Ledger) Append(opType string, amount decimal.Decimal, timestamp time.Time, balanceAfter decimal.Decimal, status string) {
	l.records = append(l.records, Record{
		RecordID:     uuid.NewString(),
		OpType:       opType,
		Amount:       amount,
		Timestamp:    timestamp,
		BalanceAfter: balanceAfter,
		Status:       status,
	})
}

// All returns a copy of every record sorted ascending by timestamp. The sort
// is stable: records sharing a timestamp keep their insertion order.
func (l *Ledger) All() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// Len reports the number of records.
func (l *Ledger) Len() int {
	return len(l.records)
}
