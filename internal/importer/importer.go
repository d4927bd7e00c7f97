// Package importer bulk-loads historical account operations from external
// CSV or JSON files. External data is assumed noisy: a row failing any
// cleaning check is dropped, never fatal. The terminal balance check is the
// opposite: an invalid or negative resulting balance aborts the whole import
// with nothing committed.
package importer

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/bank-system/internal/dates"
	"github.com/dvloznov/bank-system/internal/ledger"
	"github.com/dvloznov/bank-system/internal/logger"
)

// operation is one surviving row after cleaning. rawBalance keeps the original
// balance_after value; the derive step parses it once the authoritative tail
// is known.
type operation struct {
	Kind         string
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	rawBalance   any
	Status       string
	Date         time.Time
}

// state is the shared state threaded through the import steps.
type state struct {
	source        string
	accountNumber string
	allowedKinds  map[string]bool
	ledger        *ledger.Ledger

	rows         []row
	cleaned      []operation
	finalBalance decimal.Decimal
}

// importStep is a single step of the import pipeline.
type importStep interface {
	Execute(ctx context.Context, st *state) error
}

// pipeline executes a sequence of steps in order.
type pipeline struct {
	steps []importStep
}

func newPipeline(steps ...importStep) *pipeline {
	return &pipeline{steps: steps}
}

func (p *pipeline) Execute(ctx context.Context, st *state) error {
	for i, step := range p.steps {
		if err := step.Execute(ctx, st); err != nil {
			return fmt.Errorf("import step %d: %w", i+1, err)
		}
	}
	return nil
}

// Import loads source, keeps rows belonging to accountNumber, cleans them,
// validates operation kinds against allowedKinds, commits the survivors to l
// in date order and returns the balance of the latest-dated row. An import
// with no surviving rows commits nothing and returns 0.
func Import(ctx context.Context, source, accountNumber string, allowedKinds []string, l *ledger.Ledger) (decimal.Decimal, error) {
	allowed := make(map[string]bool, len(allowedKinds))
	for _, kind := range allowedKinds {
		allowed[kind] = true
	}

	st := &state{
		source:        source,
		accountNumber: accountNumber,
		allowedKinds:  allowed,
		ledger:        l,
	}

	p := newPipeline(
		&loadStep{},
		&filterAccountStep{},
		&cleanStep{},
		&deriveBalanceStep{},
		&commitStep{},
	)
	if err := p.Execute(ctx, st); err != nil {
		return decimal.Decimal{}, err
	}
	return st.finalBalance, nil
}

// loadStep parses the source file as CSV or JSON, selected by extension.
type loadStep struct{}

func (s *loadStep) Execute(ctx context.Context, st *state) error {
	var (
		rows []row
		err  error
	)
	switch strings.ToLower(filepath.Ext(st.source)) {
	case ".csv":
		rows, err = loadCSV(st.source)
	case ".json":
		rows, err = loadJSON(st.source)
	default:
		return fmt.Errorf("%w: %w: %q", ErrImport, ErrUnsupportedFormat, st.source)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrImport, err)
	}
	st.rows = rows
	return nil
}

// filterAccountStep keeps only rows addressed to the target account.
type filterAccountStep struct{}

func (s *filterAccountStep) Execute(ctx context.Context, st *state) error {
	kept := st.rows[:0]
	for _, r := range st.rows {
		if number, ok := r.stringField("account_number"); ok && number == st.accountNumber {
			kept = append(kept, r)
		}
	}
	st.rows = kept
	return nil
}

// cleanStep applies the row-level checks. Each check is independent; a row
// failing any of them is dropped silently.
type cleanStep struct{}

func (s *cleanStep) Execute(ctx context.Context, st *state) error {
	log := logger.FromContext(ctx)

	cleaned := make([]operation, 0, len(st.rows))
	for _, r := range st.rows {
		op, ok := s.cleanRow(r, st.allowedKinds)
		if ok {
			cleaned = append(cleaned, op)
		}
	}

	log.Debug().
		Str("account_number", st.accountNumber).
		Int("rows_in", len(st.rows)).
		Int("rows_kept", len(cleaned)).
		Msg("cleaned imported operations")

	st.cleaned = cleaned
	return nil
}

func (s *cleanStep) cleanRow(r row, allowedKinds map[string]bool) (operation, bool) {
	rawAmount, ok := r.field("amount")
	if !ok {
		return operation{}, false
	}
	amount, err := toDecimal(rawAmount)
	if err != nil || !amount.IsPositive() {
		return operation{}, false
	}

	rawBalance, ok := r.field("balance_after")
	if !ok {
		return operation{}, false
	}
	if _, err := toDecimal(rawBalance); err != nil {
		return operation{}, false
	}

	name, ok := r.stringField("operation")
	if !ok {
		return operation{}, false
	}
	kind := normalizeKind(name)
	if !allowedKinds[kind] {
		return operation{}, false
	}

	status, ok := r.stringField("status")
	if !ok || !strings.Contains(strings.ToLower(status), "success") {
		return operation{}, false
	}

	dateText, ok := r.stringField("date")
	if !ok {
		return operation{}, false
	}
	date, ok := dates.Parse(dateText)
	if !ok {
		return operation{}, false
	}

	return operation{
		Kind:       kind,
		Amount:     amount,
		rawBalance: rawBalance,
		Status:     status,
		Date:       date,
	}, true
}

// deriveBalanceStep orders the survivors by date and takes the latest row as
// the authoritative balance. Its balance must be a valid, non-negative
// number; otherwise the whole import aborts with nothing committed.
type deriveBalanceStep struct{}

func (s *deriveBalanceStep) Execute(ctx context.Context, st *state) error {
	if len(st.cleaned) == 0 {
		st.finalBalance = decimal.Zero
		return nil
	}

	sort.SliceStable(st.cleaned, func(i, j int) bool {
		return st.cleaned[i].Date.Before(st.cleaned[j].Date)
	})

	for i := range st.cleaned {
		balance, err := toDecimal(st.cleaned[i].rawBalance)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidImportedBalance, err)
		}
		st.cleaned[i].BalanceAfter = balance
	}

	last := st.cleaned[len(st.cleaned)-1]
	if last.BalanceAfter.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeBalanceAfterImport, last.BalanceAfter)
	}
	st.finalBalance = last.BalanceAfter
	return nil
}

// commitStep appends every surviving row to the ledger in date order. Values
// are committed verbatim as cleaned, status string included.
type commitStep struct{}

func (s *commitStep) Execute(ctx context.Context, st *state) error {
	for _, op := range st.cleaned {
		st.ledger.Append(op.Kind, op.Amount, op.Date, op.BalanceAfter, op.Status)
	}
	return nil
}
