package account

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/bank-system/internal/ledger"
)

// CheckingAccount is an everyday account. Imports accept deposit and withdraw
// operations only.
type CheckingAccount struct {
	Account
}

// NewChecking creates a checking account. Pass number "" to draw a generated
// account number.
func NewChecking(holder string, balance decimal.Decimal, number string) (*CheckingAccount, error) {
	base, err := newAccount("checking", holder, balance, number)
	if err != nil {
		return nil, err
	}
	return &CheckingAccount{Account: base}, nil
}

// ImportOperations bulk-loads this account's history from a CSV or JSON file.
func (a *CheckingAccount) ImportOperations(ctx context.Context, source string) error {
	return a.importOperations(ctx, source, []string{ledger.OpDeposit, ledger.OpWithdraw})
}
