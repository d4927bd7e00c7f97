package account

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/bank-system/internal/ledger"
)

// SavingsAccount earns interest and caps withdrawals at half the current
// balance. Imports additionally accept interest operations.
type SavingsAccount struct {
	Account
}

// NewSavings creates a savings account. Pass number "" to draw a generated
// account number.
func NewSavings(holder string, balance decimal.Decimal, number string) (*SavingsAccount, error) {
	base, err := newAccount("savings", holder, balance, number)
	if err != nil {
		return nil, err
	}
	return &SavingsAccount{Account: base}, nil
}

// Withdraw removes amount from the balance. On top of the base rules, amount
// must not exceed 50% of the current balance; the cap is checked before the
// operation executes, so a capped attempt leaves no ledger entry.
func (a *SavingsAccount) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: withdraw of %s", ErrInvalidAmount, amount)
	}
	max := a.balance.Div(decimal.NewFromInt(2))
	if amount.GreaterThan(max) {
		return fmt.Errorf("%w: at most %s available", ErrWithdrawalLimit, max)
	}
	return a.Account.Withdraw(amount)
}

// ApplyInterest credits balance * rate/100 to the account as an
// interest-kind deposit. rate is a percentage and must be positive.
func (a *SavingsAccount) ApplyInterest(rate decimal.Decimal) error {
	return a.applyInterest(rate)
}

// ImportOperations bulk-loads this account's history from a CSV or JSON file.
func (a *SavingsAccount) ImportOperations(ctx context.Context, source string) error {
	return a.importOperations(ctx, source, []string{ledger.OpDeposit, ledger.OpWithdraw, ledger.OpInterest})
}
