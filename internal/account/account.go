// Package account models bank accounts over an append-only operation ledger.
// Balances only move through Deposit, Withdraw, ApplyInterest and bulk import;
// every executed operation is recorded in the ledger, failed attempts
// included. Accounts are not safe for concurrent use.
package account

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/bank-system/internal/importer"
	"github.com/dvloznov/bank-system/internal/ledger"
)

// Account is the state shared by all account types. Holder and account number
// are write-once: assigned during construction, read-only afterwards.
type Account struct {
	accountType string
	holder      string
	number      string
	balance     decimal.Decimal
	history     *ledger.Ledger
}

// Info is a read-only snapshot of an account for external display.
type Info struct {
	AccountType   string          `json:"account_type"`
	Holder        string          `json:"holder"`
	AccountNumber string          `json:"account_number"`
	Balance       decimal.Decimal `json:"balance"`
}

// newAccount builds the shared account state. number may be empty, in which
// case one is drawn from the process-wide counter; either way the resulting
// number must be globally unused.
func newAccount(accountType, holder string, balance decimal.Decimal, number string) (Account, error) {
	a := Account{accountType: accountType, history: ledger.New()}

	if number != "" {
		if err := validateAccountNumber(number); err != nil {
			return Account{}, err
		}
	} else {
		number = numbers.next()
	}
	if err := a.setNumber(number); err != nil {
		return Account{}, err
	}
	if err := a.setHolder(holder); err != nil {
		return Account{}, err
	}
	if err := a.setBalance(balance); err != nil {
		return Account{}, err
	}
	return a, nil
}

// setHolder assigns the holder exactly once.
func (a *Account) setHolder(name string) error {
	if a.holder != "" {
		return fmt.Errorf("%w: holder", ErrImmutableField)
	}
	if err := validateHolderName(name); err != nil {
		return err
	}
	a.holder = name
	return nil
}

// setNumber assigns the account number exactly once, reserving it in the
// process-wide registry.
func (a *Account) setNumber(number string) error {
	if a.number != "" {
		return fmt.Errorf("%w: account number", ErrImmutableField)
	}
	if err := numbers.reserve(number); err != nil {
		return err
	}
	a.number = number
	return nil
}

// setBalance is the only place the balance changes. It enforces that the
// balance never goes negative.
func (a *Account) setBalance(v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%w: balance would become %s", ErrInsufficientFunds, v)
	}
	a.balance = v
	return nil
}

// Holder returns the account holder name.
func (a *Account) Holder() string { return a.holder }

// Number returns the canonical account number.
func (a *Account) Number() string { return a.number }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// History returns the operation history sorted ascending by timestamp.
func (a *Account) History() []ledger.Record { return a.history.All() }

// Ledger exposes the underlying ledger for read-only consumers.
func (a *Account) Ledger() *ledger.Ledger { return a.history }

// Info returns a display snapshot of the account.
func (a *Account) Info() Info {
	return Info{
		AccountType:   a.accountType,
		Holder:        a.holder,
		AccountNumber: a.number,
		Balance:       a.balance,
	}
}

// Deposit adds amount to the balance and records the operation.
func (a *Account) Deposit(amount decimal.Decimal) error {
	return a.execute(ledger.OpDeposit, amount, func(amt decimal.Decimal) error {
		return a.setBalance(a.balance.Add(amt))
	})
}

// Withdraw removes amount from the balance and records the operation. The
// attempt is recorded as failed if funds are insufficient.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	return a.execute(ledger.OpWithdraw, amount, func(amt decimal.Decimal) error {
		return a.setBalance(a.balance.Sub(amt))
	})
}

// execute runs one balance mutation. A non-positive amount is rejected before
// anything is written. Past that point the ledger write is guaranteed on every
// exit path: the deferred append records the operation with the resulting (or,
// on failure, unchanged) balance.
func (a *Account) execute(opType string, amount decimal.Decimal, apply func(decimal.Decimal) error) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s of %s", ErrInvalidAmount, opType, amount)
	}

	status := ledger.StatusFail
	defer func() {
		a.history.Append(opType, amount, time.Now(), a.balance, status)
	}()

	if err := apply(amount); err != nil {
		return err
	}
	status = ledger.StatusSuccess
	return nil
}

// applyInterest credits balance * rate/100 as an interest-kind deposit.
// Exposed on SavingsAccount.
func (a *Account) applyInterest(rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return fmt.Errorf("%w: %s", ErrInvalidRate, rate)
	}
	interest := a.balance.Mul(rate).Div(decimal.NewFromInt(100))
	if !interest.IsPositive() {
		return nil
	}
	return a.execute(ledger.OpInterest, interest, func(amt decimal.Decimal) error {
		return a.setBalance(a.balance.Add(amt))
	})
}

// importOperations bulk-loads historical operations for this account from an
// external CSV or JSON source, then reconciles the balance to the imported
// tail. An empty import (nothing survived cleaning) resets the balance to 0.
func (a *Account) importOperations(ctx context.Context, source string, allowedKinds []string) error {
	finalBalance, err := importer.Import(ctx, source, a.number, allowedKinds, a.history)
	if err != nil {
		return err
	}
	return a.setBalance(finalBalance)
}
