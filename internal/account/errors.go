package account

import "errors"

// Domain errors for account construction and balance mutation. Handlers and
// callers match on these with errors.Is; wrapped messages carry the detail.
var (
	// ErrInvalidAmount means an operation amount was not positive. The
	// operation is rejected before it reaches the ledger.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds means a withdrawal would drive the balance
	// negative. The attempt is still recorded as a failed ledger entry.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrWithdrawalLimit means a savings withdrawal exceeded 50% of the
	// current balance.
	ErrWithdrawalLimit = errors.New("withdrawal exceeds 50% of balance")

	// ErrInvalidRate means an interest rate was not positive.
	ErrInvalidRate = errors.New("interest rate must be positive")

	// ErrImmutableField means a write-once field (holder, account number)
	// was assigned twice.
	ErrImmutableField = errors.New("field is immutable once set")

	// ErrInvalidHolderName means the holder name does not match the
	// "First Last" pattern.
	ErrInvalidHolderName = errors.New("invalid holder name")

	// ErrInvalidAccountNumber means a caller-supplied account number is not
	// of the form ACC-<integer>.
	ErrInvalidAccountNumber = errors.New("invalid account number")

	// ErrDuplicateAccountNumber means the account number is already in use
	// within this process.
	ErrDuplicateAccountNumber = errors.New("account number already in use")
)
