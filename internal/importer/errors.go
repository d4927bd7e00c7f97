package importer

import "errors"

var (
	// ErrUnsupportedFormat means the source is neither a .csv nor a .json
	// file.
	ErrUnsupportedFormat = errors.New("only CSV and JSON sources are supported")

	// ErrImport wraps any load or parse failure of the source itself. The
	// underlying cause is attached via %w.
	ErrImport = errors.New("import failed")

	// ErrInvalidImportedBalance means the balance of the authoritative
	// (latest-dated) row did not parse as a number.
	ErrInvalidImportedBalance = errors.New("imported balance is not a valid number")

	// ErrNegativeBalanceAfterImport means the import would leave the
	// account with a negative balance.
	ErrNegativeBalanceAfterImport = errors.New("imported balance is negative")
)
