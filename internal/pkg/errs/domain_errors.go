package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Ledger errors
	ErrLedgerNotFound = errors.New("no inventory ledger for date")
	ErrOutOfStock     = errors.New("sold out")

	// Order errors (transition guards live in internal/domain/order)
	ErrOrderNotFound = errors.New("order not found")

	// Banner errors
	ErrBannerNotFound = errors.New("banner not found")

	// Reference data errors
	ErrProductNotFound       = errors.New("product not found")
	ErrPaymentMethodNotFound = errors.New("payment method not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
