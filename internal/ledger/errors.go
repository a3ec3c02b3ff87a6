package ledger

import (
	"errors"
	"fmt"
)

// Category sentinels. Every error the ledger returns wraps exactly one
// of these, so callers can map them with errors.Is without knowing the
// specific failure.
var (
	ErrValidation        = errors.New("invalid request")
	ErrNotFound          = errors.New("there is no")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrConflict          = errors.New("the request conflicts with the current state")
	ErrPersistence       = errors.New("the operation could not be saved")
)

var (
	ErrWalletNameEmpty        = fmt.Errorf("%w: the wallet name must not be empty", ErrValidation)
	ErrWalletTypeInvalid      = fmt.Errorf("%w: the wallet type must be one of bank, cash, mobile, card", ErrValidation)
	ErrCurrencyInvalid        = fmt.Errorf("%w: the currency must be a valid ISO 4217 code", ErrValidation)
	ErrInitialBalanceNegative = fmt.Errorf("%w: the initial balance must not be negative", ErrValidation)

	ErrAmountNotPositive       = fmt.Errorf("%w: the amount must be positive", ErrValidation)
	ErrCategoryEmpty           = fmt.Errorf("%w: the category must not be empty", ErrValidation)
	ErrTransactionTypeInvalid  = fmt.Errorf("%w: the transaction type must be income or expense", ErrValidation)
	ErrSameWallet              = fmt.Errorf("%w: a transfer needs two different wallets", ErrValidation)
	ErrCurrencyMismatch        = fmt.Errorf("%w: both wallets of a transfer must use the same currency", ErrValidation)

	ErrWalletNotFound      = fmt.Errorf("%w wallet matching the ID you specified", ErrNotFound)
	ErrTransactionNotFound = fmt.Errorf("%w transaction matching the ID you specified", ErrNotFound)
	ErrTransferNotFound    = fmt.Errorf("%w transfer matching the ID you specified", ErrNotFound)

	ErrWalletNotEmpty     = fmt.Errorf("%w: the wallet still holds a balance, bring it to zero before deleting it", ErrConflict)
	ErrWalletHasTransfers = fmt.Errorf("%w: the wallet is referenced by transfers, delete those first", ErrConflict)
)
