package ledger

import (
	"context"

	"github.com/pocketledger/backend/internal/models"
)

// Store is the persistence adapter the ledger writes through.
//
// Every mutating call is a single durable commit: calls that change
// wallet balances take the updated wallet rows so that the record and
// the balances are written together or not at all. When a call returns
// an error, nothing may have been written.
type Store interface {
	SaveWallet(ctx context.Context, wallet *models.Wallet) error
	UpdateWallet(ctx context.Context, wallet *models.Wallet) error

	// DeleteWallet removes the wallet and all transactions referencing it.
	DeleteWallet(ctx context.Context, wallet *models.Wallet) error

	SaveTransaction(ctx context.Context, transaction *models.Transaction, wallet *models.Wallet) error
	UpdateTransaction(ctx context.Context, transaction *models.Transaction, wallets ...*models.Wallet) error
	DeleteTransaction(ctx context.Context, transaction *models.Transaction, wallet *models.Wallet) error

	SaveTransfer(ctx context.Context, transfer *models.Transfer, source, destination *models.Wallet) error
	DeleteTransfer(ctx context.Context, transfer *models.Transfer, source, destination *models.Wallet) error

	// LoadAll reads the full ledger state for hydration at startup.
	LoadAll(ctx context.Context) (Snapshot, error)
}

// Snapshot is the persisted ledger state as returned by Store.LoadAll.
type Snapshot struct {
	Wallets      []models.Wallet
	Transactions []models.Transaction
	Transfers    []models.Transfer
}
