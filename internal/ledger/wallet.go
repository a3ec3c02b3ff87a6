package ledger

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
	"golang.org/x/exp/slices"
	"golang.org/x/text/currency"
)

// DefaultCurrency is used for wallets created without a currency.
const DefaultCurrency = "EUR"

// CreateWallet validates and persists a new wallet. The balance starts
// at the initial balance, every later change goes through transactions
// and transfers.
func (l *Ledger) CreateWallet(ctx context.Context, wallet models.Wallet) (models.Wallet, error) {
	wallet.Name = strings.TrimSpace(wallet.Name)
	if wallet.Name == "" {
		return models.Wallet{}, ErrWalletNameEmpty
	}

	if !slices.Contains(models.WalletTypes, wallet.Type) {
		return models.Wallet{}, ErrWalletTypeInvalid
	}

	if wallet.InitialBalance.IsNegative() {
		return models.Wallet{}, ErrInitialBalanceNegative
	}

	wallet.Currency = strings.ToUpper(strings.TrimSpace(wallet.Currency))
	if wallet.Currency == "" {
		wallet.Currency = DefaultCurrency
	}
	if _, err := currency.ParseISO(wallet.Currency); err != nil {
		return models.Wallet{}, ErrCurrencyInvalid
	}

	wallet.Balance = wallet.InitialBalance

	if err := l.store.SaveWallet(ctx, &wallet); err != nil {
		return models.Wallet{}, persistErr(err)
	}

	l.mu.Lock()
	l.wallets[wallet.ID] = wallet
	l.mu.Unlock()

	return wallet, nil
}

// WalletUpdate contains the fields of a wallet that may change after
// creation. Nil fields are left untouched.
type WalletUpdate struct {
	Name     *string
	Type     *models.WalletType
	Note     *string
	Archived *bool
}

// UpdateWallet applies the update to the wallet with the given ID.
// Balance, currency and initial balance never change here.
func (l *Ledger) UpdateWallet(ctx context.Context, id uuid.UUID, update WalletUpdate) (models.Wallet, error) {
	unlock := l.locks.lock(id)
	defer unlock()

	wallet, err := l.wallet(id)
	if err != nil {
		return models.Wallet{}, err
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return models.Wallet{}, ErrWalletNameEmpty
		}
		wallet.Name = name
	}

	if update.Type != nil {
		if !slices.Contains(models.WalletTypes, *update.Type) {
			return models.Wallet{}, ErrWalletTypeInvalid
		}
		wallet.Type = *update.Type
	}

	if update.Note != nil {
		wallet.Note = strings.TrimSpace(*update.Note)
	}

	if update.Archived != nil {
		wallet.Archived = *update.Archived
	}

	if err := l.store.UpdateWallet(ctx, &wallet); err != nil {
		return models.Wallet{}, persistErr(err)
	}

	l.mu.Lock()
	l.wallets[wallet.ID] = wallet
	l.mu.Unlock()

	return wallet, nil
}

// DeleteWallet removes a wallet and its transactions.
//
// A wallet can only be deleted when its balance is zero. Transfers are
// part of the history of two wallets, so a wallet that is referenced
// by transfers cannot be deleted without breaking the balance
// invariant of its counterparts, delete the transfers first.
func (l *Ledger) DeleteWallet(ctx context.Context, id uuid.UUID) error {
	unlock := l.locks.lock(id)
	defer unlock()

	wallet, err := l.wallet(id)
	if err != nil {
		return err
	}

	if !wallet.Balance.IsZero() {
		return ErrWalletNotEmpty
	}

	l.mu.RLock()
	for _, transfer := range l.transfers {
		if transfer.SourceWalletID == id || transfer.DestinationWalletID == id {
			l.mu.RUnlock()
			return ErrWalletHasTransfers
		}
	}
	l.mu.RUnlock()

	if err := l.store.DeleteWallet(ctx, &wallet); err != nil {
		return persistErr(err)
	}

	l.mu.Lock()
	delete(l.wallets, id)
	for transactionID, transaction := range l.transactions {
		if transaction.WalletID == id {
			delete(l.transactions, transactionID)
		}
	}
	l.mu.Unlock()

	return nil
}
