package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// AddTransaction validates and records an income or expense
// transaction and applies its signed effect to the wallet balance.
// The record and the balance change commit together or not at all.
//
// Expenses may drive a wallet balance negative, cash debt is a state
// the ledger represents.
func (l *Ledger) AddTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error) {
	if !transaction.Amount.IsPositive() {
		return models.Transaction{}, ErrAmountNotPositive
	}

	if !slices.Contains(models.TransactionTypes, transaction.Type) {
		return models.Transaction{}, ErrTransactionTypeInvalid
	}

	transaction.Category = strings.TrimSpace(transaction.Category)
	if transaction.Category == "" {
		return models.Transaction{}, ErrCategoryEmpty
	}

	if transaction.Date.IsZero() {
		transaction.Date = time.Now().In(time.UTC)
	} else {
		transaction.Date = transaction.Date.In(time.UTC)
	}

	unlock := l.locks.lock(transaction.WalletID)
	defer unlock()

	wallet, err := l.wallet(transaction.WalletID)
	if err != nil {
		return models.Transaction{}, err
	}

	wallet.Balance = wallet.Balance.Add(transaction.SignedAmount())

	if err := l.store.SaveTransaction(ctx, &transaction, &wallet); err != nil {
		return models.Transaction{}, persistErr(err)
	}

	l.mu.Lock()
	l.wallets[wallet.ID] = wallet
	l.transactions[transaction.ID] = transaction
	l.mu.Unlock()

	return transaction, nil
}

// TransactionUpdate contains the fields of a transaction that may be
// edited. Nil fields are left untouched.
type TransactionUpdate struct {
	Type     *models.TransactionType
	Amount   *decimal.Decimal
	Category *string
	Note     *string
	Date     *time.Time
	WalletID *uuid.UUID
}

// UpdateTransaction edits a recorded transaction. The old signed
// effect is reversed and the new one applied in the same commit, also
// when the transaction moves to another wallet.
func (l *Ledger) UpdateTransaction(ctx context.Context, id uuid.UUID, update TransactionUpdate) (models.Transaction, error) {
	var extra []uuid.UUID
	if update.WalletID != nil {
		extra = append(extra, *update.WalletID)
	}

	current, unlock, err := l.lockForTransaction(id, extra...)
	if err != nil {
		return models.Transaction{}, err
	}
	defer unlock()

	updated := current

	if update.Type != nil {
		if !slices.Contains(models.TransactionTypes, *update.Type) {
			return models.Transaction{}, ErrTransactionTypeInvalid
		}
		updated.Type = *update.Type
	}

	if update.Amount != nil {
		if !update.Amount.IsPositive() {
			return models.Transaction{}, ErrAmountNotPositive
		}
		updated.Amount = *update.Amount
	}

	if update.Category != nil {
		category := strings.TrimSpace(*update.Category)
		if category == "" {
			return models.Transaction{}, ErrCategoryEmpty
		}
		updated.Category = category
	}

	if update.Note != nil {
		updated.Note = strings.TrimSpace(*update.Note)
	}

	if update.Date != nil {
		updated.Date = update.Date.In(time.UTC)
	}

	if update.WalletID != nil {
		updated.WalletID = *update.WalletID
	}

	source, err := l.wallet(current.WalletID)
	if err != nil {
		return models.Transaction{}, err
	}
	source.Balance = source.Balance.Sub(current.SignedAmount())

	wallets := []*models.Wallet{&source}

	if updated.WalletID == current.WalletID {
		source.Balance = source.Balance.Add(updated.SignedAmount())
	} else {
		destination, err := l.wallet(updated.WalletID)
		if err != nil {
			return models.Transaction{}, err
		}
		destination.Balance = destination.Balance.Add(updated.SignedAmount())
		wallets = append(wallets, &destination)
	}

	if err := l.store.UpdateTransaction(ctx, &updated, wallets...); err != nil {
		return models.Transaction{}, persistErr(err)
	}

	l.mu.Lock()
	for _, wallet := range wallets {
		l.wallets[wallet.ID] = *wallet
	}
	l.transactions[updated.ID] = updated
	l.mu.Unlock()

	return updated, nil
}

// DeleteTransaction removes a transaction and reverses its signed
// effect on the wallet balance.
func (l *Ledger) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	transaction, unlock, err := l.lockForTransaction(id)
	if err != nil {
		return err
	}
	defer unlock()

	wallet, err := l.wallet(transaction.WalletID)
	if err != nil {
		return err
	}

	wallet.Balance = wallet.Balance.Sub(transaction.SignedAmount())

	if err := l.store.DeleteTransaction(ctx, &transaction, &wallet); err != nil {
		return persistErr(err)
	}

	l.mu.Lock()
	l.wallets[wallet.ID] = wallet
	delete(l.transactions, transaction.ID)
	l.mu.Unlock()

	return nil
}

// lockForTransaction looks up a transaction and acquires the locks for
// its wallet and any extra wallets. A concurrent edit can move the
// transaction to another wallet between lookup and lock acquisition,
// in that case the lookup is retried.
func (l *Ledger) lockForTransaction(id uuid.UUID, extra ...uuid.UUID) (models.Transaction, func(), error) {
	for {
		transaction, err := l.transaction(id)
		if err != nil {
			return models.Transaction{}, nil, err
		}

		ids := append([]uuid.UUID{transaction.WalletID}, extra...)
		unlock := l.locks.lock(ids...)

		current, err := l.transaction(id)
		if err == nil && current.WalletID == transaction.WalletID {
			return current, unlock, nil
		}

		unlock()
		if err != nil {
			return models.Transaction{}, nil, err
		}
	}
}
