package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Ledger is the authoritative owner of all wallets and their
// transaction and transfer history.
//
// All reads are served from memory. Every mutation is first written
// through the persistence adapter and only reflected in memory after
// the adapter confirms, so a failed write leaves the ledger exactly as
// it was. Mutations for a wallet are serialized through per-wallet
// locks, a transfer holds both wallet locks and commits both balance
// changes in one critical section, so reads never observe half of a
// transfer.
type Ledger struct {
	store Store

	mu           sync.RWMutex
	wallets      map[uuid.UUID]models.Wallet
	transactions map[uuid.UUID]models.Transaction
	transfers    map[uuid.UUID]models.Transfer

	locks *lockRegistry
}

// New returns a ledger writing through the given store. Call Load
// before use to hydrate it.
func New(store Store) *Ledger {
	return &Ledger{
		store:        store,
		wallets:      make(map[uuid.UUID]models.Wallet),
		transactions: make(map[uuid.UUID]models.Transaction),
		transfers:    make(map[uuid.UUID]models.Transfer),
		locks:        newLockRegistry(),
	}
}

// Load hydrates the in-memory state from the persistence adapter,
// replacing whatever is currently held.
//
// Wallets whose stored balance does not match the balance recomputed
// from their history are logged, the recorded history wins.
func (l *Ledger) Load(ctx context.Context) error {
	snapshot, err := l.store.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrPersistence, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.wallets = make(map[uuid.UUID]models.Wallet, len(snapshot.Wallets))
	l.transactions = make(map[uuid.UUID]models.Transaction, len(snapshot.Transactions))
	l.transfers = make(map[uuid.UUID]models.Transfer, len(snapshot.Transfers))

	for _, wallet := range snapshot.Wallets {
		l.wallets[wallet.ID] = wallet
	}
	for _, transaction := range snapshot.Transactions {
		l.transactions[transaction.ID] = transaction
	}
	for _, transfer := range snapshot.Transfers {
		l.transfers[transfer.ID] = transfer
	}

	for id, wallet := range l.wallets {
		recomputed := l.recomputeBalance(id)
		if !wallet.Balance.Equal(recomputed) {
			log.Warn().
				Str("wallet", wallet.Name).
				Str("stored", wallet.Balance.String()).
				Str("recomputed", recomputed.String()).
				Msg("stored wallet balance diverges from history, reconciling")

			wallet.Balance = recomputed
			l.wallets[id] = wallet
		}
	}

	return nil
}

// wallet returns a copy of the wallet with the given ID.
func (l *Ledger) wallet(id uuid.UUID) (models.Wallet, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	wallet, ok := l.wallets[id]
	if !ok {
		return models.Wallet{}, ErrWalletNotFound
	}

	return wallet, nil
}

// transaction returns a copy of the transaction with the given ID.
func (l *Ledger) transaction(id uuid.UUID) (models.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	transaction, ok := l.transactions[id]
	if !ok {
		return models.Transaction{}, ErrTransactionNotFound
	}

	return transaction, nil
}

// transfer returns a copy of the transfer with the given ID.
func (l *Ledger) transfer(id uuid.UUID) (models.Transfer, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	transfer, ok := l.transfers[id]
	if !ok {
		return models.Transfer{}, ErrTransferNotFound
	}

	return transfer, nil
}

// recomputeBalance derives a wallet balance from its recorded history.
// The caller must hold at least a read lock on l.mu.
func (l *Ledger) recomputeBalance(id uuid.UUID) decimal.Decimal {
	balance := l.wallets[id].InitialBalance

	for _, transaction := range l.transactions {
		if transaction.WalletID == id {
			balance = balance.Add(transaction.SignedAmount())
		}
	}

	for _, transfer := range l.transfers {
		if transfer.SourceWalletID == id {
			balance = balance.Sub(transfer.Amount)
		}
		if transfer.DestinationWalletID == id {
			balance = balance.Add(transfer.Amount)
		}
	}

	return balance
}

// Wallet returns the wallet with the given ID.
func (l *Ledger) Wallet(id uuid.UUID) (models.Wallet, error) {
	return l.wallet(id)
}

// Transaction returns the transaction with the given ID.
func (l *Ledger) Transaction(id uuid.UUID) (models.Transaction, error) {
	return l.transaction(id)
}

// Transfer returns the transfer with the given ID.
func (l *Ledger) TransferByID(id uuid.UUID) (models.Transfer, error) {
	return l.transfer(id)
}

// Balance returns the current balance of a wallet.
func (l *Ledger) Balance(id uuid.UUID) (decimal.Decimal, error) {
	wallet, err := l.wallet(id)
	if err != nil {
		return decimal.Zero, err
	}

	return wallet.Balance, nil
}

// RecomputedBalance derives the balance of a wallet from its initial
// balance and the signed effects of all recorded transactions and
// transfers. It always equals Balance.
func (l *Ledger) RecomputedBalance(id uuid.UUID) (decimal.Decimal, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if _, ok := l.wallets[id]; !ok {
		return decimal.Zero, ErrWalletNotFound
	}

	return l.recomputeBalance(id), nil
}

// Wallets returns all wallets, sorted by name.
func (l *Ledger) Wallets() []models.Wallet {
	l.mu.RLock()
	defer l.mu.RUnlock()

	wallets := make([]models.Wallet, 0, len(l.wallets))
	for _, wallet := range l.wallets {
		wallets = append(wallets, wallet)
	}

	slices.SortFunc(wallets, func(a, b models.Wallet) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})

	return wallets
}

// TransactionFilter restricts the transactions returned by Transactions.
// Zero values match everything.
type TransactionFilter struct {
	WalletID uuid.UUID
	Type     models.TransactionType
	Category string // glob pattern, e.g. "Food*"
	From     time.Time
	Until    time.Time
}

func (f TransactionFilter) matches(t models.Transaction) bool {
	if f.WalletID != uuid.Nil && t.WalletID != f.WalletID {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Category != "" && !glob.Glob(f.Category, t.Category) {
		return false
	}
	if !f.From.IsZero() && t.Date.Before(f.From) {
		return false
	}
	if !f.Until.IsZero() && t.Date.After(f.Until) {
		return false
	}

	return true
}

// Transactions returns all transactions matching the filter, newest first.
func (l *Ledger) Transactions(filter TransactionFilter) []models.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	transactions := make([]models.Transaction, 0)
	for _, transaction := range l.transactions {
		if filter.matches(transaction) {
			transactions = append(transactions, transaction)
		}
	}

	slices.SortFunc(transactions, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date)
	})

	return transactions
}

// TransferFilter restricts the transfers returned by Transfers.
type TransferFilter struct {
	WalletID uuid.UUID // matches source or destination
}

func (f TransferFilter) matches(t models.Transfer) bool {
	if f.WalletID != uuid.Nil && t.SourceWalletID != f.WalletID && t.DestinationWalletID != f.WalletID {
		return false
	}

	return true
}

// Transfers returns all transfers matching the filter, newest first.
func (l *Ledger) Transfers(filter TransferFilter) []models.Transfer {
	l.mu.RLock()
	defer l.mu.RUnlock()

	transfers := make([]models.Transfer, 0)
	for _, transfer := range l.transfers {
		if filter.matches(transfer) {
			transfers = append(transfers, transfer)
		}
	}

	slices.SortFunc(transfers, func(a, b models.Transfer) int {
		return b.Date.Compare(a.Date)
	})

	return transfers
}

// Totals summarizes all wallets of the ledger.
type Totals struct {
	Total  decimal.Decimal
	ByType map[models.WalletType]int
}

// WalletTotals sums all wallet balances and counts wallets per type.
func (l *Ledger) WalletTotals() Totals {
	l.mu.RLock()
	defer l.mu.RUnlock()

	totals := Totals{
		Total:  decimal.Zero,
		ByType: make(map[models.WalletType]int),
	}

	for _, wallet := range l.wallets {
		totals.Total = totals.Total.Add(wallet.Balance)
		totals.ByType[wallet.Type]++
	}

	return totals
}

// SpentForCategory sums the amounts of all expense transactions whose
// category matches the glob pattern.
func (l *Ledger) SpentForCategory(pattern string) decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	spent := decimal.Zero
	for _, transaction := range l.transactions {
		if transaction.Type != models.TransactionTypeExpense {
			continue
		}

		if glob.Glob(pattern, transaction.Category) {
			spent = spent.Add(transaction.Amount)
		}
	}

	return spent
}

// persistErr classifies an adapter error into the ledger error taxonomy.
func persistErr(err error) error {
	switch {
	case errors.Is(err, models.ErrWalletNameNotUnique):
		return fmt.Errorf("%w: %s", ErrConflict, err)
	case errors.Is(err, models.ErrSourceDoesNotEqualDestination):
		return fmt.Errorf("%w: %s", ErrValidation, err)
	default:
		return fmt.Errorf("%w: %s", ErrPersistence, err)
	}
}
