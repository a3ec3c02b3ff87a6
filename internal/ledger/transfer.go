package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Transfer moves an amount between two distinct wallets.
//
// The debit, the credit and the transfer record commit atomically,
// there is no state in which only one wallet was adjusted. A transfer
// must not overdraw the source wallet.
func (l *Ledger) Transfer(ctx context.Context, sourceID, destinationID uuid.UUID, amount decimal.Decimal, note string) (models.Transfer, error) {
	if sourceID == destinationID {
		return models.Transfer{}, ErrSameWallet
	}

	if !amount.IsPositive() {
		return models.Transfer{}, ErrAmountNotPositive
	}

	unlock := l.locks.lock(sourceID, destinationID)
	defer unlock()

	source, err := l.wallet(sourceID)
	if err != nil {
		return models.Transfer{}, err
	}

	destination, err := l.wallet(destinationID)
	if err != nil {
		return models.Transfer{}, err
	}

	if source.Currency != destination.Currency {
		return models.Transfer{}, ErrCurrencyMismatch
	}

	if source.Balance.LessThan(amount) {
		return models.Transfer{}, fmt.Errorf("%w: %q holds %s %s, but %s are needed",
			ErrInsufficientFunds, source.Name, source.Balance, source.Currency, amount)
	}

	source.Balance = source.Balance.Sub(amount)
	destination.Balance = destination.Balance.Add(amount)

	transfer := models.Transfer{
		Amount:              amount,
		Note:                strings.TrimSpace(note),
		Date:                time.Now().In(time.UTC),
		SourceWalletID:      sourceID,
		DestinationWalletID: destinationID,
	}

	if err := l.store.SaveTransfer(ctx, &transfer, &source, &destination); err != nil {
		return models.Transfer{}, persistErr(err)
	}

	// One critical section, so no read can see only one side updated
	l.mu.Lock()
	l.wallets[source.ID] = source
	l.wallets[destination.ID] = destination
	l.transfers[transfer.ID] = transfer
	l.mu.Unlock()

	return transfer, nil
}

// DeleteTransfer removes a transfer and reverses its effect on both
// wallets, again atomically.
func (l *Ledger) DeleteTransfer(ctx context.Context, id uuid.UUID) error {
	transfer, err := l.transfer(id)
	if err != nil {
		return err
	}

	// The wallets of a transfer never change, no re-lookup loop needed
	unlock := l.locks.lock(transfer.SourceWalletID, transfer.DestinationWalletID)
	defer unlock()

	// It may have been deleted while waiting for the locks
	transfer, err = l.transfer(id)
	if err != nil {
		return err
	}

	source, err := l.wallet(transfer.SourceWalletID)
	if err != nil {
		return err
	}

	destination, err := l.wallet(transfer.DestinationWalletID)
	if err != nil {
		return err
	}

	source.Balance = source.Balance.Add(transfer.Amount)
	destination.Balance = destination.Balance.Sub(transfer.Amount)

	if err := l.store.DeleteTransfer(ctx, &transfer, &source, &destination); err != nil {
		return persistErr(err)
	}

	l.mu.Lock()
	l.wallets[source.ID] = source
	l.wallets[destination.ID] = destination
	delete(l.transfers, transfer.ID)
	l.mu.Unlock()

	return nil
}
