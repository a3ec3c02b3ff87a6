// Package store implements the ledger's persistence adapter on gorm.
//
// Every adapter call runs in a single database transaction, so a call
// either commits the record and all balance changes together or leaves
// the database untouched.
package store

import (
	"context"

	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

var _ ledger.Store = (*Store)(nil)

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) SaveWallet(ctx context.Context, wallet *models.Wallet) error {
	return s.db.WithContext(ctx).Create(wallet).Error
}

func (s *Store) UpdateWallet(ctx context.Context, wallet *models.Wallet) error {
	return s.db.WithContext(ctx).Save(wallet).Error
}

func (s *Store) DeleteWallet(ctx context.Context, wallet *models.Wallet) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where(&models.Transaction{WalletID: wallet.ID}).Delete(&models.Transaction{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(wallet).Error
	})
}

func (s *Store) SaveTransaction(ctx context.Context, transaction *models.Transaction, wallet *models.Wallet) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return err
		}

		return tx.Save(wallet).Error
	})
}

func (s *Store) UpdateTransaction(ctx context.Context, transaction *models.Transaction, wallets ...*models.Wallet) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(transaction).Error; err != nil {
			return err
		}

		for _, wallet := range wallets {
			if err := tx.Save(wallet).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *Store) DeleteTransaction(ctx context.Context, transaction *models.Transaction, wallet *models.Wallet) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(transaction).Error; err != nil {
			return err
		}

		return tx.Save(wallet).Error
	})
}

func (s *Store) SaveTransfer(ctx context.Context, transfer *models.Transfer, source, destination *models.Wallet) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transfer).Error; err != nil {
			return err
		}

		if err := tx.Save(source).Error; err != nil {
			return err
		}

		return tx.Save(destination).Error
	})
}

func (s *Store) DeleteTransfer(ctx context.Context, transfer *models.Transfer, source, destination *models.Wallet) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(transfer).Error; err != nil {
			return err
		}

		if err := tx.Save(source).Error; err != nil {
			return err
		}

		return tx.Save(destination).Error
	})
}

func (s *Store) LoadAll(ctx context.Context) (ledger.Snapshot, error) {
	var snapshot ledger.Snapshot

	db := s.db.WithContext(ctx)

	if err := db.Find(&snapshot.Wallets).Error; err != nil {
		return ledger.Snapshot{}, err
	}

	if err := db.Order("datetime(transactions.date) DESC").Find(&snapshot.Transactions).Error; err != nil {
		return ledger.Snapshot{}, err
	}

	if err := db.Order("datetime(transfers.date) DESC").Find(&snapshot.Transfers).Error; err != nil {
		return ledger.Snapshot{}, err
	}

	return snapshot, nil
}
