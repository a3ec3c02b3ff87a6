package ledger_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCreateWallet() {
	wallet, err := suite.ledger.CreateWallet(context.Background(), models.Wallet{
		Name:           "  Checking ",
		Type:           models.WalletTypeBank,
		InitialBalance: decimal.NewFromInt(100),
	})
	require.Nil(suite.T(), err)

	assert.NotEqual(suite.T(), uuid.Nil, wallet.ID, "ID is not set")
	assert.Equal(suite.T(), "Checking", wallet.Name, "Name is not trimmed")
	assert.Equal(suite.T(), "EUR", wallet.Currency, "Default currency is not applied")
	assert.True(suite.T(), wallet.Balance.Equal(decimal.NewFromInt(100)), "Balance does not equal the initial balance")
}

func (suite *TestSuiteStandard) TestCreateWalletCurrency() {
	wallet, err := suite.ledger.CreateWallet(context.Background(), models.Wallet{
		Name:     "Cash",
		Type:     models.WalletTypeCash,
		Currency: " usd ",
	})
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "USD", wallet.Currency)
}

func (suite *TestSuiteStandard) TestCreateWalletInvalid() {
	tests := []struct {
		name   string
		wallet models.Wallet
		err    error
	}{
		{"empty name", models.Wallet{Name: " ", Type: models.WalletTypeBank}, ledger.ErrWalletNameEmpty},
		{"invalid type", models.Wallet{Name: "Savings", Type: "sock"}, ledger.ErrWalletTypeInvalid},
		{"negative initial balance", models.Wallet{Name: "Savings", Type: models.WalletTypeBank, InitialBalance: decimal.NewFromInt(-1)}, ledger.ErrInitialBalanceNegative},
		{"invalid currency", models.Wallet{Name: "Savings", Type: models.WalletTypeBank, Currency: "EURO"}, ledger.ErrCurrencyInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := suite.ledger.CreateWallet(context.Background(), tt.wallet)
			assert.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, ledger.ErrValidation)
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateWallet() {
	wallet := suite.createTestWallet(models.Wallet{Name: "Old name"})

	name := "New name"
	archived := true
	updated, err := suite.ledger.UpdateWallet(context.Background(), wallet.ID, ledger.WalletUpdate{
		Name:     &name,
		Archived: &archived,
	})
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), "New name", updated.Name)
	assert.True(suite.T(), updated.Archived)
	assert.Equal(suite.T(), wallet.Currency, updated.Currency, "Currency must not change on update")
}

func (suite *TestSuiteStandard) TestUpdateWalletEmptyName() {
	wallet := suite.createTestWallet(models.Wallet{})

	name := "   "
	_, err := suite.ledger.UpdateWallet(context.Background(), wallet.ID, ledger.WalletUpdate{Name: &name})
	assert.ErrorIs(suite.T(), err, ledger.ErrWalletNameEmpty)
}

func (suite *TestSuiteStandard) TestUpdateWalletNotFound() {
	_, err := suite.ledger.UpdateWallet(context.Background(), uuid.New(), ledger.WalletUpdate{})
	assert.ErrorIs(suite.T(), err, ledger.ErrNotFound)
}

func (suite *TestSuiteStandard) TestDeleteWallet() {
	wallet := suite.createTestWallet(models.Wallet{})
	transaction := suite.createTestTransaction(models.Transaction{
		WalletID: wallet.ID,
		Type:     models.TransactionTypeIncome,
		Amount:   decimal.NewFromInt(10),
	})

	// The wallet still holds a balance
	err := suite.ledger.DeleteWallet(context.Background(), wallet.ID)
	assert.ErrorIs(suite.T(), err, ledger.ErrWalletNotEmpty)

	// Bring the balance back to zero, then deletion cascades to the
	// transaction history
	suite.createTestTransaction(models.Transaction{
		WalletID: wallet.ID,
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(10),
	})

	err = suite.ledger.DeleteWallet(context.Background(), wallet.ID)
	require.Nil(suite.T(), err)

	_, err = suite.ledger.Wallet(wallet.ID)
	assert.ErrorIs(suite.T(), err, ledger.ErrWalletNotFound)

	_, err = suite.ledger.Transaction(transaction.ID)
	assert.ErrorIs(suite.T(), err, ledger.ErrTransactionNotFound)
}

func (suite *TestSuiteStandard) TestDeleteWalletWithTransfers() {
	source := suite.createTestWallet(models.Wallet{InitialBalance: decimal.NewFromInt(50)})
	destination := suite.createTestWallet(models.Wallet{})

	transfer := suite.createTestTransfer(source.ID, destination.ID, decimal.NewFromInt(50))

	// Zero balance, but still referenced by the transfer
	err := suite.ledger.DeleteWallet(context.Background(), source.ID)
	assert.ErrorIs(suite.T(), err, ledger.ErrWalletHasTransfers)

	err = suite.ledger.DeleteTransfer(context.Background(), transfer.ID)
	require.Nil(suite.T(), err)

	// Deleting the transfer restored the balance, spend it so that the
	// wallet is empty again
	suite.createTestTransaction(models.Transaction{
		WalletID: source.ID,
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(50),
	})

	err = suite.ledger.DeleteWallet(context.Background(), source.ID)
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestDeleteWalletNotFound() {
	err := suite.ledger.DeleteWallet(context.Background(), uuid.New())
	assert.ErrorIs(suite.T(), err, ledger.ErrWalletNotFound)
}

func (suite *TestSuiteStandard) TestCreateWalletStoreFailure() {
	suite.store.failNext = errTestStore

	_, err := suite.ledger.CreateWallet(context.Background(), models.Wallet{
		Name: "Checking",
		Type: models.WalletTypeBank,
	})
	assert.ErrorIs(suite.T(), err, ledger.ErrPersistence)
	assert.Empty(suite.T(), suite.ledger.Wallets(), "Wallet must not exist after a failed write")
}
