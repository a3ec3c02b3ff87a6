package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAddTransaction() {
	wallet := suite.createTestWallet(models.Wallet{InitialBalance: decimal.NewFromInt(100)})

	income, err := suite.ledger.AddTransaction(context.Background(), models.Transaction{
		Type:     models.TransactionTypeIncome,
		Amount:   decimal.NewFromInt(50),
		Category: "Salary",
		WalletID: wallet.ID,
	})
	require.Nil(suite.T(), err)
	assert.NotEqual(suite.T(), uuid.Nil, income.ID, "ID is not set")
	assert.False(suite.T(), income.Date.IsZero(), "Date is not defaulted")

	balance, err := suite.ledger.Balance(wallet.ID)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), balance.Equal(decimal.NewFromInt(150)), "Income is not applied, balance is %s", balance)

	_, err = suite.ledger.AddTransaction(context.Background(), models.Transaction{
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromFloat(12.5),
		Category: "Food",
		WalletID: wallet.ID,
	})
	require.Nil(suite.T(), err)

	balance, err = suite.ledger.Balance(wallet.ID)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), balance.Equal(decimal.NewFromFloat(137.5)), "Expense is not applied, balance is %s", balance)
}

func (suite *TestSuiteStandard) TestAddTransactionOverdraw() {
	wallet := suite.createTestWallet(models.Wallet{})

	// Expenses may drive the balance negative
	_, err := suite.ledger.AddTransaction(context.Background(), models.Transaction{
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(40),
		Category: "Rent",
		WalletID: wallet.ID,
	})
	require.Nil(suite.T(), err)

	balance, err := suite.ledger.Balance(wallet.ID)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), balance.Equal(decimal.NewFromInt(-40)), "Balance is %s, should be -40", balance)
}

func (suite *TestSuiteStandard) TestAddTransactionInvalid() {
	wallet := suite.createTestWallet(models.Wallet{})

	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{"zero amount", models.Transaction{Type: models.TransactionTypeExpense, Category: "Food", WalletID: wallet.ID}, ledger.ErrAmountNotPositive},
		{"negative amount", models.Transaction{Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(-1), Category: "Food", WalletID: wallet.ID}, ledger.ErrAmountNotPositive},
		{"invalid type", models.Transaction{Type: "donation", Amount: decimal.NewFromInt(1), Category: "Food", WalletID: wallet.ID}, ledger.ErrTransactionTypeInvalid},
		{"empty category", models.Transaction{Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(1), Category: " ", WalletID: wallet.ID}, ledger.ErrCategoryEmpty},
		{"missing wallet", models.Transaction{Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(1), Category: "Food", WalletID: uuid.New()}, ledger.ErrWalletNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := suite.ledger.AddTransaction(context.Background(), tt.transaction)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	balance, err := suite.ledger.Balance(wallet.ID)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), balance.IsZero(), "Rejected transactions must not change the balance")
}

func (suite *TestSuiteStandard) TestAddTransactionStoreFailure() {
	wallet := suite.createTestWallet(models.Wallet{InitialBalance: decimal.NewFromInt(10)})

	suite.store.failNext = errTestStore
	_, err := suite.ledger.AddTransaction(context.Background(), models.Transaction{
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(5),
		Category: "Food",
		WalletID: wallet.ID,
	})
	assert.ErrorIs(suite.T(), err, ledger.ErrPersistence)

	balance, err := suite.ledger.Balance(wallet.ID)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), balance.Equal(decimal.NewFromInt(10)), "Balance changed on a failed write")
	assert.Empty(suite.T(), suite.ledger.Transactions(ledger.TransactionFilter{}), "Transaction exists after a failed write")
}

func (suite *TestSuiteStandard) TestUpdateTransaction() {
	wallet := suite.createTestWallet(models.Wallet{InitialBalance: decimal.NewFromInt(100)})
	transaction := suite.createTestTransaction(models.Transaction{
		WalletID: wallet.ID,
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(30),
	})

	// 100 - 30 = 70. Changing the amount to 10 has to give 90.
	amount := decimal.NewFromInt(10)
	updated, err := suite.ledger.UpdateTransaction(context.Background(), transaction.ID, ledger.TransactionUpdate{
		Amount: &amount,
	})
	require.Nil(suite.T(), err)
	assert.True(suite.T(), updated.Amount.Equal(amount))

	balance, err := suite.ledger.Balance(wallet.ID)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), balance.Equal(decimal.NewFromInt(90)), "Balance is %s, should be 90", balance)

	// Flipping the type reverses the sign: 100 + 10 = 110
	newType := models.TransactionTypeIncome
	_, err = suite.ledger.UpdateTransaction(context.Background(), transaction.ID, ledger.TransactionUpdate{
		Type: &newType,
	})
	require.Nil(suite.T(), err)

	balance, err = suite.ledger.Balance(wallet.ID)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), balance.Equal(decimal.NewFromInt(110)), "Balance is %s, should be 110", balance)
}

func (suite *TestSuiteStandard) TestUpdateTransactionMoveWallet() {
	first := suite.createTestWallet(models.Wallet{InitialBalance: decimal.NewFromInt(100)})
	second := suite.createTestWallet(models.Wallet{InitialBalance: decimal.NewFromInt(100)})

	transaction := suite.createTestTransaction(models.Transaction{
		WalletID: first.ID,
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(25),
	})

	_, err := suite.ledger.UpdateTransaction(context.Background(), transaction.ID, ledger.TransactionUpdate{
		WalletID: &second.ID,
	})
	require.Nil(suite.T(), err)

	firstBalance, err := suite.ledger.Balance(first.ID)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), firstBalance.Equal(decimal.NewFromInt(100)), "Old wallet balance is %s, should be 100", firstBalance)

	secondBalance, err := suite.ledger.Balance(second.ID)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), secondBalance.Equal(decimal.NewFromInt(75)), "New wallet balance is %s, should be 75", secondBalance)
}

func (suite *TestSuiteStandard) TestUpdateTransactionInvalid() {
	wallet := suite.createTestWallet(models.Wallet{})
	transaction := suite.createTestTransaction(models.Transaction{WalletID: wallet.ID})

	zero := decimal.Zero
	_, err := suite.ledger.UpdateTransaction(context.Background(), transaction.ID, ledger.TransactionUpdate{Amount: &zero})
	assert.ErrorIs(suite.T(), err, ledger.ErrAmountNotPositive)

	_, err = suite.ledger.UpdateTransaction(context.Background(), uuid.New(), ledger.TransactionUpdate{})
	assert.ErrorIs(suite.T(), err, ledger.ErrTransactionNotFound)
}

func (suite *TestSuiteStandard) TestDeleteTransaction() {
	wallet := suite.createTestWallet(models.Wallet{InitialBalance: decimal.NewFromInt(50)})
	transaction := suite.createTestTransaction(models.Transaction{
		WalletID: wallet.ID,
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(20),
	})

	err := suite.ledger.DeleteTransaction(context.Background(), transaction.ID)
	require.Nil(suite.T(), err)

	balance, err := suite.ledger.Balance(wallet.ID)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), balance.Equal(decimal.NewFromInt(50)), "Deleting the transaction did not restore the balance")

	err = suite.ledger.DeleteTransaction(context.Background(), transaction.ID)
	assert.ErrorIs(suite.T(), err, ledger.ErrTransactionNotFound)
}

func (suite *TestSuiteStandard) TestTransactionDateUTC() {
	wallet := suite.createTestWallet(models.Wallet{})

	tz, _ := time.LoadLocation("Europe/Berlin")
	transaction := suite.createTestTransaction(models.Transaction{
		WalletID: wallet.ID,
		Date:     time.Date(2024, 3, 19, 12, 0, 0, 0, tz),
	})

	assert.Equal(suite.T(), time.UTC, transaction.Date.Location(), "Timezone for transaction date is not UTC")
}
