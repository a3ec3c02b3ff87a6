package models_test

import (
	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionSignedAmount() {
	income := models.Transaction{Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(10)}
	assert.True(suite.T(), income.SignedAmount().Equal(decimal.NewFromInt(10)))

	expense := models.Transaction{Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(10)}
	assert.True(suite.T(), expense.SignedAmount().Equal(decimal.NewFromInt(-10)))
}

func (suite *TestSuiteStandard) TestTransactionTrimWhitespace() {
	wallet := suite.createTestWallet(models.Wallet{})

	transaction := suite.createTestTransaction(models.Transaction{
		Category: " Food ",
		Note:     "\tLunch ",
		WalletID: wallet.ID,
	})

	assert.Equal(suite.T(), "Food", transaction.Category)
	assert.Equal(suite.T(), "Lunch", transaction.Note)
}

func (suite *TestSuiteStandard) TestTransactionDateDefaulted() {
	wallet := suite.createTestWallet(models.Wallet{})

	transaction := suite.createTestTransaction(models.Transaction{WalletID: wallet.ID})
	assert.False(suite.T(), transaction.Date.IsZero(), "Date is not defaulted on save")
}
