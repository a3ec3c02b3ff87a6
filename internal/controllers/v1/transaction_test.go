package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTransactionsOptions() {
	r := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateTransaction() {
	wallet := suite.createTestWallet(suite.T(), v1.WalletEditable{InitialBalance: decimal.NewFromInt(100)})

	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromFloat(14.03),
		Category: "Food",
		WalletID: wallet.Data.ID,
	})

	require.NotNil(suite.T(), transaction.Data)
	assert.False(suite.T(), transaction.Data.Date.IsZero(), "Date is not defaulted")
	assert.Contains(suite.T(), transaction.Data.Links.Wallet, wallet.Data.ID.String())

	// The wallet balance has to reflect the expense
	r := test.Request(suite.controller, suite.T(), http.MethodGet, wallet.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.WalletResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), updated.Data.Balance.Equal(decimal.NewFromFloat(85.97)), "Balance is %s, should be 85.97", updated.Data.Balance)
}

func (suite *TestSuiteStandard) TestCreateTransactionInvalid() {
	wallet := suite.createTestWallet(suite.T(), v1.WalletEditable{})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"zero amount", v1.TransactionEditable{Type: models.TransactionTypeExpense, Category: "Food", WalletID: wallet.Data.ID}, http.StatusBadRequest},
		{"invalid type", v1.TransactionEditable{Type: "donation", Amount: decimal.NewFromInt(1), Category: "Food", WalletID: wallet.Data.ID}, http.StatusBadRequest},
		{"empty category", v1.TransactionEditable{Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(1), Category: " ", WalletID: wallet.Data.ID}, http.StatusBadRequest},
		{"missing wallet", v1.TransactionEditable{Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(1), Category: "Food", WalletID: uuid.New()}, http.StatusNotFound},
		{"broken JSON", `{ "amount": `, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestGetTransactionsFilter() {
	wallet := suite.createTestWallet(suite.T(), v1.WalletEditable{InitialBalance: decimal.NewFromInt(100)})
	other := suite.createTestWallet(suite.T(), v1.WalletEditable{InitialBalance: decimal.NewFromInt(100)})

	suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(10),
		Category: "Food: Groceries",
		Date:     time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		WalletID: wallet.Data.ID,
	})
	suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:     models.TransactionTypeIncome,
		Amount:   decimal.NewFromInt(2000),
		Category: "Salary",
		Date:     time.Date(2024, 3, 28, 12, 0, 0, 0, time.UTC),
		WalletID: other.Data.ID,
	})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"no filter", "", 2},
		{"by wallet", fmt.Sprintf("wallet=%s", wallet.Data.ID), 1},
		{"by type", "type=income", 1},
		{"by category glob", "category=Food*", 1},
		{"by date range", "fromDate=2024-03-01&untilDate=2024-03-01", 1},
		{"no match", "category=Travel*", 0},
		{"invalid wallet ID", "wallet=NotAUUID", -1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")

			if tt.count < 0 {
				test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
				return
			}

			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateTransaction() {
	wallet := suite.createTestWallet(suite.T(), v1.WalletEditable{InitialBalance: decimal.NewFromInt(100)})
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(30),
		Category: "Food",
		WalletID: wallet.Data.ID,
	})

	r := test.Request(suite.controller, suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{
		"amount": "10",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromInt(10)))

	// 100 - 10 = 90
	r = test.Request(suite.controller, suite.T(), http.MethodGet, wallet.Data.Links.Self, "")
	var updated v1.WalletResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), updated.Data.Balance.Equal(decimal.NewFromInt(90)), "Balance is %s, should be 90", updated.Data.Balance)
}

func (suite *TestSuiteStandard) TestDeleteTransaction() {
	wallet := suite.createTestWallet(suite.T(), v1.WalletEditable{InitialBalance: decimal.NewFromInt(100)})
	transaction := suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(30),
		Category: "Food",
		WalletID: wallet.Data.ID,
	})

	r := test.Request(suite.controller, suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The deletion has to restore the balance
	r = test.Request(suite.controller, suite.T(), http.MethodGet, wallet.Data.Links.Self, "")
	var updated v1.WalletResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), updated.Data.Balance.Equal(decimal.NewFromInt(100)), "Balance is %s, should be 100", updated.Data.Balance)

	r = test.Request(suite.controller, suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
