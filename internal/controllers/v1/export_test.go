package v1_test

import (
	"encoding/json"
	"net/http"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExportOptions() {
	r := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestExport() {
	wallet := suite.createTestWallet(suite.T(), v1.WalletEditable{InitialBalance: decimal.NewFromInt(100)})
	suite.createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(10), WalletID: wallet.Data.ID})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.False(suite.T(), response.CreationTime.IsZero())

	for _, key := range []string{"Wallet", "Transaction", "Transfer", "Budget"} {
		require.Contains(suite.T(), response.Data, key)
	}

	var wallets []models.Wallet
	require.Nil(suite.T(), json.Unmarshal(response.Data["Wallet"], &wallets))
	require.Len(suite.T(), wallets, 1)
	assert.Equal(suite.T(), wallet.Data.ID, wallets[0].ID)
}
