package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTransfersOptions() {
	r := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/transfers", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateTransfer() {
	source := suite.createTestWallet(suite.T(), v1.WalletEditable{InitialBalance: decimal.NewFromInt(100)})
	destination := suite.createTestWallet(suite.T(), v1.WalletEditable{})

	transfer := suite.createTestTransfer(suite.T(), v1.TransferEditable{
		Amount:              decimal.NewFromInt(40),
		Note:                "Rent share",
		SourceWalletID:      source.Data.ID,
		DestinationWalletID: destination.Data.ID,
	})

	require.NotNil(suite.T(), transfer.Data)
	assert.Equal(suite.T(), "Rent share", transfer.Data.Note)
	assert.Contains(suite.T(), transfer.Data.Links.SourceWallet, source.Data.ID.String())
	assert.Contains(suite.T(), transfer.Data.Links.DestinationWallet, destination.Data.ID.String())

	// Both balances have to be updated
	r := test.Request(suite.controller, suite.T(), http.MethodGet, source.Data.Links.Self, "")
	var updatedSource v1.WalletResponse
	test.DecodeResponse(suite.T(), &r, &updatedSource)
	assert.True(suite.T(), updatedSource.Data.Balance.Equal(decimal.NewFromInt(60)), "Source balance is %s, should be 60", updatedSource.Data.Balance)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, destination.Data.Links.Self, "")
	var updatedDestination v1.WalletResponse
	test.DecodeResponse(suite.T(), &r, &updatedDestination)
	assert.True(suite.T(), updatedDestination.Data.Balance.Equal(decimal.NewFromInt(40)), "Destination balance is %s, should be 40", updatedDestination.Data.Balance)
}

func (suite *TestSuiteStandard) TestCreateTransferInsufficientFunds() {
	source := suite.createTestWallet(suite.T(), v1.WalletEditable{InitialBalance: decimal.NewFromInt(10)})
	destination := suite.createTestWallet(suite.T(), v1.WalletEditable{})

	response := suite.createTestTransfer(suite.T(), v1.TransferEditable{
		Amount:              decimal.NewFromInt(11),
		SourceWalletID:      source.Data.ID,
		DestinationWalletID: destination.Data.ID,
	}, http.StatusBadRequest)

	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), *response.Error, "insufficient funds")

	// The rejection must not touch either balance
	r := test.Request(suite.controller, suite.T(), http.MethodGet, source.Data.Links.Self, "")
	var updated v1.WalletResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), updated.Data.Balance.Equal(decimal.NewFromInt(10)))
}

func (suite *TestSuiteStandard) TestCreateTransferInvalid() {
	source := suite.createTestWallet(suite.T(), v1.WalletEditable{InitialBalance: decimal.NewFromInt(100)})
	destination := suite.createTestWallet(suite.T(), v1.WalletEditable{})
	foreign := suite.createTestWallet(suite.T(), v1.WalletEditable{Currency: "USD"})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"same wallet", v1.TransferEditable{Amount: decimal.NewFromInt(1), SourceWalletID: source.Data.ID, DestinationWalletID: source.Data.ID}, http.StatusBadRequest},
		{"zero amount", v1.TransferEditable{SourceWalletID: source.Data.ID, DestinationWalletID: destination.Data.ID}, http.StatusBadRequest},
		{"currency mismatch", v1.TransferEditable{Amount: decimal.NewFromInt(1), SourceWalletID: source.Data.ID, DestinationWalletID: foreign.Data.ID}, http.StatusBadRequest},
		{"missing source", v1.TransferEditable{Amount: decimal.NewFromInt(1), SourceWalletID: uuid.New(), DestinationWalletID: destination.Data.ID}, http.StatusNotFound},
		{"broken JSON", `{ "amount": `, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPost, "http://example.com/v1/transfers", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestGetTransfersFilter() {
	first := suite.createTestWallet(suite.T(), v1.WalletEditable{InitialBalance: decimal.NewFromInt(100)})
	second := suite.createTestWallet(suite.T(), v1.WalletEditable{InitialBalance: decimal.NewFromInt(100)})
	third := suite.createTestWallet(suite.T(), v1.WalletEditable{})

	suite.createTestTransfer(suite.T(), v1.TransferEditable{Amount: decimal.NewFromInt(10), SourceWalletID: first.Data.ID, DestinationWalletID: second.Data.ID})
	suite.createTestTransfer(suite.T(), v1.TransferEditable{Amount: decimal.NewFromInt(5), SourceWalletID: second.Data.ID, DestinationWalletID: third.Data.ID})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"no filter", "", 2},
		{"wallet on either side", fmt.Sprintf("wallet=%s", second.Data.ID), 2},
		{"wallet on one side", fmt.Sprintf("wallet=%s", first.Data.ID), 1},
		{"unknown wallet", fmt.Sprintf("wallet=%s", uuid.New()), 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transfers?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransferListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransferNotEditable() {
	source := suite.createTestWallet(suite.T(), v1.WalletEditable{InitialBalance: decimal.NewFromInt(100)})
	destination := suite.createTestWallet(suite.T(), v1.WalletEditable{})

	transfer := suite.createTestTransfer(suite.T(), v1.TransferEditable{
		Amount:              decimal.NewFromInt(10),
		SourceWalletID:      source.Data.ID,
		DestinationWalletID: destination.Data.ID,
	})

	r := test.Request(suite.controller, suite.T(), http.MethodPatch, transfer.Data.Links.Self, map[string]any{"amount": "20"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)
}

func (suite *TestSuiteStandard) TestDeleteTransfer() {
	source := suite.createTestWallet(suite.T(), v1.WalletEditable{InitialBalance: decimal.NewFromInt(100)})
	destination := suite.createTestWallet(suite.T(), v1.WalletEditable{})

	transfer := suite.createTestTransfer(suite.T(), v1.TransferEditable{
		Amount:              decimal.NewFromInt(40),
		SourceWalletID:      source.Data.ID,
		DestinationWalletID: destination.Data.ID,
	})

	r := test.Request(suite.controller, suite.T(), http.MethodDelete, transfer.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The deletion has to reverse the transfer on both sides
	r = test.Request(suite.controller, suite.T(), http.MethodGet, source.Data.Links.Self, "")
	var updatedSource v1.WalletResponse
	test.DecodeResponse(suite.T(), &r, &updatedSource)
	assert.True(suite.T(), updatedSource.Data.Balance.Equal(decimal.NewFromInt(100)), "Source balance is %s, should be 100", updatedSource.Data.Balance)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, destination.Data.Links.Self, "")
	var updatedDestination v1.WalletResponse
	test.DecodeResponse(suite.T(), &r, &updatedDestination)
	assert.True(suite.T(), updatedDestination.Data.Balance.IsZero(), "Destination balance is %s, should be 0", updatedDestination.Data.Balance)

	r = test.Request(suite.controller, suite.T(), http.MethodDelete, transfer.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
