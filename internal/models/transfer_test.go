package models_test

import (
	"time"

	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTransferSameWalletRejected() {
	wallet := suite.createTestWallet(models.Wallet{})

	transfer := models.Transfer{
		Amount:              decimal.NewFromInt(10),
		SourceWalletID:      wallet.ID,
		DestinationWalletID: wallet.ID,
	}

	err := models.DB.Create(&transfer).Error
	assert.ErrorIs(suite.T(), err, models.ErrSourceDoesNotEqualDestination)
}

func (suite *TestSuiteStandard) TestTransferDateUTC() {
	source := suite.createTestWallet(models.Wallet{Name: "Source"})
	destination := suite.createTestWallet(models.Wallet{Name: "Destination"})

	tz, _ := time.LoadLocation("Europe/Berlin")
	transfer := models.Transfer{
		Amount:              decimal.NewFromInt(10),
		Date:                time.Date(2024, 3, 19, 12, 0, 0, 0, tz),
		SourceWalletID:      source.ID,
		DestinationWalletID: destination.ID,
	}

	err := models.DB.Create(&transfer).Error
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), time.UTC, transfer.Date.Location(), "Timezone for transfer date is not UTC")

	var read models.Transfer
	err = models.DB.First(&read, "id = ?", transfer.ID).Error
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), time.UTC, read.Date.Location(), "Timezone for transfer date is not UTC after reading")
}

func (suite *TestSuiteStandard) TestTransferDateDefaulted() {
	source := suite.createTestWallet(models.Wallet{Name: "Source"})
	destination := suite.createTestWallet(models.Wallet{Name: "Destination"})

	transfer := models.Transfer{
		Amount:              decimal.NewFromInt(10),
		SourceWalletID:      source.ID,
		DestinationWalletID: destination.ID,
	}

	err := models.DB.Create(&transfer).Error
	require.Nil(suite.T(), err)
	assert.False(suite.T(), transfer.Date.IsZero(), "Date is not defaulted on save")
}
