package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transfer represents an atomic two-sided balance movement between
// two distinct wallets.
type Transfer struct {
	DefaultModel
	Amount              decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"75.00"`
	Note                string          `json:"note,omitempty" example:"Rent share"`
	Date                time.Time       `json:"date" example:"2024-01-01T00:00:00Z"` // Time the transfer was executed
	SourceWalletID      uuid.UUID       `json:"sourceWalletId" gorm:"check:source_destination_different,source_wallet_id != destination_wallet_id" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`
	SourceWallet        Wallet          `json:"-"`
	DestinationWalletID uuid.UUID       `json:"destinationWalletId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"`
	DestinationWallet   Wallet          `json:"-"`
}

// BeforeSave trims the note and sets the timezone for the Date to UTC.
func (t *Transfer) BeforeSave(_ *gorm.DB) (err error) {
	t.Note = strings.TrimSpace(t.Note)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// AfterFind updates the timestamps to use UTC as timezone, not +0000.
func (t *Transfer) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

// Export returns all transfers on this instance.
func (Transfer) Export() (json.RawMessage, error) {
	var transfers []Transfer
	err := DB.Unscoped().Where(&Transfer{}).Find(&transfers).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&transfers)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
