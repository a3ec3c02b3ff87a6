package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WalletType describes what kind of money store a wallet is.
type WalletType string

const (
	WalletTypeBank   WalletType = "bank"
	WalletTypeCash   WalletType = "cash"
	WalletTypeMobile WalletType = "mobile"
	WalletTypeCard   WalletType = "card"
)

// WalletTypes contains all valid wallet types.
var WalletTypes = []WalletType{WalletTypeBank, WalletTypeCash, WalletTypeMobile, WalletTypeCard}

// Wallet represents a balance-holding account, e.g. a bank account
// or the cash in your pocket.
//
// Balance is maintained by the ledger and always equals InitialBalance
// plus the signed effects of all transactions and transfers that
// reference the wallet.
type Wallet struct {
	DefaultModel
	Name           string          `json:"name" gorm:"uniqueIndex:wallet_name" example:"Checking"`
	Type           WalletType      `json:"type" example:"bank"`
	Currency       string          `json:"currency" example:"EUR"` // ISO 4217 code
	Note           string          `json:"note,omitempty" example:"Main household account"`
	InitialBalance decimal.Decimal `json:"initialBalance" gorm:"type:DECIMAL(20,8)" example:"100.00"`
	Balance        decimal.Decimal `json:"balance" gorm:"type:DECIMAL(20,8)" example:"70.00"`
	Archived       bool            `json:"archived" example:"false"`
}

// BeforeSave trims whitespace from all strings and normalizes
// the currency code.
func (w *Wallet) BeforeSave(_ *gorm.DB) error {
	w.Name = strings.TrimSpace(w.Name)
	w.Note = strings.TrimSpace(w.Note)
	w.Currency = strings.ToUpper(strings.TrimSpace(w.Currency))

	return nil
}

// Export returns all wallets on this instance.
func (Wallet) Export() (json.RawMessage, error) {
	var wallets []Wallet
	err := DB.Unscoped().Where(&Wallet{}).Find(&wallets).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&wallets)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
