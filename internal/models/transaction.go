package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType determines whether a transaction credits or
// debits its wallet.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// TransactionTypes contains all valid transaction types.
var TransactionTypes = []TransactionType{TransactionTypeIncome, TransactionTypeExpense}

// Transaction represents a single income or expense event
// affecting exactly one wallet.
type Transaction struct {
	DefaultModel
	Type     TransactionType `json:"type" example:"expense"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.03"` // Always positive, the sign is implied by Type
	Category string          `json:"category" example:"Food"`
	Note     string          `json:"note,omitempty" example:"Lunch"`
	Date     time.Time       `json:"date" example:"2024-01-01T00:00:00Z"` // Date of the transaction, user editable
	WalletID uuid.UUID       `json:"walletId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`
	Wallet   Wallet          `json:"-"`
}

// SignedAmount is the effect of the transaction on the balance of its
// wallet: positive for income, negative for expenses.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}

	return t.Amount
}

// BeforeSave trims strings and sets the timezone for the Date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Category = strings.TrimSpace(t.Category)
	t.Note = strings.TrimSpace(t.Note)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// AfterFind updates the timestamps to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

// Export returns all transactions on this instance.
func (Transaction) Export() (json.RawMessage, error) {
	var transactions []Transaction
	err := DB.Unscoped().Where(&Transaction{}).Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&transactions)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
