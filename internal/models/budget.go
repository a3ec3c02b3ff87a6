package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget represents a spending limit for a set of transaction categories.
//
// Category supports glob matching, so "Food*" covers both "Food" and
// "Food: Restaurants". Budgets are read-only for the ledger, the
// spent sum is derived from the recorded expense transactions.
type Budget struct {
	DefaultModel
	Category string          `json:"category" gorm:"uniqueIndex:budget_category" example:"Food*"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"300.00"` // The spending limit
	Note     string          `json:"note,omitempty" example:"Groceries and eating out"`
}

// BeforeSave trims whitespace from all strings.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Category = strings.TrimSpace(b.Category)
	b.Note = strings.TrimSpace(b.Note)

	return nil
}

// Export returns all budgets on this instance.
func (Budget) Export() (json.RawMessage, error) {
	var budgets []Budget
	err := DB.Unscoped().Where(&Budget{}).Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&budgets)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
