package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// WalletEditable contains the values needed to create a wallet.
type WalletEditable struct {
	Name           string            `json:"name" example:"Checking"`
	Type           models.WalletType `json:"type" example:"bank" default:"bank"`
	Currency       string            `json:"currency" example:"EUR" default:"EUR"` // ISO 4217 code
	Note           string            `json:"note" example:"Main household account" default:""`
	InitialBalance decimal.Decimal   `json:"initialBalance" example:"100.00" default:"0"`
}

// model returns the database resource for the API representation.
func (editable WalletEditable) model() models.Wallet {
	return models.Wallet{
		Name:           editable.Name,
		Type:           editable.Type,
		Currency:       editable.Currency,
		Note:           editable.Note,
		InitialBalance: editable.InitialBalance,
	}
}

// WalletUpdateable contains the fields that can be patched after
// creation. Fields that are not sent stay unchanged.
type WalletUpdateable struct {
	Name     *string            `json:"name" example:"Checking"`
	Type     *models.WalletType `json:"type" example:"cash"`
	Note     *string            `json:"note" example:"Main household account"`
	Archived *bool              `json:"archived" example:"true"`
}

func (updateable WalletUpdateable) update() ledger.WalletUpdate {
	return ledger.WalletUpdate{
		Name:     updateable.Name,
		Type:     updateable.Type,
		Note:     updateable.Note,
		Archived: updateable.Archived,
	}
}

type WalletLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/wallets/d430d7c3-d14c-4712-9336-ee56965a6673"`                      // The wallet itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?wallet=d430d7c3-d14c-4712-9336-ee56965a6673"` // Transactions referencing the wallet
	Transfers    string `json:"transfers" example:"https://example.com/api/v1/transfers?wallet=d430d7c3-d14c-4712-9336-ee56965a6673"`       // Transfers referencing the wallet
}

// Wallet is the v1 API representation of a wallet.
type Wallet struct {
	models.Wallet
	Links WalletLinks `json:"links"`
}

func newWallet(c *gin.Context, model models.Wallet) Wallet {
	url := c.GetString(ContextURL)

	return Wallet{
		Wallet: model,
		Links: WalletLinks{
			Self:         fmt.Sprintf("%s/v1/wallets/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?wallet=%s", url, model.ID),
			Transfers:    fmt.Sprintf("%s/v1/transfers?wallet=%s", url, model.ID),
		},
	}
}

type WalletResponse struct {
	Data  *Wallet `json:"data"`
	Error *string `json:"error"`
}

type WalletListResponse struct {
	Data  []Wallet `json:"data"`
	Error *string  `json:"error"`
}

// WalletTotals sums up all wallets on the instance.
type WalletTotals struct {
	Total  decimal.Decimal           `json:"total" example:"1234.56"` // Sum of all wallet balances
	ByType map[models.WalletType]int `json:"byType"`                  // Number of wallets per type
}

type WalletTotalsResponse struct {
	Data  *WalletTotals `json:"data"`
	Error *string       `json:"error"`
}
