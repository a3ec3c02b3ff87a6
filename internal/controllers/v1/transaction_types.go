package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	ez_uuid "github.com/pocketledger/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable contains the values needed to record a transaction.
type TransactionEditable struct {
	Type     models.TransactionType `json:"type" example:"expense"`
	Amount   decimal.Decimal        `json:"amount" example:"14.03"` // Always positive, the sign is implied by Type
	Category string                 `json:"category" example:"Food"`
	Note     string                 `json:"note" example:"Lunch" default:""`
	Date     time.Time              `json:"date" example:"2024-01-01T00:00:00Z"` // Defaults to the current time
	WalletID uuid.UUID              `json:"walletId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`
}

// model returns the database resource for the API representation.
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Type:     editable.Type,
		Amount:   editable.Amount,
		Category: editable.Category,
		Note:     editable.Note,
		Date:     editable.Date,
		WalletID: editable.WalletID,
	}
}

// TransactionUpdateable contains the fields that can be patched.
// Fields that are not sent stay unchanged.
type TransactionUpdateable struct {
	Type     *models.TransactionType `json:"type" example:"income"`
	Amount   *decimal.Decimal        `json:"amount" example:"20.00"`
	Category *string                 `json:"category" example:"Salary"`
	Note     *string                 `json:"note" example:"Lunch with friends"`
	Date     *time.Time              `json:"date" example:"2024-01-02T00:00:00Z"`
	WalletID *uuid.UUID              `json:"walletId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"`
}

func (updateable TransactionUpdateable) update() ledger.TransactionUpdate {
	return ledger.TransactionUpdate{
		Type:     updateable.Type,
		Amount:   updateable.Amount,
		Category: updateable.Category,
		Note:     updateable.Note,
		Date:     updateable.Date,
		WalletID: updateable.WalletID,
	}
}

// TransactionQueryFilter contains the query parameters to filter the
// transaction list.
type TransactionQueryFilter struct {
	Wallet    ez_uuid.UUID `form:"wallet"`                                                  // Filter by wallet ID
	Type      string       `form:"type"`                                                    // income or expense
	Category  string       `form:"category"`                                                // Glob pattern for the category
	FromDate  time.Time    `form:"fromDate" time_format:"2006-01-02" time_utc:"1"`          // Transactions at and after this date
	UntilDate time.Time    `form:"untilDate" time_format:"2006-01-02" time_utc:"1"`         // Transactions before and at this date
}

func (f TransactionQueryFilter) filter() ledger.TransactionFilter {
	until := f.UntilDate
	if !until.IsZero() {
		// Include the whole day
		until = until.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	return ledger.TransactionFilter{
		WalletID: f.Wallet.UUID,
		Type:     models.TransactionType(f.Type),
		Category: f.Category,
		From:     f.FromDate,
		Until:    until,
	}
}

type TransactionLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`  // The transaction itself
	Wallet string `json:"wallet" example:"https://example.com/api/v1/wallets/fd81dc45-a3a2-468e-a6fa-b2618f30aa45"` // The wallet the transaction references
}

// Transaction is the v1 API representation of a transaction.
type Transaction struct {
	models.Transaction
	Links TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(ContextURL)

	return Transaction{
		Transaction: model,
		Links: TransactionLinks{
			Self:   fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Wallet: fmt.Sprintf("%s/v1/wallets/%s", url, model.WalletID),
		},
	}
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`
	Error *string      `json:"error"`
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`
	Error *string       `json:"error"`
}
