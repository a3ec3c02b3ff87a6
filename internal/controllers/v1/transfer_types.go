package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	ez_uuid "github.com/pocketledger/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// TransferEditable contains the values needed to execute a transfer.
// Transfers cannot be edited after execution, only deleted.
type TransferEditable struct {
	Amount              decimal.Decimal `json:"amount" example:"75.00"`
	Note                string          `json:"note" example:"Rent share" default:""`
	SourceWalletID      uuid.UUID       `json:"sourceWalletId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`
	DestinationWalletID uuid.UUID       `json:"destinationWalletId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"`
}

// TransferQueryFilter contains the query parameters to filter the
// transfer list.
type TransferQueryFilter struct {
	Wallet ez_uuid.UUID `form:"wallet"` // Filter by wallet ID, either side of the transfer
}

func (f TransferQueryFilter) filter() ledger.TransferFilter {
	return ledger.TransferFilter{
		WalletID: f.Wallet.UUID,
	}
}

type TransferLinks struct {
	Self              string `json:"self" example:"https://example.com/api/v1/transfers/d430d7c3-d14c-4712-9336-ee56965a6673"`              // The transfer itself
	SourceWallet      string `json:"sourceWallet" example:"https://example.com/api/v1/wallets/fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`      // The debited wallet
	DestinationWallet string `json:"destinationWallet" example:"https://example.com/api/v1/wallets/8e16b456-a719-48ce-9fec-e115cfa7cbcc"` // The credited wallet
}

// Transfer is the v1 API representation of a transfer.
type Transfer struct {
	models.Transfer
	Links TransferLinks `json:"links"`
}

func newTransfer(c *gin.Context, model models.Transfer) Transfer {
	url := c.GetString(ContextURL)

	return Transfer{
		Transfer: model,
		Links: TransferLinks{
			Self:              fmt.Sprintf("%s/v1/transfers/%s", url, model.ID),
			SourceWallet:      fmt.Sprintf("%s/v1/wallets/%s", url, model.SourceWalletID),
			DestinationWallet: fmt.Sprintf("%s/v1/wallets/%s", url, model.DestinationWalletID),
		},
	}
}

type TransferResponse struct {
	Data  *Transfer `json:"data"`
	Error *string   `json:"error"`
}

type TransferListResponse struct {
	Data  []Transfer `json:"data"`
	Error *string    `json:"error"`
}
