package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
)

// RegisterTransferRoutes registers the routes for transfers with the
// RouterGroup that is passed.
func (co Controller) RegisterTransferRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransfers)
		r.GET("", co.GetTransfers)
		r.POST("", co.CreateTransfer)
	}

	// Transfer with ID
	{
		r.OPTIONS("/:id", OptionsTransferDetail)
		r.GET("/:id", co.GetTransfer)
		r.DELETE("/:id", co.DeleteTransfer)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transfers
// @Success		204
// @Router			/v1/transfers [options]
func OptionsTransfers(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transfers
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transfers/{id} [options]
func OptionsTransferDetail(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Execute transfer
// @Description	Moves an amount between two wallets. Both balance changes and the transfer record commit atomically. The source wallet must hold at least the transferred amount.
// @Tags			Transfers
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransferResponse
// @Failure		400			{object}	TransferResponse
// @Failure		404			{object}	TransferResponse
// @Failure		500			{object}	TransferResponse
// @Param			transfer	body		TransferEditable	true	"Transfer"
// @Router			/v1/transfers [post]
func (co Controller) CreateTransfer(c *gin.Context) {
	var editable TransferEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransferResponse{Error: &e})
		return
	}

	transfer, err := co.Ledger.Transfer(c.Request.Context(), editable.SourceWalletID, editable.DestinationWalletID, editable.Amount, editable.Note)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{Error: &e})
		return
	}

	data := newTransfer(c, transfer)
	c.JSON(http.StatusCreated, TransferResponse{Data: &data})
}

// @Summary		List transfers
// @Description	Returns transfers matching the filter, newest first
// @Tags			Transfers
// @Produce		json
// @Success		200	{object}	TransferListResponse
// @Failure		400	{object}	TransferListResponse
// @Router			/v1/transfers [get]
// @Param			wallet	query	string	false	"Filter by wallet ID, either side of the transfer"
func (co Controller) GetTransfers(c *gin.Context) {
	var filter TransferQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransferListResponse{Error: &e})
		return
	}

	transfers := co.Ledger.Transfers(filter.filter())

	data := make([]Transfer, 0, len(transfers))
	for _, transfer := range transfers {
		data = append(data, newTransfer(c, transfer))
	}

	c.JSON(http.StatusOK, TransferListResponse{Data: data})
}

// @Summary		Get transfer
// @Description	Returns a specific transfer
// @Tags			Transfers
// @Produce		json
// @Success		200	{object}	TransferResponse
// @Failure		400	{object}	TransferResponse
// @Failure		404	{object}	TransferResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transfers/{id} [get]
func (co Controller) GetTransfer(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{Error: &e})
		return
	}

	transfer, err := co.Ledger.TransferByID(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{Error: &e})
		return
	}

	data := newTransfer(c, transfer)
	c.JSON(http.StatusOK, TransferResponse{Data: &data})
}

// @Summary		Delete transfer
// @Description	Deletes a transfer and reverses its effect on both wallet balances
// @Tags			Transfers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transfers/{id} [delete]
func (co Controller) DeleteTransfer(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = co.Ledger.DeleteTransfer(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
