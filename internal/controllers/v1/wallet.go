package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
)

// RegisterWalletRoutes registers the routes for wallets with the
// RouterGroup that is passed.
func (co Controller) RegisterWalletRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsWallets)
		r.GET("", co.GetWallets)
		r.POST("", co.CreateWallet)
	}

	// Totals for all wallets
	{
		r.OPTIONS("/totals", OptionsWalletTotals)
		r.GET("/totals", co.GetWalletTotals)
	}

	// Wallet with ID
	{
		r.OPTIONS("/:id", OptionsWalletDetail)
		r.GET("/:id", co.GetWallet)
		r.PATCH("/:id", co.UpdateWallet)
		r.DELETE("/:id", co.DeleteWallet)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wallets
// @Success		204
// @Router			/v1/wallets [options]
func OptionsWallets(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wallets
// @Success		204
// @Router			/v1/wallets/totals [options]
func OptionsWalletTotals(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wallets
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/wallets/{id} [options]
func OptionsWalletDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create wallet
// @Description	Creates a new wallet
// @Tags			Wallets
// @Accept			json
// @Produce		json
// @Success		201		{object}	WalletResponse
// @Failure		400		{object}	WalletResponse
// @Failure		409		{object}	WalletResponse
// @Failure		500		{object}	WalletResponse
// @Param			wallet	body		WalletEditable	true	"Wallet"
// @Router			/v1/wallets [post]
func (co Controller) CreateWallet(c *gin.Context) {
	var editable WalletEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, WalletResponse{Error: &e})
		return
	}

	wallet, err := co.Ledger.CreateWallet(c.Request.Context(), editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WalletResponse{Error: &e})
		return
	}

	data := newWallet(c, wallet)
	c.JSON(http.StatusCreated, WalletResponse{Data: &data})
}

// @Summary		List wallets
// @Description	Returns all wallets, sorted by name
// @Tags			Wallets
// @Produce		json
// @Success		200	{object}	WalletListResponse
// @Router			/v1/wallets [get]
func (co Controller) GetWallets(c *gin.Context) {
	wallets := co.Ledger.Wallets()

	data := make([]Wallet, 0, len(wallets))
	for _, wallet := range wallets {
		data = append(data, newWallet(c, wallet))
	}

	c.JSON(http.StatusOK, WalletListResponse{Data: data})
}

// @Summary		Wallet totals
// @Description	Returns the sum of all wallet balances and the number of wallets per type
// @Tags			Wallets
// @Produce		json
// @Success		200	{object}	WalletTotalsResponse
// @Router			/v1/wallets/totals [get]
func (co Controller) GetWalletTotals(c *gin.Context) {
	totals := co.Ledger.WalletTotals()

	data := WalletTotals{
		Total:  totals.Total,
		ByType: totals.ByType,
	}
	c.JSON(http.StatusOK, WalletTotalsResponse{Data: &data})
}

// @Summary		Get wallet
// @Description	Returns a specific wallet
// @Tags			Wallets
// @Produce		json
// @Success		200	{object}	WalletResponse
// @Failure		400	{object}	WalletResponse
// @Failure		404	{object}	WalletResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/wallets/{id} [get]
func (co Controller) GetWallet(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WalletResponse{Error: &e})
		return
	}

	wallet, err := co.Ledger.Wallet(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WalletResponse{Error: &e})
		return
	}

	data := newWallet(c, wallet)
	c.JSON(http.StatusOK, WalletResponse{Data: &data})
}

// @Summary		Update wallet
// @Description	Updates an existing wallet. Only values to be updated need to be specified. Balance, currency and initial balance cannot be changed.
// @Tags			Wallets
// @Accept			json
// @Produce		json
// @Success		200		{object}	WalletResponse
// @Failure		400		{object}	WalletResponse
// @Failure		404		{object}	WalletResponse
// @Failure		409		{object}	WalletResponse
// @Failure		500		{object}	WalletResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			wallet	body		WalletUpdateable	true	"Wallet"
// @Router			/v1/wallets/{id} [patch]
func (co Controller) UpdateWallet(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WalletResponse{Error: &e})
		return
	}

	var updateable WalletUpdateable
	err = httputil.BindData(c, &updateable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, WalletResponse{Error: &e})
		return
	}

	wallet, err := co.Ledger.UpdateWallet(c.Request.Context(), uri.ID.UUID, updateable.update())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WalletResponse{Error: &e})
		return
	}

	data := newWallet(c, wallet)
	c.JSON(http.StatusOK, WalletResponse{Data: &data})
}

// @Summary		Delete wallet
// @Description	Deletes a wallet. The wallet balance must be zero and no transfers may reference it.
// @Tags			Wallets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/wallets/{id} [delete]
func (co Controller) DeleteWallet(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = co.Ledger.DeleteWallet(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
