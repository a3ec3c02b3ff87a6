// Package v1 implements the HTTP presentation layer for the ledger.
//
// Handlers are methods on Controller, which carries the ledger
// instance it presents. There is no package level state besides the
// shared database handle in the models package.
package v1

import (
	"errors"
	"net/http"

	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	ez_uuid "github.com/pocketledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

// ContextURL is the context key for the instance base URL, set by the
// router middleware and used to construct resource links.
const ContextURL = "pocketledger-url"

type Controller struct {
	Ledger *ledger.Ledger
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is
// passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", GetV1)
	r.OPTIONS("", OptionsV1)
	r.DELETE("", co.Cleanup)

	co.RegisterWalletRoutes(r.Group("/wallets"))
	co.RegisterTransactionRoutes(r.Group("/transactions"))
	co.RegisterTransferRoutes(r.Group("/transfers"))
	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterExportRoutes(r.Group("/export"))
}

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type httpError struct {
	Error string `json:"error" example:"the wallet name must not be empty"`
}

// status returns the HTTP status for a ledger or database error.
func status(err error) int {
	switch {
	case errors.Is(err, ledger.ErrNotFound), errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrPersistence), errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Wallets      string `json:"wallets" example:"https://example.com/api/v1/wallets"`
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"`
	Transfers    string `json:"transfers" example:"https://example.com/api/v1/transfers"`
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets"`
	Export       string `json:"export" example:"https://example.com/api/v1/export"`
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := c.GetString(ContextURL)

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Wallets:      url + "/v1/wallets",
			Transactions: url + "/v1/transactions",
			Transfers:    url + "/v1/transfers",
			Budgets:      url + "/v1/budgets",
			Export:       url + "/v1/export",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET, DELETE")
	c.Status(http.StatusNoContent)
}
