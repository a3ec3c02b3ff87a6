package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// BudgetEditable contains the values needed to create or update a budget.
type BudgetEditable struct {
	Category string          `json:"category" example:"Food*"`   // Glob pattern for transaction categories
	Amount   decimal.Decimal `json:"amount" example:"300.00"`    // The spending limit
	Note     string          `json:"note" example:"" default:""` // A note
}

// model returns the database resource for the API representation.
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Category: editable.Category,
		Amount:   editable.Amount,
		Note:     editable.Note,
	}
}

type BudgetLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/budgets/d430d7c3-d14c-4712-9336-ee56965a6673"`                 // The budget itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=Food%2A&type=expense"` // The expense transactions counted against the budget
}

// Budget is the v1 API representation of a budget. Spent and
// Percentage are derived from the recorded expense transactions.
type Budget struct {
	models.Budget
	Spent      decimal.Decimal `json:"spent" example:"120.00"`   // Sum of matching expense transactions
	Percentage decimal.Decimal `json:"percentage" example:"40"`  // Spent as a percentage of the limit
	Links      BudgetLinks     `json:"links"`
}

func (co Controller) newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(ContextURL)

	spent := co.Ledger.SpentForCategory(model.Category)

	percentage := decimal.Zero
	if !model.Amount.IsZero() {
		percentage = spent.Div(model.Amount).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return Budget{
		Budget:     model,
		Spent:      spent,
		Percentage: percentage,
		Links: BudgetLinks{
			Self:         fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s&type=expense", url, model.Category),
		},
	}
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`
	Error *string `json:"error"`
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`
	Error *string  `json:"error"`
}
