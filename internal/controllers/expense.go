package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tesoreria-paralelo/backend/internal/httperror"
	"github.com/tesoreria-paralelo/backend/internal/httputil"
)

// RegisterExpenseRoutes registers the routes for Expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	authenticate := co.Authenticate()

	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", authenticate, co.GetExpenses)
		r.POST("", authenticate, co.CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", httputil.OptionsDelete)
		r.DELETE("/:id", authenticate, co.DeleteExpense)
	}
}

// @Summary		Record expense
// @Description	Records an expense of the paralelo
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	e, err := currentTreasurer(c).RecordExpense(co.db(c), editable.ResponsibleStudentID.UUID, editable.Description, editable.Amount, editable.ActivityImage)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: newExpense(c, e)})
}

// @Summary		List expenses
// @Description	Returns the expenses of the paralelo, newest first
// @Tags			Expenses
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	ExpenseListResponse
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	expenses, err := currentTreasurer(c).Expenses(co.db(c))
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	data := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		data = append(data, newExpense(c, e))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: data})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Security		BearerAuth
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	err = currentTreasurer(c).DeleteExpense(co.db(c), uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.Status(http.StatusNoContent)
}
