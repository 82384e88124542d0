package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tesoreria-paralelo/backend/internal/httperror"
	"github.com/tesoreria-paralelo/backend/internal/httputil"
)

// RegisterPaymentRoutes registers the routes for Payments with
// the RouterGroup that is passed.
func (co Controller) RegisterPaymentRoutes(r *gin.RouterGroup) {
	authenticate := co.Authenticate()

	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", authenticate, co.GetPayments)
		r.POST("", authenticate, co.CreatePayment)
	}

	// Payment with ID
	{
		r.OPTIONS("/:id", httputil.OptionsDelete)
		r.DELETE("/:id", authenticate, co.DeletePayment)
	}
}

// @Summary		Record payment
// @Description	Marks the month of a student as paid. An existing payment for the same student, month and year is overwritten.
// @Tags			Payments
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	PaymentResponse	"The existing payment was updated"
// @Success		201		{object}	PaymentResponse	"A new payment was created"
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			payment	body		PaymentEditable	true	"Payment"
// @Router			/payments [post]
func (co Controller) CreatePayment(c *gin.Context) {
	var editable PaymentEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	p, created, err := currentTreasurer(c).RecordPayment(co.db(c), editable.StudentID.UUID, editable.Month, editable.Year, editable.Amount, editable.ReceiptImage)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	c.JSON(status, PaymentResponse{Data: newPayment(c, p)})
}

// @Summary		List payments
// @Description	Returns the payments of all students of the paralelo
// @Tags			Payments
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	PaymentListResponse
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/payments [get]
func (co Controller) GetPayments(c *gin.Context) {
	payments, err := currentTreasurer(c).Payments(co.db(c))
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	data := make([]Payment, 0, len(payments))
	for _, p := range payments {
		data = append(data, newPayment(c, p))
	}

	c.JSON(http.StatusOK, PaymentListResponse{Data: data})
}

// @Summary		Delete payment
// @Description	Deletes a payment
// @Tags			Payments
// @Security		BearerAuth
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		403	{object}	httperror.Error	"The payment belongs to a student of another paralelo"
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/payments/{id} [delete]
func (co Controller) DeletePayment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	err = currentTreasurer(c).DeletePayment(co.db(c), uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.Status(http.StatusNoContent)
}
