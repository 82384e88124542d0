package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tesoreria-paralelo/backend/internal/httperror"
	"github.com/tesoreria-paralelo/backend/internal/httputil"
	"github.com/tesoreria-paralelo/backend/internal/models"
)

// RegisterPaymentSettingsRoutes registers the routes for the dues schedule
// with the RouterGroup that is passed.
func (co Controller) RegisterPaymentSettingsRoutes(r *gin.RouterGroup) {
	authenticate := co.Authenticate()

	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", authenticate, co.GetPaymentSettings)
	r.POST("", authenticate, co.SetPaymentSettings)
}

// @Summary		Set payment settings
// @Description	Replaces the dues schedule of the paralelo
// @Tags			Payment Settings
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		201			{object}	PaymentSettingsResponse
// @Failure		400			{object}	httperror.Error
// @Failure		401			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			settings	body		PaymentSettingsEditable	true	"Payment settings"
// @Router			/payment-settings [post]
func (co Controller) SetPaymentSettings(c *gin.Context) {
	var editable PaymentSettingsEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	p, err := currentTreasurer(c).SetPaymentSettings(co.db(c), editable.MonthlyAmount, editable.SelectedMonths, editable.AcademicYear)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusCreated, PaymentSettingsResponse{Data: &p})
}

// @Summary		Get payment settings
// @Description	Returns the dues schedule of the paralelo. data is null if no schedule has been set.
// @Tags			Payment Settings
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	PaymentSettingsResponse
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/payment-settings [get]
func (co Controller) GetPaymentSettings(c *gin.Context) {
	p, err := currentTreasurer(c).PaymentSettings(co.db(c))
	if errors.Is(err, models.ErrResourceNotFound) {
		c.JSON(http.StatusOK, PaymentSettingsResponse{})
		return
	} else if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, PaymentSettingsResponse{Data: &p})
}
