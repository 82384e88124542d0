package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tesoreria-paralelo/backend/internal/httperror"
	"github.com/tesoreria-paralelo/backend/internal/httputil"
	"github.com/tesoreria-paralelo/backend/internal/models"
)

func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/summary", httputil.OptionsGet)
	r.GET("/summary", co.Authenticate(), co.GetDashboardSummary)
}

// @Summary		Dashboard summary
// @Description	Returns income, expenses, balance, number of students and pending payments of the paralelo
// @Tags			Dashboard
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	SummaryResponse
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/dashboard/summary [get]
func (co Controller) GetDashboardSummary(c *gin.Context) {
	s, err := models.Summarize(co.db(c), currentTreasurer(c).ID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: s})
}
