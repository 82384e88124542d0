package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tesoreria-paralelo/backend/internal/httperror"
	"github.com/tesoreria-paralelo/backend/internal/httputil"
	"github.com/tesoreria-paralelo/backend/internal/models"
)

// RegisterPublicRoutes registers the unauthenticated read-only routes
// with the RouterGroup that is passed.
func (co Controller) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/student/:cedula", httputil.OptionsGet)
	r.GET("/student/:cedula", co.GetPublicStudent)

	r.OPTIONS("/paralelo/:tesoreroId/summary", httputil.OptionsGet)
	r.GET("/paralelo/:tesoreroId/summary", co.GetPublicParaleloSummary)
}

// @Summary		Public student information
// @Description	Returns a student and their paid payments by cedula. data is null if no student has the cedula.
// @Tags			Public
// @Produce		json
// @Success		200		{object}	PublicStudentResponse
// @Failure		500		{object}	httperror.Error
// @Param			cedula	path		string	true	"Cedula of the student"
// @Router			/public/student/{cedula} [get]
func (co Controller) GetPublicStudent(c *gin.Context) {
	var uri URICedula
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	info, err := models.PublicStudent(co.db(c), uri.Cedula)
	if errors.Is(err, models.ErrResourceNotFound) {
		c.JSON(http.StatusOK, PublicStudentResponse{})
		return
	} else if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, PublicStudentResponse{Data: &info})
}

// @Summary		Public paralelo summary
// @Description	Returns the financial summary and the expenses of a paralelo
// @Tags			Public
// @Produce		json
// @Success		200			{object}	ParaleloSummaryResponse
// @Failure		400			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			tesoreroId	path		string	true	"ID of the treasurer"
// @Router			/public/paralelo/{tesoreroId}/summary [get]
func (co Controller) GetPublicParaleloSummary(c *gin.Context) {
	var uri URITreasurerID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	s, err := models.PublicParaleloSummary(co.db(c), uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, ParaleloSummaryResponse{Data: s})
}
