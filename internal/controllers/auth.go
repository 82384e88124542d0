package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tesoreria-paralelo/backend/internal/auth"
	"github.com/tesoreria-paralelo/backend/internal/httperror"
	"github.com/tesoreria-paralelo/backend/internal/httputil"
	"github.com/tesoreria-paralelo/backend/internal/models"
)

// RegisterAuthRoutes registers the routes for registration, login and
// the current treasurer with the RouterGroup that is passed.
func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", co.RegisterTreasurer)

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", co.Login)

	r.OPTIONS("/me", httputil.OptionsGet)
	r.GET("/me", co.Authenticate(), co.GetMe)
}

// Authenticate resolves the bearer token of the request to a treasurer.
//
// Missing, invalid and expired tokens as well as tokens for treasurers that
// do not exist anymore are all rejected with the same error.
func (co Controller) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := co.tokenSubject(c)
		if err != nil {
			log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("authentication failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(auth.ErrInvalidOrExpiredToken))
			return
		}

		t, err := models.GetTreasurer(co.db(c), id)
		if errors.Is(err, models.ErrResourceNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(auth.ErrInvalidOrExpiredToken))
			return
		} else if err != nil {
			c.AbortWithStatusJSON(httperror.Status(err), httperror.New(err))
			return
		}

		c.Set(treasurerKey, t)
		c.Next()
	}
}

func (co Controller) tokenSubject(c *gin.Context) (uuid.UUID, error) {
	token, err := auth.ExtractToken(c.GetHeader("Authorization"))
	if err != nil {
		return uuid.Nil, err
	}

	return co.Tokens.Validate(token)
}

// @Summary		Register
// @Description	Registers a new treasurer
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201			{object}	TreasurerResponse
// @Failure		400			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			treasurer	body		RegisterEditable	true	"Treasurer"
// @Router			/auth/register [post]
func (co Controller) RegisterTreasurer(c *gin.Context) {
	var editable RegisterEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	t, err := models.RegisterTreasurer(co.db(c), editable.Username, editable.Password, editable.ParaleloName)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	log.Info().Str("request-id", requestid.Get(c)).Str("treasurer", t.ID.String()).Msg("treasurer registered")
	c.JSON(http.StatusCreated, TreasurerResponse{Data: newTreasurer(c, t)})
}

// @Summary		Login
// @Description	Verifies the credentials and returns a bearer token valid for 24 hours
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	LoginResponse
// @Failure		400			{object}	httperror.Error
// @Failure		401			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			credentials	body		LoginEditable	true	"Credentials"
// @Router			/auth/login [post]
func (co Controller) Login(c *gin.Context) {
	var editable LoginEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	t, err := models.AuthenticateTreasurer(co.db(c), editable.Username, editable.Password)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	token, err := co.Tokens.Generate(t.ID)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		c.JSON(http.StatusInternalServerError, httperror.New(models.ErrGeneral))
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Data: LoginObject{
			Token: token,
			User:  newTreasurer(c, t),
		},
	})
}

// @Summary		Current treasurer
// @Description	Returns the treasurer the bearer token was issued for
// @Tags			Auth
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	TreasurerResponse
// @Failure		401	{object}	httperror.Error
// @Router			/auth/me [get]
func (co Controller) GetMe(c *gin.Context) {
	c.JSON(http.StatusOK, TreasurerResponse{Data: newTreasurer(c, currentTreasurer(c))})
}
