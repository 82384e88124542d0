package controllers

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/tesoreria-paralelo/backend/internal/httperror"
	"github.com/tesoreria-paralelo/backend/internal/httputil"
	"github.com/tesoreria-paralelo/backend/internal/upload"
)

func (co Controller) RegisterUploadRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsPost)
	r.POST("", co.Authenticate(), co.UploadImage)
}

// @Summary		Upload image
// @Description	Converts an uploaded JPEG, PNG or GIF image to a data URL that can be used as receipt or activity image
// @Tags			Upload
// @Accept			multipart/form-data
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	UploadResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			file	formData	file	true	"The image"
// @Router			/upload-image [post]
func (co Controller) UploadImage(c *gin.Context) {
	fh, err := httputil.FormFile(c, "file")
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	url, err := upload.Encode(fh, co.UploadMaxBytes)
	if err != nil {
		log.Debug().Str("request-id", requestid.Get(c)).Str("filename", fh.Filename).Err(err).Msg("upload rejected")
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, UploadResponse{Data: UploadObject{ImageURL: url}})
}
