package healthz

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/tesoreria-paralelo/backend/internal/httperror"
	"github.com/tesoreria-paralelo/backend/internal/httputil"
	"github.com/tesoreria-paralelo/backend/internal/models"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	r.OPTIONS("", Options)
	r.GET("", Get(db))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httperror.Error
// @Router			/healthz [get]
func Get(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}

		if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
			c.JSON(http.StatusInternalServerError, httperror.New(models.ErrGeneral))
			return
		}

		c.Status(http.StatusNoContent)
	}
}
