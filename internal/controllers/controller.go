package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/tesoreria-paralelo/backend/internal/auth"
	"github.com/tesoreria-paralelo/backend/internal/models"
	"gorm.io/gorm"
)

// Controller holds the dependencies of all HTTP handlers.
type Controller struct {
	DB             *gorm.DB
	Tokens         *auth.TokenManager
	UploadMaxBytes int64
}

// db returns a database session bound to the context of the request.
func (co Controller) db(c *gin.Context) *gorm.DB {
	return co.DB.WithContext(c.Request.Context())
}

const treasurerKey = "tesoreria-treasurer"

// currentTreasurer returns the treasurer authenticated by Authenticate.
func currentTreasurer(c *gin.Context) models.Treasurer {
	return c.MustGet(treasurerKey).(models.Treasurer)
}

// baseURL returns the base URL of the API.
func baseURL(c *gin.Context) string {
	return c.GetString(string(models.DBContextURL))
}
