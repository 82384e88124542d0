package router

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	docs "github.com/tesoreria-paralelo/backend/api"
	"github.com/tesoreria-paralelo/backend/internal/config"
	"github.com/tesoreria-paralelo/backend/internal/controllers"
	"github.com/tesoreria-paralelo/backend/internal/controllers/healthz"
	versionController "github.com/tesoreria-paralelo/backend/internal/controllers/version"
	"github.com/tesoreria-paralelo/backend/internal/httperror"
	"github.com/tesoreria-paralelo/backend/internal/httputil"
	"github.com/tesoreria-paralelo/backend/internal/models"
)

// This is set at build time.
var version = "0.0.0"

var errMethodNotAllowed = errors.New("this HTTP method is not allowed for the endpoint you called")

// Config sets up the engine with all middlewares. The returned function
// must be called when the engine is not used anymore.
func Config(cfg config.Config) (*gin.Engine, func(), error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	teardown := func() {
		unregisterPrometheusMetrics()
	}

	err := registerPrometheusMetrics()
	if err != nil {
		return nil, teardown, err
	}

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(cfg.APIURL))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httperror.New(errMethodNotAllowed))
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	if len(cfg.CORSAllowOrigins) > 0 {
		log.Debug().Strs("CORS Allowed Origins", cfg.CORSAllowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(_, _, _ string, _ int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", cfg.APIURL.String()).Str("Host", cfg.APIURL.Host).Str("Path", cfg.APIURL.Path).Msg("Router")
	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Host = cfg.APIURL.Host
	docs.SwaggerInfo.BasePath = cfg.APIURL.Path
	docs.SwaggerInfo.Title = "Tesorería de Paralelo"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for class treasurers: students, monthly dues, payments, expenses and a public summary per paralelo."

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
func AttachRoutes(co controllers.Controller, group *gin.RouterGroup, enablePprof bool) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)

	versionController.RegisterRoutes(group.Group("/version"), version)
	healthz.RegisterRoutes(group.Group("/healthz"), co.DB)

	// pprof performance profiles
	if enablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	co.RegisterAuthRoutes(group.Group("/auth"))
	co.RegisterStudentRoutes(group.Group("/students"))
	co.RegisterPaymentSettingsRoutes(group.Group("/payment-settings"))
	co.RegisterPaymentRoutes(group.Group("/payments"))
	co.RegisterExpenseRoutes(group.Group("/expenses"))
	co.RegisterDashboardRoutes(group.Group("/dashboard"))
	co.RegisterPublicRoutes(group.Group("/public"))
	co.RegisterUploadRoutes(group.Group("/upload-image"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs             string `json:"docs" example:"https://example.com/api/docs/index.html"`              // Swagger API documentation
	Healthz          string `json:"healthz" example:"https://example.com/api/healthz"`                   // Healthz endpoint
	Version          string `json:"version" example:"https://example.com/api/version"`                   // Endpoint returning the version of the backend
	Register         string `json:"register" example:"https://example.com/api/auth/register"`            // Registration of treasurers
	Login            string `json:"login" example:"https://example.com/api/auth/login"`                  // Login endpoint returning a bearer token
	Me               string `json:"me" example:"https://example.com/api/auth/me"`                        // The authenticated treasurer
	Students         string `json:"students" example:"https://example.com/api/students"`                 // URL of Student collection endpoint
	PaymentSettings  string `json:"payment_settings" example:"https://example.com/api/payment-settings"` // URL of the dues schedule
	Payments         string `json:"payments" example:"https://example.com/api/payments"`                 // URL of Payment collection endpoint
	Expenses         string `json:"expenses" example:"https://example.com/api/expenses"`                 // URL of Expense collection endpoint
	DashboardSummary string `json:"dashboard_summary" example:"https://example.com/api/dashboard/summary"`
	UploadImage      string `json:"upload_image" example:"https://example.com/api/upload-image"`
}

// GetRoot returns the link list for the API root
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:             url + "/docs/index.html",
			Healthz:          url + "/healthz",
			Version:          url + "/version",
			Register:         url + "/auth/register",
			Login:            url + "/auth/login",
			Me:               url + "/auth/me",
			Students:         url + "/students",
			PaymentSettings:  url + "/payment-settings",
			Payments:         url + "/payments",
			Expenses:         url + "/expenses",
			DashboardSummary: url + "/dashboard/summary",
			UploadImage:      url + "/upload-image",
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}
