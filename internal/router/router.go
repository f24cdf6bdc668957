package router

import (
	"net/http"
	"strings"

	docs "github.com/fintrack-ph/backend/api"
	"github.com/fintrack-ph/backend/internal/auth"
	"github.com/fintrack-ph/backend/internal/config"
	"github.com/fintrack-ph/backend/internal/controllers"
	"github.com/fintrack-ph/backend/internal/controllers/healthz"
	"github.com/fintrack-ph/backend/internal/controllers/root"
	versionController "github.com/fintrack-ph/backend/internal/controllers/version"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Version returns the version the backend was built as.
func Version() string {
	return version
}

type httpError struct {
	Error string `json:"error"`
}

// Config sets up the router with all middlewares. The returned teardown
// function must be called when the router is not used anymore.
func Config(cfg *config.Config) (*gin.Engine, func(), error) {
	teardown := func() {}

	url, err := cfg.URL()
	if err != nil {
		return nil, teardown, err
	}

	// Amounts are JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true

	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header, the client IP of sessions
	// is the address of the direct peer
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httpError{
			Error: "This HTTP method is not allowed for the endpoint you called",
		})
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

	err = registerPrometheusMetrics()
	if err != nil {
		return nil, teardown, err
	}
	teardown = func() { unregisterPrometheusMetrics() }
	r.Use(MetricsMiddleware())

	// CORS settings
	if allowOrigins := strings.Fields(cfg.Server.CORSAllowOrigins); len(allowOrigins) > 0 {
		log.Debug().Strs("CORS Allowed Origins", allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     allowOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy, see ForwardedByClientIP
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "fintrack"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for fintrack, a finance tracker for expenses, revenue, invoices, budgets and savings."

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in
// Separating this from Config() allows us to attach it to different
// paths for different use cases.
func AttachRoutes(group *gin.RouterGroup, cfg *config.Config) {
	root.RegisterRoutes(group.Group(""))
	healthz.RegisterRoutes(group.Group("/healthz"))
	versionController.RegisterRoutes(group.Group("/version"), version)
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	if cfg.Server.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	issuer := auth.NewIssuer(cfg.Auth)
	a := controllers.NewAuth(issuer)

	api := group.Group("/api")
	controllers.RegisterAuthRoutes(api.Group("/auth"), a)

	// Everything else needs a session
	protected := api.Group("", issuer.Middleware())
	controllers.RegisterUserRoutes(protected.Group("/user"), a)
	controllers.RegisterCategoryRoutes(protected.Group("/categories"))
	controllers.RegisterExpenseRoutes(protected.Group("/expenses"))
	controllers.RegisterRevenueRoutes(protected.Group("/revenue"))
	controllers.RegisterBudgetRoutes(protected.Group("/budget"))
	controllers.RegisterInvoiceRoutes(protected.Group("/invoices"))
	controllers.RegisterSavingsRoutes(protected.Group("/savings"))
	controllers.RegisterTransactionRoutes(protected.Group("/transactions"))
	controllers.RegisterPaymentMethodRoutes(protected.Group("/payment-methods"))
	controllers.RegisterNotificationRoutes(protected.Group("/notifications"))
	controllers.RegisterReportRoutes(protected.Group("/reports"))
}
