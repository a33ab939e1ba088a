package http

import (
	"golang-stock-insight/internal/market/config"
	"golang-stock-insight/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	swagger "github.com/swaggo/echo-swagger"
)

// Handlers groups every route handler of the market API.
type Handlers struct {
	Company    *CompanyHandler
	StockData  *StockDataHandler
	Prediction *PredictionHandler
	Analysis   *AnalysisHandler
	Chat       *ChatHandler
	Health     *HealthHandler
}

// NewServer builds the Echo instance with middleware and every route registered.
func NewServer(cfg *config.Config, appLogger *logger.Logger, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		RequestIDHandler: func(c echo.Context, id string) {
			req := c.Request()
			c.SetRequest(req.WithContext(logger.WithRequestID(req.Context(), id)))
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowOrigins(cfg),
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			appLogger.Debug("HTTP request",
				logger.StringField("method", v.Method),
				logger.StringField("uri", v.URI),
				logger.IntField("status", v.Status),
				logger.Field("latency", v.Latency),
				logger.StringField("request_id", v.RequestID),
			)
			return nil
		},
	}))

	api := e.Group("/api")
	h.Company.RegisterRoutes(api)
	h.StockData.RegisterRoutes(api)
	h.Prediction.RegisterRoutes(api)
	h.Analysis.RegisterRoutes(api)
	h.Chat.RegisterRoutes(api)

	e.GET("/health", h.Health.Health)
	e.GET("/swagger/*", swagger.WrapHandler)

	return e
}

func allowOrigins(cfg *config.Config) []string {
	if len(cfg.CORS.AllowOrigins) == 0 {
		return []string{"*"}
	}
	return cfg.CORS.AllowOrigins
}

// companyParam returns the :company path parameter. The router has already
// decoded it once from the request path.
func companyParam(c echo.Context) string {
	return c.Param("company")
}
