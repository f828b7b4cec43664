package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/driveshield/telematics/internal/pkg/middleware"
	"github.com/driveshield/telematics/internal/pkg/models"
	"github.com/driveshield/telematics/services/scoring"
	httpHandler "github.com/driveshield/telematics/services/scoring/handler/http"
)

// HTTPHandler combines all handlers for the scoring service
type HTTPHandler struct {
	scoringHTTP *httpHandler.ScoringHandler
	cfg         *models.Config
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(scoringUC scoring.ScoringUC, cfg *models.Config) *HTTPHandler {
	return &HTTPHandler{
		scoringHTTP: httpHandler.NewScoringHandler(scoringUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.healthCheck)

	api := e.Group("/api/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))

	api.POST("/trips", h.scoringHTTP.SubmitTrip)
	api.POST("/refunds/estimate", h.scoringHTTP.EstimateRefund)

	api.GET("/users/:userID/aggregate", h.scoringHTTP.GetAggregate)
	api.GET("/users/:userID/timeseries", h.scoringHTTP.GetTimeSeries)
	api.GET("/users/:userID/trend", h.scoringHTTP.GetTrend)
}

func (h *HTTPHandler) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": h.cfg.App.Name,
		"version": h.cfg.App.Version,
	})
}
