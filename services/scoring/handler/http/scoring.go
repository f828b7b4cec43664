package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/driveshield/telematics/internal/pkg/logger"
	"github.com/driveshield/telematics/internal/pkg/models"
	"github.com/driveshield/telematics/internal/utils"
	"github.com/driveshield/telematics/services/scoring"
	"github.com/driveshield/telematics/services/scoring/engine"
	"github.com/driveshield/telematics/services/scoring/usecase"
)

// ScoringHandler handles HTTP requests for trip scoring operations
type ScoringHandler struct {
	scoringUC scoring.ScoringUC
}

// NewScoringHandler creates a new scoring HTTP handler
func NewScoringHandler(scoringUC scoring.ScoringUC) *ScoringHandler {
	return &ScoringHandler{
		scoringUC: scoringUC,
	}
}

// SubmitTrip scores one uploaded trip for the authenticated user
func (h *ScoringHandler) SubmitTrip(c echo.Context) error {
	var submission models.TripSubmission
	if err := c.Bind(&submission); err != nil {
		logger.Error("Failed to bind trip submission", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if submission.UserID == "" {
		submission.UserID = authenticatedUserID(c)
	}

	result, err := h.scoringUC.SubmitTrip(c.Request().Context(), &submission)
	if err != nil {
		if isValidationErr(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to score trip",
			logger.String("user_id", submission.UserID),
			logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "failed to score trip")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip scored", result)
}

// EstimateRefund computes an illustrative refund for the authenticated user
func (h *ScoringHandler) EstimateRefund(c echo.Context) error {
	var req models.RefundEstimateRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind refund request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	userID := authenticatedUserID(c)
	estimate, err := h.scoringUC.EstimateRefund(c.Request().Context(), userID, &req)
	if err != nil {
		if isValidationErr(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to estimate refund",
			logger.String("user_id", userID),
			logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "failed to estimate refund")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Refund estimated", estimate)
}

// GetAggregate summarizes a user's trips over a period
func (h *ScoringHandler) GetAggregate(c echo.Context) error {
	userID := c.Param("userID")
	if userID == "" {
		return utils.BadRequestResponse(c, "user_id is required")
	}

	period := models.Period(c.QueryParam("period"))
	if period == "" {
		period = models.PeriodWeekly
	}
	if period != models.PeriodWeekly && period != models.PeriodMonthly {
		return utils.BadRequestResponse(c, "period must be weekly or monthly")
	}

	start, end, err := parseDateRange(c, period)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	agg, err := h.scoringUC.GetAggregate(c.Request().Context(), userID, period, start, end)
	if err != nil {
		if errors.Is(err, engine.ErrNoTrips) {
			return utils.NotFoundResponse(c, "no trips in period")
		}
		logger.Error("Failed to aggregate trips",
			logger.String("user_id", userID),
			logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "failed to aggregate trips")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Aggregate computed", agg)
}

// GetTimeSeries buckets a user's scores by day, week or month
func (h *ScoringHandler) GetTimeSeries(c echo.Context) error {
	userID := c.Param("userID")
	if userID == "" {
		return utils.BadRequestResponse(c, "user_id is required")
	}

	granularity := models.Granularity(c.QueryParam("granularity"))
	if granularity == "" {
		granularity = models.GranularityDay
	}
	switch granularity {
	case models.GranularityDay, models.GranularityWeek, models.GranularityMonth:
	default:
		return utils.BadRequestResponse(c, "granularity must be day, week or month")
	}

	start, end, err := parseDateRange(c, models.PeriodMonthly)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	points, err := h.scoringUC.GetTimeSeries(c.Request().Context(), userID, granularity, start, end)
	if err != nil {
		logger.Error("Failed to build score time series",
			logger.String("user_id", userID),
			logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "failed to build time series")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Time series computed", points)
}

// GetTrend compares a user's two most recent periods
func (h *ScoringHandler) GetTrend(c echo.Context) error {
	userID := c.Param("userID")
	if userID == "" {
		return utils.BadRequestResponse(c, "user_id is required")
	}

	period := models.Period(c.QueryParam("period"))
	if period == "" {
		period = models.PeriodWeekly
	}
	if period != models.PeriodWeekly && period != models.PeriodMonthly {
		return utils.BadRequestResponse(c, "period must be weekly or monthly")
	}

	trend, err := h.scoringUC.GetTrend(c.Request().Context(), userID, period)
	if err != nil {
		logger.Error("Failed to compute score trend",
			logger.String("user_id", userID),
			logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "failed to compute trend")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trend computed", trend)
}

// parseDateRange reads the start and end query params, accepting RFC 3339 or
// plain dates, and defaults to one period ending now
func parseDateRange(c echo.Context, period models.Period) (time.Time, time.Time, error) {
	end := time.Now().UTC()
	if raw := c.QueryParam("end"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid end date")
		}
		end = parsed
	}

	start := end.AddDate(0, 0, -7)
	if period == models.PeriodMonthly {
		start = end.AddDate(0, -1, 0)
	}
	if raw := c.QueryParam("start"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid start date")
		}
		start = parsed
	}

	if !end.After(start) {
		return time.Time{}, time.Time{}, errors.New("end date must be after start date")
	}
	return start, end, nil
}

func parseDate(raw string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts.UTC(), nil
	}
	ts, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	return ts.UTC(), nil
}

func authenticatedUserID(c echo.Context) string {
	if id, ok := c.Get("user_id").(uuid.UUID); ok {
		return id.String()
	}
	return ""
}

func isValidationErr(err error) bool {
	switch {
	case errors.Is(err, engine.ErrEmptySubmission),
		errors.Is(err, engine.ErrInvalidTimestamp),
		errors.Is(err, engine.ErrInvalidTimeRange),
		errors.Is(err, usecase.ErrMissingUserID),
		errors.Is(err, usecase.ErrInvalidPoolFactor),
		errors.Is(err, usecase.ErrInvalidPremium):
		return true
	}
	return false
}
