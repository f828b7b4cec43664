package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driveshield/telematics/internal/pkg/models"
	"github.com/driveshield/telematics/services/scoring/engine"
	"github.com/driveshield/telematics/services/scoring/mocks"
	"github.com/driveshield/telematics/services/scoring/usecase"
)

func setupHandlerTest(t *testing.T) (*ScoringHandler, *mocks.MockScoringUC, *echo.Echo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockScoringUC(ctrl)
	return NewScoringHandler(mockUC), mockUC, echo.New()
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSubmitTrip_Success(t *testing.T) {
	h, mockUC, e := setupHandlerTest(t)

	userID := uuid.New()
	body := `{"samples":{"gps_points":[{"latitude":-6.2,"longitude":106.8,"timestamp_ms":1770000000000}]}}`
	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/trips", body)
	c.Set("user_id", userID)

	expected := &models.TripScoreResult{
		TripID: "trip-1",
		UserID: userID.String(),
		Metrics: models.DrivingMetrics{
			Score: 92,
		},
	}
	mockUC.EXPECT().SubmitTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, sub *models.TripSubmission) (*models.TripScoreResult, error) {
			assert.Equal(t, userID.String(), sub.UserID)
			return expected, nil
		})

	require.NoError(t, h.SubmitTrip(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "trip-1")
}

func TestSubmitTrip_InvalidBody(t *testing.T) {
	h, _, e := setupHandlerTest(t)

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/trips", "{not json")

	require.NoError(t, h.SubmitTrip(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitTrip_EmptySubmission(t *testing.T) {
	h, mockUC, e := setupHandlerTest(t)

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/trips", `{"user_id":"user-1"}`)

	mockUC.EXPECT().SubmitTrip(gomock.Any(), gomock.Any()).
		Return(nil, engine.ErrEmptySubmission)

	require.NoError(t, h.SubmitTrip(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitTrip_InternalError(t *testing.T) {
	h, mockUC, e := setupHandlerTest(t)

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/trips", `{"user_id":"user-1","samples":{}}`)

	mockUC.EXPECT().SubmitTrip(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	require.NoError(t, h.SubmitTrip(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestEstimateRefund_Success(t *testing.T) {
	h, mockUC, e := setupHandlerTest(t)

	userID := uuid.New()
	body := `{"score":85,"pool_safety_factor":0.85,"premium_amount":1840}`
	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/refunds/estimate", body)
	c.Set("user_id", userID)

	mockUC.EXPECT().EstimateRefund(gomock.Any(), userID.String(), gomock.Any()).
		Return(&models.RefundEstimate{
			UserID:       userID.String(),
			Score:        85,
			RefundAmount: 145.9,
			Eligible:     true,
		}, nil)

	require.NoError(t, h.EstimateRefund(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "145.9")
}

func TestEstimateRefund_InvalidPoolFactor(t *testing.T) {
	h, mockUC, e := setupHandlerTest(t)

	userID := uuid.New()
	body := `{"score":85,"pool_safety_factor":1.5,"premium_amount":1840}`
	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/refunds/estimate", body)
	c.Set("user_id", userID)

	mockUC.EXPECT().EstimateRefund(gomock.Any(), userID.String(), gomock.Any()).
		Return(nil, usecase.ErrInvalidPoolFactor)

	require.NoError(t, h.EstimateRefund(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAggregate_Success(t *testing.T) {
	h, mockUC, e := setupHandlerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/user-1/aggregate?period=weekly&start=2026-03-02&end=2026-03-09", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userID")
	c.SetParamValues("user-1")

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	mockUC.EXPECT().GetAggregate(gomock.Any(), "user-1", models.PeriodWeekly, start, end).
		Return(&models.AggregatedScore{
			UserID:       "user-1",
			Period:       models.PeriodWeekly,
			AverageScore: 85,
			TripCount:    4,
		}, nil)

	require.NoError(t, h.GetAggregate(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.AggregatedScore `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Data.TripCount)
}

func TestGetAggregate_NoTrips(t *testing.T) {
	h, mockUC, e := setupHandlerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/user-1/aggregate", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userID")
	c.SetParamValues("user-1")

	mockUC.EXPECT().GetAggregate(gomock.Any(), "user-1", models.PeriodWeekly, gomock.Any(), gomock.Any()).
		Return(nil, engine.ErrNoTrips)

	require.NoError(t, h.GetAggregate(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAggregate_BadPeriod(t *testing.T) {
	h, _, e := setupHandlerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/user-1/aggregate?period=yearly", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userID")
	c.SetParamValues("user-1")

	require.NoError(t, h.GetAggregate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTimeSeries_Success(t *testing.T) {
	h, mockUC, e := setupHandlerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/user-1/timeseries?granularity=week", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userID")
	c.SetParamValues("user-1")

	mockUC.EXPECT().GetTimeSeries(gomock.Any(), "user-1", models.GranularityWeek, gomock.Any(), gomock.Any()).
		Return([]models.TimeSeriesPoint{{Score: 85, TripCount: 3}}, nil)

	require.NoError(t, h.GetTimeSeries(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetTimeSeries_BadGranularity(t *testing.T) {
	h, _, e := setupHandlerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/user-1/timeseries?granularity=hour", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userID")
	c.SetParamValues("user-1")

	require.NoError(t, h.GetTimeSeries(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTrend_Success(t *testing.T) {
	h, mockUC, e := setupHandlerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/user-1/trend?period=monthly", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userID")
	c.SetParamValues("user-1")

	mockUC.EXPECT().GetTrend(gomock.Any(), "user-1", models.PeriodMonthly).
		Return(&models.ScoreTrend{Trend: models.TrendImproving, Change: 6.5}, nil)

	require.NoError(t, h.GetTrend(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "improving")
}

func TestParseDateRange_Defaults(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	start, end, err := parseDateRange(c, models.PeriodWeekly)

	require.NoError(t, err)
	assert.InDelta(t, 7*24*time.Hour, end.Sub(start), float64(time.Second))
}

func TestParseDateRange_InvertedRange(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?start=2026-03-09&end=2026-03-02", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, _, err := parseDateRange(c, models.PeriodWeekly)

	assert.Error(t, err)
}
