package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driveshield/telematics/internal/pkg/models"
	"github.com/driveshield/telematics/services/scoring/engine"
	"github.com/driveshield/telematics/services/scoring/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Scoring: models.DefaultScoringConfig(),
	}
}

// steadyTrack returns n GPS points spaced ~100m and 10s apart, which works
// out to roughly 36 km/h.
func steadyTrack(start time.Time, n int) []models.GpsPoint {
	points := make([]models.GpsPoint, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, models.GpsPoint{
			Latitude:    -6.2088 + float64(i)*0.0009,
			Longitude:   106.8456,
			TimestampMs: start.UnixMilli() + int64(i)*10_000,
		})
	}
	return points
}

func newTestUC(t *testing.T) (*ScoringUC, *mocks.MockTripRepo, *mocks.MockRecentTripRepo, *mocks.MockScoringGW) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockTrips := mocks.NewMockTripRepo(ctrl)
	mockRecent := mocks.NewMockRecentTripRepo(ctrl)
	mockGW := mocks.NewMockScoringGW(ctrl)

	uc := NewScoringUC(testConfig(), mockTrips, mockRecent, mockGW)
	return uc, mockTrips, mockRecent, mockGW
}

func TestSubmitTrip_CleanTrip(t *testing.T) {
	uc, mockTrips, mockRecent, mockGW := newTestUC(t)

	start := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	submission := &models.TripSubmission{
		UserID:  "user-1",
		Samples: &models.SensorBundle{Gps: steadyTrack(start, 11)},
	}

	mockRecent.EXPECT().GetFingerprints(gomock.Any(), "user-1", gomock.Any()).Return(nil, nil)

	var saved *models.ScoredTrip
	mockTrips.EXPECT().SaveTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, trip *models.ScoredTrip) error {
			saved = trip
			return nil
		})
	mockRecent.EXPECT().AddFingerprint(gomock.Any(), gomock.Any(), 24*time.Hour).Return(nil)
	mockGW.EXPECT().PublishTripScored(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.SubmitTrip(context.Background(), submission)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.TripID)
	assert.Equal(t, "user-1", result.UserID)

	m := result.Metrics
	assert.Equal(t, 100.0, m.Score)
	assert.Zero(t, m.HardBrakingCount)
	assert.Zero(t, m.HarshAccelerationCount)
	assert.Zero(t, m.SpeedViolationCount)
	assert.Zero(t, m.SharpCornerCount)
	assert.False(t, m.NightDriving)
	assert.InDelta(t, 1.0, m.DistanceKm, 0.01)
	assert.InDelta(t, 100.0/60.0, m.DurationMinutes, 0.01)
	assert.InDelta(t, 36.0, m.AvgSpeedKmh, 1.0)
	assert.InDelta(t, 36.0, m.MaxSpeedKmh, 1.0)
	assert.Equal(t, 100.0, m.Anomalies.AnomalyScore)

	require.NotNil(t, saved)
	assert.Equal(t, result.TripID, saved.ID)
	assert.True(t, saved.StartTime.Equal(start))
	assert.NotEmpty(t, saved.StartCell)
	assert.NotEmpty(t, saved.EndCell)
}

func TestSubmitTrip_DuplicateSubmission(t *testing.T) {
	uc, mockTrips, mockRecent, mockGW := newTestUC(t)

	start := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	submission := &models.TripSubmission{
		UserID:  "user-1",
		Samples: &models.SensorBundle{Gps: steadyTrack(start, 11)},
	}

	previous := []models.TripFingerprint{{
		TripID:     "earlier-trip",
		UserID:     "user-1",
		StartTime:  start.Add(2 * time.Minute),
		DistanceKm: 1.0,
	}}
	mockRecent.EXPECT().GetFingerprints(gomock.Any(), "user-1", gomock.Any()).Return(previous, nil)
	mockTrips.EXPECT().SaveTrip(gomock.Any(), gomock.Any()).Return(nil)
	mockRecent.EXPECT().AddFingerprint(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishTripScored(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.SubmitTrip(context.Background(), submission)

	require.NoError(t, err)
	assert.True(t, result.Metrics.Anomalies.IsDuplicate)
	assert.Equal(t, 60.0, result.Metrics.Anomalies.AnomalyScore)
	// 100 base minus (100-60) * 0.3 discount
	assert.Equal(t, 88.0, result.Metrics.Score)
}

func TestSubmitTrip_WindowStoreUnavailable(t *testing.T) {
	uc, mockTrips, mockRecent, mockGW := newTestUC(t)

	start := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	submission := &models.TripSubmission{
		UserID:  "user-1",
		Samples: &models.SensorBundle{Gps: steadyTrack(start, 11)},
	}

	mockRecent.EXPECT().GetFingerprints(gomock.Any(), "user-1", gomock.Any()).
		Return(nil, errors.New("connection refused"))
	mockTrips.EXPECT().SaveTrip(gomock.Any(), gomock.Any()).Return(nil)
	mockRecent.EXPECT().AddFingerprint(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishTripScored(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.SubmitTrip(context.Background(), submission)

	require.NoError(t, err)
	assert.False(t, result.Metrics.Anomalies.IsDuplicate)
	assert.Equal(t, 100.0, result.Metrics.Score)
}

func TestSubmitTrip_MissingUserID(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	_, err := uc.SubmitTrip(context.Background(), &models.TripSubmission{})

	assert.ErrorIs(t, err, ErrMissingUserID)
}

func TestSubmitTrip_EmptySubmission(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	_, err := uc.SubmitTrip(context.Background(), &models.TripSubmission{UserID: "user-1"})

	assert.ErrorIs(t, err, engine.ErrEmptySubmission)
}

func TestSubmitTrip_SaveError(t *testing.T) {
	uc, mockTrips, mockRecent, _ := newTestUC(t)

	start := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	submission := &models.TripSubmission{
		UserID:  "user-1",
		Samples: &models.SensorBundle{Gps: steadyTrack(start, 11)},
	}

	mockRecent.EXPECT().GetFingerprints(gomock.Any(), "user-1", gomock.Any()).Return(nil, nil)
	mockTrips.EXPECT().SaveTrip(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

	_, err := uc.SubmitTrip(context.Background(), submission)

	assert.Error(t, err)
}

func TestSubmitTrip_PublishFailureDoesNotFailTrip(t *testing.T) {
	uc, mockTrips, mockRecent, mockGW := newTestUC(t)

	start := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	submission := &models.TripSubmission{
		UserID:  "user-1",
		Samples: &models.SensorBundle{Gps: steadyTrack(start, 11)},
	}

	mockRecent.EXPECT().GetFingerprints(gomock.Any(), "user-1", gomock.Any()).Return(nil, nil)
	mockTrips.EXPECT().SaveTrip(gomock.Any(), gomock.Any()).Return(nil)
	mockRecent.EXPECT().AddFingerprint(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishTripScored(gomock.Any(), gomock.Any()).Return(errors.New("nsqd down"))

	result, err := uc.SubmitTrip(context.Background(), submission)

	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestEstimateRefund_Success(t *testing.T) {
	uc, _, _, mockGW := newTestUC(t)

	mockGW.EXPECT().PublishRefundEstimated(gomock.Any(), gomock.Any()).Return(nil)

	estimate, err := uc.EstimateRefund(context.Background(), "user-1", &models.RefundEstimateRequest{
		Score:            85,
		PoolSafetyFactor: 0.85,
		PremiumAmount:    1840,
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", estimate.UserID)
	assert.True(t, estimate.Eligible)
	assert.InDelta(t, 83.0, estimate.WeightedScore, 0.001)
	assert.InDelta(t, 145.9, estimate.RefundAmount, 0.2)
}

func TestEstimateRefund_Validation(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	_, err := uc.EstimateRefund(context.Background(), "", &models.RefundEstimateRequest{})
	assert.ErrorIs(t, err, ErrMissingUserID)

	_, err = uc.EstimateRefund(context.Background(), "user-1", &models.RefundEstimateRequest{
		Score: 85, PoolSafetyFactor: 1.5, PremiumAmount: 100,
	})
	assert.ErrorIs(t, err, ErrInvalidPoolFactor)

	_, err = uc.EstimateRefund(context.Background(), "user-1", &models.RefundEstimateRequest{
		Score: 85, PoolSafetyFactor: 0.9, PremiumAmount: -5,
	})
	assert.ErrorIs(t, err, ErrInvalidPremium)
}

func TestGetAggregate(t *testing.T) {
	uc, mockTrips, _, _ := newTestUC(t)

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)
	trips := []models.ScoredTrip{
		{UserID: "user-1", Score: 80, DistanceKm: 10},
		{UserID: "user-1", Score: 90, DistanceKm: 20},
	}
	mockTrips.EXPECT().GetTripsInRange(gomock.Any(), "user-1", start, end).Return(trips, nil)

	agg, err := uc.GetAggregate(context.Background(), "user-1", models.PeriodWeekly, start, end)

	require.NoError(t, err)
	assert.Equal(t, 2, agg.TripCount)
	assert.InDelta(t, 85.0, agg.AverageScore, 0.001)
	assert.InDelta(t, 30.0, agg.TotalDistanceKm, 0.001)
}

func TestGetAggregate_NoTrips(t *testing.T) {
	uc, mockTrips, _, _ := newTestUC(t)

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)
	mockTrips.EXPECT().GetTripsInRange(gomock.Any(), "user-1", start, end).Return(nil, nil)

	_, err := uc.GetAggregate(context.Background(), "user-1", models.PeriodWeekly, start, end)

	assert.ErrorIs(t, err, engine.ErrNoTrips)
}

func TestGetTimeSeries(t *testing.T) {
	uc, mockTrips, _, _ := newTestUC(t)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	trips := []models.ScoredTrip{
		{UserID: "user-1", StartTime: start.Add(9 * time.Hour), Score: 80, DistanceKm: 5},
		{UserID: "user-1", StartTime: start.AddDate(0, 0, 1), Score: 90, DistanceKm: 8},
	}
	mockTrips.EXPECT().GetTripsInRange(gomock.Any(), "user-1", start, end).Return(trips, nil)

	points, err := uc.GetTimeSeries(context.Background(), "user-1", models.GranularityDay, start, end)

	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, 80.0, points[0].Score)
	assert.Equal(t, 90.0, points[1].Score)
}

func TestGetTrend_Improving(t *testing.T) {
	uc, mockTrips, _, _ := newTestUC(t)

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	recentStart := now.AddDate(0, 0, -7)
	previousStart := now.AddDate(0, 0, -14)

	mockTrips.EXPECT().GetTripsInRange(gomock.Any(), "user-1", recentStart, now).
		Return([]models.ScoredTrip{{Score: 78}, {Score: 82}}, nil)
	mockTrips.EXPECT().GetTripsInRange(gomock.Any(), "user-1", previousStart, recentStart).
		Return([]models.ScoredTrip{{Score: 70}}, nil)

	trend, err := uc.GetTrend(context.Background(), "user-1", models.PeriodWeekly)

	require.NoError(t, err)
	assert.Equal(t, models.TrendImproving, trend.Trend)
	assert.InDelta(t, 10.0, trend.Change, 0.001)
	assert.InDelta(t, 80.0, trend.RecentScore, 0.001)
	assert.InDelta(t, 70.0, trend.PreviousScore, 0.001)
}

func TestGetTrend_MissingPreviousPeriod(t *testing.T) {
	uc, mockTrips, _, _ := newTestUC(t)

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	mockTrips.EXPECT().GetTripsInRange(gomock.Any(), "user-1", gomock.Any(), now).
		Return([]models.ScoredTrip{{Score: 80}}, nil)
	mockTrips.EXPECT().GetTripsInRange(gomock.Any(), "user-1", gomock.Any(), gomock.Any()).
		Return(nil, nil)

	trend, err := uc.GetTrend(context.Background(), "user-1", models.PeriodWeekly)

	require.NoError(t, err)
	assert.Equal(t, models.TrendStable, trend.Trend)
	assert.Zero(t, trend.Change)
}
