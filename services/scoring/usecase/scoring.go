package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/driveshield/telematics/internal/pkg/geo"
	"github.com/driveshield/telematics/internal/pkg/logger"
	"github.com/driveshield/telematics/internal/pkg/models"
	"github.com/driveshield/telematics/internal/utils"
	"github.com/driveshield/telematics/services/scoring"
	"github.com/driveshield/telematics/services/scoring/engine"
)

var (
	// ErrMissingUserID is returned when a submission carries no user
	ErrMissingUserID = errors.New("user id is required")
	// ErrInvalidPoolFactor is returned when the pool safety factor is
	// outside [0, 1]
	ErrInvalidPoolFactor = errors.New("pool safety factor must be between 0 and 1")
	// ErrInvalidPremium is returned for a negative premium amount
	ErrInvalidPremium = errors.New("premium amount must not be negative")
)

// ScoringUC implements the scoring pipeline on top of the pure engine
// components, wiring them to trip persistence, the recent-trip window and
// the event gateway
type ScoringUC struct {
	cfg        *models.Config
	normalizer *engine.Normalizer
	events     *engine.EventDetector
	anomaly    *engine.AnomalyDetector
	scorer     *engine.Scorer
	refund     *engine.RefundCalculator
	aggregator *engine.Aggregator
	tripRepo   scoring.TripRepo
	recentRepo scoring.RecentTripRepo
	gw         scoring.ScoringGW
	now        func() time.Time
}

// NewScoringUC creates a new scoring usecase
func NewScoringUC(
	cfg *models.Config,
	tripRepo scoring.TripRepo,
	recentRepo scoring.RecentTripRepo,
	gw scoring.ScoringGW,
) *ScoringUC {
	sc := cfg.Scoring
	return &ScoringUC{
		cfg:        cfg,
		normalizer: engine.NewNormalizer(sc.Thresholds),
		events:     engine.NewEventDetector(sc.Thresholds),
		anomaly:    engine.NewAnomalyDetector(sc.Anomaly),
		scorer:     engine.NewScorer(sc.Weights, sc.Penalties, sc.Anomaly, sc.Eco),
		refund:     engine.NewRefundCalculator(sc.Refund),
		aggregator: engine.NewAggregator(),
		tripRepo:   tripRepo,
		recentRepo: recentRepo,
		gw:         gw,
		now:        time.Now,
	}
}

// SubmitTrip runs the full pipeline for one uploaded trip: normalize the
// submission, detect events and anomalies, score, persist and publish
func (uc *ScoringUC) SubmitTrip(ctx context.Context, submission *models.TripSubmission) (*models.TripScoreResult, error) {
	if submission == nil || submission.UserID == "" {
		return nil, ErrMissingUserID
	}

	trip, err := uc.normalizer.Normalize(submission)
	if err != nil {
		return nil, err
	}

	distanceKm := geo.TrackDistanceKm(trip.Gps)
	lookback := time.Duration(uc.cfg.Scoring.Anomaly.LookbackHours) * time.Hour

	// The duplicate check degrades gracefully when the window store is
	// unreachable; the trip is still scored.
	recent, err := uc.recentRepo.GetFingerprints(ctx, submission.UserID, uc.now().Add(-lookback))
	if err != nil {
		logger.Warn("failed to load recent trip fingerprints",
			logger.String("user_id", submission.UserID),
			logger.Err(err))
		recent = nil
	}

	events := uc.events.Detect(trip)
	anomalies := uc.anomaly.Detect(trip, distanceKm, recent)

	maxSpeed := maxSpeedKmh(trip)
	duration := trip.DurationMinutes()
	avgSpeed := 0.0
	if duration > 0 {
		avgSpeed = distanceKm / (duration / 60.0)
	}

	metrics := models.DrivingMetrics{
		Score:                  uc.scorer.Score(events, anomalies),
		HardBrakingCount:       events.HardBraking,
		HarshAccelerationCount: events.HarshAcceleration,
		SpeedViolationCount:    events.SpeedViolations,
		SharpCornerCount:       events.SharpCorners,
		NightDriving:           events.NightDriving,
		DistanceKm:             distanceKm,
		DurationMinutes:        duration,
		AvgSpeedKmh:            avgSpeed,
		MaxSpeedKmh:            maxSpeed,
		EcoScore:               uc.scorer.EcoScore(events, maxSpeed),
		Anomalies:              anomalies,
	}

	tripID := uuid.New().String()
	startCell, endCell := utils.TrackCells(trip.Gps)

	record := &models.ScoredTrip{
		ID:                     tripID,
		UserID:                 submission.UserID,
		StartTime:              trip.StartTime,
		EndTime:                trip.EndTime,
		Score:                  metrics.Score,
		HardBrakingCount:       metrics.HardBrakingCount,
		HarshAccelerationCount: metrics.HarshAccelerationCount,
		SpeedViolationCount:    metrics.SpeedViolationCount,
		SharpCornerCount:       metrics.SharpCornerCount,
		NightDriving:           metrics.NightDriving,
		DistanceKm:             metrics.DistanceKm,
		DurationMinutes:        metrics.DurationMinutes,
		AvgSpeedKmh:            metrics.AvgSpeedKmh,
		MaxSpeedKmh:            metrics.MaxSpeedKmh,
		EcoScore:               metrics.EcoScore,
		AnomalyScore:           anomalies.AnomalyScore,
		StartCell:              startCell,
		EndCell:                endCell,
		CreatedAt:              uc.now().UTC(),
	}
	if err := uc.tripRepo.SaveTrip(ctx, record); err != nil {
		return nil, err
	}

	fp := &models.TripFingerprint{
		TripID:     tripID,
		UserID:     submission.UserID,
		StartTime:  trip.StartTime,
		DistanceKm: distanceKm,
		StartCell:  startCell,
	}
	if err := uc.recentRepo.AddFingerprint(ctx, fp, lookback); err != nil {
		logger.Warn("failed to record trip fingerprint",
			logger.String("trip_id", tripID),
			logger.Err(err))
	}

	event := &models.TripScoredEvent{
		TripID:    tripID,
		UserID:    submission.UserID,
		StartCell: startCell,
		EndCell:   endCell,
		Metrics:   metrics,
		Timestamp: uc.now().UTC(),
	}
	if err := uc.gw.PublishTripScored(ctx, event); err != nil {
		logger.Warn("failed to publish trip scored event",
			logger.String("trip_id", tripID),
			logger.Err(err))
	}

	logger.Info("trip scored",
		logger.String("trip_id", tripID),
		logger.String("user_id", submission.UserID),
		logger.Float64("score", metrics.Score),
		logger.Float64("distance_km", metrics.DistanceKm),
		logger.Float64("anomaly_score", anomalies.AnomalyScore))

	return &models.TripScoreResult{
		TripID:  tripID,
		UserID:  submission.UserID,
		Metrics: metrics,
	}, nil
}

// EstimateRefund validates the request, runs the refund computation and
// publishes the estimate
func (uc *ScoringUC) EstimateRefund(ctx context.Context, userID string, req *models.RefundEstimateRequest) (*models.RefundEstimate, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	if req.PoolSafetyFactor < 0 || req.PoolSafetyFactor > 1 {
		return nil, ErrInvalidPoolFactor
	}
	if req.PremiumAmount < 0 {
		return nil, ErrInvalidPremium
	}

	estimate := uc.refund.Calculate(req.Score, req.PoolSafetyFactor, req.PremiumAmount)
	estimate.UserID = userID

	event := &models.RefundEstimatedEvent{
		UserID:    userID,
		Estimate:  estimate,
		Timestamp: uc.now().UTC(),
	}
	if err := uc.gw.PublishRefundEstimated(ctx, event); err != nil {
		logger.Warn("failed to publish refund estimated event",
			logger.String("user_id", userID),
			logger.Err(err))
	}

	return &estimate, nil
}

// GetAggregate summarizes a user's trips over [start, end)
func (uc *ScoringUC) GetAggregate(ctx context.Context, userID string, period models.Period, start, end time.Time) (*models.AggregatedScore, error) {
	trips, err := uc.tripRepo.GetTripsInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	return uc.aggregator.AggregatePeriod(userID, period, start, end, trips)
}

// GetTimeSeries buckets a user's trips over [start, end) by the given
// granularity
func (uc *ScoringUC) GetTimeSeries(ctx context.Context, userID string, granularity models.Granularity, start, end time.Time) ([]models.TimeSeriesPoint, error) {
	trips, err := uc.tripRepo.GetTripsInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	return uc.aggregator.TimeSeries(trips, granularity), nil
}

// GetTrend compares the current period window against the one before it.
// A window with no trips simply counts as missing.
func (uc *ScoringUC) GetTrend(ctx context.Context, userID string, period models.Period) (*models.ScoreTrend, error) {
	end := uc.now().UTC()
	recentStart := periodStart(end, period)
	previousStart := periodStart(recentStart, period)

	recent, err := uc.aggregateWindow(ctx, userID, period, recentStart, end)
	if err != nil {
		return nil, err
	}
	previous, err := uc.aggregateWindow(ctx, userID, period, previousStart, recentStart)
	if err != nil {
		return nil, err
	}

	trend := uc.aggregator.Trend(recent, previous)
	return &trend, nil
}

func (uc *ScoringUC) aggregateWindow(ctx context.Context, userID string, period models.Period, start, end time.Time) (*models.AggregatedScore, error) {
	trips, err := uc.tripRepo.GetTripsInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	agg, err := uc.aggregator.AggregatePeriod(userID, period, start, end, trips)
	if errors.Is(err, engine.ErrNoTrips) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return agg, nil
}

func periodStart(end time.Time, period models.Period) time.Time {
	if period == models.PeriodMonthly {
		return end.AddDate(0, -1, 0)
	}
	return end.AddDate(0, 0, -7)
}

func maxSpeedKmh(trip *models.NormalizedTrip) float64 {
	max := 0.0
	for _, s := range trip.Speed {
		if kmh := engine.NormalizeSpeedKmh(s); kmh > max {
			max = kmh
		}
	}
	return max
}
