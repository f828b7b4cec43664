package scoring

import (
	"context"
	"time"

	"github.com/driveshield/telematics/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/driveshield/telematics/services/scoring ScoringUC

// ScoringUC defines the scoring service use case operations
type ScoringUC interface {
	// SubmitTrip normalizes, analyzes and scores an uploaded trip, persists
	// the result and publishes a scored event
	SubmitTrip(ctx context.Context, submission *models.TripSubmission) (*models.TripScoreResult, error)

	// EstimateRefund computes an illustrative refund for a driver score
	// against the current risk pool state
	EstimateRefund(ctx context.Context, userID string, req *models.RefundEstimateRequest) (*models.RefundEstimate, error)

	// GetAggregate summarizes a user's trips over a period
	GetAggregate(ctx context.Context, userID string, period models.Period, start, end time.Time) (*models.AggregatedScore, error)

	// GetTimeSeries buckets a user's trips by day, week or month
	GetTimeSeries(ctx context.Context, userID string, granularity models.Granularity, start, end time.Time) ([]models.TimeSeriesPoint, error)

	// GetTrend compares the two most recent periods of a user's history
	GetTrend(ctx context.Context, userID string, period models.Period) (*models.ScoreTrend, error)
}
