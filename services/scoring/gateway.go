package scoring

import (
	"context"

	"github.com/driveshield/telematics/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/driveshield/telematics/services/scoring ScoringGW

// ScoringGW defines the gateway operations for publishing scoring events
// to downstream consumers
type ScoringGW interface {
	// PublishTripScored notifies consumers that a trip has been scored
	PublishTripScored(ctx context.Context, event *models.TripScoredEvent) error

	// PublishRefundEstimated notifies consumers that a refund estimate
	// was produced
	PublishRefundEstimated(ctx context.Context, event *models.RefundEstimatedEvent) error
}
