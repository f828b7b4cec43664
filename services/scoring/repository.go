package scoring

import (
	"context"
	"time"

	"github.com/driveshield/telematics/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/driveshield/telematics/services/scoring TripRepo,RecentTripRepo

// TripRepo defines persistence for scored trips
type TripRepo interface {
	// SaveTrip stores a scored trip record
	SaveTrip(ctx context.Context, trip *models.ScoredTrip) error

	// GetTripsInRange returns a user's trips whose start time falls in
	// [start, end), ordered by start time ascending
	GetTripsInRange(ctx context.Context, userID string, start, end time.Time) ([]models.ScoredTrip, error)
}

// RecentTripRepo maintains the sliding window of recent trip fingerprints
// used for duplicate submission detection
type RecentTripRepo interface {
	// AddFingerprint records a trip fingerprint with the given retention
	AddFingerprint(ctx context.Context, fp *models.TripFingerprint, retention time.Duration) error

	// GetFingerprints returns a user's fingerprints recorded since the
	// given time
	GetFingerprints(ctx context.Context, userID string, since time.Time) ([]models.TripFingerprint, error)
}
