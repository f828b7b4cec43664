package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/driveshield/telematics/internal/pkg/database"
	"github.com/driveshield/telematics/internal/pkg/logger"
	"github.com/driveshield/telematics/internal/pkg/models"
)

const recentTripKeyPrefix = "scoring:recent_trips:"

// RecentTripRepo keeps per-user trip fingerprints in a Redis sorted set
// scored by trip start time, so the duplicate-detection window is a single
// range query
type RecentTripRepo struct {
	redis *database.RedisClient
}

// NewRecentTripRepo creates a new recent trip repository
func NewRecentTripRepo(redis *database.RedisClient) *RecentTripRepo {
	return &RecentTripRepo{redis: redis}
}

// AddFingerprint records a trip fingerprint and trims entries older than the
// retention window
func (r *RecentTripRepo) AddFingerprint(ctx context.Context, fp *models.TripFingerprint, retention time.Duration) error {
	payload, err := json.Marshal(fp)
	if err != nil {
		return fmt.Errorf("failed to marshal trip fingerprint: %w", err)
	}

	key := recentTripKey(fp.UserID)
	score := float64(fp.StartTime.UnixMilli())
	if err := r.redis.ZAdd(ctx, key, score, payload); err != nil {
		return fmt.Errorf("failed to add trip fingerprint: %w", err)
	}

	cutoff := time.Now().Add(-retention).UnixMilli()
	if err := r.redis.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(cutoff, 10)); err != nil {
		logger.Warn("failed to trim recent trip window",
			logger.String("user_id", fp.UserID),
			logger.Err(err))
	}

	// Keep the key from outliving an inactive user's window.
	if err := r.redis.Expire(ctx, key, retention); err != nil {
		logger.Warn("failed to set recent trip window ttl",
			logger.String("user_id", fp.UserID),
			logger.Err(err))
	}
	return nil
}

// GetFingerprints returns a user's fingerprints recorded since the given
// time, oldest first
func (r *RecentTripRepo) GetFingerprints(ctx context.Context, userID string, since time.Time) ([]models.TripFingerprint, error) {
	key := recentTripKey(userID)
	min := strconv.FormatInt(since.UnixMilli(), 10)

	members, err := r.redis.ZRangeByScore(ctx, key, min, "+inf")
	if err != nil {
		return nil, fmt.Errorf("failed to read recent trip window: %w", err)
	}

	fingerprints := make([]models.TripFingerprint, 0, len(members))
	for _, member := range members {
		var fp models.TripFingerprint
		if err := json.Unmarshal([]byte(member), &fp); err != nil {
			logger.Warn("skipping malformed trip fingerprint",
				logger.String("user_id", userID),
				logger.Err(err))
			continue
		}
		fingerprints = append(fingerprints, fp)
	}
	return fingerprints, nil
}

func recentTripKey(userID string) string {
	return recentTripKeyPrefix + userID
}
