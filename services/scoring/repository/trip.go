package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/driveshield/telematics/internal/pkg/models"
)

const insertTripQuery = `
	INSERT INTO trips (
		id, user_id, start_time, end_time, score,
		hard_braking_count, harsh_acceleration_count, speed_violation_count,
		sharp_corner_count, night_driving, distance_km, duration_minutes,
		avg_speed_kmh, max_speed_kmh, eco_score, anomaly_score,
		start_cell, end_cell, created_at
	) VALUES (
		:id, :user_id, :start_time, :end_time, :score,
		:hard_braking_count, :harsh_acceleration_count, :speed_violation_count,
		:sharp_corner_count, :night_driving, :distance_km, :duration_minutes,
		:avg_speed_kmh, :max_speed_kmh, :eco_score, :anomaly_score,
		:start_cell, :end_cell, :created_at
	)`

const selectTripsInRangeQuery = `
	SELECT id, user_id, start_time, end_time, score,
		hard_braking_count, harsh_acceleration_count, speed_violation_count,
		sharp_corner_count, night_driving, distance_km, duration_minutes,
		avg_speed_kmh, max_speed_kmh, eco_score, anomaly_score,
		start_cell, end_cell, created_at
	FROM trips
	WHERE user_id = $1 AND start_time >= $2 AND start_time < $3
	ORDER BY start_time ASC`

// TripRepo persists scored trips in PostgreSQL
type TripRepo struct {
	db *sqlx.DB
}

// NewTripRepo creates a new trip repository
func NewTripRepo(db *sqlx.DB) *TripRepo {
	return &TripRepo{db: db}
}

// SaveTrip inserts a scored trip record
func (r *TripRepo) SaveTrip(ctx context.Context, trip *models.ScoredTrip) error {
	if _, err := r.db.NamedExecContext(ctx, insertTripQuery, trip); err != nil {
		return fmt.Errorf("failed to save trip: %w", err)
	}
	return nil
}

// GetTripsInRange returns a user's trips whose start time falls in
// [start, end), ordered by start time ascending
func (r *TripRepo) GetTripsInRange(ctx context.Context, userID string, start, end time.Time) ([]models.ScoredTrip, error) {
	var trips []models.ScoredTrip
	if err := r.db.SelectContext(ctx, &trips, selectTripsInRangeQuery, userID, start, end); err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	return trips, nil
}
