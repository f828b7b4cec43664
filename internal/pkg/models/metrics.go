package models

import (
	"time"
)

// TripAnomalies carries the data-integrity flags of one trip.
// AnomalyScore is in [0,100] where 100 means clean.
type TripAnomalies struct {
	HasImpossibleSpeed bool    `json:"has_impossible_speed"`
	HasGpsJumps        bool    `json:"has_gps_jumps"`
	IsDuplicate        bool    `json:"is_duplicate"`
	AnomalyScore       float64 `json:"anomaly_score"`
}

// DrivingMetrics is the computed output of one trip submission.
// It is created once per trip and immutable after creation; persistence is
// the caller's concern.
type DrivingMetrics struct {
	Score                  float64       `json:"score"`
	HardBrakingCount       int           `json:"hard_braking_count"`
	HarshAccelerationCount int           `json:"harsh_acceleration_count"`
	SpeedViolationCount    int           `json:"speed_violation_count"`
	SharpCornerCount       int           `json:"sharp_corner_count"`
	NightDriving           bool          `json:"night_driving"`
	DistanceKm             float64       `json:"distance_km"`
	DurationMinutes        float64       `json:"duration_minutes"`
	AvgSpeedKmh            float64       `json:"avg_speed_kmh"`
	MaxSpeedKmh            float64       `json:"max_speed_kmh"`
	EcoScore               float64       `json:"eco_score"`
	Anomalies              TripAnomalies `json:"anomalies"`
}

// ScoredTrip is the persisted record of a scored trip, the unit the
// aggregator reduces over
type ScoredTrip struct {
	ID                     string    `json:"id" db:"id"`
	UserID                 string    `json:"user_id" db:"user_id"`
	StartTime              time.Time `json:"start_time" db:"start_time"`
	EndTime                time.Time `json:"end_time" db:"end_time"`
	Score                  float64   `json:"score" db:"score"`
	HardBrakingCount       int       `json:"hard_braking_count" db:"hard_braking_count"`
	HarshAccelerationCount int       `json:"harsh_acceleration_count" db:"harsh_acceleration_count"`
	SpeedViolationCount    int       `json:"speed_violation_count" db:"speed_violation_count"`
	SharpCornerCount       int       `json:"sharp_corner_count" db:"sharp_corner_count"`
	NightDriving           bool      `json:"night_driving" db:"night_driving"`
	DistanceKm             float64   `json:"distance_km" db:"distance_km"`
	DurationMinutes        float64   `json:"duration_minutes" db:"duration_minutes"`
	AvgSpeedKmh            float64   `json:"avg_speed_kmh" db:"avg_speed_kmh"`
	MaxSpeedKmh            float64   `json:"max_speed_kmh" db:"max_speed_kmh"`
	EcoScore               float64   `json:"eco_score" db:"eco_score"`
	AnomalyScore           float64   `json:"anomaly_score" db:"anomaly_score"`
	StartCell              string    `json:"start_cell,omitempty" db:"start_cell"`
	EndCell                string    `json:"end_cell,omitempty" db:"end_cell"`
	CreatedAt              time.Time `json:"created_at" db:"created_at"`
}

// TripScoreResult is the outcome of one trip submission returned to the
// caller, who owns persistence of anything beyond the trip record itself
type TripScoreResult struct {
	TripID  string         `json:"trip_id"`
	UserID  string         `json:"user_id"`
	Metrics DrivingMetrics `json:"metrics"`
}

// TripScoredEvent is published to downstream consumers after a trip has been
// scored and persisted
type TripScoredEvent struct {
	TripID    string         `json:"trip_id"`
	UserID    string         `json:"user_id"`
	StartCell string         `json:"start_cell,omitempty"`
	EndCell   string         `json:"end_cell,omitempty"`
	Metrics   DrivingMetrics `json:"metrics"`
	Timestamp time.Time      `json:"timestamp"`
}

// RefundEstimateRequest is the inbound payload for a premium refund estimate
type RefundEstimateRequest struct {
	Score            float64 `json:"score"`
	PoolSafetyFactor float64 `json:"pool_safety_factor"`
	PremiumAmount    float64 `json:"premium_amount"`
}

// RefundEstimate is the outcome of a premium refund computation
type RefundEstimate struct {
	UserID           string  `json:"user_id,omitempty"`
	Score            float64 `json:"score"`
	WeightedScore    float64 `json:"weighted_score"`
	RefundRate       float64 `json:"refund_rate"`
	RefundAmount     float64 `json:"refund_amount"`
	PoolSafetyFactor float64 `json:"pool_safety_factor"`
	Eligible         bool    `json:"eligible"`
}

// RefundEstimatedEvent is published whenever a refund estimate is produced
type RefundEstimatedEvent struct {
	UserID    string         `json:"user_id,omitempty"`
	Estimate  RefundEstimate `json:"estimate"`
	Timestamp time.Time      `json:"timestamp"`
}
