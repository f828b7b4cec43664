package models

import (
	"time"
)

// Period identifies the rollup window of an aggregate
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Granularity identifies the bucket size of a score time series
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// TrendDirection classifies the movement between two consecutive aggregates
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

// AggregatedScore is the single-pass reduction of a user's trips over a date
// range. It is recomputed on demand and never stored.
type AggregatedScore struct {
	Period                 Period    `json:"period"`
	StartDate              time.Time `json:"start_date"`
	EndDate                time.Time `json:"end_date"`
	UserID                 string    `json:"user_id"`
	AverageScore           float64   `json:"average_score"`
	TripCount              int       `json:"trip_count"`
	TotalDistanceKm        float64   `json:"total_distance_km"`
	TotalDurationMinutes   float64   `json:"total_duration_minutes"`
	HardBrakingCount       int       `json:"hard_braking_count"`
	HarshAccelerationCount int       `json:"harsh_acceleration_count"`
	SpeedViolationsCount   int       `json:"speed_violations_count"`
	NightDrivingTrips      int       `json:"night_driving_trips"`
	SharpCornersCount      int       `json:"sharp_corners_count"`
}

// TimeSeriesPoint is one non-empty bucket of a score time series
type TimeSeriesPoint struct {
	Date       time.Time `json:"date"`
	Score      float64   `json:"score"`
	TripCount  int       `json:"trip_count"`
	DistanceKm float64   `json:"distance_km"`
}

// ScoreTrend compares the two most recent period aggregates
type ScoreTrend struct {
	Trend         TrendDirection `json:"trend"`
	Change        float64        `json:"change"`
	RecentScore   float64        `json:"recent_score"`
	PreviousScore float64        `json:"previous_score"`
}
