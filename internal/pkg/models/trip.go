package models

import (
	"time"
)

// SensorBundle is a pre-assembled set of raw sample arrays for one trip
type SensorBundle struct {
	Gps           []GpsPoint            `json:"gps_points,omitempty"`
	Accelerometer []AccelerometerSample `json:"accelerometer,omitempty"`
	Gyroscope     []GyroscopeSample     `json:"gyroscope,omitempty"`
	Speed         []SpeedSample         `json:"speed,omitempty"`
}

// DiscreteEvent is a pre-classified driving event carried by a TripJSON
// payload instead of raw sensor samples
type DiscreteEvent struct {
	TimestampMs int64   `json:"timestamp_ms"`
	Intensity   float64 `json:"intensity"`
}

// TripEvents holds the optional discrete event lists of a TripJSON payload
type TripEvents struct {
	Braking      []DiscreteEvent `json:"braking,omitempty"`
	Acceleration []DiscreteEvent `json:"acceleration,omitempty"`
	Cornering    []DiscreteEvent `json:"cornering,omitempty"`
}

// TripJSON is the higher-level trip description submitted by mobile clients
// that do not stream raw sensor bundles
type TripJSON struct {
	StartTime string      `json:"start_time"` // ISO-8601
	EndTime   string      `json:"end_time"`   // ISO-8601
	GpsPoints []GpsPoint  `json:"gps_points,omitempty"`
	Events    *TripEvents `json:"events,omitempty"`
}

// TripSubmission is the inbound payload for scoring one trip. Exactly one of
// Samples or Trip must be set.
type TripSubmission struct {
	UserID  string        `json:"user_id"`
	Samples *SensorBundle `json:"samples,omitempty"`
	Trip    *TripJSON     `json:"trip,omitempty"`
}

// NormalizedTrip is the canonical in-memory representation every detector and
// scorer operates on, regardless of submission shape
type NormalizedTrip struct {
	StartTime     time.Time
	EndTime       time.Time
	Gps           []GpsPoint
	Accelerometer []AccelerometerSample
	Gyroscope     []GyroscopeSample
	Speed         []SpeedSample
}

// DurationMinutes returns the trip duration in minutes, preferring the
// declared start/end range and falling back to the GPS track span
func (t *NormalizedTrip) DurationMinutes() float64 {
	if !t.StartTime.IsZero() && t.EndTime.After(t.StartTime) {
		return t.EndTime.Sub(t.StartTime).Minutes()
	}
	if len(t.Gps) < 2 {
		return 0
	}
	span := time.Duration(t.Gps[len(t.Gps)-1].TimestampMs-t.Gps[0].TimestampMs) * time.Millisecond
	if span < 0 {
		return 0
	}
	return span.Minutes()
}

// TripFingerprint is the compact footprint of a scored trip kept in the
// rolling per-user window used for duplicate detection
type TripFingerprint struct {
	TripID     string    `json:"trip_id"`
	UserID     string    `json:"user_id"`
	StartTime  time.Time `json:"start_time"`
	DistanceKm float64   `json:"distance_km"`
	StartCell  string    `json:"start_cell,omitempty"` // geohash of the first GPS fix
}
