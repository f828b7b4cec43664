package engine

import (
	"testing"
	"time"

	"github.com/driveshield/telematics/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func defaultAnomalyConfig() models.AnomalyConfig {
	return models.DefaultScoringConfig().Anomaly
}

func TestAnomalyDetect_CleanTrip(t *testing.T) {
	d := NewAnomalyDetector(defaultAnomalyConfig())

	trip := &models.NormalizedTrip{
		StartTime: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Gps: []models.GpsPoint{
			{Latitude: 0, Longitude: 0, TimestampMs: 0},
			{Latitude: 0.01, Longitude: 0, TimestampMs: 60000},
		},
		Speed: []models.SpeedSample{{Speed: 66, Unit: models.SpeedUnitKmh}},
	}

	anomalies := d.Detect(trip, 1.1, nil)

	assert.False(t, anomalies.HasImpossibleSpeed)
	assert.False(t, anomalies.HasGpsJumps)
	assert.False(t, anomalies.IsDuplicate)
	assert.Equal(t, 100.0, anomalies.AnomalyScore)
}

func TestAnomalyDetect_ImpossibleSpeedSample(t *testing.T) {
	d := NewAnomalyDetector(defaultAnomalyConfig())

	trip := &models.NormalizedTrip{
		Speed: []models.SpeedSample{{Speed: 250, Unit: models.SpeedUnitKmh}},
	}

	anomalies := d.Detect(trip, 0, nil)
	assert.True(t, anomalies.HasImpossibleSpeed)
	assert.Equal(t, 70.0, anomalies.AnomalyScore)
}

func TestAnomalyDetect_MphSampleConverted(t *testing.T) {
	d := NewAnomalyDetector(defaultAnomalyConfig())

	// 130 mph is ~209 km/h, past the plausibility ceiling
	trip := &models.NormalizedTrip{
		Speed: []models.SpeedSample{{Speed: 130, Unit: models.SpeedUnitMph}},
	}

	assert.True(t, d.Detect(trip, 0, nil).HasImpossibleSpeed)
}

func TestAnomalyDetect_GpsDerivedImpossibleSpeed(t *testing.T) {
	d := NewAnomalyDetector(defaultAnomalyConfig())

	// ~6.7 km in 100 s is ~240 km/h between fixes
	trip := &models.NormalizedTrip{
		Gps: []models.GpsPoint{
			{Latitude: 0, Longitude: 0, TimestampMs: 0},
			{Latitude: 0.06, Longitude: 0, TimestampMs: 100000},
		},
	}

	anomalies := d.Detect(trip, 6.7, nil)
	assert.True(t, anomalies.HasImpossibleSpeed)
	assert.False(t, anomalies.HasGpsJumps)
}

func TestAnomalyDetect_GpsJump(t *testing.T) {
	d := NewAnomalyDetector(defaultAnomalyConfig())

	// ~6.7 km in 30 s: a position jump, which also reads as impossible speed
	trip := &models.NormalizedTrip{
		Gps: []models.GpsPoint{
			{Latitude: 0, Longitude: 0, TimestampMs: 0},
			{Latitude: 0.06, Longitude: 0, TimestampMs: 30000},
		},
	}

	anomalies := d.Detect(trip, 6.7, nil)
	assert.True(t, anomalies.HasGpsJumps)
	assert.True(t, anomalies.HasImpossibleSpeed)
	assert.Equal(t, 45.0, anomalies.AnomalyScore)
}

func TestAnomalyDetect_DuplicateWindow(t *testing.T) {
	d := NewAnomalyDetector(defaultAnomalyConfig())

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	trip := &models.NormalizedTrip{StartTime: start}

	match := models.TripFingerprint{
		TripID:     "t1",
		StartTime:  start.Add(-5 * time.Minute),
		DistanceKm: 10.5,
	}

	// Within 5 minutes and 0.5 km: duplicate
	anomalies := d.Detect(trip, 10.0, []models.TripFingerprint{match})
	assert.True(t, anomalies.IsDuplicate)
	assert.Equal(t, 60.0, anomalies.AnomalyScore)

	// 6 minutes apart clears the flag
	late := match
	late.StartTime = start.Add(-6 * time.Minute)
	assert.False(t, d.Detect(trip, 10.0, []models.TripFingerprint{late}).IsDuplicate)

	// 1 km distance delta clears the flag
	far := match
	far.DistanceKm = 11.0
	assert.False(t, d.Detect(trip, 10.0, []models.TripFingerprint{far}).IsDuplicate)
}

func TestAnomalyDetect_ScoreClamped(t *testing.T) {
	cfg := defaultAnomalyConfig()
	cfg.DuplicatePenalty = 90

	d := NewAnomalyDetector(cfg)
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	trip := &models.NormalizedTrip{
		StartTime: start,
		Speed:     []models.SpeedSample{{Speed: 300, Unit: models.SpeedUnitKmh}},
	}
	recent := []models.TripFingerprint{{StartTime: start, DistanceKm: 0}}

	anomalies := d.Detect(trip, 0, recent)
	assert.Equal(t, 0.0, anomalies.AnomalyScore)
}

func TestNormalizeSpeedKmh_Heuristic(t *testing.T) {
	// Unit-less values under 100 are assumed mph (legacy fallback)
	assert.InDelta(t, 96.56, NormalizeSpeedKmh(models.SpeedSample{Speed: 60}), 0.01)
	// Unit-less values at or above 100 pass through as km/h
	assert.Equal(t, 130.0, NormalizeSpeedKmh(models.SpeedSample{Speed: 130}))
	// Explicit units bypass the heuristic entirely
	assert.Equal(t, 60.0, NormalizeSpeedKmh(models.SpeedSample{Speed: 60, Unit: models.SpeedUnitKmh}))
	assert.InDelta(t, 96.56, NormalizeSpeedKmh(models.SpeedSample{Speed: 60, Unit: models.SpeedUnitMph}), 0.01)
}
