package engine

import (
	"math"
	"time"

	"github.com/driveshield/telematics/internal/pkg/geo"
	"github.com/driveshield/telematics/internal/pkg/models"
)

// AnomalyDetector runs data-integrity checks over a normalized trip,
// independently of event detection. Duplicate detection compares against a
// caller-supplied window of recent trips; the detector never queries storage.
type AnomalyDetector struct {
	cfg models.AnomalyConfig
}

// NewAnomalyDetector creates an anomaly detector with the given tunables
func NewAnomalyDetector(cfg models.AnomalyConfig) *AnomalyDetector {
	return &AnomalyDetector{cfg: cfg}
}

// Detect classifies one trip for physically implausible speed, GPS position
// jumps and duplicate submissions, and derives the anomaly confidence score.
// distanceKm is the candidate trip's total track distance.
func (d *AnomalyDetector) Detect(trip *models.NormalizedTrip, distanceKm float64, recent []models.TripFingerprint) models.TripAnomalies {
	anomalies := models.TripAnomalies{
		HasImpossibleSpeed: d.hasImpossibleSpeed(trip),
		HasGpsJumps:        d.hasGpsJumps(trip.Gps),
		IsDuplicate:        d.isDuplicate(trip.StartTime, distanceKm, recent),
	}

	// Flags are independent and additive; the score degrades gracefully
	// instead of rejecting suspect trips outright.
	score := 100.0
	if anomalies.HasImpossibleSpeed {
		score -= d.cfg.ImpossibleSpeedPenalty
	}
	if anomalies.HasGpsJumps {
		score -= d.cfg.GpsJumpPenalty
	}
	if anomalies.IsDuplicate {
		score -= d.cfg.DuplicatePenalty
	}
	anomalies.AnomalyScore = clamp(score, 0, 100)

	return anomalies
}

func (d *AnomalyDetector) hasImpossibleSpeed(trip *models.NormalizedTrip) bool {
	for _, s := range trip.Speed {
		if NormalizeSpeedKmh(s) > d.cfg.MaxPlausibleSpeedKmh {
			return true
		}
	}
	for i := 1; i < len(trip.Gps); i++ {
		if geo.SegmentSpeedKmh(trip.Gps[i-1], trip.Gps[i]) > d.cfg.MaxPlausibleSpeedKmh {
			return true
		}
	}
	return false
}

// hasGpsJumps flags consecutive points far apart in space but close in time,
// physically implausible teleportation
func (d *AnomalyDetector) hasGpsJumps(points []models.GpsPoint) bool {
	for i := 1; i < len(points); i++ {
		distKm := geo.HaversineMeters(
			points[i-1].Latitude, points[i-1].Longitude,
			points[i].Latitude, points[i].Longitude,
		) / 1000.0
		elapsedSec := math.Abs(float64(points[i].TimestampMs-points[i-1].TimestampMs)) / 1000.0

		if distKm > d.cfg.GpsJumpDistanceKm && elapsedSec < d.cfg.GpsJumpWindowSeconds {
			return true
		}
	}
	return false
}

// isDuplicate reports whether the lookback window contains a trip starting
// within the duplicate window and covering nearly the same distance
func (d *AnomalyDetector) isDuplicate(start time.Time, distanceKm float64, recent []models.TripFingerprint) bool {
	window := time.Duration(d.cfg.DuplicateWindowMinutes * float64(time.Minute))
	for _, fp := range recent {
		startDelta := start.Sub(fp.StartTime)
		if startDelta < 0 {
			startDelta = -startDelta
		}
		distDelta := math.Abs(distanceKm - fp.DistanceKm)
		if startDelta <= window && distDelta <= d.cfg.DuplicateDistanceKm {
			return true
		}
	}
	return false
}

// NormalizeSpeedKmh converts a speed sample to km/h. Samples declaring their
// unit convert exactly; unit-less samples fall back to the legacy magnitude
// heuristic (values under 100 are assumed to be mph).
// TODO: drop the heuristic once every client fills the unit field.
func NormalizeSpeedKmh(s models.SpeedSample) float64 {
	switch s.Unit {
	case models.SpeedUnitKmh:
		return s.Speed
	case models.SpeedUnitMph:
		return s.Speed * models.MphToKmh
	default:
		if s.Speed < 100 {
			return s.Speed * models.MphToKmh
		}
		return s.Speed
	}
}
