package engine

import (
	"math"
	"time"

	"github.com/driveshield/telematics/internal/pkg/models"
)

// DetectedEvents holds the per-trip event counts produced by the detector
type DetectedEvents struct {
	HardBraking       int
	HarshAcceleration int
	SharpCorners      int
	SpeedViolations   int
	NightDriving      bool
}

// EventDetector performs stateless threshold classification over normalized
// samples. All thresholds come from the injected configuration table.
type EventDetector struct {
	thresholds models.EventThresholds
}

// NewEventDetector creates an event detector with the given thresholds
func NewEventDetector(thresholds models.EventThresholds) *EventDetector {
	return &EventDetector{thresholds: thresholds}
}

// Detect scans one normalized trip for braking, acceleration, cornering,
// speeding and night-driving signals. Empty sample arrays yield zero counts.
func (d *EventDetector) Detect(trip *models.NormalizedTrip) DetectedEvents {
	return DetectedEvents{
		HardBraking:       d.countHardBraking(trip.Accelerometer),
		HarshAcceleration: d.countHarshAcceleration(trip.Accelerometer),
		SharpCorners:      d.countSharpCorners(trip.Gyroscope),
		SpeedViolations:   d.countSpeedViolations(trip.Speed),
		NightDriving:      d.hasNightDriving(trip.Gps),
	}
}

// countHardBraking counts consecutive sample pairs whose x-axis drop exceeds
// the braking threshold
func (d *EventDetector) countHardBraking(samples []models.AccelerometerSample) int {
	count := 0
	for i := 1; i < len(samples); i++ {
		delta := samples[i].X - samples[i-1].X
		if delta < 0 && math.Abs(delta) > d.thresholds.HardBrakingDelta {
			count++
		}
	}
	return count
}

// countHarshAcceleration is the same pair test with the opposite sign
func (d *EventDetector) countHarshAcceleration(samples []models.AccelerometerSample) int {
	count := 0
	for i := 1; i < len(samples); i++ {
		delta := samples[i].X - samples[i-1].X
		if delta > d.thresholds.HarshAccelerationDelta {
			count++
		}
	}
	return count
}

// countSharpCorners counts gyroscope samples whose planar magnitude exceeds
// the cornering threshold, folding each full group of qualifying samples into
// one corner event. Raw counts are noisy at high sample rates; grouping keeps
// one physical corner from registering many times.
func (d *EventDetector) countSharpCorners(samples []models.GyroscopeSample) int {
	group := d.thresholds.CornerSampleGroup
	if group <= 0 {
		return 0
	}

	qualifying := 0
	for _, s := range samples {
		if math.Sqrt(s.X*s.X+s.Y*s.Y) > d.thresholds.SharpCornerMagnitude {
			qualifying++
		}
	}
	return qualifying / group
}

// countSpeedViolations counts samples exceeding the posted limit plus
// tolerance, grouped the same way as cornering. Samples without a posted
// limit cannot violate.
func (d *EventDetector) countSpeedViolations(samples []models.SpeedSample) int {
	group := d.thresholds.SpeedSampleGroup
	if group <= 0 {
		return 0
	}

	qualifying := 0
	for _, s := range samples {
		if s.SpeedLimit != nil && s.Speed > *s.SpeedLimit+d.thresholds.SpeedToleranceOverLimit {
			qualifying++
		}
	}
	return qualifying / group
}

// hasNightDriving reports whether any GPS fix falls inside the night window,
// boundary hours included
func (d *EventDetector) hasNightDriving(points []models.GpsPoint) bool {
	for _, p := range points {
		hour := time.UnixMilli(p.TimestampMs).UTC().Hour()
		if hour >= d.thresholds.NightStartHour || hour <= d.thresholds.NightEndHour {
			return true
		}
	}
	return false
}
