package engine

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/driveshield/telematics/internal/pkg/geo"
	"github.com/driveshield/telematics/internal/pkg/models"
)

var (
	// ErrEmptySubmission indicates a submission carrying neither raw samples nor a trip description
	ErrEmptySubmission = errors.New("trip submission must carry samples or a trip description")
	// ErrInvalidTimestamp indicates an unparsable ISO-8601 timestamp
	ErrInvalidTimestamp = errors.New("invalid trip timestamp")
	// ErrInvalidTimeRange indicates an end time at or before the start time
	ErrInvalidTimeRange = errors.New("trip end time must be after start time")
)

// synthetic sample spacing when expanding discrete events into sensor streams
const syntheticStepMs = 100

// Normalizer converts either submission shape into the canonical
// NormalizedTrip the detectors operate on. It performs no scoring.
type Normalizer struct {
	thresholds models.EventThresholds
}

// NewNormalizer creates a normalizer whose synthetic event expansion stays
// consistent with the given detection thresholds
func NewNormalizer(thresholds models.EventThresholds) *Normalizer {
	return &Normalizer{thresholds: thresholds}
}

// Normalize validates a submission and produces the canonical representation.
// Missing sample arrays degrade to empty slices; malformed or inverted
// timestamps are rejected before any computation.
func (n *Normalizer) Normalize(sub *models.TripSubmission) (*models.NormalizedTrip, error) {
	switch {
	case sub == nil:
		return nil, ErrEmptySubmission
	case sub.Trip != nil:
		return n.normalizeTripJSON(sub.Trip)
	case sub.Samples != nil:
		return n.normalizeBundle(sub.Samples), nil
	default:
		return nil, ErrEmptySubmission
	}
}

func (n *Normalizer) normalizeBundle(bundle *models.SensorBundle) *models.NormalizedTrip {
	trip := &models.NormalizedTrip{
		Gps:           bundle.Gps,
		Accelerometer: bundle.Accelerometer,
		Gyroscope:     bundle.Gyroscope,
		Speed:         bundle.Speed,
	}

	if len(bundle.Gps) > 0 {
		trip.StartTime = time.UnixMilli(bundle.Gps[0].TimestampMs).UTC()
		trip.EndTime = time.UnixMilli(bundle.Gps[len(bundle.Gps)-1].TimestampMs).UTC()
	}
	if len(trip.Speed) == 0 {
		trip.Speed = deriveSpeedSamples(trip.Gps)
	}
	return trip
}

func (n *Normalizer) normalizeTripJSON(trip *models.TripJSON) (*models.NormalizedTrip, error) {
	start, err := time.Parse(time.RFC3339, trip.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start_time %q", ErrInvalidTimestamp, trip.StartTime)
	}
	end, err := time.Parse(time.RFC3339, trip.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: end_time %q", ErrInvalidTimestamp, trip.EndTime)
	}
	if !end.After(start) {
		return nil, ErrInvalidTimeRange
	}

	normalized := &models.NormalizedTrip{
		StartTime: start.UTC(),
		EndTime:   end.UTC(),
		Gps:       trip.GpsPoints,
	}

	if trip.Events != nil {
		normalized.Accelerometer = n.synthesizeAccelerometer(trip.Events)
		normalized.Gyroscope = n.synthesizeGyroscope(trip.Events.Cornering)
	}
	normalized.Speed = deriveSpeedSamples(trip.GpsPoints)

	return normalized, nil
}

// synthesizeAccelerometer expands discrete braking and acceleration events
// into x-axis impulse sequences. Each event contributes a baseline-to-impulse
// pair followed by a recovery ramp whose steps stay below the opposing
// detection threshold, so one physical event registers exactly once.
func (n *Normalizer) synthesizeAccelerometer(events *models.TripEvents) []models.AccelerometerSample {
	type impulse struct {
		at        int64
		intensity float64 // signed: negative for braking
	}

	impulses := make([]impulse, 0, len(events.Braking)+len(events.Acceleration))
	for _, e := range events.Braking {
		impulses = append(impulses, impulse{at: e.TimestampMs, intensity: -math.Abs(e.Intensity)})
	}
	for _, e := range events.Acceleration {
		impulses = append(impulses, impulse{at: e.TimestampMs, intensity: math.Abs(e.Intensity)})
	}
	sort.Slice(impulses, func(i, j int) bool { return impulses[i].at < impulses[j].at })

	var samples []models.AccelerometerSample
	for _, imp := range impulses {
		samples = append(samples,
			models.AccelerometerSample{TimestampMs: imp.at - syntheticStepMs},
			models.AccelerometerSample{X: imp.intensity, TimestampMs: imp.at},
		)

		// Recovery ramp back to baseline. Braking recovers upward in steps
		// below the harsh-acceleration threshold and vice versa.
		step := n.thresholds.HarshAccelerationDelta * 0.75
		if imp.intensity > 0 {
			step = n.thresholds.HardBrakingDelta * 0.75
		}
		remaining := imp.intensity
		at := imp.at
		for math.Abs(remaining) > step {
			remaining -= math.Copysign(step, remaining)
			at += syntheticStepMs
			samples = append(samples, models.AccelerometerSample{X: remaining, TimestampMs: at})
		}
		samples = append(samples, models.AccelerometerSample{TimestampMs: at + syntheticStepMs})
	}
	return samples
}

// synthesizeGyroscope expands each discrete cornering event into a one-second
// burst of planar samples, matching a physical corner sampled at 10 Hz so the
// detector's sample grouping folds it back into a single corner event.
func (n *Normalizer) synthesizeGyroscope(cornering []models.DiscreteEvent) []models.GyroscopeSample {
	burst := n.thresholds.CornerSampleGroup
	if burst <= 0 {
		burst = 10
	}

	var samples []models.GyroscopeSample
	for _, e := range cornering {
		lateral := math.Abs(e.Intensity) / math.Sqrt2
		for i := 0; i < burst; i++ {
			samples = append(samples, models.GyroscopeSample{
				X:           lateral,
				Y:           lateral,
				TimestampMs: e.TimestampMs + int64(i*syntheticStepMs),
			})
		}
	}
	return samples
}

// deriveSpeedSamples fills the speed stream from the GPS track when no
// explicit speed samples were submitted. Per-point device speed is preferred;
// otherwise each segment's average speed is used.
func deriveSpeedSamples(points []models.GpsPoint) []models.SpeedSample {
	if len(points) == 0 {
		return nil
	}

	samples := make([]models.SpeedSample, 0, len(points))
	for i, p := range points {
		var kmh float64
		switch {
		case p.SpeedMps != nil:
			kmh = *p.SpeedMps * 3.6
		case i > 0:
			kmh = geo.SegmentSpeedKmh(points[i-1], p)
		default:
			continue
		}
		samples = append(samples, models.SpeedSample{
			Speed:       kmh,
			TimestampMs: p.TimestampMs,
			Unit:        models.SpeedUnitKmh,
		})
	}
	return samples
}
