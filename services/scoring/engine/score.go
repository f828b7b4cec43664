package engine

import (
	"math"

	"github.com/driveshield/telematics/internal/pkg/models"
)

// phoneUsageSubScore is the fixed sub-score of the phone-usage category.
// Phone-usage detection has no sensor pipeline yet, so the category scores
// clean rather than being silently invented.
const phoneUsageSubScore = 100.0

// Scorer combines event counts into the weighted 0-100 driving score and
// discounts it by the trip's anomaly confidence.
type Scorer struct {
	weights   models.ScoreWeights
	penalties models.ScorePenalties
	discount  float64
	eco       models.EcoConfig
}

// NewScorer creates a scorer with the given weighting and penalty tables
func NewScorer(weights models.ScoreWeights, penalties models.ScorePenalties, anomaly models.AnomalyConfig, eco models.EcoConfig) *Scorer {
	return &Scorer{
		weights:   weights,
		penalties: penalties,
		discount:  anomaly.ScoreDiscountFactor,
		eco:       eco,
	}
}

// Score computes the final per-trip score: a rounded weighted composite of
// per-category sub-scores, discounted by the anomaly score and clamped to
// [0,100].
func (s *Scorer) Score(events DetectedEvents, anomalies models.TripAnomalies) float64 {
	base := s.weights.Speed*subScore(s.penalties.Speed, events.SpeedViolations) +
		s.weights.HardBraking*subScore(s.penalties.HardBraking, events.HardBraking) +
		s.weights.Acceleration*subScore(s.penalties.Acceleration, events.HarshAcceleration) +
		s.weights.Cornering*subScore(s.penalties.Cornering, events.SharpCorners) +
		s.weights.PhoneUsage*phoneUsageSubScore

	base = math.Round(base)
	final := base - (100-anomalies.AnomalyScore)*s.discount

	return clamp(final, 0, 100)
}

// EcoScore computes the informational eco metric: 100 minus a penalty for
// speed above the eco threshold minus a flat deduction per harsh event. It is
// not blended into the main score.
func (s *Scorer) EcoScore(events DetectedEvents, maxSpeedKmh float64) float64 {
	speedPenalty := 0.0
	if maxSpeedKmh > s.eco.SpeedThresholdKmh {
		speedPenalty = (maxSpeedKmh - s.eco.SpeedThresholdKmh) * s.eco.SpeedPenaltyPerKmh
	}
	harshPenalty := float64(events.HardBraking+events.HarshAcceleration) * s.eco.HarshEventPenalty

	return clamp(100-speedPenalty-harshPenalty, 0, 100)
}

// subScore is the per-category score before weighting, floored at zero
func subScore(penalty float64, count int) float64 {
	return math.Max(0, 100-penalty*float64(count))
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
