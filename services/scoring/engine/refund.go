package engine

import (
	"math"

	"github.com/driveshield/telematics/internal/pkg/models"
)

// RefundCalculator maps a driving score, a community pool safety factor and
// an annual premium to a monetary refund. Pure and deterministic; monotone
// non-decreasing in the score above the eligibility floor.
type RefundCalculator struct {
	cfg models.RefundConfig
}

// NewRefundCalculator creates a refund calculator with the given tunables.
// The community average is injected here rather than hard-coded; in a full
// deployment it comes from the pool service.
func NewRefundCalculator(cfg models.RefundConfig) *RefundCalculator {
	return &RefundCalculator{cfg: cfg}
}

// Calculate computes the refund for one personal score. Scores below the
// eligibility floor yield exactly zero (hard cutoff, not a taper).
func (r *RefundCalculator) Calculate(personalScore, poolSafetyFactor, premiumAmount float64) models.RefundEstimate {
	personalScore = clamp(personalScore, 0, 100)

	estimate := models.RefundEstimate{
		Score:            personalScore,
		PoolSafetyFactor: poolSafetyFactor,
	}

	if personalScore < r.cfg.EligibilityFloor {
		return estimate
	}
	estimate.Eligible = true

	weighted := r.cfg.PersonalWeight*personalScore + r.cfg.CommunityWeight*r.cfg.CommunityAverage
	estimate.WeightedScore = weighted

	// Linear interpolation of the rate between the floor and a perfect score
	progress := clamp((weighted-r.cfg.EligibilityFloor)/(100-r.cfg.EligibilityFloor), 0, 1)
	rate := r.cfg.MinRate + (r.cfg.MaxRate-r.cfg.MinRate)*progress
	estimate.RefundRate = rate

	refund := math.Min(premiumAmount*rate, premiumAmount*r.cfg.MaxRate) * poolSafetyFactor
	estimate.RefundAmount = math.Max(0, refund)

	return estimate
}
