package policy

import (
	"math"

	"github.com/venturelens/venturelens/internal/models"
)

// DecideOptions selects per-request decision behavior.
type DecideOptions struct {
	// Strict enables the per-pillar gate: any gated pillar below its minimum
	// forces a fail regardless of the final score.
	Strict bool

	// Threshold overrides the policy's global threshold when a caller
	// explicitly requests an alternative (e.g. a precision-optimized one).
	Threshold *float64
}

// Decide applies the policy to the pillar scores and the raw combined score,
// producing the labeled result. Pure function of its inputs.
func Decide(scores map[models.Pillar]float64, rawMeta float64, pol *Policy, opts DecideOptions) *models.PredictionResult {
	final := math.Min(1, math.Max(0, rawMeta*pol.Modifier(scores)))

	threshold := pol.GlobalThreshold
	if opts.Threshold != nil {
		threshold = *opts.Threshold
	}

	failed := []models.Pillar{}
	if opts.Strict {
		failed = gateViolations(scores, pol)
	}

	var label models.Label
	switch {
	case len(failed) > 0:
		// The strict gate dominates the threshold comparison.
		label = models.LabelFail
	case final >= threshold:
		label = models.LabelPass
	default:
		label = models.LabelFail
	}

	scoresCopy := make(map[models.Pillar]float64, len(scores))
	for p, v := range scores {
		scoresCopy[p] = v
	}

	return &models.PredictionResult{
		PillarScores:  scoresCopy,
		FinalScore:    final,
		Label:         label,
		Confidence:    Confidence(final),
		Threshold:     threshold,
		FailedPillars: failed,
		PolicyVersion: pol.Version,
	}
}

// Modifier is the product of every firing boost and penalty multiplier.
// Rules compose multiplicatively; a score with no firing rules gets 1.
func (p *Policy) Modifier(scores map[models.Pillar]float64) float64 {
	product := 1.0
	for _, r := range p.Boosts {
		if r.Fires(scores) {
			product *= r.Multiplier
		}
	}
	for _, r := range p.Penalties {
		if r.Fires(scores) {
			product *= r.Multiplier
		}
	}
	return product
}

// gateViolations returns, in canonical pillar order, every pillar below its
// configured minimum. Per-pillar minima take precedence; absent those, the
// uniform strict gate applies to all pillars.
func gateViolations(scores map[models.Pillar]float64, pol *Policy) []models.Pillar {
	failed := []models.Pillar{}
	for _, p := range models.Pillars {
		min, gated := pol.PerPillarMin[p]
		if !gated {
			if len(pol.PerPillarMin) > 0 || pol.StrictGate == nil {
				continue
			}
			min = *pol.StrictGate
		}
		if scores[p] < min {
			failed = append(failed, p)
		}
	}
	return failed
}

// Confidence is the symmetric distance of the final score from the decision
// boundary at 0.5, bounded in [0,1]. It equals exactly 1 only at 0 or 1.
func Confidence(final float64) float64 {
	return math.Max(final, 1-final)
}
