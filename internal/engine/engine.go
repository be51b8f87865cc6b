// Package engine orchestrates one prediction end to end: parallel pillar
// inference, meta combination, policy adjustment and recommendation
// generation. The engine is stateless; all model and policy state lives in
// the registry and provider snapshots it reads per request.
package engine

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/venturelens/venturelens/internal/classify"
	"github.com/venturelens/venturelens/internal/models"
	"github.com/venturelens/venturelens/internal/policy"
	"github.com/venturelens/venturelens/internal/recommend"
	"github.com/venturelens/venturelens/internal/registry"
	"github.com/venturelens/venturelens/internal/statistics"
	"golang.org/x/sync/errgroup"
)

const (
	// Confidence interval resampling: fixed draw count and noise width so
	// the same input always yields the same interval.
	intervalDraws = 100
	intervalSigma = 0.02
	intervalSeed  = 42
	intervalLevel = 0.95

	// Alerting cutoffs over the four pillar probabilities.
	spreadAlertLimit = 0.3
	weakPillarLimit  = 0.4
)

// Options selects per-request prediction behavior.
type Options struct {
	// Strict enables the policy's per-pillar gate.
	Strict bool

	// ThresholdMode picks a trained alternate threshold from the model
	// metadata instead of the policy's global threshold.
	ThresholdMode models.ThresholdMode

	// Threshold, when set, overrides both of the above.
	Threshold *float64
}

// SnapshotSource provides the active artifact bundle view. The registry is
// the production implementation.
type SnapshotSource interface {
	Snapshot() *registry.Snapshot
}

// Engine evaluates startup metric sets against the loaded model bundle and
// the active decision policy. Safe for concurrent use.
type Engine struct {
	reg     SnapshotSource
	pol     *policy.Provider
	recOpts []recommend.Option
}

// New wires an engine over a registry and a policy provider. recOpts tune
// the recommendation stage (benchmark cutoff, suggestion cap).
func New(reg SnapshotSource, pol *policy.Provider, recOpts ...recommend.Option) *Engine {
	return &Engine{reg: reg, pol: pol, recOpts: recOpts}
}

// Predict scores the metric set and applies the active policy. The returned
// result is complete: pillar scores, final labeled score, confidence
// interval, alerts and any degradation warnings.
func (e *Engine) Predict(ctx context.Context, m models.MetricSet, opts Options) (*models.PredictionResult, error) {
	return e.predict(ctx, e.reg.Snapshot(), m, opts)
}

// predict runs one prediction against a fixed snapshot so a single request
// never straddles a registry reload.
func (e *Engine) predict(ctx context.Context, snap *registry.Snapshot, m models.MetricSet, opts Options) (*models.PredictionResult, error) {
	pol := e.pol.Current()

	scores, warnings, err := scorePillars(ctx, snap, m)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, combineWarnings, err := snap.Combiner.Combine(scores, m)
	warnings = append(warnings, combineWarnings...)
	if err != nil {
		return nil, err
	}

	dopts := policy.DecideOptions{Strict: opts.Strict}
	switch {
	case opts.Threshold != nil:
		dopts.Threshold = opts.Threshold
	case opts.ThresholdMode != "" && opts.ThresholdMode != models.ThresholdDefault:
		t := snap.Metadata.SelectThreshold(opts.ThresholdMode)
		dopts.Threshold = &t
	}

	res := policy.Decide(scores, raw, pol, dopts)
	res.ConfidenceInterval = confidenceInterval(scores, m, snap.Combiner, pol)
	res.Alerts = imbalanceAlerts(scores)
	res.Warnings = warnings
	if snap.Degraded {
		res.Degraded = true
		res.Warnings = append(res.Warnings, snap.Warnings...)
	}
	return res, nil
}

// Recommend predicts and then generates improvement suggestions for every
// pillar below the benchmark. The prediction result rides along so callers
// render both without scoring twice.
func (e *Engine) Recommend(ctx context.Context, m models.MetricSet) (models.RecommendationSet, *models.PredictionResult, error) {
	snap := e.reg.Snapshot()
	res, err := e.predict(ctx, snap, m, Options{})
	if err != nil {
		return nil, nil, err
	}
	rec := recommend.NewEngine(snap.Importance, e.recOpts...)
	return rec.Recommend(res.PillarScores), res, nil
}

// ModelInfo describes the active model bundle and decision policy.
type ModelInfo struct {
	Metadata      *models.ModelMetadata `json:"metadata"`
	PolicyVersion string                `json:"policy_version"`
	Degraded      bool                  `json:"degraded,omitempty"`
}

// ModelInfo reports the metadata of the active snapshot and the version of
// the active policy.
func (e *Engine) ModelInfo() ModelInfo {
	snap := e.reg.Snapshot()
	return ModelInfo{
		Metadata:      snap.Metadata,
		PolicyVersion: e.pol.Current().Version,
		Degraded:      snap.Degraded,
	}
}

// scorePillars fans the four pillar scorers out concurrently. Inference is
// CPU-bound and read-only against the snapshot, so the goroutines share
// nothing but their own result slot.
func scorePillars(ctx context.Context, snap *registry.Snapshot, m models.MetricSet) (map[models.Pillar]float64, []string, error) {
	probs := make([]float64, len(models.Pillars))
	warns := make([][]string, len(models.Pillars))

	g, _ := errgroup.WithContext(ctx)
	for i, p := range models.Pillars {
		g.Go(func() error {
			prob, w, err := snap.Scorers[p].Score(m)
			if err != nil {
				return fmt.Errorf("scoring %s: %w", p, err)
			}
			probs[i] = prob
			warns[i] = w
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	scores := make(map[models.Pillar]float64, len(models.Pillars))
	var warnings []string
	for i, p := range models.Pillars {
		scores[p] = probs[i]
		warnings = append(warnings, warns[i]...)
	}
	return scores, warnings, nil
}

// confidenceInterval estimates a 95% interval on the final score by
// resampling the pillar probabilities under gaussian noise and pushing each
// draw through the same combine-and-adjust pipeline. The generator is seeded
// with a fixed constant so identical inputs produce identical intervals.
func confidenceInterval(scores map[models.Pillar]float64, m models.MetricSet, c *classify.Combiner, pol *policy.Policy) []float64 {
	rng := rand.New(rand.NewPCG(intervalSeed, intervalSeed))
	draws := make([]float64, 0, intervalDraws)
	perturbed := make(map[models.Pillar]float64, len(scores))

	for range intervalDraws {
		for _, p := range models.Pillars {
			perturbed[p] = clamp01(scores[p] + rng.NormFloat64()*intervalSigma)
		}
		raw, _, err := c.Combine(perturbed, m)
		if err != nil {
			return nil
		}
		draws = append(draws, clamp01(raw*pol.Modifier(perturbed)))
	}

	lower, upper := statistics.PercentileInterval(draws, intervalLevel)
	return []float64{lower, upper}
}

// imbalanceAlerts flags a wide spread between the strongest and weakest
// pillars, and any individual pillar in clearly weak territory.
func imbalanceAlerts(scores map[models.Pillar]float64) []models.Alert {
	lo, hi := 1.0, 0.0
	for _, p := range models.Pillars {
		lo = math.Min(lo, scores[p])
		hi = math.Max(hi, scores[p])
	}

	var alerts []models.Alert
	if hi-lo > spreadAlertLimit {
		alerts = append(alerts, models.Alert{
			Type:     "pillar_imbalance",
			Severity: "warning",
			Message:  fmt.Sprintf("pillar scores are strongly imbalanced (spread %.2f)", hi-lo),
		})
	}
	for _, p := range models.Pillars {
		if scores[p] < weakPillarLimit {
			alerts = append(alerts, models.Alert{
				Type:     "weak_pillar",
				Severity: "warning",
				Message:  fmt.Sprintf("%s pillar score %.2f is below %.2f", p, scores[p], weakPillarLimit),
			})
		}
	}
	return alerts
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
