// Package recommend turns pillar scores and trained feature-importance
// rankings into ranked, human-readable improvement suggestions.
package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/venturelens/venturelens/internal/models"
)

const (
	// DefaultBenchmark is the pillar score below which recommendations are
	// generated. Inferred from observed data, so configurable rather than
	// hard-coded at call sites.
	DefaultBenchmark = 0.7

	// DefaultTopN caps the suggestions emitted per weak pillar.
	DefaultTopN = 3
)

// MetricWeight is one entry in a pillar's trained importance ranking. The
// sign of the weight records whether higher values of the metric are
// favorable (positive) or unfavorable (negative).
type MetricWeight struct {
	Metric string  `json:"metric"`
	Weight float64 `json:"weight"`
}

// Importance holds the per-pillar importance rankings exported by the
// training pipeline.
type Importance map[models.Pillar][]MetricWeight

// Engine computes recommendations. Immutable after construction and safe for
// concurrent use.
type Engine struct {
	benchmark  float64
	topN       int
	importance Importance
}

// Option adjusts engine defaults.
type Option func(*Engine)

// WithBenchmark overrides the pillar benchmark cutoff.
func WithBenchmark(b float64) Option {
	return func(e *Engine) { e.benchmark = b }
}

// WithTopN overrides the per-pillar suggestion cap.
func WithTopN(n int) Option {
	return func(e *Engine) { e.topN = n }
}

// NewEngine builds a recommendation engine over the trained importance
// rankings. Rankings are re-sorted by descending importance magnitude so a
// sloppily exported artifact still ranks correctly.
func NewEngine(importance Importance, opts ...Option) *Engine {
	e := &Engine{
		benchmark:  DefaultBenchmark,
		topN:       DefaultTopN,
		importance: make(Importance, len(models.Pillars)),
	}
	for p, ranked := range importance {
		sorted := make([]MetricWeight, len(ranked))
		copy(sorted, ranked)
		sort.SliceStable(sorted, func(a, b int) bool {
			return math.Abs(sorted[a].Weight) > math.Abs(sorted[b].Weight)
		})
		e.importance[p] = sorted
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Benchmark returns the active cutoff.
func (e *Engine) Benchmark() float64 { return e.benchmark }

// Recommend emits suggestions for every pillar scoring below the benchmark.
// All four pillar keys are always present in the result; a healthy pillar
// maps to an empty list so callers can tell "no weaknesses" from "not
// evaluated".
func (e *Engine) Recommend(scores map[models.Pillar]float64) models.RecommendationSet {
	out := make(models.RecommendationSet, len(models.Pillars))
	for _, p := range models.Pillars {
		out[p] = []models.RecommendationItem{}
		if scores[p] >= e.benchmark {
			continue
		}
		ranked := e.importance[p]
		for i, mw := range ranked {
			if i >= e.topN {
				break
			}
			out[p] = append(out[p], models.RecommendationItem{
				Metric:         mw.Metric,
				Recommendation: adviceFor(mw),
				Impact:         impactTier(i, len(ranked)),
			})
		}
	}
	return out
}

// impactTier buckets a rank position into terciles of the pillar's full
// ranked list: top third high, middle third medium, rest low.
func impactTier(rank, total int) models.Impact {
	if total == 0 {
		return models.ImpactLow
	}
	switch {
	case rank < (total+2)/3:
		return models.ImpactHigh
	case rank < (2*total+2)/3:
		return models.ImpactMedium
	default:
		return models.ImpactLow
	}
}

// metricAdvice carries curated suggestion text for well-known metrics.
var metricAdvice = map[string]string{
	"cash_on_hand_usd":                "Raise additional funding to extend runway.",
	"burn_multiple":                   "Reduce burn rate through operational efficiency.",
	"ltv_cac_ratio":                   "Improve unit economics to increase the LTV/CAC ratio.",
	"gross_margin_percent":            "Improve gross margin through pricing or cost structure.",
	"tech_differentiation_score":      "Strengthen product differentiation through unique features.",
	"product_retention_90d":           "Improve customer retention strategies.",
	"patent_count":                    "Consider IP protection strategies such as patents.",
	"switching_cost_score":            "Increase switching costs through integrations and data lock-in.",
	"tam_size_usd":                    "Expand the target market or consider adjacent markets.",
	"competition_intensity":           "Develop competitive response strategies.",
	"market_growth_rate_percent":      "Focus on high-growth market segments.",
	"founder_domain_experience_years": "Add domain experts to the team.",
	"team_diversity_percent":          "Improve team diversity.",
	"board_advisor_experience_score":  "Add experienced advisors.",
	"prior_successful_exits_count":    "Bring on founders or executives with prior exits.",
}

// adviceFor synthesizes the suggestion text for a metric. Known metrics use
// curated copy; otherwise the direction comes from the sign of the trained
// importance weight.
func adviceFor(mw MetricWeight) string {
	if advice, ok := metricAdvice[mw.Metric]; ok {
		return advice
	}
	label := strings.ReplaceAll(mw.Metric, "_", " ")
	if mw.Weight < 0 {
		return fmt.Sprintf("Reduce %s.", label)
	}
	return fmt.Sprintf("Increase %s.", label)
}
