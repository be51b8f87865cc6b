package classify

import (
	"math"
	"strings"

	"github.com/venturelens/venturelens/internal/models"
)

// fundingStageRank orders funding stages for the capital heuristic, keyed by
// the normalized stage name.
var fundingStageRank = map[string]float64{
	"idea":          0,
	"pre_seed":      1,
	"seed":          2,
	"series_a":      3,
	"series_b":      4,
	"series_c_plus": 5,
}

// normalizeStage folds display-form stage names ("Pre-seed", "Series C+")
// onto the snake_case names the metrics schema uses.
func normalizeStage(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "+", "_plus")
	return s
}

// Metric payloads come from several producers that have drifted on key names
// over time, so the heuristics read every known spelling before defaulting.
func floatAlias(m models.MetricSet, def float64, names ...string) float64 {
	for _, name := range names {
		if f, ok := m.Float(name); ok {
			return f
		}
	}
	return def
}

func boolAlias(m models.MetricSet, names ...string) bool {
	for _, name := range names {
		if b, ok := m.Bool(name); ok {
			return b
		}
	}
	return false
}

// HeuristicFor returns the deterministic fallback scorer for a pillar: a
// weighted sum of a small number of known-important raw metrics, clipped to a
// conservative band. Used when the pillar's trained artifact failed to load.
func HeuristicFor(p models.Pillar) func(models.MetricSet) float64 {
	switch p {
	case models.PillarCapital:
		return heuristicCapital
	case models.PillarAdvantage:
		return heuristicAdvantage
	case models.PillarMarket:
		return heuristicMarket
	case models.PillarPeople:
		return heuristicPeople
	default:
		return func(models.MetricSet) float64 { return 0.5 }
	}
}

func heuristicCapital(m models.MetricSet) float64 {
	stage, _ := m.String("funding_stage")
	stageValue, ok := fundingStageRank[normalizeStage(stage)]
	if !ok {
		stageValue = fundingStageRank["seed"]
	}
	burn := m.FloatOr("monthly_burn_usd", 0)
	cash := m.FloatOr("cash_on_hand_usd", 0)

	runway := 12.0
	runwayEfficiency := 1.0
	if burn > 0 {
		runway = math.Min(cash/burn, 24)
		runwayEfficiency = math.Min(runway/12, 2)
	}
	capitalSufficiency := math.Min(cash/(100000*(stageValue+1)), 1)

	score := runwayEfficiency*0.5 + capitalSufficiency*0.3 + stageValue/10*0.2
	return clamp(score, 0.1, 0.95)
}

func heuristicAdvantage(m models.MetricSet) float64 {
	tech := m.FloatOr("tech_differentiation_score", 5) // 1-10 scale
	switching := m.FloatOr("switching_cost_score", 5)  // 1-10 scale
	network := boolAlias(m, "has_network_effect", "network_effects_present")

	moatFactor := 0.0
	if network {
		moatFactor = 0.2
	}

	score := tech/10*0.4 + moatFactor*0.3 + switching/10*0.3
	return clamp(score, 0.15, 0.95)
}

func heuristicMarket(m models.MetricSet) float64 {
	tam := m.FloatOr("tam_size_usd", 1e9)
	growth := m.FloatOr("market_growth_rate_percent", 10)
	competition := m.FloatOr("competition_intensity", 5) // 1-10, 10 is crowded

	tamFactor := 0.0
	if tam > 0 {
		tamFactor = math.Min(math.Log10(tam)/12, 1)
	}
	growthFactor := math.Min(growth/100, 1)
	competitionFactor := (10 - competition) / 10

	score := tamFactor*0.4 + growthFactor*0.4 + competitionFactor*0.2
	return clamp(score, 0.2, 0.95)
}

func heuristicPeople(m models.MetricSet) float64 {
	domainYears := floatAlias(m, 3, "domain_expertise_years_avg", "founder_domain_experience_years")
	teamSize := m.FloatOr("team_size_full_time", 2)
	priorStartups := m.FloatOr("prior_startup_experience_count", 0)
	priorExits := floatAlias(m, 0, "previous_exits_count", "prior_successful_exits_count")
	diversity := m.FloatOr("team_diversity_percent", 30)

	score := math.Min(domainYears/20, 1)*0.3 +
		math.Min(teamSize/20, 1)*0.15 +
		math.Min(priorStartups/3, 1)*0.2 +
		math.Min(priorExits/2, 1)*0.25 +
		diversity/100*0.1
	return clamp(score, 0.25, 0.95)
}

// metaWeights blends pillar probabilities when the meta artifact is missing.
// The weighting mirrors the trained ensemble's pillar contributions.
var metaWeights = map[models.Pillar]float64{
	models.PillarCapital:   0.30,
	models.PillarAdvantage: 0.20,
	models.PillarMarket:    0.25,
	models.PillarPeople:    0.25,
}

func heuristicCombine(scores map[models.Pillar]float64) float64 {
	total := 0.0
	for p, w := range metaWeights {
		total += scores[p] * w
	}
	return clamp(total, 0, 1)
}
