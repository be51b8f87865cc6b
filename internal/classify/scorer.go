package classify

import (
	"fmt"

	"github.com/venturelens/venturelens/internal/feature"
	"github.com/venturelens/venturelens/internal/models"
)

// PillarScorer produces one pillar's success probability from the caller's
// raw metrics. Implementations are read-only after construction and safe for
// concurrent use across requests.
type PillarScorer interface {
	Pillar() models.Pillar

	// Score returns a probability in [0,1] plus any non-fatal warnings
	// attached along the way (e.g. a tolerated shape mismatch).
	Score(m models.MetricSet) (prob float64, warnings []string, err error)

	// Degraded reports whether this scorer is a heuristic fallback standing
	// in for a trained artifact that failed to load.
	Degraded() bool
}

// ModelScorer aligns metrics against the pillar's trained schema and runs the
// loaded classifier.
type ModelScorer struct {
	pillar models.Pillar
	schema *feature.Schema
	clf    Classifier

	// tolerateShape enables the degraded-operation fallback: vectors shorter
	// than the trained width are zero-padded with a warning instead of
	// failing the request. Over-length vectors always fail.
	tolerateShape bool
}

// NewModelScorer wires a trained classifier to its feature schema. The schema
// width and the classifier's trained feature count must agree; disagreement
// is artifact drift and fails construction with a SchemaMismatchError unless
// tolerateShape is set.
func NewModelScorer(p models.Pillar, schema *feature.Schema, clf Classifier, tolerateShape bool) (*ModelScorer, error) {
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("%s schema: %w", p, err)
	}
	if got := schema.FeatureCount(); got != clf.FeatureCount() && !tolerateShape {
		return nil, &models.SchemaMismatchError{Component: clf.Name(), Want: clf.FeatureCount(), Got: got}
	}
	return &ModelScorer{pillar: p, schema: schema, clf: clf, tolerateShape: tolerateShape}, nil
}

func (s *ModelScorer) Pillar() models.Pillar { return s.pillar }

func (s *ModelScorer) Degraded() bool { return false }

func (s *ModelScorer) Score(m models.MetricSet) (float64, []string, error) {
	vec := feature.Align(m, s.schema)

	var warnings []string
	if len(vec) != s.clf.FeatureCount() {
		if !s.tolerateShape || len(vec) > s.clf.FeatureCount() {
			return 0, nil, &models.SchemaMismatchError{
				Component: s.clf.Name(),
				Want:      s.clf.FeatureCount(),
				Got:       len(vec),
			}
		}
		padded := make(models.FeatureVector, s.clf.FeatureCount())
		copy(padded, vec)
		warnings = append(warnings, fmt.Sprintf(
			"%s: aligned vector has %d features, trained width is %d; zero-padded trailing features",
			s.pillar, len(vec), s.clf.FeatureCount()))
		vec = padded
	}

	prob, err := s.clf.Predict(vec)
	if err != nil {
		return 0, warnings, err
	}
	return prob, warnings, nil
}

// HeuristicScorer is the per-pillar degraded fallback used when the trained
// artifact failed to load.
type HeuristicScorer struct {
	pillar models.Pillar
	fn     func(models.MetricSet) float64
}

// NewHeuristicScorer builds the fallback scorer for a pillar.
func NewHeuristicScorer(p models.Pillar) *HeuristicScorer {
	return &HeuristicScorer{pillar: p, fn: HeuristicFor(p)}
}

func (s *HeuristicScorer) Pillar() models.Pillar { return s.pillar }

func (s *HeuristicScorer) Degraded() bool { return true }

func (s *HeuristicScorer) Score(m models.MetricSet) (float64, []string, error) {
	return s.fn(m), nil, nil
}
