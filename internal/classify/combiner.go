package classify

import (
	"fmt"

	"github.com/venturelens/venturelens/internal/feature"
	"github.com/venturelens/venturelens/internal/models"
)

// Combiner is the second-stage classifier merging the four pillar
// probabilities into one raw score. The pillar probabilities are consumed in
// the canonical order of models.Pillars, optionally concatenated with
// auxiliary raw features when the trained meta schema includes them.
type Combiner struct {
	clf       Classifier      // nil when degraded to the heuristic blend
	auxSchema *feature.Schema // nil when the meta model takes pillar scores only

	tolerateShape bool
}

// NewCombiner wires the trained meta classifier. auxSchema may be nil. The
// trained width must equal len(models.Pillars) plus the aux schema width.
func NewCombiner(clf Classifier, auxSchema *feature.Schema, tolerateShape bool) (*Combiner, error) {
	want := len(models.Pillars)
	if auxSchema != nil {
		if err := auxSchema.Validate(); err != nil {
			return nil, fmt.Errorf("meta aux schema: %w", err)
		}
		want += auxSchema.FeatureCount()
	}
	if clf.FeatureCount() != want && !tolerateShape {
		return nil, &models.SchemaMismatchError{Component: clf.Name(), Want: clf.FeatureCount(), Got: want}
	}
	return &Combiner{clf: clf, auxSchema: auxSchema, tolerateShape: tolerateShape}, nil
}

// NewFallbackCombiner returns the degraded heuristic blend used when the meta
// artifact failed to load.
func NewFallbackCombiner() *Combiner {
	return &Combiner{}
}

// Degraded reports whether the combiner is running without a trained model.
func (c *Combiner) Degraded() bool { return c.clf == nil }

// Combine produces the raw combined probability prior to policy adjustment.
func (c *Combiner) Combine(scores map[models.Pillar]float64, m models.MetricSet) (float64, []string, error) {
	if c.clf == nil {
		return heuristicCombine(scores), nil, nil
	}

	vec := make(models.FeatureVector, 0, c.clf.FeatureCount())
	for _, p := range models.Pillars {
		vec = append(vec, scores[p])
	}
	if c.auxSchema != nil {
		vec = append(vec, feature.Align(m, c.auxSchema)...)
	}

	var warnings []string
	if len(vec) != c.clf.FeatureCount() {
		if !c.tolerateShape || len(vec) > c.clf.FeatureCount() {
			return 0, nil, &models.SchemaMismatchError{
				Component: c.clf.Name(),
				Want:      c.clf.FeatureCount(),
				Got:       len(vec),
			}
		}
		padded := make(models.FeatureVector, c.clf.FeatureCount())
		copy(padded, vec)
		warnings = append(warnings, fmt.Sprintf(
			"meta: combined vector has %d features, trained width is %d; zero-padded trailing features",
			len(vec), c.clf.FeatureCount()))
		vec = padded
	}

	prob, err := c.clf.Predict(vec)
	if err != nil {
		return 0, warnings, err
	}
	return prob, warnings, nil
}
