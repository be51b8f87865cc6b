// Package classify wraps the trained pillar and meta classifiers behind a
// uniform scoring interface, with deterministic heuristic fallbacks for
// degraded operation when an artifact failed to load.
package classify

import (
	"math"

	"github.com/venturelens/venturelens/internal/models"
)

// Kind identifies the classifier implementation backing an artifact.
type Kind string

const (
	// KindLogistic is the serving export of a trained booster: a calibrated
	// logistic surrogate evaluated as sigmoid(w·x + b).
	KindLogistic Kind = "logistic"

	// KindHeuristic is the deterministic fallback scorer used when no
	// trained artifact is available.
	KindHeuristic Kind = "heuristic"
)

// Classifier is a read-only prediction function over an aligned feature
// vector. Implementations must be safe for unbounded concurrent use after
// construction.
type Classifier interface {
	// Name identifies the classifier for logs and error messages.
	Name() string

	Kind() Kind

	// FeatureCount is the trained input width.
	FeatureCount() int

	// Predict returns a success probability in [0,1]. Vectors whose length
	// disagrees with FeatureCount fail with a SchemaMismatchError.
	Predict(vec models.FeatureVector) (float64, error)
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
