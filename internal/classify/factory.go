package classify

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/venturelens/venturelens/internal/feature"
)

// Artifact is the on-disk representation of one trained classifier: the
// implementation kind, the ordered feature schema it was trained against, and
// kind-specific parameters.
type Artifact struct {
	Name          string         `json:"name"`
	Kind          Kind           `json:"kind"`
	FeatureSchema feature.Schema `json:"feature_schema"`
	Params        map[string]any `json:"params"`
}

// New constructs a Classifier from a decoded artifact.
func New(a *Artifact) (Classifier, error) {
	switch a.Kind {
	case KindLogistic:
		var p struct {
			Weights []float64 `mapstructure:"weights"`
			Bias    float64   `mapstructure:"bias"`
		}
		if err := mapstructure.Decode(a.Params, &p); err != nil {
			return nil, fmt.Errorf("decoding %s params: %w", a.Name, err)
		}
		return NewLogistic(a.Name, p.Weights, p.Bias)
	default:
		return nil, fmt.Errorf("unknown classifier kind %q in artifact %q", a.Kind, a.Name)
	}
}
