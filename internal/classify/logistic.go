package classify

import (
	"fmt"

	"github.com/venturelens/venturelens/internal/models"
)

// Logistic evaluates a calibrated logistic model: sigmoid(w·x + b). It is
// immutable after construction and safe for concurrent use.
type Logistic struct {
	name    string
	weights []float64
	bias    float64
}

// NewLogistic builds a logistic classifier from trained parameters.
func NewLogistic(name string, weights []float64, bias float64) (*Logistic, error) {
	if name == "" {
		return nil, fmt.Errorf("logistic classifier needs a name")
	}
	if len(weights) == 0 {
		return nil, fmt.Errorf("logistic classifier %q has no weights", name)
	}
	w := make([]float64, len(weights))
	copy(w, weights)
	return &Logistic{name: name, weights: w, bias: bias}, nil
}

func (c *Logistic) Name() string { return c.name }

func (c *Logistic) Kind() Kind { return KindLogistic }

func (c *Logistic) FeatureCount() int { return len(c.weights) }

func (c *Logistic) Predict(vec models.FeatureVector) (float64, error) {
	if len(vec) != len(c.weights) {
		return 0, &models.SchemaMismatchError{
			Component: c.name,
			Want:      len(c.weights),
			Got:       len(vec),
		}
	}
	z := c.bias
	for i, w := range c.weights {
		z += w * vec[i]
	}
	return sigmoid(z), nil
}
