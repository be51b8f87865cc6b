package feature

import (
	"log/slog"
	"strings"

	"github.com/venturelens/venturelens/internal/models"
)

// Align maps a raw metric set onto the schema's ordered numeric vector.
//
// Absent metrics never abort the request: scalar fields substitute their
// declared default and categorical fields encode as all-zero (absent is
// distinct from unknown, which sets the trailing bucket). The returned
// vector length always equals s.FeatureCount().
func Align(m models.MetricSet, s *Schema) models.FeatureVector {
	vec := make(models.FeatureVector, 0, s.FeatureCount())

	for i := range s.Fields {
		f := &s.Fields[i]
		switch f.Kind {
		case KindCategorical:
			vec = append(vec, encodeCategorical(m, f)...)
		case KindLength:
			list, ok := m.List(f.metric())
			if !ok {
				vec = append(vec, f.Default)
				continue
			}
			vec = append(vec, float64(len(list)))
		case KindBool:
			b, ok := m.Bool(f.metric())
			if !ok {
				vec = append(vec, f.Default)
				continue
			}
			if b {
				vec = append(vec, 1)
			} else {
				vec = append(vec, 0)
			}
		default: // KindNumeric
			v, ok := m.Float(f.metric())
			if !ok {
				if m.Has(f.metric()) {
					slog.Debug("metric not coercible, using default",
						"metric", f.metric(), "default", f.Default)
				}
				vec = append(vec, f.Default)
				continue
			}
			vec = append(vec, v)
		}
	}

	return vec
}

// encodeCategorical one-hot encodes the metric against the field vocabulary.
// Category comparison is case-insensitive; a present-but-unseen value sets
// the trailing unknown bucket so data drift degrades instead of failing.
func encodeCategorical(m models.MetricSet, f *Field) []float64 {
	cols := make([]float64, len(f.Vocabulary)+1)

	raw, ok := m.String(f.metric())
	if !ok {
		// Non-string scalars still count as a present value.
		if v, numOk := m.Float(f.metric()); numOk {
			idx := int(v)
			if idx >= 0 && idx < len(f.Vocabulary) {
				cols[idx] = 1
				return cols
			}
			cols[len(cols)-1] = 1
			return cols
		}
		return cols // absent: all zeros
	}

	for i, cat := range f.Vocabulary {
		if strings.EqualFold(strings.TrimSpace(raw), cat) {
			cols[i] = 1
			return cols
		}
	}
	cols[len(cols)-1] = 1 // unknown bucket
	return cols
}
