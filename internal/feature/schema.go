// Package feature aligns raw metric mappings onto the fixed, ordered numeric
// vectors the trained classifiers expect.
package feature

import "fmt"

// Kind describes how one schema field maps metrics onto vector columns.
type Kind string

const (
	// KindNumeric coerces a scalar metric to a float. Booleans become 0/1
	// and currency-formatted strings are normalized.
	KindNumeric Kind = "numeric"

	// KindBool maps a boolean metric to 0/1.
	KindBool Kind = "bool"

	// KindCategorical one-hot encodes a string metric against a fixed
	// vocabulary recorded at training time, plus a trailing "unknown"
	// bucket for values never seen in training.
	KindCategorical Kind = "categorical"

	// KindLength emits the element count of a list-valued metric.
	KindLength Kind = "length"
)

// Field is one entry in a trained feature schema.
type Field struct {
	// Name is the vector column name; it doubles as the metric name unless
	// Source overrides it.
	Name string `json:"name"`
	Kind Kind   `json:"kind"`

	// Source is the metric to read when it differs from Name, e.g. the
	// "founders" list backing a "founders_len" column.
	Source string `json:"source,omitempty"`

	// Default substitutes for an absent metric (zero, training-set mean, or
	// an explicit sentinel). Categorical fields ignore it.
	Default float64 `json:"default,omitempty"`

	// Vocabulary is the fixed category list for categorical fields. The
	// encoded width is len(Vocabulary)+1 for the unknown bucket.
	Vocabulary []string `json:"vocabulary,omitempty"`
}

// Width is the number of vector columns the field expands to.
func (f *Field) Width() int {
	if f.Kind == KindCategorical {
		return len(f.Vocabulary) + 1
	}
	return 1
}

func (f *Field) metric() string {
	if f.Source != "" {
		return f.Source
	}
	return f.Name
}

// Schema is the ordered feature list a classifier was trained against.
type Schema struct {
	Fields []Field `json:"features"`
}

// FeatureCount is the total vector width the schema produces.
func (s *Schema) FeatureCount() int {
	n := 0
	for i := range s.Fields {
		n += s.Fields[i].Width()
	}
	return n
}

// Validate rejects schemas that could never align: empty field names,
// unknown kinds, or categorical fields without a vocabulary.
func (s *Schema) Validate() error {
	if len(s.Fields) == 0 {
		return fmt.Errorf("schema has no features")
	}
	for i := range s.Fields {
		f := &s.Fields[i]
		if f.Name == "" {
			return fmt.Errorf("feature %d has no name", i)
		}
		switch f.Kind {
		case KindNumeric, KindBool, KindLength:
		case KindCategorical:
			if len(f.Vocabulary) == 0 {
				return fmt.Errorf("categorical feature %q has an empty vocabulary", f.Name)
			}
		case "":
			return fmt.Errorf("feature %q has no kind", f.Name)
		default:
			return fmt.Errorf("feature %q has unknown kind %q", f.Name, f.Kind)
		}
	}
	return nil
}
