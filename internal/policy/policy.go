// Package policy applies the versioned, externally configurable decision rule
// set to raw model output: boost and penalty multipliers, thresholds, and the
// strict per-pillar gate.
package policy

import (
	"fmt"
	"os"

	"github.com/venturelens/venturelens/internal/models"
	"gopkg.in/yaml.v3"
)

// Comparator is a rule condition operator.
type Comparator string

const (
	CompGT Comparator = ">"
	CompGE Comparator = ">="
	CompLT Comparator = "<"
	CompLE Comparator = "<="
	CompEQ Comparator = "=="
)

// Condition is one comparison against a pillar score. Rules are parsed once
// from the policy document into this small AST and evaluated by a pure
// interpreter; no expression strings are ever eval'd at request time.
type Condition struct {
	Pillar models.Pillar `yaml:"pillar"`
	Op     Comparator    `yaml:"op"`
	Value  float64       `yaml:"value"`
}

// Holds evaluates the condition against the pillar scores.
func (c Condition) Holds(scores map[models.Pillar]float64) bool {
	v := scores[c.Pillar]
	switch c.Op {
	case CompGT:
		return v > c.Value
	case CompGE:
		return v >= c.Value
	case CompLT:
		return v < c.Value
	case CompLE:
		return v <= c.Value
	case CompEQ:
		return v == c.Value
	default:
		return false
	}
}

// Rule is an implicit AND of conditions with a score multiplier. Multipliers
// of all firing rules compose multiplicatively in declaration order.
type Rule struct {
	Conditions []Condition `yaml:"if"`
	Multiplier float64     `yaml:"mult"`
}

// Fires reports whether every condition holds.
func (r Rule) Fires(scores map[models.Pillar]float64) bool {
	for _, c := range r.Conditions {
		if !c.Holds(scores) {
			return false
		}
	}
	return len(r.Conditions) > 0
}

// Policy is the decision rule set loaded from the policy document. It is
// read-only during request processing; reload replaces the whole value.
type Policy struct {
	Version         string                    `yaml:"version"`
	GlobalThreshold float64                   `yaml:"global_threshold"`
	PerPillarMin    map[models.Pillar]float64 `yaml:"per_pillar_min,omitempty"`
	StrictGate      *float64                  `yaml:"strict_gate,omitempty"`
	Boosts          []Rule                    `yaml:"boost,omitempty"`
	Penalties       []Rule                    `yaml:"penalty,omitempty"`
}

// Default is the conservative built-in policy used when no document is
// configured or the configured one is malformed: global threshold only, no
// boosts or penalties, no strict minima.
func Default() *Policy {
	return &Policy{
		Version:         "builtin-default",
		GlobalThreshold: 0.5,
	}
}

// Validate rejects rule sets that could misbehave at request time.
func (p *Policy) Validate() error {
	if p.GlobalThreshold <= 0 || p.GlobalThreshold > 1 {
		return fmt.Errorf("global_threshold %v outside (0,1]", p.GlobalThreshold)
	}
	if p.StrictGate != nil && (*p.StrictGate < 0 || *p.StrictGate > 1) {
		return fmt.Errorf("strict_gate %v outside [0,1]", *p.StrictGate)
	}
	for pillar, min := range p.PerPillarMin {
		if _, err := models.ParsePillar(string(pillar)); err != nil {
			return fmt.Errorf("per_pillar_min: %w", err)
		}
		if min < 0 || min > 1 {
			return fmt.Errorf("per_pillar_min.%s %v outside [0,1]", pillar, min)
		}
	}
	if err := validateRules("boost", p.Boosts); err != nil {
		return err
	}
	return validateRules("penalty", p.Penalties)
}

func validateRules(section string, rules []Rule) error {
	for i, r := range rules {
		if r.Multiplier <= 0 {
			return fmt.Errorf("%s[%d]: multiplier %v must be positive", section, i, r.Multiplier)
		}
		if len(r.Conditions) == 0 {
			return fmt.Errorf("%s[%d]: rule has no conditions", section, i)
		}
		for j, c := range r.Conditions {
			if _, err := models.ParsePillar(string(c.Pillar)); err != nil {
				return fmt.Errorf("%s[%d].if[%d]: %w", section, i, j, err)
			}
			switch c.Op {
			case CompGT, CompGE, CompLT, CompLE, CompEQ:
			default:
				return fmt.Errorf("%s[%d].if[%d]: unknown comparator %q", section, i, j, c.Op)
			}
		}
	}
	return nil
}

// Load reads and validates a policy document. Errors come back as a
// PolicyConfigError; callers are expected to fall back to Default and log,
// never to surface the error to prediction requests.
func Load(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &models.PolicyConfigError{Path: path, Err: err}
	}
	return Parse(data, path)
}

// Parse decodes and validates raw policy YAML.
func Parse(data []byte, path string) (*Policy, error) {
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, &models.PolicyConfigError{Path: path, Err: err}
	}
	if err := p.Validate(); err != nil {
		return nil, &models.PolicyConfigError{Path: path, Err: err}
	}
	return &p, nil
}
