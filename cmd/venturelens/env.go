package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/venturelens/venturelens/internal/engine"
	"github.com/venturelens/venturelens/internal/models"
	"github.com/venturelens/venturelens/internal/policy"
	"github.com/venturelens/venturelens/internal/projectconfig"
	"github.com/venturelens/venturelens/internal/recommend"
	"github.com/venturelens/venturelens/internal/registry"
	"github.com/venturelens/venturelens/internal/validation"
	"gopkg.in/yaml.v3"
)

// cliEnv bundles the loaded project configuration with the engine built from
// it. Commands resolve flag overrides before calling buildEnv.
type cliEnv struct {
	cfg    *projectconfig.ProjectConfig
	eng    *engine.Engine
	reg    *registry.Registry
	policy *policy.Provider
}

// buildEnv loads project configuration from the working directory and
// constructs the prediction engine. Empty modelsDir/policyPath fall back to
// the configured paths.
func buildEnv(modelsDir, policyPath string) (*cliEnv, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}

	cfg, err := projectconfig.Load(wd)
	if err != nil {
		return nil, err
	}

	if modelsDir == "" {
		modelsDir = cfg.Paths.Models
	}
	if policyPath == "" {
		policyPath = cfg.Paths.Policy
	}

	tolerate := false
	if cfg.Defaults.TolerateShapeMismatch != nil {
		tolerate = *cfg.Defaults.TolerateShapeMismatch
	}

	reg := registry.Open(modelsDir, registry.Options{TolerateShapeMismatch: tolerate})
	pol := policy.NewProvider(policyPath)

	eng := engine.New(reg, pol,
		recommend.WithBenchmark(cfg.Defaults.Benchmark),
		recommend.WithTopN(cfg.Defaults.TopN))

	return &cliEnv{cfg: cfg, eng: eng, reg: reg, policy: pol}, nil
}

// predictOptions translates CLI flags into engine options. threshold is only
// honored when thresholdSet is true, so an untouched flag never overrides the
// trained thresholds.
func predictOptions(cfg *projectconfig.ProjectConfig, strict bool, strictSet bool, mode string, threshold float64, thresholdSet bool) (engine.Options, error) {
	opts := engine.Options{}

	if strictSet {
		opts.Strict = strict
	} else if cfg.Defaults.Strict != nil {
		opts.Strict = *cfg.Defaults.Strict
	}

	if mode == "" {
		mode = cfg.Defaults.ThresholdMode
	}
	switch models.ThresholdMode(mode) {
	case models.ThresholdDefault, models.ThresholdPrecision, models.ThresholdRecall:
		opts.ThresholdMode = models.ThresholdMode(mode)
	default:
		return opts, fmt.Errorf("invalid threshold mode %q: must be default, precision, or recall", mode)
	}

	if thresholdSet {
		if threshold <= 0 || threshold >= 1 {
			return opts, fmt.Errorf("threshold must be in (0, 1), got %v", threshold)
		}
		opts.Threshold = &threshold
	}

	return opts, nil
}

// loadMetricsFile reads a YAML or JSON metrics file, validates it against the
// metrics schema, and returns the sanitized metric set.
func loadMetricsFile(path string) (models.MetricSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading metrics file: %w", err)
	}

	if errs := validation.ValidateMetricsBytes(data); len(errs) > 0 {
		return nil, fmt.Errorf("invalid metrics in %s:\n  %s", path, strings.Join(errs, "\n  "))
	}

	var m models.MetricSet
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing metrics file: %w", err)
	}

	return validation.SanitizeMetrics(m), nil
}

// startupName pulls a display name out of the metric set, falling back to the
// file's base name when the metrics carry none.
func startupName(m models.MetricSet, fallback string) string {
	if name, ok := m.String("startup_name"); ok && name != "" {
		return name
	}
	return fallback
}
