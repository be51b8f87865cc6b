// Package projectconfig provides the ProjectConfig struct and loader for
// .venturelens.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default values for project configuration. New() references them; no other
// code should duplicate them.
const (
	DefaultModelsDir  = "models/"
	DefaultPolicyPath = "policy.yaml"
	DefaultReportsDir = "reports/"

	DefaultThresholdMode = "default"
	DefaultBenchmark     = 0.7
	DefaultTopN          = 3

	DefaultServerPort = 8000
)

// PathsConfig holds locations of the model bundle, policy document and
// report output.
type PathsConfig struct {
	Models  string `yaml:"models,omitempty"`
	Policy  string `yaml:"policy,omitempty"`
	Reports string `yaml:"reports,omitempty"`
}

// DefaultsConfig holds default prediction parameters.
type DefaultsConfig struct {
	Strict                *bool   `yaml:"strict,omitempty"`
	ThresholdMode         string  `yaml:"threshold_mode,omitempty"`
	Benchmark             float64 `yaml:"benchmark,omitempty"`
	TopN                  int     `yaml:"top_n,omitempty"`
	TolerateShapeMismatch *bool   `yaml:"tolerate_shape_mismatch,omitempty"`
}

// ServerConfig holds API server settings.
type ServerConfig struct {
	Port           int      `yaml:"port,omitempty"`
	AllowedOrigins []string `yaml:"allowed_origins,omitempty"`
}

// FetchConfig holds artifact bundle download settings.
type FetchConfig struct {
	Container string `yaml:"container,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .venturelens.yaml.
type ProjectConfig struct {
	Paths    PathsConfig    `yaml:"paths,omitempty"`
	Defaults DefaultsConfig `yaml:"defaults,omitempty"`
	Server   ServerConfig   `yaml:"server,omitempty"`
	Fetch    FetchConfig    `yaml:"fetch,omitempty"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Paths: PathsConfig{
			Models:  DefaultModelsDir,
			Policy:  DefaultPolicyPath,
			Reports: DefaultReportsDir,
		},
		Defaults: DefaultsConfig{
			Strict:                boolPtr(false),
			ThresholdMode:         DefaultThresholdMode,
			Benchmark:             DefaultBenchmark,
			TopN:                  DefaultTopN,
			TolerateShapeMismatch: boolPtr(false),
		},
		Server: ServerConfig{
			Port: DefaultServerPort,
		},
	}
}

// Load finds .venturelens.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading .venturelens.yaml: %w", err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing .venturelens.yaml: %w", err)
	}

	// Merge file values onto defaults.
	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .venturelens.yaml (max 10
// levels). Returns os.ErrNotExist if no config file is found. Propagates
// real I/O errors (e.g. permission denied) instead of silently swallowing
// them.
func findConfigFile(dir string) ([]byte, error) {
	// Convert to absolute path so filepath.Dir(".") walks correctly.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ".venturelens.yaml")
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	// Paths
	if src.Paths.Models != "" {
		dst.Paths.Models = src.Paths.Models
	}
	if src.Paths.Policy != "" {
		dst.Paths.Policy = src.Paths.Policy
	}
	if src.Paths.Reports != "" {
		dst.Paths.Reports = src.Paths.Reports
	}

	// Defaults
	if src.Defaults.Strict != nil {
		dst.Defaults.Strict = src.Defaults.Strict
	}
	if src.Defaults.ThresholdMode != "" {
		dst.Defaults.ThresholdMode = src.Defaults.ThresholdMode
	}
	if src.Defaults.Benchmark != 0 {
		dst.Defaults.Benchmark = src.Defaults.Benchmark
	}
	if src.Defaults.TopN != 0 {
		dst.Defaults.TopN = src.Defaults.TopN
	}
	if src.Defaults.TolerateShapeMismatch != nil {
		dst.Defaults.TolerateShapeMismatch = src.Defaults.TolerateShapeMismatch
	}

	// Server
	if src.Server.Port != 0 {
		dst.Server.Port = src.Server.Port
	}
	if len(src.Server.AllowedOrigins) > 0 {
		dst.Server.AllowedOrigins = src.Server.AllowedOrigins
	}

	// Fetch
	if src.Fetch.Container != "" {
		dst.Fetch.Container = src.Fetch.Container
	}
}

func boolPtr(b bool) *bool {
	return &b
}
