package projectconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_ReturnsAllDefaults(t *testing.T) {
	cfg := New()

	// Paths
	assertEqual(t, "Paths.Models", "models/", cfg.Paths.Models)
	assertEqual(t, "Paths.Policy", "policy.yaml", cfg.Paths.Policy)
	assertEqual(t, "Paths.Reports", "reports/", cfg.Paths.Reports)

	// Defaults
	assertBoolPtr(t, "Defaults.Strict", false, cfg.Defaults.Strict)
	assertEqual(t, "Defaults.ThresholdMode", "default", cfg.Defaults.ThresholdMode)
	assertEqualFloat(t, "Defaults.Benchmark", 0.7, cfg.Defaults.Benchmark)
	assertEqualInt(t, "Defaults.TopN", 3, cfg.Defaults.TopN)
	assertBoolPtr(t, "Defaults.TolerateShapeMismatch", false, cfg.Defaults.TolerateShapeMismatch)

	// Server
	assertEqualInt(t, "Server.Port", 8000, cfg.Server.Port)
	if len(cfg.Server.AllowedOrigins) != 0 {
		t.Errorf("Server.AllowedOrigins should be empty by default, got %v", cfg.Server.AllowedOrigins)
	}

	// Fetch
	assertEqual(t, "Fetch.Container", "", cfg.Fetch.Container)
}

func TestLoad_FullConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".venturelens.yaml", `
paths:
  models: "artifacts/v2/"
  policy: "config/policy.yaml"
  reports: "out/reports/"
defaults:
  strict: true
  threshold_mode: precision
  benchmark: 0.65
  top_n: 5
  tolerate_shape_mismatch: true
server:
  port: 8080
  allowed_origins:
    - "https://dashboard.example.com"
fetch:
  container: "https://acct.blob.core.windows.net/bundles"
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	assertEqual(t, "Paths.Models", "artifacts/v2/", cfg.Paths.Models)
	assertEqual(t, "Paths.Policy", "config/policy.yaml", cfg.Paths.Policy)
	assertEqual(t, "Paths.Reports", "out/reports/", cfg.Paths.Reports)
	assertBoolPtr(t, "Defaults.Strict", true, cfg.Defaults.Strict)
	assertEqual(t, "Defaults.ThresholdMode", "precision", cfg.Defaults.ThresholdMode)
	assertEqualFloat(t, "Defaults.Benchmark", 0.65, cfg.Defaults.Benchmark)
	assertEqualInt(t, "Defaults.TopN", 5, cfg.Defaults.TopN)
	assertBoolPtr(t, "Defaults.TolerateShapeMismatch", true, cfg.Defaults.TolerateShapeMismatch)
	assertEqualInt(t, "Server.Port", 8080, cfg.Server.Port)
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "https://dashboard.example.com" {
		t.Errorf("Server.AllowedOrigins = %v", cfg.Server.AllowedOrigins)
	}
	assertEqual(t, "Fetch.Container", "https://acct.blob.core.windows.net/bundles", cfg.Fetch.Container)
}

func TestLoad_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".venturelens.yaml", `
paths:
  models: "bundle/"
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Overridden
	assertEqual(t, "Paths.Models", "bundle/", cfg.Paths.Models)

	// Defaults preserved
	assertEqual(t, "Paths.Policy", "policy.yaml", cfg.Paths.Policy)
	assertEqualFloat(t, "Defaults.Benchmark", 0.7, cfg.Defaults.Benchmark)
	assertEqualInt(t, "Defaults.TopN", 3, cfg.Defaults.TopN)
	assertEqualInt(t, "Server.Port", 8000, cfg.Server.Port)
}

func TestLoad_MissingFile_ReturnsDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Should be identical to New()
	defaults := New()
	assertEqual(t, "Paths.Models", defaults.Paths.Models, cfg.Paths.Models)
	assertEqual(t, "Paths.Policy", defaults.Paths.Policy, cfg.Paths.Policy)
	assertEqualFloat(t, "Defaults.Benchmark", defaults.Defaults.Benchmark, cfg.Defaults.Benchmark)
	assertEqualInt(t, "Server.Port", defaults.Server.Port, cfg.Server.Port)
}

func TestLoad_InvalidYAML_ReturnsError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".venturelens.yaml", `
paths:
  models: [not valid yaml
    this is broken
`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Load() should return error for invalid YAML")
	}
}

func TestLoad_WalksUpDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".venturelens.yaml", `
paths:
  models: "found-it/"
`)

	child := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(child, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(child)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	assertEqual(t, "Paths.Models", "found-it/", cfg.Paths.Models)
	// Other defaults still populated
	assertEqual(t, "Paths.Policy", "policy.yaml", cfg.Paths.Policy)
}

func TestBoolPointerFields(t *testing.T) {
	t.Run("defaults preserved when not set in YAML", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".venturelens.yaml", `
defaults:
  top_n: 5
`)
		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		// Strict not in file → default (false) preserved by merge
		assertBoolPtr(t, "Defaults.Strict", false, cfg.Defaults.Strict)
	})

	t.Run("explicitly false", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".venturelens.yaml", `
defaults:
  strict: false
  tolerate_shape_mismatch: false
`)
		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		assertBoolPtr(t, "Defaults.Strict", false, cfg.Defaults.Strict)
		assertBoolPtr(t, "Defaults.TolerateShapeMismatch", false, cfg.Defaults.TolerateShapeMismatch)
	})

	t.Run("explicitly true", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".venturelens.yaml", `
defaults:
  strict: true
  tolerate_shape_mismatch: true
`)
		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		assertBoolPtr(t, "Defaults.Strict", true, cfg.Defaults.Strict)
		assertBoolPtr(t, "Defaults.TolerateShapeMismatch", true, cfg.Defaults.TolerateShapeMismatch)
	})
}

// --- test helpers ---

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func assertEqual(t *testing.T, field, want, got string) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %q, want %q", field, got, want)
	}
}

func assertEqualInt(t *testing.T, field string, want, got int) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %d, want %d", field, got, want)
	}
}

func assertEqualFloat(t *testing.T, field string, want, got float64) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", field, got, want)
	}
}

func assertBoolPtr(t *testing.T, field string, want bool, got *bool) {
	t.Helper()
	if got == nil {
		t.Errorf("%s is nil, want *%v", field, want)
		return
	}
	if *got != want {
		t.Errorf("%s = %v, want %v", field, *got, want)
	}
}
