package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidatePolicyCommand_Valid(t *testing.T) {
	path := writeTempFile(t, "policy.yaml", `version: "2024-06"
global_threshold: 0.3
strict_gate: 0.6
boost:
  - if:
      - pillar: capital
        op: ">="
        value: 0.8
    mult: 1.1
`)

	out, err := runCommand(t, "validate", "policy", path)
	require.NoError(t, err)
	require.Contains(t, out, "valid")
}

func TestValidatePolicyCommand_SchemaViolation(t *testing.T) {
	path := writeTempFile(t, "policy.yaml", `version: bad
global_threshold: 1.5
`)

	_, err := runCommand(t, "validate", "policy", path)
	require.ErrorContains(t, err, "validation error")
}

func TestValidatePolicyCommand_EmptyRule(t *testing.T) {
	path := writeTempFile(t, "policy.yaml", `version: bad
global_threshold: 0.3
boost:
  - if: []
    mult: 1.1
`)

	_, err := runCommand(t, "validate", "policy", path)
	require.Error(t, err)
}

func TestValidateMetricsCommand_Valid(t *testing.T) {
	path := writeTempFile(t, "metrics.yaml", healthyMetricsYAML)

	out, err := runCommand(t, "validate", "metrics", path)
	require.NoError(t, err)
	require.Contains(t, out, "valid")
}

func TestValidateMetricsCommand_Invalid(t *testing.T) {
	path := writeTempFile(t, "metrics.yaml", "nps_score: 250\n")

	_, err := runCommand(t, "validate", "metrics", path)
	require.ErrorContains(t, err, "validation error")
}

func TestValidateMetricsCommand_MissingFile(t *testing.T) {
	_, err := runCommand(t, "validate", "metrics", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
