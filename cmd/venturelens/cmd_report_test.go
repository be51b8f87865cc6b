package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReportCommand_WritesMarkdown(t *testing.T) {
	metricsPath := setupProject(t, permissivePolicyYAML)

	out, err := runCommand(t, "report", metricsPath)
	require.NoError(t, err)
	require.Contains(t, out, "wrote ")

	data, err := os.ReadFile(filepath.Join("reports", "acme.md"))
	require.NoError(t, err)

	doc := string(data)
	require.Contains(t, doc, "# VentureLens Report")
	require.Contains(t, doc, "acme-robotics")
	require.Contains(t, doc, "capital")
}

func TestReportCommand_WritesHTML(t *testing.T) {
	metricsPath := setupProject(t, permissivePolicyYAML)
	outPath := filepath.Join(t.TempDir(), "report.html")

	_, err := runCommand(t, "report", metricsPath, "--html", "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "<!DOCTYPE html>")
	require.Contains(t, string(data), "<table>")
}

func TestRecommendCommand_JSON(t *testing.T) {
	metricsPath := setupProject(t, permissivePolicyYAML)

	out, err := runCommand(t, "recommend", metricsPath, "--format", "json")
	require.NoError(t, err)
	require.Contains(t, out, `"recommendations"`)
	require.Contains(t, out, `"prediction"`)
}

func TestRecommendCommand_TableHealthy(t *testing.T) {
	metricsPath := setupProject(t, permissivePolicyYAML)

	out, err := runCommand(t, "recommend", metricsPath)
	require.NoError(t, err)
	require.Contains(t, out, "All pillars are at or above benchmark.")
}
