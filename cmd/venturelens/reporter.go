package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/venturelens/venturelens/internal/models"
	"github.com/venturelens/venturelens/internal/report"
)

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

// printPredictionTable writes a human-readable summary of a prediction to w.
func printPredictionTable(w io.Writer, name string, res *models.PredictionResult) {
	if name != "" {
		fmt.Fprintf(w, "\n%s\n\n", name)
	} else {
		fmt.Fprintln(w)
	}

	const (
		pillarWidth = 12
		scoreWidth  = 8
	)

	fmt.Fprintf(w, "  %s%s%s\n", padRight("PILLAR", pillarWidth), padRight("SCORE", scoreWidth), "ASSESSMENT")
	for _, p := range models.Pillars {
		score := res.PillarScores[p]
		fmt.Fprintf(w, "  %s%s%s\n",
			padRight(string(p), pillarWidth),
			padRight(fmt.Sprintf("%.3f", score), scoreWidth),
			report.InterpretScore(score))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Final score: %.3f (threshold %.3f, confidence %.1f%%)\n",
		res.FinalScore, res.Threshold, res.Confidence*100)
	if len(res.ConfidenceInterval) == 2 {
		fmt.Fprintf(w, "  95%% interval: [%.3f, %.3f]\n",
			res.ConfidenceInterval[0], res.ConfidenceInterval[1])
	}

	decision := "PASS"
	if res.Label == models.LabelFail {
		decision = "FAIL"
	}
	fmt.Fprintf(w, "  Decision: %s. %s\n", decision, report.InterpretLabel(res))

	for _, a := range res.Alerts {
		fmt.Fprintf(w, "  [%s] %s\n", a.Severity, a.Message)
	}
	for _, warning := range res.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", warning)
	}
	fmt.Fprintln(w)
}

// printRecommendations writes per-pillar improvement suggestions to w.
func printRecommendations(w io.Writer, set models.RecommendationSet) {
	for _, p := range models.Pillars {
		items := set[p]
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s:\n", p)
		for _, item := range items {
			fmt.Fprintf(w, "    %s (%s impact): %s\n", item.Metric, item.Impact, item.Recommendation)
		}
	}
}
