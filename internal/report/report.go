// Package report renders a prediction and its recommendations as a markdown
// summary document, optionally converted to standalone HTML.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/venturelens/venturelens/internal/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// InterpretScore returns a plain-language label for a pillar score (0–1).
func InterpretScore(score float64) string {
	pct := score * 100
	switch {
	case pct > 80:
		return "Strong (>80%)"
	case pct >= 60:
		return "Solid (60-80%)"
	case pct >= 40:
		return "Fragile (40-60%)"
	default:
		return "Weak (<40%)"
	}
}

// InterpretLabel explains the decision in one sentence.
func InterpretLabel(res *models.PredictionResult) string {
	if res.Label == models.LabelPass {
		return fmt.Sprintf("Final score %.3f clears the %.3f threshold.", res.FinalScore, res.Threshold)
	}
	if len(res.FailedPillars) > 0 {
		names := make([]string, len(res.FailedPillars))
		for i, p := range res.FailedPillars {
			names[i] = string(p)
		}
		return fmt.Sprintf("Blocked by the strict gate: %s below minimum.", strings.Join(names, ", "))
	}
	return fmt.Sprintf("Final score %.3f falls short of the %.3f threshold.", res.FinalScore, res.Threshold)
}

// Params carries everything the report needs. Name is the startup's display
// name; Recommendations may be nil when only the prediction is rendered.
type Params struct {
	Name            string
	Result          *models.PredictionResult
	Recommendations models.RecommendationSet
	ModelVersion    string
	GeneratedAt     time.Time
}

// Markdown renders the report document.
func Markdown(p Params) string {
	var b strings.Builder

	name := p.Name
	if name == "" {
		name = "Unnamed startup"
	}
	fmt.Fprintf(&b, "# VentureLens Report — %s\n\n", name)
	fmt.Fprintf(&b, "Generated %s", p.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC"))
	if p.ModelVersion != "" {
		fmt.Fprintf(&b, " · model %s", p.ModelVersion)
	}
	if p.Result.PolicyVersion != "" {
		fmt.Fprintf(&b, " · policy %s", p.Result.PolicyVersion)
	}
	b.WriteString("\n\n")

	res := p.Result
	b.WriteString("## Decision\n\n")
	fmt.Fprintf(&b, "**%s** — confidence %.2f. %s\n\n", strings.ToUpper(string(res.Label)), res.Confidence, InterpretLabel(res))
	if len(res.ConfidenceInterval) == 2 {
		fmt.Fprintf(&b, "95%% interval on the final score: [%.3f, %.3f].\n\n",
			res.ConfidenceInterval[0], res.ConfidenceInterval[1])
	}

	b.WriteString("## Pillar Scores\n\n")
	b.WriteString("| Pillar | Score | Reading |\n|---|---|---|\n")
	for _, pillar := range models.Pillars {
		score := res.PillarScores[pillar]
		fmt.Fprintf(&b, "| %s | %.3f | %s |\n", pillar, score, InterpretScore(score))
	}
	b.WriteString("\n")

	if len(res.Alerts) > 0 {
		b.WriteString("## Alerts\n\n")
		for _, a := range res.Alerts {
			fmt.Fprintf(&b, "- **%s**: %s\n", a.Type, a.Message)
		}
		b.WriteString("\n")
	}

	if p.Recommendations != nil {
		b.WriteString("## Recommendations\n\n")
		wrote := false
		for _, pillar := range models.Pillars {
			items := p.Recommendations[pillar]
			if len(items) == 0 {
				continue
			}
			wrote = true
			fmt.Fprintf(&b, "### %s\n\n", pillar)
			for _, item := range items {
				fmt.Fprintf(&b, "- (%s) %s\n", item.Impact, item.Recommendation)
			}
			b.WriteString("\n")
		}
		if !wrote {
			b.WriteString("All pillars are at or above benchmark.\n\n")
		}
	}

	if len(res.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range res.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// HTML converts the markdown report to a standalone HTML document.
func HTML(markdown string) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var body bytes.Buffer
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<style>\nbody { font-family: sans-serif; max-width: 48em; margin: 2em auto; padding: 0 1em; }\n")
	b.WriteString("table { border-collapse: collapse; }\nth, td { padding: 6px 10px; border: 1px solid #ccc; text-align: left; }\n")
	b.WriteString("th { background-color: #f2f2f2; }\n</style>\n</head>\n<body>\n")
	b.Write(body.Bytes())
	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}
