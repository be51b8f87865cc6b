// Package wizard collects a startup metrics file interactively, one pillar
// at a time, and renders it as YAML ready for the predict command.
package wizard

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// MetricsSpec holds all fields collected during the interactive wizard.
// Numeric fields stay strings until rendering so optional answers can be
// left blank.
type MetricsSpec struct {
	StartupName  string
	FundingStage string

	// Capital
	TotalCapitalUSD string
	CurrentMRR      string
	MonthlyBurnUSD  string
	RunwayMonths    string

	// Advantage
	PatentCount    string
	TechScore      string
	HasDataMoat    bool
	NetworkEffects bool

	// Market
	TAMUSD           string
	MarketGrowthPct  string
	CompetitionLevel string
	NPSScore         string

	// People
	TeamSize        string
	FoundersCount   string
	PriorExits      string
	DomainExpertise string
}

const metricsTemplate = `# VentureLens metrics
startup_name: {{ .StartupName }}
funding_stage: {{ .FundingStage }}
{{- if .TotalCapitalUSD }}
total_funding_usd: {{ .TotalCapitalUSD }}
{{- end }}
{{- if .CurrentMRR }}
current_mrr: {{ .CurrentMRR }}
{{- end }}
{{- if .MonthlyBurnUSD }}
monthly_burn_usd: {{ .MonthlyBurnUSD }}
{{- end }}
{{- if .RunwayMonths }}
runway_months: {{ .RunwayMonths }}
{{- end }}
{{- if .PatentCount }}
patent_count: {{ .PatentCount }}
{{- end }}
{{- if .TechScore }}
tech_differentiation_score: {{ .TechScore }}
{{- end }}
has_data_moat: {{ .HasDataMoat }}
has_network_effect: {{ .NetworkEffects }}
{{- if .TAMUSD }}
tam_size_usd: {{ .TAMUSD }}
{{- end }}
{{- if .MarketGrowthPct }}
market_growth_rate_percent: {{ .MarketGrowthPct }}
{{- end }}
{{- if .CompetitionLevel }}
competition_intensity: {{ .CompetitionLevel }}
{{- end }}
{{- if .NPSScore }}
nps_score: {{ .NPSScore }}
{{- end }}
{{- if .TeamSize }}
team_size_full_time: {{ .TeamSize }}
{{- end }}
{{- if .FoundersCount }}
founders_count: {{ .FoundersCount }}
{{- end }}
{{- if .PriorExits }}
previous_exits_count: {{ .PriorExits }}
{{- end }}
{{- if .DomainExpertise }}
domain_expertise_years_avg: {{ .DomainExpertise }}
{{- end }}
`

// RunMetricsWizard runs an interactive huh form to collect startup metrics.
// If initialName is non-empty, it pre-populates the name field.
func RunMetricsWizard(in io.Reader, out io.Writer, initialName string) (*MetricsSpec, error) {
	spec := &MetricsSpec{StartupName: initialName}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Startup name").
				Placeholder("acme-robotics").
				Value(&spec.StartupName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Funding stage").
				Options(
					huh.NewOption("pre-seed", "pre_seed"),
					huh.NewOption("seed", "seed"),
					huh.NewOption("series A", "series_a"),
					huh.NewOption("series B", "series_b"),
					huh.NewOption("series C or later", "series_c_plus"),
				).
				Value(&spec.FundingStage),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Total capital raised (USD)").
				Description("Dollar signs and commas are fine, e.g. $2,500,000").
				Value(&spec.TotalCapitalUSD).
				Validate(optionalCurrency),
			huh.NewInput().
				Title("Current MRR (USD)").
				Value(&spec.CurrentMRR).
				Validate(optionalCurrency),
			huh.NewInput().
				Title("Monthly burn (USD)").
				Value(&spec.MonthlyBurnUSD).
				Validate(optionalCurrency),
			huh.NewInput().
				Title("Runway (months)").
				Value(&spec.RunwayMonths).
				Validate(optionalNumber(0, 120)),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Patent count").
				Value(&spec.PatentCount).
				Validate(optionalNumber(0, 10000)),
			huh.NewInput().
				Title("Tech differentiation score (0-10)").
				Value(&spec.TechScore).
				Validate(optionalNumber(0, 10)),
			huh.NewConfirm().
				Title("Proprietary data moat?").
				Value(&spec.HasDataMoat),
			huh.NewConfirm().
				Title("Network effects present?").
				Value(&spec.NetworkEffects),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("TAM size (USD)").
				Value(&spec.TAMUSD).
				Validate(optionalCurrency),
			huh.NewInput().
				Title("Market growth rate (%)").
				Value(&spec.MarketGrowthPct).
				Validate(optionalNumber(-100, 1000)),
			huh.NewSelect[string]().
				Title("Competition intensity").
				Description("Scored 0-10; pick the closest tier").
				Options(
					huh.NewOption("low", "2"),
					huh.NewOption("medium", "5"),
					huh.NewOption("high", "8"),
				).
				Value(&spec.CompetitionLevel),
			huh.NewInput().
				Title("NPS score (-100 to 100)").
				Value(&spec.NPSScore).
				Validate(optionalNumber(-100, 100)),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Full-time team size").
				Value(&spec.TeamSize).
				Validate(optionalNumber(0, 100000)),
			huh.NewInput().
				Title("Founder count").
				Value(&spec.FoundersCount).
				Validate(optionalNumber(0, 20)),
			huh.NewInput().
				Title("Prior successful exits across founders").
				Value(&spec.PriorExits).
				Validate(optionalNumber(0, 50)),
			huh.NewInput().
				Title("Average domain expertise (years)").
				Value(&spec.DomainExpertise).
				Validate(optionalNumber(0, 60)),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	spec.StartupName = strings.TrimSpace(spec.StartupName)
	return spec, nil
}

// RenderMetricsYAML renders a metrics YAML document from the given spec.
func RenderMetricsYAML(spec *MetricsSpec) (string, error) {
	tmpl, err := template.New("metrics").Parse(metricsTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	normalized := *spec
	normalized.TotalCapitalUSD = normalizeAmount(spec.TotalCapitalUSD)
	normalized.CurrentMRR = normalizeAmount(spec.CurrentMRR)
	normalized.MonthlyBurnUSD = normalizeAmount(spec.MonthlyBurnUSD)
	normalized.TAMUSD = normalizeAmount(spec.TAMUSD)

	var buf strings.Builder
	if err := tmpl.Execute(&buf, normalized); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}

// normalizeAmount strips currency formatting so the rendered YAML carries a
// plain number.
func normalizeAmount(s string) string {
	s = strings.TrimSpace(strings.NewReplacer("$", "", ",", "").Replace(s))
	return s
}

// optionalCurrency accepts an empty answer or a dollar amount with optional
// formatting characters.
func optionalCurrency(s string) error {
	cleaned := normalizeAmount(s)
	if cleaned == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(cleaned, 64); err != nil {
		return fmt.Errorf("enter a dollar amount, e.g. 1500000 or $1,500,000")
	}
	return nil
}

// optionalNumber accepts an empty answer or a number within [min, max].
func optionalNumber(min, max float64) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if v < min || v > max {
			return fmt.Errorf("must be between %v and %v", min, max)
		}
		return nil
	}
}
