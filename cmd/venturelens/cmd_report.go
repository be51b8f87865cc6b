package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/venturelens/venturelens/internal/report"
)

func newReportCommand() *cobra.Command {
	var (
		modelsDir  string
		policyPath string
		outputPath string
		asHTML     bool
	)

	cmd := &cobra.Command{
		Use:   "report <metrics-file>",
		Short: "Render a prediction report as markdown or HTML",
		Long: `Run a full prediction with recommendations and write a report document.

Reports land in the configured reports directory unless --output names an
explicit path. Use --html for a standalone HTML document instead of markdown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv(modelsDir, policyPath)
			if err != nil {
				return err
			}

			metrics, err := loadMetricsFile(args[0])
			if err != nil {
				return err
			}

			set, res, err := env.eng.Recommend(cmd.Context(), metrics)
			if err != nil {
				return err
			}

			base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			doc := report.Markdown(report.Params{
				Name:            startupName(metrics, base),
				Result:          res,
				Recommendations: set,
				ModelVersion:    env.eng.ModelInfo().Metadata.Version,
				GeneratedAt:     time.Now(),
			})

			ext := ".md"
			if asHTML {
				doc, err = report.HTML(doc)
				if err != nil {
					return err
				}
				ext = ".html"
			}

			path := outputPath
			if path == "" {
				path = filepath.Join(env.cfg.Paths.Reports, base+ext)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("creating reports directory: %w", err)
			}
			if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&modelsDir, "models", "", "Model bundle directory (default from project config)")
	cmd.Flags().StringVar(&policyPath, "policy", "", "Policy file path (default from project config)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Report file path (default under the reports directory)")
	cmd.Flags().BoolVar(&asHTML, "html", false, "Render standalone HTML instead of markdown")

	return cmd
}
