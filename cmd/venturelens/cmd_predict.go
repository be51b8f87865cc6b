package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/venturelens/venturelens/internal/models"
)

func newPredictCommand() *cobra.Command {
	var (
		modelsDir     string
		policyPath    string
		strict        bool
		thresholdMode string
		threshold     float64
		format        string
		outputPath    string
	)

	cmd := &cobra.Command{
		Use:   "predict <metrics-file>",
		Short: "Predict startup success from a metrics file",
		Long: `Predict startup success from a YAML or JSON metrics file.

The metrics are validated against the input schema, scored by the four pillar
classifiers, combined by the meta model, and passed through the decision
policy. The exit code reflects the outcome: 0 for pass, 1 for fail, 2 for
configuration or runtime errors.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv(modelsDir, policyPath)
			if err != nil {
				return err
			}

			opts, err := predictOptions(env.cfg, strict, cmd.Flags().Changed("strict"),
				thresholdMode, threshold, cmd.Flags().Changed("threshold"))
			if err != nil {
				return err
			}

			metrics, err := loadMetricsFile(args[0])
			if err != nil {
				return err
			}

			res, err := env.eng.Predict(cmd.Context(), metrics, opts)
			if err != nil {
				return err
			}

			if outputPath != "" {
				if err := writeResultJSON(outputPath, res); err != nil {
					return err
				}
			}

			switch format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(res); err != nil {
					return err
				}
			case "table":
				name := startupName(metrics, strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0])))
				printPredictionTable(cmd.OutOrStdout(), name, res)
			default:
				return fmt.Errorf("invalid format %q: must be json or table", format)
			}

			if res.Label == models.LabelFail {
				return &PredictionFailError{Message: fmt.Sprintf("prediction: fail (final score %.3f, threshold %.3f)", res.FinalScore, res.Threshold)}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&modelsDir, "models", "", "Model bundle directory (default from project config)")
	cmd.Flags().StringVar(&policyPath, "policy", "", "Policy file path (default from project config)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Enable strict per-pillar gating")
	cmd.Flags().StringVar(&thresholdMode, "threshold-mode", "", "Threshold selection: default, precision, or recall")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "Explicit decision threshold in (0, 1), overriding trained thresholds")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table or json")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Also write the full result JSON to this path")

	return cmd
}

func writeResultJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}
