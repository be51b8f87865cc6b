package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/venturelens/venturelens/internal/models"
)

func newRecommendCommand() *cobra.Command {
	var (
		modelsDir  string
		policyPath string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "recommend <metrics-file>",
		Short: "Suggest metric improvements for pillars below benchmark",
		Long: `Run a prediction and rank the metrics most worth improving for every
pillar that scored below the benchmark. Pillars at or above the benchmark are
reported with an empty list.`,
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

			switch format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Recommendations models.RecommendationSet `json:"recommendations"`
					Prediction      *models.PredictionResult `json:"prediction"`
				}{set, res})
			case "table":
				printPredictionTable(cmd.OutOrStdout(), startupName(metrics, ""), res)
				if healthy(set) {
					fmt.Fprintln(cmd.OutOrStdout(), "  All pillars are at or above benchmark.")
				} else {
					printRecommendations(cmd.OutOrStdout(), set)
				}
				return nil
			default:
				return fmt.Errorf("invalid format %q: must be json or table", format)
			}
		},
	}

	cmd.Flags().StringVar(&modelsDir, "models", "", "Model bundle directory (default from project config)")
	cmd.Flags().StringVar(&policyPath, "policy", "", "Policy file path (default from project config)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table or json")

	return cmd
}

func healthy(set models.RecommendationSet) bool {
	for _, items := range set {
		if len(items) > 0 {
			return false
		}
	}
	return true
}
