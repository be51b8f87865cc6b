package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCommand() *cobra.Command {
	var (
		modelsDir  string
		policyPath string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show loaded model bundle and policy metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv(modelsDir, policyPath)
			if err != nil {
				return err
			}

			info := env.eng.ModelInfo()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}

			out := cmd.OutOrStdout()
			md := info.Metadata
			fmt.Fprintf(out, "Model version:  %s\n", md.Version)
			fmt.Fprintf(out, "Policy version: %s\n", info.PolicyVersion)
			if md.DatasetSize > 0 {
				fmt.Fprintf(out, "Training set:   %d startups (%.1f%% success rate)\n",
					md.DatasetSize, md.SuccessRate*100)
			}
			fmt.Fprintf(out, "Thresholds:     default %.3f, precision %s, recall %s\n",
				md.Thresholds.Default,
				formatOptional(md.Thresholds.PrecisionOptimized),
				formatOptional(md.Thresholds.RecallOptimized))
			if md.MetaMetrics.AUC != nil {
				fmt.Fprintf(out, "Meta model:     AUC %.3f, accuracy %s, precision %s, recall %s\n",
					*md.MetaMetrics.AUC,
					formatOptional(md.MetaMetrics.Accuracy),
					formatOptional(md.MetaMetrics.Precision),
					formatOptional(md.MetaMetrics.Recall))
			}
			if info.Degraded {
				fmt.Fprintln(out, "Status:         DEGRADED (heuristic fallbacks active)")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&modelsDir, "models", "", "Model bundle directory (default from project config)")
	cmd.Flags().StringVar(&policyPath, "policy", "", "Policy file path (default from project config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit machine-readable JSON")

	return cmd
}

func formatOptional(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.3f", *v)
}
