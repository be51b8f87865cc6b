package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/venturelens/venturelens/internal/policy"
	"github.com/venturelens/venturelens/internal/validation"
)

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate policy and metrics files against their schemas",
	}

	cmd.AddCommand(newValidatePolicyCommand())
	cmd.AddCommand(newValidateMetricsCommand())

	return cmd
}

func newValidatePolicyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "policy <policy-file>",
		Short: "Validate a policy YAML file",
		Long: `Validate a policy YAML file against the policy schema, then run the
semantic checks the engine applies at load time (rule multipliers, pillar
names, threshold ranges).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			errs, err := validation.ValidatePolicyFile(args[0])
			if err != nil {
				return err
			}
			if len(errs) > 0 {
				return validationFailure(args[0], errs)
			}

			// Schema-valid files can still carry semantic problems the
			// schema cannot express, such as a boost referencing the same
			// pillar twice.
			if _, err := policy.Load(args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", args[0])
			return nil
		},
	}
}

func newValidateMetricsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics <metrics-file>",
		Short: "Validate a metrics YAML or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			errs, err := validation.ValidateMetricsFile(args[0])
			if err != nil {
				return err
			}
			if len(errs) > 0 {
				return validationFailure(args[0], errs)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", args[0])
			return nil
		},
	}
}

func validationFailure(path string, errs []string) error {
	msg := fmt.Sprintf("%s: %d validation error(s)", path, len(errs))
	for _, e := range errs {
		msg += "\n  " + e
	}
	return fmt.Errorf("%s", msg)
}
