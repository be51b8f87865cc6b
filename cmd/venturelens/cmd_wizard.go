package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/venturelens/venturelens/internal/validation"
	"github.com/venturelens/venturelens/internal/wizard"
)

func newWizardCommand() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "wizard [name]",
		Short: "Interactively build a metrics file",
		Long: `Walk through the startup metrics pillar by pillar and write the answers
as a YAML metrics file ready for predict. Numeric answers may be left blank;
absent metrics fall back to the classifiers' neutral defaults.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initialName := ""
			if len(args) == 1 {
				initialName = args[0]
			}

			spec, err := wizard.RunMetricsWizard(cmd.InOrStdin(), cmd.OutOrStdout(), initialName)
			if err != nil {
				return err
			}

			doc, err := wizard.RenderMetricsYAML(spec)
			if err != nil {
				return err
			}

			// The form constrains each answer, so failures here point at a
			// schema drift worth surfacing rather than a user mistake.
			if errs := validation.ValidateMetricsBytes([]byte(doc)); len(errs) > 0 {
				return fmt.Errorf("generated metrics failed validation:\n  %s", strings.Join(errs, "\n  "))
			}

			path := outputPath
			if path == "" {
				path = strings.ToLower(strings.ReplaceAll(spec.StartupName, " ", "-")) + ".yaml"
			}
			if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("writing metrics file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Metrics file path (default <name>.yaml)")

	return cmd
}
