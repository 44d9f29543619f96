package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a project configuration",
	Long: `Validate loads a project's config.json and every per-module
config.json it references, runs the full construction pass, and reports
any error: an unresolved reference, a schema violation, or a malformed
provider selection.

Unlike a Terraform module graph, this graph is built top-down in the fixed
order config.json names - there is no cycle to detect, only whether every
module the project declares actually resolves.

Example:
  regressci validate`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	_, result, err := loadProject()
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Println("project configuration is valid")
	fmt.Printf("  sites:          %d\n", len(result.Sites))
	fmt.Printf("  features:       %d\n", len(result.Features))
	fmt.Printf("  rtes:           %d\n", len(result.Rtes))
	fmt.Printf("  tests:          %d\n", len(result.Tests))
	fmt.Printf("  verifications:  %d\n", len(result.Verifications))
	fmt.Printf("  collectors:     %d\n", len(result.Collectors))
	fmt.Printf("  applications:   %d\n", len(result.Applications))
	fmt.Printf("  reports:        %d\n", len(result.Reports))

	return nil
}
