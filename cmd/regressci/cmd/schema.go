package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cklewar/regressci/pkg/config"
)

var schemaOutputFile string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON Schema for config.json",
	Long: `Generate a JSON Schema file for a project's config.json.

The schema can be used for IDE autocompletion and validation.

Examples:
  # Output schema to stdout
  regressci schema

  # Write schema to file
  regressci schema -o config.schema.json

  # Use in VS Code with the YAML/JSON extension by adding to config.json:
  # "$schema": "./config.schema.json"`,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().StringVarP(&schemaOutputFile, "output", "o", "", "output file (default: stdout)")
}

func runSchema(_ *cobra.Command, _ []string) error {
	schema := config.GenerateJSONSchema()

	if schemaOutputFile != "" {
		if err := os.WriteFile(schemaOutputFile, []byte(schema), 0o600); err != nil {
			return fmt.Errorf("failed to write schema file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "schema written to %s\n", schemaOutputFile)
	} else {
		fmt.Print(schema)
	}

	return nil
}
