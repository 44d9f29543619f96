package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cklewar/regressci/internal/changed"
	"github.com/cklewar/regressci/internal/emit"
	"github.com/cklewar/regressci/internal/filter"
	"github.com/cklewar/regressci/internal/render"
)

var (
	outputFile  string
	changedOnly bool
	baseRef     string
	excludes    []string
	includes    []string
	dryRun      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a GitLab CI pipeline",
	Long: `Generate builds a regression test project's graph of Environments
Under Test, RTEs, connections, tests and verifications, and renders the
GitLab CI pipeline that runs them.

Examples:
  # Generate the full pipeline
  regressci generate -o .gitlab-ci.yml

  # Only include RTE modules changed since main
  regressci generate --changed-only --base-ref main

  # Exclude or include RTE modules by glob
  regressci generate --exclude "legacy-*"`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	generateCmd.Flags().BoolVar(&changedOnly, "changed-only", false, "only include RTE modules changed since base-ref")
	generateCmd.Flags().StringVar(&baseRef, "base-ref", "", "base git ref for change detection (default: auto-detect)")
	generateCmd.Flags().StringArrayVarP(&excludes, "exclude", "x", nil, "glob patterns to exclude RTE modules")
	generateCmd.Flags().StringArrayVarP(&includes, "include", "i", nil, "glob patterns to include RTE modules")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be generated without writing output")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	projectCfg, result, err := loadProject()
	if err != nil {
		return err
	}
	ctx := render.Build(result, projectCfg)

	if changedOnly {
		rtes, err := filterChangedRtes(ctx.Rtes, projectCfg.Rte.Path)
		if err != nil {
			return fmt.Errorf("failed to detect changed modules: %w", err)
		}
		ctx.Rtes = rtes
	}

	ctx.Rtes = applyGlobFilters(ctx.Rtes)

	if dryRun {
		fmt.Printf("Dry run:\n")
		fmt.Printf("  RTEs: %d\n", len(ctx.Rtes))
		fmt.Printf("  Features: %d\n", len(ctx.Features))
		for _, rte := range ctx.Rtes {
			fmt.Printf("  - %s (%d connections)\n", rte.Module, len(rte.Connections))
		}
		return nil
	}

	body, err := emit.Pipeline(projectCfg.Project.Templates, ctx)
	if err != nil {
		return fmt.Errorf("failed to render pipeline: %w", err)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, body, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "pipeline written to %s\n", outputFile)
		return nil
	}

	fmt.Print(string(body))
	return nil
}

// filterChangedRtes narrows rtes down to the RTE modules touched between
// baseRef and HEAD, detected under rtePathRoot.
func filterChangedRtes(rtes []render.RteContext, rtePathRoot string) ([]render.RteContext, error) {
	det, err := changed.Open(workDir)
	if err != nil {
		return nil, err
	}

	ref := baseRef
	if ref == "" {
		ref = det.DefaultBaseRef()
	}

	files, err := det.ChangedFiles(ref)
	if err != nil {
		return nil, err
	}

	changedModules := map[string]bool{}
	for _, m := range changed.ModulesUnder(files, rtePathRoot) {
		changedModules[m] = true
	}

	var filtered []render.RteContext
	for _, rte := range rtes {
		if changedModules[rte.Module] {
			filtered = append(filtered, rte)
		}
	}
	return filtered, nil
}

// applyGlobFilters combines the tool config's exclude/include globs with
// the command line's, narrowing rtes down to RTE modules that pass both.
func applyGlobFilters(rtes []render.RteContext) []render.RteContext {
	allExcludes := append(append([]string{}, cfg.Exclude...), excludes...)
	allIncludes := append(append([]string{}, cfg.Include...), includes...)

	if len(allExcludes) == 0 && len(allIncludes) == 0 {
		return rtes
	}

	globFilter := filter.NewGlobFilter(allExcludes, allIncludes)
	var filtered []render.RteContext
	for _, rte := range rtes {
		if globFilter.Match(rte.Module) {
			filtered = append(filtered, rte)
		}
	}
	return filtered
}
