package cmd

import (
	"fmt"

	"github.com/cklewar/regressci/internal/moduleconfig"
	"github.com/cklewar/regressci/internal/objects"
	"github.com/cklewar/regressci/internal/render"
	"github.com/cklewar/regressci/pkg/config"
)

// loadProject reads the project config.json named by cfg.ConfigFile
// (relative to workDir) and runs the construction pass over it, returning
// the populated graph the render-context and policy commands need.
func loadProject() (*config.Regression, *objects.Result, error) {
	projectCfg, err := config.Load(workDir, cfg.ConfigFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load project config: %w", err)
	}

	loader := moduleconfig.New(workDir, projectCfg)
	result, err := objects.Build(loader, projectCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build graph: %w", err)
	}

	return projectCfg, result, nil
}

// buildRenderContext runs the full construction + render pass.
func buildRenderContext() (*render.Context, error) {
	projectCfg, result, err := loadProject()
	if err != nil {
		return nil, err
	}
	return render.Build(result, projectCfg), nil
}
