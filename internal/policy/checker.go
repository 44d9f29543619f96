package policy

import (
	"context"
	"fmt"

	"github.com/cklewar/regressci/internal/render"
	"github.com/cklewar/regressci/pkg/config"
)

// Checker runs policy checks against a generated pipeline.
type Checker struct {
	config     *config.PolicyConfig
	policyDirs []string
}

// NewChecker creates a new policy checker
func NewChecker(cfg *config.PolicyConfig, policyDirs []string) *Checker {
	return &Checker{
		config:     cfg,
		policyDirs: policyDirs,
	}
}

// Check evaluates rc against every configured namespace. Unlike the
// per-module plan.json check this package was built for, a generated
// pipeline has a single render context, so Check always produces exactly
// one Result rather than one per module.
func (c *Checker) Check(ctx context.Context, rc *render.Context) (*Result, error) {
	if c.config == nil || !c.config.Enabled {
		return &Result{Module: rc.ProjectModule, Skipped: 1}, nil
	}

	namespaces := c.config.Namespaces
	if len(namespaces) == 0 {
		namespaces = []string{"regression"}
	}

	engine := NewEngine(c.policyDirs, namespaces)
	result, err := engine.EvaluateContext(ctx, rc)
	if err != nil {
		return nil, fmt.Errorf("policy evaluation failed: %w", err)
	}

	result.Module = rc.ProjectModule
	return result, nil
}

// ShouldBlock returns true if the result should block the pipeline
func (c *Checker) ShouldBlock(result *Result) bool {
	if c.config != nil && c.config.OnFailure == config.PolicyActionBlock {
		return result.HasFailures()
	}
	return false
}
