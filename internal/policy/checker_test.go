package policy

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cklewar/regressci/internal/render"
	"github.com/cklewar/regressci/pkg/config"
)

func TestNewChecker(t *testing.T) {
	cfg := &config.PolicyConfig{Enabled: true}
	policyDirs := []string{"/policies"}

	checker := NewChecker(cfg, policyDirs)

	if checker == nil {
		t.Fatal("NewChecker() returned nil")
	}
	if checker.config != cfg {
		t.Error("config not set correctly")
	}
	if len(checker.policyDirs) != 1 {
		t.Errorf("policyDirs = %v, want 1 element", checker.policyDirs)
	}
}

func TestChecker_Check_Disabled(t *testing.T) {
	cfg := &config.PolicyConfig{Enabled: false}
	checker := NewChecker(cfg, []string{})

	result, err := checker.Check(context.Background(), &render.Context{ProjectModule: "demo"})
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	if result.Module != "demo" {
		t.Errorf("Module = %v, want %v", result.Module, "demo")
	}
	if result.Skipped != 1 {
		t.Errorf("Skipped = %v, want %v", result.Skipped, 1)
	}
}

func TestChecker_Check_NoPolicies(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := &config.PolicyConfig{Enabled: true}
	checker := NewChecker(cfg, []string{filepath.Join(tmpDir, "nonexistent")})

	result, err := checker.Check(context.Background(), &render.Context{ProjectModule: "demo"})
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	if result.Module != "demo" {
		t.Errorf("Module = %v, want %v", result.Module, "demo")
	}
	if result.HasFailures() {
		t.Error("expected no failures with no policies loaded")
	}
}

func TestChecker_Check_WithDenyPolicy(t *testing.T) {
	tmpDir := t.TempDir()
	policyDir := filepath.Join(tmpDir, "policies")
	if err := os.MkdirAll(policyDir, 0o755); err != nil {
		t.Fatalf("failed to create policy dir: %v", err)
	}

	policy := `package regression

deny contains msg if {
	input.EutModule == "forbidden"
	msg := "forbidden EUT modules are not allowed"
}`
	if err := os.WriteFile(filepath.Join(policyDir, "eut.rego"), []byte(policy), 0o644); err != nil {
		t.Fatalf("failed to write policy: %v", err)
	}

	cfg := &config.PolicyConfig{Enabled: true}
	checker := NewChecker(cfg, []string{policyDir})

	result, err := checker.Check(context.Background(), &render.Context{ProjectModule: "demo", EutModule: "forbidden"})
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if !result.HasFailures() {
		t.Error("expected a failure for the forbidden EUT module")
	}
}

func TestChecker_ShouldBlock(t *testing.T) {
	tests := []struct {
		name      string
		onFailure config.PolicyAction
		result    *Result
		expected  bool
	}{
		{
			name:      "block on failure with failures",
			onFailure: config.PolicyActionBlock,
			result:    &Result{Failures: []Violation{{Message: "x"}}},
			expected:  true,
		},
		{
			name:      "block on failure without failures",
			onFailure: config.PolicyActionBlock,
			result:    &Result{},
			expected:  false,
		},
		{
			name:      "warn on failure with failures",
			onFailure: config.PolicyActionWarn,
			result:    &Result{Failures: []Violation{{Message: "x"}}},
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.PolicyConfig{OnFailure: tt.onFailure}
			checker := NewChecker(cfg, []string{})

			if got := checker.ShouldBlock(tt.result); got != tt.expected {
				t.Errorf("ShouldBlock() = %v, want %v", got, tt.expected)
			}
		})
	}
}
