package policy

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cklewar/regressci/internal/render"
)

func TestOPAVersion(t *testing.T) {
	version := OPAVersion()
	if version == "" {
		t.Error("OPAVersion() returned empty string")
	}
}

func TestNewEngine(t *testing.T) {
	policyDirs := []string{"/policies"}
	namespaces := []string{"regression"}

	engine := NewEngine(policyDirs, namespaces)

	if engine == nil {
		t.Fatal("NewEngine() returned nil")
	}
	if len(engine.policyDirs) != 1 {
		t.Errorf("policyDirs = %v, want 1 element", engine.policyDirs)
	}
	if len(engine.namespaces) != 1 {
		t.Errorf("namespaces = %v, want 1 element", engine.namespaces)
	}
}

func TestEngine_Evaluate_NoPolicies(t *testing.T) {
	tmpDir := t.TempDir()

	engine := NewEngine([]string{filepath.Join(tmpDir, "nonexistent")}, []string{"regression"})

	result, err := engine.Evaluate(context.Background(), map[string]any{"eut_module": "demo"})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if result == nil {
		t.Fatal("Evaluate() returned nil result")
	}
	if len(result.Failures) != 0 {
		t.Errorf("expected no failures, got %d", len(result.Failures))
	}
}

func TestEngine_Evaluate_WithPolicy(t *testing.T) {
	tmpDir := t.TempDir()

	policyDir := filepath.Join(tmpDir, "policies")
	if err := os.MkdirAll(policyDir, 0o755); err != nil {
		t.Fatalf("failed to create policy dir: %v", err)
	}

	policy := `package regression

deny contains msg if {
	input.eut_module == "forbidden"
	msg := "forbidden EUT modules are not allowed"
}`
	if err := os.WriteFile(filepath.Join(policyDir, "eut.rego"), []byte(policy), 0o644); err != nil {
		t.Fatalf("failed to write policy: %v", err)
	}

	engine := NewEngine([]string{policyDir}, []string{"regression"})

	result, err := engine.Evaluate(context.Background(), map[string]any{"eut_module": "forbidden"})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if len(result.Failures) != 1 {
		t.Errorf("expected 1 failure, got %d", len(result.Failures))
	}
	if len(result.Failures) > 0 && result.Failures[0].Message != "forbidden EUT modules are not allowed" {
		t.Errorf("unexpected failure message: %s", result.Failures[0].Message)
	}
}

func TestEngine_Evaluate_WithWarn(t *testing.T) {
	tmpDir := t.TempDir()

	policyDir := filepath.Join(tmpDir, "policies")
	if err := os.MkdirAll(policyDir, 0o755); err != nil {
		t.Fatalf("failed to create policy dir: %v", err)
	}

	policy := `package regression

warn contains msg if {
	count(input.rtes) == 0
	msg := "pipeline declares no RTEs"
}`
	if err := os.WriteFile(filepath.Join(policyDir, "rtes.rego"), []byte(policy), 0o644); err != nil {
		t.Fatalf("failed to write policy: %v", err)
	}

	engine := NewEngine([]string{policyDir}, []string{"regression"})

	result, err := engine.Evaluate(context.Background(), map[string]any{"rtes": []any{}})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if len(result.Warnings) != 1 {
		t.Errorf("expected 1 warning, got %d", len(result.Warnings))
	}
	if len(result.Warnings) > 0 && result.Warnings[0].Message != "pipeline declares no RTEs" {
		t.Errorf("unexpected warning message: %s", result.Warnings[0].Message)
	}
}

func TestEngine_EvaluateContext(t *testing.T) {
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

	engine := NewEngine([]string{policyDir}, []string{"regression"})
	rc := &render.Context{EutModule: "forbidden"}

	result, err := engine.EvaluateContext(context.Background(), rc)
	if err != nil {
		t.Fatalf("EvaluateContext() error = %v", err)
	}
	if len(result.Failures) != 1 {
		t.Errorf("expected 1 failure, got %d", len(result.Failures))
	}
}

func TestEngine_collectRegoFiles(t *testing.T) {
	tmpDir := t.TempDir()

	policyDir := filepath.Join(tmpDir, "policies")
	if err := os.MkdirAll(policyDir, 0o755); err != nil {
		t.Fatalf("failed to create policy dir: %v", err)
	}

	files := []string{"policy1.rego", "policy2.rego", "policy_test.rego"}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(policyDir, f), []byte("package test"), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", f, err)
		}
	}

	if err := os.WriteFile(filepath.Join(policyDir, "readme.md"), []byte("# Readme"), 0o644); err != nil {
		t.Fatalf("failed to write readme: %v", err)
	}

	engine := NewEngine([]string{policyDir}, []string{"test"})
	regoFiles, err := engine.collectRegoFiles()
	if err != nil {
		t.Fatalf("collectRegoFiles() error = %v", err)
	}

	if len(regoFiles) != 2 {
		t.Errorf("expected 2 rego files, got %d: %v", len(regoFiles), regoFiles)
	}
}
