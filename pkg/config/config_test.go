package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cklewar/regressci/pkg/apperr"
)

func writeTestConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func createTempDir(t *testing.T) string {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "config-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })
	return tmpDir
}

const minimalConfig = `{
  "project": {"name": "demo", "templates": "templates", "root_path": "."},
  "eut": {"module": "mini", "path": "eut"},
  "tests": {"path": "tests", "artifacts_dir": "artifacts", "artifacts_file": "data.json"}
}`

func TestLoad_Minimal(t *testing.T) {
	dir := createTempDir(t)
	writeTestConfig(t, filepath.Join(dir, "config.json"), minimalConfig)

	cfg, err := Load(dir, "config.json")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Project.Name != "demo" {
		t.Errorf("expected project name 'demo', got %q", cfg.Project.Name)
	}
	if cfg.Eut.Module != "mini" {
		t.Errorf("expected eut module 'mini', got %q", cfg.Eut.Module)
	}
}

func TestLoad_SelfTemplateExpansion(t *testing.T) {
	dir := createTempDir(t)
	content := `{
  "project": {"name": "demo", "templates": "templates", "root_path": "."},
  "eut": {"module": "{{.Project.Name}}-eut", "path": "eut"},
  "tests": {"path": "tests", "artifacts_dir": "artifacts", "artifacts_file": "data.json"}
}`
	writeTestConfig(t, filepath.Join(dir, "config.json"), content)

	cfg, err := Load(dir, "config.json")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Eut.Module != "demo-eut" {
		t.Errorf("expected self-templated module 'demo-eut', got %q", cfg.Eut.Module)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	dir := createTempDir(t)
	_, err := Load(dir, "does-not-exist.json")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	var appErr *apperr.Error
	if !asErr(err, &appErr) {
		t.Fatalf("expected *apperr.Error, got %T", err)
	}
	if appErr.Kind != apperr.ConfigRead {
		t.Errorf("expected ConfigRead, got %s", appErr.Kind)
	}
}

func TestLoad_BadJSON(t *testing.T) {
	dir := createTempDir(t)
	writeTestConfig(t, filepath.Join(dir, "config.json"), `{not json`)
	_, err := Load(dir, "config.json")
	if err == nil {
		t.Fatal("expected parse error")
	}
	var appErr *apperr.Error
	if !asErr(err, &appErr) {
		t.Fatalf("expected *apperr.Error, got %T", err)
	}
	if appErr.Kind != apperr.ConfigParse {
		t.Errorf("expected ConfigParse, got %s", appErr.Kind)
	}
}

func asErr(err error, target **apperr.Error) bool {
	e, ok := err.(*apperr.Error)
	if !ok {
		return false
	}
	*target = e
	return true
}
