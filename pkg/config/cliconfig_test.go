package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCLIConfig(t *testing.T) {
	cfg := DefaultCLIConfig()
	if cfg.ConfigFile != "config.json" {
		t.Errorf("ConfigFile = %q, want %q", cfg.ConfigFile, "config.json")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadCLIConfig(t *testing.T) {
	dir := createTempDir(t)
	path := filepath.Join(dir, ".regressci.yaml")
	writeTestConfig(t, path, `config_file: project.json
exclude:
  - legacy-*
policy:
  enabled: true
  sources:
    - path: ./policies
  on_failure: warn
`)

	cfg, err := LoadCLIConfig(path)
	if err != nil {
		t.Fatalf("LoadCLIConfig failed: %v", err)
	}
	if cfg.ConfigFile != "project.json" {
		t.Errorf("ConfigFile = %q, want %q", cfg.ConfigFile, "project.json")
	}
	if len(cfg.Exclude) != 1 || cfg.Exclude[0] != "legacy-*" {
		t.Errorf("Exclude = %v, want [legacy-*]", cfg.Exclude)
	}
	if cfg.Policy == nil || !cfg.Policy.Enabled {
		t.Fatal("expected policy to be enabled")
	}
	if cfg.Policy.OnFailure != PolicyActionWarn {
		t.Errorf("OnFailure = %q, want %q", cfg.Policy.OnFailure, PolicyActionWarn)
	}
}

func TestLoadCLIConfigOrDefault_NoFile(t *testing.T) {
	dir := createTempDir(t)
	cfg, err := LoadCLIConfigOrDefault(dir)
	if err != nil {
		t.Fatalf("LoadCLIConfigOrDefault failed: %v", err)
	}
	if cfg.ConfigFile != "config.json" {
		t.Errorf("ConfigFile = %q, want default %q", cfg.ConfigFile, "config.json")
	}
}

func TestLoadCLIConfigOrDefault_FindsFile(t *testing.T) {
	dir := createTempDir(t)
	writeTestConfig(t, filepath.Join(dir, ".regressci.yaml"), "config_file: custom.json\n")

	cfg, err := LoadCLIConfigOrDefault(dir)
	if err != nil {
		t.Fatalf("LoadCLIConfigOrDefault failed: %v", err)
	}
	if cfg.ConfigFile != "custom.json" {
		t.Errorf("ConfigFile = %q, want %q", cfg.ConfigFile, "custom.json")
	}
}

func TestCLIConfig_Save(t *testing.T) {
	dir := createTempDir(t)
	path := filepath.Join(dir, ".regressci.yaml")

	cfg := DefaultCLIConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved config: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("saved config is empty")
	}

	reloaded, err := LoadCLIConfig(path)
	if err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if reloaded.ConfigFile != cfg.ConfigFile {
		t.Errorf("reloaded ConfigFile = %q, want %q", reloaded.ConfigFile, cfg.ConfigFile)
	}
}

func TestCLIConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     CLIConfig
		wantErr bool
	}{
		{
			name: "empty config_file",
			cfg:  CLIConfig{},
			wantErr: true,
		},
		{
			name: "valid, no policy",
			cfg:  CLIConfig{ConfigFile: "config.json"},
		},
		{
			name: "policy disabled, no sources required",
			cfg:  CLIConfig{ConfigFile: "config.json", Policy: &PolicyConfig{Enabled: false}},
		},
		{
			name:    "policy enabled, no sources",
			cfg:     CLIConfig{ConfigFile: "config.json", Policy: &PolicyConfig{Enabled: true}},
			wantErr: true,
		},
		{
			name: "policy enabled with sources",
			cfg: CLIConfig{
				ConfigFile: "config.json",
				Policy: &PolicyConfig{
					Enabled: true,
					Sources: []PolicySource{{Path: "./policies"}},
				},
			},
		},
		{
			name: "invalid on_failure",
			cfg: CLIConfig{
				ConfigFile: "config.json",
				Policy: &PolicyConfig{
					Enabled:   true,
					Sources:   []PolicySource{{Path: "./policies"}},
					OnFailure: "ignore",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPolicySource_Type(t *testing.T) {
	tests := []struct {
		name   string
		source PolicySource
		want   string
	}{
		{"path", PolicySource{Path: "./policies"}, "path"},
		{"git", PolicySource{Git: "https://example.com/policies.git"}, "git"},
		{"oci", PolicySource{OCI: "oci://registry.example.com/policies:v1"}, "oci"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.source.Type(); got != tt.want {
				t.Errorf("Type() = %q, want %q", got, tt.want)
			}
		})
	}
}
