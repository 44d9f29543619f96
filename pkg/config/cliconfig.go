package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v4"
)

// CLISchemaURL is the URL to the JSON Schema for .regressci.yaml.
const CLISchemaURL = "https://github.com/cklewar/regressci/raw/main/.regressci.schema.json"

// CLIConfig is the ambient tool configuration (.regressci.yaml), distinct
// from the project config.json that Load parses into a Regression value.
// It governs CLI-level concerns - which project config file to read, which
// RTE modules a generate run keeps, and whether policy checks run -
// never the pipeline content itself.
type CLIConfig struct {
	// ConfigFile is the project config.json file name, relative to the
	// working directory.
	ConfigFile string `yaml:"config_file" json:"config_file" jsonschema:"description=project config.json file name relative to the working directory,default=config.json"`

	// Exclude lists glob patterns matched against RTE module names; every
	// generate run drops the RTE modules that match one of them.
	Exclude []string `yaml:"exclude,omitempty" json:"exclude,omitempty" jsonschema:"description=glob patterns for RTE module names to exclude from generation"`

	// Include, when non-empty, restricts every generate run to RTE module
	// names matching at least one of these glob patterns.
	Include []string `yaml:"include,omitempty" json:"include,omitempty" jsonschema:"description=glob patterns for RTE module names to keep in generation"`

	// Policy configures OPA policy checking of the generated pipeline.
	Policy *PolicyConfig `yaml:"policy,omitempty" json:"policy,omitempty" jsonschema:"description=OPA policy check configuration"`
}

// DefaultCLIConfig returns a CLIConfig with sensible defaults.
func DefaultCLIConfig() *CLIConfig {
	return &CLIConfig{
		ConfigFile: "config.json",
	}
}

// LoadCLIConfig reads a .regressci.yaml file from path.
func LoadCLIConfig(path string) (*CLIConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultCLIConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// LoadCLIConfigOrDefault loads .regressci.yaml/.yml from dir, or returns
// DefaultCLIConfig if none is present.
func LoadCLIConfigOrDefault(dir string) (*CLIConfig, error) {
	candidates := []string{
		filepath.Join(dir, ".regressci.yaml"),
		filepath.Join(dir, ".regressci.yml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return LoadCLIConfig(path)
		}
	}

	return DefaultCLIConfig(), nil
}

// Save writes c to path as YAML with a yaml-language-server schema header.
func (c *CLIConfig) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := fmt.Sprintf("# yaml-language-server: $schema=%s\n", CLISchemaURL)
	content := append([]byte(header), data...)

	if err := os.WriteFile(path, content, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks c for internal consistency.
func (c *CLIConfig) Validate() error {
	if c.ConfigFile == "" {
		return fmt.Errorf("config_file is required")
	}
	if c.Policy != nil {
		return c.Policy.Validate()
	}
	return nil
}

// PolicyAction names what happens when a policy check reports failures.
type PolicyAction string

const (
	// PolicyActionBlock fails the check command when any failure exists.
	PolicyActionBlock PolicyAction = "block"
	// PolicyActionWarn reports failures without a non-zero exit.
	PolicyActionWarn PolicyAction = "warn"
)

// PolicySource names one place policy Rego sources are pulled from: a local
// path, a git repository, or an OCI registry reference. Exactly one of
// Path/Git/OCI should be set.
type PolicySource struct {
	Path string `yaml:"path,omitempty" json:"path,omitempty" jsonschema:"description=local directory containing .rego files"`
	Git  string `yaml:"git,omitempty" json:"git,omitempty" jsonschema:"description=git repository URL to clone"`
	Ref  string `yaml:"ref,omitempty" json:"ref,omitempty" jsonschema:"description=git branch\\, tag\\, or commit SHA"`
	OCI  string `yaml:"oci,omitempty" json:"oci,omitempty" jsonschema:"description=OCI reference\\, e.g. oci://registry.example.com/policies:v1"`
}

// Type returns which kind of source cfg describes.
func (s PolicySource) Type() string {
	switch {
	case s.Git != "":
		return "git"
	case s.OCI != "":
		return "oci"
	default:
		return "path"
	}
}

// PolicyConfig configures the `regressci policy` command: where Rego
// sources live, which namespaces to evaluate, and what to do on failure.
type PolicyConfig struct {
	Enabled    bool           `yaml:"enabled" json:"enabled" jsonschema:"description=enable policy checks,default=false"`
	CacheDir   string         `yaml:"cache_dir,omitempty" json:"cache_dir,omitempty" jsonschema:"description=directory policies are pulled into,default=.regressci/policies"`
	Sources    []PolicySource `yaml:"sources,omitempty" json:"sources,omitempty" jsonschema:"description=policy sources to pull from"`
	Namespaces []string       `yaml:"namespaces,omitempty" json:"namespaces,omitempty" jsonschema:"description=Rego package namespaces to evaluate,default=regression"`
	OnFailure  PolicyAction   `yaml:"on_failure,omitempty" json:"on_failure,omitempty" jsonschema:"description=action to take on policy failures,enum=block,enum=warn,default=block"`
}

// Validate checks p for internal consistency.
func (p *PolicyConfig) Validate() error {
	if !p.Enabled {
		return nil
	}
	if len(p.Sources) == 0 {
		return fmt.Errorf("policy.sources must have at least one entry when policy is enabled")
	}
	if p.OnFailure != "" && p.OnFailure != PolicyActionBlock && p.OnFailure != PolicyActionWarn {
		return fmt.Errorf("policy.on_failure must be 'block' or 'warn'")
	}
	return nil
}
