package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cklewar/regressci/pkg/config"
	"github.com/cklewar/regressci/pkg/log"
)

var (
	// Global flags
	cfgFile  string
	workDir  string
	logLevel string

	// Version info
	versionInfo struct {
		Version string
		Commit  string
		Date    string
	}

	// Global ambient tool config, loaded from .regressci.yaml
	cfg *config.CLIConfig
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "regressci",
	Short: "Generate CI pipelines for regression test projects",
	Long: `regressci reads a regression test project's configuration, builds its
dependency graph of Environments Under Test, RTEs, connections, tests and
verifications, and generates a CI pipeline (GitLab CI) that wires every
job in the order the graph requires.

Features:
  - Per-module config.json loading for every entity kind
  - Deterministic job naming and artifact path derivation
  - Changed-module detection for incremental pipelines
  - Optional OPA policy checks against the generated pipeline`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		log.Init()

		if verbose, err := cmd.Flags().GetBool("verbose"); err == nil && verbose {
			logLevel = "debug"
		}

		if logLevel != "" {
			if err := log.SetLevelFromString(logLevel); err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
		}

		if cmd.Name() != "version" && versionInfo.Version != "" {
			log.WithField("version", versionInfo.Version).Debug("regressci")
		}

		// Skip tool config loading for commands that don't need a project
		if cmd.Name() == "version" || cmd.Name() == "schema" || cmd.Name() == "completion" || cmd.Name() == "init" {
			return nil
		}

		log.Debug("loading tool configuration")
		var err error
		if cfgFile != "" {
			log.WithField("file", cfgFile).Debug("loading config from file")
			cfg, err = config.LoadCLIConfig(cfgFile)
		} else {
			log.WithField("dir", workDir).Debug("loading config from directory")
			cfg, err = config.LoadCLIConfigOrDefault(workDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		log.Debug("validating tool configuration")
		return cfg.Validate()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets version information
func SetVersion(version, commit, date string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.Date = date
}

func init() {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "tool config file (default: .regressci.yaml)")
	rootCmd.PersistentFlags().StringVarP(&workDir, "dir", "d", cwd, "working directory")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output (shorthand for --log-level=debug)")
}
