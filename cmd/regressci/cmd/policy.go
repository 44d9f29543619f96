package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cklewar/regressci/internal/policy"
	"github.com/cklewar/regressci/pkg/log"
)

var (
	policyOutput string
)

var policyPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Pull policies from configured sources",
	Long: `Pull policies from configured sources (local path, git, or OCI).

Policies are downloaded to the cache directory (default: .regressci/policies).
'regressci policy check' pulls the same sources itself before evaluating.

Example:
  regressci policy pull
  regressci policy pull --output ./my-policies`,
	RunE: runPolicyPull,
}

var policyCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a generated pipeline against policies",
	Long: `Check the render context a generated pipeline is built from against
OPA/Rego policies.

Policies are pulled from the configured sources before the check runs.

Example:
  regressci policy check
  regressci policy check --output json`,
	RunE: runPolicyCheck,
}

func init() {
	policyCmd := &cobra.Command{
		Use:   "policy",
		Short: "Policy management commands",
		Long:  "Commands for managing and running OPA policy checks against a generated pipeline.",
	}

	policyCmd.AddCommand(policyPullCmd)
	policyCmd.AddCommand(policyCheckCmd)

	rootCmd.AddCommand(policyCmd)

	policyPullCmd.Flags().StringVarP(&policyOutput, "output", "o", "", "output directory for policies (overrides config)")
	policyCheckCmd.Flags().StringVarP(&policyOutput, "output", "o", "", "output format: text, json (default: text)")
}

func runPolicyPull(_ *cobra.Command, _ []string) error {
	if cfg.Policy == nil || !cfg.Policy.Enabled {
		return fmt.Errorf("policy checks are not enabled in configuration")
	}

	log.Info("pulling policies from configured sources")

	if policyOutput != "" {
		cfg.Policy.CacheDir = policyOutput
	}

	puller, err := policy.NewPuller(cfg.Policy, workDir)
	if err != nil {
		return fmt.Errorf("failed to create puller: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	dirs, err := puller.Pull(ctx)
	if err != nil {
		return fmt.Errorf("failed to pull policies: %w", err)
	}

	log.WithField("count", len(dirs)).Info("policy sources pulled")
	for _, dir := range dirs {
		log.WithField("path", dir).Debug("policy directory")
	}

	log.WithField("cache", puller.CacheDir()).Info("policies cached")
	return nil
}

func runPolicyCheck(_ *cobra.Command, _ []string) error {
	if cfg.Policy == nil || !cfg.Policy.Enabled {
		return fmt.Errorf("policy checks are not enabled in configuration")
	}

	log.Info("running policy checks")

	rc, err := buildRenderContext()
	if err != nil {
		return err
	}

	puller, err := policy.NewPuller(cfg.Policy, workDir)
	if err != nil {
		return fmt.Errorf("failed to create puller: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	policyDirs, err := puller.Pull(ctx)
	if err != nil {
		return fmt.Errorf("failed to pull policies: %w", err)
	}

	checker := policy.NewChecker(cfg.Policy, policyDirs)

	result, err := checker.Check(ctx, rc)
	if err != nil {
		return fmt.Errorf("policy check failed: %w", err)
	}

	if err := savePolicyResult(result); err != nil {
		log.WithError(err).Warn("failed to save policy result")
	}

	if policyOutput == "json" {
		return outputJSON(result)
	}

	return outputText(result, checker.ShouldBlock(result))
}

// savePolicyResult saves the policy result to a JSON file for later
// inspection, e.g. by a CI reporting step.
func savePolicyResult(result *policy.Result) error {
	dir := ".regressci"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	path := dir + "/policy-result.json"
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func outputJSON(result *policy.Result) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func outputText(result *policy.Result, shouldBlock bool) error {
	log.WithField("module", result.Module).
		WithField("status", result.Status()).
		WithField("successes", result.Successes).
		WithField("skipped", result.Skipped).
		Info("policy check result")

	if result.HasFailures() || result.HasWarnings() {
		log.IncreasePadding()
		for _, f := range result.Failures {
			log.WithField("namespace", f.Namespace).
				WithField("message", f.Message).
				Error("failure")
		}
		for _, w := range result.Warnings {
			log.WithField("namespace", w.Namespace).
				WithField("message", w.Message).
				Warn("warning")
		}
		log.DecreasePadding()
	}

	if shouldBlock {
		log.Error("policy check FAILED")
		return fmt.Errorf("policy check failed with %d failures", len(result.Failures))
	}

	if result.HasWarnings() {
		log.Warn("policy check passed with warnings")
	} else {
		log.Info("policy check PASSED")
	}

	return nil
}
