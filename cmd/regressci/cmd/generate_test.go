package cmd

import (
	"testing"

	"github.com/cklewar/regressci/internal/render"
	"github.com/cklewar/regressci/pkg/config"
)

func rtesByModule(names ...string) []render.RteContext {
	var rtes []render.RteContext
	for _, n := range names {
		rtes = append(rtes, render.RteContext{Module: n})
	}
	return rtes
}

func moduleNames(rtes []render.RteContext) []string {
	var names []string
	for _, r := range rtes {
		names = append(names, r.Module)
	}
	return names
}

func TestApplyGlobFilters_NoFilters(t *testing.T) {
	cfg = config.DefaultCLIConfig()
	excludes, includes = nil, nil

	rtes := rtesByModule("alpha", "beta")
	got := applyGlobFilters(rtes)
	if len(got) != 2 {
		t.Errorf("expected 2 rtes unfiltered, got %d", len(got))
	}
}

func TestApplyGlobFilters_CommandLineExclude(t *testing.T) {
	cfg = config.DefaultCLIConfig()
	excludes, includes = []string{"legacy-*"}, nil

	rtes := rtesByModule("legacy-vpn", "current-vpn")
	got := moduleNames(applyGlobFilters(rtes))

	if len(got) != 1 || got[0] != "current-vpn" {
		t.Errorf("applyGlobFilters() = %v, want [current-vpn]", got)
	}
}

func TestApplyGlobFilters_ConfigAndFlagCombine(t *testing.T) {
	cfg = &config.CLIConfig{ConfigFile: "config.json", Exclude: []string{"legacy-*"}}
	excludes, includes = []string{"beta"}, nil

	rtes := rtesByModule("legacy-vpn", "alpha", "beta")
	got := moduleNames(applyGlobFilters(rtes))

	if len(got) != 1 || got[0] != "alpha" {
		t.Errorf("applyGlobFilters() = %v, want [alpha]", got)
	}
}

func TestApplyGlobFilters_Include(t *testing.T) {
	cfg = config.DefaultCLIConfig()
	excludes, includes = nil, []string{"region-*"}

	rtes := rtesByModule("region-eu", "other")
	got := moduleNames(applyGlobFilters(rtes))

	if len(got) != 1 || got[0] != "region-eu" {
		t.Errorf("applyGlobFilters() = %v, want [region-eu]", got)
	}
}
