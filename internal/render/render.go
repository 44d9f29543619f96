// Package render implements component I: walking the fully-built graph
// (read-only, after the construction pass) into the flat, template-ready
// contexts the emitters consume. Grounded on original_source/src/lib.rs's
// Regression::build_context, which performs the same read-only walk after
// Regression::init finishes - the split between construction and context
// assembly carries over unchanged.
package render

import (
	"fmt"
	"strings"

	"github.com/cklewar/regressci/internal/objects"
	"github.com/cklewar/regressci/pkg/config"
)

// TestContext is one test job's render-ready shape.
type TestContext struct {
	JobName       string
	Module        string
	Name          string
	Parallel      bool
	ArtifactsPath string
	Refs          []string
	Verifications []string
	Tags          []string
	Image         string
}

// VerificationContext is one verification job's render-ready shape.
type VerificationContext struct {
	Module string
	Name   string
	Refs   []string
}

// ConnectionContext groups the tests wired to one connection.
type ConnectionContext struct {
	Name           string
	SourceSite     string
	SourceProvider string
	Tests          []TestContext
}

// RteContext is one RTE's render-ready shape: its identity, its active
// provider, and the connections/tests it wires.
type RteContext struct {
	Module      string
	Name        string
	Type        string
	Provider    string
	Connections []ConnectionContext
	Tags        []string
	Image       string
}

// FeatureContext is one feature job's render-ready shape.
type FeatureContext struct {
	JobName string
	Module  string
	Name    string
	Sites   []string
}

// StageContext names one deploy/destroy stage, in order.
type StageContext struct {
	Name string
}

// Context is the top-level render context a pipeline template consumes.
type Context struct {
	ProjectName   string
	ProjectModule string
	EutModule     string
	DeployStages  []StageContext
	DestroyStages []StageContext
	Rtes          []RteContext
	Features      []FeatureContext
	Tags          []string
	Image         string
}

// Build walks result into a flat Context. It assumes result was produced by
// objects.Build and therefore already satisfies every invariant the
// construction pass enforces - this pass only reshapes data, it never
// revalidates it.
func Build(result *objects.Result, cfg *config.Regression) *Context {
	ctx := &Context{
		ProjectName:   projectString(result, "name"),
		ProjectModule: projectString(result, "module"),
		EutModule:     result.Eut.ModuleCfg.Name,
		Tags:          cfg.Ci.Tags,
		Image:         cfg.Ci.Image,
	}

	for _, name := range cfg.Ci.Stages.Deploy {
		ctx.DeployStages = append(ctx.DeployStages, StageContext{Name: name})
	}
	for _, name := range cfg.Ci.Stages.Destroy {
		ctx.DestroyStages = append(ctx.DestroyStages, StageContext{Name: name})
	}

	for _, f := range result.Features {
		ctx.Features = append(ctx.Features, FeatureContext{
			JobName: jobName(result.Eut.ModuleCfg.Name, "feature", f.ModuleCfg.Name),
			Module:  f.ModuleCfg.Module,
			Name:    f.ModuleCfg.Name,
			Sites:   siteNames(f),
		})
	}

	testsByRte := map[string][]*objects.Test{}
	for _, t := range result.Tests {
		rteModule, _ := findOwningRte(result, t)
		testsByRte[rteModule] = append(testsByRte[rteModule], t)
	}

	for _, rte := range result.Rtes {
		rc := RteContext{
			Module:   rte.ModuleCfg.Module,
			Name:     rte.ModuleCfg.Name,
			Type:     rte.ModuleCfg.Type,
			Provider: rte.ModuleCfg.Provider,
			Tags:     rte.ModuleCfg.Ci.Tags,
			Image:    rte.ModuleCfg.Ci.Image,
		}
		for _, conn := range rte.ModuleCfg.Connections {
			cc := ConnectionContext{Name: conn.Name, SourceSite: conn.Source, SourceProvider: rte.ModuleCfg.Provider}
			for _, testModule := range conn.Tests {
				for _, t := range result.Tests {
					if t.ModuleCfg.Module != testModule {
						continue
					}
					owner, ok := findOwningRte(result, t)
					if ok && owner != rte.ModuleCfg.Module {
						continue
					}
					cc.Tests = append(cc.Tests, TestContext{
						JobName:       t.JobName(ctx.ProjectModule),
						Module:        t.ModuleCfg.Module,
						Name:          t.ModuleCfg.Name,
						Parallel:      t.ModuleCfg.Parallel,
						ArtifactsPath: t.ArtifactsPath,
						Refs:          t.ModuleCfg.Refs,
						Verifications: t.ModuleCfg.Verifications,
						Tags:          t.ModuleCfg.Ci.Tags,
						Image:         t.ModuleCfg.Ci.Image,
					})
				}
			}
			rc.Connections = append(rc.Connections, cc)
		}
		ctx.Rtes = append(ctx.Rtes, rc)
	}

	return ctx
}

func projectString(result *objects.Result, key string) string {
	if v, ok := result.Project.BaseString(key); ok {
		return v
	}
	return ""
}

func siteNames(f *objects.Feature) []string {
	var names []string
	for _, s := range f.MatchedSites(f.Graph) {
		if name, ok := s.Base["name"].(string); ok {
			names = append(names, name)
		}
	}
	return names
}

// findOwningRte finds the RTE whose IDPath prefixes the given test's
// IDPath - every test's id_path is rooted under its owning RTE's children.
func findOwningRte(result *objects.Result, t *objects.Test) (string, bool) {
	for _, rte := range result.Rtes {
		prefix := strings.Join(rte.IDPath(), "/")
		if strings.HasPrefix(strings.Join(t.IDPath(), "/"), prefix) {
			return rte.ModuleCfg.Module, true
		}
	}
	return "", false
}

// jobName builds "<eut>_<kind>_<name>" and folds every '_' to '-'.
func jobName(eutModule, kind, name string) string {
	raw := fmt.Sprintf("%s_%s_%s", eutModule, kind, name)
	return strings.ReplaceAll(raw, "_", "-")
}
