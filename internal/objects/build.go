package objects

import (
	"path/filepath"

	"github.com/cklewar/regressci/internal/graphmodel"
	"github.com/cklewar/regressci/internal/moduleconfig"
	"github.com/cklewar/regressci/internal/refs"
	"github.com/cklewar/regressci/internal/stage"
	"github.com/cklewar/regressci/pkg/config"
)

// Result is everything Build produced: the populated graph plus the handles
// a render-context pass (component I) needs to walk it from known roots.
type Result struct {
	Graph         *graphmodel.Graph
	Project       *Project
	Eut           *Eut
	Sites         []*Site
	Features      []*Feature
	Rtes          []*Rte
	Tests         []*Test
	Verifications []*Verification
	Collectors    map[string]*Collector
	Applications  []*Application
	Reports       []*Report
	Dashboard     *Dashboard
	Refs          *refs.Registry
}

// Build runs the two-pass construction pipeline's first pass: instantiate
// every vertex and edge the project configuration describes, in the order
// Project -> Ci -> Eut (with its Ci) -> Providers -> Sites -> Features ->
// Collectors -> Rtes (each with its Ci, then its Connections, Tests and
// Verifications through its strategy) -> Applications -> Reports ->
// Dashboard -> Stages, followed by ref resolution. Collectors come before
// the Rtes so that tests can be wired to them while their RTE is wired.
// Grounded on original_source/src/lib.rs's Regression::init, which walks
// the same entities via a sequence of Entity::init calls; here a single function performs that walk
// instead of spreading it across per-entity init chains, since Go has no
// equivalent need for the original's trait-object dispatch.
func Build(loader *moduleconfig.Loader, cfg *config.Regression) (*Result, error) {
	g := graphmodel.New()

	project := InitProject(g, cfg)
	projectCi, err := InitCi(g, &project.Object, "ci", 0, cfg.Ci)
	if err != nil {
		return nil, err
	}

	eut, err := InitEut(g, loader, project, cfg.Eut)
	if err != nil {
		return nil, err
	}
	eutCi := MergeCi(cfg.Ci, cfg.Eut.Ci)
	if _, err := InitCi(g, &eut.Object, "ci", 0, eutCi); err != nil {
		return nil, err
	}

	providers, err := InitProviders(g, eut)
	if err != nil {
		return nil, err
	}

	sites, err := InitSites(g, eut)
	if err != nil {
		return nil, err
	}
	eutProviderCache := map[string]*EutProvider{}
	var allSites []*Site
	for i, decl := range ExpandSites(eut.ModuleCfg.Sites) {
		prov, err := InitEutProvider(g, providers, eutProviderCache, decl.Provider)
		if err != nil {
			return nil, err
		}
		site, err := InitSite(g, sites, i, decl, prov)
		if err != nil {
			return nil, err
		}
		allSites = append(allSites, site)
	}

	features, err := InitFeatures(g, eut)
	if err != nil {
		return nil, err
	}
	var allFeatures []*Feature
	for i, fmod := range eut.ModuleCfg.Features {
		f, err := InitFeature(g, loader, features, i, fmod, allSites)
		if err != nil {
			return nil, err
		}
		allFeatures = append(allFeatures, f)
	}

	collectors, err := InitCollectors(g, eut)
	if err != nil {
		return nil, err
	}
	collectorByName := map[string]*Collector{}
	for i, cmod := range eut.ModuleCfg.Collectors {
		c, err := InitCollector(g, loader, collectors, i, cmod)
		if err != nil {
			return nil, err
		}
		collectorByName[cmod] = c
	}

	rtes, err := InitRtes(g, eut)
	if err != nil {
		return nil, err
	}
	wireCtx := NewWireCtx(g, loader, providers, sites, allSites, cfg.Tests, collectorByName)
	var allRtes []*Rte
	for i, rmod := range eut.ModuleCfg.Rtes {
		rte, err := InitRte(g, loader, rtes, providers, features, i, rmod)
		if err != nil {
			return nil, err
		}
		rteCi := MergeCi(eutCi, rte.ModuleCfg.Ci)
		if _, err := InitCi(g, &rte.Object, "ci", 0, rteCi); err != nil {
			return nil, err
		}
		if err := rte.Strategy.Wire(wireCtx, rte); err != nil {
			return nil, err
		}
		allRtes = append(allRtes, rte)
	}

	applications, err := InitApplications(g, eut)
	if err != nil {
		return nil, err
	}
	var allApplications []*Application
	for i, amod := range eut.ModuleCfg.Applications {
		a, err := InitApplication(g, loader, applications, i, amod)
		if err != nil {
			return nil, err
		}
		allApplications = append(allApplications, a)
	}

	var allReports []*Report
	for i, rmod := range eut.ModuleCfg.Reports {
		r, err := InitReport(g, loader, eut, i, rmod)
		if err != nil {
			return nil, err
		}
		if r.ModuleCfg.Collector != "" {
			if c, ok := collectorByName[r.ModuleCfg.Collector]; ok {
				if err := r.WireCollector(g, c); err != nil {
					return nil, err
				}
			}
		}
		allReports = append(allReports, r)
	}

	var dashboard *Dashboard
	if eut.ModuleCfg.Dashboard != nil {
		dashboard, err = InitDashboard(g, eut, eut.ModuleCfg.Dashboard)
		if err != nil {
			return nil, err
		}
		if name, ok := eut.ModuleCfg.Dashboard["provider"].(string); ok && name != "" {
			if _, err := InitDashboardProvider(g, dashboard, 0, name, eut.ModuleCfg.Dashboard); err != nil {
				return nil, err
			}
		}
	}

	if _, err := stage.Build(g, projectCi.Vertex, cfg.Ci.Stages.Deploy, cfg.Ci.Stages.Destroy); err != nil {
		return nil, err
	}

	registry := refs.NewRegistry()
	for _, t := range wireCtx.Tests {
		registry.Register("test", t.ModuleCfg.Module, t.ArtifactsPath)
		registry.Register("test", t.ModuleCfg.Name, t.ArtifactsPath)
	}
	for module, c := range collectorByName {
		path := filepath.Join(cfg.Collectors.ArtifactsDir, module)
		registry.Register("collector", module, path)
		registry.Register("collector", c.ModuleCfg.Name, path)
	}
	if err := resolveRefs(g, registry, wireCtx.Tests, wireCtx.Verifications, collectorByName, allReports, allApplications); err != nil {
		return nil, err
	}

	return &Result{
		Graph:         g,
		Project:       project,
		Eut:           eut,
		Sites:         allSites,
		Features:      allFeatures,
		Rtes:          allRtes,
		Tests:         wireCtx.Tests,
		Verifications: wireCtx.Verifications,
		Collectors:    collectorByName,
		Applications:  allApplications,
		Reports:       allReports,
		Dashboard:     dashboard,
		Refs:          registry,
	}, nil
}

// resolveRefs runs component G's second pass: every entity that declares a
// refs list gets those refs resolved against registry and recorded as a
// "resolved_refs" base property, in order. An unresolvable ref aborts the
// whole build (apperr.UnknownRef) rather than producing a partially-wired
// pipeline description.
func resolveRefs(g *graphmodel.Graph, registry *refs.Registry, tests []*Test, verifications []*Verification, collectors map[string]*Collector, reports []*Report, applications []*Application) error {
	for _, t := range tests {
		if err := resolveInto(registry, t.Object, t.ModuleCfg.Refs); err != nil {
			return err
		}
	}
	for _, v := range verifications {
		if err := resolveInto(registry, v.Object, v.ModuleCfg.Refs); err != nil {
			return err
		}
	}
	for _, c := range collectors {
		if err := resolveInto(registry, c.Object, c.ModuleCfg.Refs); err != nil {
			return err
		}
	}
	for _, r := range reports {
		if err := resolveInto(registry, r.Object, r.ModuleCfg.Refs); err != nil {
			return err
		}
	}
	for _, a := range applications {
		if err := resolveInto(registry, a.Object, a.ModuleCfg.Refs); err != nil {
			return err
		}
	}
	return nil
}

func resolveInto(registry *refs.Registry, o Object, declared []string) error {
	if len(declared) == 0 {
		return nil
	}
	resolved, err := registry.ResolveAll(declared)
	if err != nil {
		return err
	}
	o.MergeBase("resolved_refs", resolved)
	return nil
}
