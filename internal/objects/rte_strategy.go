package objects

import (
	"fmt"
	"regexp"

	"github.com/cklewar/regressci/internal/graphmodel"
	"github.com/cklewar/regressci/internal/moduleconfig"
	"github.com/cklewar/regressci/pkg/config"
)

// RteStrategy is the topology-building behavior that differs between the
// two closed RTE kinds. Grounded on original_source/src/objects/rte.rs,
// which switches on rte_type inline; here the switch is replaced by a
// small interface with one implementation per kind, selected once at
// InitRte time and never re-dispatched afterwards.
type RteStrategy interface {
	// Kind returns the module-config type string this strategy serves.
	Kind() string
	// Wire builds every Connection/ConnectionSrc/ConnectionDst and their
	// Test/Verification children for rte, using ctx for shared state.
	Wire(ctx *WireCtx, rte *Rte) error
}

// NewRteStrategy selects the strategy for a module config's declared type.
// An unrecognized type is returned as an error naming it and the closed
// set {rte_type_a, rte_type_b}.
func NewRteStrategy(kind string) (RteStrategy, error) {
	switch kind {
	case RteTypeA:
		return typeAStrategy{}, nil
	case RteTypeB:
		return typeBStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown rte type %q, expected %q or %q", kind, RteTypeA, RteTypeB)
	}
}

// WireCtx carries the shared state every strategy needs to wire an RTE's
// connections: the sites available on the EUT, the provider collection to
// hang fresh RteProviders off of, the tests/collector configuration needed
// to compute artifacts_path, and the module-config loader for tests,
// verifications and collectors.
type WireCtx struct {
	Graph      *graphmodel.Graph
	Loader     *moduleconfig.Loader
	Providers  *Providers
	Sites      *Sites
	AllSites   []*Site
	TestsCfg   config.Tests
	Collectors map[string]*Collector

	Tests         []*Test
	Verifications []*Verification

	rteProviders map[string]*RteProvider
	synthOrdinal int
}

// NewWireCtx constructs a fresh WireCtx for one construction pass (Build)
// over an Eut's RTEs.
func NewWireCtx(g *graphmodel.Graph, loader *moduleconfig.Loader, providers *Providers, sites *Sites, allSites []*Site, testsCfg config.Tests, collectors map[string]*Collector) *WireCtx {
	return &WireCtx{
		Graph:        g,
		Loader:       loader,
		Providers:    providers,
		Sites:        sites,
		AllSites:     allSites,
		TestsCfg:     testsCfg,
		Collectors:   collectors,
		rteProviders: map[string]*RteProvider{},
	}
}

// rteProviderFor returns the RteProvider vertex this rte uses for
// components scoped to providerName, creating and linking it to
// components on first use. RteProvider vertices are never deduped across
// calls to InitRte - each RTE owns its own, even when several RTEs share a
// provider name, matching the original's per-init vertex creation.
func (c *WireCtx) rteProviderFor(components *Components, providerName string) (*RteProvider, error) {
	key := fmt.Sprintf("%v/%s", components.IDPath(), providerName)
	if p, ok := c.rteProviders[key]; ok {
		return p, nil
	}
	p, err := InitRteProvider(c.Graph, c.Providers, len(c.rteProviders), providerName)
	if err != nil {
		return nil, err
	}
	if err := components.LinkRteProvider(c.Graph, p); err != nil {
		return nil, err
	}
	c.rteProviders[key] = p
	return p, nil
}

// findSite returns the EUT site named name, if any.
func (c *WireCtx) findSite(name string) (*Site, bool) {
	for _, s := range c.AllSites {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// findOrCreateSite resolves name against the EUT's sites, and for type_b
// (whose connections are not required to name a real EUT site) fabricates
// a single-use Site scoped to provider when no match exists.
func (c *WireCtx) findOrCreateSite(name, provider string) (*Site, error) {
	if s, ok := c.findSite(name); ok {
		return s, nil
	}
	o, err := createChild(c.Graph, c.Sites.Vertex, graphmodel.KindSite, name, len(c.AllSites)+c.synthOrdinal)
	if err != nil {
		return nil, err
	}
	o.SetBase(map[string]any{"name": name, "provider": provider})
	c.synthOrdinal++
	return &Site{Object: o, Name: name, Provider: provider}, nil
}

// matchDestinations returns the EUT sites whose name matches pattern.
func matchDestinations(pattern string, sites []*Site) ([]*Site, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid destination regex %q: %w", pattern, err)
	}
	var out []*Site
	for _, s := range sites {
		if re.MatchString(s.Name) {
			out = append(out, s)
		}
	}
	return out, nil
}

// resolveComponentDecl returns the declared component for a side
// (src/dst), the first one when several are declared, which invariant requires connection_src/connection_dst to
// each wire exactly one of.
func resolveComponentDecl(decls []ComponentDecl, side string) (ComponentDecl, error) {
	if len(decls) == 0 {
		return ComponentDecl{}, fmt.Errorf("no components.%s declared", side)
	}
	return decls[0], nil
}

// wireTestsAndVerifications creates every test the connection declares
// under csrc, and every verification each test declares under it.
func wireTestsAndVerifications(ctx *WireCtx, csrc *ConnectionSrc, rte *Rte, rteProviderName string, testModules []string) error {
	for i, module := range testModules {
		test, err := InitTest(ctx.Graph, ctx.Loader, ctx.TestsCfg, csrc, rte, rteProviderName, i, module)
		if err != nil {
			return err
		}
		ctx.Tests = append(ctx.Tests, test)
		if test.ModuleCfg.Collector != "" {
			if collector, ok := ctx.Collectors[test.ModuleCfg.Collector]; ok {
				if err := test.WireCollector(ctx.Graph, collector); err != nil {
					return err
				}
			}
		}
		for j, vmod := range test.ModuleCfg.Verifications {
			v, err := InitVerification(ctx.Graph, ctx.Loader, test, j, vmod)
			if err != nil {
				return err
			}
			if err := test.WireVerification(ctx.Graph, v); err != nil {
				return err
			}
			ctx.Verifications = append(ctx.Verifications, v)
		}
	}
	return nil
}
