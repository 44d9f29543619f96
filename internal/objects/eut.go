package objects

import (
	"fmt"

	"github.com/cklewar/regressci/internal/graphmodel"
	"github.com/cklewar/regressci/internal/moduleconfig"
	"github.com/cklewar/regressci/pkg/config"
)

// Eut is the Environment Under Test vertex. Grounded on
// original_source/src/objects/eut.rs's Eut::init: stores config.eut as
// base, loads the eut module config into module. Unlike the original
// (whose Renderer methods are `todo!()`), Eut's render context is not
// self-generated here either - it is assembled by the top-level builder in
// internal/render, consistent with the original pushing EUT context
// construction into the top-level Regression::build_context rather than
// Eut::gen_render_ctx.
type Eut struct {
	Object
	ModuleCfg EutModuleConfig
	Providers []string
}

// InitEut creates the Eut vertex under project and loads its module config.
func InitEut(g *graphmodel.Graph, loader *moduleconfig.Loader, project *Project, cfg config.Eut) (*Eut, error) {
	o, err := createChild(g, project.Vertex, graphmodel.KindEut, cfg.Module, 0)
	if err != nil {
		return nil, err
	}
	o.SetBase(map[string]any{
		"module": cfg.Module,
		"path":   cfg.Path,
	})

	modCfg, err := loader.Load(graphmodel.KindEut, cfg.Module)
	if err != nil {
		return nil, err
	}
	o.SetModule(modCfg)

	var typed EutModuleConfig
	if err := decodeInto(modCfg, &typed); err != nil {
		return nil, fmt.Errorf("decoding eut module config for %q: %w", cfg.Module, err)
	}

	return &Eut{Object: o, ModuleCfg: typed, Providers: typed.Providers}, nil
}

// ExpandSites implements the Open Question decision recorded in
// DESIGN.md: site.count > 1 expands to <name>_1..<name>_n, and those
// expanded names are what connection destination regexes match against.
func ExpandSites(decls []SiteDecl) []SiteDecl {
	var out []SiteDecl
	for _, d := range decls {
		if d.Count <= 1 {
			out = append(out, d)
			continue
		}
		for i := 1; i <= d.Count; i++ {
			out = append(out, SiteDecl{
				Name:     fmt.Sprintf("%s_%d", d.Name, i),
				Count:    1,
				Provider: d.Provider,
			})
		}
	}
	return out
}
