package objects

import (
	"fmt"
	"regexp"

	"github.com/cklewar/regressci/internal/graphmodel"
	"github.com/cklewar/regressci/internal/moduleconfig"
)

// Features is the collection vertex owning Feature children.
type Features struct {
	Object
}

// Feature is a capability flag/module attached to sites whose names match
// one of its regexes. Grounded on original_source/src/objects/feature.rs's
// Feature::init/gen_render_ctx.
type Feature struct {
	Object
	ModuleCfg FeatureModuleConfig
}

// InitFeatures creates the Features collection under eut.
func InitFeatures(g *graphmodel.Graph, eut *Eut) (*Features, error) {
	o, err := createChild(g, eut.Vertex, graphmodel.KindFeatures, "features", 0)
	if err != nil {
		return nil, err
	}
	return &Features{o}, nil
}

// InitFeature creates one Feature vertex under features, loads its module
// config, and wires feature_refers_site edges to every site whose name
// matches one of the feature's site regexes. Regex matching is total and
// deterministic per spec §8: an invalid regex is returned as an error
// naming the feature and the pattern, never a silent skip.
func InitFeature(g *graphmodel.Graph, loader *moduleconfig.Loader, features *Features, ordinal int, module string, sites []*Site) (*Feature, error) {
	o, err := createChild(g, features.Vertex, graphmodel.KindFeature, module, ordinal)
	if err != nil {
		return nil, err
	}
	o.SetBase(map[string]any{"module": module})

	modCfg, err := loader.Load(graphmodel.KindFeature, module)
	if err != nil {
		return nil, err
	}
	o.SetModule(modCfg)

	var typed FeatureModuleConfig
	if err := decodeInto(modCfg, &typed); err != nil {
		return nil, fmt.Errorf("decoding feature module config for %q: %w", module, err)
	}

	for _, pattern := range typed.Sites {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("feature %q: invalid site regex %q: %w", module, pattern, err)
		}
		for _, site := range sites {
			if re.MatchString(site.Name) {
				if _, err := g.CreateEdge(o.Vertex, site.Vertex); err != nil {
					return nil, err
				}
			}
		}
	}

	return &Feature{Object: o, ModuleCfg: typed}, nil
}

// MatchedSites returns the sites this feature's regex set matches, in
// creation order, by walking its feature_refers_site edges.
func (f *Feature) MatchedSites(g *graphmodel.Graph) []*graphmodel.Vertex {
	return g.NeighboursOut(f.Vertex, graphmodel.EdgeFeatureRefersSite)
}
