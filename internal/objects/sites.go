package objects

import (
	"github.com/cklewar/regressci/internal/graphmodel"
)

// Sites is the collection vertex owning Site children.
type Sites struct {
	Object
}

// Site is a named location bound to one provider. Grounded on
// original_source/src/objects/site.rs's Site::init (minus its oddly
// embedded application render-context generation, which this module does
// not replicate).
type Site struct {
	Object
	Name     string
	Provider string
}

// InitSites creates the Sites collection under eut.
func InitSites(g *graphmodel.Graph, eut *Eut) (*Sites, error) {
	o, err := createChild(g, eut.Vertex, graphmodel.KindSites, "sites", 0)
	if err != nil {
		return nil, err
	}
	return &Sites{o}, nil
}

// InitSite creates one Site vertex under sites, wired to its EutProvider.
func InitSite(g *graphmodel.Graph, sites *Sites, ordinal int, decl SiteDecl, provider *EutProvider) (*Site, error) {
	o, err := createChild(g, sites.Vertex, graphmodel.KindSite, decl.Name, ordinal)
	if err != nil {
		return nil, err
	}
	o.SetBase(map[string]any{
		"name":     decl.Name,
		"provider": decl.Provider,
	})
	if _, err := g.CreateEdge(o.Vertex, provider.Vertex); err != nil {
		return nil, err
	}
	return &Site{Object: o, Name: decl.Name, Provider: decl.Provider}, nil
}
