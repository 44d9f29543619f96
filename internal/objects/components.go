package objects

import (
	"github.com/cklewar/regressci/internal/graphmodel"
)

// Components is the collection vertex owning ComponentSrc/ComponentDst
// children. A single Components vertex may be reached both from its owning
// Rte (has_components) and from each RteProvider it was populated under
// (has_components) - ownership for topology purposes is tracked via the
// "provider" base field on each ComponentSrc/ComponentDst, not via which
// parent edge was walked to reach it.
type Components struct {
	Object
}

// ComponentSrc and ComponentDst sit under a Provider's share of components
// and carry scripts used to render per-connection jobs. Grounded on
// original_source's Components handling in objects/collections.rs and the
// component-job-naming logic in objects/rte.rs.
type ComponentSrc struct {
	Object
	Name     string
	Provider string
}
type ComponentDst struct {
	Object
	Name     string
	Provider string
}

// InitComponents creates the Components collection under rte.
func InitComponents(g *graphmodel.Graph, rte *Rte) (*Components, error) {
	o, err := createChild(g, rte.Vertex, graphmodel.KindComponents, "components", 0)
	if err != nil {
		return nil, err
	}
	return &Components{o}, nil
}

// LinkRteProvider wires an RteProvider -> Components has_components edge,
// recording that this provider contributed component vertices here.
func (c *Components) LinkRteProvider(g *graphmodel.Graph, provider *RteProvider) error {
	_, err := g.CreateEdge(provider.Vertex, c.Vertex)
	return err
}

// InitComponentSrc creates a ComponentSrc vertex under components, scoped
// to the named provider.
func InitComponentSrc(g *graphmodel.Graph, components *Components, ordinal int, decl ComponentDecl, provider string) (*ComponentSrc, error) {
	o, err := createChild(g, components.Vertex, graphmodel.KindComponentSrc, decl.Name, ordinal)
	if err != nil {
		return nil, err
	}
	o.SetBase(map[string]any{
		"name":         decl.Name,
		"provider":     provider,
		"scripts_path": decl.ScriptsPath,
		"scripts":      decl.Scripts,
	})
	return &ComponentSrc{Object: o, Name: decl.Name, Provider: provider}, nil
}

// InitComponentDst creates a ComponentDst vertex under components, scoped
// to the named provider.
func InitComponentDst(g *graphmodel.Graph, components *Components, ordinal int, decl ComponentDecl, provider string) (*ComponentDst, error) {
	o, err := createChild(g, components.Vertex, graphmodel.KindComponentDst, decl.Name, ordinal)
	if err != nil {
		return nil, err
	}
	o.SetBase(map[string]any{
		"name":         decl.Name,
		"provider":     provider,
		"scripts_path": decl.ScriptsPath,
		"scripts":      decl.Scripts,
	})
	return &ComponentDst{Object: o, Name: decl.Name, Provider: provider}, nil
}
