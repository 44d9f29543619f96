package objects

import (
	"fmt"

	"github.com/cklewar/regressci/internal/graphmodel"
	"github.com/cklewar/regressci/internal/moduleconfig"
)

// Rtes is the collection vertex owning Rte children.
type Rtes struct {
	Object
}

// Rte is a regression test environment: a strategy-selected topology
// (type_a fans out to every matching destination site; type_b wires only
// the source side under one active provider) wired on top of the shared EUT sites/providers.
// Grounded on original_source/src/objects/rte.rs's RteExt/init, with the
// type_a/type_b split kept as a Go interface (RteStrategy) living in this
// package rather than a separate one, to avoid a construction-time import
// cycle between the object layer and its own strategies.
type Rte struct {
	Object
	ModuleCfg RteModuleConfig
	Strategy  RteStrategy
}

// InitRtes creates the Rtes collection under eut.
func InitRtes(g *graphmodel.Graph, eut *Eut) (*Rtes, error) {
	o, err := createChild(g, eut.Vertex, graphmodel.KindRtes, "rtes", 0)
	if err != nil {
		return nil, err
	}
	return &Rtes{o}, nil
}

// InitRte creates one Rte vertex under rtes, wires its needs_provider edge
// to the shared providers collection and its needs edge to the shared
// features collection, loads its module config, and selects its strategy.
func InitRte(g *graphmodel.Graph, loader *moduleconfig.Loader, rtes *Rtes, providers *Providers, features *Features, ordinal int, module string) (*Rte, error) {
	o, err := createChild(g, rtes.Vertex, graphmodel.KindRte, module, ordinal)
	if err != nil {
		return nil, err
	}
	if _, err := g.CreateEdge(o.Vertex, providers.Vertex); err != nil {
		return nil, err
	}
	if _, err := g.CreateEdge(o.Vertex, features.Vertex); err != nil {
		return nil, err
	}

	modCfg, err := loader.Load(graphmodel.KindRte, module)
	if err != nil {
		return nil, err
	}
	var typed RteModuleConfig
	if err := decodeInto(modCfg, &typed); err != nil {
		return nil, fmt.Errorf("decoding rte module config for %q: %w", module, err)
	}
	o.SetModule(modCfg)
	o.SetBase(map[string]any{
		"module":   module,
		"name":     typed.Name,
		"provider": typed.Provider,
		"type":     typed.Type,
	})

	strategy, err := NewRteStrategy(typed.Type)
	if err != nil {
		return nil, fmt.Errorf("rte %q: %w", module, err)
	}

	return &Rte{Object: o, ModuleCfg: typed, Strategy: strategy}, nil
}
