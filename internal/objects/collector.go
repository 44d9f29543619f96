package objects

import (
	"fmt"

	"github.com/cklewar/regressci/internal/graphmodel"
	"github.com/cklewar/regressci/internal/moduleconfig"
)

// Collectors is the collection vertex owning Collector children.
type Collectors struct {
	Object
}

// Collector gathers test/report artifacts into a single share. Grounded on
// original_source/src/objects/collections.rs's Collectors::init/load_collector.
type Collector struct {
	Object
	ModuleCfg CollectorModuleConfig
}

// InitCollectors creates the Collectors collection under eut.
func InitCollectors(g *graphmodel.Graph, eut *Eut) (*Collectors, error) {
	o, err := createChild(g, eut.Vertex, graphmodel.KindCollectors, "collectors", 0)
	if err != nil {
		return nil, err
	}
	return &Collectors{o}, nil
}

// InitCollector creates one Collector vertex under collectors and loads
// its module config.
func InitCollector(g *graphmodel.Graph, loader *moduleconfig.Loader, collectors *Collectors, ordinal int, module string) (*Collector, error) {
	o, err := createChild(g, collectors.Vertex, graphmodel.KindCollector, module, ordinal)
	if err != nil {
		return nil, err
	}
	modCfg, err := loader.Load(graphmodel.KindCollector, module)
	if err != nil {
		return nil, err
	}
	var typed CollectorModuleConfig
	if err := decodeInto(modCfg, &typed); err != nil {
		return nil, fmt.Errorf("decoding collector module config for %q: %w", module, err)
	}
	o.SetModule(modCfg)
	o.SetBase(map[string]any{"module": module, "name": typed.Name})
	return &Collector{Object: o, ModuleCfg: typed}, nil
}
