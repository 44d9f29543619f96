package objects

import (
	"fmt"

	"github.com/cklewar/regressci/internal/graphmodel"
	"github.com/cklewar/regressci/internal/moduleconfig"
)

// Report is wired directly under Eut (one has_reports edge per report -
// there is no intervening Reports collection in the schema, unlike
// Collectors/Applications). Grounded on
// original_source/src/objects/collections.rs's report handling.
type Report struct {
	Object
	ModuleCfg ReportModuleConfig
}

// InitReport creates one Report vertex under eut and loads its module
// config.
func InitReport(g *graphmodel.Graph, loader *moduleconfig.Loader, eut *Eut, ordinal int, module string) (*Report, error) {
	o, err := createChild(g, eut.Vertex, graphmodel.KindReport, module, ordinal)
	if err != nil {
		return nil, err
	}
	modCfg, err := loader.Load(graphmodel.KindReport, module)
	if err != nil {
		return nil, err
	}
	var typed ReportModuleConfig
	if err := decodeInto(modCfg, &typed); err != nil {
		return nil, fmt.Errorf("decoding report module config for %q: %w", module, err)
	}
	o.SetModule(modCfg)
	o.SetBase(map[string]any{"module": module, "name": typed.Name})
	return &Report{Object: o, ModuleCfg: typed}, nil
}

// WireCollector wires this report's report_refers_collector edge.
func (r *Report) WireCollector(g *graphmodel.Graph, collector *Collector) error {
	_, err := g.CreateEdge(r.Vertex, collector.Vertex)
	return err
}
