package objects

import (
	"github.com/cklewar/regressci/internal/graphmodel"
)

// Providers is the collection vertex owning EutProvider/RteProvider
// children. Grounded on original_source/src/objects/collections.rs's
// Providers collection type.
type Providers struct {
	Object
}

// EutProvider backs a site; RteProvider backs an RTE's active provider;
// DashboardProvider backs a dashboard. Grounded on
// original_source/src/objects/provider.rs.
type EutProvider struct{ Object }
type RteProvider struct{ Object }
type DashboardProvider struct{ Object }

// InitProviders creates the Providers collection under eut.
func InitProviders(g *graphmodel.Graph, eut *Eut) (*Providers, error) {
	o, err := createChild(g, eut.Vertex, graphmodel.KindProviders, "providers", 0)
	if err != nil {
		return nil, err
	}
	return &Providers{o}, nil
}

// InitEutProvider creates (or returns the existing) EutProvider named
// name under providers, idempotently - multiple sites may share a
// provider.
func InitEutProvider(g *graphmodel.Graph, providers *Providers, existing map[string]*EutProvider, name string) (*EutProvider, error) {
	if p, ok := existing[name]; ok {
		return p, nil
	}
	o, err := createChild(g, providers.Vertex, graphmodel.KindEutProvider, name, len(existing))
	if err != nil {
		return nil, err
	}
	o.SetBase(map[string]any{"name": name})
	p := &EutProvider{o}
	existing[name] = p
	return p, nil
}

// InitRteProvider creates an RteProvider named name under providers.
func InitRteProvider(g *graphmodel.Graph, providers *Providers, ordinal int, name string) (*RteProvider, error) {
	o, err := createChild(g, providers.Vertex, graphmodel.KindRteProvider, name, ordinal)
	if err != nil {
		return nil, err
	}
	o.SetBase(map[string]any{"name": name})
	return &RteProvider{o}, nil
}

// InitDashboardProvider creates a DashboardProvider named name under the
// Dashboard vertex.
func InitDashboardProvider(g *graphmodel.Graph, dashboard *Dashboard, ordinal int, name string, cfg map[string]any) (*DashboardProvider, error) {
	o, err := createChild(g, dashboard.Vertex, graphmodel.KindDashboardProv, name, ordinal)
	if err != nil {
		return nil, err
	}
	o.SetBase(map[string]any{"name": name})
	o.SetModule(cfg)
	return &DashboardProvider{o}, nil
}
