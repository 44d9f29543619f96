package objects

import (
	"github.com/cklewar/regressci/internal/graphmodel"
)

// Dashboard is the single optional dashboard vertex under Eut, owning
// DashboardProvider children. Grounded on
// original_source/src/objects/provider.rs's DashboardProvider::init.
type Dashboard struct {
	Object
}

// InitDashboard creates the Dashboard vertex under eut.
func InitDashboard(g *graphmodel.Graph, eut *Eut, cfg map[string]any) (*Dashboard, error) {
	o, err := createChild(g, eut.Vertex, graphmodel.KindDashboard, "dashboard", 0)
	if err != nil {
		return nil, err
	}
	o.SetBase(cfg)
	return &Dashboard{o}, nil
}
