package objects

import (
	"github.com/cklewar/regressci/internal/graphmodel"
	"github.com/cklewar/regressci/pkg/config"
)

// Project is the root vertex of the graph. Grounded on
// original_source/src/objects/project.rs's Project::init: creates the
// vertex and stores the project config block verbatim as base properties.
type Project struct {
	Object
}

// InitProject creates the root Project vertex.
func InitProject(g *graphmodel.Graph, cfg *config.Regression) *Project {
	v := g.CreateVertex(graphmodel.KindProject, []string{"project:root:0"})
	g.PutProperty(v, graphmodel.SlotBase, map[string]any{
		"name":       cfg.Project.Name,
		"module":     cfg.Project.Module,
		"templates":  cfg.Project.Templates,
		"root_path":  cfg.Project.RootPath,
	})
	return &Project{Object{Graph: g, Vertex: v}}
}
