package objects

import (
	"fmt"

	"github.com/cklewar/regressci/internal/graphmodel"
	"github.com/cklewar/regressci/internal/moduleconfig"
)

// Applications is the collection vertex owning Application children.
type Applications struct {
	Object
}

// Application is an optional extra deploy unit wired to a provider,
// supplementing a feature the spec.md distillation dropped (grounded
// on original_source's application objects).
type Application struct {
	Object
	ModuleCfg ApplicationModuleConfig
}

// InitApplications creates the Applications collection under eut.
func InitApplications(g *graphmodel.Graph, eut *Eut) (*Applications, error) {
	o, err := createChild(g, eut.Vertex, graphmodel.KindApplications, "applications", 0)
	if err != nil {
		return nil, err
	}
	return &Applications{o}, nil
}

// InitApplication creates one Application vertex under applications and
// loads its module config.
func InitApplication(g *graphmodel.Graph, loader *moduleconfig.Loader, apps *Applications, ordinal int, module string) (*Application, error) {
	o, err := createChild(g, apps.Vertex, graphmodel.KindApplication, module, ordinal)
	if err != nil {
		return nil, err
	}
	modCfg, err := loader.Load(graphmodel.KindApplication, module)
	if err != nil {
		return nil, err
	}
	var typed ApplicationModuleConfig
	if err := decodeInto(modCfg, &typed); err != nil {
		return nil, fmt.Errorf("decoding application module config for %q: %w", module, err)
	}
	o.SetModule(modCfg)
	o.SetBase(map[string]any{"module": module, "name": typed.Name})
	return &Application{Object: o, ModuleCfg: typed}, nil
}
