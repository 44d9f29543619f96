package objects

import (
	"fmt"

	"github.com/cklewar/regressci/internal/graphmodel"
	"github.com/cklewar/regressci/internal/moduleconfig"
)

// Verification is a needs child of a Test. Grounded on
// original_source/src/objects/verification.rs's Verification::init: unlike
// Test, it carries no artifacts_path computation of its own - just its
// loaded module config.
type Verification struct {
	Object
	ModuleCfg VerificationModuleConfig
}

// InitVerification creates a Verification vertex under test (needs edge)
// and loads its module config.
func InitVerification(g *graphmodel.Graph, loader *moduleconfig.Loader, test *Test, ordinal int, module string) (*Verification, error) {
	o, err := createChild(g, test.Vertex, graphmodel.KindVerification, module, ordinal)
	if err != nil {
		return nil, err
	}
	modCfg, err := loader.Load(graphmodel.KindVerification, module)
	if err != nil {
		return nil, err
	}
	var typed VerificationModuleConfig
	if err := decodeInto(modCfg, &typed); err != nil {
		return nil, fmt.Errorf("decoding verification module config for %q: %w", module, err)
	}
	o.SetModule(modCfg)
	o.SetBase(map[string]any{"module": module, "name": typed.Name})
	return &Verification{Object: o, ModuleCfg: typed}, nil
}
