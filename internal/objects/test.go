package objects

import (
	"fmt"
	"strings"

	"github.com/cklewar/regressci/internal/graphmodel"
	"github.com/cklewar/regressci/internal/moduleconfig"
	"github.com/cklewar/regressci/pkg/config"
)

// Test is wired as a runs child of a ConnectionSrc. Grounded on
// original_source/src/objects/test.rs's Test::init/gen_render_ctx: a test's
// artifacts_path is derived from the owning RTE's name/module/provider plus
// the test's own module/name, with '-' folded to '_' in the name segment.
type Test struct {
	Object
	ModuleCfg     TestModuleConfig
	ArtifactsPath string
}

// InitTest creates a Test vertex under csrc (runs edge), loads its module
// config, and computes its artifacts_path from the owning rte's identity.
func InitTest(g *graphmodel.Graph, loader *moduleconfig.Loader, cfg config.Tests, csrc *ConnectionSrc, rte *Rte, rteProvider string, ordinal int, module string) (*Test, error) {
	o, err := createChild(g, csrc.Vertex, graphmodel.KindTest, module, ordinal)
	if err != nil {
		return nil, err
	}

	modCfg, err := loader.Load(graphmodel.KindTest, module)
	if err != nil {
		return nil, err
	}
	var typed TestModuleConfig
	if err := decodeInto(modCfg, &typed); err != nil {
		return nil, fmt.Errorf("decoding test module config for %q: %w", module, err)
	}
	o.SetModule(modCfg)

	rteName, _ := rte.BaseString("name")
	nameSlug := strings.ReplaceAll(typed.Name, "-", "_")
	artifactsPath := fmt.Sprintf("%s/%s/%s/%s/%s/%s/%s",
		cfg.ArtifactsDir, rteName, rte.ModuleCfg.Module, rteProvider, module, nameSlug, cfg.ArtifactsFile)

	o.SetBase(map[string]any{
		"module":         module,
		"name":           typed.Name,
		"artifacts_path": artifactsPath,
	})

	return &Test{Object: o, ModuleCfg: typed, ArtifactsPath: artifactsPath}, nil
}

// JobName is the GitLab CI job name for this test:
// "<project_module>_test_<test_name>" with '_' folded to '-'.
func (t *Test) JobName(projectModule string) string {
	raw := fmt.Sprintf("%s_test_%s", projectModule, t.ModuleCfg.Name)
	return strings.ReplaceAll(raw, "_", "-")
}

// WireCollector wires this test's test_refers_collector edge.
func (t *Test) WireCollector(g *graphmodel.Graph, collector *Collector) error {
	_, err := g.CreateEdge(t.Vertex, collector.Vertex)
	return err
}

// WireVerification wires this test's needs edge to a verification.
func (t *Test) WireVerification(g *graphmodel.Graph, v *Verification) error {
	_, err := g.CreateEdge(t.Vertex, v.Vertex)
	return err
}
