package objects

import (
	"github.com/cklewar/regressci/internal/graphmodel"
	"github.com/cklewar/regressci/pkg/config"
)

// Ci attaches a CI block (tags/image/artifacts/variables/job_templates/
// stages) to its parent. Grounded on original_source/src/objects/ci.rs's
// Ci::init: creates the vertex, stores base_cfg verbatim, no module config
// (Ci has no module-config path root in §4.E's table).
type Ci struct {
	Object
}

// InitCi creates a Ci vertex as a child of parent, storing cfg as its base
// properties.
func InitCi(g *graphmodel.Graph, parent *Object, label string, ordinal int, cfg config.Ci) (*Ci, error) {
	o, err := createChild(g, parent.Vertex, graphmodel.KindCi, label, ordinal)
	if err != nil {
		return nil, err
	}
	o.SetBase(ciToMap(cfg))
	return &Ci{o}, nil
}

func ciToMap(cfg config.Ci) map[string]any {
	return map[string]any{
		"tags":          cfg.Tags,
		"image":         cfg.Image,
		"timeout":       cfg.Timeout,
		"artifacts":     cfg.Artifacts,
		"variables":     cfg.Variables,
		"job_templates": cfg.JobTemplates,
		"stages":        cfg.Stages,
	}
}

// MergeCi implements the Open Question decision recorded in DESIGN.md:
// per-field merge of an override Ci block (provider) over a base Ci block
// (eut), with the override's fields taking precedence when set. Build uses
// it twice: the EUT's Ci over the project Ci, and each RTE module's Ci over
// that result.
func MergeCi(eut, provider config.Ci) config.Ci {
	out := eut
	if len(provider.Tags) > 0 {
		out.Tags = provider.Tags
	}
	if provider.Image != "" {
		out.Image = provider.Image
	}
	if provider.Timeout != "" {
		out.Timeout = provider.Timeout
	}
	if provider.Artifacts != nil {
		out.Artifacts = provider.Artifacts
	}
	if len(provider.Variables) > 0 {
		out.Variables = provider.Variables
	}
	if len(provider.JobTemplates) > 0 {
		out.JobTemplates = provider.JobTemplates
	}
	if len(provider.Stages.Deploy) > 0 {
		out.Stages.Deploy = provider.Stages.Deploy
	}
	if len(provider.Stages.Destroy) > 0 {
		out.Stages.Destroy = provider.Stages.Destroy
	}
	return out
}
