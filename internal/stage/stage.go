// Package stage implements component H: turning a Ci block's deploy/destroy
// stage-name lists into a linear chain of next_stage-linked vertices. Only
// the named stages are created: no per-test or per-verification stage is
// added to either chain. Grounded on original_source/src/objects/ci.rs's stage handling
// (Ci::init building StageDeploy/StageDestroy chains from config.stages).
package stage

import (
	"strconv"

	"github.com/cklewar/regressci/internal/graphmodel"
)

// Plan is the ordered result of planning one Ci block's stages: the deploy
// chain followed by the destroy chain, each already linked by next_stage
// edges in the graph.
type Plan struct {
	Deploy  []*graphmodel.Vertex
	Destroy []*graphmodel.Vertex
}

// Build creates one stage_deploy vertex per name in deployNames and one
// stage_destroy vertex per name in destroyNames under ci, in order, and
// links each chain with next_stage edges so stage i+1 can be reached from
// stage i. The two chains are independent: nothing links the last deploy
// stage to the first destroy stage, since deploy and destroy are distinct
// pipeline phases that never run back-to-back in the same invocation.
func Build(g *graphmodel.Graph, ci *graphmodel.Vertex, deployNames, destroyNames []string) (*Plan, error) {
	deploy, err := buildChain(g, ci, graphmodel.KindStageDeploy, deployNames)
	if err != nil {
		return nil, err
	}
	destroy, err := buildChain(g, ci, graphmodel.KindStageDestroy, destroyNames)
	if err != nil {
		return nil, err
	}
	return &Plan{Deploy: deploy, Destroy: destroy}, nil
}

func buildChain(g *graphmodel.Graph, ci *graphmodel.Vertex, kind graphmodel.VertexKind, names []string) ([]*graphmodel.Vertex, error) {
	var chain []*graphmodel.Vertex
	for i, name := range names {
		idPath := append(append([]string{}, ci.IDPath...), idSegment(kind, name, i))
		v := g.CreateVertex(kind, idPath)
		g.PutProperty(v, graphmodel.SlotBase, map[string]any{"name": name})
		if _, err := g.CreateEdge(ci, v); err != nil {
			return nil, err
		}
		if i > 0 {
			if _, err := g.CreateEdge(chain[i-1], v); err != nil {
				return nil, err
			}
		}
		chain = append(chain, v)
	}
	return chain, nil
}

func idSegment(kind graphmodel.VertexKind, name string, ordinal int) string {
	return string(kind) + ":" + name + ":" + strconv.Itoa(ordinal)
}
