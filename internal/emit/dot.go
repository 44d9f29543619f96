package emit

import (
	"fmt"
	"strings"

	"github.com/cklewar/regressci/internal/graphmodel"
)

// DOT renders g in GraphViz DOT format: one node per vertex labeled by its
// kind and id_path, one edge per relation labeled by its kind.
func DOT(g *graphmodel.Graph) string {
	var sb strings.Builder

	sb.WriteString("digraph regression {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box];\n\n")

	for _, v := range g.AllVertices() {
		label := strings.ReplaceAll(strings.Join(v.IDPath, "/"), "\"", "'")
		sb.WriteString(fmt.Sprintf("  \"%s\" [label=\"%s\\n(%s)\"];\n", v.ID, label, v.Kind))
	}

	sb.WriteString("\n")

	for _, e := range g.AllEdges() {
		from, _ := g.Vertex(e.From)
		to, _ := g.Vertex(e.To)
		if from == nil || to == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\" [label=\"%s\"];\n", from.ID, to.ID, e.Kind))
	}

	sb.WriteString("}\n")
	return sb.String()
}
