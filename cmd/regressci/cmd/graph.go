package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cklewar/regressci/internal/emit"
	"github.com/cklewar/regressci/internal/graphmodel"
)

var (
	graphFormat string
	graphOutput string
	showStats   bool
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Display the project's vertex graph",
	Long: `Display the graph a project config.json builds: every Project, Eut,
Site, Feature, Rte, Connection, Test, Verification and downstream vertex,
and the edges between them.

Formats:
  - dot: GraphViz DOT format (can be rendered with: dot -Tpng -o graph.png)
  - list: one "kind id_path" line per vertex

Examples:
  # Output DOT format to file
  regressci graph --format dot -o graph.dot

  # Render graph as PNG
  regressci graph --format dot | dot -Tpng -o graph.png

  # Show vertex/edge counts by kind
  regressci graph --stats`,
	RunE: runGraph,
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().StringVarP(&graphFormat, "format", "f", "dot", "output format: dot, list")
	graphCmd.Flags().StringVarP(&graphOutput, "output", "o", "", "output file (default: stdout)")
	graphCmd.Flags().BoolVar(&showStats, "stats", false, "show vertex/edge counts by kind")
}

func runGraph(_ *cobra.Command, _ []string) error {
	_, result, err := loadProject()
	if err != nil {
		return err
	}

	if showStats {
		return showGraphStats(result.Graph)
	}

	var output string
	switch graphFormat {
	case "dot":
		output = emit.DOT(result.Graph)
	case "list":
		output = formatList(result.Graph)
	default:
		return fmt.Errorf("unknown format: %s", graphFormat)
	}

	if graphOutput != "" {
		if err := os.WriteFile(graphOutput, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "graph written to %s\n", graphOutput)
		return nil
	}

	fmt.Print(output)
	return nil
}

func showGraphStats(g *graphmodel.Graph) error {
	byKind := map[graphmodel.VertexKind]int{}
	for _, v := range g.AllVertices() {
		byKind[v.Kind]++
	}

	fmt.Println("Vertex counts:")
	for kind, count := range byKind {
		fmt.Printf("  %-14s %d\n", kind, count)
	}
	fmt.Printf("Total vertices: %d\n", len(g.AllVertices()))
	fmt.Printf("Total edges:    %d\n", len(g.AllEdges()))

	return nil
}

func formatList(g *graphmodel.Graph) string {
	var sb strings.Builder
	for _, v := range g.AllVertices() {
		sb.WriteString(fmt.Sprintf("%-14s %s\n", v.Kind, strings.Join(v.IDPath, "/")))
	}
	return sb.String()
}
