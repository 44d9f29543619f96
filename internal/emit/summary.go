package emit

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cklewar/regressci/internal/render"
	"github.com/cklewar/regressci/pkg/apperr"
)

// EntryMarkdown renders a human-readable summary of ctx: the EUT, its
// RTEs, and the tests each one runs. This is the "entry markdown" output
// SPEC_FULL.md §4.J names alongside the pipeline YAML.
func EntryMarkdown(ctx *render.Context) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", ctx.ProjectName)
	fmt.Fprintf(&sb, "EUT: `%s`\n\n", ctx.EutModule)

	if len(ctx.Features) > 0 {
		sb.WriteString("## Features\n\n")
		for _, f := range ctx.Features {
			fmt.Fprintf(&sb, "- `%s` (sites: %s)\n", f.Module, strings.Join(f.Sites, ", "))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## RTEs\n\n")
	for _, rte := range ctx.Rtes {
		fmt.Fprintf(&sb, "### %s (%s, provider `%s`)\n\n", rte.Module, rte.Type, rte.Provider)
		for _, conn := range rte.Connections {
			fmt.Fprintf(&sb, "- connection `%s`: `%s` -> \n", conn.Name, conn.SourceSite)
			for _, t := range conn.Tests {
				fmt.Fprintf(&sb, "  - test `%s` (job `%s`)\n", t.Module, t.JobName)
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// ActionsManifest is the flattened list of every job the pipeline runs,
// keyed by job name - a machine-readable complement to the pipeline YAML
// that downstream tooling (status dashboards, re-run automation) can
// consume without parsing GitLab CI syntax.
type ActionsManifest struct {
	Jobs []ActionEntry `json:"jobs"`
}

// ActionEntry is one job's manifest record.
type ActionEntry struct {
	JobName       string   `json:"job_name"`
	Kind          string   `json:"kind"`
	Module        string   `json:"module"`
	ArtifactsPath string   `json:"artifacts_path,omitempty"`
	Refs          []string `json:"refs,omitempty"`
}

// Manifest builds the actions manifest JSON from ctx.
func Manifest(ctx *render.Context) ([]byte, error) {
	m := ActionsManifest{}
	for _, rte := range ctx.Rtes {
		for _, conn := range rte.Connections {
			for _, t := range conn.Tests {
				m.Jobs = append(m.Jobs, ActionEntry{
					JobName:       t.JobName,
					Kind:          "test",
					Module:        t.Module,
					ArtifactsPath: t.ArtifactsPath,
					Refs:          t.Refs,
				})
			}
		}
	}
	for _, f := range ctx.Features {
		m.Jobs = append(m.Jobs, ActionEntry{JobName: f.JobName, Kind: "feature", Module: f.Module})
	}

	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, apperr.New(apperr.IO, "actions-manifest.json", err)
	}
	return b, nil
}
