// Package emit implements component J: turning a render.Context into the
// generator's on-disk outputs - the GitLab CI pipeline YAML, a JSON dump of
// the same context, an entry markdown summary, an actions-manifest JSON,
// and a GraphViz DOT rendering of the underlying graph. Grounded on
// original_source's Tera-based rendering step; text/template is the
// idiomatic Go stand-in named in SPEC_FULL.md §1.
package emit

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"text/template"

	"github.com/cklewar/regressci/internal/render"
	"github.com/cklewar/regressci/pkg/apperr"
)

// Pipeline renders templatesDir/.gitlab-ci.yml.tpl against ctx and returns
// the resulting YAML bytes.
func Pipeline(templatesDir string, ctx *render.Context) ([]byte, error) {
	path := filepath.Join(templatesDir, ".gitlab-ci.yml.tpl")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.New(apperr.ConfigRead, path, err)
	}
	tpl, err := template.New(filepath.Base(path)).Parse(string(raw))
	if err != nil {
		return nil, apperr.New(apperr.TemplateRender, path, err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, ctx); err != nil {
		return nil, apperr.New(apperr.TemplateRender, path, err)
	}
	return buf.Bytes(), nil
}

// JSONDump marshals ctx as indented JSON, the component J "json dump"
// output used for debugging and for diffing pipeline changes in review.
func JSONDump(ctx *render.Context) ([]byte, error) {
	b, err := json.MarshalIndent(ctx, "", "  ")
	if err != nil {
		return nil, apperr.New(apperr.IO, "render-context.json", err)
	}
	return b, nil
}
