// Package config defines the project configuration format (component A of
// SPEC_FULL.md) and its two-phase load: parse, expand through the template
// engine using itself as context, then re-parse. Struct shapes mirror the
// original tool's RegressionConfig* hierarchy (src/lib.rs); field tags
// follow the teacher repo's pkg/config convention of carrying jsonschema
// struct tags throughout so `regressci schema` can export a JSON Schema via
// invopop/jsonschema.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"text/template"

	"github.com/cklewar/regressci/pkg/apperr"
)

// CiVariable is a single named CI variable.
type CiVariable struct {
	Name  string `json:"name" jsonschema:"title=name,description=variable name"`
	Value string `json:"value" jsonschema:"title=value,description=variable value"`
}

// JobTemplate names a reusable job template and the variables it binds.
type JobTemplate struct {
	Name      string       `json:"name"`
	Variables []CiVariable `json:"variables,omitempty"`
}

// CiArtifacts describes the artifacts block of a generated job.
type CiArtifacts struct {
	Path     string `json:"path"`
	ExpireIn string `json:"expire_in,omitempty"`
}

// CiStages names the deploy/destroy stage lists used by the stage planner.
type CiStages struct {
	Deploy  []string `json:"deploy,omitempty"`
	Destroy []string `json:"destroy,omitempty"`
}

// Ci is the CI block declared on the project, the EUT, RTE modules, tests
// and the top-level path declarations. The construction pass stores it as
// a Ci vertex under the Project, the Eut and each Rte (see MergeCi).
type Ci struct {
	Tags         []string      `json:"tags,omitempty"`
	Image        string        `json:"image,omitempty"`
	Timeout      string        `json:"timeout,omitempty"`
	Artifacts    *CiArtifacts  `json:"artifacts,omitempty"`
	Variables    []CiVariable  `json:"variables,omitempty"`
	JobTemplates []JobTemplate `json:"job_templates,omitempty"`
	Stages       CiStages      `json:"stages,omitempty"`
}

// ProjectVars names the file+path under which a project's extra variables
// live on disk.
type ProjectVars struct {
	File string `json:"file,omitempty"`
	Path string `json:"path,omitempty"`
}

// Project is the top-level project identity block.
type Project struct {
	Name      string      `json:"name" jsonschema:"required"`
	Module    string      `json:"module,omitempty"`
	Templates string      `json:"templates" jsonschema:"required,description=directory holding .gitlab-ci.yml.tpl and graph.tpl"`
	RootPath  string      `json:"root_path" jsonschema:"required"`
	Vars      ProjectVars `json:"vars,omitempty"`
}

// Eut is the top-level Environment Under Test declaration.
type Eut struct {
	Module        string `json:"module" jsonschema:"required"`
	Path          string `json:"path" jsonschema:"required,description=directory root holding per-module eut config.json files"`
	Ci            Ci     `json:"ci,omitempty"`
	ArtifactsDir  string `json:"artifacts_dir,omitempty"`
	ArtifactsFile string `json:"artifacts_file,omitempty"`
}

// Rte is the top-level RTE path declaration.
type Rte struct {
	Path string `json:"path" jsonschema:"required"`
	Ci   Ci     `json:"ci,omitempty"`
}

// Tests is the top-level Tests path declaration, plus the artifact layout
// used to derive every test's artifacts_path.
type Tests struct {
	Path            string `json:"path" jsonschema:"required"`
	Ci              Ci     `json:"ci,omitempty"`
	DataVarsPath    string `json:"data_vars_path,omitempty"`
	DataScriptsPath string `json:"data_scripts_path,omitempty"`
	ArtifactsDir    string `json:"artifacts_dir" jsonschema:"required"`
	ArtifactsFile   string `json:"artifacts_file" jsonschema:"required"`
}

// Verifications is the top-level Verifications path declaration.
type Verifications struct {
	Path string `json:"path" jsonschema:"required"`
	Ci   Ci     `json:"ci,omitempty"`
}

// Features is the top-level Features path declaration.
type Features struct {
	Path string `json:"path" jsonschema:"required"`
	Ci   Ci     `json:"ci,omitempty"`
}

// Collectors is the top-level Collectors path declaration.
type Collectors struct {
	Path         string `json:"path" jsonschema:"required"`
	ArtifactsDir string `json:"artifacts_dir,omitempty"`
}

// Applications is the top-level Applications path declaration.
type Applications struct {
	Path string `json:"path" jsonschema:"required"`
}

// Reports is the top-level Reports path declaration.
type Reports struct {
	Path string `json:"path" jsonschema:"required"`
}

// Dashboard is the top-level Dashboard path declaration.
type Dashboard struct {
	Path string `json:"path,omitempty"`
}

// Regression is the fully-parsed project configuration (component A's
// output). Field names match the closed top-level key set named in
// SPEC_FULL.md §6.
type Regression struct {
	Project       Project       `json:"project" jsonschema:"required"`
	Ci            Ci            `json:"ci,omitempty"`
	Eut           Eut           `json:"eut" jsonschema:"required"`
	Rte           Rte           `json:"rte,omitempty"`
	Tests         Tests         `json:"tests" jsonschema:"required"`
	Verifications Verifications `json:"verifications,omitempty"`
	Features      Features      `json:"features,omitempty"`
	Collectors    Collectors    `json:"collectors,omitempty"`
	Applications  Applications  `json:"applications,omitempty"`
	Reports       Reports       `json:"reports,omitempty"`
	Dashboard     Dashboard     `json:"dashboard,omitempty"`
}

// Load reads root/configFile, expands it through text/template using the
// parsed config itself as the template context, then re-parses the
// expansion into the final Regression value. This is the two-phase load
// SPEC_FULL.md §4.A names: self-referential templating lets a project
// config interpolate e.g. {{.Project.Name}} into nested fields before the
// shape is fixed.
func Load(root, configFile string) (*Regression, error) {
	path := filepath.Join(root, configFile)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.New(apperr.ConfigRead, path, err)
	}

	var first Regression
	if err := json.Unmarshal(raw, &first); err != nil {
		return nil, apperr.New(apperr.ConfigParse, path, err)
	}

	tpl, err := template.New(filepath.Base(path)).Parse(string(raw))
	if err != nil {
		return nil, apperr.New(apperr.TemplateRender, path, err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, &first); err != nil {
		return nil, apperr.New(apperr.TemplateRender, path, err)
	}

	var final Regression
	if err := json.Unmarshal(buf.Bytes(), &final); err != nil {
		return nil, apperr.New(apperr.ConfigParse, path, err)
	}
	return &final, nil
}
