// Package moduleconfig implements component E: for a given vertex kind and
// module name, resolve and parse the per-module config.json. Grounded on
// original_source/src/objects/mod.rs's load_object_config, which switches
// on vertex kind to pick a path root out of the project config, then reads
// <root>/<kind-path>/<module>/config.json.
package moduleconfig

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cklewar/regressci/internal/graphmodel"
	"github.com/cklewar/regressci/pkg/apperr"
	"github.com/cklewar/regressci/pkg/config"
)

// Loader resolves and parses per-module config.json files for a fixed
// project configuration and root path.
type Loader struct {
	root string
	cfg  *config.Regression
}

// New returns a Loader bound to root and cfg.
func New(root string, cfg *config.Regression) *Loader {
	return &Loader{root: root, cfg: cfg}
}

// pathRoot is the closed kind -> path-root table named in SPEC_FULL.md
// §4.E. Kinds absent from this table have no module config (Unknown kinds
// yield null).
func (l *Loader) pathRoot(kind graphmodel.VertexKind) (string, bool) {
	switch kind {
	case graphmodel.KindEut:
		return l.cfg.Eut.Path, true
	case graphmodel.KindRte:
		return l.cfg.Rte.Path, true
	case graphmodel.KindFeature:
		return l.cfg.Features.Path, true
	case graphmodel.KindTest:
		return l.cfg.Tests.Path, true
	case graphmodel.KindVerification:
		return l.cfg.Verifications.Path, true
	case graphmodel.KindCollector:
		return l.cfg.Collectors.Path, true
	case graphmodel.KindReport:
		return l.cfg.Reports.Path, true
	case graphmodel.KindApplication:
		return l.cfg.Applications.Path, true
	default:
		return "", false
	}
}

// Load resolves and parses <root>/<kind-path>/<module>/config.json. Unknown
// kinds return (nil, nil) - "yield null" per spec, not an error.
func (l *Loader) Load(kind graphmodel.VertexKind, module string) (map[string]any, error) {
	root, ok := l.pathRoot(kind)
	if !ok {
		return nil, nil
	}
	path := filepath.Join(l.root, root, module, "config.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.New(apperr.ConfigRead, path, err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, apperr.New(apperr.ConfigParse, path, err)
	}
	return out, nil
}

// ModuleDir returns the directory on disk that owns a module's config and
// scripts: <root>/<kind-path>/<module>.
func (l *Loader) ModuleDir(kind graphmodel.VertexKind, module string) (string, bool) {
	root, ok := l.pathRoot(kind)
	if !ok {
		return "", false
	}
	return filepath.Join(l.root, root, module), true
}
