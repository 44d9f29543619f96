// Package refs implements component G: resolving the symbolic
// "<kind>:<name>" references a module config's refs list names into the
// concrete artifacts_path of the entity that produced them. Grounded on
// original_source's ref-resolution step in objects/mod.rs, which walks the
// graph by id_path rather than maintaining a side index; here a flat
// registry is built once during the construction pass and consulted
// read-only afterwards, consistent with SPEC_FULL.md §5's single
// construction-then-walk lifecycle.
package refs

import (
	"fmt"
	"strings"

	"github.com/cklewar/regressci/pkg/apperr"
)

// Registry maps "<kind>:<name>" to the artifacts_path the named entity of
// that kind produced.
type Registry struct {
	paths map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{paths: map[string]string{}}
}

// Register records the artifacts_path an entity of kind/name produced.
// Re-registering the same (kind, name) pair overwrites the prior value,
// matching the original's "last writer wins" property-merge semantics.
func (r *Registry) Register(kind, name, artifactsPath string) {
	r.paths[kind+":"+name] = artifactsPath
}

// Resolve maps one "<kind>:<name>" ref to its artifacts_path. An
// unparseable ref or one naming an entity never registered is a fatal
// UnknownRef error per SPEC_FULL.md §7 - there is no silent default.
func (r *Registry) Resolve(ref string) (string, error) {
	kind, name, ok := strings.Cut(ref, ":")
	if !ok || kind == "" || name == "" {
		return "", apperr.New(apperr.UnknownRef, ref, fmt.Errorf("malformed ref %q, expected \"<kind>:<name>\"", ref))
	}
	path, ok := r.paths[ref]
	if !ok {
		return "", apperr.New(apperr.UnknownRef, ref, fmt.Errorf("no %s named %q produced an artifacts_path", kind, name))
	}
	return path, nil
}

// ResolveAll resolves every ref in refs, in order, failing fast on the
// first UnknownRef.
func (r *Registry) ResolveAll(refs []string) ([]string, error) {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		path, err := r.Resolve(ref)
		if err != nil {
			return nil, err
		}
		out = append(out, path)
	}
	return out, nil
}
