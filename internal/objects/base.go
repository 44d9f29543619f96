// Package objects is the object layer (component D): one Go type per
// vertex kind, each wrapping a graphmodel.Vertex and exposing Init/Load
// plus script- and render-context generation. Grounded on
// original_source/src/objects/object.rs's Object/ObjectExt: there, every
// entity type embeds an `Object` field and a macro
// (`implement_object_ext!`) blanket-implements the ObjectExt trait by
// delegating to that field. Go gets the same effect for free via struct
// embedding and method promotion - no macro required.
package objects

import (
	"fmt"

	"github.com/cklewar/regressci/internal/graphmodel"
	"github.com/google/uuid"
)

// Object is the common embedded base every entity type carries. It plays
// the role of original_source's Object<'a> + the ObjectExt trait.
type Object struct {
	Graph  *graphmodel.Graph
	Vertex *graphmodel.Vertex
}

// ID returns the vertex's identity.
func (o Object) ID() uuid.UUID { return o.Vertex.ID }

// Kind returns the vertex's kind.
func (o Object) Kind() graphmodel.VertexKind { return o.Vertex.Kind }

// IDPath returns the vertex's stable id_path segments.
func (o Object) IDPath() []string { return o.Vertex.IDPath }

// Base returns the vertex's base property slot.
func (o Object) Base() map[string]any { return o.Vertex.Base }

// Module returns the vertex's module property slot.
func (o Object) Module() map[string]any { return o.Vertex.Module }

// SetBase replaces the base slot wholesale.
func (o Object) SetBase(v map[string]any) { o.Graph.PutProperty(o.Vertex, graphmodel.SlotBase, v) }

// SetModule replaces the module slot wholesale.
func (o Object) SetModule(v map[string]any) {
	o.Graph.PutProperty(o.Vertex, graphmodel.SlotModule, v)
}

// MergeBase merges key/value into the base slot (last write wins).
func (o Object) MergeBase(key string, value any) {
	o.Graph.MergeProperty(o.Vertex, graphmodel.SlotBase, key, value)
}

// MergeModule merges key/value into the module slot (last write wins).
func (o Object) MergeModule(key string, value any) {
	o.Graph.MergeProperty(o.Vertex, graphmodel.SlotModule, key, value)
}

// BaseString reads a string field from base. It returns ok=false when the
// key is absent or its value is not a string.
func (o Object) BaseString(key string) (string, bool) {
	v, ok := o.Vertex.Base[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// ModuleString reads a required string field from module.
func (o Object) ModuleString(key string) (string, bool) {
	v, ok := o.Vertex.Module[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// idPath appends a new segment (kind:label:ordinal) to a parent id_path,
// matching the original tool's IdPath construction (kind name + label +
// ordinal, disambiguating siblings).
func idPath(parent []string, kind graphmodel.VertexKind, label string, ordinal int) []string {
	seg := fmt.Sprintf("%s:%s:%d", kind, label, ordinal)
	out := make([]string, 0, len(parent)+1)
	out = append(out, parent...)
	out = append(out, seg)
	return out
}

// createChild creates a vertex of kind as a schema-resolved child of
// parent, wires the edge, and returns the new Object.
func createChild(g *graphmodel.Graph, parent *graphmodel.Vertex, kind graphmodel.VertexKind, label string, ordinal int) (Object, error) {
	v := g.CreateVertex(kind, idPath(parent.IDPath, kind, label, ordinal))
	if _, err := g.CreateEdge(parent, v); err != nil {
		return Object{}, err
	}
	return Object{Graph: g, Vertex: v}, nil
}
