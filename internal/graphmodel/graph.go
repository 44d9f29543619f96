// Package graphmodel implements the in-memory typed property graph that
// backs the generator: vertices with three fixed property slots (base,
// module, gv) and edges whose kind is derived solely from the endpoint
// vertex kinds via the schema table in schema.go. Grounded on the original
// tool's indradb-backed Db (src/db.rs): this package plays the same role
// using a plain Go map-based store, with map adjacency and deterministic
// creation-ordered iteration; the DOT export lives in internal/emit.
package graphmodel

import (
	"fmt"

	"github.com/cklewar/regressci/pkg/apperr"
	"github.com/google/uuid"
)

// Vertex is one node of the property graph: a kind, a stable id_path, and
// the three property slots.
type Vertex struct {
	ID      uuid.UUID
	Kind    VertexKind
	IDPath  []string
	Base    map[string]any
	Module  map[string]any
	GV      map[string]any
	seq     int
}

func (v *Vertex) slot(s Slot) map[string]any {
	switch s {
	case SlotBase:
		return v.Base
	case SlotModule:
		return v.Module
	case SlotGV:
		return v.GV
	default:
		return nil
	}
}

// Edge is one directed relation between two vertices, kind resolved from
// the schema table at creation time.
type Edge struct {
	Kind EdgeKind
	From uuid.UUID
	To   uuid.UUID
	seq  int
}

// Graph is the single-owner, single-threaded property graph store. There is
// no internal locking: per SPEC_FULL.md §5, the store is mutated only
// during the init pass and read-only afterwards.
type Graph struct {
	vertices map[uuid.UUID]*Vertex
	order    []uuid.UUID
	out      map[uuid.UUID][]*Edge
	in       map[uuid.UUID][]*Edge
	allEdges []*Edge
	seq      int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		vertices: make(map[uuid.UUID]*Vertex),
		out:      make(map[uuid.UUID][]*Edge),
		in:       make(map[uuid.UUID][]*Edge),
	}
}

// CreateVertex installs a new vertex of kind with empty base/module/gv
// slots and the given id_path.
func (g *Graph) CreateVertex(kind VertexKind, idPath []string) *Vertex {
	g.seq++
	v := &Vertex{
		ID:     uuid.New(),
		Kind:   kind,
		IDPath: append([]string(nil), idPath...),
		Base:   map[string]any{},
		Module: map[string]any{},
		GV:     map[string]any{"id": len(g.order), "label": kind},
		seq:    g.seq,
	}
	g.vertices[v.ID] = v
	g.order = append(g.order, v.ID)
	return v
}

// CreateEdge creates a directed edge from -> to, resolving its kind from
// the schema table. Returns a SchemaViolation if (from.Kind, to.Kind) is
// not a legal pair.
func (g *Graph) CreateEdge(from, to *Vertex) (*Edge, error) {
	kind, ok := EdgeKindFor(from.Kind, to.Kind)
	if !ok {
		return nil, apperr.WithIDPath(apperr.SchemaViolation, from.IDPath,
			fmt.Errorf("no schema entry for (%s, %s) -> %s", from.Kind, to.Kind, to.IDPath))
	}
	g.seq++
	e := &Edge{Kind: kind, From: from.ID, To: to.ID, seq: g.seq}
	g.out[from.ID] = append(g.out[from.ID], e)
	g.in[to.ID] = append(g.in[to.ID], e)
	g.allEdges = append(g.allEdges, e)
	return e, nil
}

// PutProperty replaces a vertex's slot entirely.
func (g *Graph) PutProperty(v *Vertex, slot Slot, value map[string]any) {
	cp := make(map[string]any, len(value))
	for k, val := range value {
		cp[k] = val
	}
	switch slot {
	case SlotBase:
		v.Base = cp
	case SlotModule:
		v.Module = cp
	case SlotGV:
		v.GV = cp
	}
}

// MergeProperty merges a single key/value into a vertex's slot. Last write
// wins on key collision.
func (g *Graph) MergeProperty(v *Vertex, slot Slot, key string, value any) {
	m := v.slot(slot)
	if m == nil {
		return
	}
	m[key] = value
}

// NeighboursOut returns the vertices reachable from v via an outbound edge
// of the given kind, in creation order.
func (g *Graph) NeighboursOut(v *Vertex, kind EdgeKind) []*Vertex {
	var out []*Vertex
	for _, e := range g.out[v.ID] {
		if e.Kind == kind {
			out = append(out, g.vertices[e.To])
		}
	}
	return out
}

// NeighboursIn is the inbound counterpart of NeighboursOut.
func (g *Graph) NeighboursIn(v *Vertex, kind EdgeKind) []*Vertex {
	var out []*Vertex
	for _, e := range g.in[v.ID] {
		if e.Kind == kind {
			out = append(out, g.vertices[e.From])
		}
	}
	return out
}

// NeighbourOut returns the first outbound neighbour of the given kind, if
// any.
func (g *Graph) NeighbourOut(v *Vertex, kind EdgeKind) (*Vertex, bool) {
	ns := g.NeighboursOut(v, kind)
	if len(ns) == 0 {
		return nil, false
	}
	return ns[0], true
}

// NeighbourIn returns the first inbound neighbour of the given kind, if
// any.
func (g *Graph) NeighbourIn(v *Vertex, kind EdgeKind) (*Vertex, bool) {
	ns := g.NeighboursIn(v, kind)
	if len(ns) == 0 {
		return nil, false
	}
	return ns[0], true
}

// AllVertices returns every vertex in creation order, for visualization.
func (g *Graph) AllVertices() []*Vertex {
	out := make([]*Vertex, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.vertices[id])
	}
	return out
}

// AllEdges returns every edge in creation order, for visualization.
func (g *Graph) AllEdges() []*Edge {
	return g.allEdges
}

// Vertex looks up a vertex by id.
func (g *Graph) Vertex(id uuid.UUID) (*Vertex, bool) {
	v, ok := g.vertices[id]
	return v, ok
}
