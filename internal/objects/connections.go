package objects

import (
	"github.com/cklewar/regressci/internal/graphmodel"
)

// Connections is the collection vertex owning Connection children.
type Connections struct {
	Object
}

// Connection names one source-to-destinations wiring declared in an RTE
// module's connections list.
type Connection struct {
	Object
	Name string
}

// ConnectionSrc anchors a connection to its source site and component, and
// owns the runs edges to the tests that exercise it.
type ConnectionSrc struct {
	Object
	SiteName string
}

// ConnectionDst anchors one matched destination site and component.
type ConnectionDst struct {
	Object
	SiteName string
}

// InitConnections creates the Connections collection under rte.
func InitConnections(g *graphmodel.Graph, rte *Rte) (*Connections, error) {
	o, err := createChild(g, rte.Vertex, graphmodel.KindConnections, "connections", 0)
	if err != nil {
		return nil, err
	}
	return &Connections{o}, nil
}

// InitConnection creates one Connection vertex under connections.
func InitConnection(g *graphmodel.Graph, conns *Connections, ordinal int, name string) (*Connection, error) {
	o, err := createChild(g, conns.Vertex, graphmodel.KindConnection, name, ordinal)
	if err != nil {
		return nil, err
	}
	o.SetBase(map[string]any{"name": name})
	return &Connection{Object: o, Name: name}, nil
}

// InitConnectionSrc creates the single ConnectionSrc child of conn, wired
// to site via refers_site, with the reverse site_refers_rte edge recorded
// from site back to rte.
func InitConnectionSrc(g *graphmodel.Graph, conn *Connection, site *Site, rte *Rte) (*ConnectionSrc, error) {
	o, err := createChild(g, conn.Vertex, graphmodel.KindConnectionSrc, site.Name, 0)
	if err != nil {
		return nil, err
	}
	o.SetBase(map[string]any{"site": site.Name})
	if _, err := g.CreateEdge(o.Vertex, site.Vertex); err != nil {
		return nil, err
	}
	if _, err := g.CreateEdge(site.Vertex, rte.Vertex); err != nil {
		return nil, err
	}
	return &ConnectionSrc{Object: o, SiteName: site.Name}, nil
}

// InitConnectionDst creates one ConnectionDst child of csrc for a matched
// destination site, wired the same way as InitConnectionSrc.
func InitConnectionDst(g *graphmodel.Graph, csrc *ConnectionSrc, ordinal int, site *Site, rte *Rte) (*ConnectionDst, error) {
	o, err := createChild(g, csrc.Vertex, graphmodel.KindConnectionDst, site.Name, ordinal)
	if err != nil {
		return nil, err
	}
	o.SetBase(map[string]any{"site": site.Name})
	if _, err := g.CreateEdge(o.Vertex, site.Vertex); err != nil {
		return nil, err
	}
	if _, err := g.CreateEdge(site.Vertex, rte.Vertex); err != nil {
		return nil, err
	}
	return &ConnectionDst{Object: o, SiteName: site.Name}, nil
}

// WireComponentSrc wires this connection_src's has_component_src edge.
func (c *ConnectionSrc) WireComponentSrc(g *graphmodel.Graph, comp *ComponentSrc) error {
	_, err := g.CreateEdge(c.Vertex, comp.Vertex)
	return err
}

// WireComponentDst wires this connection_dst's has_component_dst edge.
func (c *ConnectionDst) WireComponentDst(g *graphmodel.Graph, comp *ComponentDst) error {
	_, err := g.CreateEdge(c.Vertex, comp.Vertex)
	return err
}
