package graph

import (
	"log/slog"
	"sort"

	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/simple"
)

// Node is a knowledge-graph node keyed by entity name. Nodes created
// implicitly by a dangling relationship endpoint carry an empty Type.
type Node struct {
	id   int64
	Name string
	Type string

	// Display overrides the DOT label when set by a renderer.
	Display string
}

// ID implements gonum's graph.Node.
func (n *Node) ID() int64 { return n.id }

// DOTID names the node in DOT output.
func (n *Node) DOTID() string { return n.Name }

// Attributes implements gonum's encoding.Attributer for DOT export.
func (n *Node) Attributes() []encoding.Attribute {
	var attrs []encoding.Attribute
	if n.Display != "" {
		attrs = append(attrs, encoding.Attribute{Key: "label", Value: n.Display})
	}
	if n.Type != "" {
		attrs = append(attrs, encoding.Attribute{Key: "node_type", Value: n.Type})
	}
	return attrs
}

// Edge is a directed knowledge-graph edge labeled with the relationship
// description.
type Edge struct {
	F, T  *Node
	Label string

	// Display overrides the DOT label when set by a renderer.
	Display string
}

// From implements gonum's graph.Edge.
func (e *Edge) From() gonumgraph.Node { return e.F }

// To implements gonum's graph.Edge.
func (e *Edge) To() gonumgraph.Node { return e.T }

// ReversedEdge implements gonum's graph.Edge.
func (e *Edge) ReversedEdge() gonumgraph.Edge {
	return &Edge{F: e.T, T: e.F, Label: e.Label, Display: e.Display}
}

// Attributes implements gonum's encoding.Attributer for DOT export.
func (e *Edge) Attributes() []encoding.Attribute {
	label := e.Display
	if label == "" {
		label = e.Label
	}
	if label == "" {
		return nil
	}
	return []encoding.Attribute{{Key: "label", Value: label}}
}

// KnowledgeGraph is the directed-graph projection of a document's entities
// and relationships. It is built once and not mutated afterwards.
type KnowledgeGraph struct {
	dg     *simple.DirectedGraph
	byName map[string]*Node
}

// Build materializes a document into a knowledge graph. Each entity
// becomes a node keyed by name; each relationship becomes a directed edge
// labeled with its description. A relationship endpoint that was never
// declared as an entity still gets a node, with no type. Duplicate
// (source, target) pairs keep only the last relationship's label.
func Build(doc *Document) *KnowledgeGraph {
	g := &KnowledgeGraph{
		dg:     simple.NewDirectedGraph(),
		byName: make(map[string]*Node),
	}

	for _, e := range doc.Entities {
		g.ensureNode(e.Name).Type = e.Type
	}

	for _, r := range doc.Relationships {
		if r.Source == r.Target {
			// Self-referential relationships cannot be represented as
			// simple directed edges.
			slog.Warn("graph: skipping self-referential relationship",
				"entity", r.Source, "type", r.Type)
			continue
		}
		from := g.ensureNode(r.Source)
		to := g.ensureNode(r.Target)
		g.dg.SetEdge(&Edge{F: from, T: to, Label: r.Description})
	}

	return g
}

func (g *KnowledgeGraph) ensureNode(name string) *Node {
	if n, ok := g.byName[name]; ok {
		return n
	}
	n := &Node{id: g.dg.NewNode().ID(), Name: name}
	g.dg.AddNode(n)
	g.byName[name] = n
	return n
}

// Order returns the number of nodes.
func (g *KnowledgeGraph) Order() int { return g.dg.Nodes().Len() }

// Size returns the number of edges.
func (g *KnowledgeGraph) Size() int { return g.dg.Edges().Len() }

// Node returns the node with the given entity name.
func (g *KnowledgeGraph) Node(name string) (*Node, bool) {
	n, ok := g.byName[name]
	return n, ok
}

// NodeType returns the entity type recorded for a node. Implicitly created
// nodes report an empty type.
func (g *KnowledgeGraph) NodeType(name string) (string, bool) {
	n, ok := g.byName[name]
	if !ok {
		return "", false
	}
	return n.Type, true
}

// EdgeLabel returns the label of the edge from source to target.
func (g *KnowledgeGraph) EdgeLabel(source, target string) (string, bool) {
	from, ok := g.byName[source]
	if !ok {
		return "", false
	}
	to, ok := g.byName[target]
	if !ok {
		return "", false
	}
	e := g.dg.Edge(from.ID(), to.ID())
	if e == nil {
		return "", false
	}
	return e.(*Edge).Label, true
}

// Nodes returns all nodes sorted by name.
func (g *KnowledgeGraph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.byName))
	for _, n := range g.byName {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Name < nodes[j].Name })
	return nodes
}

// Edges returns all edges sorted by source then target name.
func (g *KnowledgeGraph) Edges() []*Edge {
	var edges []*Edge
	it := g.dg.Edges()
	for it.Next() {
		edges = append(edges, it.Edge().(*Edge))
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].F.Name != edges[j].F.Name {
			return edges[i].F.Name < edges[j].F.Name
		}
		return edges[i].T.Name < edges[j].T.Name
	})
	return edges
}

// Directed exposes the underlying gonum graph for renderers and analysis.
func (g *KnowledgeGraph) Directed() gonumgraph.Directed { return g.dg }
