package graph

// Subgraph is a named derived view over a parent graph: a subset of its
// nodes and the edges between them that survived a category filter. A
// Subgraph is built fresh by each analysis call; the parent graph only
// keeps the most recent view per name (see Graph.RegisterSubgraph).
type Subgraph struct {
	Name  string
	Nodes []*Node
	Edges []*Edge

	// Isolated flags nodes that have no qualifying incident edge inside
	// this view. Advisory metadata for the renderer; the nodes are still
	// full members of the view.
	Isolated map[string]bool

	members map[string]bool
}

// NewSubgraph creates an empty derived view with the given name.
func NewSubgraph(name string) *Subgraph {
	return &Subgraph{
		Name:     name,
		Isolated: make(map[string]bool),
		members:  make(map[string]bool),
	}
}

// AddNode adds a node to the view. Adding the same node twice is a no-op.
func (sg *Subgraph) AddNode(n *Node) {
	if sg.members[n.ID] {
		return
	}
	sg.members[n.ID] = true
	sg.Nodes = append(sg.Nodes, n)
}

// AddEdge adds an edge to the view. Both endpoints must already be members.
func (sg *Subgraph) AddEdge(e *Edge) bool {
	if !sg.members[e.Source] || !sg.members[e.Target] {
		return false
	}
	sg.Edges = append(sg.Edges, e)
	return true
}

// Contains reports membership of a node ID.
func (sg *Subgraph) Contains(nodeID string) bool {
	return sg.members[nodeID]
}

// MarkIsolated recomputes the advisory isolated flags from the current
// edge set.
func (sg *Subgraph) MarkIsolated() {
	touched := make(map[string]bool, len(sg.Nodes))
	for _, e := range sg.Edges {
		touched[e.Source] = true
		touched[e.Target] = true
	}
	for _, n := range sg.Nodes {
		sg.Isolated[n.ID] = !touched[n.ID]
	}
}

// NodeCount returns the number of member nodes.
func (sg *Subgraph) NodeCount() int { return len(sg.Nodes) }

// EdgeCount returns the number of member edges.
func (sg *Subgraph) EdgeCount() int { return len(sg.Edges) }
