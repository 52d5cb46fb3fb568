package graph

// Graph is an attributed residue-interaction graph for one structure
// file. Nodes and edges are enumerated in insertion order; identifiers
// are never reassigned within one instance. A Graph is mutated in place
// by the importer and read by the analysis passes; it is not safe for
// concurrent mutation.
type Graph struct {
	Name string

	nodes    []*Node
	edges    []*Edge
	nodeByID map[string]*Node

	// Adjacency: node ID -> indexes into edges
	incident map[string][]int

	// Secondary index: chain label -> node IDs in insertion order
	byChain map[string][]string

	// Named derived views, replaced wholesale when an analysis re-runs
	subgraphs map[string]*Subgraph
}

// Statistics summarizes graph size for logging and metrics.
type Statistics struct {
	NodeCount int
	EdgeCount int
	Chains    int
}

// New creates an empty graph with the given display name.
func New(name string) *Graph {
	return &Graph{
		Name:      name,
		nodeByID:  make(map[string]*Node),
		incident:  make(map[string][]int),
		byChain:   make(map[string][]string),
		subgraphs: make(map[string]*Subgraph),
	}
}

// AddNode inserts a residue node. The ID must be unique within the graph.
func (g *Graph) AddNode(n *Node) error {
	if _, exists := g.nodeByID[n.ID]; exists {
		return nodeError("AddNode", n.ID, ErrDuplicateNode)
	}
	g.nodes = append(g.nodes, n)
	g.nodeByID[n.ID] = n
	g.byChain[n.Chain] = append(g.byChain[n.Chain], n.ID)
	return nil
}

// AddEdge inserts an interaction edge. Both endpoints must already exist.
func (g *Graph) AddEdge(e *Edge) error {
	if _, ok := g.nodeByID[e.Source]; !ok {
		return edgeError("AddEdge", e.Source, ErrMissingEndpoint)
	}
	if _, ok := g.nodeByID[e.Target]; !ok {
		return edgeError("AddEdge", e.Target, ErrMissingEndpoint)
	}
	idx := len(g.edges)
	g.edges = append(g.edges, e)
	g.incident[e.Source] = append(g.incident[e.Source], idx)
	if e.Target != e.Source {
		g.incident[e.Target] = append(g.incident[e.Target], idx)
	}
	return nil
}

// NodeByID looks up a node by its identifier.
func (g *Graph) NodeByID(id string) (*Node, error) {
	n, ok := g.nodeByID[id]
	if !ok {
		return nil, nodeError("NodeByID", id, ErrNodeNotFound)
	}
	return n, nil
}

// HasNode reports whether the identifier is present.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodeByID[id]
	return ok
}

// Nodes returns all nodes in insertion order. The slice is shared;
// callers must not modify it.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// Edges returns all edges in insertion order. The slice is shared;
// callers must not modify it.
func (g *Graph) Edges() []*Edge {
	return g.edges
}

// IncidentEdges returns every edge touching the given node.
func (g *Graph) IncidentEdges(nodeID string) []*Edge {
	idxs := g.incident[nodeID]
	if len(idxs) == 0 {
		return nil
	}
	out := make([]*Edge, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, g.edges[i])
	}
	return out
}

// NodesByChain returns the nodes of one chain in insertion order.
func (g *Graph) NodesByChain(chain string) []*Node {
	ids := g.byChain[chain]
	out := make([]*Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.nodeByID[id])
	}
	return out
}

// Chains returns the chain labels present in the graph.
func (g *Graph) Chains() []string {
	out := make([]string, 0, len(g.byChain))
	for chain := range g.byChain {
		out = append(out, chain)
	}
	return out
}

// Stats returns current node and edge counts.
func (g *Graph) Stats() Statistics {
	return Statistics{
		NodeCount: len(g.nodes),
		EdgeCount: len(g.edges),
		Chains:    len(g.byChain),
	}
}

// RegisterSubgraph stores a derived view under its name, replacing any
// prior view with the same name. The previous view is discarded whole;
// there is no partial merge.
func (g *Graph) RegisterSubgraph(sg *Subgraph) {
	g.subgraphs[sg.Name] = sg
}

// SubgraphByName returns the registered derived view, or nil.
func (g *Graph) SubgraphByName(name string) *Subgraph {
	return g.subgraphs[name]
}

// SubgraphNames lists the registered derived views.
func (g *Graph) SubgraphNames() []string {
	out := make([]string, 0, len(g.subgraphs))
	for name := range g.subgraphs {
		out = append(out, name)
	}
	return out
}
