package topology

import (
	"container/list"

	"github.com/proteincraft/rincraft/pkg/graph"
)

// ConnectedComponents finds the connected components of a derived view,
// computed over its node set: members without any edge form singleton
// components. BFS over the view's own edges only.
func ConnectedComponents(sg *graph.Subgraph) [][]string {
	adjacency := make(map[string][]string, len(sg.Nodes))
	for _, e := range sg.Edges {
		adjacency[e.Source] = append(adjacency[e.Source], e.Target)
		adjacency[e.Target] = append(adjacency[e.Target], e.Source)
	}

	visited := make(map[string]bool, len(sg.Nodes))
	var components [][]string

	for _, start := range sg.Nodes {
		if visited[start.ID] {
			continue
		}

		component := make([]string, 0)
		queue := list.New()
		queue.PushBack(start.ID)
		visited[start.ID] = true

		for queue.Len() > 0 {
			id, ok := queue.Remove(queue.Front()).(string)
			if !ok {
				continue
			}
			component = append(component, id)

			for _, next := range adjacency[id] {
				if !visited[next] {
					visited[next] = true
					queue.PushBack(next)
				}
			}
		}

		components = append(components, component)
	}

	return components
}

// LargestComponentNodes returns the node count of the largest connected
// component of the view, zero when the view is empty. Note this is a
// node count; the companion subgraph metric next to it is an edge count
// (see StructureMetrics).
func LargestComponentNodes(sg *graph.Subgraph) int {
	largest := 0
	for _, component := range ConnectedComponents(sg) {
		if len(component) > largest {
			largest = len(component)
		}
	}
	return largest
}
