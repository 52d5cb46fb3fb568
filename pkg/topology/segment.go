package topology

import (
	"fmt"
	"sort"

	"github.com/proteincraft/rincraft/pkg/graph"
)

// Chain conventions of the binder-design domain: chain A is the designed
// binder, chain B the target it binds.
const (
	BinderChain = "A"
	TargetChain = "B"
)

// Segment is a maximal contiguous run of same-coded helix or strand
// residues along one chain. Segments are derived read-only views,
// recomputed from the graph on each call.
type Segment struct {
	Nodes    []*graph.Node // ascending sequence position
	Code     string        // "H" or "E"
	StartPos int
	EndPos   int
}

// Name identifies a segment by its code and position span.
func (s *Segment) Name() string {
	return fmt.Sprintf("%s_%d_%d", s.Code, s.StartPos, s.EndPos)
}

// Contains reports whether the node ID belongs to this segment.
func (s *Segment) Contains(nodeID string) bool {
	for _, n := range s.Nodes {
		if n.ID == nodeID {
			return true
		}
	}
	return false
}

// SegmentChain derives the secondary-structure segments of one chain:
// runs of identical DSSP code restricted to H and E, broken by loop
// residues and by any gap in sequence position. Single pass over the
// chain after sorting by position.
func SegmentChain(g *graph.Graph, chain string) []Segment {
	nodes := append([]*graph.Node(nil), g.NodesByChain(chain)...)
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].Position < nodes[j].Position
	})

	var segments []Segment
	var current []*graph.Node

	flush := func() {
		if len(current) == 0 {
			return
		}
		segments = append(segments, Segment{
			Nodes:    current,
			Code:     current[0].Dssp,
			StartPos: current[0].Position,
			EndPos:   current[len(current)-1].Position,
		})
		current = nil
	}

	for _, n := range nodes {
		if len(current) > 0 {
			prev := current[len(current)-1]
			if n.IsStructured() && n.Dssp == prev.Dssp && n.Position == prev.Position+1 {
				current = append(current, n)
				continue
			}
			flush()
		}
		if n.IsStructured() {
			current = []*graph.Node{n}
		}
	}
	flush()

	sort.Slice(segments, func(i, j int) bool {
		return segments[i].StartPos < segments[j].StartPos
	})
	return segments
}
