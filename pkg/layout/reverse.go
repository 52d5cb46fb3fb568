package layout

import "sort"

// ReverseLine reverses the order of the given node IDs along the
// dominant axis of their positions, in place in the positions map. The
// line counts as horizontal when its X extent is at least its Y extent;
// the off-axis coordinate of every node is preserved. Fewer than two
// nodes is a no-op.
func ReverseLine(nodeIDs []string, positions map[string]Position) {
	ids := make([]string, 0, len(nodeIDs))
	for _, id := range nodeIDs {
		if _, ok := positions[id]; ok {
			ids = append(ids, id)
		}
	}
	if len(ids) < 2 {
		return
	}

	minX, maxX := positions[ids[0]].X, positions[ids[0]].X
	minY, maxY := positions[ids[0]].Y, positions[ids[0]].Y
	for _, id := range ids[1:] {
		p := positions[id]
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	horizontal := (maxX - minX) >= (maxY - minY)

	sort.SliceStable(ids, func(i, j int) bool {
		if horizontal {
			return positions[ids[i]].X < positions[ids[j]].X
		}
		return positions[ids[i]].Y < positions[ids[j]].Y
	})

	axis := make([]float64, len(ids))
	for i, id := range ids {
		if horizontal {
			axis[i] = positions[id].X
		} else {
			axis[i] = positions[id].Y
		}
	}

	for i, id := range ids {
		p := positions[id]
		flipped := axis[len(axis)-1-i]
		if horizontal {
			positions[id] = Position{X: flipped, Y: p.Y}
		} else {
			positions[id] = Position{X: p.X, Y: flipped}
		}
	}
}
