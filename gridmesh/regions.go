package gridmesh

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/meshkit/meshfunc"
	"github.com/katalvlaran/meshkit/topology"
)

// neighborOffsets returns the (dx,dy) cell offsets for conn.
func neighborOffsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// MarkedRegions finds the connected regions of cells whose marker is true.
// Each region is a sorted slice of cell indices; regions are ordered by their
// smallest cell index.
//
// markers must be an initialized cell function (dimension 2) bound to g with
// one value per cell, otherwise ErrMarkerMismatch is returned.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) MarkedRegions(markers *meshfunc.MeshFunction[bool], conn Connectivity) ([][]int, error) {
	if markers == nil || !markers.Initialized() ||
		markers.Mesh() != topology.Mesh(g) ||
		markers.Dim() != topology.DimFace ||
		markers.Size() != g.Size(topology.DimFace) {
		return nil, fmt.Errorf("MarkedRegions: %w", ErrMarkerMismatch)
	}

	marked := markers.Values()
	seen := make([]bool, len(marked))
	offsets := neighborOffsets(conn)
	var regions [][]int

	for i0, on := range marked {
		if !on || seen[i0] {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := g.Coordinate(queue[qi])
			for _, d := range offsets {
				vx, vy := ux+d[0], uy+d[1]
				if !g.InBounds(vx, vy) {
					continue
				}
				vi := g.cellIndex(vx, vy)
				if marked[vi] && !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		slices.Sort(queue)
		regions = append(regions, queue)
	}

	return regions, nil
}
