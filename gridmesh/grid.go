package gridmesh

import (
	"fmt"

	"github.com/katalvlaran/meshkit/topology"
)

// NewGrid constructs a Grid of width×height cells.
// Returns ErrEmptyGrid if width or height is not positive.
// Complexity: O(1).
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("NewGrid(%d,%d): %w", width, height, ErrEmptyGrid)
	}

	return &Grid{Width: width, Height: height}, nil
}

// TopologyDim returns the dimension of the grid's cells (2).
func (g *Grid) TopologyDim() int { return topology.DimFace }

// Size returns the number of entities of dimension dim, or 0 for a
// dimension the grid does not have.
// Complexity: O(1).
func (g *Grid) Size(dim int) int {
	switch dim {
	case topology.DimVertex:
		return (g.Width + 1) * (g.Height + 1)
	case topology.DimEdge:
		return g.numHorizontalEdges() + g.Height*(g.Width+1)
	case topology.DimFace:
		return g.Width * g.Height
	default:
		return 0
	}
}

// numHorizontalEdges is the count of edges parallel to the x axis; vertical
// edges are numbered after them.
func (g *Grid) numHorizontalEdges() int {
	return g.Width * (g.Height + 1)
}

// Entity returns the handle of entity index of dimension dim.
// Returns ErrDimension or ErrEntityIndex on invalid input.
// Complexity: O(1).
func (g *Grid) Entity(dim, index int) (Entity, error) {
	if dim < topology.DimVertex || dim > topology.DimFace {
		return Entity{}, fmt.Errorf("Entity(%d,%d): %w", dim, index, ErrDimension)
	}
	if index < 0 || index >= g.Size(dim) {
		return Entity{}, fmt.Errorf("Entity(%d,%d): %w", dim, index, ErrEntityIndex)
	}

	return Entity{grid: g, dim: dim, index: index}, nil
}

// Entities returns all entities of dimension dim in index order; nil for a
// dimension the grid does not have.
// Complexity: O(Size(dim)).
func (g *Grid) Entities(dim int) []topology.Entity {
	n := g.Size(dim)
	if n == 0 {
		return nil
	}
	out := make([]topology.Entity, n)
	for i := 0; i < n; i++ {
		out[i] = Entity{grid: g, dim: dim, index: i}
	}

	return out
}

// InBounds reports whether cell (x,y) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Cell returns the cell entity at column x, row y.
// Returns ErrEntityIndex when (x,y) is outside the grid.
func (g *Grid) Cell(x, y int) (Entity, error) {
	if !g.InBounds(x, y) {
		return Entity{}, fmt.Errorf("Cell(%d,%d): %w", x, y, ErrEntityIndex)
	}

	return Entity{grid: g, dim: topology.DimFace, index: g.cellIndex(x, y)}, nil
}

// cellIndex maps (x,y) to a row-major cell index: y*Width + x.
func (g *Grid) cellIndex(x, y int) int {
	return y*g.Width + x
}

// vertexIndex maps vertex (x,y) to y*(Width+1) + x.
func (g *Grid) vertexIndex(x, y int) int {
	return y*(g.Width+1) + x
}

// Coordinate converts a cell index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(cell int) (x, y int) {
	return cell % g.Width, cell / g.Width
}

// CellVertices returns the four vertex indices of cell, counter-clockwise
// from its lower-left corner.
// Returns ErrEntityIndex for an invalid cell index.
func (g *Grid) CellVertices(cell int) ([4]int, error) {
	if cell < 0 || cell >= g.Size(topology.DimFace) {
		return [4]int{}, fmt.Errorf("CellVertices(%d): %w", cell, ErrEntityIndex)
	}
	x, y := g.Coordinate(cell)

	return [4]int{
		g.vertexIndex(x, y),
		g.vertexIndex(x+1, y),
		g.vertexIndex(x+1, y+1),
		g.vertexIndex(x, y+1),
	}, nil
}

// CellEdges returns the four edge indices of cell in the order bottom,
// right, top, left.
// Returns ErrEntityIndex for an invalid cell index.
func (g *Grid) CellEdges(cell int) ([4]int, error) {
	if cell < 0 || cell >= g.Size(topology.DimFace) {
		return [4]int{}, fmt.Errorf("CellEdges(%d): %w", cell, ErrEntityIndex)
	}
	x, y := g.Coordinate(cell)
	nh := g.numHorizontalEdges()

	return [4]int{
		y*g.Width + x,
		nh + y*(g.Width+1) + x + 1,
		(y+1)*g.Width + x,
		nh + y*(g.Width+1) + x,
	}, nil
}

// String implements fmt.Stringer.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid(%dx%d)", g.Width, g.Height)
}
