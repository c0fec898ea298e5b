// Package gridmesh defines the Grid and Entity types and cell connectivity
// options.
package gridmesh

import "github.com/katalvlaran/meshkit/topology"

// Connectivity selects cell adjacency: shared edge only (Conn4) or shared
// edge or corner (Conn8).
type Connectivity int

const (
	// Conn4 joins cells sharing an edge: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 also joins cells sharing a corner: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns the configuration name of c.
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Grid is a structured mesh of Width×Height unit square cells.
// It is immutable once built and safe for concurrent readers.
type Grid struct {
	Width, Height int
}

// Entity is a handle to one entity of a Grid. Its zero value belongs to no
// grid and is rejected by every MeshFunction bound to a real grid.
type Entity struct {
	grid  *Grid
	dim   int
	index int
}

// Mesh returns the owning grid.
func (e Entity) Mesh() topology.Mesh { return e.grid }

// Dim returns the topological dimension.
func (e Entity) Dim() int { return e.dim }

// Index returns the entity index within its dimension.
func (e Entity) Index() int { return e.index }

// compile-time contract checks
var (
	_ topology.Enumerator = (*Grid)(nil)
	_ topology.Entity     = Entity{}
)
