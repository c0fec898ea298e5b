package gridmesh_test

import (
	"fmt"

	"github.com/katalvlaran/meshkit/gridmesh"
	"github.com/katalvlaran/meshkit/meshfunc"
	"github.com/katalvlaran/meshkit/topology"
)

// ExampleGrid_MarkedRegions flags cells for refinement and groups the flagged
// cells into connected regions.
//
// 5×2 grid, cell indices:
//
//	5 6 7 8 9
//	0 1 2 3 4
//
// Flagged: 0, 1, 5 (one L-shaped region) and 3, 9 (touching at a corner).
func ExampleGrid_MarkedRegions() {
	g, _ := gridmesh.NewGrid(5, 2)
	refine := meshfunc.NewOnMesh[bool](g)
	_ = refine.Init(topology.DimFace)
	for _, c := range []int{0, 1, 5, 3, 9} {
		refine.Set(c, true)
	}

	conn4, _ := g.MarkedRegions(refine, gridmesh.Conn4)
	conn8, _ := g.MarkedRegions(refine, gridmesh.Conn8)
	fmt.Println("conn4:", conn4)
	fmt.Println("conn8:", conn8)

	// Output:
	// conn4: [[0 1 5] [3] [9]]
	// conn8: [[0 1 5] [3 9]]
}

// ExampleGrid_Size prints the entity counts of a 5×2 grid.
func ExampleGrid_Size() {
	g, _ := gridmesh.NewGrid(5, 2)
	fmt.Println(g.Size(topology.DimVertex), g.Size(topology.DimEdge), g.Size(topology.DimFace))

	// Output:
	// 18 27 10
}
