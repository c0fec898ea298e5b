package meshfunc_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/meshkit/gridmesh"
	"github.com/katalvlaran/meshkit/meshfunc"
	"github.com/katalvlaran/meshkit/topology"
)

// ExampleMeshFunction attaches an integer marker to the ten cells of a 5×2
// grid, writes one slot by raw index and reads it back through the cell
// entity.
func ExampleMeshFunction() {
	g, _ := gridmesh.NewGrid(5, 2)

	markers := meshfunc.New[int]()
	markers.InitMesh(g, topology.DimFace)
	fmt.Println("size:", markers.Size())

	markers.Set(3, 42)
	c, _ := g.Cell(3, 0)
	fmt.Println("cell 3:", markers.Get(c))
	fmt.Println("values:", markers.Values())

	// Output:
	// size: 10
	// cell 3: 42
	// values: [0 0 0 42 0 0 0 0 0 0]
}

// ExampleMeshFunction_Init shows the configuration error returned when no
// mesh is bound, and the mesh-derived size once one is.
func ExampleMeshFunction_Init() {
	f := meshfunc.New[bool]()
	if err := f.Init(topology.DimEdge); errors.Is(err, meshfunc.ErrMeshNotSet) {
		fmt.Println("no mesh:", err)
	}

	g, _ := gridmesh.NewGrid(5, 2)
	f = meshfunc.NewOnMesh[bool](g)
	_ = f.InitSized(topology.DimEdge, 999)
	fmt.Println("edges:", f.Size())

	// Output:
	// no mesh: meshfunc: mesh has not been specified, unable to initialize mesh function
	// edges: 27
}

// ExampleMeshFunction_At numbers the vertices of a 2×1 grid in place.
func ExampleMeshFunction_At() {
	g, _ := gridmesh.NewGrid(2, 1)
	numbering := meshfunc.New[int]()
	numbering.InitMesh(g, topology.DimVertex)

	for _, v := range g.Entities(topology.DimVertex) {
		*numbering.At(v) = 100 + v.Index()
	}
	fmt.Println(numbering.Values())

	// Output:
	// [100 101 102 103 104 105]
}
