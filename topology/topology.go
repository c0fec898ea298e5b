// SPDX-License-Identifier: MIT

// Package topology declares the contracts between a computational mesh and
// the per-entity data attached to it.
//
// A mesh is a collection of entities grouped by topological dimension:
// vertices (0), edges (1), faces (2) and volumes (3). Within one dimension the
// entities are numbered densely from zero, so an entity is fully identified by
// the triple (mesh, dimension, index).
//
// This package holds no implementation. Concrete meshes live elsewhere
// (see gridmesh) and containers consume them through these interfaces
// (see meshfunc).
package topology

// Named topological dimensions.
const (
	// DimVertex is the dimension of mesh vertices.
	DimVertex = 0
	// DimEdge is the dimension of mesh edges.
	DimEdge = 1
	// DimFace is the dimension of mesh faces (cells of a 2D mesh).
	DimFace = 2
	// DimVolume is the dimension of mesh volumes (cells of a 3D mesh).
	DimVolume = 3
)

// Mesh is the minimal view of a mesh needed to size per-entity storage.
//
// Implementations are compared by identity when an entity's owner is
// checked, so the dynamic type MUST be comparable; pointer receivers are the
// expected choice.
type Mesh interface {
	// Size returns the number of entities of topological dimension dim.
	// Unknown dimensions report 0.
	Size(dim int) int
}

// Entity is an opaque handle to one mesh entity.
type Entity interface {
	// Mesh returns the mesh owning this entity.
	Mesh() Mesh
	// Dim returns the topological dimension of the entity.
	Dim() int
	// Index returns the position of the entity in its mesh's table for Dim.
	Index() int
}

// Enumerator is an optional Mesh capability: listing the entities of one
// dimension as handles, in index order.
type Enumerator interface {
	Mesh
	// Entities returns handles for all entities of dimension dim, ordered so
	// that Entities(dim)[i].Index() == i.
	Entities(dim int) []Entity
}
