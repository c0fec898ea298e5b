// Package meshkit attaches per-entity data to computational meshes.
//
// What is meshkit?
//
//	A small, generic library built around one container:
//		• meshfunc.MeshFunction[T] — one value of type T per mesh entity of a
//		  fixed topological dimension (vertex, edge, face, volume)
//		• topology — the Mesh / Entity contracts a mesh must satisfy
//		• gridmesh — a structured W×H quadrilateral mesh implementing them,
//		  with a YAML mesh description and marked-region analysis
//
// Typical payloads:
//
//   - global numbering schemes (MeshFunction[int] on vertices)
//   - sub-domain markers (MeshFunction[int] on cells)
//   - refinement flags (MeshFunction[bool] on cells)
//
// Under the hood:
//
//	topology/ — Mesh, Entity, Enumerator interfaces and named dimensions
//	meshfunc/ — MeshFunction[T], sentinel errors, build-tag controlled checks
//	gridmesh/ — Grid, Entity, Config, MarkedRegions
//	examples/ — runnable sub-domain marking program
//
// Quick ASCII example (5×2 grid, cell indices):
//
//	5 6 7 8 9
//	0 1 2 3 4
//
// A cell MeshFunction on this grid has Size() == 10; slot i belongs to cell i.
//
//	go get github.com/katalvlaran/meshkit
package meshkit
