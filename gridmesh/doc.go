// Package gridmesh provides a structured 2D mesh of W×H unit quadrilaterals
// that satisfies topology.Mesh, so per-entity data (see meshfunc) can be
// attached to its vertices, edges and cells.
//
// What:
//
//   - Grid numbers its entities densely per dimension:
//     vertices (W+1)·(H+1), edges W·(H+1)+H·(W+1), cells W·H.
//   - Entity is a value handle (grid, dim, index) implementing topology.Entity.
//   - MarkedRegions groups cells flagged by a boolean cell MeshFunction into
//     connected regions under Conn4 or Conn8 adjacency.
//   - Config is a YAML mesh description (width, height, connectivity).
//
// Numbering (row-major, origin bottom-left):
//
//	vertex (x,y), 0≤x≤W, 0≤y≤H       → y·(W+1) + x
//	horizontal edge (x,y), x<W, y≤H  → y·W + x
//	vertical edge (x,y), x≤W, y<H    → W·(H+1) + y·(W+1) + x
//	cell (x,y), x<W, y<H             → y·W + x
//
// Complexity:
//
//   - Size, Entity, Cell, CellVertices, CellEdges: O(1).
//   - Entities: O(Size(dim)).
//   - MarkedRegions: O(W·H·d), Memory O(W·H)  (d = 4 or 8 neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
//   - ErrDimension: dimension outside 0..2.
//   - ErrEntityIndex: entity index or cell coordinate out of range.
//   - ErrMarkerMismatch: markers are not initialized cell markers of the grid.
//   - ErrConnectivity: unknown connectivity name in a Config.
package gridmesh
