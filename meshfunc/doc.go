// SPDX-License-Identifier: MIT

// Package meshfunc provides MeshFunction, a discrete function defined on the
// entities of one fixed topological dimension of a mesh.
//
// What:
//
//   - MeshFunction[T] binds to a topology.Mesh (borrowed, never owned),
//     fixes a dimension and owns a dense []T with one slot per entity.
//   - Slot i belongs to the entity whose Index() is i.
//   - Typical payloads: global numbering (int), sub-domain markers (int),
//     refinement flags (bool), any per-entity scalar or struct.
//
// Lifecycle:
//
//	New / NewOnMesh  → Uninitialized (no storage)
//	Init* methods    → Initialized   (storage of Size() zero values)
//	Init* again      → Initialized   (previous values discarded)
//
// Init methods:
//
//	Init(dim)                     size = mesh.Size(dim), needs a bound mesh
//	InitSized(dim, size)          size argument ignored, same as Init(dim)
//	InitMesh(m, dim)              binds m, size = m.Size(dim)
//	InitMeshSized(m, dim, size)   binds m, size taken literally
//
// Errors:
//
//   - ErrMeshNotSet is RETURNED by Init and InitSized when no mesh is bound.
//     Nothing is mutated in that case.
//   - Precondition violations (use before init, foreign entity, dimension
//     mismatch, index out of range) PANIC with a *PreconditionError. These
//     checks are compiled out with the build tag meshfunc_nochecks; Go's
//     slice bounds check still applies then.
//
// Concurrency:
//
//	No internal locking. Concurrent readers are fine once initialization is
//	done; any writer (including re-init) must be coordinated by the caller.
//
// Complexity:
//
//   - At, Get, Set: O(1).
//   - Init*: O(size) time and memory.
package meshfunc
