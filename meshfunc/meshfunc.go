// SPDX-License-Identifier: MIT

package meshfunc

import (
	"fmt"

	"github.com/katalvlaran/meshkit/topology"
)

// MeshFunction is a discrete function that can be evaluated at the set of
// mesh entities of one fixed topological dimension.
//
// The mesh is borrowed: it must outlive every access made through the
// function. The value slice is owned and replaced wholesale on every Init.
// The zero value is ready to use and equivalent to New[T]().
type MeshFunction[T any] struct {
	values []T           // one slot per entity, len == size once initialized
	mesh   topology.Mesh // bound mesh, nil until bound
	dim    int           // topological dimension
	size   int           // number of entities of dim at init time
}

// New returns an empty MeshFunction with no mesh bound.
// Complexity: O(1).
func New[T any]() *MeshFunction[T] {
	return &MeshFunction[T]{}
}

// NewOnMesh returns an empty MeshFunction bound to m. No dimension is fixed
// and no storage is allocated until one of the Init methods is called.
// Complexity: O(1).
func NewOnMesh[T any](m topology.Mesh) *MeshFunction[T] {
	return &MeshFunction[T]{mesh: m}
}

// Mesh returns the bound mesh. Calling it on a function without a mesh is a
// precondition violation.
func (f *MeshFunction[T]) Mesh() topology.Mesh {
	if checksEnabled && f.mesh == nil {
		violate("Mesh", ErrNilMesh, "no mesh bound")
	}
	return f.mesh
}

// Dim returns the topological dimension. Meaningful only once Initialized.
func (f *MeshFunction[T]) Dim() int { return f.dim }

// Size returns the number of values (entities). Zero before initialization.
func (f *MeshFunction[T]) Size() int { return f.size }

// Values returns the backing slice, indexed by entity index. It is nil before
// initialization. Callers may read it in bulk; they must not append to it or
// keep it across a later Init.
func (f *MeshFunction[T]) Values() []T { return f.values }

// Initialized reports whether storage has been allocated by an Init call.
func (f *MeshFunction[T]) Initialized() bool { return f.values != nil }

// Init fixes the dimension and sizes storage from the bound mesh's entity
// count for dim. Returns ErrMeshNotSet, without touching any state, when no
// mesh is bound.
// Complexity: O(mesh.Size(dim)).
func (f *MeshFunction[T]) Init(dim int) error {
	if f.mesh == nil {
		return ErrMeshNotSet
	}
	f.InitMeshSized(f.mesh, dim, f.mesh.Size(dim))

	return nil
}

// InitSized behaves exactly like Init: the size argument is accepted for
// call-site symmetry with InitMeshSized but the bound mesh's entity count
// for dim is authoritative. Use InitMeshSized to impose an explicit size.
// Returns ErrMeshNotSet when no mesh is bound.
func (f *MeshFunction[T]) InitSized(dim, size int) error {
	_ = size // the mesh entity count wins, see doc comment

	return f.Init(dim)
}

// InitMesh binds m (replacing any previously bound mesh), fixes dim and
// sizes storage from m.Size(dim).
// Complexity: O(m.Size(dim)).
func (f *MeshFunction[T]) InitMesh(m topology.Mesh, dim int) {
	if checksEnabled && m == nil {
		violate("InitMesh", ErrNilMesh, "dim=%d", dim)
	}
	f.InitMeshSized(m, dim, m.Size(dim))
}

// InitMeshSized binds m, fixes dim and allocates exactly size zero values,
// discarding any previous storage. This is the only Init form that takes the
// size literally; it may differ from m.Size(dim).
// Stage 1 (Validate): mesh non-nil, dim and size non-negative.
// Stage 2 (Execute): bind, then allocate one contiguous block.
// Complexity: O(size) time and memory.
func (f *MeshFunction[T]) InitMeshSized(m topology.Mesh, dim, size int) {
	if checksEnabled {
		if m == nil {
			violate("InitMeshSized", ErrNilMesh, "dim=%d size=%d", dim, size)
		}
		if dim < 0 || size < 0 {
			violate("InitMeshSized", ErrInvalidArgument, "dim=%d size=%d", dim, size)
		}
	}
	f.mesh = m
	f.dim = dim
	f.size = size
	f.values = nil // release the previous block before allocating
	f.values = make([]T, size)
}

// At returns a pointer to the value stored for entity e, for in-place
// update:
//
//	*f.At(e) = v
//
// Preconditions: initialized, e owned by the bound mesh, e.Dim() == Dim(),
// e.Index() < Size(). The pointer is invalidated by the next Init.
// Complexity: O(1).
func (f *MeshFunction[T]) At(e topology.Entity) *T {
	if checksEnabled {
		f.checkEntity("At", e)
	}
	return &f.values[e.Index()]
}

// Get returns a copy of the value stored for entity e.
// Same preconditions as At.
// Complexity: O(1).
func (f *MeshFunction[T]) Get(e topology.Entity) T {
	if checksEnabled {
		f.checkEntity("Get", e)
	}
	return f.values[e.Index()]
}

// Set stores v at the raw index. The mesh and dimension are not consulted:
// the caller vouches that index follows the entity ordering of the mesh.
// Preconditions: initialized, 0 <= index < Size().
// Complexity: O(1).
func (f *MeshFunction[T]) Set(index int, v T) {
	if checksEnabled {
		f.checkIndex("Set", index)
	}
	f.values[index] = v
}

// String implements fmt.Stringer for debugging.
func (f *MeshFunction[T]) String() string {
	var zero T
	if !f.Initialized() {
		return fmt.Sprintf("MeshFunction[%T]{uninitialized}", zero)
	}
	return fmt.Sprintf("MeshFunction[%T]{dim: %d, size: %d}", zero, f.dim, f.size)
}

// checkEntity validates the entity-access contract in a fixed order:
// storage → entity → mesh → dimension → index.
func (f *MeshFunction[T]) checkEntity(op string, e topology.Entity) {
	if f.values == nil {
		violate(op, ErrNotInitialized, "")
	}
	if e == nil {
		violate(op, ErrInvalidArgument, "nil entity")
	}
	if e.Mesh() != f.mesh {
		violate(op, ErrMeshMismatch, "")
	}
	if e.Dim() != f.dim {
		violate(op, ErrDimensionMismatch, "entity dim=%d, function dim=%d", e.Dim(), f.dim)
	}
	if i := e.Index(); i < 0 || i >= f.size {
		violate(op, ErrIndexOutOfRange, "index=%d size=%d", i, f.size)
	}
}

// checkIndex validates a raw index against the allocated storage.
func (f *MeshFunction[T]) checkIndex(op string, index int) {
	if f.values == nil {
		violate(op, ErrNotInitialized, "")
	}
	if index < 0 || index >= f.size {
		violate(op, ErrIndexOutOfRange, "index=%d size=%d", index, f.size)
	}
}
