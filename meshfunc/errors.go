// SPDX-License-Identifier: MIT

package meshfunc

import (
	"errors"
	"fmt"
)

// ErrMeshNotSet is the configuration error returned when a mesh-deriving
// Init is called on a MeshFunction that has no bound mesh.
var ErrMeshNotSet = errors.New("meshfunc: mesh has not been specified, unable to initialize mesh function")

// Precondition sentinels. They never come back as return values; they are
// wrapped in a *PreconditionError and raised via panic.
var (
	// ErrNotInitialized indicates access before any Init call allocated storage.
	ErrNotInitialized = errors.New("meshfunc: mesh function is not initialized")

	// ErrNilMesh indicates a nil mesh where a bound mesh is required.
	ErrNilMesh = errors.New("meshfunc: mesh is nil")

	// ErrMeshMismatch indicates an entity owned by a different mesh.
	ErrMeshMismatch = errors.New("meshfunc: entity belongs to a different mesh")

	// ErrDimensionMismatch indicates an entity of the wrong topological dimension.
	ErrDimensionMismatch = errors.New("meshfunc: entity dimension does not match")

	// ErrIndexOutOfRange indicates an index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("meshfunc: index out of range")

	// ErrInvalidArgument indicates a negative dimension or size, or a nil entity.
	ErrInvalidArgument = errors.New("meshfunc: invalid argument")
)

// PreconditionError is the panic value raised when a caller breaks the
// access contract of a MeshFunction.
type PreconditionError struct {
	Op  string // method name, e.g. "At"
	Err error  // one of the precondition sentinels
	Msg string // detail, may be empty
}

func (e *PreconditionError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("MeshFunction.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("MeshFunction.%s: %v (%s)", e.Op, e.Err, e.Msg)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// violate panics with a *PreconditionError.
func violate(op string, err error, format string, args ...any) {
	panic(&PreconditionError{Op: op, Err: err, Msg: fmt.Sprintf(format, args...)})
}
