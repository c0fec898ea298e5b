package gridmesh

import "errors"

var (
	// ErrEmptyGrid indicates a width or height that is not positive.
	ErrEmptyGrid = errors.New("gridmesh: grid must have at least one cell in each direction")
	// ErrDimension indicates a topological dimension the grid does not have.
	ErrDimension = errors.New("gridmesh: topological dimension out of range")
	// ErrEntityIndex indicates an entity index or cell coordinate out of range.
	ErrEntityIndex = errors.New("gridmesh: entity index out of range")
	// ErrMarkerMismatch indicates markers not defined on the cells of this grid.
	ErrMarkerMismatch = errors.New("gridmesh: markers are not initialized cell markers of this grid")
	// ErrConnectivity indicates an unknown connectivity name.
	ErrConnectivity = errors.New("gridmesh: unknown connectivity")
)
