package meshgo

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the kind of all errors caused by referencing a vertex,
	// face or edge that does not exist in the mesh.
	ErrNotFound = errors.New("not found")

	// ErrValidation is the kind of all errors caused by violating an
	// operation-specific precondition. The mesh is left unchanged.
	ErrValidation = errors.New("validation failed")
)

// VertexNotFoundError indicates a referenced vertex key is not in the mesh.
//
// Unwraps to ErrNotFound.
type VertexNotFoundError struct {
	Vertex int
}

func (e *VertexNotFoundError) Error() string {
	return fmt.Sprintf("vertex %d not found", e.Vertex)
}

func (e *VertexNotFoundError) Unwrap() error { return ErrNotFound }

// FaceNotFoundError indicates a referenced face key is not in the mesh.
//
// Unwraps to ErrNotFound.
type FaceNotFoundError struct {
	Face int
}

func (e *FaceNotFoundError) Error() string {
	return fmt.Sprintf("face %d not found", e.Face)
}

func (e *FaceNotFoundError) Unwrap() error { return ErrNotFound }

// EdgeNotFoundError indicates that two vertex keys do not form an edge of
// any face.
//
// Unwraps to ErrNotFound.
type EdgeNotFoundError struct {
	U, V int
}

func (e *EdgeNotFoundError) Error() string {
	return fmt.Sprintf("edge (%d, %d) not found", e.U, e.V)
}

func (e *EdgeNotFoundError) Unwrap() error { return ErrNotFound }

// NotOnFaceError indicates a vertex key that is not part of the face it was
// looked up on.
//
// Unwraps to ErrNotFound.
type NotOnFaceError struct {
	Face   int
	Vertex int
}

func (e *NotOnFaceError) Error() string {
	return fmt.Sprintf("vertex %d is not on face %d", e.Vertex, e.Face)
}

func (e *NotOnFaceError) Unwrap() error { return ErrNotFound }

// InvalidFaceError indicates a vertex sequence that cannot form a face:
// fewer than three vertices, a repeated vertex, a missing vertex, or a
// half-edge already claimed by another face (which would make the mesh
// non-manifold).
//
// Unwraps to ErrValidation.
type InvalidFaceError struct {
	Vertices []int
	Reason   string
}

func (e *InvalidFaceError) Error() string {
	return fmt.Sprintf("invalid face %v: %s", e.Vertices, e.Reason)
}

func (e *InvalidFaceError) Unwrap() error { return ErrValidation }

// SplitFaceError indicates an invalid diagonal for a face split: one of the
// vertices is not on the face, the vertices are identical, or they are
// already adjacent on the face boundary.
//
// Unwraps to ErrValidation.
type SplitFaceError struct {
	Face   int
	U, V   int
	Reason string
}

func (e *SplitFaceError) Error() string {
	return fmt.Sprintf("cannot split face %d at (%d, %d): %s", e.Face, e.U, e.V, e.Reason)
}

func (e *SplitFaceError) Unwrap() error { return ErrValidation }

// SplitEdgeError indicates an invalid edge split parameter.
//
// Unwraps to ErrValidation.
type SplitEdgeError struct {
	U, V int
	T    float64
}

func (e *SplitEdgeError) Error() string {
	return fmt.Sprintf("cannot split edge (%d, %d): parameter %v is not in (0, 1)", e.U, e.V, e.T)
}

func (e *SplitEdgeError) Unwrap() error { return ErrValidation }

// KeyInUseError indicates an explicit key that is already taken by another
// record of the same kind.
//
// Unwraps to ErrValidation.
type KeyInUseError struct {
	Kind string
	Key  int
}

func (e *KeyInUseError) Error() string {
	return fmt.Sprintf("%s key %d is already in use", e.Kind, e.Key)
}

func (e *KeyInUseError) Unwrap() error { return ErrValidation }
