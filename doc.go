// Package meshgo provides an embedded half-edge mesh data structure for Go.
//
// Meshgo stores polygonal meshes as vertices, cyclic face loops and a derived
// half-edge adjacency map, and exposes topology edit operations that keep the
// structure consistent:
//
//   - Vertex insertion on an edge (both incident faces are respliced)
//   - Vertex substitution across faces
//   - Face splitting along a diagonal
//   - Parametric edge splitting
//   - Quad-to-triangle conversion and mesh subdivision (quad and tri schemes)
//   - Structured logging (log/slog) and pluggable operation metrics
//   - Roaring-bitmap key sets for boundary and selection queries
//
// # Quick Start
//
// Build a mesh from raw vertex and face lists:
//
//	mesh, err := meshgo.FromVerticesAndFaces(
//	    []meshgo.Point{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
//	    [][]int{{0, 1, 2, 3}},
//	)
//	if err != nil {
//	    panic(err)
//	}
//
// Split the quad along its diagonal:
//
//	left, right, err := mesh.SplitFace(0, 0, 2)
//
// Insert a vertex on the shared diagonal:
//
//	key, err := mesh.InsertVertexOnEdge(0, 2)
//
// # Consistency Model
//
// A mesh is owned by a single writer: edit operations mutate the store in
// place and are not safe to run concurrently with other mutators. Every
// operation validates all of its preconditions before touching the store, so
// a failed call leaves the mesh unchanged. Read-only queries are safe to run
// concurrently with each other.
//
// # Errors
//
// All errors unwrap to one of two kinds: ErrNotFound (a referenced vertex,
// face or edge does not exist) and ErrValidation (an operation-specific
// precondition was violated). Use errors.Is to classify and errors.As to
// recover the offending keys.
package meshgo
