package meshgo

import (
	"fmt"
	"maps"
	"slices"
)

// boundary marks a directed half-edge that is not traversed by any face.
// The reverse of every face edge is registered with this value until a
// neighboring face claims it.
const boundary = -1

// Mesh is a half-edge polygonal mesh.
//
// Vertices map keys to positions, faces map keys to cyclic vertex key
// sequences, and the half-edge map records for every directed vertex pair
// u->v the face that traverses it (or the boundary marker). Keys are
// allocated from monotonically increasing counters, so a key is never
// silently reused after a delete.
//
// A Mesh is owned by a single writer; see the package documentation for the
// consistency model.
type Mesh struct {
	name string

	vertex   map[int]Point
	face     map[int][]int
	halfedge map[int]map[int]int

	maxVertexKey int
	maxFaceKey   int

	logger  *Logger
	metrics MetricsCollector
}

// NewMesh creates an empty mesh.
func NewMesh(optFns ...Option) *Mesh {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Mesh{
		name:         opts.name,
		vertex:       make(map[int]Point),
		face:         make(map[int][]int),
		halfedge:     make(map[int]map[int]int),
		maxVertexKey: -1,
		maxFaceKey:   -1,
		logger:       opts.logger,
		metrics:      opts.metrics,
	}
}

// FromVerticesAndFaces creates a mesh from a vertex list and a list of
// cyclic vertex index sequences. Vertices get keys 0..len(vertices)-1 and
// faces get keys 0..len(faces)-1, in input order.
func FromVerticesAndFaces(vertices []Point, faces [][]int, optFns ...Option) (*Mesh, error) {
	m := NewMesh(optFns...)
	for _, p := range vertices {
		m.AddVertex(p)
	}
	for _, vs := range faces {
		if _, err := m.AddFace(vs); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Name returns the mesh name.
func (m *Mesh) Name() string { return m.name }

// Copy returns a deep copy of the mesh. The copy shares the logger and
// metrics collector with the original.
func (m *Mesh) Copy() *Mesh {
	c := &Mesh{
		name:         m.name,
		vertex:       maps.Clone(m.vertex),
		face:         make(map[int][]int, len(m.face)),
		halfedge:     make(map[int]map[int]int, len(m.halfedge)),
		maxVertexKey: m.maxVertexKey,
		maxFaceKey:   m.maxFaceKey,
		logger:       m.logger,
		metrics:      m.metrics,
	}
	for key, vs := range m.face {
		c.face[key] = slices.Clone(vs)
	}
	for u, nbrs := range m.halfedge {
		c.halfedge[u] = maps.Clone(nbrs)
	}
	return c
}

// Summary returns a short human-readable description of the mesh.
func (m *Mesh) Summary() string {
	return fmt.Sprintf("%s: %d vertices, %d edges, %d faces",
		m.name, m.NumberOfVertices(), m.NumberOfEdges(), m.NumberOfFaces())
}

// AddVertex adds a vertex at the given position and returns its key, drawn
// from the mesh's monotonic key counter.
func (m *Mesh) AddVertex(p Point) int {
	key := m.maxVertexKey + 1
	m.setVertex(key, p)
	return key
}

// SetVertex adds a vertex with an explicit key, or moves the vertex if the
// key already exists. The key counter is advanced past explicit keys so that
// allocated keys never collide with them.
func (m *Mesh) SetVertex(key int, p Point) {
	m.setVertex(key, p)
}

func (m *Mesh) setVertex(key int, p Point) {
	if key > m.maxVertexKey {
		m.maxVertexKey = key
	}
	m.vertex[key] = p
	if _, ok := m.halfedge[key]; !ok {
		m.halfedge[key] = make(map[int]int)
	}
}

// Vertex returns the position of a vertex.
func (m *Mesh) Vertex(key int) (Point, error) {
	p, ok := m.vertex[key]
	if !ok {
		return Point{}, &VertexNotFoundError{Vertex: key}
	}
	return p, nil
}

// AddFace adds a face from a cyclic vertex key sequence and returns the face
// key, drawn from the mesh's monotonic key counter.
//
// The sequence must have at least three vertices, contain no repeats, and
// reference existing vertices only. A sequence whose directed half-edge is
// already claimed by another face is rejected: the store does not represent
// non-manifold topology.
func (m *Mesh) AddFace(vertices []int) (int, error) {
	key := m.maxFaceKey + 1
	return m.addFace(key, vertices)
}

// AddFaceWithKey adds a face with an explicit key. The key must be unused.
func (m *Mesh) AddFaceWithKey(key int, vertices []int) (int, error) {
	if _, ok := m.face[key]; ok {
		return 0, &KeyInUseError{Kind: "face", Key: key}
	}
	return m.addFace(key, vertices)
}

func (m *Mesh) addFace(key int, vertices []int) (int, error) {
	if err := m.validFace(vertices); err != nil {
		return 0, err
	}

	if key > m.maxFaceKey {
		m.maxFaceKey = key
	}
	m.face[key] = slices.Clone(vertices)
	m.claimHalfedges(key)
	return key, nil
}

// validFace checks the face preconditions without mutating the store.
func (m *Mesh) validFace(vertices []int) error {
	if len(vertices) < 3 {
		return &InvalidFaceError{Vertices: slices.Clone(vertices), Reason: "fewer than three vertices"}
	}
	seen := make(map[int]struct{}, len(vertices))
	for _, v := range vertices {
		if _, ok := m.vertex[v]; !ok {
			return &VertexNotFoundError{Vertex: v}
		}
		if _, dup := seen[v]; dup {
			return &InvalidFaceError{Vertices: slices.Clone(vertices), Reason: fmt.Sprintf("vertex %d repeats", v)}
		}
		seen[v] = struct{}{}
	}
	for i, u := range vertices {
		v := vertices[(i+1)%len(vertices)]
		if f, ok := m.halfedge[u][v]; ok && f != boundary {
			return &InvalidFaceError{
				Vertices: slices.Clone(vertices),
				Reason:   fmt.Sprintf("half-edge %d->%d is already claimed by face %d", u, v, f),
			}
		}
	}
	return nil
}

// DeleteFace removes a face. Half-edges that end up unused on both sides are
// dropped from the adjacency map; the face's vertices are kept.
func (m *Mesh) DeleteFace(key int) error {
	if _, ok := m.face[key]; !ok {
		return &FaceNotFoundError{Face: key}
	}
	m.releaseHalfedges(key)
	delete(m.face, key)
	return nil
}

// DeleteVertex removes a vertex together with every face incident to it.
func (m *Mesh) DeleteVertex(key int) error {
	if _, ok := m.vertex[key]; !ok {
		return &VertexNotFoundError{Vertex: key}
	}
	for _, f := range m.VertexFaces(key) {
		m.releaseHalfedges(f)
		delete(m.face, f)
	}
	// The incident faces are gone, so only boundary markers can remain
	// around the vertex.
	for _, u := range m.VertexNeighbors(key) {
		delete(m.halfedge[u], key)
		delete(m.halfedge[key], u)
	}
	delete(m.halfedge, key)
	delete(m.vertex, key)
	return nil
}

// ReplaceFace swaps a face's vertex sequence wholesale, keeping its key.
// The new sequence is validated like AddFace.
func (m *Mesh) ReplaceFace(key int, vertices []int) error {
	if _, ok := m.face[key]; !ok {
		return &FaceNotFoundError{Face: key}
	}
	m.releaseHalfedges(key)
	if err := m.validFace(vertices); err != nil {
		// Roll the half-edge claims back; the store must be unchanged on error.
		m.claimHalfedges(key)
		return err
	}
	m.face[key] = slices.Clone(vertices)
	m.claimHalfedges(key)
	return nil
}

// claimHalfedges registers every directed edge of a face in the half-edge
// map and pads the reverse direction with a boundary marker when no
// neighboring face holds it yet.
func (m *Mesh) claimHalfedges(key int) {
	vs := m.face[key]
	for i, u := range vs {
		v := vs[(i+1)%len(vs)]
		m.halfedge[u][v] = key
		if _, ok := m.halfedge[v][u]; !ok {
			m.halfedge[v][u] = boundary
		}
	}
}

// releaseHalfedges is the inverse of claimHalfedges: the face's directed
// edges fall back to boundary markers, and edges that are boundary on both
// sides disappear entirely.
func (m *Mesh) releaseHalfedges(key int) {
	vs := m.face[key]
	for i, u := range vs {
		v := vs[(i+1)%len(vs)]
		if f, ok := m.halfedge[u][v]; !ok || f != key {
			// A permissive edit (vertex substitution) may have produced a
			// sequence whose directed edge is owned elsewhere; leave it.
			continue
		}
		m.halfedge[u][v] = boundary
		if m.halfedge[v][u] == boundary {
			delete(m.halfedge[u], v)
			delete(m.halfedge[v], u)
		}
	}
}
