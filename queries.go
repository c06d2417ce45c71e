package meshgo

import "slices"

// HasVertex reports whether a vertex key exists.
func (m *Mesh) HasVertex(key int) bool {
	_, ok := m.vertex[key]
	return ok
}

// HasFace reports whether a face key exists.
func (m *Mesh) HasFace(key int) bool {
	_, ok := m.face[key]
	return ok
}

// HasEdge reports whether two vertices appear consecutively in at least one
// face, in either direction.
func (m *Mesh) HasEdge(u, v int) bool {
	_, ok := m.halfedge[u][v]
	return ok
}

// NumberOfVertices returns the vertex count.
func (m *Mesh) NumberOfVertices() int { return len(m.vertex) }

// NumberOfFaces returns the face count.
func (m *Mesh) NumberOfFaces() int { return len(m.face) }

// NumberOfEdges returns the count of undirected edges.
func (m *Mesh) NumberOfEdges() int {
	n := 0
	for _, nbrs := range m.halfedge {
		n += len(nbrs)
	}
	return n / 2
}

// EulerCharacteristic returns V - E + F.
func (m *Mesh) EulerCharacteristic() int {
	return m.NumberOfVertices() - m.NumberOfEdges() + m.NumberOfFaces()
}

// VertexKeys returns all vertex keys in ascending order.
func (m *Mesh) VertexKeys() []int {
	keys := make([]int, 0, len(m.vertex))
	for key := range m.vertex {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// FaceKeys returns all face keys in ascending order.
func (m *Mesh) FaceKeys() []int {
	keys := make([]int, 0, len(m.face))
	for key := range m.face {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Edges returns every undirected edge once, as vertex key pairs with the
// smaller key first, sorted lexicographically.
func (m *Mesh) Edges() [][2]int {
	edges := make([][2]int, 0, m.NumberOfEdges())
	for u, nbrs := range m.halfedge {
		for v := range nbrs {
			if u < v {
				edges = append(edges, [2]int{u, v})
			}
		}
	}
	slices.SortFunc(edges, func(a, b [2]int) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}
		return a[1] - b[1]
	})
	return edges
}

// FaceVertices returns a copy of the face's cyclic vertex key sequence.
func (m *Mesh) FaceVertices(face int) ([]int, error) {
	vs, ok := m.face[face]
	if !ok {
		return nil, &FaceNotFoundError{Face: face}
	}
	return slices.Clone(vs), nil
}

// FaceDegree returns the number of vertices of a face.
func (m *Mesh) FaceDegree(face int) (int, error) {
	vs, ok := m.face[face]
	if !ok {
		return 0, &FaceNotFoundError{Face: face}
	}
	return len(vs), nil
}

// FaceVertexDescendant returns the vertex immediately following the given
// vertex in the face's cyclic order.
func (m *Mesh) FaceVertexDescendant(face, vertex int) (int, error) {
	vs, ok := m.face[face]
	if !ok {
		return 0, &FaceNotFoundError{Face: face}
	}
	i := slices.Index(vs, vertex)
	if i < 0 {
		return 0, &NotOnFaceError{Face: face, Vertex: vertex}
	}
	return vs[(i+1)%len(vs)], nil
}

// FaceVertexAncestor returns the vertex immediately preceding the given
// vertex in the face's cyclic order.
func (m *Mesh) FaceVertexAncestor(face, vertex int) (int, error) {
	vs, ok := m.face[face]
	if !ok {
		return 0, &FaceNotFoundError{Face: face}
	}
	i := slices.Index(vs, vertex)
	if i < 0 {
		return 0, &NotOnFaceError{Face: face, Vertex: vertex}
	}
	return vs[(i-1+len(vs))%len(vs)], nil
}

// FaceCentroid returns the centroid of the face's vertices.
func (m *Mesh) FaceCentroid(face int) (Point, error) {
	vs, ok := m.face[face]
	if !ok {
		return Point{}, &FaceNotFoundError{Face: face}
	}
	points := make([]Point, len(vs))
	for i, v := range vs {
		points[i] = m.vertex[v]
	}
	return Centroid(points), nil
}

// EdgeFaces returns the keys of the faces incident to the undirected edge
// (u, v): two for an interior edge, one for a boundary edge.
func (m *Mesh) EdgeFaces(u, v int) ([]int, error) {
	if !m.HasVertex(u) {
		return nil, &VertexNotFoundError{Vertex: u}
	}
	if !m.HasVertex(v) {
		return nil, &VertexNotFoundError{Vertex: v}
	}
	if !m.HasEdge(u, v) {
		return nil, &EdgeNotFoundError{U: u, V: v}
	}
	var faces []int
	if f := m.halfedge[u][v]; f != boundary {
		faces = append(faces, f)
	}
	if f := m.halfedge[v][u]; f != boundary {
		faces = append(faces, f)
	}
	return faces, nil
}

// EdgeMidpoint returns the midpoint of the edge (u, v).
func (m *Mesh) EdgeMidpoint(u, v int) (Point, error) {
	return m.EdgePoint(u, v, 0.5)
}

// EdgePoint returns the point at parameter t along the edge from u to v.
func (m *Mesh) EdgePoint(u, v int, t float64) (Point, error) {
	pu, err := m.Vertex(u)
	if err != nil {
		return Point{}, err
	}
	pv, err := m.Vertex(v)
	if err != nil {
		return Point{}, err
	}
	if !m.HasEdge(u, v) {
		return Point{}, &EdgeNotFoundError{U: u, V: v}
	}
	return pu.Lerp(pv, t), nil
}

// VertexNeighbors returns the keys of the vertices sharing an edge with the
// given vertex, in ascending order.
func (m *Mesh) VertexNeighbors(vertex int) []int {
	nbrs := make([]int, 0, len(m.halfedge[vertex]))
	for v := range m.halfedge[vertex] {
		nbrs = append(nbrs, v)
	}
	slices.Sort(nbrs)
	return nbrs
}

// VertexDegree returns the number of edges at a vertex.
func (m *Mesh) VertexDegree(vertex int) int {
	return len(m.halfedge[vertex])
}

// VertexFaces returns the keys of the faces containing the given vertex, in
// ascending order.
func (m *Mesh) VertexFaces(vertex int) []int {
	return m.FacesContaining(vertex).Keys()
}

// FacesContaining returns the set of face keys containing the given vertex.
func (m *Mesh) FacesContaining(vertex int) *KeySet {
	set := NewKeySet()
	// Every face containing the vertex traverses exactly one directed edge
	// leaving it.
	for _, f := range m.halfedge[vertex] {
		if f != boundary {
			set.Add(f)
		}
	}
	return set
}

// IsVertexOnBoundary reports whether any edge at the vertex is a boundary
// edge.
func (m *Mesh) IsVertexOnBoundary(vertex int) bool {
	for _, f := range m.halfedge[vertex] {
		if f == boundary {
			return true
		}
	}
	// A vertex can sit on the boundary with all its outgoing half-edges
	// claimed, when the boundary markers point at it instead.
	for v := range m.halfedge[vertex] {
		if m.halfedge[v][vertex] == boundary {
			return true
		}
	}
	return false
}

// IsEdgeOnBoundary reports whether the undirected edge (u, v) has a face on
// one side only.
func (m *Mesh) IsEdgeOnBoundary(u, v int) bool {
	if !m.HasEdge(u, v) {
		return false
	}
	return m.halfedge[u][v] == boundary || m.halfedge[v][u] == boundary
}

// VerticesOnBoundary returns the set of vertex keys that lie on a boundary
// edge.
func (m *Mesh) VerticesOnBoundary() *KeySet {
	set := NewKeySet()
	for u, nbrs := range m.halfedge {
		for v, f := range nbrs {
			if f == boundary {
				set.Add(u)
				set.Add(v)
			}
		}
	}
	return set
}
