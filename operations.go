package meshgo

import (
	"slices"
	"time"
)

// InsertVertexOnEdge inserts a new vertex on the edge between u and v. The
// vertex is placed at the edge midpoint and gets a freshly allocated key,
// which is returned.
//
// Every face incident to the edge (one for a boundary edge, two otherwise)
// has the vertex spliced into its cyclic sequence immediately between u and
// v, preserving the face's winding direction.
func (m *Mesh) InsertVertexOnEdge(u, v int) (int, error) {
	start := time.Now()
	key, err := m.insertVertexOnEdge(u, v, 0, false, 0.5)
	m.metrics.RecordInsertVertexOnEdge(time.Since(start), err)
	m.logger.LogInsertVertexOnEdge(u, v, key, err)
	return key, err
}

// InsertVertexOnEdgeWithKey splices an explicitly keyed vertex into the edge
// between u and v. If the key names an existing vertex it is spliced as-is;
// otherwise a vertex with that key is created at the edge midpoint.
//
// An existing key is not checked against the incident faces: splicing a
// vertex into a face that already contains it produces a degenerate cycle,
// like SubstituteVertexInFaces. Guarding against that is the caller's
// responsibility; Validate reports the damage.
func (m *Mesh) InsertVertexOnEdgeWithKey(u, v, key int) (int, error) {
	start := time.Now()
	key, err := m.insertVertexOnEdge(u, v, key, true, 0.5)
	m.metrics.RecordInsertVertexOnEdge(time.Since(start), err)
	m.logger.LogInsertVertexOnEdge(u, v, key, err)
	return key, err
}

// SplitEdge splits the edge between u and v at parameter t, measured from u.
// The new vertex gets a freshly allocated key, which is returned.
func (m *Mesh) SplitEdge(u, v int, t float64) (int, error) {
	start := time.Now()
	key, err := m.splitEdge(u, v, t)
	m.metrics.RecordSplitEdge(time.Since(start), err)
	m.logger.LogSplitEdge(u, v, t, key, err)
	return key, err
}

func (m *Mesh) splitEdge(u, v int, t float64) (int, error) {
	if t <= 0 || t >= 1 {
		return 0, &SplitEdgeError{U: u, V: v, T: t}
	}
	return m.insertVertexOnEdge(u, v, 0, false, t)
}

func (m *Mesh) insertVertexOnEdge(u, v, key int, hasKey bool, t float64) (int, error) {
	pu, ok := m.vertex[u]
	if !ok {
		return 0, &VertexNotFoundError{Vertex: u}
	}
	pv, ok := m.vertex[v]
	if !ok {
		return 0, &VertexNotFoundError{Vertex: v}
	}
	if !m.HasEdge(u, v) {
		return 0, &EdgeNotFoundError{U: u, V: v}
	}

	w := key
	switch {
	case !hasKey:
		w = m.AddVertex(pu.Lerp(pv, t))
	case !m.HasVertex(key):
		m.SetVertex(key, pu.Lerp(pv, t))
	}

	// Resolve both incident faces before the first splice: splicing a
	// boundary edge's only face drops the now unused half-edge pair from the
	// adjacency map, so the reverse direction must not be looked up after it.
	splices := [2]struct{ face, before int }{
		{m.halfedge[u][v], v},
		{m.halfedge[v][u], u},
	}
	for _, sp := range splices {
		if sp.face == boundary {
			continue
		}
		// Insert immediately before the far endpoint, preserving the face's
		// own winding.
		seq := slices.Clone(m.face[sp.face])
		seq = slices.Insert(seq, slices.Index(seq, sp.before), w)
		m.releaseHalfedges(sp.face)
		m.face[sp.face] = seq
		m.claimHalfedges(sp.face)
	}
	return w, nil
}

// SubstituteVertexInFaces replaces every occurrence of the vertex old with
// the vertex new in the given faces. When no faces are given, every face
// containing old is rewritten. Faces that do not contain old are skipped, so
// callers may pass a superset of candidates.
//
// The vertex new must already exist; this operation never creates vertices.
// The result is not checked for degeneracy (a face may end up listing new
// twice): guarding against that is the caller's responsibility.
func (m *Mesh) SubstituteVertexInFaces(old, new int, faces ...int) error {
	start := time.Now()
	n, err := m.substituteVertexInFaces(old, new, faces)
	m.metrics.RecordSubstituteVertex(n, time.Since(start), err)
	m.logger.LogSubstituteVertex(old, new, n, err)
	return err
}

func (m *Mesh) substituteVertexInFaces(old, new int, faces []int) (int, error) {
	if !m.HasVertex(new) {
		return 0, &VertexNotFoundError{Vertex: new}
	}

	targets := faces
	if len(targets) == 0 {
		targets = m.FacesContaining(old).Keys()
	} else {
		for _, f := range targets {
			if !m.HasFace(f) {
				return 0, &FaceNotFoundError{Face: f}
			}
		}
	}

	count := 0
	for _, f := range targets {
		if !slices.Contains(m.face[f], old) {
			continue
		}
		seq := slices.Clone(m.face[f])
		for i, x := range seq {
			if x == old {
				seq[i] = new
			}
		}
		m.releaseHalfedges(f)
		m.face[f] = seq
		m.claimHalfedges(f)
		count++
	}
	return count, nil
}

// SplitFace splits a face into two along the diagonal between the vertices u
// and v, which must both lie on the face and must not be adjacent on its
// boundary. The original face is deleted and the keys of the two new faces
// are returned: first the one containing the run u..v, then the one
// containing the run v..u. Both preserve the original winding.
func (m *Mesh) SplitFace(face, u, v int) (int, int, error) {
	start := time.Now()
	left, right, err := m.splitFace(face, u, v)
	m.metrics.RecordSplitFace(time.Since(start), err)
	m.logger.LogSplitFace(face, u, v, left, right, err)
	return left, right, err
}

func (m *Mesh) splitFace(face, u, v int) (int, int, error) {
	vs, ok := m.face[face]
	if !ok {
		return 0, 0, &FaceNotFoundError{Face: face}
	}
	i := slices.Index(vs, u)
	if i < 0 {
		return 0, 0, &SplitFaceError{Face: face, U: u, V: v, Reason: "the split vertices do not belong to the face"}
	}
	j := slices.Index(vs, v)
	if j < 0 {
		return 0, 0, &SplitFaceError{Face: face, U: u, V: v, Reason: "the split vertices do not belong to the face"}
	}
	if u == v {
		return 0, 0, &SplitFaceError{Face: face, U: u, V: v, Reason: "the split vertices are identical"}
	}
	n := len(vs)
	if (i+1)%n == j || (j+1)%n == i {
		return 0, 0, &SplitFaceError{Face: face, U: u, V: v, Reason: "the split vertices are neighbors on the face"}
	}
	if m.HasEdge(u, v) {
		// The diagonal already exists in a different face; splitting would
		// make the edge non-manifold.
		return 0, 0, &SplitFaceError{Face: face, U: u, V: v, Reason: "the split vertices are already connected by an edge"}
	}

	run := func(from, to int) []int {
		out := make([]int, 0, n)
		for k := from; ; k = (k + 1) % n {
			out = append(out, vs[k])
			if k == to {
				return out
			}
		}
	}
	uv := run(i, j)
	vu := run(j, i)

	m.releaseHalfedges(face)
	delete(m.face, face)

	left, err := m.AddFace(uv)
	if err != nil {
		return 0, 0, err
	}
	right, err := m.AddFace(vu)
	if err != nil {
		return 0, 0, err
	}
	return left, right, nil
}

// QuadsToTriangles splits every four-sided face into two triangles along the
// diagonal from its first to its third vertex. Faces with any other vertex
// count are left untouched.
//
// The batch stops at the first quad whose diagonal is rejected by SplitFace
// and returns its error. Quads split before that point stay split; the mesh
// remains consistent, the conversion is merely incomplete.
func (m *Mesh) QuadsToTriangles() error {
	for _, f := range m.FaceKeys() {
		vs := m.face[f]
		if len(vs) != 4 {
			continue
		}
		if _, _, err := m.SplitFace(f, vs[0], vs[2]); err != nil {
			return err
		}
	}
	return nil
}
