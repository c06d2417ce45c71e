package meshgo

import (
	"fmt"
	"time"
)

// SubdivisionScheme selects the refinement rule used by Subdivide.
type SubdivisionScheme int

const (
	// SchemeQuad splits every n-sided face into n quads around the face
	// centroid, adding one vertex per edge and one per face.
	SchemeQuad SubdivisionScheme = iota

	// SchemeTri fans every n-sided face into n triangles around the face
	// centroid, adding one vertex per face.
	SchemeTri
)

// String returns a string representation of the SubdivisionScheme.
func (s SubdivisionScheme) String() string {
	switch s {
	case SchemeQuad:
		return "Quad"
	case SchemeTri:
		return "Tri"
	default:
		return "Unknown"
	}
}

// Subdivide returns a new mesh refined by one pass of the given scheme. The
// receiver is left untouched.
//
// Both schemes produce one face per corner of every original face. The quad
// scheme adds a vertex on every edge and in every face, the tri scheme only
// in every face. Original vertices keep their keys in the result.
func (m *Mesh) Subdivide(scheme SubdivisionScheme) (*Mesh, error) {
	start := time.Now()
	subd, err := m.subdivide(scheme)
	m.metrics.RecordSubdivide(scheme, time.Since(start), err)
	if err != nil {
		m.logger.LogSubdivide(scheme, 0, 0, err)
		return nil, err
	}
	m.logger.LogSubdivide(scheme, subd.NumberOfVertices(), subd.NumberOfFaces(), nil)
	return subd, nil
}

func (m *Mesh) subdivide(scheme SubdivisionScheme) (*Mesh, error) {
	switch scheme {
	case SchemeQuad:
		return m.subdivideQuad()
	case SchemeTri:
		return m.subdivideTri()
	default:
		return nil, fmt.Errorf("%w: unknown subdivision scheme %d", ErrValidation, scheme)
	}
}

func (m *Mesh) subdivideQuad() (*Mesh, error) {
	subd := m.emptyLike()

	for _, key := range m.VertexKeys() {
		subd.SetVertex(key, m.vertex[key])
	}

	edgeVertex := make(map[[2]int]int, m.NumberOfEdges())
	for _, e := range m.Edges() {
		mid, err := m.EdgeMidpoint(e[0], e[1])
		if err != nil {
			return nil, err
		}
		edgeVertex[e] = subd.AddVertex(mid)
	}

	for _, f := range m.FaceKeys() {
		c, err := m.FaceCentroid(f)
		if err != nil {
			return nil, err
		}
		center := subd.AddVertex(c)

		vs := m.face[f]
		n := len(vs)
		for i, v := range vs {
			prev := vs[(i-1+n)%n]
			next := vs[(i+1)%n]
			quad := []int{v, edgeVertex[edgeKey(v, next)], center, edgeVertex[edgeKey(prev, v)]}
			if _, err := subd.AddFace(quad); err != nil {
				return nil, err
			}
		}
	}
	return subd, nil
}

func (m *Mesh) subdivideTri() (*Mesh, error) {
	subd := m.emptyLike()

	for _, key := range m.VertexKeys() {
		subd.SetVertex(key, m.vertex[key])
	}

	for _, f := range m.FaceKeys() {
		c, err := m.FaceCentroid(f)
		if err != nil {
			return nil, err
		}
		center := subd.AddVertex(c)

		vs := m.face[f]
		n := len(vs)
		for i, v := range vs {
			tri := []int{v, vs[(i+1)%n], center}
			if _, err := subd.AddFace(tri); err != nil {
				return nil, err
			}
		}
	}
	return subd, nil
}

// emptyLike creates an empty mesh carrying over the receiver's name, logger
// and metrics collector.
func (m *Mesh) emptyLike() *Mesh {
	return NewMesh(
		WithName(m.name),
		WithLogger(m.logger),
		WithMetricsCollector(m.metrics),
	)
}

// edgeKey normalizes an undirected edge to its canonical (smaller key first)
// form.
func edgeKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}
