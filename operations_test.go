package meshgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/meshgo/testutil"
)

func gridMesh(t *testing.T, nx, ny int) *Mesh {
	t.Helper()
	rawVertices, faces := testutil.Grid(nx, ny)
	vertices := make([]Point, len(rawVertices))
	for i, v := range rawVertices {
		vertices[i] = Point{X: v[0], Y: v[1], Z: v[2]}
	}
	m, err := FromVerticesAndFaces(vertices, faces, WithLogger(NoopLogger()))
	require.NoError(t, err)
	return m
}

func countOf(vs []int, key int) int {
	n := 0
	for _, v := range vs {
		if v == key {
			n++
		}
	}
	return n
}

func TestInsertVertexOnEdge(t *testing.T) {
	t.Run("SharedEdge", func(t *testing.T) {
		m := mesh0(t)

		key, err := m.InsertVertexOnEdge(0, 1)
		require.NoError(t, err)
		assert.Equal(t, 5, key)

		f0, err := m.FaceVertices(0)
		require.NoError(t, err)
		f1, err := m.FaceVertices(1)
		require.NoError(t, err)
		assert.Len(t, f0, 4)
		assert.Len(t, f1, 4)

		d, err := m.FaceVertexDescendant(0, 0)
		require.NoError(t, err)
		assert.Equal(t, 5, d)

		d, err = m.FaceVertexDescendant(1, 1)
		require.NoError(t, err)
		assert.Equal(t, 5, d)

		// The midpoint of (1,0,0) and (1,2,0).
		p, err := m.Vertex(5)
		require.NoError(t, err)
		assert.Equal(t, Point{X: 1, Y: 1}, p)

		// The old edge is replaced by the two half-segments.
		assert.False(t, m.HasEdge(0, 1))
		assert.True(t, m.HasEdge(0, 5))
		assert.True(t, m.HasEdge(5, 1))
		assert.NoError(t, m.Validate())
	})

	t.Run("ExistingVertexByKey", func(t *testing.T) {
		m := mesh0(t)

		_, err := m.InsertVertexOnEdge(0, 1)
		require.NoError(t, err)

		key, err := m.InsertVertexOnEdgeWithKey(0, 2, 4)
		require.NoError(t, err)
		assert.Equal(t, 4, key)

		f0, err := m.FaceVertices(0)
		require.NoError(t, err)
		assert.Len(t, f0, 5)

		d, err := m.FaceVertexDescendant(0, 2)
		require.NoError(t, err)
		assert.Equal(t, 4, d)

		// Vertex 4 existed already; it is spliced, not moved.
		p, err := m.Vertex(4)
		require.NoError(t, err)
		assert.Equal(t, Point{}, p)
		assert.Equal(t, 6, m.NumberOfVertices())
		assert.NoError(t, m.Validate())
	})

	t.Run("FreshVertexByKey", func(t *testing.T) {
		m := mesh0(t)

		key, err := m.InsertVertexOnEdgeWithKey(1, 2, 40)
		require.NoError(t, err)
		assert.Equal(t, 40, key)

		p, err := m.Vertex(40)
		require.NoError(t, err)
		assert.Equal(t, Point{X: 0.5, Y: 1.5}, p)

		// The counter continues past the explicit key.
		assert.Equal(t, 41, m.AddVertex(Point{}))
	})

	t.Run("BoundaryEdge", func(t *testing.T) {
		m := mesh0(t)

		key, err := m.InsertVertexOnEdge(1, 2)
		require.NoError(t, err)

		// Only the one incident face is respliced, exactly once.
		f0, err := m.FaceVertices(0)
		require.NoError(t, err)
		f1, err := m.FaceVertices(1)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, key, 2}, f0)
		assert.Equal(t, []int{0, 3, 1}, f1)

		assert.False(t, m.HasEdge(1, 2))
		assert.True(t, m.IsEdgeOnBoundary(1, key))
		assert.True(t, m.IsEdgeOnBoundary(key, 2))
		assert.NoError(t, m.Validate())
	})

	t.Run("BoundaryEdgeOnGrid", func(t *testing.T) {
		m := gridMesh(t, 3, 3)

		// Edge between v(3,0)=12 and v(3,1)=13 lies on the right rim, with a
		// single incident face.
		faces, err := m.EdgeFaces(12, 13)
		require.NoError(t, err)
		require.Len(t, faces, 1)

		key, err := m.InsertVertexOnEdge(12, 13)
		require.NoError(t, err)

		vs, err := m.FaceVertices(faces[0])
		require.NoError(t, err)
		assert.Equal(t, 1, countOf(vs, key))

		for _, f := range m.FaceKeys() {
			if f == faces[0] {
				continue
			}
			d, err := m.FaceDegree(f)
			require.NoError(t, err)
			assert.Equal(t, 4, d)
		}
		assert.NoError(t, m.Validate())
	})

	t.Run("Errors", func(t *testing.T) {
		m := mesh0(t)

		_, err := m.InsertVertexOnEdge(0, 9)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = m.InsertVertexOnEdge(9, 0)
		assert.ErrorIs(t, err, ErrNotFound)

		// Vertices 2 and 3 both exist but share no edge.
		_, err = m.InsertVertexOnEdge(2, 3)
		assert.ErrorIs(t, err, ErrNotFound)

		var enf *EdgeNotFoundError
		require.ErrorAs(t, err, &enf)
		assert.Equal(t, 2, enf.U)
		assert.Equal(t, 3, enf.V)

		// Nothing changed.
		assert.Equal(t, 5, m.NumberOfVertices())
		assert.NoError(t, m.Validate())
	})

	t.Run("InteriorEdgeOnGrid", func(t *testing.T) {
		m := gridMesh(t, 3, 3)

		// Edge between v(1,1)=5 and v(2,1)=9 is interior to two faces.
		faces, err := m.EdgeFaces(5, 9)
		require.NoError(t, err)
		require.Len(t, faces, 2)

		before := make(map[int]int, 2)
		for _, f := range faces {
			d, err := m.FaceDegree(f)
			require.NoError(t, err)
			before[f] = d
		}

		key, err := m.InsertVertexOnEdge(5, 9)
		require.NoError(t, err)

		for _, f := range faces {
			d, err := m.FaceDegree(f)
			require.NoError(t, err)
			assert.Equal(t, before[f]+1, d)

			vs, err := m.FaceVertices(f)
			require.NoError(t, err)
			assert.Contains(t, vs, key)
		}
		assert.NoError(t, m.Validate())
	})
}

func TestSplitEdge(t *testing.T) {
	t.Run("Parametric", func(t *testing.T) {
		m := meshQuads(t)

		key, err := m.SplitEdge(0, 1, 0.25)
		require.NoError(t, err)

		p, err := m.Vertex(key)
		require.NoError(t, err)
		assert.Equal(t, Point{X: 0.25}, p)
		assert.NoError(t, m.Validate())
	})

	t.Run("DirectionMatters", func(t *testing.T) {
		m := meshQuads(t)

		key, err := m.SplitEdge(1, 0, 0.25)
		require.NoError(t, err)

		p, err := m.Vertex(key)
		require.NoError(t, err)
		assert.Equal(t, Point{X: 0.75}, p)
	})

	t.Run("InvalidParameter", func(t *testing.T) {
		m := meshQuads(t)

		for _, tt := range []float64{0, 1, -0.5, 2} {
			_, err := m.SplitEdge(0, 1, tt)
			assert.ErrorIs(t, err, ErrValidation, "t=%v", tt)
		}

		var see *SplitEdgeError
		_, err := m.SplitEdge(0, 1, 2)
		require.ErrorAs(t, err, &see)
		assert.Equal(t, 2.0, see.T)
	})
}

func TestSubstituteVertexInFaces(t *testing.T) {
	t.Run("AllFaces", func(t *testing.T) {
		m := mesh0(t)

		require.NoError(t, m.SubstituteVertexInFaces(0, 4))

		f0, err := m.FaceVertices(0)
		require.NoError(t, err)
		f1, err := m.FaceVertices(1)
		require.NoError(t, err)
		assert.Contains(t, f0, 4)
		assert.NotContains(t, f0, 0)
		assert.Contains(t, f1, 4)
		assert.NotContains(t, f1, 0)
	})

	t.Run("RestrictedToFaces", func(t *testing.T) {
		m := mesh0(t)
		require.NoError(t, m.SubstituteVertexInFaces(0, 4))

		require.NoError(t, m.SubstituteVertexInFaces(4, 0, 1))

		f0, err := m.FaceVertices(0)
		require.NoError(t, err)
		f1, err := m.FaceVertices(1)
		require.NoError(t, err)
		assert.Contains(t, f0, 4)
		assert.NotContains(t, f0, 0)
		assert.Contains(t, f1, 0)
		assert.NotContains(t, f1, 4)
	})

	t.Run("RoundTripRestoresMesh", func(t *testing.T) {
		m := gridMesh(t, 2, 2)
		want := make(map[int][]int)
		for _, f := range m.FaceKeys() {
			vs, err := m.FaceVertices(f)
			require.NoError(t, err)
			want[f] = vs
		}

		spare := m.AddVertex(Point{X: -1, Y: -1})
		require.NoError(t, m.SubstituteVertexInFaces(4, spare))
		require.NoError(t, m.SubstituteVertexInFaces(spare, 4))

		for f, vs := range want {
			got, err := m.FaceVertices(f)
			require.NoError(t, err)
			assert.Equal(t, vs, got)
		}
		assert.NoError(t, m.Validate())
	})

	t.Run("SupersetOfCandidates", func(t *testing.T) {
		m := mesh0(t)

		// Face 0 does not contain vertex 3; it is skipped, not an error.
		require.NoError(t, m.SubstituteVertexInFaces(3, 4, 0, 1))

		f0, err := m.FaceVertices(0)
		require.NoError(t, err)
		f1, err := m.FaceVertices(1)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2}, f0)
		assert.NotContains(t, f1, 3)
		assert.Contains(t, f1, 4)
	})

	t.Run("Errors", func(t *testing.T) {
		m := mesh0(t)

		err := m.SubstituteVertexInFaces(0, 9)
		assert.ErrorIs(t, err, ErrNotFound)

		err = m.SubstituteVertexInFaces(0, 4, 9)
		assert.ErrorIs(t, err, ErrNotFound)

		// Nothing changed.
		f0, err := m.FaceVertices(0)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2}, f0)
	})
}

func TestSplitFace(t *testing.T) {
	t.Run("Diagonal", func(t *testing.T) {
		m := meshQuads(t)

		left, right, err := m.SplitFace(0, 0, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, m.NumberOfFaces())
		assert.False(t, m.HasFace(0))

		l, err := m.FaceVertices(left)
		require.NoError(t, err)
		r, err := m.FaceVertices(right)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2}, l)
		assert.Equal(t, []int{2, 3, 0}, r)

		// The diagonal is shared by exactly the two new faces.
		faces, err := m.EdgeFaces(0, 2)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{left, right}, faces)
		assert.NoError(t, m.Validate())
	})

	t.Run("ReversedDiagonal", func(t *testing.T) {
		m := meshQuads(t)

		left, right, err := m.SplitFace(0, 2, 0)
		require.NoError(t, err)

		l, err := m.FaceVertices(left)
		require.NoError(t, err)
		r, err := m.FaceVertices(right)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3, 0}, l)
		assert.Equal(t, []int{0, 1, 2}, r)
		assert.NoError(t, m.Validate())
	})

	t.Run("Pentagon", func(t *testing.T) {
		m := mesh0(t)
		_, err := m.InsertVertexOnEdge(0, 1)
		require.NoError(t, err)
		_, err = m.InsertVertexOnEdgeWithKey(0, 2, 4)
		require.NoError(t, err)

		// Face 0 is now the pentagon [4 0 5 1 2].
		left, right, err := m.SplitFace(0, 5, 2)
		require.NoError(t, err)

		l, err := m.FaceVertices(left)
		require.NoError(t, err)
		r, err := m.FaceVertices(right)
		require.NoError(t, err)
		assert.Equal(t, []int{5, 1, 2}, l)
		assert.Equal(t, []int{2, 4, 0, 5}, r)
		assert.NoError(t, m.Validate())
	})

	t.Run("VertexNotOnFace", func(t *testing.T) {
		m := meshQuads(t)

		_, _, err := m.SplitFace(0, 0, 4)
		assert.ErrorIs(t, err, ErrValidation)

		var sfe *SplitFaceError
		require.ErrorAs(t, err, &sfe)
		assert.Equal(t, 0, sfe.Face)
		assert.Equal(t, 2, m.NumberOfFaces())
	})

	t.Run("AdjacentVertices", func(t *testing.T) {
		m := meshQuads(t)

		_, _, err := m.SplitFace(0, 0, 1)
		assert.ErrorIs(t, err, ErrValidation)

		// The wrap-around pair is adjacent too.
		_, _, err = m.SplitFace(0, 3, 0)
		assert.ErrorIs(t, err, ErrValidation)

		_, _, err = m.SplitFace(0, 0, 0)
		assert.ErrorIs(t, err, ErrValidation)

		assert.Equal(t, 2, m.NumberOfFaces())
		assert.NoError(t, m.Validate())
	})

	t.Run("ExistingDiagonalEdge", func(t *testing.T) {
		// The quad's diagonal (0, 2) is non-adjacent on the quad but already
		// an edge of the flap triangle [2 0 4]; splitting along it would make
		// that edge non-manifold.
		m, err := FromVerticesAndFaces(
			[]Point{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {0.5, 0.5, 1}},
			[][]int{{0, 1, 2, 3}, {2, 0, 4}},
			WithLogger(NoopLogger()),
		)
		require.NoError(t, err)

		_, _, err = m.SplitFace(0, 0, 2)
		assert.ErrorIs(t, err, ErrValidation)
		assert.True(t, m.HasFace(0))
		assert.NoError(t, m.Validate())
	})

	t.Run("FaceNotFound", func(t *testing.T) {
		m := meshQuads(t)
		_, _, err := m.SplitFace(9, 0, 2)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("QuadGridProperty", func(t *testing.T) {
		m := gridMesh(t, 4, 3)
		for _, f := range m.FaceKeys() {
			vs, err := m.FaceVertices(f)
			require.NoError(t, err)

			before := m.NumberOfFaces()
			_, _, err = m.SplitFace(f, vs[0], vs[2])
			require.NoError(t, err)
			assert.Equal(t, before+1, m.NumberOfFaces())
			assert.False(t, m.HasFace(f))
		}
		assert.NoError(t, m.Validate())
	})
}

func TestQuadsToTriangles(t *testing.T) {
	t.Run("Cube", func(t *testing.T) {
		m, err := FromPolyhedron(6, WithLogger(NoopLogger()))
		require.NoError(t, err)

		require.NoError(t, m.QuadsToTriangles())
		assert.Equal(t, 12, m.NumberOfFaces())
		assert.Equal(t, 18, m.NumberOfEdges())
		assert.Equal(t, 8, m.NumberOfVertices())
		assert.Equal(t, 2, m.EulerCharacteristic())

		for _, f := range m.FaceKeys() {
			d, err := m.FaceDegree(f)
			require.NoError(t, err)
			assert.Equal(t, 3, d)
		}
		assert.NoError(t, m.Validate())
	})

	t.Run("StopsAtBlockedDiagonal", func(t *testing.T) {
		// The second quad's diagonal (1, 5) is already an edge of the flap
		// triangle, so the batch errors there; the first quad stays split and
		// the blocked quad stays intact.
		m, err := FromVerticesAndFaces(
			[]Point{
				{0, 0, 0},
				{1, 0, 0},
				{1, 1, 0},
				{0, 1, 0},
				{2, 0, 0},
				{2, 1, 0},
				{1.5, 0.5, 1},
			},
			[][]int{
				{0, 1, 2, 3},
				{1, 4, 5, 2},
				{5, 1, 6},
			},
			WithLogger(NoopLogger()),
		)
		require.NoError(t, err)

		err = m.QuadsToTriangles()
		assert.ErrorIs(t, err, ErrValidation)

		assert.False(t, m.HasFace(0))
		f1, err := m.FaceVertices(1)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 4, 5, 2}, f1)
		assert.NoError(t, m.Validate())
	})

	t.Run("MixedDegreesLeftAlone", func(t *testing.T) {
		m := mesh0(t)
		_, err := m.InsertVertexOnEdge(0, 1)
		require.NoError(t, err)
		// Face 1 is a quad now; face 0 grows into a pentagon below.
		_, err = m.InsertVertexOnEdgeWithKey(0, 2, 4)
		require.NoError(t, err)

		require.NoError(t, m.QuadsToTriangles())

		degrees := make([]int, 0, m.NumberOfFaces())
		for _, f := range m.FaceKeys() {
			d, err := m.FaceDegree(f)
			require.NoError(t, err)
			degrees = append(degrees, d)
		}
		assert.ElementsMatch(t, []int{5, 3, 3}, degrees)
		assert.NoError(t, m.Validate())
	})
}
