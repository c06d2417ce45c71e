package meshgo

import "fmt"

// FromPolyhedron creates a platonic solid with the given face count:
// 4 (tetrahedron), 6 (cube) or 8 (octahedron). All faces are wound with
// outward-facing normals, so the result is a closed manifold mesh without
// boundary edges.
func FromPolyhedron(faces int, optFns ...Option) (*Mesh, error) {
	switch faces {
	case 4:
		return FromVerticesAndFaces(tetrahedronVertices, tetrahedronFaces, optFns...)
	case 6:
		return FromVerticesAndFaces(cubeVertices, cubeFaces, optFns...)
	case 8:
		return FromVerticesAndFaces(octahedronVertices, octahedronFaces, optFns...)
	default:
		return nil, fmt.Errorf("%w: no polyhedron with %d faces", ErrValidation, faces)
	}
}

var (
	tetrahedronVertices = []Point{
		{1, 1, 1},
		{1, -1, -1},
		{-1, 1, -1},
		{-1, -1, 1},
	}
	tetrahedronFaces = [][]int{
		{0, 1, 2},
		{0, 2, 3},
		{0, 3, 1},
		{1, 3, 2},
	}

	cubeVertices = []Point{
		{-1, -1, -1},
		{1, -1, -1},
		{1, 1, -1},
		{-1, 1, -1},
		{-1, -1, 1},
		{1, -1, 1},
		{1, 1, 1},
		{-1, 1, 1},
	}
	cubeFaces = [][]int{
		{0, 3, 2, 1}, // bottom
		{4, 5, 6, 7}, // top
		{0, 1, 5, 4}, // front
		{1, 2, 6, 5}, // right
		{2, 3, 7, 6}, // back
		{3, 0, 4, 7}, // left
	}

	octahedronVertices = []Point{
		{1, 0, 0},
		{-1, 0, 0},
		{0, 1, 0},
		{0, -1, 0},
		{0, 0, 1},
		{0, 0, -1},
	}
	octahedronFaces = [][]int{
		{0, 2, 4},
		{2, 1, 4},
		{1, 3, 4},
		{3, 0, 4},
		{2, 0, 5},
		{1, 2, 5},
		{3, 1, 5},
		{0, 3, 5},
	}
)
