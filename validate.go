package meshgo

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Validate checks the mesh for self-consistency: every face references
// existing vertices, has at least three of them without immediate repeats,
// and the half-edge map mirrors exactly the directed edges of the faces plus
// their boundary reverses.
//
// The three scans are read-only and run concurrently. Validate must not be
// called while another goroutine mutates the mesh.
func (m *Mesh) Validate() error {
	g := new(errgroup.Group)
	g.Go(m.validateFaces)
	g.Go(m.validateHalfedges)
	g.Go(m.validateVertices)
	return g.Wait()
}

func (m *Mesh) validateFaces() error {
	for key, vs := range m.face {
		if len(vs) < 3 {
			return fmt.Errorf("%w: face %d has %d vertices", ErrValidation, key, len(vs))
		}
		for i, u := range vs {
			if _, ok := m.vertex[u]; !ok {
				return fmt.Errorf("%w: face %d references missing vertex %d", ErrValidation, key, u)
			}
			if v := vs[(i+1)%len(vs)]; u == v {
				return fmt.Errorf("%w: face %d repeats vertex %d consecutively", ErrValidation, key, u)
			}
		}
	}
	return nil
}

func (m *Mesh) validateHalfedges() error {
	// Every directed face edge must be claimed by exactly that face, and
	// every claimed half-edge must point back to a face traversing it.
	for key, vs := range m.face {
		for i, u := range vs {
			v := vs[(i+1)%len(vs)]
			f, ok := m.halfedge[u][v]
			if !ok {
				return fmt.Errorf("%w: half-edge %d->%d of face %d is unregistered", ErrValidation, u, v, key)
			}
			if f != key {
				return fmt.Errorf("%w: half-edge %d->%d of face %d is claimed by face %d", ErrValidation, u, v, key, f)
			}
		}
	}
	for u, nbrs := range m.halfedge {
		for v, f := range nbrs {
			if _, ok := m.halfedge[v][u]; !ok {
				return fmt.Errorf("%w: half-edge %d->%d has no reverse entry", ErrValidation, u, v)
			}
			if f == boundary {
				if m.halfedge[v][u] == boundary {
					return fmt.Errorf("%w: edge (%d, %d) is boundary on both sides", ErrValidation, u, v)
				}
				continue
			}
			vs, ok := m.face[f]
			if !ok {
				return fmt.Errorf("%w: half-edge %d->%d is claimed by missing face %d", ErrValidation, u, v, f)
			}
			claimed := false
			for i, a := range vs {
				if a == u && vs[(i+1)%len(vs)] == v {
					claimed = true
					break
				}
			}
			if !claimed {
				return fmt.Errorf("%w: face %d does not traverse its claimed half-edge %d->%d", ErrValidation, f, u, v)
			}
		}
	}
	return nil
}

func (m *Mesh) validateVertices() error {
	for u, nbrs := range m.halfedge {
		if _, ok := m.vertex[u]; !ok {
			return fmt.Errorf("%w: half-edge map references missing vertex %d", ErrValidation, u)
		}
		for v := range nbrs {
			if _, ok := m.vertex[v]; !ok {
				return fmt.Errorf("%w: half-edge %d->%d references missing vertex %d", ErrValidation, u, v, v)
			}
		}
	}
	return nil
}
