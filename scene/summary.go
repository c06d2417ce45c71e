package scene

import (
	"fmt"
	"io"

	"github.com/hupe1980/meshgo"
)

// SummaryArtist is a minimal Artist that writes textual draw records to an
// io.Writer instead of a graphics host. It is the default artist used in
// tests and examples.
type SummaryArtist struct {
	mesh  *meshgo.Mesh
	layer string
	w     io.Writer
}

// NewSummaryArtist creates a SummaryArtist writing to w.
func NewSummaryArtist(w io.Writer) ArtistFactory {
	return func(mesh *meshgo.Mesh, layer string) Artist {
		return &SummaryArtist{mesh: mesh, layer: layer, w: w}
	}
}

// DrawVertices implements Artist.
func (a *SummaryArtist) DrawVertices(vertices *meshgo.KeySet) error {
	n := a.mesh.NumberOfVertices()
	if vertices != nil {
		n = vertices.Len()
	}
	_, err := fmt.Fprintf(a.w, "[%s] vertices: %d\n", a.layer, n)
	return err
}

// DrawEdges implements Artist.
func (a *SummaryArtist) DrawEdges() error {
	_, err := fmt.Fprintf(a.w, "[%s] edges: %d\n", a.layer, a.mesh.NumberOfEdges())
	return err
}

// DrawFaces implements Artist.
func (a *SummaryArtist) DrawFaces(faces *meshgo.KeySet) error {
	n := a.mesh.NumberOfFaces()
	if faces != nil {
		n = faces.Len()
	}
	_, err := fmt.Fprintf(a.w, "[%s] faces: %d\n", a.layer, n)
	return err
}

// Clear implements Artist.
func (a *SummaryArtist) Clear() error {
	_, err := fmt.Fprintf(a.w, "[%s] clear\n", a.layer)
	return err
}
