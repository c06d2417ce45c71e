// Package scene hosts the rendering-facing surface of meshgo. Artists are
// pure sinks: they consume a mesh read-only (vertex positions, face loops)
// and never invoke topology edit operations.
//
// Artist implementations are dispatched through an explicit Registry that is
// injected into the Scene at construction time; there is no process-global
// registration table.
package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/hupe1980/meshgo"
)

var (
	// ErrKindRegistered is returned when a kind is registered twice.
	ErrKindRegistered = errors.New("kind already registered")

	// ErrKindUnknown is returned when no artist factory is registered for a
	// kind.
	ErrKindUnknown = errors.New("kind not registered")

	// ErrObjectUnknown is returned when a GUID does not identify an object
	// of the scene.
	ErrObjectUnknown = errors.New("object not found")
)

// Artist renders a mesh to some host (a viewport, a file, a terminal).
// Implementations must treat the mesh as read-only.
type Artist interface {
	// DrawVertices draws the given vertices, or all vertices when the set
	// is nil.
	DrawVertices(vertices *meshgo.KeySet) error

	// DrawEdges draws all edges.
	DrawEdges() error

	// DrawFaces draws the given faces, or all faces when the set is nil.
	DrawFaces(faces *meshgo.KeySet) error

	// Clear removes everything the artist has drawn so far.
	Clear() error
}

// ArtistFactory builds an artist for a mesh placed on a layer.
type ArtistFactory func(mesh *meshgo.Mesh, layer string) Artist

// Registry maps item kinds to artist factories. It is populated explicitly
// and handed to NewScene; a zero registry dispatches nothing.
type Registry struct {
	factories map[string]ArtistFactory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]ArtistFactory)}
}

// Register binds a kind to an artist factory. Registering the same kind
// twice is an error.
func (r *Registry) Register(kind string, factory ArtistFactory) error {
	if _, ok := r.factories[kind]; ok {
		return fmt.Errorf("%w: %q", ErrKindRegistered, kind)
	}
	r.factories[kind] = factory
	return nil
}

// Kinds returns the registered kinds in ascending order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

func (r *Registry) build(kind string, mesh *meshgo.Mesh, layer string) (Artist, error) {
	factory, ok := r.factories[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKindUnknown, kind)
	}
	return factory(mesh, layer), nil
}

// Object ties a mesh to its artist and tracks the host-side state the
// original CAD wrappers keep per object: a GUID, a layer and a visibility
// flag.
type Object struct {
	guid    uuid.UUID
	layer   string
	visible bool
	mesh    *meshgo.Mesh
	artist  Artist
}

// GUID returns the object's stable identifier.
func (o *Object) GUID() uuid.UUID { return o.guid }

// Layer returns the layer the object is drawn on.
func (o *Object) Layer() string { return o.layer }

// Visible reports whether the object is drawn on redraw.
func (o *Object) Visible() bool { return o.visible }

// SetVisible toggles whether the object is drawn on redraw.
func (o *Object) SetVisible(visible bool) { o.visible = visible }

// Mesh returns the wrapped mesh.
func (o *Object) Mesh() *meshgo.Mesh { return o.mesh }

// Draw renders the whole object: all faces, all edges, all vertices.
func (o *Object) Draw() error {
	if err := o.artist.DrawFaces(nil); err != nil {
		return err
	}
	if err := o.artist.DrawEdges(); err != nil {
		return err
	}
	return o.artist.DrawVertices(nil)
}

// Scene owns a set of drawable objects and redraws them through their
// artists.
type Scene struct {
	registry *Registry
	objects  map[uuid.UUID]*Object
	order    []uuid.UUID
}

// NewScene creates a scene dispatching through the given registry.
func NewScene(registry *Registry) *Scene {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Scene{
		registry: registry,
		objects:  make(map[uuid.UUID]*Object),
	}
}

// Add places a mesh of the given kind on a layer and returns the wrapping
// object. The artist is resolved through the scene's registry.
func (s *Scene) Add(kind string, mesh *meshgo.Mesh, layer string) (*Object, error) {
	artist, err := s.registry.build(kind, mesh, layer)
	if err != nil {
		return nil, err
	}
	obj := &Object{
		guid:    uuid.New(),
		layer:   layer,
		visible: true,
		mesh:    mesh,
		artist:  artist,
	}
	s.objects[obj.guid] = obj
	s.order = append(s.order, obj.guid)
	return obj, nil
}

// Remove clears and drops the object with the given GUID.
func (s *Scene) Remove(guid uuid.UUID) error {
	obj, ok := s.objects[guid]
	if !ok {
		return fmt.Errorf("%w: %s", ErrObjectUnknown, guid)
	}
	if err := obj.artist.Clear(); err != nil {
		return err
	}
	delete(s.objects, guid)
	for i, g := range s.order {
		if g == guid {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Object returns the object with the given GUID.
func (s *Scene) Object(guid uuid.UUID) (*Object, error) {
	obj, ok := s.objects[guid]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrObjectUnknown, guid)
	}
	return obj, nil
}

// Len returns the number of objects in the scene.
func (s *Scene) Len() int { return len(s.objects) }

// Redraw clears and redraws every visible object, in insertion order.
func (s *Scene) Redraw() error {
	for _, guid := range s.order {
		obj := s.objects[guid]
		if err := obj.artist.Clear(); err != nil {
			return err
		}
		if !obj.visible {
			continue
		}
		if err := obj.Draw(); err != nil {
			return err
		}
	}
	return nil
}
