// Package scenegraph groups named BRep entities into scenes and batches
// their projection into a single Scene2D, mirroring the original
// source's OGScene/OGSceneManager: a scene upserts/removes entities by
// id, and projecting a scene means projecting every entity and
// concatenating the result scenes under the parent scene's name.
package scenegraph

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/aprice2704/geomkernel/brep"
	"github.com/aprice2704/geomkernel/camera"
	"github.com/aprice2704/geomkernel/projection"
	"github.com/aprice2704/geomkernel/scene2d"
)

// Entity is a single named BRep placed in a scene. Kind is a free-form
// label ("Line", "Cuboid", ...) carried for round-tripping and display,
// never interpreted by the graph itself.
type Entity struct {
	ID   string
	Kind string
	Brep *brep.Brep
}

// Scene is a named, ordered-by-insertion set of entities, unique by id.
type Scene struct {
	ID       string
	Name     string
	Entities []Entity
}

// NewScene creates an empty scene with a fresh id.
func NewScene(name string) *Scene {
	return &Scene{ID: uuid.NewString(), Name: name}
}

// UpsertEntity replaces the entity with the same id, or appends it if
// no such entity exists yet.
func (s *Scene) UpsertEntity(e Entity) {
	for i := range s.Entities {
		if s.Entities[i].ID == e.ID {
			s.Entities[i] = e
			return
		}
	}
	s.Entities = append(s.Entities, e)
}

// RemoveEntity deletes the entity with the given id, reporting whether
// anything was removed.
func (s *Scene) RemoveEntity(id string) bool {
	for i := range s.Entities {
		if s.Entities[i].ID == id {
			s.Entities = append(s.Entities[:i], s.Entities[i+1:]...)
			return true
		}
	}
	return false
}

// ProjectToScene2D projects every entity through cam/hlr and merges the
// results into one named scene.
func (s *Scene) ProjectToScene2D(cam camera.Camera, hlr camera.HLROptions) *scene2d.Scene2D {
	out := scene2d.WithName(s.Name)
	for _, e := range s.Entities {
		out.Extend(projection.Brep(e.Brep, cam, hlr))
	}
	return out
}

// Summary is the lightweight scene listing entry, mirroring the
// original source's SceneSummary.
type Summary struct {
	ID          string
	Name        string
	EntityCount int
}

// Manager owns a set of scenes and tracks which one is "current" for
// callers that operate on an implicit scene, matching the original
// source's OGSceneManager.
type Manager struct {
	scenes         map[string]*Scene
	currentSceneID string
}

// NewManager returns an empty manager with no current scene.
func NewManager() *Manager {
	return &Manager{scenes: map[string]*Scene{}}
}

// CreateScene creates a new scene, makes it current, and returns its id.
func (m *Manager) CreateScene(name string) string {
	scene := NewScene(name)
	m.scenes[scene.ID] = scene
	m.currentSceneID = scene.ID
	return scene.ID
}

// RemoveScene deletes a scene by id. If it was the current scene, an
// arbitrary remaining scene (or none) becomes current.
func (m *Manager) RemoveScene(id string) bool {
	if _, ok := m.scenes[id]; !ok {
		return false
	}
	delete(m.scenes, id)
	if m.currentSceneID == id {
		m.currentSceneID = ""
		for other := range m.scenes {
			m.currentSceneID = other
			break
		}
	}
	return true
}

// SetCurrentScene makes id the current scene. Returns an error if no
// such scene exists.
func (m *Manager) SetCurrentScene(id string) error {
	if _, ok := m.scenes[id]; !ok {
		return fmt.Errorf("scenegraph: scene %q does not exist", id)
	}
	m.currentSceneID = id
	return nil
}

// CurrentSceneID returns the current scene id, or ok=false if none is set.
func (m *Manager) CurrentSceneID() (string, bool) {
	if m.currentSceneID == "" {
		return "", false
	}
	return m.currentSceneID, true
}

// ListScenes returns a summary of every scene, in no particular order.
func (m *Manager) ListScenes() []Summary {
	out := make([]Summary, 0, len(m.scenes))
	for _, s := range m.scenes {
		out = append(out, Summary{ID: s.ID, Name: s.Name, EntityCount: len(s.Entities)})
	}
	return out
}

// Scene returns the scene with the given id, or an error if it is unknown.
func (m *Manager) Scene(id string) (*Scene, error) {
	s, ok := m.scenes[id]
	if !ok {
		return nil, fmt.Errorf("scenegraph: scene %q does not exist", id)
	}
	return s, nil
}

// resolve returns id if non-empty, else the current scene id.
func (m *Manager) resolve(id string) (string, error) {
	if id != "" {
		return id, nil
	}
	if m.currentSceneID == "" {
		return "", fmt.Errorf("scenegraph: no current scene selected")
	}
	return m.currentSceneID, nil
}

// AddEntity upserts an entity into the scene identified by sceneID (or
// the current scene, if sceneID is empty).
func (m *Manager) AddEntity(sceneID string, e Entity) error {
	id, err := m.resolve(sceneID)
	if err != nil {
		return err
	}
	s, err := m.Scene(id)
	if err != nil {
		return err
	}
	s.UpsertEntity(e)
	return nil
}

// RemoveEntity removes an entity from the scene identified by sceneID
// (or the current scene, if sceneID is empty).
func (m *Manager) RemoveEntity(sceneID, entityID string) (bool, error) {
	id, err := m.resolve(sceneID)
	if err != nil {
		return false, err
	}
	s, err := m.Scene(id)
	if err != nil {
		return false, err
	}
	return s.RemoveEntity(entityID), nil
}

// ProjectScene projects the scene identified by sceneID (or the current
// scene, if sceneID is empty) through cam/hlr.
func (m *Manager) ProjectScene(sceneID string, cam camera.Camera, hlr camera.HLROptions) (*scene2d.Scene2D, error) {
	id, err := m.resolve(sceneID)
	if err != nil {
		return nil, err
	}
	s, err := m.Scene(id)
	if err != nil {
		return nil, err
	}
	return s.ProjectToScene2D(cam, hlr), nil
}
