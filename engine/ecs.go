package engine

// Entity is a unique identifier for a game object. It carries no data
// of its own; it is a key into component storage. IDs are strictly
// increasing and never reused; 0 is reserved.
type Entity uint64

// NoEntity is the reserved zero ID; allocation starts at 1
const NoEntity Entity = 0

// ComponentKind tags each component type. The kind set is closed:
// storage dispatches over these tags instead of reflection, trading
// extensibility for compile-time safety.
type ComponentKind uint8

const (
	KindTransform ComponentKind = iota + 1
	KindSprite
	KindVelocity
)

// Component is implemented by every data record attached to an entity.
// At most one component of a given kind exists per entity.
type Component interface {
	Kind() ComponentKind
}

// System is a unit of per-frame logic. Each system receives exclusive
// access to the whole World for the duration of its Update call.
type System interface {
	Update(w *World, dt float64)
}

// World owns entity identity allocation, per-entity component storage
// keyed by kind, and the ordered system list. Access is single-owner
// by construction: one external driver calls Update once per frame,
// and exactly one system runs at a time. There is no concurrent
// caller to arbitrate, so no lock.
type World struct {
	nextEntityID Entity
	entities     []Entity
	components   map[Entity]map[ComponentKind]Component
	systems      []System
}

// NewWorld creates an empty ECS world
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		components:   make(map[Entity]map[ComponentKind]Component),
	}
}

// CreateEntity allocates the next ID, appends it to the live-entity
// list and initializes its empty component map. Never fails.
func (w *World) CreateEntity() Entity {
	id := w.nextEntityID
	w.nextEntityID++
	w.entities = append(w.entities, id)
	w.components[id] = make(map[ComponentKind]Component)
	return id
}

// AddComponent inserts or replaces the component of c's kind for the
// entity. Silent no-op if the entity is unknown.
func (w *World) AddComponent(e Entity, c Component) {
	stored, ok := w.components[e]
	if !ok {
		return
	}
	stored[c.Kind()] = c
}

// GetComponent returns the component of the given kind for the
// entity, or ok=false if the entity or component is absent
func (w *World) GetComponent(e Entity, kind ComponentKind) (Component, bool) {
	stored, ok := w.components[e]
	if !ok {
		return nil, false
	}
	c, ok := stored[kind]
	return c, ok
}

// HasComponent reports whether the entity owns a component of the kind
func (w *World) HasComponent(e Entity, kind ComponentKind) bool {
	_, ok := w.GetComponent(e, kind)
	return ok
}

// Entities returns a copy of the live-entity list in creation order
func (w *World) Entities() []Entity {
	result := make([]Entity, len(w.entities))
	copy(result, w.entities)
	return result
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.entities)
}

// AddSystem appends a system to the update list. Systems run in
// registration order.
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
}

// Update invokes each registered system in order, passing the World
// and the elapsed seconds. Iteration is by stable index so a running
// system may mutate any entity's components freely; systems added
// during the pass are deferred to the next frame, and there is no
// removal or reordering API to invalidate the pass.
func (w *World) Update(dt float64) {
	n := len(w.systems)
	for i := 0; i < n; i++ {
		w.systems[i].Update(w, dt)
	}
}
