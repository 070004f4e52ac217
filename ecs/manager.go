package ecs

import "slices"

// Manager is the entity registry. It keeps the insertion-ordered list of
// live entities and one list per tag, and defers structural changes to
// Update so that systems can spawn and destroy while iterating.
type Manager struct {
	pool     *Pool
	entities []Entity
	toAdd    []Entity
	byTag    [tagCount][]Entity
}

// NewManager creates a registry over the given pool.
func NewManager(pool *Pool) *Manager {
	return &Manager{pool: pool}
}

// Pool returns the component store backing the registry.
func (m *Manager) Pool() *Pool {
	return m.pool
}

// AddEntity allocates an entity and queues it for the next Update. The
// handle can receive components immediately.
func (m *Manager) AddEntity(tag Tag) (Entity, error) {
	e, err := m.pool.Create(tag)
	if err != nil {
		return 0, err
	}
	m.toAdd = append(m.toAdd, e)
	return e, nil
}

// Update commits pending entities into the views, drops destroyed ones from
// every view and releases their slots. Call once per frame before systems.
func (m *Manager) Update() {
	for _, e := range m.toAdd {
		m.entities = append(m.entities, e)
		tag := m.pool.Tag(e)
		if tag.Valid() {
			m.byTag[tag] = append(m.byTag[tag], e)
		}
	}
	m.toAdd = m.toAdd[:0]

	dead := func(e Entity) bool { return !m.pool.IsActive(e) }
	m.entities = slices.DeleteFunc(m.entities, dead)
	for tag := range m.byTag {
		m.byTag[tag] = slices.DeleteFunc(m.byTag[tag], dead)
	}

	m.pool.Sweep()
}

// Entities returns all committed entities in insertion order. The slice is
// owned by the manager and is only valid until the next Update.
func (m *Manager) Entities() []Entity {
	return m.entities
}

// EntitiesByTag returns the committed entities with the given tag. Unknown
// or empty tags yield an empty slice.
func (m *Manager) EntitiesByTag(tag Tag) []Entity {
	if !tag.Valid() {
		return nil
	}
	return m.byTag[tag]
}

// Total returns the number of committed entities, including any destroyed
// since the last Update.
func (m *Manager) Total() int {
	return len(m.entities)
}

// Pending returns the number of entities waiting for the next Update.
func (m *Manager) Pending() int {
	return len(m.toAdd)
}

// Reset destroys every committed and pending entity and commits.
func (m *Manager) Reset() {
	for _, e := range m.entities {
		m.pool.Destroy(e)
	}
	for _, e := range m.toAdd {
		m.pool.Destroy(e)
	}
	m.Update()
}
