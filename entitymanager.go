package ecs

// entityManager is a generational slot map from Entity to location, built
// as three parallel arrays plus a freelist head, the same indirection a
// Rust-style beach-map/slot-map uses to keep live data packed:
//
//   - handles is indexed by an entity's packed index and never reordered;
//     it is the stable identity half of the map.
//   - slots and locations are dense and packed: slots[i] names which
//     handle owns locations[i], and both shrink by swapping the last
//     element into a removed one's place.
//
// Freed handles are chained through handle.index into a singly linked
// freelist headed by firstAvailable (-1 when empty); a handle at the tail
// of that chain points at itself as a terminal marker.
type entityManager struct {
	handles        []handle
	slots          []uint32
	locations      []location
	firstAvailable int32
}

func newEntityManager(initialCapacity int) *entityManager {
	return &entityManager{
		handles:        make([]handle, 0, initialCapacity),
		slots:          make([]uint32, 0, initialCapacity),
		locations:      make([]location, 0, initialCapacity),
		firstAvailable: -1,
	}
}

// create allocates a new entity at loc, reusing a freed handle if one is
// available, and returns its handle.
func (m *entityManager) create(loc location) Entity {
	var idx, gen uint32
	if m.firstAvailable != -1 {
		idx = uint32(m.firstAvailable)
		h := &m.handles[idx]
		if h.index == idx {
			m.firstAvailable = -1
		} else {
			m.firstAvailable = int32(h.index)
		}
		h.index = uint32(len(m.locations))
		gen = h.generation
	} else {
		m.handles = append(m.handles, handle{index: uint32(len(m.locations)), generation: 1})
		idx = uint32(len(m.handles) - 1)
		gen = 1
	}
	m.slots = append(m.slots, idx)
	m.locations = append(m.locations, loc)
	return newEntity(gen, idx)
}

// remove invalidates e's handle, bumps its generation, and pushes it onto
// the freelist. Before the dense slots/locations arrays are compacted, the
// handle of the entity that swap-remove is about to relocate is repointed
// at e's old dense position — that ordering must happen first, or the
// relocated entity's location briefly points at a row it no longer owns.
func (m *entityManager) remove(e Entity) {
	idx := e.index()
	if int(idx) >= len(m.handles) {
		return
	}
	h := &m.handles[idx]
	if h.generation != e.generation() {
		return
	}

	denseIdx := int(h.index)
	lastDense := len(m.slots) - 1
	if lastDense != denseIdx {
		movedHandle := m.slots[lastDense]
		m.handles[movedHandle].index = uint32(denseIdx)
	}

	h.generation++
	if h.generation == 0 {
		h.generation = 1
	}
	if m.firstAvailable != -1 {
		h.index = uint32(m.firstAvailable)
	} else {
		h.index = idx
	}
	m.firstAvailable = int32(idx)

	m.slots[denseIdx] = m.slots[lastDense]
	m.slots = m.slots[:lastDense]
	m.locations[denseIdx] = m.locations[lastDense]
	m.locations = m.locations[:lastDense]
}

// exists reports whether e refers to a currently live handle with a
// matching generation.
func (m *entityManager) exists(e Entity) bool {
	idx := e.index()
	if int(idx) >= len(m.handles) {
		return false
	}
	return m.handles[idx].generation == e.generation()
}

// get returns the location of e and whether e is live.
func (m *entityManager) get(e Entity) (location, bool) {
	if !m.exists(e) {
		return location{}, false
	}
	return m.locations[m.handles[e.index()].index], true
}

// update rewrites the location of a live entity, used after structural
// mutation moves its row to a different chunk or archetype.
func (m *entityManager) update(e Entity, loc location) {
	m.locations[m.handles[e.index()].index] = loc
}

// liveCount returns the number of currently live entities.
func (m *entityManager) liveCount() int { return len(m.slots) }

// capacity returns the backing array capacity of the dense entity arrays,
// mirroring a reserve()'d vector's capacity rather than any hard limit on
// the number of live entities.
func (m *entityManager) capacity() int { return cap(m.slots) }
