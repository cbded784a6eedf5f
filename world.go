package ecs

import (
	"go.uber.org/zap"
)

// World owns every entity, archetype and chunk root in one simulation, plus
// the scheduler and singleton store that run against them. A World is not
// safe for concurrent structural mutation; Update and UpdateSequential may
// run systems in parallel with each other but never concurrently with
// Create/Destroy/Add/Remove calls from another goroutine.
type World struct {
	entities   *entityManager
	archetypes map[Mask]*Archetype
	roots      map[Mask]*ChunkRoot
	singletons *singletonStore
	scheduler  *Scheduler

	logger  *zap.Logger
	metrics *metricsSet
}

// NewWorld constructs an empty World, applying any supplied options.
func NewWorld(opts ...WorldOption) *World {
	cfg := defaultWorldConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	w := &World{
		entities:   newEntityManager(cfg.initialCapacity),
		archetypes: make(map[Mask]*Archetype, 8),
		roots:      make(map[Mask]*ChunkRoot, 8),
		singletons: newSingletonStore(),
		logger:     cfg.logger,
		metrics:    newMetricsSet(cfg.metricsRegistry),
	}
	w.scheduler = newScheduler(w)

	// The empty archetype always exists: entities can be created with no
	// components and later gain some via Add.
	w.getOrCreateArchetype(Mask(0), nil)

	w.logger.Debug("world created", zap.Int("initial_capacity", cfg.initialCapacity))
	return w
}

// getOrCreateArchetype returns the Archetype for mask, building it from
// descs and registering a backing chunk root the first time mask is seen.
func (w *World) getOrCreateArchetype(mask Mask, descs []*Descriptor) *Archetype {
	if a, ok := w.archetypes[mask]; ok {
		return a
	}
	a := newArchetype(descs)
	w.archetypes[mask] = a
	w.roots[mask] = newChunkRoot(a)
	w.metrics.archetypeCount.Set(float64(len(w.archetypes)))
	return a
}

// rootFor returns the chunk root for mask, which must already exist.
func (w *World) rootFor(mask Mask) *ChunkRoot {
	return w.roots[mask]
}

// createWithDescriptors inserts a new entity with zero-valued components
// for every descriptor in descs, returning its handle.
func (w *World) createWithDescriptors(descs []*Descriptor) Entity {
	a := newArchetype(descs)
	mask := a.Mask()
	a = w.getOrCreateArchetype(mask, a.Descriptors)
	root := w.rootFor(mask)
	c := root.findFree()
	chunkIdx := chunkIndexOf(root, c)
	row := c.Insert(Nil)

	e := w.entities.create(location{mask: mask, chunk: chunkIdx, row: row})
	c.entities[row] = e

	w.metrics.entityCount.Inc()
	w.refreshChunkCount()
	return e
}

// chunkIndexOf returns the index of c within root.chunks.
func chunkIndexOf(root *ChunkRoot, c *Chunk) int {
	for i, rc := range root.chunks {
		if rc == c {
			return i
		}
	}
	return -1
}

// Exists reports whether e refers to a currently live entity.
func (w *World) Exists(e Entity) bool {
	return w.entities.exists(e)
}

// DestroyEntity removes e and all of its component data. Destroying an
// already-dead or stale handle is a no-op error, never a panic.
func (w *World) DestroyEntity(e Entity) error {
	loc, ok := w.entities.get(e)
	if !ok {
		return errorf(ErrInvalidEntity, "destroy %v", e)
	}
	root := w.roots[loc.mask]
	c := root.chunks[loc.chunk]

	moved := c.Remove(loc.row)
	w.entities.remove(e)
	if moved != e && c.Size() > loc.row {
		// The last live row was swapped into loc.row; its owner's
		// location must be updated to point at its new row.
		w.entities.update(moved, location{mask: loc.mask, chunk: loc.chunk, row: loc.row})
	}
	root.removeEmptyTrailing()

	w.metrics.entityCount.Dec()
	w.refreshChunkCount()
	return nil
}

// ArchetypeOf returns the Archetype e currently belongs to.
func (w *World) ArchetypeOf(e Entity) (*Archetype, bool) {
	loc, ok := w.entities.get(e)
	if !ok {
		return nil, false
	}
	return w.archetypes[loc.mask], true
}

// migrate moves e's row from its current archetype to the archetype
// described by newDescs, copying every component common to both and
// default-constructing any newly-added one. Components present only in
// the old archetype are dropped (their destructors already ran as part of
// the old chunk's Remove).
func (w *World) migrate(e Entity, newDescs []*Descriptor) {
	oldLoc, ok := w.entities.get(e)
	if !ok {
		return
	}
	if newArchetype(newDescs).Mask() == oldLoc.mask {
		// Same archetype: inserting a new row and removing the old one
		// would alias e with the swap-removed row in its own chunk.
		// There is nothing to migrate.
		return
	}
	oldRoot := w.roots[oldLoc.mask]
	oldChunk := oldRoot.chunks[oldLoc.chunk]

	newArch := newArchetype(newDescs)
	newMask := newArch.Mask()
	newArch = w.getOrCreateArchetype(newMask, newArch.Descriptors)
	newRoot := w.rootFor(newMask)
	newChunk := newRoot.findFree()
	newChunkIdx := chunkIndexOf(newRoot, newChunk)
	newRow := newChunk.Insert(e)

	oldChunk.CopyTo(oldLoc.row, newChunk, newRow)

	moved := oldChunk.Remove(oldLoc.row)
	if moved != e && oldChunk.Size() > oldLoc.row {
		w.entities.update(moved, location{mask: oldLoc.mask, chunk: oldLoc.chunk, row: oldLoc.row})
	}
	oldRoot.removeEmptyTrailing()

	w.entities.update(e, location{mask: newMask, chunk: newChunkIdx, row: newRow})
	w.refreshChunkCount()
}

// Size returns the number of currently live entities.
func (w *World) Size() int { return w.entities.liveCount() }

// Capacity returns the backing array capacity of the entity manager's
// dense storage, the same reserve()'d-vector sense as the source this
// manager is ported from — it grows as entities are created past it, it
// is not a hard ceiling.
func (w *World) Capacity() int { return w.entities.capacity() }

// ArchetypeCount returns the number of distinct archetypes in use.
func (w *World) ArchetypeCount() int { return len(w.archetypes) }

// Logger returns the logger this world was configured with.
func (w *World) Logger() *zap.Logger { return w.logger }

// Scheduler returns the world's system scheduler.
func (w *World) Scheduler() *Scheduler { return w.scheduler }

// RegisterSystem inserts sys into the world's default scheduler, fusing it
// into whichever execution block its read/write masks intersect.
func (w *World) RegisterSystem(sys System) { w.scheduler.Insert(sys) }

// SystemCount returns the number of systems registered with the world's
// default scheduler.
func (w *World) SystemCount() int { return w.scheduler.SystemCount() }

// Update runs one tick of the world's default scheduler, executing
// independent blocks concurrently where the scheduler is configured to.
func (w *World) Update() error { return w.scheduler.Exec() }

// UpdateSequential runs one tick of the world's default scheduler with
// every block and system forced onto the calling goroutine in insertion
// order, regardless of the scheduler's configured parallelism.
func (w *World) UpdateSequential() error { return w.scheduler.ExecSequential() }
