package ecs

import "go.uber.org/zap"

// CreateEntity creates an entity with no components.
func (w *World) CreateEntity() Entity {
	return w.createWithDescriptors(nil)
}

// Create1 creates an entity with a single zero-valued component T.
func Create1[T any](w *World) Entity {
	return w.createWithDescriptors([]*Descriptor{descriptorFor[T]()})
}

// locationAndChunk resolves e to its current chunk and row, or false if e
// is not live.
func (w *World) locationAndChunk(e Entity) (*Chunk, int, bool) {
	loc, ok := w.entities.get(e)
	if !ok {
		return nil, 0, false
	}
	root := w.roots[loc.mask]
	return root.chunks[loc.chunk], loc.row, true
}

// Has reports whether e currently carries component T.
func Has[T any](w *World, e Entity) bool {
	loc, ok := w.entities.get(e)
	if !ok {
		return false
	}
	return w.archetypes[loc.mask].Has(descriptorFor[T]())
}

// Get returns a pointer to e's T component and true, or nil and false if e
// is dead or does not carry T.
func Get[T any](w *World, e Entity) (*T, bool) {
	c, row, ok := w.locationAndChunk(e)
	if !ok || !Has[T](w, e) {
		return nil, false
	}
	return chunkGet[T](c, row), true
}

// Set overwrites e's T component with value. It returns ErrComponentAbsent
// if e does not carry T and ErrInvalidEntity if e is dead.
func Set[T any](w *World, e Entity, value T) error {
	c, row, ok := w.locationAndChunk(e)
	if !ok {
		return errorf(ErrInvalidEntity, "set %v", e)
	}
	if !Has[T](w, e) {
		return errorf(ErrComponentAbsent, "set %v", e)
	}
	chunkSet[T](c, row, value)
	return nil
}

// Add1 attaches component T to e with value, migrating e to the archetype
// that includes T. Adding a component e already carries overwrites its
// value in place without migration.
func Add1[T any](w *World, e Entity, value T) error {
	arch, ok := w.ArchetypeOf(e)
	if !ok {
		return errorf(ErrInvalidEntity, "add %v", e)
	}
	if Has[T](w, e) {
		return Set[T](w, e, value)
	}
	w.migrate(e, arch.withAdded([]*Descriptor{descriptorFor[T]()}))
	if err := Set[T](w, e, value); err != nil {
		w.logger.Error("post-migration set failed", zap.Error(err))
		return err
	}
	return nil
}

// Remove1 detaches component T from e, migrating it to the archetype
// without T. It is a no-op if e does not carry T.
func Remove1[T any](w *World, e Entity) error {
	arch, ok := w.ArchetypeOf(e)
	if !ok {
		return errorf(ErrInvalidEntity, "remove %v", e)
	}
	if !Has[T](w, e) {
		return nil
	}
	w.migrate(e, arch.withRemoved([]*Descriptor{descriptorFor[T]()}))
	return nil
}
