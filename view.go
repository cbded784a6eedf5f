package ecs

// View is a handle to one row of iteration: either a per-entity row inside
// a chunk, or — for a component registered as a singleton — the world's
// single shared instance regardless of which chunk is being visited.
type View struct {
	w   *World
	c   *Chunk
	row int
}

// Entity returns the entity this view's row belongs to.
func (v View) Entity() Entity {
	if v.c == nil {
		return Nil
	}
	return v.c.GetEntity(v.row)
}

// ViewGet resolves T for the current row: if T is registered as a
// singleton, every row sees the same shared instance; otherwise T is read
// from the view's chunk column at its row.
func ViewGet[T any](v View) *T {
	if ptr, ok := SingletonPtr[T](v.w); ok {
		return ptr
	}
	if v.c != nil && v.c.archetype.Has(descriptorFor[T]()) {
		return chunkGet[T](v.c, v.row)
	}
	return nil
}
