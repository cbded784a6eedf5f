package ecs

// CreateEntities creates n entities with no components and returns their
// handles. It calls CreateEntity once per entity, so its allocation
// behaviour is identical to a loop of CreateEntity calls.
func (w *World) CreateEntities(n int) []Entity {
	out := make([]Entity, n)
	for i := range out {
		out[i] = w.CreateEntity()
	}
	return out
}

// Batch1 creates n entities each carrying component T, initialised via
// fn(i) for the i-th entity created.
func Batch1[T any](w *World, n int, fn func(i int) T) []Entity {
	out := make([]Entity, n)
	for i := range out {
		e := Create1[T](w)
		_ = Set[T](w, e, fn(i))
		out[i] = e
	}
	return out
}

// Batch2 creates n entities each carrying T1 and T2.
func Batch2[T1, T2 any](w *World, n int, fn func(i int) (T1, T2)) []Entity {
	out := make([]Entity, n)
	for i := range out {
		e := Create2[T1, T2](w)
		v1, v2 := fn(i)
		_ = Set[T1](w, e, v1)
		_ = Set[T2](w, e, v2)
		out[i] = e
	}
	return out
}

// Batch3 creates n entities each carrying T1, T2 and T3.
func Batch3[T1, T2, T3 any](w *World, n int, fn func(i int) (T1, T2, T3)) []Entity {
	out := make([]Entity, n)
	for i := range out {
		e := Create3[T1, T2, T3](w)
		v1, v2, v3 := fn(i)
		_ = Set[T1](w, e, v1)
		_ = Set[T2](w, e, v2)
		_ = Set[T3](w, e, v3)
		out[i] = e
	}
	return out
}

// Batch4 creates n entities each carrying T1, T2, T3 and T4.
func Batch4[T1, T2, T3, T4 any](w *World, n int, fn func(i int) (T1, T2, T3, T4)) []Entity {
	out := make([]Entity, n)
	for i := range out {
		e := Create4[T1, T2, T3, T4](w)
		v1, v2, v3, v4 := fn(i)
		_ = Set[T1](w, e, v1)
		_ = Set[T2](w, e, v2)
		_ = Set[T3](w, e, v3)
		_ = Set[T4](w, e, v4)
		out[i] = e
	}
	return out
}

// DestroyEntities destroys every entity in es, ignoring already-dead
// handles. It returns the number of entities actually destroyed.
func (w *World) DestroyEntities(es []Entity) int {
	n := 0
	for _, e := range es {
		if w.DestroyEntity(e) == nil {
			n++
		}
	}
	return n
}
