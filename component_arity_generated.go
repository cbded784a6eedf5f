package ecs

// duplicateOf returns the first descriptor in descs whose hash also occurs
// earlier in descs, or nil if every hash is distinct.
func duplicateOf(descs []*Descriptor) *Descriptor {
	seen := make(map[uint64]bool, len(descs))
	for _, d := range descs {
		if seen[d.Hash] {
			return d
		}
		seen[d.Hash] = true
	}
	return nil
}

// Create2 creates an entity with two zero-valued components, T1 and T2.
func Create2[T1, T2 any](w *World) Entity {
	descs := []*Descriptor{descriptorFor[T1](), descriptorFor[T2]()}
	if d := duplicateOf(descs); d != nil {
		panic(errorf(ErrDuplicateComponent, "Create2: %v", d.typ))
	}
	return w.createWithDescriptors(descs)
}

// Create3 creates an entity with three zero-valued components.
func Create3[T1, T2, T3 any](w *World) Entity {
	descs := []*Descriptor{descriptorFor[T1](), descriptorFor[T2](), descriptorFor[T3]()}
	if d := duplicateOf(descs); d != nil {
		panic(errorf(ErrDuplicateComponent, "Create3: %v", d.typ))
	}
	return w.createWithDescriptors(descs)
}

// Create4 creates an entity with four zero-valued components.
func Create4[T1, T2, T3, T4 any](w *World) Entity {
	descs := []*Descriptor{
		descriptorFor[T1](), descriptorFor[T2](), descriptorFor[T3](), descriptorFor[T4](),
	}
	if d := duplicateOf(descs); d != nil {
		panic(errorf(ErrDuplicateComponent, "Create4: %v", d.typ))
	}
	return w.createWithDescriptors(descs)
}

// Has2 reports whether e carries both T1 and T2.
func Has2[T1, T2 any](w *World, e Entity) bool {
	return Has[T1](w, e) && Has[T2](w, e)
}

// Has3 reports whether e carries T1, T2 and T3.
func Has3[T1, T2, T3 any](w *World, e Entity) bool {
	return Has[T1](w, e) && Has[T2](w, e) && Has[T3](w, e)
}

// Has4 reports whether e carries T1, T2, T3 and T4.
func Has4[T1, T2, T3, T4 any](w *World, e Entity) bool {
	return Has[T1](w, e) && Has[T2](w, e) && Has[T3](w, e) && Has[T4](w, e)
}

// Add2 attaches T1 and T2 to e in a single migration.
func Add2[T1, T2 any](w *World, e Entity, v1 T1, v2 T2) error {
	arch, ok := w.ArchetypeOf(e)
	if !ok {
		return errorf(ErrInvalidEntity, "add2 %v", e)
	}
	add := []*Descriptor{descriptorFor[T1](), descriptorFor[T2]()}
	if d := duplicateOf(add); d != nil {
		return errorf(ErrDuplicateComponent, "Add2: %v", d.typ)
	}
	w.migrate(e, arch.withAdded(add))
	if err := Set[T1](w, e, v1); err != nil {
		return err
	}
	return Set[T2](w, e, v2)
}

// Add3 attaches T1, T2 and T3 to e in a single migration.
func Add3[T1, T2, T3 any](w *World, e Entity, v1 T1, v2 T2, v3 T3) error {
	arch, ok := w.ArchetypeOf(e)
	if !ok {
		return errorf(ErrInvalidEntity, "add3 %v", e)
	}
	add := []*Descriptor{descriptorFor[T1](), descriptorFor[T2](), descriptorFor[T3]()}
	if d := duplicateOf(add); d != nil {
		return errorf(ErrDuplicateComponent, "Add3: %v", d.typ)
	}
	w.migrate(e, arch.withAdded(add))
	if err := Set[T1](w, e, v1); err != nil {
		return err
	}
	if err := Set[T2](w, e, v2); err != nil {
		return err
	}
	return Set[T3](w, e, v3)
}

// Add4 attaches T1, T2, T3 and T4 to e in a single migration.
func Add4[T1, T2, T3, T4 any](w *World, e Entity, v1 T1, v2 T2, v3 T3, v4 T4) error {
	arch, ok := w.ArchetypeOf(e)
	if !ok {
		return errorf(ErrInvalidEntity, "add4 %v", e)
	}
	add := []*Descriptor{
		descriptorFor[T1](), descriptorFor[T2](), descriptorFor[T3](), descriptorFor[T4](),
	}
	if d := duplicateOf(add); d != nil {
		return errorf(ErrDuplicateComponent, "Add4: %v", d.typ)
	}
	w.migrate(e, arch.withAdded(add))
	if err := Set[T1](w, e, v1); err != nil {
		return err
	}
	if err := Set[T2](w, e, v2); err != nil {
		return err
	}
	if err := Set[T3](w, e, v3); err != nil {
		return err
	}
	return Set[T4](w, e, v4)
}

// Remove2 detaches T1 and T2 from e in a single migration.
func Remove2[T1, T2 any](w *World, e Entity) error {
	return removeMany(w, e, descriptorFor[T1](), descriptorFor[T2]())
}

// Remove3 detaches T1, T2 and T3 from e in a single migration.
func Remove3[T1, T2, T3 any](w *World, e Entity) error {
	return removeMany(w, e, descriptorFor[T1](), descriptorFor[T2](), descriptorFor[T3]())
}

// Remove4 detaches T1, T2, T3 and T4 from e in a single migration.
func Remove4[T1, T2, T3, T4 any](w *World, e Entity) error {
	return removeMany(w, e, descriptorFor[T1](), descriptorFor[T2](), descriptorFor[T3](), descriptorFor[T4]())
}

// removeMany drops every descriptor in drop that e actually carries from
// e's archetype and migrates once, rather than once per component. Like
// Remove1, dropping a component e does not carry is a no-op, not an error.
func removeMany(w *World, e Entity, drop ...*Descriptor) error {
	arch, ok := w.ArchetypeOf(e)
	if !ok {
		return errorf(ErrInvalidEntity, "remove %v", e)
	}
	present := make([]*Descriptor, 0, len(drop))
	for _, d := range drop {
		if arch.Has(d) {
			present = append(present, d)
		}
	}
	if len(present) == 0 {
		return nil
	}
	w.migrate(e, arch.withRemoved(present))
	return nil
}
