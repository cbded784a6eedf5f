package ecs

import "sort"

// Archetype is the set of component types attached to an entity. Equality
// is mask equality; the descriptor list carries the layout information
// needed to build chunks.
type Archetype struct {
	Descriptors []*Descriptor
	mask        Mask
	size        uintptr // sum of component sizes, used to size chunk rows
}

// newArchetype builds an Archetype from a set of descriptors, sorted by
// hash for a deterministic column order regardless of the order callers
// supply them in.
func newArchetype(descs []*Descriptor) *Archetype {
	sorted := make([]*Descriptor, len(descs))
	copy(sorted, descs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Hash < sorted[j].Hash })

	a := &Archetype{Descriptors: sorted}
	for _, d := range sorted {
		a.mask = a.mask.union(d.Mask)
		a.size += d.Size
	}
	return a
}

// Mask returns the archetype's combined component mask.
func (a *Archetype) Mask() Mask { return a.mask }

// Size returns the sum of all component sizes in the archetype, used to
// compute a chunk's per-entity row size and thus its capacity.
func (a *Archetype) Size() uintptr { return a.size }

// Has reports whether the archetype contains the given component mask bit.
func (a *Archetype) Has(d *Descriptor) bool {
	return a.mask.contains(d.Mask)
}

// Subset reports whether other's components are a subset of a's, i.e.
// a ⊇ other.
func (a *Archetype) Subset(other Mask) bool {
	return a.mask.contains(other)
}

// descriptor returns the descriptor for the given component hash, or nil
// if the archetype does not contain it.
func (a *Archetype) descriptor(hash uint64) *Descriptor {
	for _, d := range a.Descriptors {
		if d.Hash == hash {
			return d
		}
	}
	return nil
}

// withAdded returns a new descriptor set equal to a's plus extra,
// deduplicated by hash. Callers use this to build the target archetype of
// an Add<T...> structural mutation.
func (a *Archetype) withAdded(extra []*Descriptor) []*Descriptor {
	seen := make(map[uint64]bool, len(a.Descriptors)+len(extra))
	out := make([]*Descriptor, 0, len(a.Descriptors)+len(extra))
	for _, d := range a.Descriptors {
		if !seen[d.Hash] {
			seen[d.Hash] = true
			out = append(out, d)
		}
	}
	for _, d := range extra {
		if !seen[d.Hash] {
			seen[d.Hash] = true
			out = append(out, d)
		}
	}
	return out
}

// withRemoved returns a new descriptor set equal to a's minus any
// descriptor whose hash appears in remove. Callers use this to build the
// target archetype of a Remove<T...> structural mutation.
func (a *Archetype) withRemoved(remove []*Descriptor) []*Descriptor {
	drop := make(map[uint64]bool, len(remove))
	for _, d := range remove {
		drop[d.Hash] = true
	}
	out := make([]*Descriptor, 0, len(a.Descriptors))
	for _, d := range a.Descriptors {
		if !drop[d.Hash] {
			out = append(out, d)
		}
	}
	return out
}
