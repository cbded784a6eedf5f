// Package ecs implements an archetype-based Entity Component System.
//
// Entities are opaque identifiers that own a set of component values.
// Component data for entities that share the same component set (an
// archetype) is packed column-by-column into fixed-size 16 KiB chunks so
// that systems iterate it with good cache behaviour. Structural mutation
// (create, destroy, add, remove) migrates an entity's row between chunks
// of different archetypes; queries and the scheduler must not run
// concurrently with structural mutation — callers drive mutation only
// between ticks.
package ecs

// ChunkSizeBytes is the fixed size of a single archetype chunk allocation.
const ChunkSizeBytes = 16 * 1024

// ChunkAlignment is the alignment of a chunk's backing allocation and of
// its first column.
const ChunkAlignment = 64

// maxMaskBits is the number of usable bits in a Mask. Bit 63 is never
// assigned (hash mod 63), leaving a reserved top bit.
const maxMaskBits = 63
