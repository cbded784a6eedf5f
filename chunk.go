package ecs

import "unsafe"

// emptyArchetypeCapacity bounds the row count of chunks for the archetype
// with zero components (entities with no components attached), where the
// usual capacity formula (16 KiB / archetype row size) divides by zero.
const emptyArchetypeCapacity = 4096

// Chunk is a single fixed-capacity, columnar storage arena for entities of
// one archetype. Component data is organised as a struct of arrays: one
// packed column per component type, plus a parallel row array of entity
// IDs. Rows [0, size) hold live entities; rows [size, capacity) are
// uninitialised (invariant I2).
type Chunk struct {
	archetype *Archetype
	data      []byte
	offsets   map[uint64]uintptr
	entities  []Entity
	size      int
	capacity  int
}

// newChunk allocates a chunk for archetype, computing each column's offset
// by aligning the running offset up to each component's alignment in turn.
func newChunk(archetype *Archetype) *Chunk {
	capacity := emptyArchetypeCapacity
	if archetype.size > 0 {
		capacity = int(uintptr(ChunkSizeBytes) / archetype.size)
		if capacity == 0 {
			// A single row of this archetype does not fit in one chunk.
			panic(errorf(ErrArchetypeOverflow, "row size %d exceeds chunk size %d", archetype.size, ChunkSizeBytes))
		}
	}

	offsets := make(map[uint64]uintptr, len(archetype.Descriptors))
	var running uintptr
	for _, d := range archetype.Descriptors {
		running = alignUp(running, d.Align)
		offsets[d.Hash] = running
		running += d.Size * uintptr(capacity)
	}
	if running > uintptr(ChunkSizeBytes) && archetype.size > 0 {
		panic(errorf(ErrArchetypeOverflow, "column layout %d exceeds chunk size %d", running, ChunkSizeBytes))
	}

	c := &Chunk{
		archetype: archetype,
		data:      alignedBytes(int(running)),
		offsets:   offsets,
		entities:  make([]Entity, capacity),
		capacity:  capacity,
	}
	return c
}

// alignedBytes allocates a byte slice of length n whose first byte sits on a
// ChunkAlignment boundary, mirroring the aligned_alloc(ChunkAlignment, n)
// the chunk layout this type ports from uses for the same column arena. Go
// gives no aligned-allocation primitive, so the backing array is
// over-allocated by up to ChunkAlignment-1 bytes and sliced forward to the
// first aligned offset; the unused prefix is retained by the slice's
// capacity but never addressed.
func alignedBytes(n int) []byte {
	if n == 0 {
		return nil
	}
	buf := make([]byte, n+ChunkAlignment-1)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	pad := (ChunkAlignment - int(addr%ChunkAlignment)) % ChunkAlignment
	return buf[pad : pad+n : pad+n]
}

// columnBase returns the base pointer of the column for the given
// component hash, or nil if the chunk's archetype does not have it.
func (c *Chunk) columnBase(hash uint64) unsafe.Pointer {
	off, ok := c.offsets[hash]
	if !ok {
		return nil
	}
	if len(c.data) == 0 {
		return nil
	}
	return unsafe.Add(unsafe.Pointer(&c.data[0]), off)
}

// Insert places entity at row = size, default-constructs every component
// column at that row, increments size, and returns the row.
func (c *Chunk) Insert(e Entity) int {
	row := c.size
	for _, d := range c.archetype.Descriptors {
		base := c.columnBase(d.Hash)
		d.defaultConstruct(unsafe.Add(base, d.Size*uintptr(row)))
	}
	c.entities[row] = e
	c.size++
	return row
}

// Remove removes the row at index row, swapping the last live row into its
// place to keep the chunk packed, and returns the entity that now occupies
// row. If row was the only live row, no swap happens and the returned
// entity is the entity that was just removed — callers must check and
// ignore that case.
func (c *Chunk) Remove(row int) Entity {
	last := c.size - 1
	if row != last {
		c.entities[row] = c.entities[last]
		for _, d := range c.archetype.Descriptors {
			base := c.columnBase(d.Hash)
			src := unsafe.Add(base, d.Size*uintptr(last))
			dst := unsafe.Add(base, d.Size*uintptr(row))
			memCopy(dst, src, d.Size)
		}
	}
	for _, d := range c.archetype.Descriptors {
		base := c.columnBase(d.Hash)
		d.destruct(unsafe.Add(base, d.Size*uintptr(last)))
	}
	c.size--
	return c.entities[row]
}

// chunkGet returns a pointer to component T at row. Undefined if the
// chunk's archetype does not contain T; callers guarantee this via
// archetype match.
func chunkGet[T any](c *Chunk, row int) *T {
	d := descriptorFor[T]()
	base := c.columnBase(d.Hash)
	return (*T)(unsafe.Add(base, d.Size*uintptr(row)))
}

// chunkSet bit-copies value into component T's slot at row.
func chunkSet[T any](c *Chunk, row int, value T) {
	*chunkGet[T](c, row) = value
}

// GetEntity returns the entity stored at row.
func (c *Chunk) GetEntity(row int) Entity {
	return c.entities[row]
}

// CopyTo copies one row's worth of bytes, for every component present in
// both this chunk's archetype and other's, from fromRow in c to toRow in
// other. Used by cross-archetype migration.
func (c *Chunk) CopyTo(fromRow int, other *Chunk, toRow int) {
	for _, d := range c.archetype.Descriptors {
		dst := other.columnBase(d.Hash)
		if dst == nil {
			continue
		}
		src := c.columnBase(d.Hash)
		memCopy(
			unsafe.Add(dst, d.Size*uintptr(toRow)),
			unsafe.Add(src, d.Size*uintptr(fromRow)),
			d.Size,
		)
	}
}

// Capacity returns the maximum number of rows this chunk can hold.
func (c *Chunk) Capacity() int { return c.capacity }

// Size returns the current number of live rows.
func (c *Chunk) Size() int { return c.size }

// Full reports whether the chunk has no remaining free rows.
func (c *Chunk) Full() bool { return c.size >= c.capacity }

// Allocated reports whether the chunk's backing storage has been
// allocated. Chunks returned by newChunk are always allocated; the method
// exists for parity with the chunk-root free-slot scan.
func (c *Chunk) Allocated() bool { return c.entities != nil }

// memCopy copies size bytes from src to dst.
func memCopy(dst, src unsafe.Pointer, size uintptr) {
	if size == 0 {
		return
	}
	copy(unsafe.Slice((*byte)(dst), size), unsafe.Slice((*byte)(src), size))
}
