package ecs

import "golang.org/x/sync/errgroup"

// matchingChunks snapshots every chunk currently matching mask. Taking the
// snapshot up front means the parallel workers below never observe a
// chunk list that changes underneath them — callers must not mutate the
// world while workers are running, the same rule sequential iteration
// already relies on.
func matchingChunks(w *World, mask Mask) []*Chunk {
	var chunks []*Chunk
	for m, root := range w.roots {
		if !m.contains(mask) {
			continue
		}
		chunks = append(chunks, root.chunks...)
	}
	return chunks
}

// ParallelEach1 runs fn once per entity carrying T, fanning out one
// goroutine per matching chunk via errgroup. fn must be safe to call
// concurrently; rows within a single chunk still run sequentially on that
// chunk's goroutine.
func ParallelEach1[T any](w *World, fn func(e Entity, a *T)) error {
	mask := queryMask(w, Read[T]{})
	chunks := matchingChunks(w, mask)

	var g errgroup.Group
	for _, c := range chunks {
		c := c
		g.Go(func() error {
			for row := 0; row < c.Size(); row++ {
				fn(c.GetEntity(row), chunkGet[T](c, row))
			}
			return nil
		})
	}
	return g.Wait()
}

// ParallelEach2 is ParallelEach1 generalised to two component types.
func ParallelEach2[T1, T2 any](w *World, fn func(e Entity, a *T1, b *T2)) error {
	mask := queryMask(w, Read[T1]{}, Read[T2]{})
	chunks := matchingChunks(w, mask)

	var g errgroup.Group
	for _, c := range chunks {
		c := c
		g.Go(func() error {
			for row := 0; row < c.Size(); row++ {
				fn(c.GetEntity(row), chunkGet[T1](c, row), chunkGet[T2](c, row))
			}
			return nil
		})
	}
	return g.Wait()
}

// ParallelEach3 is ParallelEach1 generalised to three component types.
func ParallelEach3[T1, T2, T3 any](w *World, fn func(e Entity, a *T1, b *T2, c *T3)) error {
	mask := queryMask(w, Read[T1]{}, Read[T2]{}, Read[T3]{})
	chunks := matchingChunks(w, mask)

	var g errgroup.Group
	for _, ch := range chunks {
		ch := ch
		g.Go(func() error {
			for row := 0; row < ch.Size(); row++ {
				fn(ch.GetEntity(row), chunkGet[T1](ch, row), chunkGet[T2](ch, row), chunkGet[T3](ch, row))
			}
			return nil
		})
	}
	return g.Wait()
}

// ParallelEach4 is ParallelEach1 generalised to four component types.
func ParallelEach4[T1, T2, T3, T4 any](w *World, fn func(e Entity, a *T1, b *T2, c *T3, d *T4)) error {
	mask := queryMask(w, Read[T1]{}, Read[T2]{}, Read[T3]{}, Read[T4]{})
	chunks := matchingChunks(w, mask)

	var g errgroup.Group
	for _, ch := range chunks {
		ch := ch
		g.Go(func() error {
			for row := 0; row < ch.Size(); row++ {
				fn(ch.GetEntity(row), chunkGet[T1](ch, row), chunkGet[T2](ch, row), chunkGet[T3](ch, row), chunkGet[T4](ch, row))
			}
			return nil
		})
	}
	return g.Wait()
}
