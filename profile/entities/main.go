// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/pkg/profile"

	ecs "github.com/go-realm/ecs"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for r := 0; r < rounds; r++ {
		w := ecs.NewWorld(ecs.WithInitialCapacity(numEntities))

		for i := 0; i < iters; i++ {
			ids := ecs.Batch2(w, numEntities, func(i int) (comp1, comp2) {
				return comp1{}, comp2{V: int64(i), W: int64(i)}
			})

			ecs.Each2(w, func(_ ecs.Entity, c1 *comp1, c2 *comp2) {
				c1.V += c2.V
				c1.W += c2.W
			})

			w.DestroyEntities(ids)
		}
	}
}
