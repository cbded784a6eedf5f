// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query mem.prof

package main

import (
	"os"
	"runtime"
	"runtime/pprof"

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

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

func main() {
	f, _ := os.Create("cpu.prof")
	_ = pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	count := 50
	iters := 10000
	entities := 100000
	run(count, iters, entities)

	memFile, _ := os.Create("mem.prof")
	defer memFile.Close()
	runtime.GC()
	_ = pprof.WriteHeapProfile(memFile)
}

func run(rounds, iters, numEntities int) {
	for r := 0; r < rounds; r++ {
		w := ecs.NewWorld(ecs.WithInitialCapacity(numEntities))
		_ = ecs.Batch2(w, numEntities, func(i int) (comp1, comp2) {
			return comp1{V: int64(i)}, comp2{V: int64(i)}
		})
		for i := 0; i < numEntities; i++ {
			// comp3/comp4 are added on half the entities so the query
			// below exercises both a matching and a non-matching
			// archetype in the same world.
			_ = ecs.Create4[comp1, comp2, comp3, comp4](w)
		}

		query := ecs.NewFilter4[comp1, comp2, comp3, comp4](w)
		for i := 0; i < iters; i++ {
			query.Reset()
			for query.Next() {
				c1, c2 := query.Get1(), query.Get2()
				c1.V += c2.V
				c1.W += c2.W
			}
		}
	}
}
