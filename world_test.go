package ecs_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ecs "github.com/go-realm/ecs"
)

type Position struct{ X, Y float64 }
type Velocity struct{ X, Y float64 }
type Health struct{ HP int }

func TestCreateAndDestroyEntity(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.Create1[Position](w)
	require.True(t, w.Exists(e))
	require.Equal(t, 1, w.Size())

	require.NoError(t, w.DestroyEntity(e))
	require.False(t, w.Exists(e))
	require.Equal(t, 0, w.Size())
}

func TestDestroyingDeadEntityReturnsError(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.Create1[Position](w)
	require.NoError(t, w.DestroyEntity(e))
	require.Error(t, w.DestroyEntity(e))
}

func TestGetSetRoundTrip(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.Create1[Position](w)
	require.NoError(t, ecs.Set(w, e, Position{X: 1, Y: 2}))

	pos, ok := ecs.Get[Position](w, e)
	require.True(t, ok)
	assert.Equal(t, 1.0, pos.X)
	assert.Equal(t, 2.0, pos.Y)
}

func TestSetOnMissingComponentFails(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.Create1[Position](w)
	err := ecs.Set(w, e, Velocity{X: 1})
	require.Error(t, err)
}

func TestAddMigratesEntityToNewArchetype(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.Create1[Position](w)
	require.False(t, ecs.Has[Velocity](w, e))

	require.NoError(t, ecs.Add1(w, e, Velocity{X: 5, Y: 6}))
	require.True(t, ecs.Has[Velocity](w, e))
	require.True(t, ecs.Has[Position](w, e))

	vel, ok := ecs.Get[Velocity](w, e)
	require.True(t, ok)
	assert.Equal(t, 5.0, vel.X)
}

func TestRemoveMigratesEntityAway(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.Create2[Position, Velocity](w)
	require.NoError(t, ecs.Remove1[Velocity](w, e))

	require.False(t, ecs.Has[Velocity](w, e))
	require.True(t, ecs.Has[Position](w, e))
}

func TestRemoveNonexistentComponentIsNoop(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.Create1[Position](w)
	require.NoError(t, ecs.Remove1[Velocity](w, e))
	require.True(t, ecs.Has[Position](w, e))
}

func TestMigrationPreservesSiblingData(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.Create2[Position, Health](w)
	require.NoError(t, ecs.Set(w, e, Position{X: 7, Y: 8}))
	require.NoError(t, ecs.Set(w, e, Health{HP: 42}))

	require.NoError(t, ecs.Add1(w, e, Velocity{X: 1}))

	pos, ok := ecs.Get[Position](w, e)
	require.True(t, ok)
	assert.Equal(t, 7.0, pos.X)

	hp, ok := ecs.Get[Health](w, e)
	require.True(t, ok)
	assert.Equal(t, 42, hp.HP)
}

func TestEachIteratesOnlyMatchingEntities(t *testing.T) {
	w := ecs.NewWorld()
	a := ecs.Create2[Position, Velocity](w)
	_ = ecs.Create1[Position](w) // does not carry Velocity

	require.NoError(t, ecs.Set(w, a, Position{X: 1}))
	require.NoError(t, ecs.Set(w, a, Velocity{X: 2}))

	seen := 0
	ecs.Each2(w, func(e ecs.Entity, p *Position, v *Velocity) {
		seen++
		assert.Equal(t, a, e)
		p.X += v.X
	})
	assert.Equal(t, 1, seen)

	pos, _ := ecs.Get[Position](w, a)
	assert.Equal(t, 3.0, pos.X)
}

func TestFilterPullAPI(t *testing.T) {
	w := ecs.NewWorld()
	for i := 0; i < 5; i++ {
		e := ecs.Create1[Position](w)
		require.NoError(t, ecs.Set(w, e, Position{X: float64(i)}))
	}

	f := ecs.NewFilter1[Position](w)
	count := 0
	var sum float64
	for f.Next() {
		count++
		sum += f.Get().X
	}
	assert.Equal(t, 5, count)
	assert.Equal(t, 10.0, sum)
}

func TestSingletonVisibleToEveryRow(t *testing.T) {
	w := ecs.NewWorld()
	type Gravity struct{ G float64 }
	ecs.RegisterSingleton(w, Gravity{G: 9.8})

	e1 := ecs.Create1[Position](w)
	e2 := ecs.Create1[Position](w)

	for _, e := range []ecs.Entity{e1, e2} {
		g, ok := ecs.Singleton[Gravity](w)
		require.True(t, ok)
		assert.Equal(t, 9.8, g.G)
		_ = e
	}

	require.NoError(t, ecs.SetSingleton(w, Gravity{G: 3.7}))
	g, _ := ecs.Singleton[Gravity](w)
	assert.Equal(t, 3.7, g.G)

	assert.Equal(t, ecs.WriteMask[Gravity](), w.SingletonMask())
}

type gravitySystem struct{ applied int }

func (s *gravitySystem) Update(w *ecs.World) {
	ecs.Each1(w, func(e ecs.Entity, v *Velocity) {
		v.Y -= 1
		s.applied++
	})
}
func (s *gravitySystem) Writes() ecs.Mask { return ecs.WriteMask[Velocity]() }
func (s *gravitySystem) Reads() ecs.Mask  { return 0 }

func TestSchedulerRunsRegisteredSystems(t *testing.T) {
	w := ecs.NewWorld(ecs.WithInitialCapacity(16))
	e := ecs.Create1[Velocity](w)
	require.NoError(t, ecs.Set(w, e, Velocity{Y: 10}))

	sys := &gravitySystem{}
	w.Scheduler().Insert(sys)
	require.NoError(t, w.Scheduler().ExecSequential())

	vel, _ := ecs.Get[Velocity](w, e)
	assert.Equal(t, 9.0, vel.Y)
	assert.Equal(t, 1, sys.applied)
}

func TestDeclareSystemDerivesMasksFromTags(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.Create2[Position, Velocity](w)
	require.NoError(t, ecs.Set(w, e, Position{X: 0}))
	require.NoError(t, ecs.Set(w, e, Velocity{X: 4, Y: 0}))

	moveSystem := ecs.DeclareSystem(func(w *ecs.World) {
		ecs.Each2(w, func(e ecs.Entity, p *Position, v *Velocity) {
			p.X += v.X
		})
	}, ecs.Write[Position]{}, ecs.Read[Velocity]{})

	assert.Equal(t, ecs.WriteMask[Position](), moveSystem.Writes())
	assert.Equal(t, ecs.ReadMask[Velocity](), moveSystem.Reads())

	w.Scheduler().Insert(moveSystem)
	require.NoError(t, w.Scheduler().ExecSequential())

	pos, _ := ecs.Get[Position](w, e)
	assert.Equal(t, 4.0, pos.X)
}

func TestEachViewResolvesSingletonAcrossEveryRow(t *testing.T) {
	w := ecs.NewWorld()
	type Gravity struct{ G float64 }
	ecs.RegisterSingleton(w, Gravity{G: 9.8})

	e1 := ecs.Create1[Velocity](w)
	e2 := ecs.Create1[Velocity](w)
	require.NoError(t, ecs.Set(w, e1, Velocity{Y: 0}))
	require.NoError(t, ecs.Set(w, e2, Velocity{Y: 0}))

	seen := 0
	ecs.EachView2[ecs.Write[Velocity], ecs.Read[Gravity]](w, func(v ecs.View) {
		seen++
		vel := ecs.ViewGet[Velocity](v)
		g := ecs.ViewGet[Gravity](v)
		vel.Y -= g.G
	})
	assert.Equal(t, 2, seen)

	v1, _ := ecs.Get[Velocity](w, e1)
	assert.Equal(t, -9.8, v1.Y)
}

func TestParallelEachVisitsEveryMatchingEntity(t *testing.T) {
	w := ecs.NewWorld()
	const n = 200
	ids := ecs.Batch1(w, n, func(i int) Position { return Position{X: float64(i)} })

	var mu sync.Mutex
	seen := make(map[ecs.Entity]float64, n)
	err := ecs.ParallelEach1(w, func(e ecs.Entity, p *Position) {
		mu.Lock()
		seen[e] = p.X
		mu.Unlock()
	})
	require.NoError(t, err)
	require.Len(t, seen, n)
	for i, id := range ids {
		assert.Equal(t, float64(i), seen[id])
	}
}

func TestBatchCreatesDistinctEntities(t *testing.T) {
	w := ecs.NewWorld()
	ids := ecs.Batch1(w, 10, func(i int) Position { return Position{X: float64(i)} })
	require.Len(t, ids, 10)

	seen := make(map[ecs.Entity]bool, 10)
	for _, id := range ids {
		require.False(t, seen[id])
		seen[id] = true
	}
	assert.Equal(t, 10, w.Size())
}

func TestWorldCapacityReflectsInitialCapacity(t *testing.T) {
	w := ecs.NewWorld(ecs.WithInitialCapacity(32))
	assert.GreaterOrEqual(t, w.Capacity(), 32)
}

func TestArchetypeOfReportsCurrentArchetype(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.Create1[Position](w)

	arch, ok := w.ArchetypeOf(e)
	require.True(t, ok)
	assert.Equal(t, ecs.WriteMask[Position](), arch.Mask())

	require.NoError(t, ecs.Add1(w, e, Velocity{X: 1}))
	arch, ok = w.ArchetypeOf(e)
	require.True(t, ok)
	assert.Equal(t, ecs.WriteMask2[Position, Velocity](), arch.Mask())
}

func TestArchetypeOfDeadEntityReportsFalse(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.Create1[Position](w)
	require.NoError(t, w.DestroyEntity(e))

	_, ok := w.ArchetypeOf(e)
	assert.False(t, ok)
}

func TestWorldRegisterSystemAndUpdate(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.Create1[Velocity](w)
	require.NoError(t, ecs.Set(w, e, Velocity{Y: 10}))

	sys := &gravitySystem{}
	w.RegisterSystem(sys)
	assert.Equal(t, 1, w.SystemCount())

	require.NoError(t, w.Update())
	vel, _ := ecs.Get[Velocity](w, e)
	assert.Equal(t, 9.0, vel.Y)

	require.NoError(t, w.UpdateSequential())
	vel, _ = ecs.Get[Velocity](w, e)
	assert.Equal(t, 8.0, vel.Y)
}

func TestCreate2PanicsOnDuplicateComponent(t *testing.T) {
	w := ecs.NewWorld()
	assert.Panics(t, func() {
		ecs.Create2[Position, Position](w)
	})
}

func TestAdd2ReturnsErrorOnDuplicateComponent(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.Create1[Health](w)
	err := ecs.Add2(w, e, Position{}, Position{})
	require.Error(t, err)
}

// TestSchedulerFusionKeepsMergedSystemsBeforeNewest builds three systems
// whose masks force two existing blocks to merge, then checks that the
// merged-in systems run before the system whose insertion triggered the
// merge — matching the fusion order other blocks were already in.
func TestSchedulerFusionKeepsMergedSystemsBeforeNewest(t *testing.T) {
	w := ecs.NewWorld()
	var order []string
	record := func(name string) func(*ecs.World) {
		return func(*ecs.World) { order = append(order, name) }
	}

	a := ecs.DeclareSystem(record("A"), ecs.Write[Position]{})
	c := ecs.DeclareSystem(record("C"), ecs.Write[Velocity]{})
	e := ecs.DeclareSystem(record("E"), ecs.Write[Position]{}, ecs.Write[Velocity]{})

	w.RegisterSystem(a)
	w.RegisterSystem(c)
	w.RegisterSystem(e)

	require.NoError(t, w.UpdateSequential())
	assert.Equal(t, []string{"A", "C", "E"}, order)
}
