package ecs

import "testing"

func TestEntityManagerCreateAndExists(t *testing.T) {
	m := newEntityManager(4)
	e := m.create(location{mask: 1, chunk: 0, row: 0})
	if !m.exists(e) {
		t.Fatalf("expected freshly created entity to exist")
	}
	if m.liveCount() != 1 {
		t.Fatalf("expected live count 1, got %d", m.liveCount())
	}
}

func TestEntityManagerRemoveInvalidatesHandle(t *testing.T) {
	m := newEntityManager(4)
	e := m.create(location{mask: 1})
	m.remove(e)
	if m.exists(e) {
		t.Fatalf("expected removed entity to no longer exist")
	}
	if m.liveCount() != 0 {
		t.Fatalf("expected live count 0 after remove, got %d", m.liveCount())
	}
}

func TestEntityManagerRecyclesSlotWithNewGeneration(t *testing.T) {
	m := newEntityManager(4)
	e1 := m.create(location{mask: 1})
	m.remove(e1)
	e2 := m.create(location{mask: 2})

	if e1.index() != e2.index() {
		t.Fatalf("expected the freed slot to be reused, got indices %d and %d", e1.index(), e2.index())
	}
	if e1.generation() == e2.generation() {
		t.Fatalf("expected a recycled slot to bump its generation")
	}
	if m.exists(e1) {
		t.Fatalf("stale handle e1 should not exist after its slot was recycled")
	}
	if !m.exists(e2) {
		t.Fatalf("expected e2 to exist")
	}
}

func TestEntityManagerUpdateLocation(t *testing.T) {
	m := newEntityManager(4)
	e := m.create(location{mask: 1, chunk: 0, row: 0})
	m.update(e, location{mask: 2, chunk: 1, row: 3})

	loc, ok := m.get(e)
	if !ok {
		t.Fatalf("expected entity to still exist after update")
	}
	if loc.mask != 2 || loc.chunk != 1 || loc.row != 3 {
		t.Fatalf("unexpected location after update: %+v", loc)
	}
}

func TestEntityManagerExistsRejectsOutOfRangeIndex(t *testing.T) {
	m := newEntityManager(4)
	bogus := newEntity(1, 999)
	if m.exists(bogus) {
		t.Fatalf("expected an out-of-range index to be rejected")
	}
}

// TestEntityManagerRemoveMiddleRelocatesTailHandle removes a non-tail
// entity and checks that the entity swapped into its dense slot still
// resolves to the right location — this only holds if the relocated
// entity's handle was repointed before the dense arrays were compacted.
func TestEntityManagerRemoveMiddleRelocatesTailHandle(t *testing.T) {
	m := newEntityManager(4)
	e0 := m.create(location{mask: 1, row: 0})
	e1 := m.create(location{mask: 1, row: 1})
	e2 := m.create(location{mask: 1, row: 2})

	m.remove(e0)

	if m.liveCount() != 2 {
		t.Fatalf("expected live count 2, got %d", m.liveCount())
	}
	loc1, ok := m.get(e1)
	if !ok || loc1.row != 1 {
		t.Fatalf("expected e1's location to survive untouched, got %+v ok=%v", loc1, ok)
	}
	loc2, ok := m.get(e2)
	if !ok || loc2.row != 2 {
		t.Fatalf("expected e2 (relocated by the tail swap) to still resolve to row 2, got %+v ok=%v", loc2, ok)
	}
}

func TestEntityManagerCapacityReportsBackingArray(t *testing.T) {
	m := newEntityManager(8)
	if m.capacity() < 8 {
		t.Fatalf("expected capacity to reflect the requested initial capacity, got %d", m.capacity())
	}
}
