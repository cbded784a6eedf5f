package ecs

import "testing"

type testPosition struct{ X, Y float64 }
type testVelocity struct{ X, Y float64 }

func TestDescriptorForIsCached(t *testing.T) {
	d1 := descriptorFor[testPosition]()
	d2 := descriptorFor[testPosition]()
	if d1 != d2 {
		t.Fatalf("expected the same descriptor pointer on repeated calls")
	}
}

func TestDescriptorForDistinctTypes(t *testing.T) {
	pos := descriptorFor[testPosition]()
	vel := descriptorFor[testVelocity]()
	if pos.Hash == vel.Hash {
		t.Fatalf("distinct types should not share a hash (unless deliberately testing collision)")
	}
}

func TestMaskForSetsExactlyOneBit(t *testing.T) {
	d := descriptorFor[testPosition]()
	if d.Mask == 0 {
		t.Fatalf("mask should have exactly one bit set, got zero")
	}
	if d.Mask&(d.Mask-1) != 0 {
		t.Fatalf("mask should have exactly one bit set, got %v", d.Mask)
	}
}

func TestAlignUp(t *testing.T) {
	cases := []struct{ offset, align, want uintptr }{
		{0, 8, 0},
		{1, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{3, 4, 4},
		{5, 1, 5},
	}
	for _, c := range cases {
		got := alignUp(c.offset, c.align)
		if got != c.want {
			t.Errorf("alignUp(%d, %d) = %d, want %d", c.offset, c.align, got, c.want)
		}
	}
}
