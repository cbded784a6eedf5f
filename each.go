package ecs

// Each1 invokes fn once per entity carrying T, across every chunk of every
// matching archetype, in archetype/chunk/row order.
func Each1[T any](w *World, fn func(e Entity, a *T)) {
	f := NewFilter1[T](w)
	for f.Next() {
		fn(f.Entity(), f.Get())
	}
}

// Each2 invokes fn once per entity carrying both T1 and T2.
func Each2[T1, T2 any](w *World, fn func(e Entity, a *T1, b *T2)) {
	f := NewFilter2[T1, T2](w)
	for f.Next() {
		fn(f.Entity(), f.Get1(), f.Get2())
	}
}

// Each3 invokes fn once per entity carrying T1, T2 and T3.
func Each3[T1, T2, T3 any](w *World, fn func(e Entity, a *T1, b *T2, c *T3)) {
	f := NewFilter3[T1, T2, T3](w)
	for f.Next() {
		fn(f.Entity(), f.Get1(), f.Get2(), f.Get3())
	}
}

// Each4 invokes fn once per entity carrying T1, T2, T3 and T4.
func Each4[T1, T2, T3, T4 any](w *World, fn func(e Entity, a *T1, b *T2, c *T3, d *T4)) {
	f := NewFilter4[T1, T2, T3, T4](w)
	for f.Next() {
		fn(f.Entity(), f.Get1(), f.Get2(), f.Get3(), f.Get4())
	}
}

// EachView1 invokes fn once per live row of every archetype matched by A,
// handing fn a View rather than typed pointers directly so a component
// registered as a singleton resolves transparently alongside per-entity
// columns — the push-based counterpart to Filter's pull API, modelled on
// the closure-taking-a-view dispatch style.
func EachView1[A componentArg](w *World, fn func(v View)) {
	var a A
	mask := queryMask(w, a)
	c := newCursor(w, mask)
	for c.advance() {
		fn(View{w: w, c: c.chunk(), row: c.row})
	}
}

// EachView2 is EachView1 generalised to two access tags.
func EachView2[A, B componentArg](w *World, fn func(v View)) {
	var a A
	var b B
	mask := queryMask(w, a, b)
	c := newCursor(w, mask)
	for c.advance() {
		fn(View{w: w, c: c.chunk(), row: c.row})
	}
}

// EachView3 is EachView1 generalised to three access tags.
func EachView3[A, B, C componentArg](w *World, fn func(v View)) {
	var a A
	var b B
	var cc C
	mask := queryMask(w, a, b, cc)
	c := newCursor(w, mask)
	for c.advance() {
		fn(View{w: w, c: c.chunk(), row: c.row})
	}
}

// EachView4 is EachView1 generalised to four access tags.
func EachView4[A, B, C, D componentArg](w *World, fn func(v View)) {
	var a A
	var b B
	var cc C
	var d D
	mask := queryMask(w, a, b, cc, d)
	c := newCursor(w, mask)
	for c.advance() {
		fn(View{w: w, c: c.chunk(), row: c.row})
	}
}
