package ecs

import "reflect"

// singletonStore holds at most one pointer per component type, addressed
// by the same Descriptor identity used for archetype components. Values
// are boxed as pointers so SingletonPtr can hand out a stable, mutable
// address the way a chunk column does for per-entity components. Views
// resolve a singleton-registered type to its world-wide instance before
// looking at the current chunk's columns.
type singletonStore struct {
	values map[reflect.Type]any
	mask   Mask
}

func newSingletonStore() *singletonStore {
	return &singletonStore{values: make(map[reflect.Type]any, 4)}
}

// RegisterSingleton installs value as the world-wide instance of T,
// replacing any previous value.
func RegisterSingleton[T any](w *World, value T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	w.singletons.values[t] = &value
	w.singletons.mask = w.singletons.mask.union(descriptorFor[T]().Mask)
}

// Singleton returns a copy of the world-wide instance of T and true, or
// the zero value and false if none was registered.
func Singleton[T any](w *World) (T, bool) {
	ptr, ok := singletonPtr[T](w)
	if !ok {
		var zero T
		return zero, false
	}
	return *ptr, true
}

// SingletonPtr returns a stable pointer to the world-wide instance of T,
// or nil and false if none was registered. Mutations through the pointer
// are visible to every subsequent Singleton/SingletonPtr/View call.
func SingletonPtr[T any](w *World) (*T, bool) {
	return singletonPtr[T](w)
}

func singletonPtr[T any](w *World) (*T, bool) {
	v, ok := w.singletons.values[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// SetSingleton overwrites the world-wide instance of T. It returns
// ErrComponentAbsent if T has never been registered via RegisterSingleton.
func SetSingleton[T any](w *World, value T) error {
	ptr, ok := singletonPtr[T](w)
	if !ok {
		return errorf(ErrComponentAbsent, "singleton %v", reflect.TypeOf((*T)(nil)).Elem())
	}
	*ptr = value
	return nil
}

// SingletonMask returns the combined mask of every component type
// currently registered as a singleton.
func (w *World) SingletonMask() Mask {
	return w.singletons.mask
}
