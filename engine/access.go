package engine

// Get returns a copy of the entity's component of type T, resolved
// through T's kind tag. The two return values distinguish absence
// from the zero value.
func Get[T Component](w *World, e Entity) (T, bool) {
	var zero T
	c, ok := w.GetComponent(e, zero.Kind())
	if !ok {
		return zero, false
	}
	v, ok := c.(T)
	return v, ok
}

// Mutate hands fn an exclusive writable view of the entity's
// component of type T and stores the result back. Components are
// stored by value, so this is the only write path; no aliasing
// reference escapes fn. Returns false (fn not called) if the entity
// or component is absent.
func Mutate[T Component](w *World, e Entity, fn func(*T)) bool {
	var zero T
	c, ok := w.GetComponent(e, zero.Kind())
	if !ok {
		return false
	}
	v, ok := c.(T)
	if !ok {
		return false
	}
	fn(&v)
	w.AddComponent(e, v)
	return true
}
