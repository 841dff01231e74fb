package window

// Registry maps native window identities to the per-window state a host
// callback needs. Callback-driven backends own one and consult it from
// their trampoline. It is not safe for concurrent use.
type Registry[T any] struct {
	entries map[Handle]T
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{entries: make(map[Handle]T)}
}

// Register binds h to v, replacing any previous binding.
func (r *Registry[T]) Register(h Handle, v T) {
	if h == 0 {
		return
	}
	r.entries[h] = v
}

// Lookup returns the value bound to h.
func (r *Registry[T]) Lookup(h Handle) (T, bool) {
	v, ok := r.entries[h]
	return v, ok
}

// Unregister removes h and returns the value it was bound to.
func (r *Registry[T]) Unregister(h Handle) (T, bool) {
	v, ok := r.entries[h]
	if ok {
		delete(r.entries, h)
	}
	return v, ok
}

// Len reports the number of bound handles.
func (r *Registry[T]) Len() int {
	return len(r.entries)
}
