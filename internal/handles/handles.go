// Package handles provides integer handles for Go values that the native
// engine must carry around as opaque user data.
//
// The engine stores a single void* per callback registration or driver. A Go
// pointer cannot be kept in C memory, so the value is registered here and the
// returned Handle travels through the engine instead. The value stays
// reachable, and therefore never moves or gets collected, until Delete.
package handles

import "sync"

// Handle identifies a registered value. The zero Handle is never issued.
type Handle uintptr

// Registry maps handles to values. It is safe for concurrent use, although the
// engine only touches it from the goroutine driving the scheduler.
type Registry struct {
	mu     sync.RWMutex
	values map[Handle]any
	next   Handle
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		values: make(map[Handle]any),
		next:   1,
	}
}

// Register stores v and returns its handle.
func (r *Registry) Register(v any) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	h := r.next
	r.next++
	r.values[h] = v
	return h
}

// Value returns the value stored under h.
func (r *Registry) Value(h Handle) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[h]
	return v, ok
}

// Delete releases h. Deleting an unknown handle is a no-op.
func (r *Registry) Delete(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, h)
}

// Len reports how many values are registered.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.values)
}
