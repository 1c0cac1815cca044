package reservation

import (
	"strings"
	"sync"
)

// Registry holds the strategies available for one capability, in
// registration order.
type Registry[T Strategy] struct {
	mu    sync.RWMutex
	items []T
}

func NewRegistry[T Strategy](items ...T) *Registry[T] {
	r := &Registry[T]{}
	for _, it := range items {
		r.Register(it)
	}
	return r
}

// Register adds s under s.Type(). A later registration with the same key
// replaces the earlier one in place.
func (r *Registry[T]) Register(s T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, cur := range r.items {
		if strings.EqualFold(cur.Type(), s.Type()) {
			r.items[i] = s
			return
		}
	}
	r.items = append(r.items, s)
}

func (r *Registry[T]) All() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Lookup matches key case-insensitively.
func (r *Registry[T]) Lookup(key string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if strings.EqualFold(it.Type(), key) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// FindByType is Lookup falling back to the first registered strategy when
// nothing matches. On an empty registry it returns the zero value.
func (r *Registry[T]) FindByType(key string) T {
	if s, ok := r.Lookup(key); ok {
		return s
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.items) == 0 {
		var zero T
		return zero
	}
	return r.items[0]
}

func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
