package listtable

import "sync"

// Filter is an ordered chain of transforms applied to a value. With nothing
// registered Apply returns its input.
type Filter[T any] struct {
	mu  sync.RWMutex
	fns []func(T) T
}

// Add registers fn to run after the callbacks already registered.
func (f *Filter[T]) Add(fn func(T) T) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fns = append(f.fns, fn)
}

// Apply runs v through every registered callback in registration order.
func (f *Filter[T]) Apply(v T) T {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, fn := range f.fns {
		v = fn(v)
	}

	return v
}

// Len returns the number of registered callbacks.
func (f *Filter[T]) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return len(f.fns)
}
