package lazy

import (
	"sync"
	"sync/atomic"
)

// Slot is an empty-or-filled holder for a single value of type T. The zero
// value is an empty slot, so a Slot can live directly in a struct field.
// Once filled, a Slot is never cleared or overwritten. Any T can be stored,
// including zero values and nil pointers, and reads back as present.
//
// A Slot must not be copied after first use.
type Slot[T any] struct {
	filled atomic.Bool
	mu     sync.Mutex
	val    T
}

// Fill runs fn and stores its result if the slot is empty, and reports
// whether this call filled it. Concurrent callers block until the filling
// call returns. If fn panics, the slot stays empty and the panic propagates.
func (s *Slot[T]) Fill(fn func() T) bool {
	if s.filled.Load() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.filled.Load() {
		return false
	}
	s.val = fn()
	s.filled.Store(true)
	return true
}

// FillErr is like Fill for a fallible fn. A non-nil error leaves the slot
// empty, so a later call tries again.
func (s *Slot[T]) FillErr(fn func() (T, error)) (bool, error) {
	if s.filled.Load() {
		return false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.filled.Load() {
		return false, nil
	}
	val, err := fn()
	if err != nil {
		return false, err
	}
	s.val = val
	s.filled.Store(true)
	return true, nil
}

// Load returns the stored value and true, or the zero value and false if
// the slot is empty. It never blocks on an in-flight Fill.
func (s *Slot[T]) Load() (T, bool) {
	if s.filled.Load() {
		return s.val, true
	}
	var zero T
	return zero, false
}

func (s *Slot[T]) Filled() bool {
	return s.filled.Load()
}
