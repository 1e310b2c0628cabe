// Package lazy defers construction of a value until it is first needed.
// The factory passed to New runs to completion at most once; every later
// access returns the same value. A factory that panics (or, for ErrCell,
// returns an error) leaves the cell uninitialized, and the next access
// tries again.
//
// Cell and ErrCell are safe for concurrent use. GCell is the unsynchronized
// variant for values owned by a single goroutine.
package lazy

// Cell is a lazily constructed value of type T.
type Cell[T any] struct {
	slot    Slot[T]
	factory func() T
}

// New returns an uninitialized Cell that will build its value with factory.
// Panics if factory is nil.
func New[T any](factory func() T) *Cell[T] {
	if factory == nil {
		panic("lazy: nil factory")
	}
	return &Cell[T]{factory: factory}
}

// Initialize runs the factory if the cell is not yet initialized, and
// reports whether this call did so. Exactly one call over the lifetime of
// the cell returns true.
func (c *Cell[T]) Initialize() bool {
	return c.slot.Fill(c.factory)
}

// Get returns the value, initializing the cell first if needed.
func (c *Cell[T]) Get() T {
	c.Initialize()
	val, _ := c.slot.Load()
	return val
}

// Peek returns the value and true if the cell is initialized. It never runs
// the factory.
func (c *Cell[T]) Peek() (T, bool) {
	return c.slot.Load()
}

func (c *Cell[T]) Initialized() bool {
	return c.slot.Filled()
}
