package lazy

// ErrCell is a lazily constructed value whose factory can fail. Errors are
// returned to the caller and never cached.
type ErrCell[T any] struct {
	slot    Slot[T]
	factory func() (T, error)
}

// NewWithError returns an uninitialized ErrCell. Panics if factory is nil.
func NewWithError[T any](factory func() (T, error)) *ErrCell[T] {
	if factory == nil {
		panic("lazy: nil factory")
	}
	return &ErrCell[T]{factory: factory}
}

// Initialize runs the factory if the cell is not yet initialized. It
// reports whether this call initialized the cell, along with any error the
// factory returned. After an error the cell remains uninitialized.
func (c *ErrCell[T]) Initialize() (bool, error) {
	return c.slot.FillErr(c.factory)
}

// Get returns the value, initializing the cell first if needed. On failure
// it returns the zero value and the factory's error.
func (c *ErrCell[T]) Get() (T, error) {
	if _, err := c.Initialize(); err != nil {
		var zero T
		return zero, err
	}
	val, _ := c.slot.Load()
	return val, nil
}

func (c *ErrCell[T]) Peek() (T, bool) {
	return c.slot.Load()
}

func (c *ErrCell[T]) Initialized() bool {
	return c.slot.Filled()
}
