package lazy

// GCell is a Cell without synchronization, for values confined to one
// goroutine (G is for goroutine). Calling it from several goroutines at
// once is a data race.
//
// A factory that reads its own GCell panics instead of looping.
type GCell[T any] struct {
	factory func() T
	val     T
	filled  bool
	calling bool
}

func NewG[T any](factory func() T) *GCell[T] {
	if factory == nil {
		panic("lazy: nil factory")
	}
	return &GCell[T]{factory: factory}
}

func (c *GCell[T]) Initialize() bool {
	if c.filled {
		return false
	}
	if c.calling {
		panic("lazy: recursive fill")
	}
	c.calling = true
	defer func() { c.calling = false }()
	c.val = c.factory()
	c.filled = true
	return true
}

func (c *GCell[T]) Get() T {
	c.Initialize()
	return c.val
}

func (c *GCell[T]) Peek() (T, bool) {
	if !c.filled {
		var zero T
		return zero, false
	}
	return c.val, true
}

func (c *GCell[T]) Initialized() bool {
	return c.filled
}
