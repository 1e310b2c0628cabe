// Useful for creating methods that lazily initialize a derived value
// and run only once no matter how many times the method is called.
// Simply add a private field to your struct of type Value[T], and
// then return the value from a public getter method using Get[T].
// If initFunc panics, the field stays empty and the next Get retries.
package lazycache

import "github.com/river-now/lazy/kit/lazy"

type Value[T any] struct {
	slot lazy.Slot[T]
}

func Get[T any](v *Value[T], initFunc func() T) T {
	v.slot.Fill(initFunc)
	val, _ := v.slot.Load()
	return val
}

// Peek returns the cached value without running any initializer.
func Peek[T any](v *Value[T]) (T, bool) {
	return v.slot.Load()
}
