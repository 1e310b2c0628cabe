package lazy

// Func wraps fn so that it runs on the first call of the returned function
// only. Later calls return the first result.
func Func[T any](fn func() T) func() T {
	return New(fn).Get
}

// FuncErr is like Func, except a call that returns an error is not
// remembered: the next call runs fn again.
func FuncErr[T any](fn func() (T, error)) func() (T, error) {
	return NewWithError(fn).Get
}
