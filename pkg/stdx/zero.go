package stdx

// Zero returns the zero value of T. Generic code uses it as the value to
// return alongside an error.
func Zero[T any]() T {
	var zero T
	return zero
}
