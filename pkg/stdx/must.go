package stdx

// Must0 panics when err is non-nil.
func Must0(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns v, or panics when err is non-nil. It is meant for setup code
// where a failure is a programming error, for example subscribing a handler
// that is known to be non-nil:
//
//	sub := stdx.Must1(relay.Subscribe(handle))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
