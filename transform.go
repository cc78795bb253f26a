package loadingstate

// MapValue returns a state of the same variant with transform applied to the value.
//
//	transform only runs when s is Success, and runs exactly once.
//	NotStarted, Loading and Failure pass through, the error is untouched.
func MapValue[V, E, NV any](s LoadingState[V, E], transform func(V) NV) LoadingState[NV, E] {
	switch s.state {
	case StateSuccess:
		return Success[NV, E](transform(s.value))
	case StateFailure:
		return Failure[NV](s.err)
	case StateLoading:
		return Loading[NV, E]()
	default:
		return NotStarted[NV, E]()
	}
}

// MapError is the mirror of MapValue, transform only runs when s is Failure.
func MapError[V, E, NE any](s LoadingState[V, E], transform func(E) NE) LoadingState[V, NE] {
	switch s.state {
	case StateSuccess:
		return Success[V, NE](s.value)
	case StateFailure:
		return Failure[V](transform(s.err))
	case StateLoading:
		return Loading[V, NE]()
	default:
		return NotStarted[V, NE]()
	}
}

// IgnoringValue drops the value, keeping only the variant and the error.
func IgnoringValue[V, E any](s LoadingState[V, E]) LoadingState[struct{}, E] {
	return MapValue(s, func(V) struct{} { return struct{}{} })
}

// IgnoringError drops the error, keeping only the variant and the value.
func IgnoringError[V, E any](s LoadingState[V, E]) LoadingState[V, struct{}] {
	return MapError(s, func(E) struct{} { return struct{}{} })
}
