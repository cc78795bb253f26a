package loadingstate

// Equal reports whether a and b are the same variant with equal payloads.
// For comparable V and E this is the same as a == b.
func Equal[V, E comparable](a, b LoadingState[V, E]) bool {
	return EqualFunc(a, b,
		func(x, y V) bool { return x == y },
		func(x, y E) bool { return x == y })
}

// EqualFunc is like Equal but compares payloads with eqValue and eqError,
// for payload types that are not comparable, or need looser equality (errors.Is).
//
//	eqValue is only called when both are Success, eqError only when both are Failure.
func EqualFunc[V, E any](a, b LoadingState[V, E], eqValue func(V, V) bool, eqError func(E, E) bool) bool {
	if a.state != b.state {
		return false
	}

	switch a.state {
	case StateSuccess:
		return eqValue(a.value, b.value)
	case StateFailure:
		return eqError(a.err, b.err)
	default:
		return true
	}
}
