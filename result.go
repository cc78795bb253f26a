package loadingstate

// FromResult convert a (value, error) pair, as returned by most Go functions, into a finished state.
// non-nil err gives Failure(err), value is dropped; nil err gives Success(value).
func FromResult[V any](value V, err error) LoadingState[V, error] {
	if err != nil {
		return Failure[V](err)
	}

	return Success[V, error](value)
}
