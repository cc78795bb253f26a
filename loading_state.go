package loadingstate

import "fmt"

// LoadingState is the status of some pending work: NotStarted, Loading,
// Success with a value, or Failure with an error.
// It is a value type, every operation returns a new LoadingState instead of modifying the receiver.
// The zero value is NotStarted.
type LoadingState[V, E any] struct {
	// empty state means NotStarted, so the zero value is a valid state.
	state State
	value V
	err   E
}

// NotStarted returns a state where no work has been initiated yet.
func NotStarted[V, E any]() LoadingState[V, E] {
	return LoadingState[V, E]{}
}

// Loading returns a state where work is in progress.
func Loading[V, E any]() LoadingState[V, E] {
	return LoadingState[V, E]{state: StateLoading}
}

// Success returns a state where work completed and produced value.
func Success[V, E any](value V) LoadingState[V, E] {
	return LoadingState[V, E]{state: StateSuccess, value: value}
}

// Failure returns a state where work completed and produced err.
func Failure[V, E any](err E) LoadingState[V, E] {
	return LoadingState[V, E]{state: StateFailure, err: err}
}

// State return the active variant.
func (s LoadingState[V, E]) State() State {
	if s.state == "" {
		return StateNotStarted
	}
	return s.state
}

func (s LoadingState[V, E]) IsNotStarted() bool {
	return s.state == ""
}

func (s LoadingState[V, E]) IsLoading() bool {
	return s.state == StateLoading
}

func (s LoadingState[V, E]) IsSuccess() bool {
	return s.state == StateSuccess
}

func (s LoadingState[V, E]) IsFailure() bool {
	return s.state == StateFailure
}

// MaybeValue returns the value and true if the state is Success,
// zero value and false otherwise.
func (s LoadingState[V, E]) MaybeValue() (V, bool) {
	if s.state != StateSuccess {
		return *new(V), false
	}
	return s.value, true
}

// MaybeError returns the error and true if the state is Failure,
// zero value and false otherwise.
func (s LoadingState[V, E]) MaybeError() (E, bool) {
	if s.state != StateFailure {
		return *new(E), false
	}
	return s.err, true
}

// String renders the state with its payload, e.g. "Success(42)" or "Failure(timeout)".
func (s LoadingState[V, E]) String() string {
	switch s.state {
	case StateSuccess:
		return fmt.Sprintf("%s(%v)", StateSuccess, s.value)
	case StateFailure:
		return fmt.Sprintf("%s(%v)", StateFailure, s.err)
	default:
		return s.State().String()
	}
}
