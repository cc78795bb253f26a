package loadingstate

// State of a LoadingState.
type State string

// StateNotStarted indicate no work has been initiated yet.
const StateNotStarted State = "NotStarted"

// StateLoading indicate work is in progress.
const StateLoading State = "Loading"

// StateSuccess indicate work completed with a value.
const StateSuccess State = "Success"

// StateFailure indicate work completed with an error.
const StateFailure State = "Failure"

// IsTerminalState tells whether the work finished
func (s State) IsTerminalState() bool {
	return s == StateSuccess || s == StateFailure
}

func (s State) String() string {
	return string(s)
}
