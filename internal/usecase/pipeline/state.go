package pipeline

import "fmt"

// State is one named stage of a minutes-generation invocation
type State string

const (
	StateIdle             State = "idle"
	StateTranscriptLoaded State = "transcript_loaded"
	StateValidated        State = "validated"
	StateSummarized       State = "summarized"
	StateExtractedActions State = "extracted_actions"
	StateComposed         State = "composed"
	StateDone             State = "done"
	StateFailed           State = "failed"
)

// IsTerminal reports whether the state is terminal
func (s State) IsTerminal() bool {
	return s == StateDone || s == StateFailed
}

// Transition validates a single state change and returns the new state.
// Failed is reachable from every non-terminal state; the forward path is
// strictly linear.
func Transition(from, to State) (State, error) {
	if from.IsTerminal() {
		return from, fmt.Errorf("disallowed transition: %s -> %s (terminal)", from, to)
	}
	if to == StateFailed {
		return StateFailed, nil
	}
	if next, ok := forward[from]; ok && next == to {
		return to, nil
	}
	return from, fmt.Errorf("disallowed transition: %s -> %s", from, to)
}

var forward = map[State]State{
	StateIdle:             StateTranscriptLoaded,
	StateTranscriptLoaded: StateValidated,
	StateValidated:        StateSummarized,
	StateSummarized:       StateExtractedActions,
	StateExtractedActions: StateComposed,
	StateComposed:         StateDone,
}
