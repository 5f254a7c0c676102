// Package flow defines the screen flow of the attestation client as an
// explicit state machine. Every legal screen transition is listed in one
// table; anything not in the table is rejected.
package flow

import "fmt"

// State is one screen of the attestation flow.
type State int

const (
	StateSpecialization State = iota
	StateProfile
	StateDifficulty
	StateTest
	StateResult
	StateStats
)

func (s State) String() string {
	switch s {
	case StateSpecialization:
		return "specialization"
	case StateProfile:
		return "profile"
	case StateDifficulty:
		return "difficulty"
	case StateTest:
		return "test"
	case StateResult:
		return "result"
	case StateStats:
		return "stats"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Event is a user- or system-initiated trigger for a screen transition.
type Event int

const (
	// EventSelectSpecialization records a chosen specialization.
	EventSelectSpecialization Event = iota
	// EventProfileSubmitted fires after the profile passed validation.
	EventProfileSubmitted
	// EventSessionStarted fires when the remote service accepted a test start.
	EventSessionStarted
	// EventFinalized fires when a graded result has been received.
	EventFinalized
	// EventBack returns to the previous selection screen.
	EventBack
	// EventAbort cancels an in-progress test, discarding the session.
	EventAbort
	// EventExit leaves the result screen, restarting the whole flow.
	EventExit
	// EventViewStats opens the statistics screen.
	EventViewStats
)

func (e Event) String() string {
	switch e {
	case EventSelectSpecialization:
		return "select-specialization"
	case EventProfileSubmitted:
		return "profile-submitted"
	case EventSessionStarted:
		return "session-started"
	case EventFinalized:
		return "finalized"
	case EventBack:
		return "back"
	case EventAbort:
		return "abort"
	case EventExit:
		return "exit"
	case EventViewStats:
		return "view-stats"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// transitions is the single source of truth for the flow.
// result and stats only ever lead back to specialization: finishing or
// abandoning a test always restarts the whole flow, there is no resume.
var transitions = map[State]map[Event]State{
	StateSpecialization: {
		EventSelectSpecialization: StateProfile,
		EventViewStats:            StateStats,
	},
	StateProfile: {
		EventProfileSubmitted: StateDifficulty,
		EventBack:             StateSpecialization,
	},
	StateDifficulty: {
		EventSessionStarted: StateTest,
		EventBack:           StateProfile,
	},
	StateTest: {
		EventFinalized: StateResult,
		EventAbort:     StateSpecialization,
	},
	StateResult: {
		EventExit: StateSpecialization,
	},
	StateStats: {
		EventBack: StateSpecialization,
	},
}

// Transition returns the state reached by applying e in s.
// Illegal combinations return an error and the state is unchanged
// by convention at the caller.
func Transition(s State, e Event) (State, error) {
	next, ok := transitions[s][e]
	if !ok {
		return s, fmt.Errorf("flow: no transition from %s on %s", s, e)
	}
	return next, nil
}

// Allowed reports whether e is a legal event in s.
func Allowed(s State, e Event) bool {
	_, ok := transitions[s][e]
	return ok
}
