package flow

import "testing"

func TestHappyPath(t *testing.T) {
	steps := []struct {
		event Event
		want  State
	}{
		{EventSelectSpecialization, StateProfile},
		{EventProfileSubmitted, StateDifficulty},
		{EventSessionStarted, StateTest},
		{EventFinalized, StateResult},
		{EventExit, StateSpecialization},
	}

	s := StateSpecialization
	for _, step := range steps {
		next, err := Transition(s, step.event)
		if err != nil {
			t.Fatalf("Transition(%s, %s): %v", s, step.event, err)
		}
		if next != step.want {
			t.Fatalf("Transition(%s, %s) = %s, want %s", s, step.event, next, step.want)
		}
		s = next
	}
}

func TestBackNavigation(t *testing.T) {
	if got, err := Transition(StateProfile, EventBack); err != nil || got != StateSpecialization {
		t.Errorf("profile back = %v, %v", got, err)
	}
	if got, err := Transition(StateDifficulty, EventBack); err != nil || got != StateProfile {
		t.Errorf("difficulty back = %v, %v", got, err)
	}
	if got, err := Transition(StateStats, EventBack); err != nil || got != StateSpecialization {
		t.Errorf("stats back = %v, %v", got, err)
	}
}

func TestAbortDiscardsToSpecialization(t *testing.T) {
	got, err := Transition(StateTest, EventAbort)
	if err != nil {
		t.Fatal(err)
	}
	if got != StateSpecialization {
		t.Errorf("abort = %s, want specialization", got)
	}
}

func TestIllegalTransitionsRejected(t *testing.T) {
	illegal := []struct {
		state State
		event Event
	}{
		{StateSpecialization, EventBack},
		{StateSpecialization, EventFinalized},
		{StateTest, EventBack},
		{StateTest, EventViewStats},
		{StateResult, EventBack},
		{StateResult, EventSessionStarted},
		{StateStats, EventExit},
		{StateProfile, EventSessionStarted},
	}

	for _, tt := range illegal {
		if _, err := Transition(tt.state, tt.event); err == nil {
			t.Errorf("Transition(%s, %s): expected error", tt.state, tt.event)
		}
		if Allowed(tt.state, tt.event) {
			t.Errorf("Allowed(%s, %s) = true, want false", tt.state, tt.event)
		}
	}
}

func TestTerminalStatesOnlyRestart(t *testing.T) {
	for _, s := range []State{StateResult, StateStats} {
		for e := EventSelectSpecialization; e <= EventViewStats; e++ {
			next, err := Transition(s, e)
			if err != nil {
				continue
			}
			if next != StateSpecialization {
				t.Errorf("from %s on %s reached %s, want specialization only", s, e, next)
			}
		}
	}
}
