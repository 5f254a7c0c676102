package quiz

import "github.com/fssp-tools/attest/internal/api"

// Session is one timed attempt at a fixed, pre-fetched question sequence.
// It exists only between a successful test start and finalize (or abort);
// nothing about it survives the program.
type Session struct {
	// ID is the opaque token issued by the remote service.
	ID string

	// Questions is the full ordered sequence, supplied at session start.
	Questions []api.Question

	// Index is the 0-based cursor of the question currently in view.
	Index int

	// Clock is the countdown armed with the difficulty's time budget.
	Clock Countdown

	// History records the selection active when each question was last left.
	History AnswerHistory

	// Current mirrors History[Index] if present, else the empty set.
	Current SelectionSet

	// finalizing is set before the finish call is issued and guarantees at
	// most one finalize per session.
	finalizing bool
}

func newSession(resp *api.StartTestResponse) *Session {
	s := &Session{
		ID:        resp.SessionID,
		Questions: resp.Questions,
		History:   make(AnswerHistory),
		Current:   NewSelectionSet(),
	}
	s.Clock.Start(resp.TimeMinutes * 60)
	return s
}

// Question returns the question under the cursor.
func (s *Session) Question() *api.Question {
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Index]
}

// LastQuestion reports whether the cursor is on the final question.
func (s *Session) LastQuestion() bool {
	return s.Index == len(s.Questions)-1
}
