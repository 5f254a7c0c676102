package test

import (
	"time"

	"github.com/fssp-tools/attest/internal/api"
)

// timerTickMsg is sent every second to advance the countdown.
type timerTickMsg time.Time

// answerSentMsg confirms an answer submission attempt finished. Delivery is
// fire-and-forget: the final grading reads the server-side record, so a lost
// intermediate submission only matters if it was the latest for its question.
type answerSentMsg struct {
	Err error
}

// finalizedMsg carries the outcome of a finalize request for one session.
type finalizedMsg struct {
	SessionID string
	Result    *api.Result
	Err       error
}
