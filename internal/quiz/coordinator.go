// Package quiz owns the in-memory state of one attestation attempt: the
// screen flow position, the profile being built up, and — during the test —
// the session with its answer history and countdown.
//
// The coordinator is single-threaded by contract: every method is called
// from the UI event loop. Operations that hit the network are split into a
// synchronous Begin step (which sets the guard flags before any request is
// issued) and a Complete step applied when the response message arrives.
package quiz

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/fssp-tools/attest/internal/api"
	"github.com/fssp-tools/attest/internal/flow"
)

var (
	// ErrProfileIncomplete rejects a profile with an empty required field.
	ErrProfileIncomplete = errors.New("заполните все поля профиля")

	// ErrEmptySelection rejects submitting a question with nothing selected.
	ErrEmptySelection = errors.New("выберите хотя бы один вариант")

	// ErrNoSession marks a test operation attempted outside a session.
	ErrNoSession = errors.New("нет активной сессии")

	// ErrFirstQuestion rejects backward navigation from the first question.
	ErrFirstQuestion = errors.New("это первый вопрос")
)

// Profile is the employee profile sent with a test start. TelegramID comes
// from the host platform and is immutable; the rest is entered on the
// profile and selection screens.
type Profile struct {
	TelegramID         int64
	FullName           string
	Position           string
	Department         string
	Specialization     string
	SpecializationName string
	Difficulty         string
}

// Coordinator mediates every state transition that touches the remote
// service and owns the Session exclusively for its lifetime.
type Coordinator struct {
	state   flow.State
	profile Profile
	sess    *Session

	// startPending disables difficulty input while a start is in flight.
	startPending   bool
	pendingAttempt string

	lastSessionID string
}

// New creates a coordinator at the specialization screen.
func New(telegramID int64) *Coordinator {
	return &Coordinator{
		state:   flow.StateSpecialization,
		profile: Profile{TelegramID: telegramID},
	}
}

// State returns the current flow state.
func (c *Coordinator) State() flow.State {
	return c.state
}

// Profile returns the profile as entered so far.
func (c *Coordinator) Profile() Profile {
	return c.profile
}

// Session exposes the active session, nil outside the test state.
func (c *Coordinator) Session() *Session {
	return c.sess
}

// StartPending reports whether a session start is in flight.
func (c *Coordinator) StartPending() bool {
	return c.startPending
}

// PendingAttempt returns the attempt token of the in-flight start, empty
// when none is pending.
func (c *Coordinator) PendingAttempt() string {
	return c.pendingAttempt
}

// LastSessionID returns the token of the most recently finalized session,
// used for the detailed review lookup.
func (c *Coordinator) LastSessionID() string {
	return c.lastSessionID
}

func (c *Coordinator) apply(e flow.Event) error {
	next, err := flow.Transition(c.state, e)
	if err != nil {
		return err
	}
	c.state = next
	return nil
}

// ChooseSpecialization records the chosen specialization and moves to the
// profile screen.
func (c *Coordinator) ChooseSpecialization(id, name string) error {
	if err := c.apply(flow.EventSelectSpecialization); err != nil {
		return err
	}
	c.profile.Specialization = id
	c.profile.SpecializationName = name
	return nil
}

// SubmitProfile validates and records the profile fields. An incomplete
// profile is rejected locally: no network call is issued and the flow state
// does not change.
func (c *Coordinator) SubmitProfile(fullName, position, department string) error {
	fullName = strings.TrimSpace(fullName)
	position = strings.TrimSpace(position)
	department = strings.TrimSpace(department)
	if fullName == "" || position == "" || department == "" {
		return ErrProfileIncomplete
	}
	if err := c.apply(flow.EventProfileSubmitted); err != nil {
		return err
	}
	c.profile.FullName = fullName
	c.profile.Position = position
	c.profile.Department = department
	return nil
}

// Back returns to the previous selection screen.
func (c *Coordinator) Back() error {
	return c.apply(flow.EventBack)
}

// BeginStart records the chosen difficulty and guards against duplicate
// starts. The returned attempt token ties the eventual response to this
// request: a response carrying a different token is stale and dropped.
func (c *Coordinator) BeginStart(difficultyID string) (attempt string, ok bool) {
	if c.state != flow.StateDifficulty || c.startPending {
		return "", false
	}
	c.profile.Difficulty = difficultyID
	c.startPending = true
	c.pendingAttempt = uuid.NewString()
	return c.pendingAttempt, true
}

// StartRequest builds the start payload from the completed profile.
func (c *Coordinator) StartRequest() api.StartTestRequest {
	return api.StartTestRequest{
		TelegramID:     c.profile.TelegramID,
		FullName:       c.profile.FullName,
		Position:       c.profile.Position,
		Department:     c.profile.Department,
		Specialization: c.profile.Specialization,
		Difficulty:     c.profile.Difficulty,
	}
}

// CompleteStart applies a session-start response. A stale attempt token is
// silently dropped. On transport failure the flow stays on the difficulty
// screen and the error is returned for display.
func (c *Coordinator) CompleteStart(attempt string, resp *api.StartTestResponse, err error) error {
	if attempt != c.pendingAttempt {
		return nil
	}
	c.startPending = false
	c.pendingAttempt = ""
	if err != nil {
		return err
	}
	if applyErr := c.apply(flow.EventSessionStarted); applyErr != nil {
		return applyErr
	}
	c.sess = newSession(resp)
	return nil
}

// ToggleOption flips one 1-based option index in the current selection.
func (c *Coordinator) ToggleOption(option int) {
	if c.sess == nil || c.sess.finalizing {
		return
	}
	q := c.sess.Question()
	if q == nil || option < 1 || option > len(q.Options) {
		return
	}
	c.sess.Current = Toggle(c.sess.Current, option)
}

// SubmitCurrent records the current selection into history and advances the
// cursor. On the last question it does not advance: last reports that the
// caller must finalize instead. An empty selection is rejected before
// anything is recorded or sent.
func (c *Coordinator) SubmitCurrent() (request api.SubmitAnswerRequest, last bool, err error) {
	if c.sess == nil || c.sess.finalizing {
		return api.SubmitAnswerRequest{}, false, ErrNoSession
	}
	if c.sess.Current.Empty() {
		return api.SubmitAnswerRequest{}, false, ErrEmptySelection
	}

	q := c.sess.Question()
	request = api.SubmitAnswerRequest{
		TelegramID:      c.profile.TelegramID,
		SessionID:       c.sess.ID,
		QuestionID:      q.ID,
		SelectedAnswers: c.sess.Current.Sorted(),
	}

	c.sess.History = c.sess.History.Snapshot(c.sess.Index, c.sess.Current)

	if c.sess.LastQuestion() {
		return request, true, nil
	}

	c.sess.Index++
	c.sess.Current = c.sess.History.Restore(c.sess.Index)
	return request, false, nil
}

// Previous moves the cursor back one question, recording the selection being
// left and restoring the one last recorded for the new position.
func (c *Coordinator) Previous() error {
	if c.sess == nil || c.sess.finalizing {
		return ErrNoSession
	}
	if c.sess.Index == 0 {
		return ErrFirstQuestion
	}
	c.sess.History = c.sess.History.Snapshot(c.sess.Index, c.sess.Current)
	c.sess.Index--
	c.sess.Current = c.sess.History.Restore(c.sess.Index)
	return nil
}

// Tick consumes one countdown second. It returns true exactly once, on the
// tick that exhausts the time budget; the caller must then finalize.
func (c *Coordinator) Tick() bool {
	if c.sess == nil || c.sess.finalizing {
		return false
	}
	return c.sess.Clock.Tick()
}

// BeginFinalize marks the session as finalizing and stops the clock. It
// returns false when there is nothing to finalize or a finalize is already
// in flight — the duplicate trigger (timer expiry racing a last-question
// submission) is thereby suppressed.
func (c *Coordinator) BeginFinalize() bool {
	if c.sess == nil || c.sess.finalizing {
		return false
	}
	c.sess.finalizing = true
	c.sess.Clock.Stop()
	return true
}

// FinishRequest builds the finalize payload.
func (c *Coordinator) FinishRequest() api.FinishTestRequest {
	if c.sess == nil {
		return api.FinishTestRequest{TelegramID: c.profile.TelegramID}
	}
	return api.FinishTestRequest{
		TelegramID: c.profile.TelegramID,
		SessionID:  c.sess.ID,
	}
}

// CompleteFinalize applies a finalize response. Responses for any session
// other than the active one are stale and dropped. On transport failure the
// session stays alive (finalizing cleared) so the user can retry; on success
// the session is discarded and the flow moves to the result screen.
func (c *Coordinator) CompleteFinalize(sessionID string, err error) (applied bool, retErr error) {
	if c.sess == nil || c.sess.ID != sessionID {
		return false, nil
	}
	if err != nil {
		c.sess.finalizing = false
		return false, err
	}
	if applyErr := c.apply(flow.EventFinalized); applyErr != nil {
		return false, applyErr
	}
	c.lastSessionID = c.sess.ID
	c.sess = nil
	return true, nil
}

// AbortTest discards the session without finalizing and restarts the flow.
func (c *Coordinator) AbortTest() error {
	if err := c.apply(flow.EventAbort); err != nil {
		return err
	}
	if c.sess != nil {
		c.sess.Clock.Stop()
		c.sess = nil
	}
	return nil
}

// EnterStats moves to the statistics screen. The caller loads the data
// first: on transport failure this is never reached.
func (c *Coordinator) EnterStats() error {
	return c.apply(flow.EventViewStats)
}

// ExitResult leaves the result screen and restarts the whole flow.
func (c *Coordinator) ExitResult() error {
	return c.apply(flow.EventExit)
}
