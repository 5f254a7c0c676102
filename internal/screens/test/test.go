package test

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/fssp-tools/attest/internal/api"
	"github.com/fssp-tools/attest/internal/quiz"
	"github.com/fssp-tools/attest/internal/router"
	"github.com/fssp-tools/attest/internal/screen"
	"github.com/fssp-tools/attest/internal/screens/result"
	"github.com/fssp-tools/attest/internal/ui/layout"

	"github.com/pkg/errors"
)

// Screen runs the timed test: question navigation, answer selection and the
// finalize handshake.
type Screen struct {
	co     *quiz.Coordinator
	client *api.Client

	finalizing  bool
	finalizeErr string
	quitConfirm bool
	notice      string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the test screen over an already-started session.
func New(co *quiz.Coordinator, client *api.Client) *Screen {
	return &Screen{
		co:     co,
		client: client,
	}
}

func (s *Screen) Title() string {
	return "Тестирование"
}

func (s *Screen) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Прервать тест"},
			{Key: "N", Description: "Продолжить"},
		}
	}
	if s.finalizeErr != "" {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Повторить отправку"},
		}
	}
	if s.finalizing {
		return nil
	}
	return []layout.KeyHint{
		{Key: "1-9", Description: "Отметить вариант"},
		{Key: "Enter", Description: "Ответить"},
		{Key: "←", Description: "Предыдущий"},
		{Key: "Esc", Description: "Прервать"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick()

	case answerSentMsg:
		// Intentionally ignored: grading reads the server-side record.
		return s, nil

	case finalizedMsg:
		return s.handleFinalized(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *Screen) handleTick() (screen.Screen, tea.Cmd) {
	if s.co.Session() == nil {
		return s, nil
	}
	if s.co.Tick() {
		return s, s.beginFinalize()
	}
	if s.finalizing {
		return s, nil
	}
	return s, tickCmd()
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.quitConfirm {
		switch msg.String() {
		case "y", "Y":
			if err := s.co.AbortTest(); err != nil {
				s.quitConfirm = false
				return s, nil
			}
			return s, func() tea.Msg {
				return router.HomeScreenMsg{}
			}
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if s.finalizeErr != "" {
		if msg.String() == "enter" {
			s.finalizeErr = ""
			return s, s.retryFinalize()
		}
		return s, nil
	}

	if s.finalizing {
		return s, nil
	}

	key := msg.String()
	switch key {
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		s.notice = ""
		s.co.ToggleOption(int(key[0] - '0'))
		return s, nil

	case "enter":
		return s.submit()

	case "left", "p":
		if err := s.co.Previous(); err == nil {
			s.notice = ""
		}
		return s, nil

	case "esc":
		s.quitConfirm = true
		return s, nil
	}

	return s, nil
}

func (s *Screen) submit() (screen.Screen, tea.Cmd) {
	request, last, err := s.co.SubmitCurrent()
	if err != nil {
		if errors.Is(err, quiz.ErrEmptySelection) {
			s.notice = err.Error()
		}
		return s, nil
	}
	s.notice = ""

	send := s.sendAnswer(request)
	if last {
		// The last answer must reach the server before finish is issued, or
		// grading may miss it.
		if fin := s.beginFinalize(); fin != nil {
			return s, tea.Sequence(send, fin)
		}
	}
	return s, send
}

func (s *Screen) sendAnswer(request api.SubmitAnswerRequest) tea.Cmd {
	return func() tea.Msg {
		err := s.client.SubmitAnswer(context.Background(), request)
		return answerSentMsg{Err: err}
	}
}

func (s *Screen) beginFinalize() tea.Cmd {
	if !s.co.BeginFinalize() {
		return nil
	}
	s.finalizing = true
	return s.finishCmd()
}

// retryFinalize re-issues the finish request after a transport failure. The
// coordinator cleared its finalizing flag on failure, so this goes through
// BeginFinalize again.
func (s *Screen) retryFinalize() tea.Cmd {
	return s.beginFinalize()
}

func (s *Screen) finishCmd() tea.Cmd {
	request := s.co.FinishRequest()
	return func() tea.Msg {
		res, err := s.client.FinishTest(context.Background(), request)
		return finalizedMsg{SessionID: request.SessionID, Result: res, Err: err}
	}
}

func (s *Screen) handleFinalized(msg finalizedMsg) (screen.Screen, tea.Cmd) {
	applied, err := s.co.CompleteFinalize(msg.SessionID, msg.Err)
	if err != nil {
		s.finalizing = false
		s.finalizeErr = "Не удалось завершить тест: " + err.Error()
		return s, nil
	}
	if !applied {
		return s, nil
	}
	resultScreen := result.New(s.co, s.client, msg.Result)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: resultScreen}
	}
}
