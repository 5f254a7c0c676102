package difficulty

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fssp-tools/attest/internal/api"
	"github.com/fssp-tools/attest/internal/quiz"
	"github.com/fssp-tools/attest/internal/router"
	"github.com/fssp-tools/attest/internal/screen"
	"github.com/fssp-tools/attest/internal/screens/test"
	"github.com/fssp-tools/attest/internal/ui/components"
	"github.com/fssp-tools/attest/internal/ui/layout"
	"github.com/fssp-tools/attest/internal/ui/theme"
)

// loadedMsg carries the difficulty list from the service.
type loadedMsg struct {
	Difficulties []api.Difficulty
	Err          error
}

// startResultMsg carries the outcome of a session start request. Attempt ties
// the response to the request that issued it.
type startResultMsg struct {
	Attempt string
	Resp    *api.StartTestResponse
	Err     error
}

// Screen lets the employee pick a difficulty and starts the session.
type Screen struct {
	co     *quiz.Coordinator
	client *api.Client

	menu    components.Menu
	loading bool
	notice  string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the difficulty screen.
func New(co *quiz.Coordinator, client *api.Client) *Screen {
	return &Screen{
		co:      co,
		client:  client,
		loading: true,
	}
}

func (s *Screen) Title() string {
	return "Уровень сложности"
}

func (s *Screen) Init() tea.Cmd {
	s.loading = true
	s.notice = ""
	return s.load()
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Навигация"},
		{Key: "Enter", Description: "Начать тест"},
		{Key: "Esc", Description: "Назад"},
	}
}

func (s *Screen) load() tea.Cmd {
	return func() tea.Msg {
		diffs, err := s.client.Difficulties(context.Background())
		return loadedMsg{Difficulties: diffs, Err: err}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loading = false
		if msg.Err != nil {
			s.notice = "Не удалось загрузить уровни: " + msg.Err.Error()
			return s, nil
		}
		s.buildMenu(msg.Difficulties)
		return s, nil

	case startResultMsg:
		if err := s.co.CompleteStart(msg.Attempt, msg.Resp, msg.Err); err != nil {
			s.notice = "Не удалось начать тест: " + err.Error()
			return s, nil
		}
		if s.co.Session() == nil {
			// Stale attempt, nothing changed.
			return s, nil
		}
		s.notice = ""
		testScreen := test.New(s.co, s.client)
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: testScreen}
		}

	case tea.KeyMsg:
		if s.co.StartPending() {
			return s, nil
		}
		switch msg.String() {
		case "r":
			s.loading = true
			s.notice = ""
			return s, s.load()
		case "esc":
			if err := s.co.Back(); err != nil {
				return s, nil
			}
			return s, func() tea.Msg {
				return router.PopScreenMsg{}
			}
		}
	}

	if !s.loading && !s.co.StartPending() {
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *Screen) buildMenu(diffs []api.Difficulty) {
	items := make([]components.MenuItem, 0, len(diffs))
	for _, d := range diffs {
		d := d
		items = append(items, components.MenuItem{
			Label:       d.Name,
			Description: fmt.Sprintf("%d вопросов · %d минут", d.Questions, d.TimeMinutes),
			Action: func() tea.Cmd {
				return s.start(d.ID)
			},
		})
	}
	s.menu = components.NewMenu(items)
}

func (s *Screen) start(difficultyID string) tea.Cmd {
	attempt, ok := s.co.BeginStart(difficultyID)
	if !ok {
		return nil
	}
	request := s.co.StartRequest()
	return func() tea.Msg {
		resp, err := s.client.StartTest(context.Background(), request)
		return startResultMsg{Attempt: attempt, Resp: resp, Err: err}
	}
}

func (s *Screen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("Уровень сложности")
	subtitle := theme.Subtitle.Width(width).Render(s.co.Profile().SpecializationName)
	sections = append(sections, title, subtitle, "")

	switch {
	case s.loading:
		sections = append(sections, theme.Hint.Render("  Загрузка..."))
	case s.co.StartPending():
		sections = append(sections, s.menu.View(), "", theme.Hint.Render("  Формирование теста..."))
	default:
		sections = append(sections, s.menu.View())
	}

	if s.notice != "" {
		sections = append(sections, "", theme.Notice.Render("  "+s.notice))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
