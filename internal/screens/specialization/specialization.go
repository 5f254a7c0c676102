package specialization

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fssp-tools/attest/internal/api"
	"github.com/fssp-tools/attest/internal/quiz"
	"github.com/fssp-tools/attest/internal/router"
	"github.com/fssp-tools/attest/internal/screen"
	"github.com/fssp-tools/attest/internal/screens/profile"
	"github.com/fssp-tools/attest/internal/screens/stats"
	"github.com/fssp-tools/attest/internal/ui/components"
	"github.com/fssp-tools/attest/internal/ui/layout"
	"github.com/fssp-tools/attest/internal/ui/theme"
)

// loadedMsg carries the specialization list from the service.
type loadedMsg struct {
	Specs []api.Specialization
	Err   error
}

// statsLoadedMsg carries the employee statistics. Loaded here, before the
// stats screen is pushed: on failure the flow stays on this screen.
type statsLoadedMsg struct {
	Stats *api.Stats
	Err   error
}

// Screen is the entry screen: pick a specialization or view statistics.
type Screen struct {
	co     *quiz.Coordinator
	client *api.Client

	menu    components.Menu
	loading bool
	notice  string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the specialization screen.
func New(co *quiz.Coordinator, client *api.Client) *Screen {
	return &Screen{
		co:      co,
		client:  client,
		loading: true,
	}
}

func (s *Screen) Title() string {
	return "Выбор специализации"
}

func (s *Screen) Init() tea.Cmd {
	s.loading = true
	s.notice = ""
	return s.load()
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Навигация"},
		{Key: "Enter", Description: "Выбрать"},
		{Key: "r", Description: "Обновить"},
	}
}

func (s *Screen) load() tea.Cmd {
	return func() tea.Msg {
		specs, err := s.client.Specializations(context.Background())
		return loadedMsg{Specs: specs, Err: err}
	}
}

func (s *Screen) loadStats() tea.Cmd {
	return func() tea.Msg {
		st, err := s.client.Stats(context.Background(), s.co.Profile().TelegramID)
		return statsLoadedMsg{Stats: st, Err: err}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loading = false
		if msg.Err != nil {
			s.notice = "Не удалось загрузить специализации: " + msg.Err.Error()
			return s, nil
		}
		s.buildMenu(msg.Specs)
		return s, nil

	case statsLoadedMsg:
		if msg.Err != nil {
			s.notice = "Статистика недоступна: " + msg.Err.Error()
			return s, nil
		}
		if err := s.co.EnterStats(); err != nil {
			return s, nil
		}
		statsScreen := stats.New(s.co, msg.Stats)
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: statsScreen}
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			s.loading = true
			s.notice = ""
			return s, s.load()
		case "q":
			return s, tea.Quit
		}
	}

	if !s.loading {
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *Screen) buildMenu(specs []api.Specialization) {
	items := make([]components.MenuItem, 0, len(specs)+2)
	for _, spec := range specs {
		spec := spec
		items = append(items, components.MenuItem{
			Label: spec.Name,
			Action: func() tea.Cmd {
				return s.selectSpec(spec)
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:       "Моя статистика",
		Description: "Результаты предыдущих тестирований",
		Action: func() tea.Cmd {
			return s.loadStats()
		},
	})
	items = append(items, components.MenuItem{
		Label: "Выход",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})
	s.menu = components.NewMenu(items)
}

func (s *Screen) selectSpec(spec api.Specialization) tea.Cmd {
	if err := s.co.ChooseSpecialization(spec.ID, spec.Name); err != nil {
		return nil
	}
	next := profile.New(s.co, s.client)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *Screen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("Аттестация работников")
	subtitle := theme.Subtitle.Width(width).Render("Выберите направление деятельности")
	sections = append(sections, title, subtitle, "")

	switch {
	case s.loading:
		sections = append(sections, theme.Hint.Render("  Загрузка..."))
	default:
		sections = append(sections, s.menu.View())
	}

	if s.notice != "" {
		sections = append(sections, "", theme.Notice.Render("  "+s.notice))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
