package profile

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fssp-tools/attest/internal/api"
	"github.com/fssp-tools/attest/internal/quiz"
	"github.com/fssp-tools/attest/internal/router"
	"github.com/fssp-tools/attest/internal/screen"
	"github.com/fssp-tools/attest/internal/screens/difficulty"
	"github.com/fssp-tools/attest/internal/ui/components"
	"github.com/fssp-tools/attest/internal/ui/layout"
	"github.com/fssp-tools/attest/internal/ui/theme"
)

const fieldCount = 3

// Screen collects the employee profile: full name, position, department.
type Screen struct {
	co     *quiz.Coordinator
	client *api.Client

	inputs  [fieldCount]components.TextInput
	focused int
	notice  string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the profile screen.
func New(co *quiz.Coordinator, client *api.Client) *Screen {
	s := &Screen{
		co:     co,
		client: client,
	}
	s.inputs[0] = components.NewTextInput("ФИО", "Иванов Иван Иванович", 100)
	s.inputs[1] = components.NewTextInput("Должность", "судебный пристав-исполнитель", 100)
	s.inputs[2] = components.NewTextInput("Подразделение", "ОСП по г. ...", 100)
	return s
}

func (s *Screen) Title() string {
	return "Данные сотрудника"
}

func (s *Screen) Init() tea.Cmd {
	return s.inputs[0].Focus()
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Следующее поле"},
		{Key: "Enter", Description: "Продолжить"},
		{Key: "Esc", Description: "Назад"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return s, s.focusField((s.focused + 1) % fieldCount)
		case "shift+tab", "up":
			return s, s.focusField((s.focused + fieldCount - 1) % fieldCount)
		case "enter":
			if s.focused < fieldCount-1 {
				return s, s.focusField(s.focused + 1)
			}
			return s, s.submit()
		case "esc":
			if err := s.co.Back(); err != nil {
				return s, nil
			}
			return s, func() tea.Msg {
				return router.PopScreenMsg{}
			}
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
	return s, cmd
}

func (s *Screen) focusField(i int) tea.Cmd {
	s.inputs[s.focused].Blur()
	s.focused = i
	return s.inputs[i].Focus()
}

func (s *Screen) submit() tea.Cmd {
	err := s.co.SubmitProfile(s.inputs[0].Value(), s.inputs[1].Value(), s.inputs[2].Value())
	if err != nil {
		s.notice = err.Error()
		return nil
	}
	s.notice = ""
	next := difficulty.New(s.co, s.client)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *Screen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("Данные сотрудника")
	subtitle := theme.Subtitle.Width(width).Render(s.co.Profile().SpecializationName)
	sections = append(sections, title, subtitle, "")

	for i := range s.inputs {
		sections = append(sections, s.inputs[i].View(), "")
	}

	if s.notice != "" {
		sections = append(sections, theme.Notice.Render(s.notice))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	card := theme.Card.Width(min(width-8, 60)).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
