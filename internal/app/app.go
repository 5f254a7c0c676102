package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fssp-tools/attest/internal/api"
	"github.com/fssp-tools/attest/internal/quiz"
	"github.com/fssp-tools/attest/internal/router"
	"github.com/fssp-tools/attest/internal/screen"
	"github.com/fssp-tools/attest/internal/screens/specialization"
	"github.com/fssp-tools/attest/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	API        *api.Client
	TelegramID int64
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	co     *quiz.Coordinator
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	co := quiz.New(opts.TelegramID)
	root := specialization.New(co, opts.API)
	return AppModel{
		co:     co,
		router: router.New(root),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is owned by the screens: during a test it must open the abort
		// confirmation, never silently pop the stack.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.clock(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Выход"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(provider.KeyHints(), footerHints...)
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// clock formats the remaining test time for the header, empty outside a test.
func (m AppModel) clock() string {
	sess := m.co.Session()
	if sess == nil || !sess.Clock.Armed() {
		return ""
	}
	remaining := sess.Clock.Remaining()
	return fmt.Sprintf("%d:%02d", remaining/60, remaining%60)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
