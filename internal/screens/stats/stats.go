package stats

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fssp-tools/attest/internal/api"
	"github.com/fssp-tools/attest/internal/quiz"
	"github.com/fssp-tools/attest/internal/router"
	"github.com/fssp-tools/attest/internal/screen"
	"github.com/fssp-tools/attest/internal/ui/components"
	"github.com/fssp-tools/attest/internal/ui/layout"
	"github.com/fssp-tools/attest/internal/ui/theme"
)

// Screen shows the aggregate test history for the current identity. The data
// is loaded by the caller before this screen is pushed.
type Screen struct {
	co    *quiz.Coordinator
	stats *api.Stats
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the stats screen over already-loaded data.
func New(co *quiz.Coordinator, stats *api.Stats) *Screen {
	return &Screen{
		co:    co,
		stats: stats,
	}
}

func (s *Screen) Title() string {
	return "Моя статистика"
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Назад"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter", "q":
			if err := s.co.Back(); err != nil {
				return s, nil
			}
			return s, func() tea.Msg {
				return router.PopScreenMsg{}
			}
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	st := s.stats

	if st.TotalTests == 0 {
		content := lipgloss.JoinVertical(lipgloss.Center,
			theme.Title.Render("Моя статистика"),
			"",
			theme.Hint.Render("Вы ещё не проходили тестирование"),
		)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	var sections []string

	sections = append(sections,
		theme.Title.Render("Моя статистика"),
		"",
		theme.Body.Render(fmt.Sprintf("Пройдено тестов: %d", st.TotalTests)),
		theme.Body.Render(fmt.Sprintf("Средний результат: %.1f%%", st.AvgPercentage)),
		theme.Body.Render(fmt.Sprintf("Лучший результат: %.1f%%", st.BestPercentage)),
		"",
		theme.Subtitle.Render("Оценки"),
	)

	barWidth := min(width-20, 44)
	sections = append(sections,
		gradeBar("отлично", st.Grades.Excellent, st.TotalTests, barWidth),
		gradeBar("хорошо", st.Grades.Good, st.TotalTests, barWidth),
		gradeBar("удовлетворительно", st.Grades.Satisfactory, st.TotalTests, barWidth),
		gradeBar("неудовлетворительно", st.Grades.Fail, st.TotalTests, barWidth),
	)

	if len(st.RecentResults) > 0 {
		sections = append(sections, "", theme.Subtitle.Render("Последние тестирования"))
		for _, r := range st.RecentResults {
			line := fmt.Sprintf("%s · %s · %s", r.Date, r.Specialization, r.Difficulty)
			grade := lipgloss.NewStyle().
				Foreground(theme.GradeColor(r.Grade)).
				Render(fmt.Sprintf("%s (%.0f%%)", r.Grade, r.Percentage))
			sections = append(sections, theme.Body.Render(line)+"  "+grade)
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	card := theme.Card.Width(min(width-8, 72)).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func gradeBar(grade string, count, total, width int) string {
	percent := 0.0
	if total > 0 {
		percent = float64(count) / float64(total)
	}
	bar := components.NewProgressBar(fmt.Sprintf("%-20s %2d", grade, count), percent, false, width)
	bar.Color = theme.GradeColor(grade)
	return bar.View()
}
