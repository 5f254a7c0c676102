package result

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fssp-tools/attest/internal/api"
	"github.com/fssp-tools/attest/internal/quiz"
	"github.com/fssp-tools/attest/internal/router"
	"github.com/fssp-tools/attest/internal/screen"
	"github.com/fssp-tools/attest/internal/ui/layout"
	"github.com/fssp-tools/attest/internal/ui/theme"
)

// reviewLoadedMsg carries the detailed answer review for the finished session.
type reviewLoadedMsg struct {
	Questions []api.ReviewQuestion
	Err       error
}

// Screen shows the grade card for a finished test, with an optional detailed
// review of every question.
type Screen struct {
	co     *quiz.Coordinator
	client *api.Client
	result *api.Result

	review        []api.ReviewQuestion
	showingReview bool
	reviewCursor  int
	notice        string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the result screen for a finalized session.
func New(co *quiz.Coordinator, client *api.Client, result *api.Result) *Screen {
	return &Screen{
		co:     co,
		client: client,
		result: result,
	}
}

func (s *Screen) Title() string {
	return "Результат"
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.showingReview {
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Вопросы"},
			{Key: "Esc", Description: "К результату"},
		}
	}
	return []layout.KeyHint{
		{Key: "r", Description: "Разбор ответов"},
		{Key: "Enter", Description: "На главную"},
	}
}

func (s *Screen) loadReview() tea.Cmd {
	sessionID := s.co.LastSessionID()
	telegramID := s.co.Profile().TelegramID
	return func() tea.Msg {
		questions, err := s.client.Review(context.Background(), sessionID, telegramID)
		return reviewLoadedMsg{Questions: questions, Err: err}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reviewLoadedMsg:
		if msg.Err != nil {
			s.notice = "Разбор недоступен: " + msg.Err.Error()
			return s, nil
		}
		s.review = msg.Questions
		s.showingReview = true
		s.reviewCursor = 0
		s.notice = ""
		return s, nil

	case tea.KeyMsg:
		if s.showingReview {
			switch msg.String() {
			case "up", "k":
				if s.reviewCursor > 0 {
					s.reviewCursor--
				}
			case "down", "j":
				if s.reviewCursor < len(s.review)-1 {
					s.reviewCursor++
				}
			case "esc":
				s.showingReview = false
			}
			return s, nil
		}

		switch msg.String() {
		case "r":
			if s.review != nil {
				s.showingReview = true
				return s, nil
			}
			return s, s.loadReview()
		case "enter", "esc":
			if err := s.co.ExitResult(); err != nil {
				return s, nil
			}
			return s, func() tea.Msg {
				return router.HomeScreenMsg{}
			}
		}
	}

	return s, nil
}

func (s *Screen) View(width, height int) string {
	if s.showingReview {
		return s.renderReview(width, height)
	}
	return s.renderCard(width, height)
}

func (s *Screen) renderCard(width, height int) string {
	r := s.result

	gradeStyle := lipgloss.NewStyle().
		Foreground(theme.GradeColor(r.Grade)).
		Bold(true).
		Align(lipgloss.Center)

	var sections []string
	sections = append(sections,
		theme.Title.Render("Тестирование завершено"),
		"",
		gradeStyle.Render(r.Grade),
		"",
		theme.Body.Render(fmt.Sprintf("Правильных ответов: %d из %d", r.Correct, r.Total)),
		theme.Body.Render(fmt.Sprintf("Результат: %.1f%%", r.Percentage)),
		theme.Body.Render(fmt.Sprintf("Затрачено времени: %d мин", r.TimeSpent)),
		"",
		theme.Hint.Render(r.FullName),
		theme.Hint.Render(r.Position+" · "+r.Department),
		theme.Hint.Render(r.Specialization),
	)

	if s.notice != "" {
		sections = append(sections, "", theme.Notice.Render(s.notice))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	card := theme.Card.Width(min(width-8, 56)).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *Screen) renderReview(width, height int) string {
	if len(s.review) == 0 {
		content := theme.Hint.Render("Нет данных для разбора")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	q := s.review[s.reviewCursor]

	var sections []string

	verdict := theme.Correct.Render("✓ Верно")
	if !q.IsCorrect {
		verdict = theme.Incorrect.Render("✗ Неверно")
	}
	position := fmt.Sprintf("Вопрос %d из %d", s.reviewCursor+1, len(s.review))
	sections = append(sections, theme.Subtitle.Render(position+"  "+verdict), "")

	sections = append(sections, theme.Body.Bold(true).Render(q.Prompt), "")

	chosen := make(map[int]struct{}, len(q.UserAnswers))
	for _, a := range q.UserAnswers {
		chosen[a] = struct{}{}
	}
	correct := make(map[int]struct{}, len(q.CorrectAnswers))
	for _, a := range q.CorrectAnswers {
		correct[a] = struct{}{}
	}

	for i, opt := range q.Options {
		n := i + 1
		_, wasChosen := chosen[n]
		_, isCorrect := correct[n]

		marker := "  "
		if wasChosen {
			marker = "▸ "
		}
		line := fmt.Sprintf("%s%d. %s", marker, n, opt)

		switch {
		case isCorrect:
			sections = append(sections, theme.Correct.Render(line))
		case wasChosen:
			sections = append(sections, theme.Incorrect.Render(line))
		default:
			sections = append(sections, theme.Body.Render(line))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	card := theme.Card.Width(min(width-8, 76)).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
