package test

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/fssp-tools/attest/internal/ui/components"
	"github.com/fssp-tools/attest/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.quitConfirm {
		return renderQuitConfirm(width, height)
	}
	if s.finalizeErr != "" {
		return renderFinalizeError(width, height, s.finalizeErr)
	}
	if s.finalizing || s.co.Session() == nil {
		return renderFinalizing(width, height)
	}
	return s.renderQuestion(width, height)
}

func (s *Screen) renderQuestion(width, height int) string {
	sess := s.co.Session()
	q := sess.Question()
	if q == nil {
		return ""
	}

	var sections []string

	position := fmt.Sprintf("Вопрос %d из %d", sess.Index+1, len(sess.Questions))
	sections = append(sections, theme.Subtitle.Render(position))

	bar := components.NewProgressBar("", float64(sess.Index+1)/float64(len(sess.Questions)), false, min(width-12, 50))
	sections = append(sections, bar.View(), "")

	opts := components.NewOptionList(q.Prompt, q.Options)
	opts.Marked = sess.Current
	sections = append(sections, opts.View())

	if s.notice != "" {
		sections = append(sections, theme.Notice.Render(s.notice))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	card := theme.Card.Width(min(width-8, 76)).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func renderQuitConfirm(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("Прервать тестирование?"),
		"",
		theme.Body.Render("Ответы не будут засчитаны."),
		"",
		theme.Hint.Render("Y — прервать, N — продолжить"),
	)
	card := theme.Card.Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func renderFinalizing(width, height int) string {
	content := theme.Hint.Render("Подведение итогов...")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderFinalizeError(width, height int, notice string) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Notice.Render(notice),
		"",
		theme.Hint.Render("Enter — повторить отправку"),
	)
	card := theme.Card.Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
