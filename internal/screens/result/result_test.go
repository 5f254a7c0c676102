package result

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/fssp-tools/attest/internal/api"
	"github.com/fssp-tools/attest/internal/flow"
	"github.com/fssp-tools/attest/internal/quiz"
	"github.com/fssp-tools/attest/internal/router"

	"github.com/pkg/errors"
)

func finishedCoordinator(t *testing.T) *quiz.Coordinator {
	t.Helper()

	co := quiz.New(42)
	if err := co.ChooseSpecialization("enforcement", "Исполнительное производство"); err != nil {
		t.Fatalf("choose specialization: %v", err)
	}
	if err := co.SubmitProfile("Иванов И.И.", "пристав", "ОСП"); err != nil {
		t.Fatalf("submit profile: %v", err)
	}
	attempt, _ := co.BeginStart("standard")
	resp := &api.StartTestResponse{
		SessionID:   "sess-1",
		TimeMinutes: 10,
		Questions:   []api.Question{{ID: 1, Prompt: "в", Options: []string{"а", "б"}}},
	}
	if err := co.CompleteStart(attempt, resp, nil); err != nil {
		t.Fatalf("complete start: %v", err)
	}
	co.BeginFinalize()
	if _, err := co.CompleteFinalize("sess-1", nil); err != nil {
		t.Fatalf("complete finalize: %v", err)
	}
	return co
}

var testResult = &api.Result{
	Correct:    8,
	Total:      10,
	Percentage: 80,
	Grade:      "отлично",
	TimeSpent:  312,
	FullName:   "Иванов И.И.",
}

func TestCardShowsTimeSpentInMinutes(t *testing.T) {
	co := finishedCoordinator(t)
	res := &api.Result{
		Correct:    20,
		Total:      25,
		Percentage: 80,
		Grade:      "хорошо",
		TimeSpent:  25, // minutes on the wire
		FullName:   "Иванов И.И.",
	}
	s := New(co, nil, res)

	view := s.View(100, 40)

	if !strings.Contains(view, "25 мин") {
		t.Error("expected time spent rendered as minutes")
	}
	if strings.Contains(view, "0:25") {
		t.Error("time spent rendered as if the value were seconds")
	}
}

func TestExitRestartsFlow(t *testing.T) {
	co := finishedCoordinator(t)
	s := New(co, nil, testResult)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.HomeScreenMsg); !ok {
		t.Error("expected HomeScreenMsg")
	}
	if co.State() != flow.StateSpecialization {
		t.Errorf("expected specialization state, got %v", co.State())
	}
}

func TestReviewLoadFailureShowsNotice(t *testing.T) {
	co := finishedCoordinator(t)
	s := New(co, nil, testResult)

	s.Update(reviewLoadedMsg{Err: errors.New("404")})

	if s.showingReview {
		t.Error("expected review view not shown on failure")
	}
	if s.notice == "" {
		t.Error("expected a notice on review failure")
	}
}

func TestReviewNavigation(t *testing.T) {
	co := finishedCoordinator(t)
	s := New(co, nil, testResult)

	questions := []api.ReviewQuestion{
		{QuestionID: 1, Prompt: "один", Options: []string{"а", "б"}, IsCorrect: true},
		{QuestionID: 2, Prompt: "два", Options: []string{"а", "б"}, IsCorrect: false},
	}
	s.Update(reviewLoadedMsg{Questions: questions})

	if !s.showingReview {
		t.Fatal("expected review view")
	}

	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	if s.reviewCursor != 1 {
		t.Errorf("expected cursor 1, got %d", s.reviewCursor)
	}
	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	if s.reviewCursor != 1 {
		t.Errorf("expected cursor clamped at 1, got %d", s.reviewCursor)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if s.showingReview {
		t.Error("expected esc to return to the result card")
	}
	if co.State() != flow.StateResult {
		t.Errorf("expected result state, got %v", co.State())
	}
}
