package specialization

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/fssp-tools/attest/internal/api"
	"github.com/fssp-tools/attest/internal/flow"
	"github.com/fssp-tools/attest/internal/quiz"
	"github.com/fssp-tools/attest/internal/router"

	"github.com/pkg/errors"
)

var testSpecs = []api.Specialization{
	{ID: "enforcement", Name: "Исполнительное производство"},
	{ID: "inquiry", Name: "Дознание"},
}

func TestLoadFailureShowsNotice(t *testing.T) {
	co := quiz.New(42)
	s := New(co, nil)

	s.Update(loadedMsg{Err: errors.New("connection refused")})

	if s.loading {
		t.Error("expected loading to finish")
	}
	if s.notice == "" {
		t.Error("expected a notice on load failure")
	}
}

func TestSelectSpecializationPushesProfile(t *testing.T) {
	co := quiz.New(42)
	s := New(co, nil)

	s.Update(loadedMsg{Specs: testSpecs})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg to the profile screen")
	}
	if co.State() != flow.StateProfile {
		t.Errorf("expected profile state, got %v", co.State())
	}
	if co.Profile().Specialization != "enforcement" {
		t.Errorf("unexpected specialization %q", co.Profile().Specialization)
	}
}

func TestStatsFailureStaysOnSpecialization(t *testing.T) {
	co := quiz.New(42)
	s := New(co, nil)

	s.Update(loadedMsg{Specs: testSpecs})
	_, cmd := s.Update(statsLoadedMsg{Err: errors.New("503")})

	if cmd != nil {
		t.Error("expected no navigation on stats failure")
	}
	if s.notice == "" {
		t.Error("expected a notice on stats failure")
	}
	if co.State() != flow.StateSpecialization {
		t.Errorf("expected specialization state, got %v", co.State())
	}
}

func TestStatsSuccessPushesStats(t *testing.T) {
	co := quiz.New(42)
	s := New(co, nil)

	s.Update(loadedMsg{Specs: testSpecs})
	_, cmd := s.Update(statsLoadedMsg{Stats: &api.Stats{TotalTests: 3}})

	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg to the stats screen")
	}
	if co.State() != flow.StateStats {
		t.Errorf("expected stats state, got %v", co.State())
	}
}
