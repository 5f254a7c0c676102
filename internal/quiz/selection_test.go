package quiz

import "testing"

func TestToggleIsItsOwnInverse(t *testing.T) {
	s := NewSelectionSet()

	once := Toggle(s, 2)
	if !once.Has(2) {
		t.Fatal("expected option 2 selected after first toggle")
	}

	twice := Toggle(once, 2)
	if twice.Has(2) {
		t.Error("expected option 2 deselected after second toggle")
	}
	if !twice.Empty() {
		t.Errorf("expected empty set, got %v", twice.Sorted())
	}
}

func TestToggleDoesNotMutateInput(t *testing.T) {
	s := Toggle(NewSelectionSet(), 1)

	_ = Toggle(s, 3)

	if s.Has(3) {
		t.Error("input set was mutated by Toggle")
	}
	if len(s) != 1 {
		t.Errorf("input set length = %d, want 1", len(s))
	}
}

func TestSortedOrder(t *testing.T) {
	s := NewSelectionSet()
	for _, option := range []int{4, 1, 3} {
		s = Toggle(s, option)
	}

	got := s.Sorted()
	want := []int{1, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("Sorted() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sorted() = %v, want %v", got, want)
		}
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	h := make(AnswerHistory)

	first := Toggle(Toggle(NewSelectionSet(), 1), 3)
	h = h.Snapshot(0, first)

	second := Toggle(NewSelectionSet(), 2)
	h = h.Snapshot(1, second)

	restored := h.Restore(0)
	if !restored.Has(1) || !restored.Has(3) || len(restored) != 2 {
		t.Errorf("Restore(0) = %v, want {1,3}", restored.Sorted())
	}
}

func TestHistoryEntriesAreIndependent(t *testing.T) {
	h := make(AnswerHistory)
	h = h.Snapshot(0, Toggle(NewSelectionSet(), 2))

	// Visiting question 1, selecting nothing, and leaving it must not
	// corrupt question 0's entry.
	h = h.Snapshot(1, NewSelectionSet())

	if got := h.Restore(0); !got.Has(2) || len(got) != 1 {
		t.Errorf("Restore(0) = %v, want {2}", got.Sorted())
	}
	if got := h.Restore(1); !got.Empty() {
		t.Errorf("Restore(1) = %v, want empty", got.Sorted())
	}
}

func TestRestoreUnvisitedIsEmpty(t *testing.T) {
	h := make(AnswerHistory)
	if got := h.Restore(7); !got.Empty() {
		t.Errorf("Restore(7) = %v, want empty", got.Sorted())
	}
}

func TestRestoreReturnsCopy(t *testing.T) {
	h := make(AnswerHistory)
	h = h.Snapshot(0, Toggle(NewSelectionSet(), 1))

	restored := h.Restore(0)
	restored[9] = struct{}{}

	if h.Restore(0).Has(9) {
		t.Error("mutating a restored set leaked into history")
	}
}

func TestSnapshotOverwritesSameIndex(t *testing.T) {
	h := make(AnswerHistory)
	h = h.Snapshot(0, Toggle(NewSelectionSet(), 1))
	h = h.Snapshot(0, Toggle(NewSelectionSet(), 4))

	got := h.Restore(0)
	if !got.Has(4) || got.Has(1) {
		t.Errorf("Restore(0) = %v, want {4}", got.Sorted())
	}
}
