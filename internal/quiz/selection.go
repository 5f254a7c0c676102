package quiz

import "sort"

// SelectionSet holds the chosen 1-based option indices for one question.
// All operations are copy-on-write: a set handed out is never mutated
// through another reference.
type SelectionSet map[int]struct{}

// NewSelectionSet returns an empty selection.
func NewSelectionSet() SelectionSet {
	return make(SelectionSet)
}

// Has reports whether option is selected.
func (s SelectionSet) Has(option int) bool {
	_, ok := s[option]
	return ok
}

// Empty reports whether nothing is selected.
func (s SelectionSet) Empty() bool {
	return len(s) == 0
}

// Sorted returns the selected indices in ascending order, the shape the
// remote service expects for selected_answers.
func (s SelectionSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for option := range s {
		out = append(out, option)
	}
	sort.Ints(out)
	return out
}

// Clone returns an independent copy.
func (s SelectionSet) Clone() SelectionSet {
	out := make(SelectionSet, len(s))
	for option := range s {
		out[option] = struct{}{}
	}
	return out
}

// Toggle returns a new set with option added if absent, removed if present.
// The input set is unchanged.
func Toggle(s SelectionSet, option int) SelectionSet {
	out := s.Clone()
	if out.Has(option) {
		delete(out, option)
	} else {
		out[option] = struct{}{}
	}
	return out
}

// AnswerHistory maps question positions (0-based cursor values) to the
// selection that was active when the learner last left that question.
// Each entry is independent and keyed solely by position.
type AnswerHistory map[int]SelectionSet

// Snapshot returns a history with the given selection recorded under index.
// Entries for other indices are preserved unchanged.
func (h AnswerHistory) Snapshot(index int, s SelectionSet) AnswerHistory {
	out := make(AnswerHistory, len(h)+1)
	for i, entry := range h {
		out[i] = entry
	}
	out[index] = s.Clone()
	return out
}

// Restore returns the selection recorded for index, or an empty set when the
// question was never left with a selection.
func (h AnswerHistory) Restore(index int) SelectionSet {
	if entry, ok := h[index]; ok {
		return entry.Clone()
	}
	return NewSelectionSet()
}
