package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/fssp-tools/attest/internal/ui/theme"
)

// OptionList renders a question's answer options with checkbox markers.
// Several options can be marked at once.
type OptionList struct {
	Prompt  string
	Options []string
	Marked  map[int]struct{}
}

// NewOptionList creates an option list for a question.
func NewOptionList(prompt string, options []string) OptionList {
	return OptionList{
		Prompt:  prompt,
		Options: options,
		Marked:  map[int]struct{}{},
	}
}

// View renders the prompt and the numbered options.
func (o OptionList) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(o.Prompt) + "\n\n"

	for i, opt := range o.Options {
		_, marked := o.Marked[i+1]

		box := "[ ]"
		if marked {
			box = "[x]"
		}
		line := fmt.Sprintf("  %s %d. %s", box, i+1, opt)

		if marked {
			s += theme.Selected.Render(line) + "\n"
		} else {
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
