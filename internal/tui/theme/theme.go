package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styles for the prompt and for printed entries.
type Theme struct {
	PromptMark lipgloss.Style
	Breadcrumb lipgloss.Style
	Hint       lipgloss.Style
	ActiveLine lipgloss.Style
	Cursor     lipgloss.Style
	Row        lipgloss.Style
	Empty      lipgloss.Style

	EntryTitle lipgloss.Style
	EntryValue lipgloss.Style
}

func Default() Theme {
	cpMauve := lipgloss.Color("#cba6f7")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpTeal := lipgloss.Color("#94e2d5")
	cpLavender := lipgloss.Color("#b4befe")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext1 := lipgloss.Color("#bac2de")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface0 := lipgloss.Color("#313244")

	return Theme{
		PromptMark: lipgloss.NewStyle().Bold(true).Foreground(cpGreen),
		Breadcrumb: lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		Hint:       lipgloss.NewStyle().Faint(true),
		ActiveLine: lipgloss.NewStyle().Background(cpSurface0).Foreground(cpText),
		Cursor:     lipgloss.NewStyle().Bold(true).Foreground(cpTeal),
		Row:        lipgloss.NewStyle().Foreground(cpSubtext1),
		Empty:      lipgloss.NewStyle().Italic(true).Foreground(cpOverlay1),
		EntryTitle: lipgloss.NewStyle().Italic(true).Foreground(cpLavender),
		EntryValue: lipgloss.NewStyle().Bold(true),
	}
}

func (t Theme) RenderActiveLine(active bool, line string) string {
	if !active {
		return t.Row.Render(line)
	}
	return t.ActiveLine.Render(line)
}
