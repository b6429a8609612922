package components

import (
	"fmt"

	"github.com/bodhisathwik/finsaver/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: keys on the left, the
// runway summary and rotating insight on the right.
func RenderStatusBar(width int, runway, insight string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [q]uit"
	right := ""
	if runway != "" {
		right = fmt.Sprintf("Runway: %s ", runway)
	}

	middle := ""
	if insight != "" {
		middle = "💡 " + insight
	}

	bar := left
	if middle != "" && lipgloss.Width(left)+lipgloss.Width(middle)+lipgloss.Width(right)+2 <= width {
		bar += "  " + middle
	}

	padding := width - lipgloss.Width(bar) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
