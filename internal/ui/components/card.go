package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/elemquiz/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for the panel border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Panel centers content inside the given area.
func Panel(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int, accent color.Color) string {
	if accent == nil {
		accent = theme.Border
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(content)
}

// OverlayBox renders transient feedback in the given accent color.
func OverlayBox(text, subText string, accent color.Color) string {
	body := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(text)
	if subText != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(subText)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(accent).
		Align(lipgloss.Center).
		Padding(1, 4).
		Render(body)
}
