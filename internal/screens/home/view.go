package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/elemquiz/internal/grade"
	"github.com/abhisek/elemquiz/internal/mode"
	"github.com/abhisek/elemquiz/internal/records"
	"github.com/abhisek/elemquiz/internal/ui/theme"
)

const homeTitle = "元素記号クイズ"

const homeSubtitle = "1〜20番の元素記号をタイムアタックでおぼえよう"

// renderTitle returns the styled title block.
func renderTitle(cw int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(homeTitle)
	sub := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(homeSubtitle)
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(title + "\n" + sub)
}

// renderBests renders each mode's best time in a bordered box matching
// content width.
func renderBests(bests map[mode.Mode]records.BestRecord, cw int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var lines []string
	for _, m := range mode.All() {
		label := lipgloss.NewStyle().Foreground(theme.ModeColor(m)).Render(m.Meta().Title)
		value := dim.Render("ベスト --")
		if b, ok := bests[m]; ok {
			value = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
				Render("ベスト " + grade.FormatSeconds(b.ElapsedSeconds) + "s " + string(grade.For(b.ElapsedSeconds).Tier))
		}
		lines = append(lines, label+"  "+value)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw-2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
