package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/elemquiz/internal/ui/theme"
)

// Button is one action in a ButtonRow.
type Button struct {
	Label    string
	Disabled bool
	OnPress  func() tea.Cmd
}

// ButtonRow is a horizontal set of buttons navigated with left/right.
type ButtonRow struct {
	Buttons  []Button
	Selected int
}

// NewButtonRow creates a row with the first enabled button selected.
func NewButtonRow(buttons ...Button) ButtonRow {
	r := ButtonRow{Buttons: buttons}
	for i, b := range buttons {
		if !b.Disabled {
			r.Selected = i
			break
		}
	}
	return r
}

// Update handles key events.
func (r ButtonRow) Update(msg tea.Msg) (ButtonRow, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "left", "h", "shift+tab":
		for i := r.Selected - 1; i >= 0; i-- {
			if !r.Buttons[i].Disabled {
				r.Selected = i
				break
			}
		}
	case "right", "l", "tab":
		for i := r.Selected + 1; i < len(r.Buttons); i++ {
			if !r.Buttons[i].Disabled {
				r.Selected = i
				break
			}
		}
	case "enter", "space":
		if r.Selected >= 0 && r.Selected < len(r.Buttons) {
			b := r.Buttons[r.Selected]
			if b.OnPress != nil && !b.Disabled {
				return r, b.OnPress()
			}
		}
	}

	return r, nil
}

// View renders the buttons side by side.
func (r ButtonRow) View() string {
	parts := make([]string, 0, len(r.Buttons))
	for i, b := range r.Buttons {
		var s string
		switch {
		case b.Disabled:
			s = theme.ButtonInactive.Foreground(theme.Muted).Render(b.Label)
		case i == r.Selected:
			s = theme.ButtonActive.Render("▸ " + b.Label)
		default:
			s = theme.ButtonInactive.Render(b.Label)
		}
		parts = append(parts, s)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, joinWithGap(parts, "  ")...)
}

func joinWithGap(parts []string, gap string) []string {
	if len(parts) < 2 {
		return parts
	}
	out := make([]string, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, p)
	}
	return out
}
