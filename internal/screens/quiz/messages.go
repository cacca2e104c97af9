package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/elemquiz/internal/session"
)

// TimerMsg delivers an elapsed controller timer back to the screen.
type TimerMsg struct {
	Timer session.Timer
}

// Schedule turns controller timers into tick commands.
func Schedule(timers []session.Timer) tea.Cmd {
	if len(timers) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(timers))
	for _, t := range timers {
		cmds = append(cmds, tea.Tick(t.Delay, func(time.Time) tea.Msg {
			return TimerMsg{Timer: t}
		}))
	}
	return tea.Batch(cmds...)
}
