// Package app is the root bubbletea model: a screen router framed by a
// header and a key-hint footer.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/elemquiz/internal/mode"
	"github.com/abhisek/elemquiz/internal/router"
	"github.com/abhisek/elemquiz/internal/screen"
	"github.com/abhisek/elemquiz/internal/screens/history"
	"github.com/abhisek/elemquiz/internal/screens/home"
	"github.com/abhisek/elemquiz/internal/screens/quiz"
	"github.com/abhisek/elemquiz/internal/screens/welcome"
	"github.com/abhisek/elemquiz/internal/session"
	"github.com/abhisek/elemquiz/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Controller *session.Controller

	// Records backs the records screen; nil hides it.
	Records history.Source

	// DefaultMode is preselected on the home menu.
	DefaultMode mode.Mode

	// StartMode, when set, skips home and starts a run immediately.
	StartMode *mode.Mode

	// Splash shows the welcome animation before home.
	Splash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctrl    *session.Controller
	router  *router.Router
	initCmd tea.Cmd
	width   int
	height  int
}

// newAppModel creates an AppModel rooted at home (or the splash).
func newAppModel(opts Options) AppModel {
	ctrl := opts.Controller
	if ctrl == nil {
		ctrl = session.New(session.Options{})
	}
	homeFactory := func() screen.Screen { return home.New(ctrl, opts.DefaultMode, opts.Records) }

	var root screen.Screen
	if opts.Splash && opts.StartMode == nil {
		root = welcome.New(homeFactory)
	} else {
		root = homeFactory()
	}

	m := AppModel{
		ctrl:    ctrl,
		router:  router.New(root),
		initCmd: root.Init(),
	}
	if opts.StartMode != nil {
		if timers := ctrl.Start(*opts.StartMode); len(timers) > 0 {
			m.initCmd = tea.Batch(m.initCmd, m.router.Push(quiz.New(ctrl, timers)))
		}
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.ctrl.BackHome()
			return m, tea.Quit
		case "esc":
			if m.router.Depth() <= 1 {
				return m, nil
			}
			// Leaving a run abandons it; pending timers go stale.
			if m.ctrl.Screen() != session.ScreenHome {
				m.ctrl.BackHome()
				return m, func() tea.Msg { return router.PopToRootMsg{} }
			}
			return m, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render composes the frame for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// status is the header's right-hand text: progress during a question.
func (m AppModel) status() string {
	cv := m.ctrl.View()
	if cv.Screen != session.ScreenQuiz {
		return ""
	}
	label := "本番"
	if cv.Phase == session.PhaseReview {
		label = "復習"
	}
	return fmt.Sprintf("%s %d / %d", label, cv.Progress, cv.Total)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "もどる"},
			{Key: "Ctrl+C", Description: "終了"},
		}
	}
	return []layout.KeyHint{
		{Key: "any key", Description: "スタート"},
		{Key: "Ctrl+C", Description: "終了"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
