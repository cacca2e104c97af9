package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/elemquiz/internal/mode"
	"github.com/abhisek/elemquiz/internal/randutil"
	"github.com/abhisek/elemquiz/internal/records"
	"github.com/abhisek/elemquiz/internal/router"
	"github.com/abhisek/elemquiz/internal/screens/home"
	"github.com/abhisek/elemquiz/internal/screens/quiz"
	"github.com/abhisek/elemquiz/internal/screens/welcome"
	"github.com/abhisek/elemquiz/internal/session"
)

func newTestController() *session.Controller {
	return session.New(session.Options{
		Records: records.New(records.NewMemoryKV()),
		Rand:    randutil.New(3, 5),
	})
}

// step delivers msg and then runs any command it returns once, feeding a
// router message back in.
func step(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg, router.PopToRootMsg:
		next, _ = m.Update(out)
		m = next.(AppModel)
	}
	return m
}

func TestStartsOnHome(t *testing.T) {
	m := newAppModel(Options{Controller: newTestController()})
	assert.IsType(t, &home.HomeScreen{}, m.router.Active())
	assert.Equal(t, 1, m.router.Depth())
}

func TestSplashRoot(t *testing.T) {
	m := newAppModel(Options{Controller: newTestController(), Splash: true})
	assert.IsType(t, &welcome.WelcomeScreen{}, m.router.Active())
	assert.NotNil(t, m.Init())
}

func TestStartModeSkipsHome(t *testing.T) {
	ctrl := newTestController()
	pm := mode.PeriodicTable
	m := newAppModel(Options{Controller: ctrl, StartMode: &pm, Splash: true})

	assert.Equal(t, 2, m.router.Depth())
	assert.IsType(t, &quiz.QuizScreen{}, m.router.Active())
	assert.Equal(t, session.ScreenCountdown, ctrl.Screen())
	assert.Equal(t, mode.PeriodicTable, ctrl.View().Mode)
}

func TestEscAbandonsRun(t *testing.T) {
	ctrl := newTestController()
	m := newAppModel(Options{Controller: ctrl})

	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, 2, m.router.Depth())
	require.Equal(t, session.ScreenCountdown, ctrl.Screen())

	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 1, m.router.Depth())
	assert.Equal(t, session.ScreenHome, ctrl.Screen())
}

func TestEscPopsReferenceScreen(t *testing.T) {
	ctrl := newTestController()
	m := newAppModel(Options{Controller: ctrl})

	m = step(t, m, tea.KeyPressMsg{Code: '5', Text: "5"})
	require.Equal(t, 2, m.router.Depth())

	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 1, m.router.Depth())
	assert.Equal(t, session.ScreenHome, ctrl.Screen())
}

func TestEscOnRootIsNoop(t *testing.T) {
	m := newAppModel(Options{Controller: newTestController()})
	next, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, next.(AppModel).router.Depth())
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(Options{Controller: newTestController()})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewTooSmall(t *testing.T) {
	m := newAppModel(Options{Controller: newTestController()})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, next.(AppModel).render(), "ターミナルが小さすぎます")
}

func TestViewFramesHome(t *testing.T) {
	m := newAppModel(Options{Controller: newTestController()})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 36})
	frame := next.(AppModel).render()
	assert.Contains(t, frame, "Elemquiz")
	assert.Contains(t, frame, "ホーム")
}

func TestStatusShowsProgress(t *testing.T) {
	ctrl := newTestController()
	m := newAppModel(Options{Controller: ctrl})
	assert.Empty(t, m.status())

	timers := ctrl.Start(mode.AtomicNumber)
	for len(timers) > 0 {
		tm := timers[0]
		timers = append(timers[1:], ctrl.Fire(tm)...)
	}
	require.Equal(t, session.ScreenQuiz, ctrl.Screen())
	assert.Equal(t, "本番 1 / 20", m.status())
}
