package session

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/elemquiz/internal/elements"
	"github.com/abhisek/elemquiz/internal/mode"
)

func TestView_Home(t *testing.T) {
	c, _ := newTestController(t, nil)
	v := c.View()
	assert.Equal(t, ScreenHome, v.Screen)
	assert.Empty(t, v.PromptMain)
	assert.Zero(t, v.Total)
	assert.Nil(t, v.Result)
}

func TestView_PromptPerMode(t *testing.T) {
	tests := []struct {
		mode mode.Mode
		want func(n int) string
	}{
		{mode.AtomicNumber, strconv.Itoa},
		{mode.ElementName, elements.NameFor},
		{mode.PeriodicTable, elements.SymbolFor},
	}
	for _, tt := range tests {
		t.Run(tt.mode.ID(), func(t *testing.T) {
			c, _ := newTestController(t, nil)
			startRun(t, c, tt.mode)

			v := c.View()
			n := currentNumber(t, c)
			assert.Equal(t, tt.want(n), v.PromptMain)
			assert.Equal(t, tt.mode.Meta().QuizPrompt, v.PromptSub)
			assert.Equal(t, 1, v.Progress)
			assert.Equal(t, elements.GameplayMax, v.Total)
		})
	}
}

func TestView_ProgressAndDisabledCopies(t *testing.T) {
	c, _ := newTestController(t, nil)
	startRun(t, c, mode.AtomicNumber)

	drain(c, c.Answer(elements.SymbolFor(currentNumber(t, c))))
	n := currentNumber(t, c)
	wrong := wrongCandidate(c, n)
	timers := c.Answer(wrong)

	v := c.View()
	assert.Equal(t, 2, v.Progress)
	assert.Equal(t, []string{wrong}, v.Disabled)
	assert.Empty(t, v.DisabledCells)
	require.NotNil(t, v.Flash)
	assert.Equal(t, wrong, v.Flash.Symbol)
	assert.False(t, v.Flash.Correct)
	require.NotNil(t, v.Overlay)
	assert.Equal(t, OverlayWrong, v.Overlay.Kind)

	v.Options[0] = "mutated"
	v.Overlay.Text = "mutated"
	assert.NotEqual(t, "mutated", c.sess.Options[0])
	assert.Equal(t, "不正解", c.sess.Overlay.Text)

	drain(c, timers)
	v = c.View()
	assert.Nil(t, v.Flash)
	assert.Nil(t, v.Overlay)
}

func TestView_Result(t *testing.T) {
	c, clk := newTestController(t, nil)
	playMain(t, c, clk, mode.PeriodicTable, 61*time.Second, map[int]bool{11: true})

	v := c.View()
	assert.Equal(t, ScreenResult, v.Screen)
	assert.Equal(t, PhaseMain, v.Phase)
	assert.Equal(t, mode.PeriodicTable, v.Mode)
	assert.Equal(t, elements.GameplayMax, v.Progress)
	require.NotNil(t, v.Result)
	assert.Equal(t, []int{11}, v.Result.Missed)
	assert.True(t, v.ReviewAvailable)
	assert.Nil(t, v.Overlay)
}
