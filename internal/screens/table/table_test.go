package table

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestBoardDetailFollowsCursor(t *testing.T) {
	s := New()
	view := s.View(100, 30)
	assert.Contains(t, view, "水素")
	assert.Contains(t, view, "第1周期 1族")

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	view = s.View(100, 30)
	assert.Contains(t, view, "リチウム")
}

func TestTabTogglesList(t *testing.T) {
	s := New()
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.True(t, s.showList)
	view := s.View(100, 40)
	assert.Contains(t, view, "Og")

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.False(t, s.showList)
}

func TestListScrollBounds(t *testing.T) {
	s := New()
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, s.offset)

	for i := 0; i < 50; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.Equal(t, listRows()-1, s.offset)
	assert.Contains(t, s.View(100, 10), "Og")
}
