package help

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/elemquiz/internal/mode"
	"github.com/abhisek/elemquiz/internal/router"
)

func TestViewListsModes(t *testing.T) {
	view := New().View(100, 40)
	for _, m := range mode.All() {
		assert.Contains(t, view, m.Meta().Title)
	}
	assert.Contains(t, view, "元素記号クイズ")
}

func TestEnterCloses(t *testing.T) {
	_, cmd := New().Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())

	_, cmd = New().Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Nil(t, cmd)
}
