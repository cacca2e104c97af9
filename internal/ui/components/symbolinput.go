package components

import (
	"strings"
	"unicode"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/elemquiz/internal/ui/theme"
)

// SymbolMaxLen is the longest symbol the input accepts.
const SymbolMaxLen = 2

// SymbolInput wraps bubbles/textinput for typing an element symbol.
// Only letters are accepted.
type SymbolInput struct {
	Model textinput.Model
}

// NewSymbolInput creates a focused, empty symbol input.
func NewSymbolInput() SymbolInput {
	ti := textinput.New()
	ti.Placeholder = "He"
	ti.Prompt = "記号> "
	ti.CharLimit = SymbolMaxLen
	ti.Focus()
	return SymbolInput{Model: ti}
}

// Init returns the initial command.
func (s SymbolInput) Init() tea.Cmd {
	return s.Model.Focus()
}

// Update handles messages. Non-letter keys that would insert text are
// dropped.
func (s SymbolInput) Update(msg tea.Msg) (SymbolInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.Text != "" {
		for _, r := range kmsg.Text {
			if !unicode.IsLetter(r) {
				return s, nil
			}
		}
	}

	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the input.
func (s SymbolInput) View() string {
	return lipgloss.NewStyle().Foreground(theme.Text).Render(s.Model.View())
}

// Symbol returns the typed text normalized to symbol case ("he" -> "He").
func (s SymbolInput) Symbol() string {
	return NormalizeSymbol(s.Model.Value())
}

// Reset clears the input.
func (s *SymbolInput) Reset() {
	s.Model.Reset()
}

// NormalizeSymbol upper-cases the first letter and lower-cases the rest.
func NormalizeSymbol(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	r := []rune(strings.ToLower(v))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
