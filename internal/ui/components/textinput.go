package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepquest/internal/ui/theme"
)

// NumberInput is a text input that only accepts digits.
type NumberInput struct {
	Model textinput.Model
	err   string
}

// NewNumberInput creates a focused input pre-filled with value.
func NewNumberInput(placeholder string, value, maxDigits int) NumberInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = maxDigits
	if value > 0 {
		ti.SetValue(strconv.Itoa(value))
	}
	ti.Focus()
	return NumberInput{Model: ti}
}

// Update forwards msg to the input, dropping non-digit keys.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return n, nil
		}
	}
	n.err = ""
	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

// Int parses the value.
func (n NumberInput) Int() (int, error) {
	return strconv.Atoi(n.Model.Value())
}

// SetError shows msg under the input until the next key press.
func (n *NumberInput) SetError(msg string) {
	n.err = msg
}

// View renders the input and any error.
func (n NumberInput) View() string {
	view := n.Model.View()
	if n.err != "" {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(n.err)
	}
	return view
}
