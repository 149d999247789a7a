package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/luyao/tripdeck/internal/domain/airports"
)

// autocomplete binds one airport-code input to its suggestion list.
// Each instance owns its own dismissal state and request sequence, so
// two fields on the same form never interfere.
type autocomplete struct {
	field   string
	input   textinput.Model
	items   []airports.Airport
	visible bool
	cursor  int
	seq     int
	suggest func(ctx context.Context, query string) ([]airports.Airport, error)
}

func newAutocomplete(field, placeholder string, suggest func(ctx context.Context, query string) ([]airports.Airport, error)) autocomplete {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 48
	ti.Width = 24
	return autocomplete{
		field:   field,
		input:   ti,
		suggest: suggest,
	}
}

func (a *autocomplete) Value() string {
	return strings.TrimSpace(a.input.Value())
}

func (a *autocomplete) SetValue(v string) {
	a.input.SetValue(v)
}

func (a *autocomplete) Focus() tea.Cmd {
	// focusing a field with previously rendered suggestions re-shows them
	if len(a.items) > 0 {
		a.visible = true
	}
	return a.input.Focus()
}

// Blur hides the list, mirroring an outside click.
func (a *autocomplete) Blur() {
	a.input.Blur()
	a.visible = false
}

// Update feeds a key to the input and issues a lookup when the query
// is long enough. Shorter queries hide the list without a request.
func (a *autocomplete) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && a.visible {
		switch key.String() {
		case "down":
			if a.cursor < len(a.items)-1 {
				a.cursor++
			}
			return nil
		case "up":
			if a.cursor > 0 {
				a.cursor--
			}
			return nil
		case "enter":
			a.Select()
			return nil
		case "esc":
			a.visible = false
			return nil
		}
	}

	before := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	if a.input.Value() == before {
		return cmd
	}

	query := a.Value()
	if len([]rune(query)) < 2 {
		a.visible = false
		a.items = nil
		return cmd
	}

	a.seq++
	seq := a.seq
	field := a.field
	suggest := a.suggest
	return tea.Batch(cmd, func() tea.Msg {
		items, _ := suggest(context.Background(), query)
		return suggestionsMsg{field: field, seq: seq, items: items}
	})
}

// Apply installs a suggestion response, dropping stale sequences.
func (a *autocomplete) Apply(msg suggestionsMsg) {
	if msg.field != a.field || msg.seq != a.seq {
		return
	}
	a.items = msg.items
	a.cursor = 0
	a.visible = len(msg.items) > 0
}

// Select writes the highlighted airport code into the input and hides
// the list.
func (a *autocomplete) Select() {
	if !a.visible || a.cursor >= len(a.items) {
		return
	}
	a.input.SetValue(a.items[a.cursor].Code)
	a.input.CursorEnd()
	a.visible = false
}

func (a *autocomplete) View() string {
	var b strings.Builder
	b.WriteString(a.input.View())
	if !a.visible {
		return b.String()
	}
	for i, airport := range a.items {
		b.WriteString("\n")
		row := airport.Label()
		if i == a.cursor {
			row = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("> " + row)
		} else {
			row = "  " + row
		}
		b.WriteString(row)
	}
	return b.String()
}
