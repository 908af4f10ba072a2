package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/kovetskiy/optmark/compose"
	"github.com/kovetskiy/optmark/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tea "github.com/charmbracelet/bubbletea"
)

const document = `- Intro
  - [x] You are a boxing coach.

## Stance

- Stance
  - [x] Orthodox
  - [ ] Southpaw # southpaw-stance
  - [ ] Switch hitter # switch

## Guard

- Guard
  - [ ] High guard
  - [x] Philly shell # shoulder roll
`

func keys(values ...string) []tea.Msg {
	var msgs []tea.Msg
	for _, value := range values {
		switch value {
		case "right":
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRight})
		case "left":
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyLeft})
		case "down":
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyDown})
		case "up":
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyUp})
		case "enter":
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyEnter})
		case "esc":
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyEsc})
		case "ctrl+c":
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyCtrlC})
		default:
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)})
		}
	}

	return msgs
}

func run(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()

	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(model)
	}

	return m
}

func newTestModel(t *testing.T, copyText func(string) error) model {
	t.Helper()

	sections := options.ParseSections(document)
	require.Len(t, sections, 3)

	return newModel(sections, Config{Title: "Sparring", Copy: copyText})
}

func TestModelToggle(t *testing.T) {
	m := newTestModel(t, nil)

	// general section has nothing to toggle
	m = run(t, m, keys("enter")...)
	assert.Equal(t, 0, m.selection.Len())

	m = run(t, m, keys("right", "down", "enter")...)
	assert.True(t, m.selection.IsSelected(compose.Ref{Section: 1, Dimension: 0, Option: 2}))

	m = run(t, m, keys("right", "x")...)
	assert.Equal(t,
		"You are a boxing coach.\nswitch\nHigh guard",
		compose.Text(m.sections, m.selection),
	)

	m = run(t, m, keys("x")...)
	assert.False(t, m.selection.IsSelected(compose.Ref{Section: 2, Dimension: 0, Option: 0}))
}

func TestModelNavigationWraps(t *testing.T) {
	m := newTestModel(t, nil)

	m = run(t, m, keys("left")...)
	assert.Equal(t, 2, m.section)

	m = run(t, m, keys("right")...)
	assert.Equal(t, 0, m.section)

	m = run(t, m, keys("right", "down", "down", "down")...)
	assert.Equal(t, 1, m.cursor)

	m = run(t, m, keys("up", "up")...)
	assert.Equal(t, 0, m.cursor)
}

func TestModelReset(t *testing.T) {
	m := newTestModel(t, nil)

	m = run(t, m, keys("right", "x", "down", "x")...)
	assert.Equal(t, 2, m.selection.Len())

	m = run(t, m, keys("r")...)
	assert.Equal(t, 0, m.selection.Len())
	assert.Contains(t, m.View(), "Reset to defaults.")
}

func TestModelCopy(t *testing.T) {
	var copied string
	m := newTestModel(t, func(text string) error {
		copied = text
		return nil
	})

	m = run(t, m, keys("right", "x", "c")...)
	assert.Equal(t, "You are a boxing coach.\nsouthpaw-stance\nshoulder roll", copied)
	assert.Contains(t, m.View(), "Copied to clipboard.")

	m.copy = func(string) error { return errors.New("no clipboard") }
	m = run(t, m, keys("c")...)
	assert.Contains(t, m.View(), "Copy failed: no clipboard")
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	updated, cmd := m.Update(keys("q")[0])
	assert.True(t, updated.(model).done)
	assert.NotNil(t, cmd)
	assert.Equal(t, "", updated.(model).View())

	updated, cmd = m.Update(keys("ctrl+c")[0])
	assert.True(t, updated.(model).aborted)
	assert.NotNil(t, cmd)
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, nil)

	view := m.View()
	assert.Contains(t, view, "Sparring")
	assert.Contains(t, view, "Nothing to toggle here.")

	m = run(t, m, keys("right", "x")...)
	view = m.View()
	assert.Contains(t, view, "Stance")
	assert.Contains(t, view, "[x] Southpaw")
	assert.Contains(t, view, "[ ] Switch hitter")
	assert.NotContains(t, view, "Orthodox\n")
}

func TestRunWithoutOptions(t *testing.T) {
	_, err := Run(context.Background(), nil, Config{})
	assert.ErrorIs(t, err, compose.ErrNoOptions)
}
