package tui

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/kovetskiy/optmark/compose"
	"github.com/kovetskiy/optmark/options"
	"github.com/reconquest/karma-go"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrAborted is returned when the picker was interrupted with ctrl+c.
var ErrAborted = errors.New("selection aborted")

type Config struct {
	// Title is shown above the section tabs.
	Title string
	// Output receives the interface, stdout is left for the result.
	Output io.Writer
	// Copy puts text into the system clipboard.
	Copy func(string) error
}

// Styles.
var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4")).
			Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Padding(0, 1)
	dimensionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	outputStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

const help = "←/→ section • ↑/↓ option • space toggle • r reset • c copy • q done"

type model struct {
	title     string
	sections  []options.Section
	selection *compose.Selection
	copy      func(string) error

	section int
	cursor  int
	status  string
	failed  bool

	done    bool
	aborted bool
}

// Run lets a user toggle non-default options in a terminal and returns the
// composed text once the user is done.
func Run(ctx context.Context, sections []options.Section, config Config) (string, error) {
	if err := compose.Validate(sections); err != nil {
		return "", err
	}

	if config.Output == nil {
		config.Output = os.Stderr
	}

	program := tea.NewProgram(
		newModel(sections, config),
		tea.WithContext(ctx),
		tea.WithOutput(config.Output),
	)

	final, err := program.Run()
	if err != nil {
		return "", karma.Format(err, "unable to run option picker")
	}

	result := final.(model)
	if result.aborted {
		return "", ErrAborted
	}

	return compose.Text(result.sections, result.selection), nil
}

func newModel(sections []options.Section, config Config) model {
	if config.Copy == nil {
		config.Copy = clipboard.WriteAll
	}

	return model{
		title:     config.Title,
		sections:  sections,
		selection: compose.NewSelection(),
		copy:      config.Copy,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// items lists options of the active section which can be toggled.
func (m model) items() []compose.Ref {
	var refs []compose.Ref
	if m.section >= len(m.sections) {
		return refs
	}

	for d, dimension := range m.sections[m.section].Dimensions {
		if !dimension.Toggleable() {
			continue
		}

		for o := range dimension.Options {
			if o == dimension.DefaultIndex {
				continue
			}

			refs = append(refs, compose.Ref{Section: m.section, Dimension: d, Option: o})
		}
	}

	return refs
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.status = ""
	m.failed = false

	items := m.items()

	switch key.String() {
	case "ctrl+c":
		m.aborted = true
		return m, tea.Quit

	case "q", "esc":
		m.done = true
		return m, tea.Quit

	case "right", "l", "tab":
		m.section = (m.section + 1) % len(m.sections)
		m.cursor = 0

	case "left", "h", "shift+tab":
		m.section = (m.section - 1 + len(m.sections)) % len(m.sections)
		m.cursor = 0

	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
		}

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case " ", "space", "enter", "x":
		if m.cursor < len(items) {
			m.selection.Toggle(items[m.cursor])
		}

	case "r":
		m.selection.Reset()
		m.status = "Reset to defaults."

	case "c":
		err := m.copy(compose.Text(m.sections, m.selection))
		if err != nil {
			m.status = "Copy failed: " + err.Error()
			m.failed = true
		} else {
			m.status = "Copied to clipboard."
		}
	}

	return m, nil
}

func (m model) View() string {
	if m.done || m.aborted {
		return ""
	}

	var view strings.Builder

	if m.title != "" {
		view.WriteString(titleStyle.Render(m.title) + "\n\n")
	}

	tabs := make([]string, 0, len(m.sections))
	for s, section := range m.sections {
		if s == m.section {
			tabs = append(tabs, activeTabStyle.Render(section.Title))
		} else {
			tabs = append(tabs, tabStyle.Render(section.Title))
		}
	}
	view.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n\n")

	items := m.items()
	position := 0

	for d, dimension := range m.sections[m.section].Dimensions {
		if !dimension.Toggleable() {
			continue
		}

		view.WriteString(dimensionStyle.Render(dimension.Title) + "\n")

		for o, option := range dimension.Options {
			if o == dimension.DefaultIndex {
				continue
			}

			ref := compose.Ref{Section: m.section, Dimension: d, Option: o}

			pointer := "  "
			if position == m.cursor && position < len(items) {
				pointer = cursorStyle.Render("> ")
			}

			mark := "[ ]"
			if m.selection.IsSelected(ref) {
				mark = "[x]"
			}

			view.WriteString(pointer + mark + " " + option.DisplayText + "\n")
			position++
		}

		view.WriteString("\n")
	}

	if len(items) == 0 {
		view.WriteString(hintStyle.Render("Nothing to toggle here.") + "\n\n")
	}

	view.WriteString(outputStyle.Render(compose.Text(m.sections, m.selection)) + "\n\n")

	if m.status != "" {
		if m.failed {
			view.WriteString(errorStyle.Render(m.status) + "\n")
		} else {
			view.WriteString(hintStyle.Render(m.status) + "\n")
		}
	}

	view.WriteString(hintStyle.Render(help) + "\n")

	return view.String()
}
