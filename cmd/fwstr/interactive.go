package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/firmware-strings/transcoder"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	unitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	remainderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type encodeResult struct {
	units     string
	decoded   string
	remainder string
	err       error
}

type interactiveModel struct {
	input    textinput.Model
	wide     encodeResult
	narrow   encodeResult
	capacity int
	done     bool
}

func newInteractiveModel(capacity int) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "text to encode"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	return &interactiveModel{
		input:    ti,
		capacity: capacity,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.encode()
	return m, cmd
}

func (m *interactiveModel) encode() {
	text := m.input.Value()

	s16, rest16, err16 := transcoder.EncodeCStr16(text, make([]uint16, m.capacity))
	if err16 != nil {
		m.wide = encodeResult{err: err16}
	} else {
		m.wide = encodeResult{
			units:     formatUnits16(s16.IntsWithNul()),
			decoded:   s16.String(),
			remainder: rest16,
		}
	}

	s8, rest8, err8 := transcoder.EncodeCStr8(text, make([]byte, m.capacity))
	if err8 != nil {
		m.narrow = encodeResult{err: err8}
	} else {
		m.narrow = encodeResult{
			units:     formatUnits8(s8.IntsWithNul()),
			decoded:   s8.String(),
			remainder: rest8,
		}
	}
}

func (m *interactiveModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("fwstr — firmware string inspector"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	renderResult(&b, "UCS-2", m.wide)
	b.WriteString("\n")
	renderResult(&b, "Latin-1", m.narrow)

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("buffer: %d units • esc to quit", m.capacity)))
	b.WriteString("\n")
	return b.String()
}

func renderResult(b *strings.Builder, label string, r encodeResult) {
	b.WriteString(labelStyle.Render(label + ":"))
	b.WriteString(" ")
	if r.err != nil {
		b.WriteString(errorStyle.Render(r.err.Error()))
		b.WriteString("\n")
		return
	}
	b.WriteString(unitStyle.Render(r.units))
	b.WriteString("\n")
	if r.remainder != "" {
		b.WriteString(remainderStyle.Render(fmt.Sprintf("  truncated, remainder %q", r.remainder)))
		b.WriteString("\n")
	}
}

func runInteractive(capacity int) error {
	p := tea.NewProgram(newInteractiveModel(capacity))
	_, err := p.Run()
	return err
}
