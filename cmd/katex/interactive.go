package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/typesetting/katex"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	onStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	opts     *katex.Opts
	input    textinput.Model
	display  bool
	result   string
	err      error
	rendered string
}

type renderedMsg struct {
	input  string
	result string
	err    error
}

func newInteractiveModel(opts *katex.Opts, display bool) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = `\frac{a}{b}`
	ti.Prompt = "latex> "
	ti.Width = 60
	ti.Focus()
	return &interactiveModel{opts: opts, input: ti, display: display}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) renderCurrent() tea.Cmd {
	input := m.input.Value()
	opts := *m.opts
	opts.SetDisplayMode(m.display)
	return func() tea.Msg {
		out, err := katex.RenderWithOpts(input, &opts)
		return renderedMsg{input: input, result: out, err: err}
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			if strings.TrimSpace(m.input.Value()) == "" {
				return m, nil
			}
			return m, m.renderCurrent()

		case "ctrl+d":
			m.display = !m.display
			if m.rendered != "" {
				return m, m.renderCurrent()
			}
			return m, nil
		}

	case renderedMsg:
		m.rendered = msg.input
		m.result = msg.result
		m.err = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("KaTeX " + katex.Version))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	mode := "inline"
	if m.display {
		mode = onStyle.Render("display")
	}
	b.WriteString(labelStyle.Render("mode: "))
	b.WriteString(mode)
	b.WriteString("\n\n")

	if m.rendered != "" {
		if m.err != nil {
			b.WriteString(errorStyle.Render(m.err.Error()))
		} else {
			b.WriteString(labelStyle.Render(m.rendered))
			b.WriteString("\n")
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("enter render • ctrl+d toggle display mode • esc quit"))
	return b.String()
}

func runInteractive(flags *renderFlags, changed func(string) bool) error {
	opts, err := buildOpts(flags, changed)
	if err != nil {
		return err
	}
	p := tea.NewProgram(newInteractiveModel(opts, flags.display), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
