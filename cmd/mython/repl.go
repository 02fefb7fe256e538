package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mgomes/mython/mython"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func runRepl(args []string) error {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	configPath := fs.String("config", "mython.toml", "path to a Mython config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := mython.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	m := newReplModel(cfg)
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}

// replModel evaluates one top-level statement per Enter against a
// REPL-local interpreter session that persists across lines: the same
// mython.Session carries its class table and global bindings forward.
type replModel struct {
	input    textinput.Model
	lines    []string
	session  *mython.Session
	quitting bool
}

func newReplModel(cfg mython.Config) *replModel {
	ti := textinput.New()
	ti.Placeholder = "print \"hello\""
	ti.Focus()
	return &replModel{
		input:   ti,
		session: mython.NewSession(cfg),
	}
}

func (m *replModel) Init() tea.Cmd {
	return nil
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			text := m.input.Value()
			m.input.SetValue("")
			if strings.TrimSpace(text) == "" {
				return m, nil
			}
			out, err := m.session.Eval(text)
			m.lines = append(m.lines, promptStyle.Render(">")+" "+text)
			if err != nil {
				m.lines = append(m.lines, errorStyle.Render(err.Error()))
			} else if out != "" {
				m.lines = append(m.lines, resultStyle.Render(out))
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) View() string {
	var b strings.Builder
	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if m.quitting {
		return b.String()
	}
	b.WriteString(mutedStyle.Render("mython") + " " + m.input.View())
	return b.String()
}
