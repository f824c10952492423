package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/fastcall/manifest"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectModel struct {
	filename string
	decls    []manifest.Declaration
	filter   textinput.Model
	visible  []int
	selected int
}

func newInspectModel(filename string, m *manifest.Manifest) inspectModel {
	ti := textinput.New()
	ti.Placeholder = "filter functions"
	ti.Focus()

	im := inspectModel{filename: filename, decls: m.Functions, filter: ti}
	im.refilter()
	return im
}

func (m *inspectModel) refilter() {
	q := strings.ToLower(m.filter.Value())
	m.visible = m.visible[:0]
	for i, d := range m.decls {
		if q == "" || strings.Contains(strings.ToLower(d.Key()), q) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

func (m inspectModel) Init() tea.Cmd { return textinput.Blink }

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down":
			if m.selected < len(m.visible)-1 {
				m.selected++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.refilter()
	return m, cmd
}

func (m inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("fastcall inspect: " + m.filename))
	b.WriteString("\n\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(helpStyle.Render("no functions match"))
		b.WriteString("\n")
	}
	for pos, idx := range m.visible {
		line := m.decls[idx].Key()
		if pos == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(funcStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.selected < len(m.visible) {
		b.WriteString("\n")
		b.WriteString(renderDeclaration(m.decls[m.visible[m.selected]]))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("up/down: select • type: filter • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func renderDeclaration(decl manifest.Declaration) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("arity %d, return %s (tag %d)\n",
		len(decl.Args), typeStyle.Render(decl.Return.String()), uint8(decl.Return)))
	for i, t := range decl.Args {
		pair := t.Pair()
		b.WriteString(fmt.Sprintf("arg %d: %s (tag %d, shape %d)\n",
			i, typeStyle.Render(t.String()), uint8(pair.Scalar), uint8(pair.Shape)))
	}
	return b.String()
}

func runInteractive(path string) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(newInspectModel(path, m)).Run()
	return err
}
