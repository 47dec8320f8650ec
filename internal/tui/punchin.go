package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
)

// punchInModel asks for the teller's name before the shift starts.
type punchInModel struct {
	input textinput.Model
}

func newPunchInModel() punchInModel {
	ti := textinput.New()
	ti.Placeholder = "TELLER"
	ti.Focus()
	ti.CharLimit = 24
	ti.Width = 30

	return punchInModel{input: ti}
}

func (m punchInModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m punchInModel) Update(msg tea.Msg) (punchInModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		if msg.Type == tea.KeyEsc {
			return m, navigateTo(viewMenu)
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			return m.handleSubmit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m punchInModel) handleSubmit() (punchInModel, tea.Cmd) {
	name := strings.ToUpper(strings.TrimSpace(m.input.Value()))
	if name == "" {
		name = "TELLER"
	}

	return m, func() tea.Msg {
		return punchInMsg{name: name}
	}
}

func (m punchInModel) View() string {
	indent := lipgloss.NewStyle().MarginLeft(2)
	logo := indent.Render(
		zstyle.StyledLogo(lipgloss.NewStyle().Foreground(accent)),
	)
	toolName := indent.Render(zstyle.MutedText.Render("teller"))

	s := fmt.Sprintf("\n%s\n%s\n\n  %s\n  %s\n",
		logo, toolName, "name on the time card:", m.input.View())
	s += "\n  " + zstyle.MutedText.Render("enter punch in  esc menu") + "\n"
	return s
}
