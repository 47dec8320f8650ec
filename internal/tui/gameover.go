package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
)

// gameOverModel shows the end-of-shift report.
type gameOverModel struct {
	report string
}

func newGameOverModel(report string) gameOverModel {
	return gameOverModel{report: report}
}

func (m gameOverModel) Init() tea.Cmd {
	return nil
}

func (m gameOverModel) Update(msg tea.Msg) (gameOverModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, zstyle.KeyQuit) {
			return m, tea.Quit
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			return m, navigateTo(viewBoard)
		}
	}

	return m, nil
}

func (m gameOverModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	for _, line := range strings.Split(m.report, "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n  " + zstyle.MutedText.Render("enter to see the leaderboard") + "\n")

	return b.String()
}
