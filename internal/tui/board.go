package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/teller/internal/leaderboard"
)

// boardModel shows the top scores, highlighting the shift just recorded.
type boardModel struct {
	entries   []leaderboard.Entry
	highlight string
	flash     string
}

func newBoardModel(entries []leaderboard.Entry, highlight string) boardModel {
	return boardModel{entries: entries, highlight: highlight}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) Update(msg tea.Msg) (boardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, zstyle.KeyQuit) {
			return m, tea.Quit
		}

		if msg.Type == tea.KeyEsc || key.Matches(msg, zstyle.KeyEnter) {
			return m, navigateTo(viewMenu)
		}
	}

	return m, nil
}

func (m boardModel) View() string {
	var b strings.Builder

	if len(m.entries) == 0 {
		b.WriteString("\n  " + zstyle.MutedText.Render("no shifts on record yet.") + "\n")
	}

	for i, e := range m.entries {
		row := fmt.Sprintf("%2d. %-24s %6d   %s", i+1, e.Name, e.Score, e.Date.Format("2006-01-02"))
		if e.ID == m.highlight {
			b.WriteString("  " + zstyle.Highlight.Render(row) + "\n")
		} else {
			b.WriteString("  " + row + "\n")
		}
	}

	if m.flash != "" {
		b.WriteString("\n  " + zstyle.StatusErr.Render(m.flash) + "\n")
	}

	return b.String()
}
