package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
)

// arrestModel plays the police sequence one line at a time. It cannot be
// skipped; keys are swallowed until the script finishes.
type arrestModel struct {
	steps []string
	shown int
	epoch int
}

func newArrestModel(steps []string, epoch int) arrestModel {
	return arrestModel{steps: steps, epoch: epoch}
}

func (m arrestModel) Init() tea.Cmd {
	return arrestTick(m.epoch)
}

func (m arrestModel) Update(msg tea.Msg) (arrestModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil

	case arrestStepMsg:
		if msg.epoch != m.epoch {
			return m, nil
		}
		if m.shown < len(m.steps) {
			m.shown++
		}
		if m.shown >= len(m.steps) {
			return m, tea.Tick(arrestInterval, func(time.Time) tea.Msg { return arrestDoneMsg{} })
		}
		return m, arrestTick(m.epoch)
	}

	return m, nil
}

func (m arrestModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	for _, line := range m.steps[:m.shown] {
		b.WriteString("  " + zstyle.StatusErr.Render(line) + "\n")
	}

	return b.String()
}
