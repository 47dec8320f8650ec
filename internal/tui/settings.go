package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
)

type settingsRow int

const (
	rowFraudRate settingsRow = iota
	rowStartLevel
	rowAdvance
	settingsRows
)

var startLevelPresets = []int{1, 2, 3, 5}
var advancePresets = []int{0, 1, 2, 4}

// settingsModel edits the game settings. Changes apply on save; esc
// discards them.
type settingsModel struct {
	current GameSettings
	editing GameSettings
	cursor  settingsRow
	flash   string
}

func newSettingsModel(s GameSettings) settingsModel {
	return settingsModel{current: s, editing: s}
}

func (m settingsModel) Init() tea.Cmd {
	return nil
}

func (m settingsModel) Update(msg tea.Msg) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, zstyle.KeyQuit) {
			return m, tea.Quit
		}

		if msg.Type == tea.KeyEsc {
			return m, navigateTo(viewMenu)
		}

		if msg.Type == tea.KeyCtrlS {
			edited := m.editing
			return m, func() tea.Msg {
				return saveSettingsMsg{settings: edited}
			}
		}

		if key.Matches(msg, zstyle.KeyUp) {
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyDown) {
			if m.cursor < settingsRows-1 {
				m.cursor++
			}
			return m, nil
		}

		if msg.Type == tea.KeySpace || key.Matches(msg, zstyle.KeyEnter) {
			m.cycle()
			return m, nil
		}

	case flashClearMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

// cycle advances the selected row to its next preset.
func (m *settingsModel) cycle() {
	switch m.cursor {
	case rowFraudRate:
		m.editing.FraudRate = nextFloat(fraudRatePresets, m.editing.FraudRate)
	case rowStartLevel:
		m.editing.StartLevel = nextInt(startLevelPresets, m.editing.StartLevel)
	case rowAdvance:
		m.editing.AutoAdvanceSeconds = nextInt(advancePresets, m.editing.AutoAdvanceSeconds)
	}
}

func nextFloat(presets []float64, cur float64) float64 {
	for i, v := range presets {
		if v == cur {
			return presets[(i+1)%len(presets)]
		}
	}
	return presets[0]
}

func nextInt(presets []int, cur int) int {
	for i, v := range presets {
		if v == cur {
			return presets[(i+1)%len(presets)]
		}
	}
	return presets[0]
}

func (m settingsModel) View() string {
	var b strings.Builder

	rows := []struct {
		label string
		value string
	}{
		{"fraud rate", fraudRateLabel(m.editing.FraudRate)},
		{"starting level", fmt.Sprintf("%d", m.editing.StartLevel)},
		{"next customer delay", fmt.Sprintf("%ds", m.editing.AutoAdvanceSeconds)},
	}

	b.WriteString("\n")
	for i, row := range rows {
		line := fmt.Sprintf("%-20s %s", row.label, row.value)
		if settingsRow(i) == m.cursor {
			b.WriteString(zstyle.Highlight.Render("  > "+line) + "\n")
		} else {
			b.WriteString("    " + line + "\n")
		}
	}

	if m.flash != "" {
		b.WriteString("\n  " + zstyle.StatusOK.Render(m.flash) + "\n")
	}

	return b.String()
}

func fraudRateLabel(rate float64) string {
	if rate == 0 {
		return "off (every customer legitimate)"
	}
	return fmt.Sprintf("%.0f%%", rate*100)
}
