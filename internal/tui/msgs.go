package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	patienceInterval = 4 * time.Second
	arrestInterval   = 1200 * time.Millisecond
	flashDuration    = 3 * time.Second
)

type navigateMsg struct {
	view viewID
}

type punchInMsg struct {
	name string
}

// advanceMsg calls the next customer to the window. The epoch pins the
// message to the session state it was scheduled in.
type advanceMsg struct {
	epoch int
}

type patienceMsg struct {
	epoch int
}

type arrestStepMsg struct {
	epoch int
}

type arrestDoneMsg struct{}

type shiftEndedMsg struct{}

type saveSettingsMsg struct {
	settings GameSettings
}

type flashClearMsg struct{}

func navigateTo(view viewID) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{view: view}
	}
}

func advanceAfter(d time.Duration, epoch int) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg {
			return advanceMsg{epoch: epoch}
		}
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return advanceMsg{epoch: epoch}
	})
}

func patienceTick(epoch int) tea.Cmd {
	return tea.Tick(patienceInterval, func(time.Time) tea.Msg {
		return patienceMsg{epoch: epoch}
	})
}

func arrestTick(epoch int) tea.Cmd {
	return tea.Tick(arrestInterval, func(time.Time) tea.Msg {
		return arrestStepMsg{epoch: epoch}
	})
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashClearMsg{}
	})
}
