package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/teller/internal/customer"
	"github.com/zarlcorp/teller/internal/game"
)

const transcriptKeep = 100

var helpText = []string{
	"DEPOSIT $N    accept a cash deposit",
	"WITHDRAW $N   pay out a withdrawal (lookup required)",
	"LOOKUP        pull the account record",
	"COMPARE       compare signatures",
	"APPROVE       approve the request (lookup required)",
	"REJECT        refuse service",
	"NEXT          send the customer away",
	"DOCS          inspect the documents",
	"PUNCH OUT     end the shift",
}

// counterModel is the teller window: a command line plus a transcript of
// everything said across the glass.
type counterModel struct {
	session    *game.Session
	input      textinput.Model
	transcript []string
	flash      string
	delay      time.Duration
}

func newCounterModel(s *game.Session, advanceSeconds int) counterModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "HELP for commands"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 50

	return counterModel{
		session: s,
		input:   ti,
		delay:   time.Duration(advanceSeconds) * time.Second,
	}
}

func (m counterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m counterModel) Update(msg tea.Msg) (counterModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		if msg.Type == tea.KeyTab {
			return m, navigateTo(viewDocuments)
		}

		if msg.Type == tea.KeyEnter {
			return m.handleSubmit()
		}

	case flashClearMsg:
		m.flash = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m counterModel) handleSubmit() (counterModel, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if line == "" {
		return m, nil
	}

	m.append([]string{"> " + strings.ToUpper(line)})

	// window-side commands that never reach the judge
	switch strings.ToUpper(line) {
	case "DOCS":
		return m, navigateTo(viewDocuments)
	case "HELP":
		m.append(helpText)
		return m, nil
	}

	a, err := game.ParseCommand(line)
	if err != nil {
		m.append([]string{"?? " + err.Error()})
		return m, nil
	}

	out := m.session.Apply(a)
	m.append(out.Lines)
	return m, m.afterOutcome(out)
}

// afterOutcome schedules the follow-up to a judged action. Terminal
// outcomes end the shift; a resolved customer queues the next one after
// the window delay.
func (m counterModel) afterOutcome(out game.Outcome) tea.Cmd {
	if out.Terminal {
		return func() tea.Msg { return shiftEndedMsg{} }
	}
	if out.CustomerResolved {
		return advanceAfter(m.delay, m.session.Epoch)
	}
	return nil
}

func (m *counterModel) append(lines []string) {
	m.transcript = append(m.transcript, lines...)
	if len(m.transcript) > transcriptKeep {
		m.transcript = m.transcript[len(m.transcript)-transcriptKeep:]
	}
}

func (m counterModel) View() string {
	s := m.session
	var b strings.Builder

	status := fmt.Sprintf("teller %s   level %d   score %d   served %d",
		strings.ToUpper(s.Teller), s.Level, s.Score.Score, s.Served)
	b.WriteString("  " + zstyle.Subtitle.Render(status) + "\n\n")

	if c := s.Customer; c != nil {
		b.WriteString("  " + zstyle.Highlight.Render(strings.ToUpper(c.Name)) + "  ")
		b.WriteString(zstyle.MutedText.Render(requestLine(c.Transaction)) + "\n")
		b.WriteString("  " + patienceBar(c.Patience, c.MaxPatience) + "\n")
		if s.Verification.AccountLookedUp {
			b.WriteString("  " + zstyle.MutedText.Render(
				fmt.Sprintf("on file: account %s, balance $%d", c.Transaction.AccountNumber, s.Verification.Balance)) + "\n")
		}
		b.WriteString("\n")
	} else {
		b.WriteString("  " + zstyle.MutedText.Render("the window is empty.") + "\n\n")
	}

	for _, line := range tail(m.transcript, 12) {
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("\n  " + m.input.View() + "\n")

	if m.flash != "" {
		b.WriteString("\n  " + zstyle.StatusWarn.Render(m.flash) + "\n")
	}

	return b.String()
}

func requestLine(tx customer.Transaction) string {
	switch tx.Kind {
	case customer.Deposit:
		return fmt.Sprintf("deposit $%d", tx.Amount)
	case customer.Withdrawal:
		return fmt.Sprintf("withdraw $%d", tx.Amount)
	case customer.WireTransfer:
		return fmt.Sprintf("wire $%d to %s", tx.Amount, tx.RecipientName)
	}
	return ""
}

func patienceBar(patience, total int) string {
	if total <= 0 {
		return ""
	}
	if patience < 0 {
		patience = 0
	}
	filled := patience
	if filled > total {
		filled = total
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", total-filled)
	if patience <= total/4 {
		return zstyle.StatusErr.Render(bar)
	}
	return zstyle.MutedText.Render(bar)
}

func tail(lines []string, n int) []string {
	if len(lines) <= n {
		return lines
	}
	return lines[len(lines)-n:]
}
