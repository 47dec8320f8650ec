package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/teller/internal/customer"
)

var docLabels = map[customer.DocumentType]string{
	customer.DocID:        "ID card",
	customer.DocSlip:      "transaction slip",
	customer.DocPassbook:  "bank book",
	customer.DocSignature: "signature card",
}

// documentsModel shows the four documents under the glass. It renders the
// documents as presented; whether they hold up is the teller's call.
type documentsModel struct {
	cust   *customer.Customer
	cursor int
}

func newDocumentsModel(c *customer.Customer) documentsModel {
	return documentsModel{cust: c}
}

func (m documentsModel) Init() tea.Cmd {
	return nil
}

func (m documentsModel) Update(msg tea.Msg) (documentsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		if msg.Type == tea.KeyEsc || msg.Type == tea.KeyTab {
			return m, navigateTo(viewCounter)
		}

		if key.Matches(msg, zstyle.KeyUp) {
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyDown) {
			if m.cursor < len(m.cust.Documents)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	return m, nil
}

func (m documentsModel) View() string {
	var b strings.Builder

	b.WriteString("  " + zstyle.Subtitle.Render("presented by "+strings.ToUpper(m.cust.Name)) + "\n\n")

	for i, doc := range m.cust.Documents {
		label := docLabels[doc.Type]
		if i == m.cursor {
			b.WriteString(zstyle.Highlight.Render(fmt.Sprintf("  > %s", label)) + "\n")
			for _, line := range docFields(doc) {
				b.WriteString("      " + line + "\n")
			}
		} else {
			b.WriteString(fmt.Sprintf("    %s\n", label))
		}
	}

	return b.String()
}

// docFields renders one document's face. Faults are never shown: spotting
// them is the game.
func docFields(doc customer.Document) []string {
	switch doc.Type {
	case customer.DocID:
		return []string{
			"name:       " + doc.ID.Name,
			"account:    " + doc.ID.AccountNumber,
			"born:       " + doc.ID.BirthDate,
		}

	case customer.DocSlip:
		fields := []string{
			"request:    " + string(doc.Slip.Kind),
			fmt.Sprintf("amount:     $%d", doc.Slip.Amount),
			"account:    " + doc.Slip.AccountNumber,
		}
		if doc.Slip.Kind == customer.WireTransfer {
			fields = append(fields,
				"to account: "+doc.Slip.TargetAccount,
				"recipient:  "+doc.Slip.RecipientName,
			)
		}
		return fields

	case customer.DocPassbook:
		return []string{
			"name:       " + doc.Passbook.Name,
			"account:    " + doc.Passbook.AccountNumber,
			fmt.Sprintf("balance:    $%d", doc.Passbook.Balance),
		}

	case customer.DocSignature:
		return []string{
			"signed:     " + doc.Signature.Name,
			"(use COMPARE at the window to check it against the card on file)",
		}
	}

	return nil
}
