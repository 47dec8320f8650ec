// Package tui implements the root Bubble Tea model for teller.
package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstore"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/teller/internal/customer"
	"github.com/zarlcorp/teller/internal/game"
	"github.com/zarlcorp/teller/internal/leaderboard"
)

// accent is the amber of a well-worn bank terminal.
var accent = lipgloss.Color("214")

type viewID int

const (
	viewMenu viewID = iota
	viewPunchIn
	viewCounter
	viewDocuments
	viewArrest
	viewGameOver
	viewBoard
	viewSettings
)

// Model is the root TUI model.
type Model struct {
	version string
	dataDir string

	store    *zstore.Store
	board    *leaderboard.Board
	configs  *zstore.Collection[configEnvelope]
	settings GameSettings

	session  *game.Session
	recorded bool

	active     viewID
	menu       menuModel
	punchIn    punchInModel
	counter    counterModel
	documents  documentsModel
	arrest     arrestModel
	gameOver   gameOverModel
	scoresView boardModel
	settingsUI settingsModel

	// terminal dimensions
	width  int
	height int
}

// New opens the data store and creates the root model.
func New(version, dataDir string) (Model, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return Model{}, fmt.Errorf("create data dir: %w", err)
	}

	fsys := zfilesystem.NewOSFileSystem(dataDir)
	s, err := leaderboard.OpenStore(fsys)
	if err != nil {
		return Model{}, err
	}

	b, err := leaderboard.New(s)
	if err != nil {
		s.Close()
		return Model{}, err
	}

	cfgCol, err := zstore.NewCollection[configEnvelope](s, "config")
	if err != nil {
		s.Close()
		return Model{}, err
	}

	settings := defaultSettings()
	if loaded, ok := loadConfig[GameSettings](cfgCol, "game"); ok {
		settings = loaded.normalized()
	}

	return Model{
		version:  version,
		dataDir:  dataDir,
		store:    s,
		board:    b,
		configs:  cfgCol,
		settings: settings,
		active:   viewMenu,
		menu:     newMenuModel(version),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case navigateMsg:
		return m.navigate(msg.view)

	case punchInMsg:
		return m.startShift(msg.name)

	case advanceMsg:
		return m.handleAdvance(msg)

	case patienceMsg:
		return m.handlePatience(msg)

	case shiftEndedMsg:
		return m.handleShiftEnd()

	case arrestDoneMsg:
		if m.session != nil {
			m.session.FinishArrest()
		}
		return m.openBoard()

	case saveSettingsMsg:
		return m.handleSaveSettings(msg.settings)
	}

	return m.updateActive(msg)
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewPunchIn:
		m.punchIn, cmd = m.punchIn.Update(msg)
	case viewCounter:
		m.counter, cmd = m.counter.Update(msg)
	case viewDocuments:
		m.documents, cmd = m.documents.Update(msg)
	case viewArrest:
		m.arrest, cmd = m.arrest.Update(msg)
	case viewGameOver:
		m.gameOver, cmd = m.gameOver.Update(msg)
	case viewBoard:
		m.scoresView, cmd = m.scoresView.Update(msg)
	case viewSettings:
		m.settingsUI, cmd = m.settingsUI.Update(msg)
	}

	return m, cmd
}

func (m Model) navigate(view viewID) (tea.Model, tea.Cmd) {
	switch view {
	case viewMenu:
		// leaving a finished shift discards the session
		m.session = nil
		m.recorded = false
		m.menu = newMenuModel(m.version)
		m.active = viewMenu
		return m, tea.ClearScreen

	case viewPunchIn:
		m.punchIn = newPunchInModel()
		m.active = viewPunchIn
		return m, tea.Batch(m.punchIn.Init(), tea.ClearScreen)

	case viewCounter:
		m.active = viewCounter
		return m, tea.ClearScreen

	case viewDocuments:
		if m.session == nil || m.session.Customer == nil {
			m.counter.flash = "no documents on the counter"
			return m, clearFlashAfter()
		}
		m.documents = newDocumentsModel(m.session.Customer)
		m.active = viewDocuments
		return m, tea.ClearScreen

	case viewBoard:
		return m.openBoard()

	case viewSettings:
		m.settingsUI = newSettingsModel(m.settings)
		m.active = viewSettings
		return m, tea.ClearScreen
	}

	return m, nil
}

// startShift creates a fresh session and walks it to the counter.
func (m Model) startShift(name string) (tea.Model, tea.Cmd) {
	gen := customer.New(customer.Config{FraudRate: m.settings.FraudRate})
	m.session = game.NewSession(name, gen, m.settings.StartLevel)
	m.recorded = false

	out := m.session.PunchIn()
	m.counter = newCounterModel(m.session, m.settings.AutoAdvanceSeconds)
	m.counter.append(out.Lines)
	m.active = viewCounter

	return m, tea.Batch(
		tea.ClearScreen,
		m.counter.Init(),
		patienceTick(m.session.Epoch),
	)
}

// handleAdvance calls the next customer. Stale epochs are dropped: the
// session has already moved past the state this timer was scheduled in.
func (m Model) handleAdvance(msg advanceMsg) (tea.Model, tea.Cmd) {
	s := m.session
	if s == nil || s.Phase != game.PhaseWorking || msg.epoch != s.Epoch {
		return m, nil
	}

	m.counter.append(s.NextCustomer())
	return m, patienceTick(s.Epoch)
}

// handlePatience decays the waiting customer's patience; at zero the
// customer leaves unserved, which counts as a dismissal.
func (m Model) handlePatience(msg patienceMsg) (tea.Model, tea.Cmd) {
	s := m.session
	if s == nil || s.Phase != game.PhaseWorking || msg.epoch != s.Epoch || s.Customer == nil {
		return m, nil
	}

	s.Customer.Patience--
	if s.Customer.Patience > 0 {
		return m, patienceTick(s.Epoch)
	}

	m.counter.append([]string{fmt.Sprintf("%s gives up waiting.", s.Customer.Name)})
	out := s.Apply(game.Action{Kind: game.ActDismiss})
	m.counter.append(out.Lines)
	return m, m.counter.afterOutcome(out)
}

// handleShiftEnd routes a terminal outcome to its view.
func (m Model) handleShiftEnd() (tea.Model, tea.Cmd) {
	s := m.session
	if s == nil {
		return m, nil
	}

	switch s.Phase {
	case game.PhaseArrest:
		m.arrest = newArrestModel(game.ArrestScript(), s.Epoch)
		m.active = viewArrest
		return m, tea.Batch(tea.ClearScreen, m.arrest.Init())

	case game.PhaseGameOver:
		m.gameOver = newGameOverModel(s.Summary())
		m.active = viewGameOver
		return m, tea.ClearScreen

	case game.PhaseLeaderboard:
		return m.openBoard()
	}

	return m, nil
}

// openBoard records the finished shift (once) and shows the top ten.
func (m Model) openBoard() (tea.Model, tea.Cmd) {
	var highlight string
	var flash string

	if m.session != nil {
		m.session.FinishGameOver()
		if !m.recorded {
			entry, err := m.board.Record(m.session.Teller, m.session.Score.Score)
			if err != nil {
				flash = "save score: " + err.Error()
			} else {
				highlight = entry.ID
			}
			m.recorded = true
		}
	}

	entries, err := m.board.Top(leaderboard.Keep)
	if err != nil {
		flash = "load scores: " + err.Error()
	}

	m.scoresView = newBoardModel(entries, highlight)
	m.scoresView.flash = flash
	m.active = viewBoard
	return m, tea.ClearScreen
}

func (m Model) handleSaveSettings(s GameSettings) (tea.Model, tea.Cmd) {
	s = s.normalized()
	if err := saveConfig(m.configs, "game", s); err != nil {
		m.settingsUI.flash = "save: " + err.Error()
		return m, clearFlashAfter()
	}

	m.settings = s
	m.settingsUI.current = s
	m.settingsUI.flash = "saved"
	return m, clearFlashAfter()
}

func (m Model) View() string {
	// punch-in and menu include the logo — render directly
	switch m.active {
	case viewMenu:
		return m.menu.View()
	case viewPunchIn:
		return m.punchIn.View()
	}

	// all other views: header + separator + content + footer
	var content string
	switch m.active {
	case viewCounter:
		content = m.counter.View()
	case viewDocuments:
		content = m.documents.View()
	case viewArrest:
		content = m.arrest.View()
	case viewGameOver:
		content = m.gameOver.View()
	case viewBoard:
		content = m.scoresView.View()
	case viewSettings:
		content = m.settingsUI.View()
	}

	header := zstyle.RenderHeader("teller", viewTitle(m.active), accent)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewCounter:
		return "Window 4"
	case viewDocuments:
		return "Documents"
	case viewArrest:
		return "Lobby"
	case viewGameOver:
		return "Shift Report"
	case viewBoard:
		return "Leaderboard"
	case viewSettings:
		return "Settings"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewCounter:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "submit"},
			{Key: "tab", Desc: "documents"},
			{Key: "HELP", Desc: "commands"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	case viewDocuments:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "esc", Desc: "back to counter"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	case viewArrest:
		return []zstyle.HelpPair{
			{Key: "ctrl+c", Desc: "quit"},
		}
	case viewGameOver:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "leaderboard"},
			{Key: "q", Desc: "quit"},
		}
	case viewBoard:
		return []zstyle.HelpPair{
			{Key: "esc", Desc: "menu"},
			{Key: "q", Desc: "quit"},
		}
	case viewSettings:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "space", Desc: "cycle"},
			{Key: "ctrl+s", Desc: "save"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

// Close releases the store. Call after the program exits.
func (m Model) Close() {
	if m.store != nil {
		m.store.Close()
	}
}
