package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstore"
	"github.com/zarlcorp/teller/internal/game"
	"github.com/zarlcorp/teller/internal/leaderboard"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	fsys := zfilesystem.NewMemFS()
	s, err := leaderboard.OpenStore(fsys)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	b, err := leaderboard.New(s)
	if err != nil {
		t.Fatalf("new board: %v", err)
	}

	cfg, err := zstore.NewCollection[configEnvelope](s, "config")
	if err != nil {
		t.Fatalf("config collection: %v", err)
	}

	return Model{
		version:  "test",
		store:    s,
		board:    b,
		configs:  cfg,
		settings: defaultSettings(),
		active:   viewMenu,
		menu:     newMenuModel("test"),
	}
}

func apply(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// submit types a command into the counter input and presses enter,
// returning the follow-up command.
func submit(t *testing.T, m *Model, line string) tea.Cmd {
	t.Helper()
	m.counter.input.SetValue(line)
	c, cmd := m.counter.handleSubmit()
	m.counter = c
	return cmd
}

func TestMenuNavigatesToPunchIn(t *testing.T) {
	m := newTestModel(t)

	m = apply(t, m, navigateMsg{view: viewPunchIn})
	if m.active != viewPunchIn {
		t.Fatalf("active = %d, want punch-in", m.active)
	}
	if !strings.Contains(m.View(), "time card") {
		t.Error("punch-in view missing the name prompt")
	}
}

func TestPunchInStartsShift(t *testing.T) {
	m := newTestModel(t)

	m = apply(t, m, punchInMsg{name: "AVA"})
	if m.session == nil {
		t.Fatal("no session after punch-in")
	}
	if m.session.Teller != "AVA" {
		t.Errorf("teller = %q, want AVA", m.session.Teller)
	}
	if m.session.Phase != game.PhaseWorking {
		t.Errorf("phase = %q, want working", m.session.Phase)
	}
	if m.active != viewCounter {
		t.Errorf("active = %d, want counter", m.active)
	}
	if m.session.Customer == nil {
		t.Error("no customer at the window after punch-in")
	}
	if !strings.Contains(m.View(), "NOW SERVING") {
		t.Error("counter view missing the serving announcement")
	}
}

func TestCounterHelpCommand(t *testing.T) {
	m := newTestModel(t)
	m = apply(t, m, punchInMsg{name: "AVA"})

	submit(t, &m, "help")
	if !strings.Contains(m.View(), "PUNCH OUT") {
		t.Error("help output missing from the transcript")
	}
}

func TestCounterUnknownCommand(t *testing.T) {
	m := newTestModel(t)
	m = apply(t, m, punchInMsg{name: "AVA"})

	submit(t, &m, "frobnicate")
	if !strings.Contains(m.View(), "??") {
		t.Error("unknown command not echoed to the transcript")
	}
}

func TestStaleAdvanceDropped(t *testing.T) {
	m := newTestModel(t)
	m = apply(t, m, punchInMsg{name: "AVA"})

	before := m.session.Customer
	m = apply(t, m, advanceMsg{epoch: m.session.Epoch - 1})
	if m.session.Customer != before {
		t.Error("stale advance replaced the customer")
	}
}

func TestAdvanceCallsNextCustomer(t *testing.T) {
	m := newTestModel(t)
	m = apply(t, m, punchInMsg{name: "AVA"})

	epoch := m.session.Epoch
	m = apply(t, m, advanceMsg{epoch: epoch})
	if m.session.Epoch == epoch {
		t.Error("advance did not spawn a customer")
	}
	if m.session.Customer == nil {
		t.Error("no customer after advance")
	}
}

func TestPatienceExhaustionDismisses(t *testing.T) {
	m := newTestModel(t)
	m = apply(t, m, punchInMsg{name: "AVA"})

	m.session.Customer.Patience = 1
	m = apply(t, m, patienceMsg{epoch: m.session.Epoch})

	if m.session.Score.Dismissals != 1 {
		t.Errorf("dismissals = %d, want 1", m.session.Score.Dismissals)
	}
	if !strings.Contains(m.View(), "gives up waiting") {
		t.Error("transcript missing the walk-away line")
	}
}

func TestStalePatienceDropped(t *testing.T) {
	m := newTestModel(t)
	m = apply(t, m, punchInMsg{name: "AVA"})

	m.session.Customer.Patience = 1
	m = apply(t, m, patienceMsg{epoch: m.session.Epoch - 1})

	if m.session.Customer == nil || m.session.Customer.Patience != 1 {
		t.Error("stale patience tick mutated the customer")
	}
}

func TestRobberyRoutesToArrest(t *testing.T) {
	m := newTestModel(t)
	m = apply(t, m, punchInMsg{name: "AVA"})

	cmd := submit(t, &m, "rob")
	if m.session.Phase != game.PhaseArrest {
		t.Fatalf("phase = %q, want arrest", m.session.Phase)
	}
	if cmd == nil {
		t.Fatal("no follow-up command after a terminal outcome")
	}

	m = apply(t, m, cmd())
	if m.active != viewArrest {
		t.Errorf("active = %d, want arrest view", m.active)
	}
}

func TestArrestPlaysThroughToBoard(t *testing.T) {
	m := newTestModel(t)
	m = apply(t, m, punchInMsg{name: "AVA"})

	cmd := submit(t, &m, "rob")
	m = apply(t, m, cmd())

	steps := len(game.ArrestScript())
	for range steps {
		m = apply(t, m, arrestStepMsg{epoch: m.arrest.epoch})
	}
	if m.arrest.shown != steps {
		t.Fatalf("shown = %d, want %d", m.arrest.shown, steps)
	}

	m = apply(t, m, arrestDoneMsg{})
	if m.active != viewBoard {
		t.Errorf("active = %d, want board", m.active)
	}
	if m.session.Phase != game.PhaseLeaderboard {
		t.Errorf("phase = %q, want leaderboard", m.session.Phase)
	}
}

func TestPunchOutRecordsScoreOnce(t *testing.T) {
	m := newTestModel(t)
	m = apply(t, m, punchInMsg{name: "AVA"})

	cmd := submit(t, &m, "punch out")
	m = apply(t, m, cmd())

	if m.active != viewBoard {
		t.Fatalf("active = %d, want board", m.active)
	}
	if !m.recorded {
		t.Fatal("shift not recorded")
	}

	entries, err := m.board.Top(leaderboard.Keep)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Name != "AVA" {
		t.Errorf("entry name = %q, want AVA", entries[0].Name)
	}

	// revisiting the board must not record again
	m = apply(t, m, navigateMsg{view: viewBoard})
	entries, _ = m.board.Top(leaderboard.Keep)
	if len(entries) != 1 {
		t.Errorf("entries = %d after revisit, want 1", len(entries))
	}
}

func TestBackToMenuDiscardsSession(t *testing.T) {
	m := newTestModel(t)
	m = apply(t, m, punchInMsg{name: "AVA"})

	cmd := submit(t, &m, "punch out")
	m = apply(t, m, cmd())
	m = apply(t, m, navigateMsg{view: viewMenu})

	if m.session != nil {
		t.Error("session survived the return to menu")
	}
	if m.recorded {
		t.Error("recorded flag survived the return to menu")
	}
}

func TestSaveSettingsPersists(t *testing.T) {
	m := newTestModel(t)

	want := GameSettings{FraudRate: 0.5, StartLevel: 3, AutoAdvanceSeconds: 1}
	m = apply(t, m, saveSettingsMsg{settings: want})

	if m.settings != want {
		t.Errorf("settings = %+v, want %+v", m.settings, want)
	}

	loaded, ok := loadConfig[GameSettings](m.configs, "game")
	if !ok {
		t.Fatal("settings not persisted")
	}
	if loaded != want {
		t.Errorf("persisted = %+v, want %+v", loaded, want)
	}
}

func TestSettingsCyclePresets(t *testing.T) {
	s := newSettingsModel(defaultSettings())

	s.cursor = rowFraudRate
	s.cycle()
	if s.editing.FraudRate == defaultSettings().FraudRate {
		t.Error("cycle did not change the fraud rate")
	}

	// cycling through every preset comes back around
	for range len(fraudRatePresets) - 1 {
		s.cycle()
	}
	if s.editing.FraudRate != defaultSettings().FraudRate {
		t.Errorf("fraud rate = %v after a full cycle, want %v", s.editing.FraudRate, defaultSettings().FraudRate)
	}
}

func TestDocumentsViewListsAllFour(t *testing.T) {
	m := newTestModel(t)
	m = apply(t, m, punchInMsg{name: "AVA"})

	m = apply(t, m, navigateMsg{view: viewDocuments})
	if m.active != viewDocuments {
		t.Fatalf("active = %d, want documents", m.active)
	}

	view := m.View()
	for _, label := range docLabels {
		if !strings.Contains(view, label) {
			t.Errorf("documents view missing %q", label)
		}
	}
}

func TestDocumentsWithoutCustomer(t *testing.T) {
	m := newTestModel(t)

	m = apply(t, m, navigateMsg{view: viewDocuments})
	if m.active == viewDocuments {
		t.Error("documents view opened with nobody at the window")
	}
}
