// Package game holds the shift state machine and the transaction judge.
// Everything here is synchronous and deterministic: presentation delays and
// timers belong to the caller, which tags them with the session epoch so a
// stale timer can never mutate a session that has moved on.
package game

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zarlcorp/teller/internal/customer"
)

// Phase is the shift state. Judge actions are accepted only while working.
type Phase string

const (
	PhasePunchIn     Phase = "punch_in"
	PhaseWorking     Phase = "working"
	PhaseGameOver    Phase = "game_over"
	PhaseArrest      Phase = "police_arrest"
	PhaseLeaderboard Phase = "leaderboard"
)

// shift-ending thresholds
const (
	maxConsecutiveErrors = 3
	maxFraudApprovals    = 2

	dismissWarnAt = 2 // exactly the 2nd dismissal warns, once
	dismissFireAt = 4 // exactly the 4th, after the warning, fires
)

const (
	correctReward     = 100
	fraudCatchReward  = 200 // correct rejection of a fraudulent customer
	levelUpEvery      = 5   // correct transactions per difficulty level
)

// Score accumulates over one shift. Reset by starting a new session.
type Score struct {
	Score                 int      `json:"score"`
	CorrectTransactions   int      `json:"correct_transactions"`
	Errors                int      `json:"errors"`
	ConsecutiveErrors     int      `json:"consecutive_errors"`
	FraudulentApprovals   int      `json:"fraudulent_approvals"`
	Dismissals            int      `json:"dismissals"`
	DismissalWarningGiven bool     `json:"dismissal_warning_given"`
	ErrorDetails          []string `json:"error_details,omitempty"`
}

// Verification tracks the per-customer checks. Reset whenever a customer is
// spawned or resolved.
type Verification struct {
	AccountLookedUp   bool `json:"account_looked_up"`
	Balance           int  `json:"balance"` // cached by the lookup
	SignatureCompared bool `json:"signature_compared"`
}

// Session is one shift: punch-in to punch-out, firing, or arrest.
type Session struct {
	Teller       string                `json:"teller"`
	Phase        Phase                 `json:"phase"`
	StartLevel   int                   `json:"start_level"`
	Level        int                   `json:"level"`
	Score        Score                 `json:"score"`
	Customer     *customer.Customer    `json:"customer,omitempty"`
	Verification Verification          `json:"verification"`
	Served       int                   `json:"served"`

	// Epoch increments on every spawn, resolution, and phase change.
	// Scheduled callbacks carry the epoch they were created under and must
	// be dropped on mismatch.
	Epoch int `json:"epoch"`

	gen *customer.Generator
}

// NewSession creates a fresh shift in the punch-in phase.
func NewSession(teller string, gen *customer.Generator, startLevel int) *Session {
	if startLevel < 1 {
		startLevel = 1
	}
	return &Session{
		Teller:     teller,
		Phase:      PhasePunchIn,
		StartLevel: startLevel,
		Level:      startLevel,
		gen:        gen,
	}
}

// PunchIn starts the shift and calls the first customer.
func (s *Session) PunchIn() Outcome {
	if s.Phase != PhasePunchIn {
		return Outcome{Lines: []string{"already on shift."}}
	}

	s.Phase = PhaseWorking
	s.Epoch++

	out := Outcome{
		Lines: []string{
			fmt.Sprintf("SHIFT START — TELLER %s", strings.ToUpper(s.Teller)),
		},
		Event: "clock",
	}
	out.Lines = append(out.Lines, s.spawn()...)
	return out
}

// NextCustomer calls the next customer to the counter. The caller invokes
// this after the presentation delay that follows a resolved customer.
func (s *Session) NextCustomer() []string {
	if s.Phase != PhaseWorking {
		return nil
	}
	return s.spawn()
}

func (s *Session) spawn() []string {
	c := s.gen.Customer(s.Level)
	s.Customer = &c
	s.Verification = Verification{}
	s.Epoch++

	tx := c.Transaction
	lines := []string{
		fmt.Sprintf("NOW SERVING: %s", strings.ToUpper(c.Name)),
	}
	switch tx.Kind {
	case customer.Deposit:
		lines = append(lines, fmt.Sprintf("  \"I'd like to deposit $%d into account %s.\"", tx.Amount, tx.AccountNumber))
	case customer.Withdrawal:
		lines = append(lines, fmt.Sprintf("  \"I'd like to withdraw $%d from account %s.\"", tx.Amount, tx.AccountNumber))
	case customer.WireTransfer:
		lines = append(lines, fmt.Sprintf("  \"Please wire $%d from account %s to %s, account %s.\"",
			tx.Amount, tx.AccountNumber, tx.RecipientName, tx.TargetAccount))
	}
	lines = append(lines, "  (four documents slide under the glass)")
	return lines
}

// resolve discards the current customer and resets verification.
func (s *Session) resolve() {
	s.Customer = nil
	s.Verification = Verification{}
	s.Served++
	s.Epoch++
}

// terminate moves the session to a terminal phase.
func (s *Session) terminate(p Phase) {
	s.Phase = p
	s.Customer = nil
	s.Verification = Verification{}
	s.Epoch++
}

// FinishArrest forwards from the arrest sequence to the leaderboard.
func (s *Session) FinishArrest() {
	if s.Phase == PhaseArrest {
		s.terminate(PhaseLeaderboard)
	}
}

// FinishGameOver forwards from the game-over report to the leaderboard.
func (s *Session) FinishGameOver() {
	if s.Phase == PhaseGameOver {
		s.terminate(PhaseLeaderboard)
	}
}

// Snapshot serializes the full session state. The generator is not part of
// the snapshot; Restore reattaches one.
func (s *Session) Snapshot() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("snapshot session: %w", err)
	}
	return data, nil
}

// Restore rebuilds a session from a snapshot, reattaching a generator for
// future spawns.
func Restore(data []byte, gen *customer.Generator) (*Session, error) {
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	s.gen = gen
	return &s, nil
}

// Summary returns the end-of-shift report.
func (s *Session) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "SHIFT REPORT — %s\n", strings.ToUpper(s.Teller))
	fmt.Fprintf(&b, "score: %d\n", s.Score.Score)
	fmt.Fprintf(&b, "correct transactions: %d\n", s.Score.CorrectTransactions)
	fmt.Fprintf(&b, "errors: %d\n", s.Score.Errors)
	if s.Score.FraudulentApprovals > 0 {
		fmt.Fprintf(&b, "fraudulent approvals: %d\n", s.Score.FraudulentApprovals)
	}
	if s.Score.Dismissals > 0 {
		fmt.Fprintf(&b, "customers sent away unserved: %d\n", s.Score.Dismissals)
	}
	for _, d := range s.Score.ErrorDetails {
		fmt.Fprintf(&b, "- %s\n", d)
	}

	return strings.TrimRight(b.String(), "\n")
}
