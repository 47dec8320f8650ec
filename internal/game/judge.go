package game

import (
	"fmt"

	"github.com/zarlcorp/teller/internal/customer"
)

// Outcome is the result of one judged action: transcript lines for the
// terminal, a named side-effect event for the presentation layer, and flags
// the caller uses to schedule the next customer or change views.
type Outcome struct {
	Lines []string
	Event string

	// CustomerResolved means the counter is empty and, unless the shift
	// ended, the next customer should be called after the presentation
	// delay.
	CustomerResolved bool

	// Terminal means the session left the working phase.
	Terminal bool
}

// Apply judges one action against the current session state. It is the only
// mutation path during a shift and is fully synchronous.
func (s *Session) Apply(a Action) Outcome {
	if s.Phase != PhaseWorking {
		return Outcome{Lines: []string{"the terminal is locked."}}
	}

	switch a.Kind {
	case ActPunchOut:
		s.terminate(PhaseLeaderboard)
		return Outcome{
			Lines:    []string{"CLOCK PUNCH REGISTERED — shift complete."},
			Event:    "clock",
			Terminal: true,
		}

	case ActRob:
		s.terminate(PhaseArrest)
		return Outcome{
			Lines:    []string{"you reach for the cash drawer.", "the silent alarm is faster."},
			Event:    "alarm",
			Terminal: true,
		}
	}

	if s.Customer == nil {
		return Outcome{Lines: []string{"no customer at the counter. type NEXT to call one."}}
	}

	switch a.Kind {
	case ActLookup:
		return s.applyLookup()
	case ActCompare:
		return s.applyCompare()
	case ActDeposit:
		return s.applyDeposit(a.Amount)
	case ActWithdraw:
		return s.applyWithdraw(a.Amount)
	case ActApprove:
		return s.applyApprove()
	case ActReject:
		return s.applyReject()
	case ActDismiss:
		return s.applyDismiss()
	}

	return Outcome{Lines: []string{"the terminal does not recognize that action."}}
}

// applyLookup always succeeds and never flags fraud on its own.
func (s *Session) applyLookup() Outcome {
	c := s.Customer
	s.Verification.AccountLookedUp = true
	s.Verification.Balance = c.Balance

	return Outcome{
		Lines: []string{
			fmt.Sprintf("ACCOUNT %s", c.Transaction.AccountNumber),
			fmt.Sprintf("  BALANCE: $%d   STATUS: ACTIVE", c.Balance),
		},
		Event: "beep",
	}
}

// applyCompare reports forgery indicators but never decides for the teller.
func (s *Session) applyCompare() Outcome {
	sig := s.Customer.Doc(customer.DocSignature)
	if sig == nil || sig.Signature == nil {
		return Outcome{Lines: []string{"no signature card on the counter."}}
	}
	s.Verification.SignatureCompared = true

	if sig.Valid {
		return Outcome{
			Lines: []string{"SIGNATURE COMPARISON", "  consistent with the specimen card."},
			Event: "beep",
		}
	}

	lines := []string{"SIGNATURE COMPARISON"}
	for _, ind := range sig.Signature.Forgery.Indicators() {
		lines = append(lines, "  - "+ind)
	}
	return Outcome{Lines: lines, Event: "beep"}
}

func (s *Session) applyDeposit(amount int) Outcome {
	tx := s.Customer.Transaction

	if tx.Kind != customer.Deposit {
		return s.incorrect(fmt.Sprintf("processed a deposit but the customer asked for a %s", tx.Kind))
	}
	if amount != tx.Amount {
		return s.incorrect(fmt.Sprintf("deposited $%d against a request for $%d", amount, tx.Amount))
	}

	return s.correct(correctReward, Outcome{
		Lines: []string{fmt.Sprintf("$%d DEPOSITED to account %s.", amount, tx.AccountNumber)},
		Event: "cash",
	})
}

func (s *Session) applyWithdraw(amount int) Outcome {
	tx := s.Customer.Transaction

	if !s.Verification.AccountLookedUp {
		return Outcome{Lines: []string{"account not verified — run LOOKUP first."}}
	}
	if tx.Kind != customer.Withdrawal {
		return s.incorrect(fmt.Sprintf("processed a withdrawal but the customer asked for a %s", tx.Kind))
	}
	if amount != tx.Amount {
		return s.incorrect(fmt.Sprintf("withdrew $%d against a request for $%d", amount, tx.Amount))
	}
	if s.Verification.Balance < amount {
		return s.incorrect(fmt.Sprintf("insufficient funds: withdrawal of $%d against a balance of $%d", amount, s.Verification.Balance))
	}

	return s.correct(correctReward, Outcome{
		Lines: []string{fmt.Sprintf("$%d WITHDRAWN from account %s.", amount, tx.AccountNumber)},
		Event: "cash",
	})
}

func (s *Session) applyApprove() Outcome {
	c := s.Customer

	if !s.Verification.AccountLookedUp {
		return Outcome{Lines: []string{"account not verified — run LOOKUP first."}}
	}

	if c.Fraudulent {
		s.Score.FraudulentApprovals++
		s.Score.ErrorDetails = append(s.Score.ErrorDetails,
			fmt.Sprintf("approved fraudulent %s for %s ($%d)", c.Transaction.Kind, c.Name, c.Transaction.Amount))
		s.resolve()

		if s.Score.FraudulentApprovals >= maxFraudApprovals {
			s.terminate(PhaseArrest)
			return Outcome{
				Lines: []string{
					"transaction approved. the customer leaves quickly.",
					"HEAD OFFICE: second audit failure at your window.",
					"the lobby doors lock.",
				},
				Event:            "alarm",
				CustomerResolved: true,
				Terminal:         true,
			}
		}

		return Outcome{
			Lines: []string{
				"transaction approved. the customer leaves quickly.",
				"HEAD OFFICE MEMO: paperwork from your window failed audit.",
			},
			Event:            "buzzer",
			CustomerResolved: true,
		}
	}

	return s.correct(correctReward, Outcome{
		Lines: []string{fmt.Sprintf("transaction approved — $%d %s processed.", c.Transaction.Amount, c.Transaction.Kind)},
		Event: "cash",
	})
}

func (s *Session) applyReject() Outcome {
	c := s.Customer

	if c.Fraudulent {
		return s.correct(fraudCatchReward, Outcome{
			Lines: []string{
				"customer rejected. the paperwork goes in the fraud tray.",
				fmt.Sprintf("FRAUD AVERTED — +$%d commendation.", fraudCatchReward),
			},
			Event: "stamp",
		})
	}

	name := c.Name
	out := s.incorrect(fmt.Sprintf("rejected %s, a legitimate customer", name))
	// a rejected customer leaves either way
	if !out.Terminal {
		s.resolve()
	}
	out.CustomerResolved = true
	out.Lines = append([]string{fmt.Sprintf("%s storms off.", name)}, out.Lines...)
	return out
}

// applyDismiss implements the strict two-threshold policy: a single warning
// at exactly the 2nd dismissal, termination at exactly the 4th once warned.
func (s *Session) applyDismiss() Outcome {
	name := s.Customer.Name
	s.Score.Dismissals++
	s.resolve()

	lines := []string{fmt.Sprintf("%s is sent away unserved.", name)}

	switch {
	case s.Score.Dismissals == dismissWarnAt && !s.Score.DismissalWarningGiven:
		s.Score.DismissalWarningGiven = true
		return Outcome{
			Lines: append(lines,
				"SUPERVISOR: \"We serve customers here. Consider this a warning.\""),
			Event:            "warning",
			CustomerResolved: true,
		}

	case s.Score.Dismissals == dismissFireAt && s.Score.DismissalWarningGiven:
		s.terminate(PhaseGameOver)
		return Outcome{
			Lines: append(lines,
				"SUPERVISOR: \"You were warned. Hand in your badge.\"",
				"YOU ARE FIRED."),
			Event:            "fired",
			CustomerResolved: true,
			Terminal:         true,
		}
	}

	return Outcome{
		Lines:            lines,
		Event:            "reject",
		CustomerResolved: true,
	}
}

// correct applies the success path shared by every correct decision.
func (s *Session) correct(reward int, out Outcome) Outcome {
	s.Score.Score += reward
	s.Score.CorrectTransactions++
	s.Score.ConsecutiveErrors = 0
	s.Level = s.StartLevel + s.Score.CorrectTransactions/levelUpEvery
	s.resolve()
	out.CustomerResolved = true
	return out
}

// incorrect applies the shared error path and ends the shift on the third
// consecutive error.
func (s *Session) incorrect(detail string) Outcome {
	s.Score.ErrorDetails = append(s.Score.ErrorDetails, detail)
	s.Score.Errors++
	s.Score.ConsecutiveErrors++

	lines := []string{"ERROR: " + detail}

	if s.Score.ConsecutiveErrors >= maxConsecutiveErrors {
		s.terminate(PhaseGameOver)
		return Outcome{
			Lines: append(lines,
				fmt.Sprintf("%d consecutive errors.", maxConsecutiveErrors),
				"SUPERVISOR: \"That's enough for today. For good.\"",
				"YOU ARE FIRED."),
			Event:    "fired",
			Terminal: true,
		}
	}

	return Outcome{Lines: lines, Event: "buzzer"}
}
