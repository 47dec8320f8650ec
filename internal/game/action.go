package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ActionKind identifies a teller action.
type ActionKind string

const (
	ActDeposit  ActionKind = "deposit"
	ActWithdraw ActionKind = "withdraw"
	ActApprove  ActionKind = "approve"
	ActReject   ActionKind = "reject"
	ActDismiss  ActionKind = "dismiss"
	ActLookup   ActionKind = "lookup"
	ActCompare  ActionKind = "compare"
	ActPunchOut ActionKind = "punch_out"

	// ActRob is the easter egg. It ends the way you'd expect.
	ActRob ActionKind = "rob"
)

// Action is one discrete teller input.
type Action struct {
	Kind   ActionKind `json:"kind"`
	Amount int        `json:"amount,omitempty"` // deposit and withdraw only
}

// ErrUnknownCommand is returned for input that parses to no action.
var ErrUnknownCommand = errors.New("unknown command")

// ParseCommand turns a teller terminal line into an Action. Commands are
// case-insensitive.
func ParseCommand(line string) (Action, error) {
	fields := strings.Fields(strings.ToUpper(strings.TrimSpace(line)))
	if len(fields) == 0 {
		return Action{}, ErrUnknownCommand
	}

	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "DEPOSIT":
		return parseAmount(ActDeposit, args)
	case "WITHDRAW":
		return parseAmount(ActWithdraw, args)
	case "APPROVE":
		return Action{Kind: ActApprove}, nil
	case "REJECT", "DENY":
		return Action{Kind: ActReject}, nil
	case "DISMISS", "NEXT":
		return Action{Kind: ActDismiss}, nil
	case "LOOKUP":
		return Action{Kind: ActLookup}, nil
	case "COMPARE":
		return Action{Kind: ActCompare}, nil
	case "PUNCHOUT":
		return Action{Kind: ActPunchOut}, nil
	case "PUNCH":
		if len(args) == 1 && args[0] == "OUT" {
			return Action{Kind: ActPunchOut}, nil
		}
		return Action{}, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	case "ROB":
		return Action{Kind: ActRob}, nil
	}

	return Action{}, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
}

func parseAmount(kind ActionKind, args []string) (Action, error) {
	if len(args) != 1 {
		return Action{}, fmt.Errorf("usage: %s <amount>", strings.ToUpper(string(kind)))
	}

	raw := strings.TrimPrefix(args[0], "$")
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return Action{}, fmt.Errorf("bad amount %q", args[0])
	}

	return Action{Kind: kind, Amount: n}, nil
}
