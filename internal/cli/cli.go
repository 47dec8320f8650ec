// Package cli implements teller's command-line subcommands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstore"
	"github.com/zarlcorp/teller/internal/customer"
	"github.com/zarlcorp/teller/internal/leaderboard"
)

// DataDir returns the default data directory for teller.
func DataDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return d + "/teller"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".teller"
	}
	return home + "/.local/share/teller"
}

// OpenBoard opens the score store in dir and returns it with a board.
func OpenBoard(dir string) (*zstore.Store, *leaderboard.Board, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}

	fsys := zfilesystem.NewOSFileSystem(dir)
	s, err := leaderboard.OpenStore(fsys)
	if err != nil {
		return nil, nil, err
	}

	b, err := leaderboard.New(s)
	if err != nil {
		s.Close()
		return nil, nil, err
	}

	return s, b, nil
}

// CmdCustomer generates and prints a sample customer.
func CmdCustomer(args []string) {
	asJSON := hasFlag(args, "--json")
	level := intFlag(args, "--level", 1)

	g := customer.New(customer.DefaultConfig())
	c := g.Customer(level)

	if asJSON {
		printJSON(c)
		return
	}
	printCustomer(c)
}

// CmdScores prints the leaderboard.
func CmdScores(args []string) {
	asJSON := hasFlag(args, "--json")

	s, b, err := OpenBoard(DataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "teller: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	top, err := b.Top(leaderboard.Keep)
	if err != nil {
		fmt.Fprintf(os.Stderr, "teller: scores: %v\n", err)
		os.Exit(1)
	}

	if len(top) == 0 {
		fmt.Println("no scores yet")
		return
	}

	if asJSON {
		printJSON(top)
		return
	}

	for i, e := range top {
		fmt.Printf("  %2d. %-20s %6d  %s\n", i+1, e.Name, e.Score, e.Date.Format("2006-01-02"))
	}
}

// CmdReset clears the leaderboard.
func CmdReset() {
	s, b, err := OpenBoard(DataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "teller: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	if err := b.Reset(); err != nil {
		fmt.Fprintf(os.Stderr, "teller: reset: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("leaderboard cleared")
}

func printCustomer(c customer.Customer) {
	tx := c.Transaction
	fmt.Printf("  id:          %s\n", c.ID)
	fmt.Printf("  name:        %s\n", c.Name)
	fmt.Printf("  request:     %s $%d\n", tx.Kind, tx.Amount)
	fmt.Printf("  account:     %s\n", tx.AccountNumber)
	if tx.Kind == customer.WireTransfer {
		fmt.Printf("  recipient:   %s (%s)\n", tx.RecipientName, tx.TargetAccount)
	}
	fmt.Printf("  fraudulent:  %v\n", c.Fraudulent)
	for _, d := range c.Documents {
		status := "ok"
		if !d.Valid {
			status = d.Fault
		}
		fmt.Printf("  doc %-10s %s\n", string(d.Type)+":", status)
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "teller: encode json: %v\n", err)
		os.Exit(1)
	}
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if strings.EqualFold(a, flag) {
			return true
		}
	}
	return false
}

func intFlag(args []string, flag string, def int) int {
	for i, a := range args {
		if !strings.EqualFold(a, flag) || i+1 >= len(args) {
			continue
		}
		if n, err := strconv.Atoi(args[i+1]); err == nil && n > 0 {
			return n
		}
	}
	return def
}
