package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/teller/internal/cli"
	"github.com/zarlcorp/teller/internal/tui"
	"golang.org/x/term"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("teller"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	if len(os.Args) > 1 {
		runCLI(ctx, os.Args[1])
		_ = app.Close()
		return
	}

	if err := runTUI(); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(_ context.Context, cmd string) {
	switch cmd {
	case "version":
		fmt.Printf("teller %s\n", version)
	case "customer":
		cli.CmdCustomer(os.Args[2:])
	case "scores":
		cli.CmdScores(os.Args[2:])
	case "reset":
		cli.CmdReset()
	default:
		fmt.Fprintf(os.Stderr, "teller: unknown command %q\n", cmd)
		os.Exit(1)
	}
}

func runTUI() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("teller needs a terminal; try `teller customer` for scripted use")
	}

	m, err := tui.New(version, cli.DataDir())
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := finalModel.(tui.Model); ok {
		fm.Close()
	}

	return nil
}
