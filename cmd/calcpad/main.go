// cmd/calcpad/main.go
//
// This is the entry point for the calcpad TUI.
// When you run `calcpad` from any directory, this is what executes.

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"calcpad/internal/config"
	"calcpad/internal/tui"
)

func main() {
	// The current working directory is the "project" we're working in.
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitCalcpadDir(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing .calcpad directory: %v\n", err)
		os.Exit(1)
	}

	app, err := tui.NewApp(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error preparing the session: %v\n", err)
		os.Exit(1)
	}

	// tea.NewProgram creates a new bubbletea application.
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(), // Use alternate screen buffer (like vim does)
	)

	// Run blocks until the user quits.
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
