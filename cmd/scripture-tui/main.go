package main

import (
	"flag"
	"fmt"
	"os"

	"scripture-tui/internal/scripture"
	"scripture-tui/internal/settings"
	"scripture-tui/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	dataDir := flag.String("data", "", "directory holding the scripture databases")
	flag.Parse()

	cfg, err := settings.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load settings: %v\n", err)
	}
	dir := *dataDir
	if dir == "" {
		dir = cfg.DataDir
	}
	if dir == "" {
		dir = "."
	}

	// A broken corpus keeps the reader alive: the load error is shown in
	// the footer and navigation stays disabled over the empty corpus.
	works, loadErr := scripture.LoadWorks(dir)

	p := tea.NewProgram(
		ui.NewModel(works, loadErr, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
