// Package tui provides the Bubble Tea profile page driven by the section
// tracker.
package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// Screen selects the terminal features a program enables.
type Screen struct {
	// AltScreen draws into the alternate screen buffer.
	AltScreen bool
	// Mouse reports clicks and wheel motion to the navigation bar and page.
	Mouse bool
}

// NewProgram creates a BubbleTea program for the model.
func NewProgram(m AppModel, screen Screen, opts ...tea.ProgramOption) *Program {
	var allOpts []tea.ProgramOption
	if screen.AltScreen {
		allOpts = append(allOpts, tea.WithAltScreen())
	}
	if screen.Mouse {
		allOpts = append(allOpts, tea.WithMouseCellMotion())
	}
	allOpts = append(allOpts, opts...)

	return tea.NewProgram(m, allOpts...)
}

// Run creates and runs a program for the model, blocking until it exits. The
// model's tracker is detached on return however the program ended.
func Run(m AppModel, screen Screen, opts ...tea.ProgramOption) error {
	defer m.Tracker.Detach()
	if _, err := NewProgram(m, screen, opts...).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// WithOutput returns a program option that directs TUI output to the given writer.
// Useful for testing or redirecting output.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}

// WithInput returns a program option that reads terminal input from r.
func WithInput(r io.Reader) tea.ProgramOption {
	return tea.WithInput(r)
}
