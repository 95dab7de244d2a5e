package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"brackets/internal/scanner"
)

var (
	balancedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	imbalanceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171")).
			Bold(true)
)

// renderStatus is the watch-mode status line printed after each rescan. The
// single-shot trace never includes it.
func renderStatus(c scanner.Counts) string {
	if c.Balanced() {
		return balancedStyle.Render("BALANCED")
	}
	return imbalanceStyle.Render(fmt.Sprintf(
		"UNBALANCED paren=%d brace=%d brack=%d", c.Paren, c.Brace, c.Brack))
}
