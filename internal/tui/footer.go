package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// footerHeight is the footer's line count including its top border.
const footerHeight = 2

// Footer renders context-sensitive keybinding hints, with an optional
// right-aligned status such as the scroll position.
type Footer struct {
	Width    int
	Bindings []key.Binding
	Status   string
}

// View renders the footer as a single line of keybinding hints.
// In compact mode (narrow terminals), shows only key hints without descriptions.
func (f Footer) View() string {
	compact := f.Width < CompactWidth

	var parts []string
	for _, b := range f.Bindings {
		if !b.Enabled() {
			continue
		}
		help := b.Help()
		var part string
		if compact {
			// Compact: key only, no description.
			part = styleFooterKey.Render(help.Key)
		} else {
			part = styleFooterKey.Render(help.Key) + styleFooterSep.Render(":") + styleFooterDesc.Render(help.Desc)
		}
		parts = append(parts, part)
	}
	sep := styleFooterSep.Render("  ")
	if compact {
		sep = styleFooterSep.Render(" ")
	}
	line := strings.Join(parts, sep)

	if f.Status != "" {
		status := styleFooterStatus.Render(f.Status)
		gap := f.Width - lipgloss.Width(line) - lipgloss.Width(status)
		if gap >= 2 {
			line += strings.Repeat(" ", gap) + status
		}
	}
	return styleFooter.Width(f.Width).Render(line)
}
