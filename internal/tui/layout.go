package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Minimum terminal dimensions for usable rendering.
const (
	MinWidth  = 40
	MinHeight = 10
)

// Layout breakpoints for adaptive rendering.
const (
	// CompactWidth triggers the key-only footer.
	CompactWidth = 60
	// NavInlineWidth is the narrowest terminal that shows every navigation
	// label inline. Below it the bar collapses to a toggleable menu.
	NavInlineWidth = 80
	// MaxContentWidth caps the page column on wide terminals.
	MaxContentWidth = 100
	// gridColumnWidth is the minimum width of one card column in the skills
	// and projects grids.
	gridColumnWidth = 36
)

// contentWidth returns the page column width for a terminal width, leaving a
// one-column gutter on each side.
func contentWidth(width int) int {
	w := width - 2
	if w > MaxContentWidth {
		w = MaxContentWidth
	}
	if w < 1 {
		w = 1
	}
	return w
}

// TruncateWithEllipsis truncates s to maxLen runes, appending "..." if truncated.
// If maxLen is less than 4, returns s truncated to maxLen runes without ellipsis.
// Returns s unchanged if it fits within maxLen runes.
// Uses rune-aware counting and slicing to avoid splitting multi-byte UTF-8 characters.
func TruncateWithEllipsis(s string, maxLen int) string {
	runeCount := utf8.RuneCountInString(s)
	if runeCount <= maxLen {
		return s
	}
	if maxLen < 4 {
		if maxLen <= 0 {
			return ""
		}
		return truncateToNRunes(s, maxLen)
	}
	return truncateToNRunes(s, maxLen-3) + "..."
}

// truncateToNRunes returns the first n runes of s as a string.
func truncateToNRunes(s string, n int) string {
	i := 0
	for j := 0; j < n; j++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}

// padToWidth pads a rendered (possibly ANSI-styled) string with spaces to fill
// the given width, then applies a background color across the entire padded row.
// This ensures menu rows cover the page lines beneath them.
func padToWidth(s string, width int, bg lipgloss.Color) string {
	visible := lipgloss.Width(s)
	if visible < width {
		s += strings.Repeat(" ", width-visible)
	}
	return lipgloss.NewStyle().Background(bg).Render(s)
}

// overlayTop replaces the first lines of base with the lines of top.
func overlayTop(base, top string) string {
	if top == "" {
		return base
	}
	baseLines := strings.Split(base, "\n")
	topLines := strings.Split(top, "\n")
	for i, l := range topLines {
		if i >= len(baseLines) {
			break
		}
		baseLines[i] = l
	}
	return strings.Join(baseLines, "\n")
}
