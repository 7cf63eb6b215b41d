package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/vitae/internal/section"
)

// navHeight is the bar's line count including its bottom border.
const navHeight = 2

// Toggle captions for the compact menu.
const (
	toggleClosed = "☰ menu"
	toggleOpen   = "✕ close"
)

// HitKind classifies what a mouse click landed on.
type HitKind int

const (
	// HitNone means the click missed every navigation target.
	HitNone HitKind = iota
	// HitLabel is an inline section label.
	HitLabel
	// HitToggle is the compact menu toggle.
	HitToggle
	// HitMenuItem is an entry of the open compact menu.
	HitMenuItem
)

// Hit is the result of hit-testing a click against the navigation bar.
type Hit struct {
	Kind HitKind
	ID   section.ID
}

// NavBar is the sticky navigation header. On wide terminals it lists every
// section inline; on narrow ones it collapses to a toggle that opens a
// vertical menu over the top of the page.
type NavBar struct {
	Name   string
	Order  section.Order
	Width  int
	Active section.ID
	Open   bool
	Cursor int
}

// NewNavBar creates a closed navigation bar highlighting the first section.
func NewNavBar(name string, order section.Order) *NavBar {
	return &NavBar{Name: name, Order: order, Active: order.First()}
}

// Compact reports whether the bar is collapsed to the menu toggle.
func (n *NavBar) Compact() bool {
	return n.Width < NavInlineWidth
}

// SetWidth resizes the bar. Growing to the inline layout closes the menu.
func (n *NavBar) SetWidth(w int) {
	n.Width = w
	if !n.Compact() {
		n.Open = false
	}
}

// CloseMenu closes the compact menu. It is safe to call in either layout.
func (n *NavBar) CloseMenu() {
	n.Open = false
}

// Toggle opens or closes the compact menu. Opening places the cursor on the
// active section. In the inline layout there is no menu and Toggle is a no-op.
func (n *NavBar) Toggle() {
	if !n.Compact() {
		n.Open = false
		return
	}
	n.Open = !n.Open
	if n.Open {
		n.Cursor = max(0, n.Order.Index(n.Active))
	}
}

// MoveCursor moves the menu cursor by delta, clamped to the entries.
func (n *NavBar) MoveCursor(delta int) {
	if len(n.Order) == 0 {
		n.Cursor = 0
		return
	}
	n.Cursor = min(max(n.Cursor+delta, 0), len(n.Order)-1)
}

// Selected returns the section under the menu cursor.
func (n *NavBar) Selected() section.ID {
	if n.Cursor < 0 || n.Cursor >= len(n.Order) {
		return ""
	}
	return n.Order[n.Cursor]
}

type navSpan struct {
	id     section.ID
	text   string
	x0, x1 int // columns [x0, x1)
	toggle bool
}

// layout places the name and the clickable spans on the header line. View
// and HitTest share it so clicks land where labels are drawn.
func (n *NavBar) layout() (string, []navSpan) {
	var spans []navSpan
	if n.Compact() {
		caption := toggleClosed
		if n.Open {
			caption = toggleOpen
		}
		w := lipgloss.Width(caption)
		x0 := n.Width - 1 - w
		spans = append(spans, navSpan{text: caption, x0: x0, x1: x0 + w, toggle: true})
	} else {
		total := 0
		for i, id := range n.Order {
			if i > 0 {
				total += 2
			}
			total += lipgloss.Width(n.Order.Label(id))
		}
		x := n.Width - 1 - total
		for _, id := range n.Order {
			label := n.Order.Label(id)
			w := lipgloss.Width(label)
			spans = append(spans, navSpan{id: id, text: label, x0: x, x1: x + w})
			x += w + 2
		}
	}

	nameMax := 0
	if len(spans) > 0 {
		nameMax = spans[0].x0 - 3
	}
	return TruncateWithEllipsis(n.Name, nameMax), spans
}

// View renders the header line and its bottom border.
func (n *NavBar) View() string {
	name, spans := n.layout()

	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(fullPalette().gradient(name, colorBlue, colorPurple))
	col := 1 + lipgloss.Width(name)
	for _, s := range spans {
		if s.x0 > col {
			b.WriteString(strings.Repeat(" ", s.x0-col))
		}
		switch {
		case s.toggle:
			b.WriteString(styleNavToggle.Render(s.text))
		case s.id == n.Active:
			b.WriteString(styleNavActive.Render(s.text))
		default:
			b.WriteString(styleNavItem.Render(s.text))
		}
		col = s.x1
	}
	return styleNav.Width(n.Width).Render(b.String())
}

// MenuView renders the open compact menu, one entry per line, or "" when the
// menu is closed.
func (n *NavBar) MenuView() string {
	if !n.Open || !n.Compact() {
		return ""
	}
	lines := make([]string, 0, len(n.Order)+1)
	for i, id := range n.Order {
		label := n.Order.Label(id)
		var row string
		switch {
		case i == n.Cursor:
			row = styleMenuCursor.Render(" ▸ " + label)
		case id == n.Active:
			row = styleNavActive.Render("   " + label)
		default:
			row = styleMenu.Render("   " + label)
		}
		lines = append(lines, padToWidth(row, n.Width, colorSurfaceDim))
	}
	lines = append(lines, styleFooterSep.Render(strings.Repeat("─", max(n.Width, 0))))
	return strings.Join(lines, "\n")
}

// HitTest maps a click at terminal cell (x, y) to a navigation target. Row 0
// is the header line; menu entries start below the bar.
func (n *NavBar) HitTest(x, y int) Hit {
	if y == 0 {
		_, spans := n.layout()
		for _, s := range spans {
			if x >= s.x0 && x < s.x1 {
				if s.toggle {
					return Hit{Kind: HitToggle}
				}
				return Hit{Kind: HitLabel, ID: s.id}
			}
		}
		return Hit{}
	}
	if n.Open && n.Compact() {
		row := y - navHeight
		if row >= 0 && row < len(n.Order) {
			return Hit{Kind: HitMenuItem, ID: n.Order[row]}
		}
	}
	return Hit{}
}
