package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// wheelLines is the number of lines one mouse-wheel notch scrolls.
const wheelLines = 3

// Page wraps a viewport over the rendered profile and owns its scroll
// position. It is the scroll surface navigation drives.
type Page struct {
	viewport   viewport.Model
	totalLines int
	scroll     scroller
}

// NewPage creates a page with the given dimensions. With smooth set,
// ScrollTo animates at fps frames per second; otherwise it jumps.
func NewPage(width, height int, smooth bool, fps int) *Page {
	vp := viewport.New(width, height)
	vp.SetContent("")
	return &Page{
		viewport: vp,
		scroll:   newScroller(smooth, fps),
	}
}

// SetSize updates the viewport dimensions.
func (p *Page) SetSize(width, height int) {
	p.viewport.Width = width
	p.viewport.Height = height
	p.viewport.SetYOffset(p.viewport.YOffset)
}

// SetContent replaces the page text, keeping the scroll position where the
// new content allows.
func (p *Page) SetContent(content string) {
	off := p.viewport.YOffset
	p.totalLines = strings.Count(content, "\n") + 1
	p.viewport.SetContent(content)
	p.viewport.SetYOffset(off)
}

// Offset returns the index of the first visible line.
func (p *Page) Offset() int {
	return p.viewport.YOffset
}

// Height returns the number of visible lines.
func (p *Page) Height() int {
	return p.viewport.Height
}

// Width returns the viewport width.
func (p *Page) Width() int {
	return p.viewport.Width
}

func (p *Page) maxOffset() int {
	return max(p.totalLines-p.viewport.Height, 0)
}

func (p *Page) setOffset(n int) {
	p.viewport.SetYOffset(min(max(n, 0), p.maxOffset()))
}

// ScrollTo scrolls so that line becomes the top of the viewport, clamped to
// the scrollable range. It supersedes any scroll in flight.
func (p *Page) ScrollTo(line int) {
	target := min(max(line, 0), p.maxOffset())
	p.setOffset(p.scroll.start(p.viewport.YOffset, target))
}

// Scrolling reports whether an animated scroll is in flight.
func (p *Page) Scrolling() bool {
	return p.scroll.running
}

// NextFrame schedules the next animation frame, or returns nil when no
// scroll is running.
func (p *Page) NextFrame() tea.Cmd {
	return p.scroll.frame()
}

// Advance applies one animation frame. It reports false for frames of a
// superseded or finished scroll, which must be ignored. A scroll whose
// target has fallen outside the scrollable range stops where the page
// clamps.
func (p *Page) Advance(seq int) bool {
	next, ok := p.scroll.step(seq, p.viewport.YOffset)
	if !ok {
		return false
	}
	p.setOffset(next)
	if p.viewport.YOffset != next {
		p.scroll.cancel()
	}
	return true
}

// CancelScroll stops any animated scroll, leaving the page where it is.
func (p *Page) CancelScroll() {
	p.scroll.cancel()
}

// ScrollBy moves the page by delta lines. Manual scrolling cancels any
// animation in flight. It reports whether the offset changed.
func (p *Page) ScrollBy(delta int) bool {
	p.CancelScroll()
	before := p.viewport.YOffset
	p.setOffset(before + delta)
	return p.viewport.YOffset != before
}

// Update handles scroll keys and mouse-wheel messages. It reports whether
// the offset changed.
func (p *Page) Update(msg tea.Msg, km KeyMap) bool {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, km.Up):
			return p.ScrollBy(-1)
		case key.Matches(msg, km.Down):
			return p.ScrollBy(1)
		case key.Matches(msg, km.PageUp):
			return p.ScrollBy(-p.viewport.Height)
		case key.Matches(msg, km.PageDown):
			return p.ScrollBy(p.viewport.Height)
		case key.Matches(msg, km.Top):
			return p.ScrollBy(-p.viewport.YOffset)
		case key.Matches(msg, km.Bottom):
			return p.ScrollBy(p.maxOffset() - p.viewport.YOffset)
		}
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return p.ScrollBy(-wheelLines)
		case tea.MouseButtonWheelDown:
			return p.ScrollBy(wheelLines)
		}
	}
	return false
}

// View renders the visible lines.
func (p *Page) View() string {
	return p.viewport.View()
}

// Status returns a short scroll-position hint for the footer.
func (p *Page) Status() string {
	above, below := p.linesAbove(), p.linesBelow()
	switch {
	case above == 0 && below == 0:
		return ""
	case below == 0:
		return "end"
	default:
		return fmt.Sprintf("↓ %d more", below)
	}
}

// linesAbove returns the number of content lines above the viewport.
func (p *Page) linesAbove() int {
	return p.viewport.YOffset
}

// linesBelow returns the number of content lines below the viewport.
func (p *Page) linesBelow() int {
	below := p.totalLines - p.viewport.YOffset - p.viewport.Height
	if below < 0 {
		return 0
	}
	return below
}
