package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func numberedLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return strings.Join(lines, "\n")
}

func newTestPage(smooth bool, lines int) *Page {
	p := NewPage(80, 10, smooth, 60)
	p.SetContent(numberedLines(lines))
	return p
}

func TestPage_ScrollToInstant(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		line int
		want int
	}{
		{"inside range", 40, 40},
		{"top", 0, 0},
		{"negative clamps", -5, 0},
		{"past end clamps", 1000, 90},
		{"last full page", 90, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := newTestPage(false, 100)
			p.ScrollTo(tt.line)
			if got := p.Offset(); got != tt.want {
				t.Errorf("Offset() after ScrollTo(%d) = %d, want %d", tt.line, got, tt.want)
			}
			if p.Scrolling() {
				t.Error("instant scroll should not animate")
			}
		})
	}
}

func TestPage_ScrollToSmooth(t *testing.T) {
	t.Parallel()
	p := newTestPage(true, 100)
	p.ScrollTo(50)
	if p.Offset() != 0 {
		t.Errorf("smooth scroll moved immediately to %d", p.Offset())
	}
	if !p.Scrolling() || p.NextFrame() == nil {
		t.Fatal("smooth scroll should be running with a frame scheduled")
	}
	for frames := 0; p.Scrolling(); frames++ {
		if frames > 100 {
			t.Fatal("smooth scroll did not converge")
		}
		if !p.Advance(p.scroll.seq) {
			t.Fatal("current frame rejected")
		}
	}
	if got := p.Offset(); got != 50 {
		t.Errorf("smooth scroll ended at %d, want 50", got)
	}
	if p.Advance(p.scroll.seq) {
		t.Error("frames after the scroll finished should be ignored")
	}
}

func TestPage_NewScrollSupersedesOld(t *testing.T) {
	t.Parallel()
	p := newTestPage(true, 100)
	p.ScrollTo(80)
	stale := p.scroll.seq
	p.Advance(stale)
	mid := p.Offset()

	p.ScrollTo(10)
	if p.Advance(stale) {
		t.Error("frame of the superseded scroll should be ignored")
	}
	if p.Offset() != mid {
		t.Errorf("stale frame moved the page to %d", p.Offset())
	}
	for p.Scrolling() {
		p.Advance(p.scroll.seq)
	}
	if got := p.Offset(); got != 10 {
		t.Errorf("ended at %d, want 10", got)
	}
}

func TestPage_ManualScrollCancels(t *testing.T) {
	t.Parallel()
	p := newTestPage(true, 100)
	p.ScrollTo(60)
	seq := p.scroll.seq
	if !p.ScrollBy(1) {
		t.Error("ScrollBy(1) from the top should move the page")
	}
	if p.Scrolling() {
		t.Error("manual scroll should cancel the animation")
	}
	if p.Advance(seq) {
		t.Error("frames of a cancelled scroll should be ignored")
	}
	if p.ScrollBy(-5) != true || p.Offset() != 0 {
		t.Errorf("ScrollBy(-5) = offset %d, want 0", p.Offset())
	}
	if p.ScrollBy(-1) {
		t.Error("ScrollBy past the top should report no change")
	}
}

func TestPage_Update(t *testing.T) {
	t.Parallel()
	km := DefaultKeyMap()
	tests := []struct {
		name  string
		start int
		msg   tea.Msg
		want  int
	}{
		{"down arrow", 0, tea.KeyMsg{Type: tea.KeyDown}, 1},
		{"j", 0, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, 1},
		{"up arrow", 5, tea.KeyMsg{Type: tea.KeyUp}, 4},
		{"page down", 0, tea.KeyMsg{Type: tea.KeyPgDown}, 10},
		{"page up", 25, tea.KeyMsg{Type: tea.KeyPgUp}, 15},
		{"home", 40, tea.KeyMsg{Type: tea.KeyHome}, 0},
		{"end", 0, tea.KeyMsg{Type: tea.KeyEnd}, 90},
		{"G", 0, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}}, 90},
		{"wheel down", 0, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}, wheelLines},
		{"wheel up", 10, tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress}, 10 - wheelLines},
		{"unbound key", 7, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := newTestPage(false, 100)
			p.ScrollTo(tt.start)
			changed := p.Update(tt.msg, km)
			if got := p.Offset(); got != tt.want {
				t.Errorf("Offset() = %d, want %d", got, tt.want)
			}
			if changed != (tt.start != tt.want) {
				t.Errorf("Update reported changed = %v", changed)
			}
		})
	}
}

func TestPage_SetContentKeepsOffset(t *testing.T) {
	t.Parallel()
	p := newTestPage(false, 100)
	p.ScrollTo(30)
	p.SetContent(numberedLines(100))
	if got := p.Offset(); got != 30 {
		t.Errorf("offset after same-size redraw = %d, want 30", got)
	}
	p.SetContent(numberedLines(20))
	if got := p.Offset(); got != 10 {
		t.Errorf("offset after shrinking content = %d, want 10", got)
	}
}

func TestPage_SetSize(t *testing.T) {
	t.Parallel()
	p := newTestPage(false, 100)
	p.SetSize(60, 25)
	if p.Width() != 60 || p.Height() != 25 {
		t.Errorf("size = %dx%d, want 60x25", p.Width(), p.Height())
	}
	p.ScrollTo(1000)
	if got := p.Offset(); got != 75 {
		t.Errorf("max offset after resize = %d, want 75", got)
	}
}

func TestPage_Status(t *testing.T) {
	t.Parallel()
	short := newTestPage(false, 5)
	if got := short.Status(); got != "" {
		t.Errorf("Status() for content that fits = %q, want empty", got)
	}

	p := newTestPage(false, 100)
	if got := p.Status(); got != "↓ 90 more" {
		t.Errorf("Status() at top = %q, want %q", got, "↓ 90 more")
	}
	p.ScrollTo(1000)
	if got := p.Status(); got != "end" {
		t.Errorf("Status() at end = %q, want %q", got, "end")
	}
}

func TestPage_View(t *testing.T) {
	t.Parallel()
	p := newTestPage(false, 100)
	p.ScrollTo(42)
	view := p.View()
	if !strings.HasPrefix(view, "line 42") {
		t.Errorf("view should start at line 42, got %q", strings.SplitN(view, "\n", 2)[0])
	}
	if strings.Contains(view, "line 41\n") || strings.Contains(view, "line 52") {
		t.Errorf("view shows lines outside the viewport:\n%s", view)
	}
}

func TestPage_ScrollStopsWhenTargetOutOfRange(t *testing.T) {
	t.Parallel()
	p := newTestPage(true, 100)
	p.ScrollTo(90)
	p.Advance(p.scroll.seq)

	// Growing the viewport shrinks the scrollable range below the target.
	p.SetSize(80, 60)
	for frames := 0; p.Scrolling(); frames++ {
		if frames > 50 {
			t.Fatalf("scroll still running after %d frames at offset %d", frames, p.Offset())
		}
		p.Advance(p.scroll.seq)
	}
	if got := p.Offset(); got != 40 {
		t.Errorf("Offset() = %d, want the new maximum 40", got)
	}
	if p.NextFrame() != nil {
		t.Error("a stopped scroll should schedule no frame")
	}
}
