package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/vitae/internal/section"
)

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

func TestAppModel_MouseLabelClick(t *testing.T) {
	t.Parallel()
	m := sized(t, 100, 30, Options{})
	_, spans := m.Nav.layout()
	var exp navSpan
	for _, s := range spans {
		if s.id == section.Experience {
			exp = s
		}
	}
	m, _ = send(t, m, click(exp.x0+1, 0))
	if got, want := m.Page.Offset(), wantTop(t, m, section.Experience); got != want {
		t.Errorf("offset after label click = %d, want %d", got, want)
	}
}

func TestAppModel_MouseMenu(t *testing.T) {
	t.Parallel()
	m := sized(t, 60, 30, Options{})
	_, spans := m.Nav.layout()
	toggle := click(spans[0].x0, 0)

	m, _ = send(t, m, toggle)
	if !m.Nav.Open {
		t.Fatal("clicking the toggle should open the menu")
	}
	m, _ = send(t, m, click(4, navHeight+3))
	if m.Nav.Open {
		t.Error("clicking an entry should close the menu")
	}
	if got, want := m.Page.Offset(), wantTop(t, m, section.Experience); got != want {
		t.Errorf("offset = %d, want %d", got, want)
	}

	m, _ = send(t, m, toggle)
	m, _ = send(t, m, click(4, 25))
	if m.Nav.Open {
		t.Error("clicking outside the menu should dismiss it")
	}
}

func TestAppModel_MouseHeroCue(t *testing.T) {
	t.Parallel()
	m := sized(t, 100, 30, Options{})
	hero, _ := m.Tracker.Region(section.Hero)
	y := navHeight + heroChevronLine(hero)
	m, _ = send(t, m, click(50, y))
	if got, want := m.Page.Offset(), wantTop(t, m, section.About); got != want {
		t.Errorf("offset after cue click = %d, want %d", got, want)
	}
}

func TestAppModel_MouseWheel(t *testing.T) {
	t.Parallel()
	m := sized(t, 100, 30, Options{})
	m, _ = send(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if got := m.Page.Offset(); got != wheelLines {
		t.Errorf("offset after wheel = %d, want %d", got, wheelLines)
	}
}
