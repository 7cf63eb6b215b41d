package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/vitae/internal/content"
	"github.com/papapumpkin/vitae/internal/observe"
	"github.com/papapumpkin/vitae/internal/section"
	"github.com/papapumpkin/vitae/internal/tracelog"
	"github.com/papapumpkin/vitae/internal/tracker"
)

// Options configures the view.
type Options struct {
	// Threshold is the visible fraction at which a section counts as in
	// view. Zero selects observe.DefaultThreshold.
	Threshold    float64
	SmoothScroll bool
	ScrollFPS    int
	Trace        *tracelog.Emitter
	// Start, when set, is navigated to once the first layout is known.
	Start section.ID
}

// AppModel is the root BubbleTea model composing the navigation bar, the
// page, and the footer around a section tracker. Sub-models are pointers so
// the tracker's scroll and menu hooks reach the same instances the model
// renders, across bubbletea's value copies.
type AppModel struct {
	Profile  content.Profile
	Order    section.Order
	Keys     KeyMap
	Nav      *NavBar
	Page     *Page
	Tracker  *tracker.Tracker
	Observer *observe.IntersectionObserver
	Width    int
	Height   int

	start    section.ID
	dest     section.ID // target of the last navigation
	revealed int        // revealed-set size at the last render
}

// NewAppModel creates the root model for a profile. The tracker drives the
// page's scroll and closes the navigation menu.
func NewAppModel(p content.Profile, order section.Order, opts Options) AppModel {
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = observe.DefaultThreshold
	}
	nav := NewNavBar(p.Name, order)
	page := NewPage(NavInlineWidth, MinHeight, opts.SmoothScroll, opts.ScrollFPS)
	tr := tracker.New(order,
		tracker.WithScroller(page),
		tracker.WithMenu(nav),
		tracker.WithTrace(opts.Trace),
	)
	return AppModel{
		Profile:  p,
		Order:    order,
		Keys:     DefaultKeyMap(),
		Nav:      nav,
		Page:     page,
		Tracker:  tr,
		Observer: observe.New(threshold),
		start:    opts.Start,
	}
}

// Init sets the terminal title.
func (m AppModel) Init() tea.Cmd {
	return tea.SetWindowTitle(m.Profile.Name)
}

// Update handles all messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case MsgScrollFrame:
		if !m.Page.Advance(msg.Seq) {
			return m, nil
		}
		m.check()
		cmd := m.Page.NextFrame()
		return m, cmd

	case MsgNavigate:
		cmd := m.navigate(msg.ID)
		return m, cmd
	}
	return m, nil
}

// resize lays the page out for a new terminal size. Section regions depend
// on both dimensions, so they are re-registered with the tracker and a scroll
// in flight is re-aimed at its section's new position.
func (m AppModel) resize(w, h int) (tea.Model, tea.Cmd) {
	m.Width, m.Height = w, h
	m.Nav.SetWidth(w)
	m.Page.SetSize(w, max(h-navHeight-footerHeight, 1))

	regions := m.render()
	m.Tracker.Attach(m.Observer, regions)
	m.check()

	var cmd tea.Cmd
	switch {
	case m.start != "":
		cmd = m.navigate(m.start)
		m.start = ""
	case m.Page.Scrolling() && m.dest != "":
		cmd = m.navigate(m.dest)
	}
	return m, cmd
}

// render redraws the page for the current revealed set.
func (m *AppModel) render() []tracker.Region {
	page, regions := RenderPage(m.Profile, m.Order, m.Tracker.Revealed, m.Page.Width(), m.Page.Height())
	m.Page.SetContent(page)
	m.revealed = len(m.Tracker.RevealedIDs())
	return regions
}

// check asks the observer to evaluate the current viewport. Crossing events
// reach the tracker synchronously; a grown revealed set triggers a redraw.
func (m *AppModel) check() {
	m.Observer.Check(m.Page.Offset(), m.Page.Height())
	if len(m.Tracker.RevealedIDs()) != m.revealed {
		m.render()
	}
	m.Nav.Active = m.Tracker.Active()
}

// navigate sends the tracker to id and schedules the first scroll frame.
func (m *AppModel) navigate(id section.ID) tea.Cmd {
	if m.Tracker.NavigateTo(id) {
		m.dest = id
	}
	m.check()
	return m.Page.NextFrame()
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.Quit) {
		m.Tracker.Detach()
		return m, tea.Quit
	}
	if m.Nav.Open {
		return m.handleMenuKey(msg)
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.Keys.Next):
		cmd = m.navigate(m.Order.Next(m.Tracker.Active()))

	case key.Matches(msg, m.Keys.Prev):
		cmd = m.navigate(m.Order.Prev(m.Tracker.Active()))

	case key.Matches(msg, m.Keys.Jump):
		cmd = m.jump(msg)

	case key.Matches(msg, m.Keys.Menu):
		m.Nav.Toggle()

	case key.Matches(msg, m.Keys.Enter):
		// Enter on the landing section follows its scroll-down cue.
		if m.Tracker.Active() == m.Order.First() {
			cmd = m.navigate(m.Order.Next(m.Order.First()))
		}

	default:
		if m.Page.Update(msg, m.Keys) {
			m.check()
		}
	}
	return m, cmd
}

func (m AppModel) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.Keys.Up):
		m.Nav.MoveCursor(-1)
	case key.Matches(msg, m.Keys.Down):
		m.Nav.MoveCursor(1)
	case key.Matches(msg, m.Keys.Enter):
		cmd = m.navigate(m.Nav.Selected())
	case key.Matches(msg, m.Keys.Jump):
		cmd = m.jump(msg)
	case key.Matches(msg, m.Keys.Close), key.Matches(msg, m.Keys.Menu):
		m.Nav.CloseMenu()
	}
	return m, cmd
}

// jump navigates to the section numbered by a digit key, counting from 1.
func (m *AppModel) jump(msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return nil
	}
	i := int(s[0] - '1')
	if i >= len(m.Order) {
		return nil
	}
	return m.navigate(m.Order[i])
}

func (m AppModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		if m.Page.Update(msg, m.Keys) {
			m.check()
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch hit := m.Nav.HitTest(msg.X, msg.Y); {
	case hit.Kind == HitToggle:
		m.Nav.Toggle()
	case hit.Kind == HitLabel, hit.Kind == HitMenuItem:
		cmd = m.navigate(hit.ID)
	case m.Nav.Open:
		// A click anywhere else dismisses the menu.
		m.Nav.CloseMenu()
	case m.onHeroCue(msg.Y):
		cmd = m.navigate(m.Order.Next(section.Hero))
	}
	return m, cmd
}

// onHeroCue reports whether terminal row y shows the hero's scroll-down cue.
func (m AppModel) onHeroCue(y int) bool {
	if y < navHeight || m.Order.First() != section.Hero {
		return false
	}
	r, ok := m.Tracker.Region(section.Hero)
	return ok && y-navHeight+m.Page.Offset() == heroChevronLine(r)
}

// View renders the navigation bar, the page with any open menu over its top,
// and the footer.
func (m AppModel) View() string {
	if m.Width < MinWidth || m.Height < MinHeight {
		return styleTooSmall.Render(fmt.Sprintf(
			"Terminal too small (%dx%d)\nMinimum: %dx%d", m.Width, m.Height, MinWidth, MinHeight))
	}

	footer := Footer{Width: m.Width, Status: m.Page.Status()}
	if m.Nav.Open {
		footer.Bindings = MenuFooterBindings(MenuKeyMap())
	} else {
		footer.Bindings = PageFooterBindings(m.Keys, m.Nav.Compact())
	}

	body := overlayTop(m.Page.View(), m.Nav.MenuView())
	return lipgloss.JoinVertical(lipgloss.Left, m.Nav.View(), body, footer.View())
}
