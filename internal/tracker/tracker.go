// Package tracker derives the active section and the revealed-section set
// from viewport intersection events, and dispatches programmatic navigation.
//
// The tracker owns its state explicitly. Intersection events arrive through
// OnIntersectionChange and are folded in with the pure Reduce function;
// navigation goes through NavigateTo. The intersection facility, the scroll
// surface and the navigation menu are injected as small interfaces so the
// whole contract can be exercised without a real viewport.
package tracker

import (
	"github.com/papapumpkin/vitae/internal/section"
	"github.com/papapumpkin/vitae/internal/tracelog"
)

// Observer is the platform intersection facility. Observe starts delivering
// threshold-crossing events for regions to fn; Disconnect stops delivery and
// releases the targets.
type Observer interface {
	Observe(regions []Region, fn func([]Event)) error
	Disconnect()
}

// Scroller performs a (possibly animated) scroll so that the given page line
// becomes the top of the viewport.
type Scroller interface {
	ScrollTo(line int)
}

// MenuCloser closes the compact navigation menu.
type MenuCloser interface {
	CloseMenu()
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithScroller sets the scroll surface used by NavigateTo.
func WithScroller(s Scroller) Option {
	return func(t *Tracker) { t.scroller = s }
}

// WithMenu sets the menu that NavigateTo closes.
func WithMenu(m MenuCloser) Option {
	return func(t *Tracker) { t.menu = m }
}

// WithTrace records tracker transitions to the given emitter.
func WithTrace(e *tracelog.Emitter) Option {
	return func(t *Tracker) { t.trace = e }
}

// Tracker holds the active section and revealed set for one mounted view.
// It is not safe for concurrent use; every method is expected to run on the
// UI event loop.
type Tracker struct {
	order    section.Order
	state    State
	regions  map[section.ID]Region
	obs      Observer
	degraded bool

	scroller Scroller
	menu     MenuCloser
	trace    *tracelog.Emitter
}

// New creates a tracker over order in its initial state.
func New(order section.Order, opts ...Option) *Tracker {
	t := &Tracker{
		order:   order,
		state:   Initial(order),
		regions: make(map[section.ID]Region),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Order returns the section order the tracker was created with.
func (t *Tracker) Order() section.Order {
	return t.order
}

// Attach registers regions and starts observing them with obs, replacing any
// prior observation. A nil obs, or one that refuses to observe, leaves the
// tracker degraded: every registered section is revealed (the whole order
// when regions is empty) and the active section keeps its current value.
func (t *Tracker) Attach(obs Observer, regions []Region) {
	t.release()

	t.regions = make(map[section.ID]Region, len(regions))
	for _, r := range regions {
		if t.order.Contains(r.ID) {
			t.regions[r.ID] = r
		}
	}

	if obs == nil {
		t.degrade("no observer")
		return
	}
	if err := obs.Observe(regions, t.OnIntersectionChange); err != nil {
		t.degrade(err.Error())
		return
	}
	t.obs = obs
	t.degraded = false
	_ = t.trace.Record(tracelog.KindAttach, "", map[string]int{"regions": len(t.regions)})
}

// Detach stops observation. It releases the observer exactly once no matter
// how many times Attach ran; further calls are no-ops. Registered regions
// are kept so a detached tracker can still answer Region.
func (t *Tracker) Detach() {
	if t.release() {
		_ = t.trace.Record(tracelog.KindDetach, "", nil)
	}
}

func (t *Tracker) release() bool {
	if t.obs == nil {
		return false
	}
	t.obs.Disconnect()
	t.obs = nil
	return true
}

func (t *Tracker) degrade(reason string) {
	t.degraded = true
	if len(t.regions) == 0 {
		t.state = RevealAll(t.order, t.state)
	} else {
		ids := make([]section.ID, 0, len(t.regions))
		for _, id := range t.order {
			if _, ok := t.regions[id]; ok {
				ids = append(ids, id)
			}
		}
		t.state = Reveal(t.order, t.state, ids...)
	}
	_ = t.trace.Record(tracelog.KindDegraded, "", map[string]string{"reason": reason})
}

// OnIntersectionChange folds a batch of intersection events into the state.
// It is the callback handed to the Observer.
func (t *Tracker) OnIntersectionChange(events []Event) {
	prev := t.state
	t.state = Reduce(t.order, prev, events)

	if t.trace == nil {
		return
	}
	for _, id := range t.state.Revealed.IDs(t.order) {
		if !prev.Revealed.Has(id) {
			_ = t.trace.Record(tracelog.KindReveal, string(id), nil)
		}
	}
	if t.state.Active != prev.Active {
		_ = t.trace.Record(tracelog.KindActive, string(t.state.Active), map[string]string{"from": string(prev.Active)})
	}
}

// NavigateTo closes the menu and requests a scroll to the region registered
// for id. It reports whether a scroll was issued; an unknown or unregistered
// id is a silent no-op apart from closing the menu.
func (t *Tracker) NavigateTo(id section.ID) bool {
	if t.menu != nil {
		t.menu.CloseMenu()
	}
	r, ok := t.regions[id]
	if !ok || t.scroller == nil {
		return false
	}
	t.scroller.ScrollTo(r.Top)
	_ = t.trace.Record(tracelog.KindNavigate, string(id), map[string]int{"line": r.Top})
	return true
}

// Active returns the active section.
func (t *Tracker) Active() section.ID {
	return t.state.Active
}

// Revealed reports whether id has ever been observed intersecting.
func (t *Tracker) Revealed(id section.ID) bool {
	return t.state.Revealed.Has(id)
}

// RevealedIDs returns the revealed sections in page order.
func (t *Tracker) RevealedIDs() []section.ID {
	return t.state.Revealed.IDs(t.order)
}

// State returns a copy of the current state.
func (t *Tracker) State() State {
	return State{Active: t.state.Active, Revealed: t.state.Revealed.clone()}
}

// Region returns the registered region for id.
func (t *Tracker) Region(id section.ID) (Region, bool) {
	r, ok := t.regions[id]
	return r, ok
}

// Attached reports whether an observer is currently attached.
func (t *Tracker) Attached() bool {
	return t.obs != nil
}

// Degraded reports whether the last Attach fell back to reveal-all.
func (t *Tracker) Degraded() bool {
	return t.degraded
}
