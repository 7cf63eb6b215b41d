// Package observe implements the intersection facility for a line-addressed
// viewport. An IntersectionObserver watches a set of page regions and, each
// time the viewport is checked, reports the regions whose visibility crossed
// the configured threshold since the previous check.
package observe

import (
	"errors"

	"github.com/papapumpkin/vitae/internal/tracker"
)

// DefaultThreshold is the fraction of a region that must be visible for it
// to count as intersecting.
const DefaultThreshold = 0.3

// ErrInvalidThreshold indicates a threshold outside (0, 1].
var ErrInvalidThreshold = errors.New("observe: threshold must be in (0, 1]")

// IntersectionObserver reports threshold crossings of observed regions. It is
// driven explicitly: the owner calls Check after every change of viewport
// position or size. Delivery happens synchronously inside Check.
type IntersectionObserver struct {
	threshold float64
	regions   []tracker.Region
	last      []bool
	primed    bool
	fn        func([]tracker.Event)
}

// New creates an observer with the given threshold.
func New(threshold float64) *IntersectionObserver {
	return &IntersectionObserver{threshold: threshold}
}

// Threshold returns the configured threshold.
func (o *IntersectionObserver) Threshold() float64 {
	return o.threshold
}

// Observe replaces the observed regions and callback. The next Check reports
// every region once, intersecting or not, so the receiver starts from the
// true initial state.
func (o *IntersectionObserver) Observe(regions []tracker.Region, fn func([]tracker.Event)) error {
	if o.threshold <= 0 || o.threshold > 1 {
		return ErrInvalidThreshold
	}
	o.regions = append([]tracker.Region(nil), regions...)
	o.last = make([]bool, len(regions))
	o.primed = false
	o.fn = fn
	return nil
}

// Disconnect stops delivery and drops every target. Checks after Disconnect
// deliver nothing until Observe is called again.
func (o *IntersectionObserver) Disconnect() {
	o.regions = nil
	o.last = nil
	o.primed = false
	o.fn = nil
}

// Observing reports whether the observer has a live callback.
func (o *IntersectionObserver) Observing() bool {
	return o.fn != nil
}

// Check evaluates every region against the viewport [top, top+height) and
// delivers, in registration order, one event per region whose intersecting
// state changed. The first Check after Observe delivers all regions. It
// returns the number of events delivered.
func (o *IntersectionObserver) Check(top, height int) int {
	if o.fn == nil || len(o.regions) == 0 {
		return 0
	}

	var events []tracker.Event
	for i, r := range o.regions {
		in := Ratio(r, top, height) >= o.threshold
		if o.primed && in == o.last[i] {
			continue
		}
		o.last[i] = in
		events = append(events, tracker.Event{ID: r.ID, Intersecting: in})
	}
	o.primed = true

	if len(events) == 0 {
		return 0
	}
	o.fn(events)
	return len(events)
}

// Ratio returns the visible fraction of r within the viewport
// [top, top+height). A region taller than the viewport is measured against
// the viewport height, so a tall region filling the screen reads as fully
// visible instead of never reaching the threshold.
func Ratio(r tracker.Region, top, height int) float64 {
	if r.Height <= 0 || height <= 0 {
		return 0
	}
	lo := max(r.Top, top)
	hi := min(r.Bottom(), top+height)
	visible := hi - lo
	if visible <= 0 {
		return 0
	}
	return float64(visible) / float64(min(r.Height, height))
}
