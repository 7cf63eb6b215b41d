package tracker

import "github.com/papapumpkin/vitae/internal/section"

// Region is a registered section's vertical span inside the rendered page,
// measured in lines from the top of the page.
type Region struct {
	ID     section.ID
	Top    int
	Height int
}

// Bottom returns the first line below the region.
func (r Region) Bottom() int {
	return r.Top + r.Height
}

// Event reports that a region crossed the visibility threshold. Intersecting
// is true when at least the threshold fraction of the region is visible.
type Event struct {
	ID           section.ID
	Intersecting bool
}

// Set is a set of section ids. The zero value is an empty set ready for use
// through Reduce; direct callers should use Has, Len and IDs.
type Set map[section.ID]struct{}

// Has reports whether id is in the set.
func (s Set) Has(id section.ID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of ids in the set.
func (s Set) Len() int {
	return len(s)
}

// IDs returns the members of s in the given order. Members not in order are
// omitted.
func (s Set) IDs(order section.Order) []section.ID {
	out := make([]section.ID, 0, len(s))
	for _, id := range order {
		if s.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

func (s Set) clone() Set {
	c := make(Set, len(s)+1)
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// State is the tracker's observable state: the single active section and the
// monotonically growing set of revealed sections.
type State struct {
	Active   section.ID
	Revealed Set
}

// Initial returns the state before any observation: nothing revealed and the
// first section of order active.
func Initial(order section.Order) State {
	return State{Active: order.First(), Revealed: Set{}}
}

// Reduce applies a batch of events in delivery order and returns the new
// state. The input state is never modified.
//
// Each intersecting event for a section in order reveals it and makes it
// active, so the last intersecting event of a batch wins. Non-intersecting
// events and ids outside order change nothing: revealed sections stay
// revealed and the active section only moves when another section enters.
func Reduce(order section.Order, s State, events []Event) State {
	next := State{Active: s.Active, Revealed: s.Revealed}
	copied := false
	for _, ev := range events {
		if !ev.Intersecting || !order.Contains(ev.ID) {
			continue
		}
		if !next.Revealed.Has(ev.ID) {
			if !copied {
				next.Revealed = next.Revealed.clone()
				copied = true
			}
			next.Revealed[ev.ID] = struct{}{}
		}
		next.Active = ev.ID
	}
	return next
}

// RevealAll returns s with every id of order revealed. The active section is
// unchanged.
func RevealAll(order section.Order, s State) State {
	return Reveal(order, s, order...)
}

// Reveal returns s with ids revealed. Ids outside order are ignored and the
// active section is unchanged.
func Reveal(order section.Order, s State, ids ...section.ID) State {
	next := State{Active: s.Active, Revealed: s.Revealed.clone()}
	for _, id := range ids {
		if order.Contains(id) {
			next.Revealed[id] = struct{}{}
		}
	}
	return next
}
