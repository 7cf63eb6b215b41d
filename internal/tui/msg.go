package tui

import "github.com/papapumpkin/vitae/internal/section"

// MsgScrollFrame advances an animated scroll by one frame. Seq identifies
// the scroll that scheduled it; frames from a superseded scroll are dropped.
type MsgScrollFrame struct {
	Seq int
}

// MsgNavigate asks the view to navigate to a section, exactly as if its
// label had been selected.
type MsgNavigate struct {
	ID section.ID
}
