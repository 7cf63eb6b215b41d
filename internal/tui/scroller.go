package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// easeFactor is the fraction of the remaining distance covered per frame.
const easeFactor = 0.35

// scroller holds the state of an ease-out scroll animation toward a target
// line.
type scroller struct {
	smooth   bool
	interval time.Duration
	target   int
	seq      int
	running  bool
}

func newScroller(smooth bool, fps int) scroller {
	if fps < 1 {
		fps = 60
	}
	return scroller{smooth: smooth, interval: time.Second / time.Duration(fps)}
}

// start begins a scroll from the current offset to target and supersedes any
// scroll in flight. It returns the offset to apply immediately: the target
// itself when animation is off, otherwise from.
func (s *scroller) start(from, target int) int {
	s.seq++
	s.target = target
	if !s.smooth || from == target {
		s.running = false
		return target
	}
	s.running = true
	return from
}

// cancel stops any scroll in flight.
func (s *scroller) cancel() {
	if s.running {
		s.seq++
		s.running = false
	}
}

// step returns the offset after one frame of the scroll identified by seq,
// and whether the frame applied.
func (s *scroller) step(seq, from int) (int, bool) {
	if !s.running || seq != s.seq {
		return from, false
	}
	next := from + easeStep(s.target-from)
	if next == s.target {
		s.running = false
	}
	return next, true
}

// frame schedules the next frame of the running scroll, or returns nil.
func (s *scroller) frame() tea.Cmd {
	if !s.running {
		return nil
	}
	seq := s.seq
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return MsgScrollFrame{Seq: seq}
	})
}

// easeStep returns the signed distance to move for a remaining signed
// distance: ceil(|remaining| × easeFactor), at least one line, never past
// the target.
func easeStep(remaining int) int {
	if remaining == 0 {
		return 0
	}
	d := int(math.Ceil(math.Abs(float64(remaining)) * easeFactor))
	d = max(d, 1)
	if remaining < 0 {
		return -min(d, -remaining)
	}
	return min(d, remaining)
}
