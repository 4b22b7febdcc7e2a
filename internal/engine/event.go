package engine

import "fmt"

// EventKind classifies the outcome of an accepted move.
type EventKind int

const (
	EventContinue EventKind = iota
	EventWin
	EventDraw
)

// String returns a lower-case name for the kind.
func (k EventKind) String() string {
	switch k {
	case EventContinue:
		return "continue"
	case EventWin:
		return "win"
	case EventDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// Event reports one accepted placement.
type Event struct {
	Kind  EventKind
	Mark  Mark  // the mark that was placed (the winner for EventWin)
	Index int   // the cell that was filled
	Line  []int // winning cells for EventWin
}

// String formats the event for logs, e.g. "win X@2 [0 1 2]".
func (e Event) String() string {
	if e.Kind == EventWin {
		return fmt.Sprintf("%s %s@%d %v", e.Kind, e.Mark, e.Index, e.Line)
	}
	return fmt.Sprintf("%s %s@%d", e.Kind, e.Mark, e.Index)
}

// Scores counts round wins per mark for a session.
type Scores struct {
	X int
	O int
}

// Of returns the score for mark.
func (s Scores) Of(m Mark) int {
	switch m {
	case X:
		return s.X
	case O:
		return s.O
	default:
		return 0
	}
}

func (s *Scores) add(m Mark) {
	switch m {
	case X:
		s.X++
	case O:
		s.O++
	}
}
