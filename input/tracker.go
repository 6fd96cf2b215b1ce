package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cthulhu-strike/vmath"
)

// Tracker turns the terminal event stream into per-tick Frames
// Terminals report presses and autorepeat but no releases, so a key counts
// as held until hold elapses without a new event for it
// Mouse buttons report real state and need no window
type Tracker struct {
	table *KeyTable
	hold  time.Duration

	lastSeen [actionCount]time.Time
	pending  ActionSet

	mouseDown  bool
	mouseX     int
	mouseY     int
	mouseKnown bool
}

func NewTracker(table *KeyTable, hold time.Duration) *Tracker {
	return &Tracker{
		table: table,
		hold:  hold,
	}
}

// HandleEvent records a terminal event and returns the bound action, if any
// The caller acts on system actions (quit, mute) immediately
func (t *Tracker) HandleEvent(ev tcell.Event, now time.Time) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := t.table.Lookup(ev)
		if action == ActionNone {
			return ActionNone
		}
		if !t.heldAt(action, now) {
			t.pending = t.pending.With(action)
		}
		t.lastSeen[action] = now
		return action

	case *tcell.EventMouse:
		t.mouseX, t.mouseY = ev.Position()
		t.mouseKnown = true

		down := ev.Buttons()&tcell.Button1 != 0
		if down && !t.mouseDown {
			t.pending = t.pending.With(ActionFire)
		}
		t.mouseDown = down
		if down {
			return ActionFire
		}
	}
	return ActionNone
}

func (t *Tracker) heldAt(a Action, now time.Time) bool {
	seen := t.lastSeen[a]
	return !seen.IsZero() && now.Sub(seen) <= t.hold
}

// Frame builds the input for the next tick and clears pending presses
// project maps the last mouse cell to world space; aim is used until the mouse is seen
func (t *Tracker) Frame(now time.Time, project func(x, y int) vmath.Vec2F, aim vmath.Vec2F) Frame {
	var held ActionSet
	for a := ActionNone + 1; a < actionCount; a++ {
		if t.heldAt(a, now) {
			held = held.With(a)
		}
	}
	if t.mouseDown {
		held = held.With(ActionFire)
	}

	f := Frame{
		Held:    held,
		Pressed: t.pending,
		Cursor:  aim,
	}
	if t.mouseKnown && project != nil {
		f.Cursor = project(t.mouseX, t.mouseY)
	}

	t.pending = 0
	return f
}

// Cursor returns the last mouse cell, ok is false until the mouse has been seen
func (t *Tracker) Cursor() (x, y int, ok bool) {
	return t.mouseX, t.mouseY, t.mouseKnown
}
