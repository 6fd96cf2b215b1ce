package input

import (
	"github.com/lixenwraith/cthulhu-strike/vmath"
)

// Action is an abstract gameplay signal, decoupled from keys and buttons
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionSelect1
	ActionSelect2
	ActionSelect3
	ActionSelect4
	ActionSelect5
	ActionFire
	ActionReload
	ActionQuit
	ActionToggleMute

	actionCount
)

// SelectActions maps hotkey slot index (0-based) to its action
var SelectActions = [5]Action{ActionSelect1, ActionSelect2, ActionSelect3, ActionSelect4, ActionSelect5}

// ActionSet is a bitset of actions
type ActionSet uint32

// NewActionSet builds a set from the given actions
func NewActionSet(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

// With returns the set including a
func (s ActionSet) With(a Action) ActionSet {
	if a == ActionNone || a >= actionCount {
		return s
	}
	return s | 1<<a
}

// Has reports membership
func (s ActionSet) Has(a Action) bool {
	if a == ActionNone || a >= actionCount {
		return false
	}
	return s&(1<<a) != 0
}

// Frame is the abstracted input for one simulation tick
type Frame struct {
	// Held are actions currently down
	Held ActionSet

	// Pressed are actions that went down since the previous tick
	Pressed ActionSet

	// Cursor is the aim point in world coordinates
	Cursor vmath.Vec2F
}

// IsHeld reports whether a is down this tick
func (f Frame) IsHeld(a Action) bool {
	return f.Held.Has(a)
}

// JustPressed reports whether a went down this tick
func (f Frame) JustPressed(a Action) bool {
	return f.Pressed.Has(a)
}
