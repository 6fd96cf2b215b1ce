package input

import (
	"fmt"
	"sort"
)

// actionRegistry maps canonical action names to actions
// Used by the key binding config to resolve action strings
var actionRegistry = map[string]Action{
	"move_up":     ActionMoveUp,
	"move_down":   ActionMoveDown,
	"move_left":   ActionMoveLeft,
	"move_right":  ActionMoveRight,
	"select_1":    ActionSelect1,
	"select_2":    ActionSelect2,
	"select_3":    ActionSelect3,
	"select_4":    ActionSelect4,
	"select_5":    ActionSelect5,
	"fire":        ActionFire,
	"reload":      ActionReload,
	"quit":        ActionQuit,
	"toggle_mute": ActionToggleMute,
}

// ActionByName resolves a canonical action name
func ActionByName(name string) (Action, error) {
	a, ok := actionRegistry[name]
	if !ok {
		return ActionNone, fmt.Errorf("unknown action %q", name)
	}
	return a, nil
}

// ActionNames returns all canonical action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns the canonical name of the action
func (a Action) String() string {
	for name, action := range actionRegistry {
		if action == a {
			return name
		}
	}
	return "none"
}
