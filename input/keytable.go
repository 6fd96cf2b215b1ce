package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, escape)
	SpecialKeys map[tcell.Key]Action

	// Rune bindings, stored lowercase
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionMoveUp,
			tcell.KeyDown:   ActionMoveDown,
			tcell.KeyLeft:   ActionMoveLeft,
			tcell.KeyRight:  ActionMoveRight,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
		Runes: map[rune]Action{
			'w': ActionMoveUp,
			's': ActionMoveDown,
			'a': ActionMoveLeft,
			'd': ActionMoveRight,
			'1': ActionSelect1,
			'2': ActionSelect2,
			'3': ActionSelect3,
			'4': ActionSelect4,
			'5': ActionSelect5,
			' ': ActionFire,
			'r': ActionReload,
			'q': ActionQuit,
			'm': ActionToggleMute,
		},
	}
}

// Lookup resolves a key event, ActionNone when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[unicode.ToLower(ev.Rune())]
	}
	return kt.SpecialKeys[ev.Key()]
}

// unbind removes every binding of a
func (kt *KeyTable) unbind(a Action) {
	for k, bound := range kt.SpecialKeys {
		if bound == a {
			delete(kt.SpecialKeys, k)
		}
	}
	for r, bound := range kt.Runes {
		if bound == a {
			delete(kt.Runes, r)
		}
	}
}
