package input

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that are awkward as bare YAML strings
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// specialKeyNames are the accepted names of non-rune keys
var specialKeyNames = map[string]tcell.Key{
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"esc":    tcell.KeyEscape,
	"enter":  tcell.KeyEnter,
	"tab":    tcell.KeyTab,
	"ctrl+c": tcell.KeyCtrlC,
	"ctrl+q": tcell.KeyCtrlQ,
	"ctrl+r": tcell.KeyCtrlR,
}

// NewKeyTable applies binding overrides onto the defaults
// Each listed action loses its default keys and gets exactly the listed ones
// Returns error on unknown action names or key names
func NewKeyTable(bindings map[string][]string) (*KeyTable, error) {
	kt := DefaultKeyTable()

	for actionName, keys := range bindings {
		action, err := ActionByName(actionName)
		if err != nil {
			return nil, fmt.Errorf("keymap: %w", err)
		}
		kt.unbind(action)

		for _, name := range keys {
			if err := kt.bind(name, action); err != nil {
				return nil, fmt.Errorf("keymap action %q: %w", actionName, err)
			}
		}
	}
	return kt, nil
}

func (kt *KeyTable) bind(name string, action Action) error {
	lower := strings.ToLower(strings.TrimSpace(name))

	if key, ok := specialKeyNames[lower]; ok {
		kt.SpecialKeys[key] = action
		return nil
	}
	if r, ok := runeAliases[lower]; ok {
		kt.Runes[r] = action
		return nil
	}
	if utf8.RuneCountInString(lower) == 1 {
		r, _ := utf8.DecodeRuneInString(lower)
		kt.Runes[unicode.ToLower(r)] = action
		return nil
	}
	return fmt.Errorf("unknown key %q", name)
}
