// Package mask constrains the amount and date fields of the conversion form
// into their canonical formats.
//
// The amount field is a formatted projection of an integer number of cents:
// what is shown is always re-rendered from the integer, never the raw text
// that was typed. The date field only accepts digits and '-' and normalizes
// pasted text to YYYY-MM-DD.
package mask

import "strings"

// Named keys, using the browser KeyboardEvent.key vocabulary.
const (
	KeyBackspace  = "Backspace"
	KeyDelete     = "Delete"
	KeyTab        = "Tab"
	KeyEnter      = "Enter"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyHome       = "Home"
	KeyEnd        = "End"
)

var navigationKeys = map[string]struct{}{
	KeyBackspace:  {},
	KeyDelete:     {},
	KeyTab:        {},
	KeyEnter:      {},
	KeyArrowLeft:  {},
	KeyArrowRight: {},
	KeyArrowUp:    {},
	KeyArrowDown:  {},
	KeyHome:       {},
	KeyEnd:        {},
}

// KeyEvent is a single keystroke delivered to a field.
type KeyEvent struct {
	Key  string
	Ctrl bool
	Meta bool
}

// Decision tells the caller whether a keystroke reaches the field.
type Decision int

const (
	// Allow lets the keystroke through unmodified.
	Allow Decision = iota
	// Suppress swallows the keystroke.
	Suppress
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "suppress"
}

// IsControlKey reports whether ev is a navigation/editing key or a
// select-all/copy/paste/cut shortcut.
func IsControlKey(ev KeyEvent) bool {
	if _, ok := navigationKeys[ev.Key]; ok {
		return true
	}
	if ev.Ctrl || ev.Meta {
		switch strings.ToLower(ev.Key) {
		case "a", "c", "v", "x":
			return true
		}
	}
	return false
}

// IsDigit reports whether the key is a single ASCII digit.
func IsDigit(key string) bool {
	return len(key) == 1 && key[0] >= '0' && key[0] <= '9'
}
