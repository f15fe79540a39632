package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/amirasaad/fxconv/pkg/mask"
)

// keyEvent translates a terminal key into the field vocabulary. ok is false
// for keys the fields never see.
func keyEvent(msg tea.KeyMsg) (mask.KeyEvent, bool) {
	switch msg.Type {
	case tea.KeyBackspace:
		return mask.KeyEvent{Key: mask.KeyBackspace}, true
	case tea.KeyDelete:
		return mask.KeyEvent{Key: mask.KeyDelete}, true
	case tea.KeyHome:
		return mask.KeyEvent{Key: mask.KeyHome}, true
	case tea.KeyEnd:
		return mask.KeyEvent{Key: mask.KeyEnd}, true
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return mask.KeyEvent{}, false
		}
		return mask.KeyEvent{Key: string(msg.Runes), Meta: msg.Alt}, true
	}
	return mask.KeyEvent{}, false
}

// cycle steps through the currency list, wrapping at both ends.
func cycle[T comparable](list []T, current T, step int) T {
	for i, v := range list {
		if v == current {
			n := len(list)
			return list[((i+step)%n+n)%n]
		}
	}
	if len(list) == 0 {
		return current
	}
	return list[0]
}
