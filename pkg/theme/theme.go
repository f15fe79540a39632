// Package theme models the light/dark preference and its persistence.
package theme

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// Theme is the visual theme of the form.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Default is used when nothing valid is stored.
const Default = Light

// Key is the store key holding the preference.
const Key = "theme"

var (
	// ErrInvalidTheme is returned by Parse for anything but light or dark.
	ErrInvalidTheme = errors.New("invalid theme")
	// ErrNotFound is returned by a Store when the key is absent.
	ErrNotFound = errors.New("theme not found")
)

// Parse validates s.
func Parse(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case Light, Dark:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
	}
}

// Toggle returns the other theme. Anything unknown toggles to dark.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool { return t == Dark }

func (t Theme) String() string { return string(t) }

// Store is a string key-value store for the preference.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// ScopedKey returns the key for one client, or Key for the process-wide
// preference when id is empty.
func ScopedKey(id string) string {
	if id == "" {
		return Key
	}
	return Key + ":" + id
}

// Preference is the current theme backed by a Store.
type Preference struct {
	mu     sync.RWMutex
	store  Store
	key    string
	theme  Theme
	logger *slog.Logger
}

// NewPreference creates a preference stored under key. It starts at Default
// until Load is called.
func NewPreference(store Store, key string, logger *slog.Logger) *Preference {
	if key == "" {
		key = Key
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Preference{
		store:  store,
		key:    key,
		theme:  Default,
		logger: logger,
	}
}

// Load reads the stored theme. A missing, invalid or unreadable value leaves
// the default in place; only the read error is returned.
func (p *Preference) Load(ctx context.Context) (Theme, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.theme = Default
	raw, err := p.store.Get(ctx, p.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return p.theme, nil
		}
		p.logger.Warn("Failed to load theme", "key", p.key, "error", err)
		return p.theme, err
	}
	t, err := Parse(raw)
	if err != nil {
		p.logger.Warn("Ignoring stored theme", "key", p.key, "value", raw)
		return p.theme, nil
	}
	p.theme = t
	return t, nil
}

// Current returns the in-memory theme.
func (p *Preference) Current() Theme {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.theme
}

// Set changes the theme and saves it.
func (p *Preference) Set(ctx context.Context, t Theme) error {
	if _, err := Parse(string(t)); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.theme = t
	return p.save(ctx)
}

// Toggle flips the theme and saves it. The new theme is returned even when
// saving fails.
func (p *Preference) Toggle(ctx context.Context) (Theme, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.theme = p.theme.Toggle()
	return p.theme, p.save(ctx)
}

func (p *Preference) save(ctx context.Context) error {
	if err := p.store.Set(ctx, p.key, string(p.theme)); err != nil {
		p.logger.Warn("Failed to save theme", "key", p.key, "error", err)
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
