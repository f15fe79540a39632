package tui

import (
	"github.com/amirasaad/fxconv/pkg/theme"
	"github.com/charmbracelet/lipgloss"
)

// Styles is the palette of one theme.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Focused lipgloss.Style
	Value   lipgloss.Style
	Result  lipgloss.Style
	Ack     lipgloss.Style
	Alert   lipgloss.Style
	Help    lipgloss.Style
	Card    lipgloss.Style
}

type palette struct {
	fg, muted, accent, ok, bad, border lipgloss.Color
}

var palettes = map[theme.Theme]palette{
	theme.Light: {fg: "#1F2937", muted: "#6B7280", accent: "#2563EB", ok: "#047857", bad: "#B91C1C", border: "#D1D5DB"},
	theme.Dark:  {fg: "#F3F4F6", muted: "#9CA3AF", accent: "#60A5FA", ok: "#34D399", bad: "#F87171", border: "#4B5563"},
}

// NewStyles returns the palette for t. Unknown themes get the light one.
func NewStyles(t theme.Theme) Styles {
	p, ok := palettes[t]
	if !ok {
		p = palettes[theme.Light]
	}
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Label:   lipgloss.NewStyle().Foreground(p.muted),
		Focused: lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Value:   lipgloss.NewStyle().Foreground(p.fg),
		Result:  lipgloss.NewStyle().Bold(true).Foreground(p.fg),
		Ack:     lipgloss.NewStyle().Foreground(p.ok),
		Alert:   lipgloss.NewStyle().Bold(true).Foreground(p.bad),
		Help:    lipgloss.NewStyle().Faint(true).Foreground(p.muted),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.border),
	}
}
