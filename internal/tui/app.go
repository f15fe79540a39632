// Package tui is the interactive terminal rendition of the conversion form.
package tui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amirasaad/fxconv/pkg/currency"
	"github.com/amirasaad/fxconv/pkg/i18n"
	"github.com/amirasaad/fxconv/pkg/theme"
	"github.com/amirasaad/fxconv/pkg/ui"
)

// Deps is what the form needs from the application.
type Deps struct {
	Converter  ui.Converter
	Translator i18n.Translator
	// Preference persists the theme. A nil preference keeps it in memory.
	Preference *theme.Preference
	Clipboard  ui.Clipboard
	Now        func() time.Time
	Logger     *slog.Logger
}

type focus int

const (
	focusAmount focus = iota
	focusFrom
	focusTo
	focusDate
	focusCount
)

type model struct {
	ctx     context.Context
	deps    Deps
	session *ui.Session
	logger  *slog.Logger

	focus      focus
	converting bool
	theme      theme.Theme
	styles     Styles
	width      int
}

// Run shows the form until the user quits or ctx is cancelled.
func Run(ctx context.Context, deps Deps, opts ...tea.ProgramOption) error {
	m := newModel(ctx, deps)
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

func newModel(ctx context.Context, deps Deps) model {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	t := theme.Default
	if deps.Preference != nil {
		t = deps.Preference.Current()
	}
	return model{
		ctx:     ctx,
		deps:    deps,
		session: ui.NewSession(deps.Converter, deps.Translator, ui.WithClipboard(deps.Clipboard, deps.Now)),
		logger:  logger,
		theme:   t,
		styles:  NewStyles(t),
	}
}

func (m model) Init() tea.Cmd {
	if m.deps.Preference == nil {
		return nil
	}
	p, ctx := m.deps.Preference, m.ctx
	return func() tea.Msg {
		t, err := p.Load(ctx)
		return themeLoadedMsg{theme: t, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case convertDoneMsg:
		m.converting = false
		if msg.err != nil {
			m.logger.Debug("Conversion failed", "error", msg.err)
		}
		return m, nil

	case themeLoadedMsg:
		if msg.err != nil {
			m.logger.Debug("Theme not persisted", "error", msg.err)
		}
		m.theme = msg.theme
		m.styles = NewStyles(msg.theme)
		return m, nil

	case copyExpiredMsg:
		// redraw only; the feedback clock decides what shows
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
		return m, tea.Quit
	}
	if m.session.Alert() != "" {
		m.session.DismissAlert()
		return m, nil
	}
	if msg.Paste {
		m.paste(string(msg.Runes))
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		m.focus = (m.focus + 1) % focusCount
		return m, nil
	case "shift+tab":
		m.focus = (m.focus + focusCount - 1) % focusCount
		return m, nil
	case "enter":
		return m.submit()
	case "s":
		m.session.Swap()
		return m, nil
	case "t":
		return m.toggleTheme()
	case "r":
		return m, m.copy(ui.FieldResult)
	case "c":
		return m, m.copy(ui.FieldRate)
	case "left", "up":
		m.stepCurrency(-1)
		return m, nil
	case "right", "down":
		m.stepCurrency(1)
		return m, nil
	}

	ev, ok := keyEvent(msg)
	if !ok {
		return m, nil
	}
	switch m.focus {
	case focusAmount:
		m.session.Amount.KeyDown(ev)
	case focusDate:
		m.session.Date.Type(ev)
	}
	return m, nil
}

func (m model) paste(text string) {
	switch m.focus {
	case focusAmount:
		m.session.Amount.Paste(text)
	case focusDate:
		m.session.Date.Paste(text)
	}
}

func (m model) stepCurrency(step int) {
	codes := currency.Codes()
	switch m.focus {
	case focusFrom:
		_ = m.session.SetFrom(cycle(codes, m.session.From(), step))
	case focusTo:
		_ = m.session.SetTo(cycle(codes, m.session.To(), step))
	}
}

func (m model) submit() (tea.Model, tea.Cmd) {
	if m.converting || !m.session.Amount.Cents().IsPositive() {
		return m, nil
	}
	m.converting = true
	s, ctx := m.session, m.ctx
	return m, func() tea.Msg {
		out, err := s.Submit(ctx)
		return convertDoneMsg{out: out, err: err}
	}
}

func (m model) toggleTheme() (tea.Model, tea.Cmd) {
	if m.deps.Preference == nil {
		m.theme = m.theme.Toggle()
		m.styles = NewStyles(m.theme)
		return m, nil
	}
	p, ctx := m.deps.Preference, m.ctx
	return m, func() tea.Msg {
		t, err := p.Toggle(ctx)
		return themeLoadedMsg{theme: t, err: err}
	}
}

func (m model) copy(field ui.Field) tea.Cmd {
	if !m.session.Copy(field) {
		return nil
	}
	return tea.Tick(ui.CopyDuration, func(time.Time) tea.Msg {
		return copyExpiredMsg{field: field}
	})
}
