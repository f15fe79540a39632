// Package form renders the server-side conversion form.
package form

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"time"

	"github.com/amirasaad/fxconv/pkg/app"
	"github.com/amirasaad/fxconv/pkg/currency"
	"github.com/amirasaad/fxconv/pkg/i18n"
	"github.com/amirasaad/fxconv/pkg/service/conversion"
	"github.com/amirasaad/fxconv/pkg/theme"
	"github.com/amirasaad/fxconv/pkg/ui"
	"github.com/amirasaad/fxconv/webapi/common"
	themeweb "github.com/amirasaad/fxconv/webapi/theme"
	"github.com/gofiber/fiber/v2"
)

//go:embed templates/index.html
var templates embed.FS

var page = template.Must(template.ParseFS(templates, "templates/index.html"))

// Option is one entry of a currency selector.
type Option struct {
	Code  currency.Code
	Label string
}

// Page is the data the form template renders.
type Page struct {
	Lang       string
	Theme      theme.Theme
	Dark       bool
	ThemeLabel string
	Copy       map[string]string
	Currencies []Option
	View       ui.View
	Today      string
	Year       int
	CopyMillis int64
}

// Routes registers the HTML form.
func Routes(fiberApp *fiber.App, a *app.App) {
	fiberApp.Get("/", Show(a))
	fiberApp.Post("/", Submit(a))
	fiberApp.Post("/theme/toggle", ToggleTheme(a))
}

// Show renders a fresh form.
func Show(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tr := common.Translator(c, a.Deps.Language)
		return render(c, a, ui.NewSession(a.Conversion, tr))
	}
}

// Submit applies the posted fields through the input masks, then either
// swaps the currencies or converts.
func Submit(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tr := common.Translator(c, a.Deps.Language)
		s := ui.NewSession(a.Conversion, tr)

		s.Amount.Input(c.FormValue("amount"))
		if date := c.FormValue("date"); date != "" && !s.Date.Paste(date) {
			s.Date.Set(date)
		}
		if err := selectCurrencies(s, c.FormValue("from"), c.FormValue("to")); err != nil {
			return ErrorPage(c, a, s, err)
		}

		if c.FormValue("action") == "swap" {
			s.Swap()
			return render(c, a, s)
		}

		if _, err := s.Submit(c.UserContext()); err != nil && !errors.Is(err, conversion.ErrNothingToConvert) {
			a.Deps.Logger.Debug("Form conversion failed", "error", err)
		}
		return render(c, a, s)
	}
}

// ErrorPage re-renders the form with the alert for err.
func ErrorPage(c *fiber.Ctx, a *app.App, s *ui.Session, err error) error {
	c.Status(common.ErrorToStatusCode(err))
	return renderWithAlert(c, a, s, ui.AlertMessage(s.Translator(), err))
}

// ToggleTheme flips the client's theme and redirects back to the form.
func ToggleTheme(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := themeweb.Toggle(c, a); err != nil {
			a.Deps.Logger.Warn("Theme toggle not persisted", "error", err)
		}
		return c.Redirect("/", fiber.StatusSeeOther)
	}
}

func selectCurrencies(s *ui.Session, from, to string) error {
	if from != "" {
		code, err := currency.Parse(from)
		if err != nil {
			return err
		}
		_ = s.SetFrom(code)
	}
	if to != "" {
		code, err := currency.Parse(to)
		if err != nil {
			return err
		}
		_ = s.SetTo(code)
	}
	return nil
}

func render(c *fiber.Ctx, a *app.App, s *ui.Session) error {
	return renderWithAlert(c, a, s, "")
}

func renderWithAlert(c *fiber.Ctx, a *app.App, s *ui.Session, alert string) error {
	tr := s.Translator()
	t, err := a.Preference(common.ClientID(c)).Load(c.UserContext())
	if err != nil {
		a.Deps.Logger.Warn("Theme not loaded, using default", "error", err)
	}

	view := s.View()
	if alert != "" {
		view.Alert = alert
	}
	data := Page{
		Lang:       tr.Lang(),
		Theme:      t,
		Dark:       t.IsDark(),
		ThemeLabel: themeLabel(tr, t),
		Copy:       copyTable(tr),
		Currencies: options(tr),
		View:       view,
		Today:      a.Conversion.Today(),
		Year:       time.Now().Year(),
		CopyMillis: ui.CopyDuration.Milliseconds(),
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return common.ProblemDetailsJSON(c, "Failed to render form", err, fiber.StatusInternalServerError)
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func themeLabel(tr i18n.Translator, t theme.Theme) string {
	if t.IsDark() {
		return tr.T(i18n.DarkTheme)
	}
	return tr.T(i18n.LightTheme)
}

func copyTable(tr i18n.Translator) map[string]string {
	msgs := tr.Messages()
	out := make(map[string]string, len(msgs))
	for k, v := range msgs {
		out[string(k)] = v
	}
	return out
}

func options(tr i18n.Translator) []Option {
	list := currency.List()
	out := make([]Option, 0, len(list))
	for _, m := range list {
		out = append(out, Option{Code: m.Code, Label: m.Label(tr.Lang())})
	}
	return out
}
