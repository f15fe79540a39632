package tui

import (
	"strings"

	"github.com/amirasaad/fxconv/infra/provider/exchangeratehost"
	"github.com/amirasaad/fxconv/infra/provider/frankfurter"
	"github.com/amirasaad/fxconv/pkg/currency"
	"github.com/amirasaad/fxconv/pkg/i18n"
)

func (m model) View() string {
	v := m.session.View()
	tr := m.session.Translator()
	st := m.styles
	lang := tr.Lang()

	themeLabel := tr.T(i18n.LightTheme)
	if m.theme.IsDark() {
		themeLabel = tr.T(i18n.DarkTheme)
	}

	var b strings.Builder
	b.WriteString(st.Title.Render(tr.T(i18n.Title)))
	b.WriteString("  ")
	b.WriteString(st.Help.Render(themeLabel))
	b.WriteString("\n\n")

	b.WriteString(m.row(focusAmount, tr.T(i18n.Amount), v.Symbol+" "+v.AmountText))
	b.WriteString(m.row(focusFrom, tr.T(i18n.From), currencyLabel(v.From, lang)))
	b.WriteString(m.row(focusTo, tr.T(i18n.To), currencyLabel(v.To, lang)))
	b.WriteString(m.row(focusDate, tr.T(i18n.QuoteDate), v.Date))
	b.WriteString("\n")

	if m.converting || v.Loading {
		b.WriteString(st.Label.Render(tr.T(i18n.Converting)))
	} else {
		b.WriteString(st.Focused.Render("[ " + tr.T(i18n.Convert) + " ]"))
	}
	b.WriteString("\n\n")

	b.WriteString(st.Label.Render(tr.T(i18n.ConvertedAmount) + ": "))
	b.WriteString(st.Result.Render(v.Result))
	if v.CopiedResult {
		b.WriteString("  " + st.Ack.Render(tr.T(i18n.Copied)))
	}
	b.WriteString("\n")
	b.WriteString(st.Label.Render(tr.T(i18n.Rate) + ": "))
	b.WriteString(st.Value.Render(v.Rate))
	if v.CopiedRate {
		b.WriteString("  " + st.Ack.Render(tr.T(i18n.Copied)))
	}
	b.WriteString("\n")

	if v.Alert != "" {
		b.WriteString("\n" + st.Alert.Render("! "+v.Alert) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(st.Help.Render(tr.T(i18n.RatesBy) + " " + exchangeratehost.Name + " " + tr.T(i18n.And) + " " + frankfurter.Name))
	b.WriteString("\n")
	b.WriteString(st.Help.Render(tr.T(i18n.HelpKeys)))

	return st.Card.Render(b.String())
}

func (m model) row(f focus, label, value string) string {
	st := m.styles
	cursor, labelStyle := "  ", st.Label
	if m.focus == f {
		cursor, labelStyle = "› ", st.Focused
	}
	return cursor + labelStyle.Render(label+": ") + st.Value.Render(value) + "\n"
}

func currencyLabel(c currency.Code, lang string) string {
	meta, ok := currency.Get(c)
	if !ok {
		return c.String()
	}
	return meta.Label(lang)
}
