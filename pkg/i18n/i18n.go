// Package i18n resolves the user's language and holds the copy of the form
// in Portuguese and English.
package i18n

import (
	"os"
	"strings"

	"github.com/amirasaad/fxconv/pkg/money"
	"golang.org/x/text/language"
)

// Key names one piece of copy.
type Key string

const (
	Title           Key = "title"
	Amount          Key = "amount"
	From            Key = "from"
	To              Key = "to"
	Swap            Key = "swap"
	QuoteDate       Key = "quote_date"
	Convert         Key = "convert"
	Converting      Key = "converting"
	ConvertedAmount Key = "converted_amount"
	Rate            Key = "rate"
	CopyResult      Key = "copy_result"
	CopyRate        Key = "copy_rate"
	Copied          Key = "copied"
	ToggleTheme     Key = "toggle_theme"
	LightTheme      Key = "light_theme"
	DarkTheme       Key = "dark_theme"
	ConversionError Key = "conversion_error"
	RatesBy         Key = "rates_by"
	And             Key = "and"
	Busy            Key = "busy"
	InvalidDate     Key = "invalid_date"
	InvalidCurrency Key = "invalid_currency"
	PrimaryDown     Key = "primary_unavailable"
	SecondaryDown   Key = "secondary_unavailable"
	SecondaryNoRate Key = "secondary_no_rate"
	Quit            Key = "quit"
	HelpKeys        Key = "help_keys"
)

// Supported languages.
var Supported = []language.Tag{
	language.BrazilianPortuguese,
	language.English,
}

// Default is the language used when no preference is given at all.
var Default = language.BrazilianPortuguese

// Catalog is the copy table keyed by language.
var Catalog = map[language.Tag]map[Key]string{
	language.BrazilianPortuguese: {
		Title:           "Conversor de Moedas",
		Amount:          "Valor",
		From:            "De",
		To:              "Para",
		Swap:            "Inverter moedas",
		QuoteDate:       "Data da Cotação",
		Convert:         "Converter",
		Converting:      "Convertendo...",
		ConvertedAmount: "Valor Convertido",
		Rate:            "Taxa",
		CopyResult:      "Copiar resultado",
		CopyRate:        "Copiar taxa",
		Copied:          "Copiado!",
		ToggleTheme:     "Alternar tema",
		LightTheme:      "Tema claro",
		DarkTheme:       "Tema escuro",
		ConversionError: "Erro ao converter",
		RatesBy:         "Cotações de",
		And:             "e",
		Busy:            "Conversão em andamento",
		InvalidDate:     "Data inválida",
		InvalidCurrency: "Moeda não suportada",
		PrimaryDown:     "exchangerate.host indisponível",
		SecondaryDown:   "frankfurter.app indisponível",
		SecondaryNoRate: "Taxa não disponível (frankfurter)",
		Quit:            "sair",
		HelpKeys:        "tab: próximo campo • ←/→: moeda • s: inverter • enter: converter • r/c: copiar • t: tema • esc: sair",
	},
	language.English: {
		Title:           "Currency Converter",
		Amount:          "Amount",
		From:            "From",
		To:              "To",
		Swap:            "Swap currencies",
		QuoteDate:       "Quote Date",
		Convert:         "Convert",
		Converting:      "Converting...",
		ConvertedAmount: "Converted Amount",
		Rate:            "Rate",
		CopyResult:      "Copy result",
		CopyRate:        "Copy rate",
		Copied:          "Copied!",
		ToggleTheme:     "Toggle theme",
		LightTheme:      "Light theme",
		DarkTheme:       "Dark theme",
		ConversionError: "Conversion error",
		RatesBy:         "Rates by",
		And:             "and",
		Busy:            "Conversion in progress",
		InvalidDate:     "Invalid date",
		InvalidCurrency: "Unsupported currency",
		PrimaryDown:     "exchangerate.host unavailable",
		SecondaryDown:   "frankfurter.app unavailable",
		SecondaryNoRate: "Rate not available (frankfurter)",
		Quit:            "quit",
		HelpKeys:        "tab: next field • ←/→: currency • s: swap • enter: convert • r/c: copy • t: theme • esc: quit",
	},
}

// Match resolves the first preference: Portuguese of any region gets pt-BR,
// every other language gets English. No preference gets Default.
func Match(prefs ...language.Tag) language.Tag {
	if len(prefs) == 0 {
		return Default
	}
	if base, _ := prefs[0].Base(); base.String() == "pt" {
		return language.BrazilianPortuguese
	}
	return language.English
}

// FromAcceptLanguage resolves an HTTP Accept-Language header.
func FromAcceptLanguage(header string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return Default
	}
	return Match(tags...)
}

// FromLocale resolves a POSIX locale such as "en_US.UTF-8".
func FromLocale(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return Default
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return Default
	}
	return Match(tag)
}

// FromEnv resolves the process language from LC_ALL, LC_MESSAGES then LANG.
// override wins when set.
func FromEnv(override string) language.Tag {
	if override != "" {
		return FromLocale(override)
	}
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return FromLocale(v)
		}
	}
	return Default
}

// Translator looks up copy for one language.
type Translator struct {
	tag      language.Tag
	messages map[Key]string
}

// New returns a translator for tag, matched against the supported set.
func New(tag language.Tag) Translator {
	tag = Match(tag)
	return Translator{tag: tag, messages: Catalog[tag]}
}

// Tag returns the resolved language.
func (t Translator) Tag() language.Tag { return t.tag }

// Lang returns the two-letter language code ("pt" or "en").
func (t Translator) Lang() string {
	base, _ := t.tag.Base()
	return base.String()
}

// T returns the copy for key, falling back to the default language and then
// to the key itself.
func (t Translator) T(key Key) string {
	if s, ok := t.messages[key]; ok {
		return s
	}
	if s, ok := Catalog[Default][key]; ok {
		return s
	}
	return string(key)
}

// Messages returns a copy of the whole table for this language.
func (t Translator) Messages() map[Key]string {
	out := make(map[Key]string, len(t.messages))
	for k, v := range t.messages {
		out[k] = v
	}
	return out
}

// FormatAmount renders cents with this language's separators.
func (t Translator) FormatAmount(c money.Cents) string {
	return money.FormatCents(t.tag, c)
}
