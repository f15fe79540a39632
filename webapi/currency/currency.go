// Package currency serves the currency list and the localized copy table.
package currency

import (
	"github.com/amirasaad/fxconv/pkg/currency"
	"github.com/amirasaad/fxconv/pkg/i18n"
	"github.com/amirasaad/fxconv/webapi/common"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
)

// CurrencyResponse is one selectable currency.
type CurrencyResponse struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Label  string `json:"label"`
}

// CopyResponse is the copy table of the negotiated language.
type CopyResponse struct {
	Lang     string              `json:"lang"`
	Messages map[i18n.Key]string `json:"messages"`
}

// Routes registers the currency and copy endpoints.
func Routes(app *fiber.App, lang language.Tag) {
	app.Get("/api/currencies", ListCurrencies(lang))
	app.Get("/api/i18n", Messages(lang))
}

// ListCurrencies returns the fixed currency set in display order.
func ListCurrencies(lang language.Tag) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tr := common.Translator(c, lang)
		list := currency.List()
		out := make([]CurrencyResponse, 0, len(list))
		for _, m := range list {
			out = append(out, CurrencyResponse{
				Code:   m.Code.String(),
				Symbol: m.Symbol,
				Name:   m.Name(tr.Lang()),
				Label:  m.Label(tr.Lang()),
			})
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Currencies fetched successfully", out)
	}
}

// Messages returns the copy table for the request language.
func Messages(lang language.Tag) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tr := common.Translator(c, lang)
		return c.JSON(CopyResponse{Lang: tr.Lang(), Messages: tr.Messages()})
	}
}
