// Package convert serves the conversion and input masking endpoints.
package convert

import (
	"errors"

	"github.com/amirasaad/fxconv/pkg/currency"
	"github.com/amirasaad/fxconv/pkg/i18n"
	"github.com/amirasaad/fxconv/pkg/mask"
	"github.com/amirasaad/fxconv/pkg/money"
	"github.com/amirasaad/fxconv/pkg/service/conversion"
	"github.com/amirasaad/fxconv/pkg/ui"
	"github.com/amirasaad/fxconv/webapi/common"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
)

// Routes registers the conversion endpoints.
func Routes(app *fiber.App, svc *conversion.Service, lang language.Tag) {
	api := app.Group("/api")
	api.Post("/convert", Convert(svc, lang))
	api.Post("/mask/amount", MaskAmount(lang))
	api.Post("/mask/date", MaskDate())
}

// Convert returns a handler converting an amount in cents.
// A zero amount answers 204 without contacting any provider.
func Convert(svc *conversion.Service, lang language.Tag) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ConvertRequest](c)
		if input == nil {
			return err
		}
		from, err := currency.Parse(input.From)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unsupported currency", err)
		}
		to, err := currency.Parse(input.To)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unsupported currency", err)
		}

		out, err := svc.Convert(c.UserContext(), conversion.Request{
			Cents: money.Cents(input.AmountCents),
			From:  from,
			To:    to,
			Date:  input.Date,
		})
		if errors.Is(err, conversion.ErrNothingToConvert) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		if err != nil {
			tr := common.Translator(c, lang)
			return common.ErrorResponseJSON(c,
				common.ErrorToStatusCode(err),
				tr.T(i18n.ConversionError),
				ui.AlertMessage(tr, err),
			)
		}

		return c.JSON(ConvertResponse{
			Rate:          out.Quote.Rate,
			Result:        out.Quote.Result,
			DisplayRate:   out.DisplayRate(),
			DisplayResult: out.DisplayResult(),
			Date:          out.Date,
			Source:        out.Quote.Source,
		})
	}
}

// MaskAmount re-derives cents from typed or pasted text.
func MaskAmount(lang language.Tag) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[AmountMaskRequest](c)
		if input == nil {
			return err
		}
		field := mask.NewAmountField(common.Translator(c, lang).Tag())
		if input.Paste {
			field.Paste(input.Text)
		} else {
			field.Input(input.Text)
		}
		return c.JSON(AmountMaskResponse{
			Cents:   int64(field.Cents()),
			Display: field.Value(),
		})
	}
}

// MaskDate normalizes pasted date text.
func MaskDate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[DateMaskRequest](c)
		if input == nil {
			return err
		}
		date, ok := mask.NormalizeDate(input.Text)
		return c.JSON(DateMaskResponse{Date: date, Changed: ok})
	}
}
