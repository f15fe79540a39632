package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/amirasaad/fxconv/pkg/currency"
	"github.com/amirasaad/fxconv/pkg/i18n"
	"github.com/amirasaad/fxconv/pkg/service/conversion"
	"github.com/amirasaad/fxconv/pkg/ui"
)

var errInvalidCopyField = errors.New("copy must be result or rate")

// alertError carries the localized message shown for a failed conversion.
type alertError struct {
	msg string
	err error
}

func (e *alertError) Error() string { return e.msg }
func (e *alertError) Unwrap() error { return e.err }

func convertCmd(rt *runtime) *cobra.Command {
	var (
		amount string
		from   string
		to     string
		date   string
		copyTo string
	)

	c := &cobra.Command{
		Use:   "convert",
		Short: "Convert an amount once and print the result and rate",
		Example: `  fxconv convert --amount 100,00 --from CHF --to USD
  fxconv convert --amount 5000 --from EUR --to BRL --date 2024-01-02 --copy result`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			field := ui.Field("")
			if copyTo != "" {
				f, ok := ui.ParseField(copyTo)
				if !ok {
					return fmt.Errorf("%w: %q", errInvalidCopyField, copyTo)
				}
				field = f
			}
			fromCode, err := currency.Parse(from)
			if err != nil {
				return err
			}
			toCode, err := currency.Parse(to)
			if err != nil {
				return err
			}

			a := rt.app
			tr := a.Translator()
			s := ui.NewSession(a.Conversion, tr, ui.WithClipboard(rt.clip, nil))
			s.Amount.Paste(amount)
			_ = s.SetFrom(fromCode)
			_ = s.SetTo(toCode)
			if date != "" && !s.Date.Paste(date) {
				return fmt.Errorf("%s: %w: %q", tr.T(i18n.InvalidDate), conversion.ErrInvalidDate, date)
			}

			out, err := s.Submit(cmd.Context())
			if errors.Is(err, conversion.ErrNothingToConvert) {
				return fmt.Errorf("amount %q: %w", amount, err)
			}
			if err != nil {
				return &alertError{msg: s.Alert(), err: err}
			}

			printOutcome(cmd, tr, s.From(), s.To(), out)
			if field != "" {
				if s.Copy(field) {
					color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), tr.T(i18n.Copied)) //nolint:errcheck
				} else {
					a.Deps.Logger.Warn("Clipboard unavailable", "field", field)
				}
			}
			return nil
		},
	}

	c.Flags().StringVarP(&amount, "amount", "a", "", "amount to convert; its digits are read as cents (100,00 is one hundred)")
	c.Flags().StringVarP(&from, "from", "f", currency.DefaultFrom.String(), "source currency")
	c.Flags().StringVarP(&to, "to", "t", currency.DefaultTo.String(), "target currency")
	c.Flags().StringVarP(&date, "date", "d", "", "quote date (YYYY-MM-DD); defaults to today")
	c.Flags().StringVar(&copyTo, "copy", "", "copy result or rate to the clipboard")

	_ = c.MarkFlagRequired("amount")
	return c
}

func printOutcome(cmd *cobra.Command, tr i18n.Translator, from, to currency.Code, out *conversion.Outcome) {
	w := cmd.OutOrStdout()
	label := color.New(color.Faint)
	value := color.New(color.Bold)

	fmt.Fprintf(w, "%s %s → %s (%s, %s)\n", //nolint:errcheck
		tr.FormatAmount(out.Amount), from, to, out.Date, out.Quote.Source)
	label.Fprintf(w, "%s: ", tr.T(i18n.ConvertedAmount)) //nolint:errcheck
	value.Fprintln(w, out.DisplayResult())               //nolint:errcheck
	label.Fprintf(w, "%s: ", tr.T(i18n.Rate))            //nolint:errcheck
	value.Fprintln(w, out.DisplayRate())                 //nolint:errcheck
}
