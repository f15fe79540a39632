package money_test

import (
	"fmt"

	"github.com/amirasaad/fxconv/pkg/money"
	"golang.org/x/text/language"
)

// ExampleFromText shows how pasted text becomes cents and back.
func ExampleFromText() {
	c, err := money.FromText("R$ 1.234,50")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c)
	fmt.Println(c.FixedPoint())
	fmt.Println(money.FormatCents(language.BrazilianPortuguese, c))
	// Output:
	// 123450
	// 1234.50
	// 1.234,50
}
