package export

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators, e.g. 1234567 as "1,234,567".
func FormatCount(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatMoney renders d with two decimals and thousands separators in the
// integer part, e.g. 1234.5 as "1,234.50".
func FormatMoney(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")
	n, err := decimal.NewFromString(whole)
	if err != nil {
		return sign + fixed
	}
	return sign + FormatCount(n.IntPart()) + "." + frac
}
