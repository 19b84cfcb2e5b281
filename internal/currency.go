package internal

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency formats report amounts. The zero value (no code) renders plain
// two-decimal numbers, which is the default: the analysis itself is
// locale-free, a display currency is purely cosmetic.
type Currency struct {
	Code    string // "USD", "EUR", "SEK", or "" for plain numbers
	symbol  string
	prefix  bool
	printer *message.Printer
}

// symbolOverrides provides custom symbols where the x/text defaults aren't
// ideal (the Nordic krona currencies all render as plain "kr" locally).
var symbolOverrides = map[string]string{
	"SEK": "kr",
	"NOK": "kr",
	"DKK": "kr",
	"ISK": "kr",
}

// defaultLocaleForCurrency picks a "home" locale per currency so digit
// grouping and decimal marks look native for that currency.
var defaultLocaleForCurrency = map[string]language.Tag{
	"USD": language.AmericanEnglish,
	"EUR": language.German,
	"GBP": language.BritishEnglish,
	"SEK": language.Swedish,
	"NOK": language.Norwegian,
	"DKK": language.Danish,
	"CHF": language.German,
	"JPY": language.Japanese,
	"CAD": language.CanadianFrench,
	"AUD": language.MustParse("en-AU"),
	"PLN": language.Polish,
	"CZK": language.Czech,
}

// GetCurrency returns the formatter for an ISO code. Unknown codes still
// format (grouped numbers with the raw code as suffix); the empty code gives
// the plain zero-value formatter.
func GetCurrency(code string) Currency {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return Currency{}
	}

	unit, err := currency.ParseISO(code)
	tag, ok := defaultLocaleForCurrency[code]
	if !ok {
		tag = language.English
	}

	c := Currency{
		Code:    code,
		prefix:  isPrefixCurrency(code),
		printer: message.NewPrinter(tag),
	}
	switch {
	case err != nil:
		c.symbol = code // not a known ISO code, show it verbatim
	case symbolOverrides[code] != "":
		c.symbol = symbolOverrides[code]
	default:
		c.symbol = c.printer.Sprint(currency.NarrowSymbol(unit))
	}
	return c
}

// isPrefixCurrency reports whether the symbol goes before the amount.
// golang.org/x/text/currency doesn't implement symbol positioning from CLDR
// patterns, so this list is maintained by hand.
func isPrefixCurrency(code string) bool {
	switch code {
	case "USD", "GBP", "JPY", "CAD", "AUD", "MXN", "HKD", "SGD", "NZD", "ZAR":
		return true
	default:
		return false
	}
}

// Format renders an amount at exactly two decimals: locale-grouped with the
// symbol when a currency is set, plain StringFixed otherwise.
func (c Currency) Format(amount decimal.Decimal) string {
	if c.printer == nil {
		return amount.StringFixed(2)
	}

	f, _ := amount.Round(2).Float64()
	formatted := c.printer.Sprint(number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))

	if c.prefix {
		// Keep the sign outside the symbol: -$12.00, not $-12.00.
		if rest, neg := strings.CutPrefix(formatted, "-"); neg {
			return "-" + c.symbol + rest
		}
		return c.symbol + formatted
	}
	return formatted + " " + c.symbol
}
