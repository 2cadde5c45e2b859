package report

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency formats amounts for console output with locale-aware digit
// grouping and the right symbol.
type Currency struct {
	Code    string // "RUB", "USD", "EUR"
	unit    currency.Unit
	printer *message.Printer
}

// symbolOverrides provides custom symbols where x/text defaults aren't ideal
var symbolOverrides = map[string]string{
	"RUB": "₽",
	"SEK": "kr",
	"NOK": "kr",
	"DKK": "kr",
}

// localeForCurrency picks a "home" locale per currency for digit grouping.
var localeForCurrency = map[string]language.Tag{
	"RUB": language.Russian,
	"USD": language.AmericanEnglish,
	"EUR": language.German,
	"GBP": language.BritishEnglish,
	"SEK": language.Swedish,
	"JPY": language.Japanese,
	"CNY": language.Chinese,
	"TRY": language.Turkish,
	"KZT": language.MustParse("kk-KZ"),
}

// GetCurrency returns the Currency for a given code.
func GetCurrency(code string) Currency {
	code = strings.ToUpper(code)

	// Validates the code; unknown codes fall back to a USD unit for number
	// formatting only and use the code itself as the symbol.
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
		symbolOverrides[code] = code
	}

	tag, ok := localeForCurrency[code]
	if !ok {
		tag = language.English
	}

	return Currency{
		Code:    code,
		unit:    unit,
		printer: message.NewPrinter(tag),
	}
}

// getSymbol returns the currency symbol, using overrides where needed
func (c Currency) getSymbol() string {
	if sym, ok := symbolOverrides[c.Code]; ok {
		return sym
	}
	return c.printer.Sprint(currency.NarrowSymbol(c.unit))
}

// isPrefix returns true if this currency symbol should be placed before the
// amount. x/text doesn't expose symbol positioning from CLDR patterns, so the
// list is maintained manually.
func (c Currency) isPrefix() bool {
	switch c.Code {
	case "USD", "GBP", "JPY", "CAD", "AUD", "HKD", "SGD", "NZD":
		return true
	default:
		return false
	}
}

// Format formats an amount with two fraction digits and the currency symbol.
func (c Currency) Format(amount float64) string {
	formatted := c.printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	symbol := c.getSymbol()

	if c.isPrefix() {
		return symbol + formatted
	}
	return formatted + " " + symbol
}
