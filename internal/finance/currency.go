// Package finance contains the calculations fintrack performs on financial
// records: currency formatting, payment provider detection, budget
// classification and aggregation for reports.
package finance

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency is the currency all amounts are kept in.
var Currency = currency.MustParseISO("PHP")

// Symbol is the display symbol for Currency.
const Symbol = "₱"

var printer = message.NewPrinter(language.MustParse("en-PH"))

// currencyScale returns the number of decimals amounts are displayed with.
func currencyScale() int32 {
	scale, _ := currency.Standard.Rounding(Currency)
	return int32(scale)
}

// FormatAmount formats an amount with thousands separators and the
// currency's decimal places, e.g. "15,000.00".
func FormatAmount(amount decimal.Decimal) string {
	scale := currencyScale()
	rounded := amount.Round(scale)

	// Only the integer part goes through the printer for grouping, the
	// decimals are taken from the exact decimal representation.
	_, fraction, _ := strings.Cut(rounded.Abs().StringFixed(scale), ".")
	s := printer.Sprint(number.Decimal(rounded.Abs().IntPart()))
	if fraction != "" {
		s += "." + fraction
	}

	if rounded.IsNegative() {
		return "-" + s
	}
	return s
}

// FormatCurrency formats an amount as currency, e.g. "₱15,000.00".
// Negative amounts are prefixed with a minus sign: "-₱1,234.50".
func FormatCurrency(amount decimal.Decimal) string {
	s := FormatAmount(amount)
	if strings.HasPrefix(s, "-") {
		return "-" + Symbol + strings.TrimPrefix(s, "-")
	}
	return Symbol + s
}

// ParseCurrency parses a formatted amount back into a decimal.
//
// The currency symbol, grouping separators and whitespace are ignored.
// Input that still does not parse yields zero.
func ParseCurrency(s string) decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		if r == ',' || unicode.IsSpace(r) || strings.ContainsRune(Symbol, r) {
			return -1
		}
		return r
	}, s)

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amount
}
