package currency

import (
	"fmt"
	"math"
	"strconv"

	"resale/internal/domain/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Position decides whether the symbol leads or the code trails the amount.
type Position int

const (
	Front Position = iota
	Back
)

// Format renders v with locale grouping. Front gives "S$ 1,200", Back gives "1,200.00 SGD".
// NaN renders as an empty string.
func Format(v float64, cur models.Currency, decimals int, pos Position) string {
	if math.IsNaN(v) {
		return ""
	}
	if decimals > cur.MaxDecimals {
		decimals = cur.MaxDecimals
	}
	if decimals < 0 {
		decimals = 0
	}

	amount := formatLocale(v, cur.Locale, decimals)
	if pos == Front {
		return fmt.Sprintf("%s %s", cur.Symbol, amount)
	}
	return fmt.Sprintf("%s %s", amount, cur.Code)
}

// Display is the default whole-unit rendering with a leading symbol.
func Display(v float64, cur models.Currency) string {
	return Format(v, cur, 0, Front)
}

// DisplayPrecise renders two decimals with a trailing code.
func DisplayPrecise(v float64, cur models.Currency) string {
	return Format(v, cur, 2, Back)
}

func formatLocale(v float64, locale string, decimals int) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return strconv.FormatFloat(v, 'f', decimals, 64)
	}
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(v,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}
