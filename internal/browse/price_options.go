package browse

import (
	"math"

	"resale/internal/currency"
	"resale/internal/domain/models"
)

// Option is one selectable entry of a filter group.
type Option struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PriceFilterOptions builds the price buckets for cur: one bucket under the first
// boundary, one per consecutive pair, and an open-ended last bucket. Values are range
// suffixes for the lowest_listing_price key, expressed in base currency.
func PriceFilterOptions(cur models.Currency) []Option {
	prices := cur.FilterPrices
	out := make([]Option, 0, len(prices)+1)
	for i := 0; i <= len(prices); i++ {
		prev, next := math.NaN(), math.NaN()
		if i > 0 {
			prev = prices[i-1]
		}
		if i < len(prices) {
			next = prices[i]
		}
		out = append(out, Option{
			Name: priceDisplayString(prev, next, cur),
			Value: BuildRangeFilterString(
				currency.ToBaseCurrency(prev, cur),
				currency.ToBaseCurrency(next, cur),
			),
		})
	}
	return out
}

// priceDisplayString gives "Under S$ 100", "S$ 100 - S$ 200" or "S$ 600+". Rupiah
// amounts are shown in millions.
func priceDisplayString(prev, next float64, cur models.Currency) string {
	suffix := ""
	if cur.Code == "IDR" {
		prev /= 1_000_000
		next /= 1_000_000
		suffix = "M"
	}
	hasPrev := !math.IsNaN(prev) && prev != 0
	hasNext := !math.IsNaN(next) && next != 0

	var s string
	if hasPrev {
		s = currency.Display(prev, cur) + suffix
	} else {
		s = "Under "
	}
	if hasPrev && hasNext {
		s += " - "
	}
	if hasNext {
		s += currency.Display(next, cur) + suffix
	} else {
		s += "+"
	}
	return s
}
