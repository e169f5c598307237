// Package currency holds the marketplace money rules: conversions between base and local
// currency, list/offer rounding, display formatting and the currency table.
package currency

import (
	"math"
	"slices"

	"resale/internal/domain/models"
)

// Rounding selects how ToPrecision snaps a value onto its precision grid.
type Rounding int

const (
	RoundNearest Rounding = iota
	RoundUp
	RoundDown
)

const defaultPrecision = 0.01

var gridPrecisions = []float64{0.01, 0.1, 1, 10, 100, 1000}

// normalize trims float noise to 4 decimal places.
func normalize(v float64) float64 {
	return roundHalfUp(v*1e4) / 1e4
}

// roundHalfUp rounds .5 towards +Inf, which is what the clients do.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// ToPrecision rounds v to the given precision. Precisions outside the supported grid only
// normalize. NaN stays NaN.
func ToPrecision(v, precision float64, r Rounding) float64 {
	if math.IsNaN(v) {
		return math.NaN()
	}
	result := normalize(v)
	if !slices.Contains(gridPrecisions, precision) {
		return result
	}

	round := roundHalfUp
	switch r {
	case RoundUp:
		round = math.Ceil
	case RoundDown:
		round = math.Floor
	}
	return normalize(round(normalize(result/precision)) * precision)
}

// ToLocalCurrency converts a base-currency amount into cur, snapped to the currency precision.
func ToLocalCurrency(v float64, cur models.Currency) float64 {
	if math.IsNaN(v) {
		return v
	}
	precision := cur.Precision
	if precision <= 0 {
		precision = defaultPrecision
	}
	return normalize(roundHalfUp(v*cur.Rate/precision) * precision)
}

// ToBaseCurrency converts a local amount back into base currency.
func ToBaseCurrency(v float64, cur models.Currency) float64 {
	return v / cur.Rate
}

// ToList is the price shown to sellers: local currency rounded up to a whole unit.
func ToList(v float64, cur models.Currency) float64 {
	return ToPrecision(ToLocalCurrency(v, cur), 1, RoundUp)
}

// ToOffer is the price shown to buyers: local currency rounded down to a whole unit.
func ToOffer(v float64, cur models.Currency) float64 {
	return ToPrecision(ToLocalCurrency(v, cur), 1, RoundDown)
}
