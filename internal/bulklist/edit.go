// Package bulklist computes new list prices for a seller's bulk edit and checks the
// batch against each currency's minimum list price.
package bulklist

import (
	"fmt"
	"strings"

	"resale/internal/domain"
)

// EditOption is the wire name of a bulk edit operation.
type EditOption string

const (
	OptionIncreaseByValue       EditOption = "increaseByValue"
	OptionDecreaseByValue       EditOption = "decreaseByValue"
	OptionBeatLowestListByValue EditOption = "beatLowestListByValue"
	OptionSetToValue            EditOption = "setToValue"
)

// Options lists every operation in display order.
var Options = []EditOption{
	OptionIncreaseByValue,
	OptionDecreaseByValue,
	OptionBeatLowestListByValue,
	OptionSetToValue,
}

// Edit is one of IncreaseBy, DecreaseBy, BeatLowestBy or SetTo. The set is closed:
// a variant only satisfies Edit by supplying its price rule.
type Edit interface {
	Option() EditOption
	Amount() float64
	newPrice(c Calculator, list listPricing) float64
}

// IncreaseBy raises the current price by Value.
type IncreaseBy struct{ Value float64 }

// DecreaseBy lowers the current price by Value.
type DecreaseBy struct{ Value float64 }

// BeatLowestBy undercuts the product's lowest list by Value.
type BeatLowestBy struct{ Value float64 }

// SetTo replaces the price with Value.
type SetTo struct{ Value float64 }

func (e IncreaseBy) Option() EditOption   { return OptionIncreaseByValue }
func (e DecreaseBy) Option() EditOption   { return OptionDecreaseByValue }
func (e BeatLowestBy) Option() EditOption { return OptionBeatLowestListByValue }
func (e SetTo) Option() EditOption        { return OptionSetToValue }

func (e IncreaseBy) Amount() float64   { return e.Value }
func (e DecreaseBy) Amount() float64   { return e.Value }
func (e BeatLowestBy) Amount() float64 { return e.Value }
func (e SetTo) Amount() float64        { return e.Value }

func (e IncreaseBy) newPrice(_ Calculator, l listPricing) float64 {
	return l.localPrice + e.Value
}

func (e DecreaseBy) newPrice(_ Calculator, l listPricing) float64 {
	return l.localPrice - e.Value
}

func (e BeatLowestBy) newPrice(c Calculator, l listPricing) float64 {
	return c.lowest(l) - e.Value
}

func (e SetTo) newPrice(_ Calculator, _ listPricing) float64 {
	return e.Value
}

// With pairs the option with an amount.
func (o EditOption) With(value float64) (Edit, error) {
	switch o {
	case OptionIncreaseByValue:
		return IncreaseBy{Value: value}, nil
	case OptionDecreaseByValue:
		return DecreaseBy{Value: value}, nil
	case OptionBeatLowestListByValue:
		return BeatLowestBy{Value: value}, nil
	case OptionSetToValue:
		return SetTo{Value: value}, nil
	}
	return nil, domain.ValidationError{
		Field: "edit_option",
		Msg:   fmt.Sprintf("unknown edit option %q", string(o)),
	}
}

// ParseEdit turns request input into an Edit. Unknown options are rejected here so
// the calculator never sees them.
func ParseEdit(option string, value float64) (Edit, error) {
	return EditOption(strings.TrimSpace(option)).With(value)
}
