package models

// Currency mirrors the marketplace currency record attached to every offer/list.
type Currency struct {
	ID            int64   `json:"id" yaml:"id" validate:"required"`
	Name          string  `json:"name,omitempty" yaml:"name"`
	Code          string  `json:"code" yaml:"code" validate:"required,len=3,uppercase"`
	Symbol        string  `json:"symbol" yaml:"symbol"`
	Locale        string  `json:"locale" yaml:"locale" validate:"required"`
	Rate          float64 `json:"rate" yaml:"rate" validate:"gt=0"`
	MinOfferPrice float64 `json:"min_offer_price" yaml:"min_offer_price" validate:"gte=0"`
	MinListPrice  float64 `json:"min_list_price" yaml:"min_list_price" validate:"gte=0"`
	OfferStep     float64 `json:"offer_step" yaml:"offer_step" validate:"gte=0"`
	ListStep      float64 `json:"list_step" yaml:"list_step" validate:"gte=0"`
	MaxDecimals   int     `json:"max_decimals" yaml:"max_decimals" validate:"gte=0,lte=2"`
	Precision     float64 `json:"precision" yaml:"precision" validate:"gt=0"`

	// FilterPrices are the browse price bucket boundaries, in local currency.
	FilterPrices []float64 `json:"filter_prices,omitempty" yaml:"filter_prices" validate:"dive,gt=0"`
}
