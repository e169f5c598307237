package bulklist

import (
	"resale/internal/currency"
	"resale/internal/domain/models"
)

// ToListFunc converts a base-currency price to the rounded list price in cur.
type ToListFunc func(price float64, cur models.Currency) float64

// Calculator applies bulk edits. It holds no state besides the injected conversion,
// so a single value can be shared freely.
type Calculator struct {
	ToList ToListFunc
}

// NewCalculator uses the marketplace list rounding.
func NewCalculator() Calculator {
	return Calculator{ToList: currency.ToList}
}

// listPricing is the part of an offer list the price rules read.
type listPricing struct {
	localPrice float64
	lowestList float64
	currency   models.Currency
}

func pricingOf(l models.OfferList) listPricing {
	p := listPricing{localPrice: l.LocalPrice, currency: l.Currency}
	if l.ProductStat != nil {
		p.lowestList = l.ProductStat.LowestListPrice
	}
	return p
}

func (c Calculator) lowest(l listPricing) float64 {
	toList := c.ToList
	if toList == nil {
		toList = currency.ToList
	}
	return toList(l.lowestList, l.currency)
}

// LowestListPrice is the product's lowest competing list in the list's currency, or 0
// when there is none.
func (c Calculator) LowestListPrice(l models.OfferList) float64 {
	return c.lowest(pricingOf(l))
}

// NewListPrice applies edit to one list. NaN amounts give NaN prices.
func (c Calculator) NewListPrice(l models.OfferList, edit Edit) float64 {
	return edit.newPrice(c, pricingOf(l))
}

// HasInvalidLists reports whether any list would drop below its currency's minimum
// list price. One invalid list invalidates the whole batch.
func (c Calculator) HasInvalidLists(lists []models.OfferList, edit Edit) bool {
	for _, l := range lists {
		if c.belowMinimum(l, edit) {
			return true
		}
	}
	return false
}

// InvalidLists returns the lists that HasInvalidLists would flag.
func (c Calculator) InvalidLists(lists []models.OfferList, edit Edit) []models.OfferList {
	var out []models.OfferList
	for _, l := range lists {
		if c.belowMinimum(l, edit) {
			out = append(out, l)
		}
	}
	return out
}

func (c Calculator) belowMinimum(l models.OfferList, edit Edit) bool {
	return c.NewListPrice(l, edit) < l.Currency.MinListPrice
}

// UpdatedList is one row of a bulk edit as sent to the marketplace.
type UpdatedList struct {
	ID        int64   `json:"id"`
	Size      string  `json:"size"`
	ProductID int64   `json:"product_id"`
	NewPrice  float64 `json:"new_price"`
	OldPrice  float64 `json:"old_price"`
}

// UpdatedLists computes the edit for every list, in input order.
func (c Calculator) UpdatedLists(lists []models.OfferList, edit Edit) []UpdatedList {
	out := make([]UpdatedList, len(lists))
	for i, l := range lists {
		productID := l.Product.ID
		if productID == 0 {
			productID = l.ProductID
		}
		out[i] = UpdatedList{
			ID:        l.ID,
			Size:      l.Size,
			ProductID: productID,
			NewPrice:  c.NewListPrice(l, edit),
			OldPrice:  l.LocalPrice,
		}
	}
	return out
}
