// Package offerlists aggregates a product's open lists and offers into the per-size
// lowest list / highest offer figures shown on the buy and sell flows.
package offerlists

import (
	"resale/internal/currency"
	"resale/internal/domain/models"
)

// HighLow holds, per size, the best list and offer for a product.
type HighLow struct {
	LowestListingPrice float64 `json:"lowest_listing_price"`
	HighestOfferPrice  float64 `json:"highest_offer_price"`

	Lists           map[string]models.OfferList `json:"lists"`
	InstantLists    map[string]models.OfferList `json:"instant_lists"`
	NonInstantLists map[string]models.OfferList `json:"non_instant_lists"`
	Offers          map[string]models.OfferList `json:"offers"`
}

// Aggregate folds lists and offers ordered newest to oldest. On equal prices the older
// entry wins, since older lists and offers must match first. Entries owned by
// excludeUserID are skipped; 0 excludes nobody.
func Aggregate(entries []models.OfferList, excludeUserID int64) HighLow {
	out := HighLow{
		Lists:           map[string]models.OfferList{},
		InstantLists:    map[string]models.OfferList{},
		NonInstantLists: map[string]models.OfferList{},
		Offers:          map[string]models.OfferList{},
	}
	for _, ol := range entries {
		if ol.UserID != 0 && ol.UserID == excludeUserID {
			continue
		}
		switch ol.Type {
		case models.OfferListSelling:
			keepLowest(out.Lists, ol)
			if out.LowestListingPrice == 0 || ol.Price <= out.LowestListingPrice {
				out.LowestListingPrice = ol.Price
			}
			if ol.IsInstant {
				keepLowest(out.InstantLists, ol)
			} else {
				keepLowest(out.NonInstantLists, ol)
			}
		case models.OfferListBuying:
			keepHighest(out.Offers, ol)
			if out.HighestOfferPrice == 0 || ol.Price >= out.HighestOfferPrice {
				out.HighestOfferPrice = ol.Price
			}
		}
	}
	return out
}

func keepLowest(m map[string]models.OfferList, ol models.OfferList) {
	if cur, ok := m[ol.Size]; ok && cur.Price < ol.Price {
		return
	}
	m[ol.Size] = ol
}

func keepHighest(m map[string]models.OfferList, ol models.OfferList) {
	if cur, ok := m[ol.Size]; ok && cur.Price > ol.Price {
		return
	}
	m[ol.Size] = ol
}

// SizeQuote is the best offer and list for one size, in local currency.
type SizeQuote struct {
	Size              string            `json:"size"`
	HighestOffer      *models.OfferList `json:"highest_offer,omitempty"`
	HighestOfferPrice float64           `json:"highest_offer_price"`
	LowestList        *models.OfferList `json:"lowest_list,omitempty"`
	LowestListPrice   float64           `json:"lowest_list_price"`
}

// ForSize converts the size's best offer (rounded down) and list (rounded up) into cur.
// Missing sides report a zero price.
func (h HighLow) ForSize(size string, cur models.Currency) SizeQuote {
	q := SizeQuote{Size: size}
	if offer, ok := h.Offers[size]; ok {
		q.HighestOffer = &offer
		q.HighestOfferPrice = currency.ToOffer(offer.Price, cur)
	}
	if list, ok := h.Lists[size]; ok {
		q.LowestList = &list
		q.LowestListPrice = currency.ToList(list.Price, cur)
	}
	return q
}
